package cli

import (
	"context"
	"strconv"

	"github.com/ledgerline/taxintake/internal/wizard"
)

// Next advances to the following step when the active step's gate passes.
func (a *App) Next(ctx context.Context) error {
	if err := a.controller.Next(ctx); err != nil {
		printlnFn("error:", err)
		return err
	}
	return a.Show(ctx)
}

// Back moves to the previous step.
func (a *App) Back(ctx context.Context) error {
	a.controller.Back()
	return a.Show(ctx)
}

// Goto jumps to a step by number or name.
func (a *App) Goto(ctx context.Context, args []string) error {
	if len(args) != 1 {
		printlnFn("Usage: goto <step number or name>")
		return nil
	}

	target := -1
	if n, err := strconv.Atoi(args[0]); err == nil {
		target = n - 1
	} else {
		for i := 0; i < wizard.StepCount; i++ {
			if wizard.Step(i).String() == args[0] {
				target = i
				break
			}
		}
	}

	if err := a.controller.JumpTo(target); err != nil {
		printlnFn("error:", err)
		return err
	}
	return a.Show(ctx)
}
