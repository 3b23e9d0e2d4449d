package cli

import (
	"context"
	"strings"
)

// Set applies one "set <field> <value...>" command to the record. The value
// may contain spaces; everything after the field name is joined back together.
func (a *App) Set(ctx context.Context, args []string) error {
	if len(args) < 1 {
		printlnFn("Usage: set <field> <value>")
		return nil
	}
	name := args[0]
	value := strings.Join(args[1:], " ")

	mut, err := parseField(name, value)
	if err != nil {
		printlnFn("error:", err)
		return err
	}

	if err := a.controller.Update(mut); err != nil {
		printlnFn("error:", err)
		return err
	}
	return nil
}
