package cli

import (
	"context"
	"strings"
)

// Submit flushes pending edits and submits the intake for preparation. After
// a successful submit the record is read-only.
func (a *App) Submit(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Submitting locks your intake for editing. Type 'yes' to continue", a.out)
	if err != nil {
		printlnFn("error:", err)
		return err
	}
	if strings.ToLower(answer) != "yes" {
		printlnFn("Submit cancelled")
		return nil
	}

	if err := a.controller.Submit(ctx); err != nil {
		printlnFn("Submit failed:", err)
		return err
	}

	printlnFn("Intake submitted. Thank you!")
	return nil
}
