package cli

import (
	"bufio"
	"context"
	"os"
)

// Run starts the interactive session. It blocks until the user exits or the
// context is cancelled by a signal.
func (a *App) Run(ctx context.Context) {
	printlnFn("Tax intake CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	done := make(chan struct{})

	go func() {
		defer close(done)
		runREPL(ctx, a, a.status, scanner)
	}()

	select {
	case <-ctx.Done():
	case <-done:
	}
}
