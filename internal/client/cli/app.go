package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/ledgerline/taxintake/internal/client/config"
	"github.com/ledgerline/taxintake/internal/client/service"
	"github.com/ledgerline/taxintake/internal/logging"
	"github.com/ledgerline/taxintake/internal/wizard"
)

// App wires the HTTP client, the wizard controller, and the terminal I/O
// together into the interactive intake CLI.
type App struct {
	config     *config.Config
	client     *service.Client
	controller *wizard.Controller
	reader     *bufio.Reader
	out        io.Writer
	email      string
}

func NewApp(c *config.Config) *App {
	client := service.NewClient(c.ServerAddr, c.RequestTimeout)
	log := logging.NewJSON(os.Stderr)

	controller := wizard.New(
		service.NewDraftStore(client),
		service.NewUploadStore(client),
		log,
		wizard.WithQuietPeriod(c.QuietPeriod),
	)

	return &App{
		config:     c,
		client:     client,
		controller: controller,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.client.Token() != ""
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "not signed in"
	}
	s := a.email
	if a.controller.DraftID() != "" {
		s += " | " + a.controller.Step().String() + " | " + string(a.controller.Status())
	}
	if msg := a.controller.Err(); msg != "" {
		s += " | autosave: " + msg
	}
	return s
}
