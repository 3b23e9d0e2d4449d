package api

import (
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// FormsHandler serves static IRS form PDFs.
type FormsHandler struct {
	dir string
}

func NewFormsHandler(dir string) *FormsHandler {
	return &FormsHandler{dir: dir}
}

// HandleForm8879 serves the IRS Form 8879 e-file authorization as a download.
// The response is marked no-store so a cached copy never outlives the form
// revision on disk.
func (h *FormsHandler) HandleForm8879(c echo.Context) error {
	path := filepath.Join(h.dir, "f8879.pdf")
	if _, err := os.Stat(path); err != nil {
		return RespondWithError(c, NewNotFoundError("form", "8879"))
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Attachment(path, "f8879.pdf")
}
