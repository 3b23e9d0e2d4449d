package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/taxintake/internal/logging"
)

// FileHandler serves the upload endpoints.
type FileHandler struct {
	files FileService
	log   logging.Logger
}

func NewFileHandler(files FileService, log logging.Logger) *FileHandler {
	return &FileHandler{files: files, log: log}
}

// HandleList returns the draft's uploads in a category, newest first.
func (h *FileHandler) HandleList(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return RespondWithError(c, NewBadRequestError("category query parameter is required", nil))
	}

	list, err := h.files.List(c.Request().Context(), currentUserID(c), c.Param("id"), category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// HandleUpload stores one multipart file under the draft's category.
func (h *FileHandler) HandleUpload(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return RespondWithError(c, NewBadRequestError("category query parameter is required", nil))
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return RespondWithError(c, NewBadRequestError("multipart field \"file\" is required", err))
	}

	src, err := fh.Open()
	if err != nil {
		return RespondWithError(c, NewBadRequestError("unreadable upload", err))
	}
	defer src.Close()

	file, err := h.files.Upload(c.Request().Context(), currentUserID(c), c.Param("id"), category,
		fh.Filename, fh.Header.Get("Content-Type"), fh.Size, src)
	if err != nil {
		return err
	}

	h.log.Info(c.Request().Context(), "file uploaded",
		"draft_id", c.Param("id"), "category", category, "size", fh.Size)
	return c.JSON(http.StatusCreated, file)
}

// HandleDelete removes one upload, object first, then its metadata row.
func (h *FileHandler) HandleDelete(c echo.Context) error {
	if err := h.files.Delete(c.Request().Context(), currentUserID(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
