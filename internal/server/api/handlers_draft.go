package api

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/taxintake/internal/logging"
)

// IntakeHandler serves the draft endpoints.
type IntakeHandler struct {
	intake IntakeService
	log    logging.Logger
}

func NewIntakeHandler(intake IntakeService, log logging.Logger) *IntakeHandler {
	return &IntakeHandler{intake: intake, log: log}
}

// HandleCurrent returns the caller's active draft, creating one on first load.
func (h *IntakeHandler) HandleCurrent(c echo.Context) error {
	draft, err := h.intake.Current(c.Request().Context(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, draft)
}

// HandleSave persists an autosave snapshot of the record payload.
func (h *IntakeHandler) HandleSave(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return RespondWithError(c, NewBadRequestError("unreadable request body", err))
	}

	if err := h.intake.Save(c.Request().Context(), currentUserID(c), c.Param("id"), body); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleSubmit stores the final payload and locks the draft.
func (h *IntakeHandler) HandleSubmit(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return RespondWithError(c, NewBadRequestError("unreadable request body", err))
	}

	userID := currentUserID(c)
	if err := h.intake.Submit(c.Request().Context(), userID, c.Param("id"), body); err != nil {
		return err
	}

	h.log.Info(c.Request().Context(), "intake submitted", "draft_id", c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
