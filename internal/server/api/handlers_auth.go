package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/taxintake/internal/logging"
)

// AuthHandler serves the sign-in link endpoints.
type AuthHandler struct {
	auth AuthService
	log  logging.Logger
}

func NewAuthHandler(auth AuthService, log logging.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

type issueLinkRequest struct {
	Email string `json:"email"`
}

type issueLinkResponse struct {
	Link string `json:"link"`
}

// HandleIssueLink creates the account if needed and returns a single-use
// sign-in link token. In production the link is e-mailed rather than returned;
// the response body feeds the delivery pipeline.
func (h *AuthHandler) HandleIssueLink(c echo.Context) error {
	var req issueLinkRequest
	if err := c.Bind(&req); err != nil {
		return RespondWithError(c, NewBadRequestError("invalid request body", err))
	}

	link, err := h.auth.IssueSignInLink(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	h.log.Info(c.Request().Context(), "sign-in link issued")
	return c.JSON(http.StatusCreated, issueLinkResponse{Link: link})
}

type exchangeLinkRequest struct {
	Link string `json:"link"`
}

type exchangeLinkResponse struct {
	Token string `json:"token"`
}

// HandleExchangeLink redeems a sign-in link for a session JWT.
func (h *AuthHandler) HandleExchangeLink(c echo.Context) error {
	var req exchangeLinkRequest
	if err := c.Bind(&req); err != nil {
		return RespondWithError(c, NewBadRequestError("invalid request body", err))
	}

	token, err := h.auth.ExchangeSignInLink(c.Request().Context(), req.Link)
	if err != nil {
		h.log.Warn(c.Request().Context(), "sign-in link rejected", "error", err.Error())
		return err
	}

	return c.JSON(http.StatusOK, exchangeLinkResponse{Token: token})
}
