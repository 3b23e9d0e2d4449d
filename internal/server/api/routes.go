// routes.go - Route registration helpers
package api

import (
	"github.com/labstack/echo/v4"

	"github.com/ledgerline/taxintake/internal/logging"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Auth      AuthService
	Intake    IntakeService
	Files     FileService
	SecretKey []byte
	FormsDir  string
	Log       logging.Logger
}

// Handlers holds all handler instances
type Handlers struct {
	Auth   *AuthHandler
	Intake *IntakeHandler
	Files  *FileHandler
	Forms  *FormsHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Auth:   NewAuthHandler(deps.Auth, deps.Log),
		Intake: NewIntakeHandler(deps.Intake, deps.Log),
		Files:  NewFileHandler(deps.Files, deps.Log),
		Forms:  NewFormsHandler(deps.FormsDir),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers, secretKey []byte) {
	e.HTTPErrorHandler = ErrorHandler

	e.POST("/api/auth/link", handlers.Auth.HandleIssueLink)
	e.POST("/api/auth/session", handlers.Auth.HandleExchangeLink)

	e.GET("/forms/8879", handlers.Forms.HandleForm8879)

	authed := e.Group("/api", JWTAuth(secretKey))
	authed.GET("/intake", handlers.Intake.HandleCurrent)
	authed.PUT("/intake/:id", handlers.Intake.HandleSave)
	authed.POST("/intake/:id/submit", handlers.Intake.HandleSubmit)
	authed.GET("/intake/:id/files", handlers.Files.HandleList)
	authed.POST("/intake/:id/files", handlers.Files.HandleUpload)
	authed.DELETE("/files/:id", handlers.Files.HandleDelete)
}
