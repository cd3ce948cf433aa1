package v1

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kineticfest/registration-core/config"
	"github.com/kineticfest/registration-core/models"
	"github.com/kineticfest/registration-core/service"
	"github.com/kineticfest/registration-core/sheetdb"
)

type RegistrationService interface {
	CheckRegistration(ctx context.Context, email string) ([]string, error)
	Register(ctx context.Context, tabName string, row []string) (string, error)
}

// RegistrationController is the HTTP boundary for the gateway. It is the
// only place that turns typed failures into status codes and user-facing
// strings; everything below it reports facts, not prose.
type RegistrationController struct {
	service RegistrationService
	cred    config.Credential
	logger  *slog.Logger
}

func NewRegistrationController(svc RegistrationService, cred config.Credential, logger *slog.Logger) *RegistrationController {
	return &RegistrationController{
		service: svc,
		cred:    cred,
		logger:  logger,
	}
}

// GET /api/check-registration?email=...
func (ctl *RegistrationController) CheckRegistration(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email parameter"})
		return
	}

	registered, err := ctl.service.CheckRegistration(c.Request.Context(), email)
	if err != nil {
		// The service trims before validating, so a whitespace-only email
		// gets past the check above but is still the caller's mistake.
		if errors.Is(err, service.ErrMissingEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email parameter"})
			return
		}
		ctl.logger.Error("check registration failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"registeredEvents": registered,
	})
}

// POST /api/register
func (ctl *RegistrationController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing sheet_name or row_data array"})
		return
	}

	updatedRange, err := ctl.service.Register(c.Request.Context(), req.SheetName, req.RowData)
	if err != nil {
		ctl.respondRegisterError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Registration successful",
		"updatedRange": updatedRange,
	})
}

func (ctl *RegistrationController) respondRegisterError(c *gin.Context, err error) {
	ctl.logger.Error("register failed", "error", err)

	switch {
	case errors.Is(err, service.ErrMissingTabName), errors.Is(err, service.ErrEmptyRow):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing sheet_name or row_data array"})
		return
	}

	var sheetErr *sheetdb.Error
	if errors.As(err, &sheetErr) {
		switch sheetErr.Reason {
		case sheetdb.REASON_PERMISSION_DENIED:
			c.JSON(http.StatusForbidden, gin.H{
				"error": fmt.Sprintf("Permission denied. Ensure '%s' is an Editor on the Sheet.", ctl.cred.AccountEmail),
			})
			return
		case sheetdb.REASON_SPREADSHEET_NOT_FOUND:
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("Sheet not found. Check GOOGLE_SHEET_ID (%s).", ctl.cred.SpreadsheetID),
			})
			return
		case sheetdb.REASON_UNKNOWN_TAB:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Tab '%s' not found in the Sheet. Please check the tab name.", sheetErr.TabName),
			})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
