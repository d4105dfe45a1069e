package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/logging"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/service"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("login_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "username and password required")
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_error", "status", 401, "error", err)
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
		}
		l.Error("login_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot check credentials")
	}

	l.Info("login_successful")
	return c.JSON(http.StatusOK, transport.LoginResponse{
		Success: true,
		User: transport.UserSummary{
			ID:       user.ID.Hex(),
			Username: user.Username,
			Email:    user.Email,
		},
	})
}
