package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/logging"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/models"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/service"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return err
	}

	item := models.CartItem{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	}

	saved, err := h.Svc.AddToCart(ctx, &item)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("add_to_cart_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "user_id, product_id and quantity>0 required")
		}
		l.Error("add_to_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot add item to cart")
	}

	l.Info("add_to_cart_success", "user_id", saved.UserID, "product_id", saved.ProductID)
	return c.JSON(http.StatusCreated, saved)
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	items, err := h.Svc.GetCart(ctx, c.Param("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("get_cart_error", "status", 400, "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "user_id required")
		}
		l.Error("get_cart_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get cart")
	}

	l.Info("get_cart_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}
