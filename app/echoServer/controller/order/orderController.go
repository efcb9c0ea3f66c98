package order

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/furkanevin/car-rental/app/echoServer/jwtx"
	ordersvc "github.com/furkanevin/car-rental/service/order"
)

type Controller struct {
	Svc ordersvc.Service
	Log *slog.Logger
}

// List the current user's orders
// @Summary      My orders
// @Tags         orders
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Security     BearerAuth
// @Router       /api/orders [get]
func (h *Controller) List(c echo.Context) error {
	principal, err := jwtx.PrincipalFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	orders, err := h.Svc.ListMine(c.Request().Context(), principal.ID)
	if err != nil {
		h.Log.Error("order list error", "err", err, "user_id", principal.ID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An error occurred"})
	}

	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}

// Detail of one order
// @Summary      Order detail
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "order id"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Security     BearerAuth
// @Router       /api/orders/{id} [get]
func (h *Controller) Detail(c echo.Context) error {
	view, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch ordersvc.Code(err) {
		case ordersvc.ErrBadID:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid order id"})
		case ordersvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Order not found"})
		default:
			h.Log.Error("order detail error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An error occurred"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"order": view})
}
