package checkout

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/furkanevin/car-rental/app/echoServer/jwtx"
	checkoutsvc "github.com/furkanevin/car-rental/service/checkout"
)

type Controller struct {
	Svc checkoutsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Start a rental checkout
// @Summary      Start checkout
// @Description  Creates a pending order and returns the hosted payment page URL
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body  CheckoutReq  true  "Rental window"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any "car not found"
// @Failure      500  {object}  map[string]any
// @Security     BearerAuth
// @Router       /api/checkout [post]
func (h *Controller) Start(c echo.Context) error {
	principal, err := jwtx.PrincipalFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	var req CheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	pickup, err := parseDate(req.PickupDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid pickupDate"})
	}
	ret, err := parseDate(req.ReturnDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid returnDate"})
	}

	out, err := h.Svc.Start(c.Request().Context(), principal.ID, req.CarID, checkoutsvc.Window{
		PickupDate:      pickup,
		ReturnDate:      ret,
		PickupTime:      req.PickupTime,
		ReturnTime:      req.ReturnTime,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		switch checkoutsvc.Code(err) {
		case checkoutsvc.ErrCarNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Car not found"})
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			h.Log.Error("checkout failed", "err", err, "req_id", rid, "user_id", principal.ID)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "An error occurred"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Checkout session created",
		"url":     out.URL,
		"orderId": out.OrderID,
	})
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
