package payment

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	paymentsvc "github.com/furkanevin/car-rental/service/payment"
)

type Controller struct {
	Svc paymentsvc.Service
	Log *slog.Logger
}

// HandleStripe receives provider payment events. It acknowledges with 200 no
// matter what: Stripe retries until it sees a 2xx, and a failed order update
// is an operator problem, not a retry problem.
func (h *Controller) HandleStripe(c echo.Context) error {
	sig := c.Request().Header.Get("Stripe-Signature")
	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.Log.Error("webhook body read error", "err", err)
		return c.JSON(http.StatusOK, echo.Map{"status": "success"})
	}

	if err := h.Svc.HandleEvent(c.Request().Context(), sig, raw); err != nil {
		h.Log.Error("webhook processing error", "err", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}
