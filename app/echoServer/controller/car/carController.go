package car

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	carrepo "github.com/furkanevin/car-rental/repository/car"
	catalogsvc "github.com/furkanevin/car-rental/service/catalog"
)

type Controller struct {
	Svc catalogsvc.Service
	Log *slog.Logger
}

// List the catalog
// @Summary      List cars
// @Description  Filtered, sorted, paginated car catalog
// @Tags         cars
// @Produce      json
// @Param        make         query  string  false  "substring match, case-insensitive"
// @Param        model        query  string  false  "substring match, case-insensitive"
// @Param        carType      query  string  false  "exact match"
// @Param        location     query  string  false  "exact match"
// @Param        transmission query  string  false  "exact match"
// @Param        fuelType     query  string  false  "exact match"
// @Param        minPrice     query  number  false  "lower price bound"
// @Param        maxPrice     query  number  false  "upper price bound"
// @Param        seats        query  int     false  "minimum seats"
// @Param        page         query  int     false  "default 1"
// @Param        limit        query  int     false  "default 12"
// @Param        sortBy       query  string  false  "default createdAt"
// @Param        sortOrder    query  string  false  "asc or desc, default desc"
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/cars [get]
func (h *Controller) List(c echo.Context) error {
	params := listParams(c)

	out, err := h.Svc.List(c.Request().Context(), params)
	if err != nil {
		h.Log.Error("car list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to fetch cars",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"cars":       out.Cars,
		"pagination": out.Pagination,
	})
}

// Detail of one car
// @Summary      Get car
// @Tags         cars
// @Produce      json
// @Param        id  path  string  true  "car id"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any "malformed id"
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/cars/{id} [get]
func (h *Controller) Detail(c echo.Context) error {
	car, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch catalogsvc.Code(err) {
		case catalogsvc.ErrBadID:
			return c.JSON(http.StatusBadRequest, echo.Map{
				"success": false,
				"error":   "Invalid car ID format",
			})
		case catalogsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false,
				"error":   "Car not found",
			})
		default:
			h.Log.Error("car detail error", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"success": false,
				"error":   "Failed to fetch car details",
			})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"car":     car,
	})
}

// listParams builds the typed filter from the query string. Absent parameters
// stay zero-valued and never reach the query document.
func listParams(c echo.Context) catalogsvc.ListParams {
	f := carrepo.Filter{
		Make:         c.QueryParam("make"),
		Model:        c.QueryParam("model"),
		CarType:      c.QueryParam("carType"),
		Location:     c.QueryParam("location"),
		Transmission: c.QueryParam("transmission"),
		FuelType:     c.QueryParam("fuelType"),
	}
	if v, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil {
		f.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil {
		f.PriceMax = &v
	}
	if v, err := strconv.Atoi(c.QueryParam("seats")); err == nil {
		f.MinSeats = &v
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return catalogsvc.ListParams{
		Filter:    f,
		Page:      page,
		Limit:     limit,
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
}
