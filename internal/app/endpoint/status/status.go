package status

import (
	"net/http"
	"strconv"

	"s3-buckets/internal/app/interfaces"

	"github.com/labstack/echo/v4"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Endpoint struct {
	r interfaces.AuditRepository
}

func New(r interfaces.AuditRepository) *Endpoint {
	return &Endpoint{r: r}
}

// StatusHandler serves GET /status?limit=N with the most recent bucket
// listings, newest first.
func (e *Endpoint) StatusHandler(ctx echo.Context) error {
	limit := defaultLimit
	if v := ctx.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxLimit {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxLimit))
		}
		limit = n
	}

	res, err := e.r.Recent(ctx.Request().Context(), limit)
	if err != nil {
		ctx.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Unable to read bucket listings")
	}
	return ctx.JSON(http.StatusOK, res)
}
