package buckets

import (
	"net/http"

	"s3-buckets/internal/app/interfaces"
	"s3-buckets/internal/app/structs"

	"github.com/labstack/echo/v4"
)

type Endpoint struct {
	s           interfaces.BucketLister
	defaultSort string
}

func New(s interfaces.BucketLister, defaultSort string) *Endpoint {
	if defaultSort == "" {
		defaultSort = "asc"
	}
	return &Endpoint{s: s, defaultSort: defaultSort}
}

// BucketsHandler serves GET /s3/buckets?sort=asc|desc. Both invalid sort
// orders and provider failures answer 500 with {"error": "..."}.
func (e *Endpoint) BucketsHandler(ctx echo.Context) error {
	sort := e.defaultSort
	if v, ok := ctx.QueryParams()["sort"]; ok && len(v) > 0 {
		sort = v[0]
	}

	names, err := e.s.ListBucketNames(ctx.Request().Context(), sort)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, structs.ErrorResponse{Error: err.Error()})
	}
	return ctx.JSON(http.StatusOK, names)
}
