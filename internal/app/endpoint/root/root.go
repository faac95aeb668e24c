package root

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Endpoint struct {
}

func New() *Endpoint {
	return &Endpoint{}
}

func (e *Endpoint) RootHandler(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "s3-buckets service online")
}
