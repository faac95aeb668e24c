package mv

import (
	"net/http"

	jwtservice "s3-buckets/internal/app/security"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const AUTHORIZATION = "Authorization"

// HeaderCheck rejects requests without a valid bearer token with 401.
func HeaderCheck(v *jwtservice.Validator, logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := ctx.Request().Header.Get(AUTHORIZATION)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Please provide valid credentials")
			}

			isValid, err := v.ValidateToken(token)
			if err != nil {
				logger.WithError(err).Debug("Rejected bearer token")
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			if !isValid {
				return echo.NewHTTPError(http.StatusUnauthorized, "Please provide valid credentials")
			}
			return next(ctx)
		}
	}
}
