package http

import (
	"net/http"

	"storefront/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator rejects requests that do not match the API document:
// malformed path parameters, missing required fields, unknown enum values or
// decimals that do not match their pattern. Requests for paths outside the
// document, such as /health and /swagger, pass through untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	// Any host may serve the API.
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validateErr.Error(),
				})
			}

			return next(ctx)
		}
	}, nil
}
