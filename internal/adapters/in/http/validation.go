package http

import (
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator validates bound request bodies with the `validate` struct
// tags of the generated types.
type RequestValidator struct {
	validate *validator.Validate
}

var _ echo.Validator = (*RequestValidator)(nil)

// NewRequestValidator also registers the override rule check: exactly one of
// fixedPrice and discountPercent must be present.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(exactlyOneRule, servers.NewOverride{}, servers.OverrideRule{})
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	if err := rv.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

func exactlyOneRule(sl validator.StructLevel) {
	var fixedPrice, discountPercent *string
	switch body := sl.Current().Interface().(type) {
	case servers.NewOverride:
		fixedPrice, discountPercent = body.FixedPrice, body.DiscountPercent
	case servers.OverrideRule:
		fixedPrice, discountPercent = body.FixedPrice, body.DiscountPercent
	default:
		return
	}

	if (fixedPrice == nil) == (discountPercent == nil) {
		sl.ReportError(fixedPrice, "fixedPrice", "FixedPrice", "exactly_one_rule", "")
	}
}
