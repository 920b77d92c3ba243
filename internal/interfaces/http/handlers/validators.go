package handlers

import (
	"github.com/go-playground/validator/v10"

	subvo "github.com/darna-inc/darna/internal/domain/subscription/valueobjects"
)

// RegisterValidators adds the domain binding tags to v. It is applied to
// gin's validator and to the shared one.
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("feature_tag", func(fl validator.FieldLevel) bool {
		return subvo.FeatureTag(fl.Field().String()).IsValid()
	}); err != nil {
		return err
	}
	return v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		return subvo.PaymentMethod(fl.Field().String()).IsValid()
	})
}
