package handlers

import (
	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators installs the domain enum validations used by the
// binding tags on request DTOs.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("txnkind", func(fl validator.FieldLevel) bool {
		return domain.TransactionKind(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("granularity", func(fl validator.FieldLevel) bool {
		return domain.Granularity(fl.Field().String()).IsValid()
	})
}
