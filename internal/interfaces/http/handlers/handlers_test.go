package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/darna-inc/darna/internal/shared/utils"
)

func init() {
	v := binding.Validator.Engine().(*validator.Validate)
	utils.UseJSONFieldNames(v)
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
}
