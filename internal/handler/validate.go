package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// usernamePattern mirrors what the backend accepts: lowercase letters,
// digits, dots and underscores, 3 to 30 characters.
var usernamePattern = regexp.MustCompile(`^[a-z0-9._]{3,30}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
	}
}
