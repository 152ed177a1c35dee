package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	phoneNumberPattern = regexp.MustCompile(`^09\d{9}$`)
	userNamePattern    = regexp.MustCompile(`^[A-Za-z0-9_]{3,150}$`)
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
		if err := v.RegisterValidation("phonenumber", phoneNumberValidator); err != nil {
			log.Fatal("register phonenumber validator failed")
		}
		if err := v.RegisterValidation("username", userNameValidator); err != nil {
			log.Fatal("register username validator failed")
		}
	}
}

var phoneNumberValidator validator.Func = func(fl validator.FieldLevel) bool {
	return phoneNumberPattern.MatchString(fl.Field().String())
}

var userNameValidator validator.Func = func(fl validator.FieldLevel) bool {
	return userNamePattern.MatchString(fl.Field().String())
}
