package forms

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	zipCodeRegex  = regexp.MustCompile(`^(\d{2}-\d{3}|\d{5})$`)
	phoneRegex    = regexp.MustCompile(`^\+?\d{9,15}$`)
	timeRegex     = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	usernameRegex = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]+$`)
)

// MaxPasswordBytes is the longest password bcrypt accepts, counted in UTF-8 bytes.
const MaxPasswordBytes = 72

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(formFieldName)
	_ = v.RegisterValidation("zipcode", matches(zipCodeRegex))
	_ = v.RegisterValidation("phone", matches(phoneRegex))
	_ = v.RegisterValidation("hhmm", matches(timeRegex))
	_ = v.RegisterValidation("username", matches(usernameRegex))
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// formFieldName reports validation errors under the HTML field name.
func formFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// NormalizePhone strips the separators people type into phone numbers.
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
