package forms

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NonFieldKey holds errors that do not belong to a single field.
const NonFieldKey = "__all__"

// Message is an untranslated error: a catalog key plus its format arguments.
type Message struct {
	Key  string
	Args []any
}

// Errors maps a form field name to its first error.
type Errors map[string]Message

// Add records key for field unless the field already has an error.
func (e Errors) Add(field, key string, args ...any) {
	if _, ok := e[field]; !ok {
		e[field] = Message{Key: key, Args: args}
	}
}

// Any reports whether there is at least one error.
func (e Errors) Any() bool {
	return len(e) > 0
}

// Has reports whether field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// FromBinding converts a gin binding error into field errors.
func FromBinding(err error) Errors {
	out := Errors{}
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add(NonFieldKey, "Enter a valid value.")
		return out
	}
	for _, fe := range verrs {
		key, args := message(fe)
		out.Add(fieldName(fe.Field()), key, args...)
	}
	return out
}

// fieldName drops the index validator appends to slice elements, categories[1] -> categories.
func fieldName(f string) string {
	if i := strings.IndexByte(f, '['); i >= 0 {
		return f[:i]
	}
	return f
}

func message(fe validator.FieldError) (string, []any) {
	switch fe.Tag() {
	case "required":
		return "This field is required.", nil
	case "max":
		n, _ := strconv.Atoi(fe.Param())
		return "Ensure this value has at most %d characters.", []any{n}
	case "min":
		if fe.Kind().String() == "slice" {
			return "This field is required.", nil
		}
		n, _ := strconv.Atoi(fe.Param())
		return "Ensure this value has at least %d characters.", []any{n}
	case "email":
		return "Enter a valid email address.", nil
	case "eqfield":
		return "The two password fields didn't match.", nil
	case "number":
		return "Enter a whole number.", nil
	case "zipcode":
		return "Enter a zip code in the format 00-000.", nil
	case "phone":
		return "Enter a valid phone number.", nil
	case "hhmm":
		return "Enter a valid time.", nil
	case "datetime":
		return "Enter a valid date.", nil
	case "username":
		return "Enter a valid username. It may contain only letters, digits and @/./+/-/_.", nil
	case "bcryptlen":
		return "Ensure this password has at most %d bytes.", []any{MaxPasswordBytes}
	case "uuid":
		return "Select a valid choice.", nil
	default:
		return "Enter a valid value.", nil
	}
}
