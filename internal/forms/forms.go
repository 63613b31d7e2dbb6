// Package forms binds and validates the HTML forms posted by users.
package forms

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin/binding"
)

const maxMultipartMemory = 1 << 20

// postForm returns the request body values for urlencoded and multipart posts.
func postForm(r *http.Request) (url.Values, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return r.PostForm, nil
}

// bind maps the posted values onto ptr without validating.
func bind(r *http.Request, ptr any) error {
	values, err := postForm(r)
	if err != nil {
		return err
	}
	return binding.MapFormWithTag(ptr, values, "form")
}

func validate(ptr any) Errors {
	return FromBinding(binding.Validator.ValidateStruct(ptr))
}
