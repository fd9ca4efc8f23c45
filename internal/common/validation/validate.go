package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var validate = validator.New()

var patternURL = regexp.MustCompile(`^https?://[^\s/$.?#].[^\s]*$`)

func init() {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerNoSpacesAtStartOrEnd()
	registerHTTPURL()
}

type ErrorValidateResponse struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateStruct returns a multierror with one ErrorValidateResponse per failed field.
func ValidateStruct(toValidate interface{}) error {
	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		var invalidErr *validator.InvalidValidationError
		if errors.As(err, &invalidErr) {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, ErrorValidateResponse{
					Field:   valErr.Namespace(),
					Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
				})
			}
		}
	}

	return errs.ErrorOrNil()
}

func registerNoSpacesAtStartOrEnd() {
	validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}

func registerHTTPURL() {
	validate.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return patternURL.MatchString(fl.Field().String())
	})
}
