package dto

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/skylineair/edge-services/internal/pkg/exception"
)

var (
	Validate = validator.New()
	trans    ut.Translator
)

// ErrorDetails is the single JSON shape shared by every error response.
type ErrorDetails struct {
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Details []exception.ErrorCause `json:"details,omitempty"`
}

func InitValidator() error {
	uni := ut.New(en.New(), en.New())
	trans, _ = uni.GetTranslator("en")

	err := enTranslations.RegisterDefaultTranslations(Validate, trans)
	if err != nil {
		return err
	}

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return nil
}

// NewValidationError builds the 422 response listing every offending part of
// the request.
func NewValidationError(details ...exception.ErrorCause) error {
	return exception.ApplicationError{
		StatusCode: http.StatusUnprocessableEntity,
		Err:        "Validation error",
		Message:    "Request has an invalid format.",
		Details:    details,
	}
}

// validationCauses converts validator errors into error causes, one per
// offending field, prefixed with the field's request location.
func validationCauses(err error, locations map[string]string) ([]exception.ErrorCause, error) {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	causes := make([]exception.ErrorCause, 0, len(validationErrs))

	for _, fieldErr := range validationErrs {
		location := locations[fieldErr.Field()]
		if location == "" {
			location = "body"
		}

		causes = append(causes, exception.ErrorCause{
			Cause:   location + "/" + fieldErr.Field(),
			Message: fieldErr.Translate(trans),
		})
	}

	return causes, nil
}
