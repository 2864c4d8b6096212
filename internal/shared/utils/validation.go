package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "folios/internal/shared/errors"
)

// BindingError converts a gin binding failure into a validation AppError.
// Field-level failures from the validator are collapsed into a readable
// comma-separated list; anything else (malformed JSON) becomes a bad
// request error.
func BindingError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return apperrors.NewValidationError("invalid request", strings.Join(fields, ", "))
	}
	return apperrors.NewBadRequestError("invalid request body", err.Error())
}
