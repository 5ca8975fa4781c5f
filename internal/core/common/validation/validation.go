// Package validation runs struct-tag validation and converts failures into
// the VALIDATION_FAILED AppError shown to the operator.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator instance. Field names are reported
// by their json tag so messages match what the client sent.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
		_ = validate.RegisterValidation("notblank", notBlank)
	})
	return validate
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return strings.TrimSpace(field.String()) != ""
}

// Struct validates s. It returns nil or an *errors.AppError whose details list
// every failed field.
func Struct(s interface{}) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError(err.Error(), errors.ErrCodeInvalidRequest)
	}

	builder := NewBuilder()
	for _, fe := range fieldErrors {
		builder.Add(fe.Field(), message(fe), code(fe))
	}
	return builder.Err()
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s wajib diisi", field)
	case "min", "gte":
		return fmt.Sprintf("%s minimal %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s maksimal %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s harus salah satu dari: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s bukan alamat email yang valid", field)
	case "numeric":
		return fmt.Sprintf("%s harus berupa angka", field)
	default:
		return fmt.Sprintf("%s tidak valid", field)
	}
}

func code(fe validator.FieldError) errors.ErrorCode {
	switch fe.Tag() {
	case "required", "notblank":
		return errors.ErrCodeRequired
	case "min", "max", "gte", "lte":
		return errors.ErrCodeOutOfRange
	case "oneof":
		return errors.ErrCodeInvalidOption
	default:
		return errors.ErrCodeValidationFailed
	}
}

// Builder collects field errors from checks that struct tags cannot express.
type Builder struct {
	errs []errors.ValidationError
}

func NewBuilder() *Builder {
	return &Builder{errs: make([]errors.ValidationError, 0)}
}

func (b *Builder) Add(field, message string, code errors.ErrorCode) *Builder {
	b.errs = append(b.errs, errors.ValidationError{Field: field, Message: message, Code: string(code)})
	return b
}

// Merge appends the field errors carried by err. Other errors are recorded
// under the empty field name.
func (b *Builder) Merge(err error) *Builder {
	if err == nil {
		return b
	}
	if appErr, ok := errors.IsAppError(err); ok {
		if details, ok := appErr.Details.(errors.ValidationErrors); ok {
			b.errs = append(b.errs, details.Errors...)
			return b
		}
		return b.Add("", appErr.Message, appErr.Code)
	}
	return b.Add("", err.Error(), errors.ErrCodeValidationFailed)
}

// Err returns nil when nothing was collected.
func (b *Builder) Err() error {
	if len(b.errs) == 0 {
		return nil
	}
	return errors.NewValidationError("Validasi gagal", errors.ErrCodeValidationFailed).
		WithDetails(errors.ValidationErrors{Errors: b.errs})
}
