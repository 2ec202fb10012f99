package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failing field in a submission, reported to the client in
// its display language.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is the failure value produced by the validator. It is a
// plain value consumed by handlers, never a control-flow exception.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator. Field names in errors are the JSON keys.
func NewValidator() *echoValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Schema failures come back
// as *ValidationError with one entry per failing field.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return &ValidationError{Fields: fields}
	}
	return err
}

// fieldMessage maps a failing field to the product's Vietnamese copy, falling
// back to a generic message per validation tag.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "fullName":
		return "Họ và tên phải có ít nhất 2 ký tự"
	case "phone":
		return "Số điện thoại không hợp lệ"
	case "email":
		return "Email không hợp lệ"
	case "organization":
		return "Tên tổ chức phải có ít nhất 2 ký tự"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Trường %s là bắt buộc", fe.Field())
	case "min":
		return fmt.Sprintf("Trường %s phải có ít nhất %s ký tự", fe.Field(), fe.Param())
	case "email":
		return "Email không hợp lệ"
	default:
		return fmt.Sprintf("Trường %s không hợp lệ", fe.Field())
	}
}
