package dto

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/fortune-service/internal/domain"
)

// ErrBinding indicates the request body could not be decoded.
var ErrBinding = errors.New("binding failed")

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator instance.
// Field names in errors come from the label tag, then the json tag.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}

			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("notblank", validateNotBlank)
	})

	return validate
}

// validationMessages maps validation tags to domain-style messages.
var validationMessages = map[string]string{
	"required": domain.MsgTextBlank,
	"notblank": domain.MsgTextBlank,
	"max":      "is too long (maximum is {param} characters)",
}

// Validate checks struct tags and reports failures as a *domain.ValidationError
// so they render exactly like model validation failures.
func Validate(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	verr := &domain.ValidationError{}
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), validationMessage(fe))
	}

	return verr
}

// BindAndValidate decodes the body according to its content type and
// validates it. Any type IsJSONContentType accepts is decoded as JSON.
// An empty body binds to the zero value.
func BindAndValidate(c *gin.Context, v any) error {
	b := binding.Default(c.Request.Method, c.ContentType())
	if IsJSONContentType(c.ContentType()) {
		b = binding.JSON
	}

	if err := c.ShouldBindWith(v, b); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// IsJSONContentType reports whether mime (without parameters) declares JSON:
// application/json or any +json structured suffix. The CSRF check and the
// request decoder both use it.
func IsJSONContentType(mime string) bool {
	mime = strings.ToLower(strings.TrimSpace(mime))
	return mime == "application/json" || strings.HasSuffix(mime, "+json")
}

// IsBindingError reports whether err came from decoding the request body.
func IsBindingError(err error) bool {
	return errors.Is(err, ErrBinding)
}

func validationMessage(fe validator.FieldError) string {
	if msg, ok := validationMessages[fe.Tag()]; ok {
		return strings.ReplaceAll(msg, "{param}", fe.Param())
	}

	return "failed validation: " + fe.Tag()
}

// validateNotBlank rejects strings that are empty after trimming whitespace.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
