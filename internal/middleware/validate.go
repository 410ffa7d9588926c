package middleware

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/bilgisen/atlas/internal/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const queryKey = "queryParams"

// Validator is a struct that holds the validator instance
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate validates s against its struct tags.
func (v *Validator) Validate(s interface{}) error {
	return v.validate.Struct(s)
}

// ValidationError lists the rejected fields and the rule each one broke.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f, tag := range e.Fields {
		names = append(names, f+" ("+tag+")")
	}
	sort.Strings(names)
	return e.Message + ": " + strings.Join(names, ", ")
}

// ValidateQuery parses the query string into a fresh T on every request,
// validates it and stores it for Query.
func ValidateQuery[T any]() fiber.Handler {
	v := NewValidator()

	return func(c *fiber.Ctx) error {
		params := new(T)
		if err := c.QueryParser(params); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
		}

		if err := v.Validate(params); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return err
			}
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return &ValidationError{Message: "Invalid query parameters", Fields: fields}
		}

		c.Locals(queryKey, params)
		return c.Next()
	}
}

// Query returns the value stored by ValidateQuery, or T's zero value.
func Query[T any](c *fiber.Ctx) T {
	if p, ok := c.Locals(queryKey).(*T); ok && p != nil {
		return *p
	}
	var zero T
	return zero
}

// IsAPI reports whether the request targets the JSON API.
func IsAPI(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// PageRenderer renders an HTML error page.
type PageRenderer func(c *fiber.Ctx, code int, message string) error

// NewErrorHandler answers API requests with JSON and everything else with
// an HTML page from render. A nil render falls back to JSON everywhere.
func NewErrorHandler(render PageRenderer) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := http.StatusText(code)

		var fe *fiber.Error
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			code = fiber.StatusUnprocessableEntity
			message = ve.Message
		case errors.As(err, &fe):
			code = fe.Code
			message = fe.Message
		}

		event := logger.Get().Warn()
		if code >= fiber.StatusInternalServerError {
			event = logger.Get().Error()
		}
		event.
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", GetRequestID(c)).
			Int("status", code).
			Msg("HTTP error")

		if render != nil && !IsAPI(c) {
			return render(c, code, message)
		}

		body := fiber.Map{"error": message}
		if ve != nil {
			body["fields"] = ve.Fields
		}
		return c.Status(code).JSON(body)
	}
}
