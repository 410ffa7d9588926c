package middleware

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/bilgisen/atlas/internal/logger"
	"github.com/gofiber/fiber/v2"
)

// AdminKeyHeader carries the admin key, optionally as "Bearer <key>".
const AdminKeyHeader = "X-API-Key"

var (
	errMissingKey = errors.New("missing API key")
	errInvalidKey = errors.New("invalid API key")
)

// AdminOnly guards admin endpoints with a single shared key. A missing key
// is a 401, a wrong one a 403. An empty adminKey rejects every request.
func AdminOnly(adminKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := strings.TrimPrefix(c.Get(AdminKeyHeader), "Bearer ")
		switch {
		case key == "":
			return rejectKey(c, errMissingKey)
		case adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(adminKey)) != 1:
			return rejectKey(c, errInvalidKey)
		}
		return c.Next()
	}
}

func rejectKey(c *fiber.Ctx, err error) error {
	logger.Get().Warn().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("ip", c.IP()).
		Str("request_id", GetRequestID(c)).
		Err(err).
		Msg("Authentication failed")

	if errors.Is(err, errMissingKey) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "API key is required"})
	}
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin access required"})
}
