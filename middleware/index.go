package middleware

import (
	"errors"
	"strings"

	"ground_manager/helper"
	"ground_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")
		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

// OptionalJWT parses a token when present but never rejects the request;
// public booking endpoints work for guests too.
func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" {
			c.Locals("user", nil)
			return c.Next()
		}
		jwtToken, err := helper.ParseToken(strings.TrimPrefix(auth, "Bearer "))
		if err != nil || !jwtToken.Valid {
			c.Locals("user", nil)
			return c.Next()
		}
		c.Locals("user", jwtToken)
		return c.Next()
	}
}
