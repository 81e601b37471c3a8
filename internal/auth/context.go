package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	userIDKey    = "user_id"
	userEmailKey = "user_email"
)

// UserID returns the authenticated user's id placed in context by the
// UserContext middleware.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := c.Locals(userIDKey).(uuid.UUID); ok {
		return id, nil
	}
	return uuid.Nil, errors.New("no authenticated user in context")
}

// UserEmail returns the authenticated user's email, or "" when the token
// carried none.
func UserEmail(c *fiber.Ctx) string {
	if email, ok := c.Locals(userEmailKey).(string); ok {
		return email
	}
	return ""
}

// ClaimsFromToken extracts the userId and email claims from a verified JWT.
func ClaimsFromToken(c *fiber.Ctx) (uuid.UUID, string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, "", errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", errors.New("invalid claims")
	}

	sub, ok := claims["userId"].(string)
	if !ok || sub == "" {
		return uuid.Nil, "", errors.New("missing userId claim")
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", err
	}

	email, _ := claims["email"].(string)
	return id, email, nil
}

// SetUser stores the resolved identity in context locals.
func SetUser(c *fiber.Ctx, id uuid.UUID, email string) {
	c.Locals(userIDKey, id)
	c.Locals(userEmailKey, email)
}
