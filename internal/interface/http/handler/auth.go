package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/token"
	"github.com/wichananm65/ecommerce-backend/internal/usecase"
)

const currentUserKey = "currentUser"

// GetUserIDFromCtx extracts the user_id claim from the JWT token stored
// in `c.Locals("user")`. Refresh tokens are not accepted.
func GetUserIDFromCtx(c *fiber.Ctx) (int64, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	if token.Type(claims) == token.TypeRefresh {
		return 0, fiber.ErrUnauthorized
	}
	if id, ok := token.UserID(claims); ok {
		return id, nil
	}
	if s, ok := claims[token.ClaimUserID].(string); ok {
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			return id, nil
		}
	}
	return 0, fiber.ErrUnauthorized
}

// RequireUser loads the authenticated user for the rest of the chain.
func RequireUser(users usecase.UserUsecase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := GetUserIDFromCtx(c)
		if err != nil {
			return detail(c, fiber.StatusUnauthorized, "Authentication credentials were not provided.")
		}
		u, err := users.GetByID(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return detail(c, fiber.StatusUnauthorized, "User not found")
			}
			return writeError(c, err)
		}
		c.Locals(currentUserKey, u)
		return c.Next()
	}
}

// RequireStaff must run after RequireUser.
func RequireStaff(c *fiber.Ctx) error {
	u := CurrentUser(c)
	if u == nil || !u.IsStaff {
		return detail(c, fiber.StatusForbidden, "You do not have permission to perform this action.")
	}
	return c.Next()
}

// CurrentUser returns the user loaded by RequireUser, or nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(currentUserKey).(*entity.User)
	return u
}
