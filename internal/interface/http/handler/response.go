package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
	"github.com/wichananm65/ecommerce-backend/internal/interface/presenter"
	"github.com/wichananm65/ecommerce-backend/internal/usecase"
)

// Guards are the middleware chains that run in front of protected routes.
type Guards struct {
	User  []fiber.Handler
	Admin []fiber.Handler
}

func (g Guards) user(h fiber.Handler) []fiber.Handler {
	return append(append([]fiber.Handler{}, g.User...), h)
}

func (g Guards) admin(h fiber.Handler) []fiber.Handler {
	return append(append([]fiber.Handler{}, g.Admin...), h)
}

type errorMapping struct {
	err    error
	status int
	detail string
}

var knownErrors = []errorMapping{
	{usecase.ErrUserExists, fiber.StatusBadRequest, "User with this email already exists"},
	{usecase.ErrInvalidCredentials, fiber.StatusUnauthorized, "No active account found with the given credentials"},
	{usecase.ErrAlreadyReviewed, fiber.StatusBadRequest, "Product already reviewed"},
	{usecase.ErrRatingRequired, fiber.StatusBadRequest, "Please select a rating"},
	{usecase.ErrNoOrderItems, fiber.StatusBadRequest, "No Order Items"},
	{usecase.ErrProductNotFound, fiber.StatusBadRequest, "Product not found"},
	{usecase.ErrNotAuthorized, fiber.StatusBadRequest, "Not authorized to view this order"},
	{repository.ErrNotFound, fiber.StatusNotFound, "Not found."},
}

func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

// writeError maps use case and validation errors to responses. Anything
// unrecognised is logged and reported as a 500.
func writeError(c *fiber.Ctx, err error) error {
	var verr *presenter.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request.", "errors": verr.Fields})
	}
	for _, m := range knownErrors {
		if errors.Is(err, m.err) {
			return detail(c, m.status, m.detail)
		}
	}
	log.Printf("handler: %s %s: %v", c.Method(), c.Path(), err)
	return detail(c, fiber.StatusInternalServerError, "Internal server error.")
}

// parseBody decodes and validates a JSON payload.
func parseBody(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return &presenter.ValidationError{Fields: map[string]string{"body": "Malformed request body."}}
	}
	return presenter.Validate(req)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
