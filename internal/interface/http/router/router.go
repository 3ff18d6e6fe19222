package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/config"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/storage"
	"github.com/wichananm65/ecommerce-backend/internal/infrastructure/token"
	"github.com/wichananm65/ecommerce-backend/internal/interface/http/handler"
	"github.com/wichananm65/ecommerce-backend/internal/interface/presenter"
	"github.com/wichananm65/ecommerce-backend/internal/usecase"
)

// New wires services, presenters and handlers into a fiber app.
func New(cfg config.Config, issuer *token.Issuer, repos repository.Set, images storage.ImageStore) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Static("/images", cfg.UploadDir)

	users := usecase.NewUserService(repos.Users)
	products := usecase.NewProductService(repos.Products, repos.Reviews, images, cfg.PageSize)
	orders := usecase.NewOrderService(repos.Orders, repos.OrderItems, repos.ShippingAddresses, repos.Products)

	userPresenter := presenter.NewUserPresenter(issuer)
	productPresenter := presenter.NewProductPresenter(repos.Reviews)
	orderPresenter := presenter.NewOrderPresenter(repos.OrderItems, repos.ShippingAddresses, repos.Users, userPresenter)

	authn := jwtware.New(jwtware.Config{
		SigningKey:   issuer.SigningKey(),
		ErrorHandler: authError,
	})
	guards := handler.Guards{
		User:  []fiber.Handler{authn, handler.RequireUser(users)},
		Admin: []fiber.Handler{authn, handler.RequireUser(users), handler.RequireStaff},
	}

	handler.NewUserHandler(users, userPresenter).RegisterRoutes(app, guards)
	handler.NewProductHandler(products, productPresenter).RegisterRoutes(app, guards)
	handler.NewOrderHandler(orders, orderPresenter).RegisterRoutes(app, guards)

	return app
}

func authError(c *fiber.Ctx, err error) error {
	msg := "Given token not valid for any token type"
	if err.Error() == "Missing or malformed JWT" {
		msg = "Authentication credentials were not provided."
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": msg})
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal server error."
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"detail": msg})
}
