package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/ecommerce-backend/internal/interface/presenter"
	"github.com/wichananm65/ecommerce-backend/internal/usecase"
)

// UserHandler adapts HTTP requests to use case calls.
type UserHandler struct {
	usecase   usecase.UserUsecase
	presenter *presenter.UserPresenter
}

func NewUserHandler(usecase usecase.UserUsecase, presenter *presenter.UserPresenter) *UserHandler {
	return &UserHandler{usecase: usecase, presenter: presenter}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, g Guards) {
	r.Post("/api/users/login/", h.login)
	r.Post("/api/users/register/", h.register)
	r.Get("/api/users/profile/", g.user(h.getProfile)...)
	r.Put("/api/users/profile/update/", g.user(h.updateProfile)...)

	r.Get("/api/users/", g.admin(h.list)...)
	r.Put("/api/users/update/:id<int>/", g.admin(h.update)...)
	r.Delete("/api/users/delete/:id<int>/", g.admin(h.delete)...)
	r.Get("/api/users/:id<int>/", g.admin(h.get)...)
}

func (h *UserHandler) login(c *fiber.Ctx) error {
	var req presenter.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := h.usecase.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.presenter.ToLoginResponse(user)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *UserHandler) register(c *fiber.Ctx) error {
	var req presenter.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := h.usecase.Register(c.UserContext(), req.ToInput())
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.presenter.ToResponseWithToken(user)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *UserHandler) getProfile(c *fiber.Ctx) error {
	return c.JSON(h.presenter.ToResponse(CurrentUser(c)))
}

func (h *UserHandler) updateProfile(c *fiber.Ctx) error {
	var req presenter.ProfileUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := h.usecase.UpdateProfile(c.UserContext(), CurrentUser(c).ID, req.ToInput())
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.presenter.ToResponseWithToken(user)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *UserHandler) list(c *fiber.Ctx) error {
	users, err := h.usecase.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.presenter.ToList(users))
}

func (h *UserHandler) get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid user id")
	}
	user, err := h.usecase.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.presenter.ToResponse(user))
}

func (h *UserHandler) update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid user id")
	}
	var req presenter.UserUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}

	user, err := h.usecase.UpdateUser(c.UserContext(), id, req.ToInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.presenter.ToResponse(user))
}

func (h *UserHandler) delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid user id")
	}
	if err := h.usecase.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON("User was deleted")
}
