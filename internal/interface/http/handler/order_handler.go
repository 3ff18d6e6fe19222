package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/interface/presenter"
	"github.com/wichananm65/ecommerce-backend/internal/usecase"
)

// OrderHandler serves checkout and order tracking.
type OrderHandler struct {
	usecase   usecase.OrderUsecase
	presenter *presenter.OrderPresenter
}

func NewOrderHandler(usecase usecase.OrderUsecase, presenter *presenter.OrderPresenter) *OrderHandler {
	return &OrderHandler{usecase: usecase, presenter: presenter}
}

func (h *OrderHandler) RegisterRoutes(r fiber.Router, g Guards) {
	r.Post("/api/orders/add/", g.user(h.add)...)
	r.Get("/api/orders/", g.admin(h.listAll)...)
	r.Get("/api/orders/myorders/", g.user(h.listMine)...)
	r.Delete("/api/orders/delete/:id<int>/", g.admin(h.delete)...)
	r.Put("/api/orders/:id<int>/pay/", g.user(h.pay)...)
	r.Put("/api/orders/:id<int>/deliver/", g.admin(h.deliver)...)
	r.Get("/api/orders/:id<int>/", g.user(h.get)...)
}

func (h *OrderHandler) add(c *fiber.Ctx) error {
	var req presenter.OrderCreateRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}

	order, err := h.usecase.Create(c.UserContext(), CurrentUser(c), req.ToInput())
	if err != nil {
		return writeError(c, err)
	}
	return h.respond(c, order)
}

func (h *OrderHandler) listAll(c *fiber.Ctx) error {
	orders, err := h.usecase.ListAll(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.presenter.ToList(c.UserContext(), orders)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *OrderHandler) listMine(c *fiber.Ctx) error {
	orders, err := h.usecase.ListMine(c.UserContext(), CurrentUser(c).ID)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.presenter.ToList(c.UserContext(), orders)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *OrderHandler) get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid order id")
	}
	order, err := h.usecase.GetForUser(c.UserContext(), id, CurrentUser(c))
	if err != nil {
		return writeError(c, err)
	}
	return h.respond(c, order)
}

func (h *OrderHandler) pay(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid order id")
	}
	if _, err := h.usecase.MarkPaid(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON("Order was paid")
}

func (h *OrderHandler) deliver(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid order id")
	}
	if _, err := h.usecase.MarkDelivered(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON("Order was delivered")
}

func (h *OrderHandler) delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid order id")
	}
	if err := h.usecase.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON("Order was deleted")
}

func (h *OrderHandler) respond(c *fiber.Ctx, order *entity.Order) error {
	resp, err := h.presenter.ToResponse(c.UserContext(), order)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}
