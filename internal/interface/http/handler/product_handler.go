package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/ecommerce-backend/internal/interface/presenter"
	"github.com/wichananm65/ecommerce-backend/internal/usecase"
)

// ProductHandler serves the catalogue and reviews.
type ProductHandler struct {
	usecase   usecase.ProductUsecase
	presenter *presenter.ProductPresenter
}

func NewProductHandler(usecase usecase.ProductUsecase, presenter *presenter.ProductPresenter) *ProductHandler {
	return &ProductHandler{usecase: usecase, presenter: presenter}
}

// RegisterRoutes registers fixed paths before /:id so they are not shadowed.
func (h *ProductHandler) RegisterRoutes(r fiber.Router, g Guards) {
	r.Get("/api/products/", h.list)
	r.Get("/api/products/top/", h.top)
	r.Post("/api/products/create/", g.admin(h.create)...)
	r.Post("/api/products/upload/", g.admin(h.uploadImage)...)
	r.Put("/api/products/update/:id<int>/", g.admin(h.update)...)
	r.Delete("/api/products/delete/:id<int>/", g.admin(h.delete)...)
	r.Post("/api/products/:id<int>/reviews/", g.user(h.createReview)...)
	r.Get("/api/products/:id<int>/", h.get)
}

func (h *ProductHandler) list(c *fiber.Ctx) error {
	page, err := h.usecase.List(c.UserContext(), c.Query("keyword"), c.Query("page"))
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.presenter.ToPage(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProductHandler) top(c *fiber.Ctx) error {
	products, err := h.usecase.Top(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.presenter.ToList(c.UserContext(), products)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProductHandler) get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid product id")
	}
	product, err := h.usecase.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.presenter.ToResponse(c.UserContext(), product)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProductHandler) create(c *fiber.Ctx) error {
	product, err := h.usecase.CreateSample(c.UserContext(), CurrentUser(c).ID)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.presenter.ToResponse(c.UserContext(), product)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProductHandler) update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid product id")
	}
	var req presenter.ProductUpdateRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}

	product, err := h.usecase.Update(c.UserContext(), id, req.ToInput())
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.presenter.ToResponse(c.UserContext(), product)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

func (h *ProductHandler) uploadImage(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.FormValue("product_id"), 10, 64)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid product id")
	}
	file, err := c.FormFile("image")
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "image is required")
	}
	f, err := file.Open()
	if err != nil {
		return writeError(c, err)
	}
	defer f.Close()

	if _, err := h.usecase.UploadImage(c.UserContext(), id, file.Filename, f); err != nil {
		return writeError(c, err)
	}
	return c.JSON("Image was uploaded")
}

func (h *ProductHandler) delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.usecase.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON("Product Deleted")
}

func (h *ProductHandler) createReview(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return detail(c, fiber.StatusBadRequest, "invalid product id")
	}
	var req presenter.ReviewRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}

	if _, err := h.usecase.AddReview(c.UserContext(), id, CurrentUser(c), req.Rating, req.Comment); err != nil {
		return writeError(c, err)
	}
	return c.JSON("Review Added")
}
