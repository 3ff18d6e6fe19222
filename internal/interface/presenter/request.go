package presenter

import (
	"github.com/shopspring/decimal"
	"github.com/wichananm65/ecommerce-backend/internal/usecase"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password" validate:"required"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type ProfileUpdateRequest struct {
	Name     string `json:"name" validate:"max=150"`
	Email    string `json:"email" validate:"required,email,max=150"`
	Password string `json:"password"`
}

func (r ProfileUpdateRequest) ToInput() usecase.ProfileInput {
	return usecase.ProfileInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type UserUpdateRequest struct {
	Name    string `json:"name" validate:"max=150"`
	Email   string `json:"email" validate:"required,email,max=150"`
	IsAdmin bool   `json:"isAdmin"`
}

func (r UserUpdateRequest) ToInput() usecase.AdminUpdateInput {
	return usecase.AdminUpdateInput{Name: r.Name, Email: r.Email, IsAdmin: r.IsAdmin}
}

type ProductUpdateRequest struct {
	Name         string          `json:"name" validate:"required,max=200"`
	Price        decimal.Decimal `json:"price" validate:"money"`
	Brand        string          `json:"brand" validate:"max=200"`
	CountInStock int             `json:"countInStock" validate:"gte=0"`
	Category     string          `json:"category" validate:"max=200"`
	Description  string          `json:"description"`
}

func (r ProductUpdateRequest) ToInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:         r.Name,
		Price:        r.Price,
		Brand:        r.Brand,
		CountInStock: r.CountInStock,
		Category:     r.Category,
		Description:  r.Description,
	}
}

// ReviewRequest allows a zero rating through; the use case rejects it with
// its own message.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"gte=0,lte=5"`
	Comment string `json:"comment"`
}

type OrderItemRequest struct {
	Product int64           `json:"product" validate:"required"`
	Qty     int             `json:"qty" validate:"gte=1"`
	Price   decimal.Decimal `json:"price" validate:"money"`
}

type ShippingAddressRequest struct {
	Address    string `json:"address" validate:"max=200"`
	City       string `json:"city" validate:"max=200"`
	PostalCode string `json:"postalCode" validate:"max=200"`
	Country    string `json:"country" validate:"max=200"`
}

// OrderCreateRequest leaves an empty orderItems list to the use case.
type OrderCreateRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems" validate:"dive"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"max=200"`
	TaxPrice        decimal.Decimal        `json:"taxPrice" validate:"money"`
	ShippingPrice   decimal.Decimal        `json:"shippingPrice" validate:"money"`
	TotalPrice      decimal.Decimal        `json:"totalPrice" validate:"money"`
}

func (r OrderCreateRequest) ToInput() usecase.CreateOrderInput {
	items := make([]usecase.OrderItemInput, 0, len(r.OrderItems))
	for _, it := range r.OrderItems {
		items = append(items, usecase.OrderItemInput{ProductID: it.Product, Qty: it.Qty, Price: it.Price})
	}
	return usecase.CreateOrderInput{
		Items: items,
		Shipping: usecase.ShippingInput{
			Address:    r.ShippingAddress.Address,
			City:       r.ShippingAddress.City,
			PostalCode: r.ShippingAddress.PostalCode,
			Country:    r.ShippingAddress.Country,
		},
		PaymentMethod: r.PaymentMethod,
		TaxPrice:      r.TaxPrice,
		ShippingPrice: r.ShippingPrice,
		TotalPrice:    r.TotalPrice,
	}
}
