package presenter

import (
	"context"
	"encoding/json"
	"time"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

type OrderItemResponse struct {
	ID      int64  `json:"_id"`
	Name    string `json:"name"`
	Qty     int    `json:"qty"`
	Price   string `json:"price"`
	Image   string `json:"image"`
	Product *int64 `json:"product"`
	Order   *int64 `json:"order"`
}

type ShippingAddressResponse struct {
	ID            int64  `json:"_id"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	ShippingPrice string `json:"shippingPrice"`
	Order         int64  `json:"order"`
}

// ShippingAddressField is the address object, or false when the order has
// none or it could not be read.
type ShippingAddressField struct {
	Address *ShippingAddressResponse
}

func (f ShippingAddressField) MarshalJSON() ([]byte, error) {
	if f.Address == nil {
		return []byte("false"), nil
	}
	return json.Marshal(f.Address)
}

type OrderResponse struct {
	ID              int64                `json:"_id"`
	OrderItems      []*OrderItemResponse `json:"orderItems"`
	ShippingAddress ShippingAddressField `json:"shippingAddress"`
	User            *UserResponse        `json:"user"`
	PaymentMethod   string               `json:"paymentMethod"`
	TaxPrice        string               `json:"taxPrice"`
	ShippingPrice   string               `json:"shippingPrice"`
	TotalPrice      string               `json:"totalPrice"`
	IsPaid          bool                 `json:"isPaid"`
	PaidAt          *time.Time           `json:"paidAt"`
	IsDelivered     bool                 `json:"isDelivered"`
	DeliveredAt     *time.Time           `json:"deliveredAt"`
	CreatedAt       time.Time            `json:"createdAt"`
}

func OrderItemToResponse(it *entity.OrderItem) *OrderItemResponse {
	return &OrderItemResponse{
		ID:      it.ID,
		Name:    it.Name,
		Qty:     it.Qty,
		Price:   money(it.Price),
		Image:   it.Image,
		Product: it.ProductID,
		Order:   it.OrderID,
	}
}

func ShippingAddressToResponse(a *entity.ShippingAddress) *ShippingAddressResponse {
	return &ShippingAddressResponse{
		ID:            a.ID,
		Address:       a.Address,
		City:          a.City,
		PostalCode:    a.PostalCode,
		Country:       a.Country,
		ShippingPrice: money(a.ShippingPrice),
		Order:         a.OrderID,
	}
}

// OrderPresenter assembles an order with its items, address and owner.
type OrderPresenter struct {
	items     repository.OrderItemRepository
	addresses repository.ShippingAddressRepository
	users     repository.UserRepository
	user      *UserPresenter
}

func NewOrderPresenter(
	items repository.OrderItemRepository,
	addresses repository.ShippingAddressRepository,
	users repository.UserRepository,
	user *UserPresenter,
) *OrderPresenter {
	return &OrderPresenter{items: items, addresses: addresses, users: users, user: user}
}

func (p *OrderPresenter) ToResponse(ctx context.Context, order *entity.Order) (*OrderResponse, error) {
	items, err := p.items.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	orderItems := make([]*OrderItemResponse, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, OrderItemToResponse(it))
	}

	var address ShippingAddressField
	// any lookup failure renders as false
	if a, err := p.addresses.GetByOrder(ctx, order.ID); err == nil {
		address.Address = ShippingAddressToResponse(a)
	}

	var owner *UserResponse
	if order.UserID != nil {
		u, err := p.users.GetByID(ctx, *order.UserID)
		if err != nil {
			return nil, err
		}
		owner = p.user.ToResponse(u)
	}

	return &OrderResponse{
		ID:              order.ID,
		OrderItems:      orderItems,
		ShippingAddress: address,
		User:            owner,
		PaymentMethod:   order.PaymentMethod,
		TaxPrice:        money(order.TaxPrice),
		ShippingPrice:   money(order.ShippingPrice),
		TotalPrice:      money(order.TotalPrice),
		IsPaid:          order.IsPaid,
		PaidAt:          order.PaidAt,
		IsDelivered:     order.IsDelivered,
		DeliveredAt:     order.DeliveredAt,
		CreatedAt:       order.CreatedAt,
	}, nil
}

func (p *OrderPresenter) ToList(ctx context.Context, orders []*entity.Order) ([]*OrderResponse, error) {
	result := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp, err := p.ToResponse(ctx, o)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}
