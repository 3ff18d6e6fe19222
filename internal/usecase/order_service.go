package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

// OrderItemInput is one checkout line.
type OrderItemInput struct {
	ProductID int64
	Qty       int
	Price     decimal.Decimal
}

// ShippingInput is the delivery address captured at checkout.
type ShippingInput struct {
	Address    string
	City       string
	PostalCode string
	Country    string
}

// CreateOrderInput carries a whole checkout.
type CreateOrderInput struct {
	Items         []OrderItemInput
	Shipping      ShippingInput
	PaymentMethod string
	TaxPrice      decimal.Decimal
	ShippingPrice decimal.Decimal
	TotalPrice    decimal.Decimal
}

// OrderService handles checkout and order lifecycle.
type OrderService struct {
	orders    repository.OrderRepository
	items     repository.OrderItemRepository
	addresses repository.ShippingAddressRepository
	products  repository.ProductRepository
	now       func() time.Time
}

func NewOrderService(
	orders repository.OrderRepository,
	items repository.OrderItemRepository,
	addresses repository.ShippingAddressRepository,
	products repository.ProductRepository,
) *OrderService {
	return &OrderService{
		orders:    orders,
		items:     items,
		addresses: addresses,
		products:  products,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create places an order for user. Every referenced product must exist
// before anything is written; the writes themselves run one after another
// without a transaction.
func (s *OrderService) Create(ctx context.Context, user *entity.User, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, ErrNoOrderItems
	}

	ids := make([]int64, 0, len(input.Items))
	for _, it := range input.Items {
		ids = append(ids, it.ProductID)
	}
	found, err := s.products.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*entity.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, ErrProductNotFound
		}
	}

	ownerID := user.ID
	order, err := s.orders.Create(ctx, &entity.Order{
		UserID:        &ownerID,
		PaymentMethod: input.PaymentMethod,
		TaxPrice:      input.TaxPrice,
		ShippingPrice: input.ShippingPrice,
		TotalPrice:    input.TotalPrice,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.addresses.Create(ctx, &entity.ShippingAddress{
		OrderID:       order.ID,
		Address:       input.Shipping.Address,
		City:          input.Shipping.City,
		PostalCode:    input.Shipping.PostalCode,
		Country:       input.Shipping.Country,
		ShippingPrice: input.ShippingPrice,
	}); err != nil {
		return nil, err
	}

	for _, it := range input.Items {
		product := byID[it.ProductID]
		productID, orderID := product.ID, order.ID
		if _, err := s.items.Create(ctx, &entity.OrderItem{
			ProductID: &productID,
			OrderID:   &orderID,
			Name:      product.Name,
			Qty:       it.Qty,
			Price:     it.Price,
			Image:     product.Image,
		}); err != nil {
			return nil, err
		}

		product.CountInStock -= it.Qty
		updated, err := s.products.Update(ctx, product)
		if err != nil {
			return nil, err
		}
		// the same product may appear on several lines
		byID[it.ProductID] = updated
	}
	return order, nil
}

// GetForUser returns the order when user owns it or is staff.
func (s *OrderService) GetForUser(ctx context.Context, id int64, user *entity.User) (*entity.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsStaff || (order.UserID != nil && *order.UserID == user.ID) {
		return order, nil
	}
	return nil, ErrNotAuthorized
}

func (s *OrderService) ListMine(ctx context.Context, userID int64) ([]*entity.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) ListAll(ctx context.Context) ([]*entity.Order, error) {
	return s.orders.List(ctx)
}

func (s *OrderService) MarkPaid(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.MarkPaid(s.now())
	return s.orders.Update(ctx, order)
}

func (s *OrderService) MarkDelivered(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	order.MarkDelivered(s.now())
	return s.orders.Update(ctx, order)
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}
