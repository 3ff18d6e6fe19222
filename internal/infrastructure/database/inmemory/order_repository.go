package inmemory

import (
	"context"
	"time"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

// OrderRepository is an in-memory implementation of OrderRepository.
type OrderRepository struct {
	store *Store
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.UserID = copyRef(o.UserID)
	if o.PaidAt != nil {
		t := *o.PaidAt
		c.PaidAt = &t
	}
	if o.DeliveredAt != nil {
		t := *o.DeliveredAt
		c.DeliveredAt = &t
	}
	return &c
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o := cloneOrder(order)
	o.ID = r.store.nextOrderID
	r.store.nextOrderID++
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	r.store.orders[o.ID] = o
	return cloneOrder(o), nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneOrder(o), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Order, 0, len(r.store.orders))
	for _, id := range sortedIDs(r.store.orders) {
		out = append(out, cloneOrder(r.store.orders[id]))
	}
	return out, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Order, 0)
	for _, id := range sortedIDs(r.store.orders) {
		if o := r.store.orders[id]; sameRef(o.UserID, userID) {
			out = append(out, cloneOrder(o))
		}
	}
	return out, nil
}

func (r *OrderRepository) Update(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.orders[order.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	o := cloneOrder(order)
	o.CreatedAt = existing.CreatedAt
	r.store.orders[o.ID] = o
	return cloneOrder(o), nil
}

// Delete removes the order and its shipping address; order items stay with
// a nil order reference.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.store.orders, id)

	for addrID, a := range r.store.addresses {
		if a.OrderID == id {
			delete(r.store.addresses, addrID)
		}
	}
	for _, it := range r.store.items {
		if sameRef(it.OrderID, id) {
			it.OrderID = nil
		}
	}
	return nil
}

// OrderItemRepository is an in-memory implementation of OrderItemRepository.
type OrderItemRepository struct {
	store *Store
}

var _ repository.OrderItemRepository = (*OrderItemRepository)(nil)

func cloneItem(it *entity.OrderItem) *entity.OrderItem {
	c := *it
	c.ProductID = copyRef(it.ProductID)
	c.OrderID = copyRef(it.OrderID)
	return &c
}

func (r *OrderItemRepository) Create(ctx context.Context, item *entity.OrderItem) (*entity.OrderItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	it := cloneItem(item)
	it.ID = r.store.nextItemID
	r.store.nextItemID++
	r.store.items[it.ID] = it
	return cloneItem(it), nil
}

func (r *OrderItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.OrderItem, 0)
	for _, id := range sortedIDs(r.store.items) {
		if it := r.store.items[id]; sameRef(it.OrderID, orderID) {
			out = append(out, cloneItem(it))
		}
	}
	return out, nil
}

func (r *OrderItemRepository) GetByID(ctx context.Context, id int64) (*entity.OrderItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	it, ok := r.store.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneItem(it), nil
}

// ShippingAddressRepository is an in-memory implementation of
// ShippingAddressRepository.
type ShippingAddressRepository struct {
	store *Store
}

var _ repository.ShippingAddressRepository = (*ShippingAddressRepository)(nil)

func (r *ShippingAddressRepository) Create(ctx context.Context, address *entity.ShippingAddress) (*entity.ShippingAddress, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[address.OrderID]; !ok {
		return nil, repository.ErrNotFound
	}
	for _, a := range r.store.addresses {
		if a.OrderID == address.OrderID {
			return nil, repository.ErrConflict
		}
	}

	a := *address
	a.ID = r.store.nextAddressID
	r.store.nextAddressID++
	r.store.addresses[a.ID] = &a

	result := a
	return &result, nil
}

func (r *ShippingAddressRepository) GetByOrder(ctx context.Context, orderID int64) (*entity.ShippingAddress, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, a := range r.store.addresses {
		if a.OrderID == orderID {
			found := *a
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}
