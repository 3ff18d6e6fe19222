package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

// OrderRepository is a PostgreSQL implementation of OrderRepository.
type OrderRepository struct {
	db *sql.DB
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

const (
	orderColumns = `id, user_id, payment_method, tax_price, shipping_price, total_price, is_paid, paid_at, is_delivered, delivered_at, created_at`

	insertOrderQuery = `
		INSERT INTO orders (user_id, payment_method, tax_price, shipping_price, total_price, is_paid, paid_at, is_delivered, delivered_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING ` + orderColumns
	getOrderByIDQuery   = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	listOrdersQuery     = `SELECT ` + orderColumns + ` FROM orders ORDER BY id`
	listUserOrdersQuery = `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY id`
	updateOrderQuery    = `
		UPDATE orders
		SET user_id = $1,
			payment_method = $2,
			tax_price = $3,
			shipping_price = $4,
			total_price = $5,
			is_paid = $6,
			paid_at = $7,
			is_delivered = $8,
			delivered_at = $9
		WHERE id = $10
		RETURNING ` + orderColumns
	deleteOrderQuery = `DELETE FROM orders WHERE id = $1`
)

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	var (
		o                   entity.Order
		owner               sql.NullInt64
		paidAt, deliveredAt sql.NullTime
	)
	err := row.Scan(&o.ID, &owner, &o.PaymentMethod, &o.TaxPrice, &o.ShippingPrice, &o.TotalPrice,
		&o.IsPaid, &paidAt, &o.IsDelivered, &deliveredAt, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.UserID = refOf(owner)
	if paidAt.Valid {
		o.PaidAt = &paidAt.Time
	}
	if deliveredAt.Valid {
		o.DeliveredAt = &deliveredAt.Time
	}
	return &o, nil
}

func nullTime(o *entity.Order) (paid, delivered sql.NullTime) {
	if o.PaidAt != nil {
		paid = sql.NullTime{Time: *o.PaidAt, Valid: true}
	}
	if o.DeliveredAt != nil {
		delivered = sql.NullTime{Time: *o.DeliveredAt, Valid: true}
	}
	return paid, delivered
}

func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	paid, delivered := nullTime(order)
	row := r.db.QueryRowContext(ctx, insertOrderQuery,
		nullRef(order.UserID), order.PaymentMethod, order.TaxPrice, order.ShippingPrice, order.TotalPrice,
		order.IsPaid, paid, order.IsDelivered, delivered)
	o, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*entity.Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, getOrderByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, listOrdersQuery)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return collectOrders(rows)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, listUserOrdersQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list user orders: %w", err)
	}
	return collectOrders(rows)
}

func collectOrders(rows *sql.Rows) ([]*entity.Order, error) {
	defer rows.Close()

	out := make([]*entity.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OrderRepository) Update(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	paid, delivered := nullTime(order)
	row := r.db.QueryRowContext(ctx, updateOrderQuery,
		nullRef(order.UserID), order.PaymentMethod, order.TaxPrice, order.ShippingPrice, order.TotalPrice,
		order.IsPaid, paid, order.IsDelivered, delivered, order.ID)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return o, nil
}

// Delete relies on the schema to drop the shipping address and null the
// items' order reference.
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, deleteOrderQuery, id)
}

// OrderItemRepository is a PostgreSQL implementation of OrderItemRepository.
type OrderItemRepository struct {
	db *sql.DB
}

var _ repository.OrderItemRepository = (*OrderItemRepository)(nil)

const (
	orderItemColumns = `id, product_id, order_id, name, qty, price, image`

	insertOrderItemQuery = `
		INSERT INTO order_items (product_id, order_id, name, qty, price, image)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING ` + orderItemColumns
	listOrderItemsQuery   = `SELECT ` + orderItemColumns + ` FROM order_items WHERE order_id = $1 ORDER BY id`
	getOrderItemByIDQuery = `SELECT ` + orderItemColumns + ` FROM order_items WHERE id = $1`
)

func NewOrderItemRepository(db *sql.DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

func scanOrderItem(row rowScanner) (*entity.OrderItem, error) {
	var (
		it             entity.OrderItem
		product, order sql.NullInt64
	)
	if err := row.Scan(&it.ID, &product, &order, &it.Name, &it.Qty, &it.Price, &it.Image); err != nil {
		return nil, err
	}
	it.ProductID = refOf(product)
	it.OrderID = refOf(order)
	return &it, nil
}

func (r *OrderItemRepository) Create(ctx context.Context, item *entity.OrderItem) (*entity.OrderItem, error) {
	row := r.db.QueryRowContext(ctx, insertOrderItemQuery,
		nullRef(item.ProductID), nullRef(item.OrderID), item.Name, item.Qty, item.Price, item.Image)
	it, err := scanOrderItem(row)
	if err != nil {
		return nil, fmt.Errorf("insert order item: %w", err)
	}
	return it, nil
}

func (r *OrderItemRepository) ListByOrder(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, listOrderItemsQuery, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.OrderItem, 0)
	for rows.Next() {
		it, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *OrderItemRepository) GetByID(ctx context.Context, id int64) (*entity.OrderItem, error) {
	it, err := scanOrderItem(r.db.QueryRowContext(ctx, getOrderItemByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return it, nil
}

// ShippingAddressRepository is a PostgreSQL implementation of
// ShippingAddressRepository.
type ShippingAddressRepository struct {
	db *sql.DB
}

var _ repository.ShippingAddressRepository = (*ShippingAddressRepository)(nil)

const (
	addressColumns = `id, order_id, address, city, postal_code, country, shipping_price`

	insertAddressQuery = `
		INSERT INTO shipping_addresses (order_id, address, city, postal_code, country, shipping_price)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING ` + addressColumns
	getAddressByOrderQuery = `SELECT ` + addressColumns + ` FROM shipping_addresses WHERE order_id = $1`
)

func NewShippingAddressRepository(db *sql.DB) *ShippingAddressRepository {
	return &ShippingAddressRepository{db: db}
}

func scanAddress(row rowScanner) (*entity.ShippingAddress, error) {
	var a entity.ShippingAddress
	if err := row.Scan(&a.ID, &a.OrderID, &a.Address, &a.City, &a.PostalCode, &a.Country, &a.ShippingPrice); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ShippingAddressRepository) Create(ctx context.Context, address *entity.ShippingAddress) (*entity.ShippingAddress, error) {
	row := r.db.QueryRowContext(ctx, insertAddressQuery,
		address.OrderID, address.Address, address.City, address.PostalCode, address.Country, address.ShippingPrice)
	a, err := scanAddress(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrConflict
		}
		return nil, fmt.Errorf("insert shipping address: %w", err)
	}
	return a, nil
}

func (r *ShippingAddressRepository) GetByOrder(ctx context.Context, orderID int64) (*entity.ShippingAddress, error) {
	a, err := scanAddress(r.db.QueryRowContext(ctx, getAddressByOrderQuery, orderID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get shipping address: %w", err)
	}
	return a, nil
}
