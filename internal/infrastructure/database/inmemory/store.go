package inmemory

import (
	"sort"
	"sync"

	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

// Store keeps every table behind one lock so deletes can apply the same
// set-null and cascade actions the postgres schema declares.
type Store struct {
	mu sync.RWMutex

	users     map[int64]*entity.User
	products  map[int64]*entity.Product
	reviews   map[int64]*entity.Review
	orders    map[int64]*entity.Order
	items     map[int64]*entity.OrderItem
	addresses map[int64]*entity.ShippingAddress

	nextUserID    int64
	nextProductID int64
	nextReviewID  int64
	nextOrderID   int64
	nextItemID    int64
	nextAddressID int64
}

func NewStore() *Store {
	return &Store{
		users:         make(map[int64]*entity.User),
		products:      make(map[int64]*entity.Product),
		reviews:       make(map[int64]*entity.Review),
		orders:        make(map[int64]*entity.Order),
		items:         make(map[int64]*entity.OrderItem),
		addresses:     make(map[int64]*entity.ShippingAddress),
		nextUserID:    1,
		nextProductID: 1,
		nextReviewID:  1,
		nextOrderID:   1,
		nextItemID:    1,
		nextAddressID: 1,
	}
}

func (s *Store) Users() *UserRepository           { return &UserRepository{store: s} }
func (s *Store) Products() *ProductRepository     { return &ProductRepository{store: s} }
func (s *Store) Reviews() *ReviewRepository       { return &ReviewRepository{store: s} }
func (s *Store) Orders() *OrderRepository         { return &OrderRepository{store: s} }
func (s *Store) OrderItems() *OrderItemRepository { return &OrderItemRepository{store: s} }
func (s *Store) ShippingAddresses() *ShippingAddressRepository {
	return &ShippingAddressRepository{store: s}
}

// sortedIDs returns map keys in ascending order, which is the retrieval
// order every list method uses.
func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sameRef(ref *int64, id int64) bool {
	return ref != nil && *ref == id
}

func copyRef(ref *int64) *int64 {
	if ref == nil {
		return nil
	}
	v := *ref
	return &v
}

// Set exposes the store through the repository interfaces.
func (s *Store) Set() repository.Set {
	return repository.Set{
		Users:             s.Users(),
		Products:          s.Products(),
		Reviews:           s.Reviews(),
		Orders:            s.Orders(),
		OrderItems:        s.OrderItems(),
		ShippingAddresses: s.ShippingAddresses(),
	}
}
