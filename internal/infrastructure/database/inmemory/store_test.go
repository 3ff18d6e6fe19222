package inmemory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/ecommerce-backend/internal/domain/entity"
	"github.com/wichananm65/ecommerce-backend/internal/domain/repository"
)

func int64Ptr(v int64) *int64 { return &v }

func TestUserRepository_CreateSyncsUsername(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	in := &entity.User{Username: "ignored", Email: "ann@example.com", FirstName: "Ann"}
	created, err := users.Create(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "ann@example.com", created.Username)
	assert.False(t, created.DateJoined.IsZero())
	assert.Equal(t, "ignored", in.Username, "argument must not be mutated")

	got, err := users.GetByUsername(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUserRepository_EmptyEmailKeepsUsername(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	created, err := users.Create(ctx, &entity.User{Username: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "bob", created.Username)
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	_, err := users.Create(ctx, &entity.User{Email: "a@example.com"})
	require.NoError(t, err)
	second, err := users.Create(ctx, &entity.User{Email: "b@example.com"})
	require.NoError(t, err)

	_, err = users.Create(ctx, &entity.User{Username: "x", Email: "a@example.com"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	second.Email = "a@example.com"
	_, err = users.Update(ctx, second)
	assert.ErrorIs(t, err, repository.ErrConflict)

	stored, err := users.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", stored.Username)
}

func TestUserRepository_UpdateKeepsDateJoined(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	joined := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	created, err := users.Create(ctx, &entity.User{Email: "a@example.com", DateJoined: joined})
	require.NoError(t, err)

	created.Email = "new@example.com"
	created.DateJoined = time.Time{}
	updated, err := users.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Username)
	assert.True(t, updated.DateJoined.Equal(joined))
}

func TestUserRepository_DeleteNullsReferences(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	u, err := store.Users().Create(ctx, &entity.User{Email: "a@example.com"})
	require.NoError(t, err)
	p, err := store.Products().Create(ctx, entity.NewProduct(int64Ptr(u.ID), "Mouse"))
	require.NoError(t, err)
	rv, err := store.Reviews().Create(ctx, &entity.Review{ProductID: int64Ptr(p.ID), UserID: int64Ptr(u.ID), Rating: 4})
	require.NoError(t, err)
	o, err := store.Orders().Create(ctx, &entity.Order{UserID: int64Ptr(u.ID)})
	require.NoError(t, err)

	require.NoError(t, store.Users().Delete(ctx, u.ID))

	gotP, err := store.Products().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, gotP.UserID)

	reviews, err := store.Reviews().ListByProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, rv.ID, reviews[0].ID)
	assert.Nil(t, reviews[0].UserID)

	gotO, err := store.Orders().GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Nil(t, gotO.UserID)

	assert.ErrorIs(t, store.Users().Delete(ctx, u.ID), repository.ErrNotFound)
}

func TestProductRepository_DeleteNullsReviewAndItem(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	p, err := store.Products().Create(ctx, entity.NewProduct(nil, "Camera"))
	require.NoError(t, err)
	o, err := store.Orders().Create(ctx, &entity.Order{})
	require.NoError(t, err)
	rv, err := store.Reviews().Create(ctx, &entity.Review{ProductID: int64Ptr(p.ID), Rating: 5})
	require.NoError(t, err)
	it, err := store.OrderItems().Create(ctx, &entity.OrderItem{ProductID: int64Ptr(p.ID), OrderID: int64Ptr(o.ID), Qty: 1})
	require.NoError(t, err)

	require.NoError(t, store.Products().Delete(ctx, p.ID))

	_, err = store.Products().GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.Nil(t, store.reviews[rv.ID].ProductID)
	gotItem, err := store.OrderItems().GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Nil(t, gotItem.ProductID)
	require.NotNil(t, gotItem.OrderID)
	assert.Equal(t, o.ID, *gotItem.OrderID)
}

func TestOrderRepository_DeleteCascadesAddress(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	o, err := store.Orders().Create(ctx, &entity.Order{PaymentMethod: "PayPal"})
	require.NoError(t, err)
	_, err = store.ShippingAddresses().Create(ctx, &entity.ShippingAddress{OrderID: o.ID, City: "Bangkok"})
	require.NoError(t, err)
	it, err := store.OrderItems().Create(ctx, &entity.OrderItem{OrderID: int64Ptr(o.ID), Qty: 2})
	require.NoError(t, err)

	require.NoError(t, store.Orders().Delete(ctx, o.ID))

	_, err = store.ShippingAddresses().GetByOrder(ctx, o.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Empty(t, store.addresses)

	gotItem, err := store.OrderItems().GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Nil(t, gotItem.OrderID)
}

func TestShippingAddressRepository_OnePerOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.ShippingAddresses().Create(ctx, &entity.ShippingAddress{OrderID: 42})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	o, err := store.Orders().Create(ctx, &entity.Order{})
	require.NoError(t, err)
	_, err = store.ShippingAddresses().Create(ctx, &entity.ShippingAddress{OrderID: o.ID})
	require.NoError(t, err)
	_, err = store.ShippingAddresses().Create(ctx, &entity.ShippingAddress{OrderID: o.ID})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestProductRepository_ListKeywordAndPaging(t *testing.T) {
	ctx := context.Background()
	products := NewStore().Products()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"Gaming Mouse", "Keyboard", "mouse pad", "Monitor"} {
		p := entity.NewProduct(nil, name)
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		_, err := products.Create(ctx, p)
		require.NoError(t, err)
	}

	got, total, err := products.List(ctx, repository.ProductFilter{Keyword: "MOUSE"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, "mouse pad", got[0].Name)
	assert.Equal(t, "Gaming Mouse", got[1].Name)

	got, total, err = products.List(ctx, repository.ProductFilter{Limit: 3, Offset: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, got, 1)
	assert.Equal(t, "Gaming Mouse", got[0].Name)

	got, _, err = products.List(ctx, repository.ProductFilter{Limit: 3, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProductRepository_ListTopRated(t *testing.T) {
	ctx := context.Background()
	products := NewStore().Products()

	for _, r := range []string{"3.5", "4.5", "4", "5"} {
		p := entity.NewProduct(nil, "p"+r)
		p.Rating = decimal.RequireFromString(r)
		_, err := products.Create(ctx, p)
		require.NoError(t, err)
	}

	top, err := products.ListTopRated(ctx, decimal.NewFromInt(4), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p5", top[0].Name)
	assert.Equal(t, "p4.5", top[1].Name)
}

func TestProductRepository_ListByIDsSkipsMissing(t *testing.T) {
	ctx := context.Background()
	products := NewStore().Products()

	a, err := products.Create(ctx, entity.NewProduct(nil, "a"))
	require.NoError(t, err)

	got, err := products.ListByIDs(ctx, []int64{a.ID, 99})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
}

func TestReviewRepository_ExistsForUser(t *testing.T) {
	ctx := context.Background()
	reviews := NewStore().Reviews()

	_, err := reviews.Create(ctx, &entity.Review{ProductID: int64Ptr(1), UserID: int64Ptr(2), Rating: 3})
	require.NoError(t, err)

	ok, err := reviews.ExistsForUser(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = reviews.ExistsForUser(ctx, 1, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOrderRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	orders := NewStore().Orders()

	for _, owner := range []*int64{int64Ptr(1), int64Ptr(2), int64Ptr(1), nil} {
		_, err := orders.Create(ctx, &entity.Order{UserID: owner})
		require.NoError(t, err)
	}

	mine, err := orders.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(1), mine[0].ID)
	assert.Equal(t, int64(3), mine[1].ID)

	all, err := orders.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
