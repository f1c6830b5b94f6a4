package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/internal/wishlist/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- fakes ----

type fakeWishlistRepo struct {
	wishlists map[string]*domain.Wishlist
	saves     int
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{wishlists: make(map[string]*domain.Wishlist)}
}

func (r *fakeWishlistRepo) GetByUserID(_ context.Context, userID string) (*domain.Wishlist, error) {
	w, ok := r.wishlists[userID]
	if !ok {
		return nil, domain.ErrWishlistNotFound
	}
	return w, nil
}

func (r *fakeWishlistRepo) Save(_ context.Context, w *domain.Wishlist) error {
	if w.ID.IsZero() {
		w.ID = primitive.NewObjectID()
	}
	r.wishlists[w.UserID] = w
	r.saves++
	return nil
}

type fakeProductRepo struct {
	products map[string]*catalogdomain.Product
}

func newFakeProductRepo(products ...*catalogdomain.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*catalogdomain.Product)}
	for _, p := range products {
		r.products[p.ID.Hex()] = p
	}
	return r
}

func (r *fakeProductRepo) Save(_ context.Context, _ *catalogdomain.Product) error   { return nil }
func (r *fakeProductRepo) Update(_ context.Context, _ *catalogdomain.Product) error { return nil }
func (r *fakeProductRepo) Delete(_ context.Context, _ string) error                 { return nil }

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*catalogdomain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, catalogdomain.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) List(_ context.Context, _ catalogdomain.ProductFilter) ([]*catalogdomain.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) UpdateRating(_ context.Context, _ string, _ float64, _ int) error {
	return nil
}

func newProduct() *catalogdomain.Product {
	return &catalogdomain.Product{ID: primitive.NewObjectID(), Title: "Widget", SKU: "SKU-1", Price: 10}
}

// ---- tests ----

func TestGetWishlist_AutoCreatesEmpty(t *testing.T) {
	repo := newFakeWishlistRepo()
	svc := NewWishlistApplicationService(repo, newFakeProductRepo())

	view, err := svc.GetWishlist(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "u1", view.UserID)
	assert.Empty(t, view.Products)

	// 已落库，后续访问复用同一份
	_, err = repo.GetByUserID(context.Background(), "u1")
	assert.NoError(t, err)
}

func TestToggle_AddAndRemove(t *testing.T) {
	product := newProduct()
	svc := NewWishlistApplicationService(newFakeWishlistRepo(), newFakeProductRepo(product))

	view, err := svc.Toggle(context.Background(), "u1", product.ID.Hex(), ActionAdd)
	require.NoError(t, err)
	require.Len(t, view.Products, 1)
	assert.Equal(t, product.Title, view.Products[0].Title)

	view, err = svc.Toggle(context.Background(), "u1", product.ID.Hex(), ActionRemove)
	require.NoError(t, err)
	assert.Empty(t, view.Products)
}

func TestToggle_AddIsIdempotent(t *testing.T) {
	product := newProduct()
	repo := newFakeWishlistRepo()
	svc := NewWishlistApplicationService(repo, newFakeProductRepo(product))

	_, err := svc.Toggle(context.Background(), "u1", product.ID.Hex(), ActionAdd)
	require.NoError(t, err)
	savesAfterFirst := repo.saves

	view, err := svc.Toggle(context.Background(), "u1", product.ID.Hex(), ActionAdd)
	require.NoError(t, err)

	assert.Len(t, view.Products, 1)
	// 重复 add 不落库
	assert.Equal(t, savesAfterFirst, repo.saves)
}

func TestToggle_RemoveAbsentIsNoOp(t *testing.T) {
	product := newProduct()
	svc := NewWishlistApplicationService(newFakeWishlistRepo(), newFakeProductRepo(product))

	view, err := svc.Toggle(context.Background(), "u1", product.ID.Hex(), ActionRemove)
	require.NoError(t, err)
	assert.Empty(t, view.Products)
}

func TestToggle_Errors(t *testing.T) {
	product := newProduct()
	svc := NewWishlistApplicationService(newFakeWishlistRepo(), newFakeProductRepo(product))

	t.Run("invalid action", func(t *testing.T) {
		_, err := svc.Toggle(context.Background(), "u1", product.ID.Hex(), "clear")
		assert.ErrorIs(t, err, domain.ErrInvalidAction)
	})

	t.Run("unknown product on add", func(t *testing.T) {
		_, err := svc.Toggle(context.Background(), "u1", primitive.NewObjectID().Hex(), ActionAdd)
		assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
	})
}

func TestGetWishlist_SkipsDeletedProducts(t *testing.T) {
	product := newProduct()
	products := newFakeProductRepo(product)
	svc := NewWishlistApplicationService(newFakeWishlistRepo(), products)

	_, err := svc.Toggle(context.Background(), "u1", product.ID.Hex(), ActionAdd)
	require.NoError(t, err)

	// 商品下架后心愿单视图静默跳过该引用
	delete(products.products, product.ID.Hex())

	view, err := svc.GetWishlist(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, view.Products)
}
