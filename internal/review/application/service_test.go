package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	catalogapp "github.com/wyfcoding/storefront/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	"github.com/wyfcoding/storefront/internal/review/domain"
	"github.com/wyfcoding/storefront/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- fakes ----

type fakeReviewRepo struct {
	reviews []*domain.Review
}

func (r *fakeReviewRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *fakeReviewRepo) Save(_ context.Context, review *domain.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) ExistsByProductAndUser(_ context.Context, productID, userID string) (bool, error) {
	for _, rv := range r.reviews {
		if rv.ProductID == productID && rv.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReviewRepo) ListByProduct(_ context.Context, productID string) ([]*domain.Review, error) {
	var out []*domain.Review
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	product *catalogdomain.Product
}

func (r *fakeProductRepo) Save(_ context.Context, _ *catalogdomain.Product) error   { return nil }
func (r *fakeProductRepo) Update(_ context.Context, _ *catalogdomain.Product) error { return nil }
func (r *fakeProductRepo) Delete(_ context.Context, _ string) error                 { return nil }

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*catalogdomain.Product, error) {
	if r.product == nil || r.product.ID.Hex() != id {
		return nil, catalogdomain.ErrProductNotFound
	}
	return r.product, nil
}

func (r *fakeProductRepo) List(_ context.Context, _ catalogdomain.ProductFilter) ([]*catalogdomain.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) UpdateRating(_ context.Context, id string, rating float64, reviewCount int) error {
	if r.product == nil || r.product.ID.Hex() != id {
		return catalogdomain.ErrProductNotFound
	}
	r.product.Rating = rating
	r.product.ReviewCount = reviewCount
	return nil
}

type fakeProductCache struct {
	deleted []string
}

func (c *fakeProductCache) GetJSON(_ context.Context, _ string, _ interface{}) error { return nil }

func (c *fakeProductCache) SetJSON(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (c *fakeProductCache) Delete(_ context.Context, key string) error {
	c.deleted = append(c.deleted, key)
	return nil
}

func newService() (*ReviewApplicationService, *fakeProductRepo) {
	products := &fakeProductRepo{product: &catalogdomain.Product{
		ID:    primitive.NewObjectID(),
		Title: "Widget",
		SKU:   "SKU-1",
		Price: 10,
	}}
	return NewReviewApplicationService(&fakeReviewRepo{}, products, nil, nil), products
}

func cmdFor(products *fakeProductRepo, userID string, rating int, text string) AddReviewCommand {
	return AddReviewCommand{
		ProductID: products.product.ID.Hex(),
		UserID:    userID,
		UserName:  userID + "@example.com",
		Text:      text,
		Rating:    rating,
	}
}

// ---- tests ----

func TestAddReview_Validation(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		text    string
		wantErr error
	}{
		{name: "rating below minimum", rating: 0, text: "fine", wantErr: domain.ErrInvalidRating},
		{name: "rating above maximum", rating: 6, text: "fine", wantErr: domain.ErrInvalidRating},
		{name: "minimum rating accepted", rating: 1, text: "meh"},
		{name: "maximum rating accepted", rating: 5, text: "great"},
		{name: "text too short", rating: 4, text: "ok", wantErr: domain.ErrInvalidReviewText},
		{name: "three chars accepted", rating: 4, text: "meh"},
		{name: "max length accepted", rating: 4, text: strings.Repeat("a", 500)},
		{name: "text too long", rating: 4, text: strings.Repeat("a", 501), wantErr: domain.ErrInvalidReviewText},
		// 长度按字符数而非字节数计
		{name: "two multibyte chars too short", rating: 4, text: "很好", wantErr: domain.ErrInvalidReviewText},
		{name: "three multibyte chars accepted", rating: 4, text: "非常好"},
		{name: "max length multibyte accepted", rating: 4, text: strings.Repeat("好", 500)},
		{name: "multibyte too long", rating: 4, text: strings.Repeat("好", 501), wantErr: domain.ErrInvalidReviewText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, products := newService()

			_, err := svc.AddReview(context.Background(), cmdFor(products, "u1", tt.rating, tt.text))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAddReview_RejectsDuplicate(t *testing.T) {
	svc, products := newService()

	_, err := svc.AddReview(context.Background(), cmdFor(products, "u1", 4, "solid product"))
	require.NoError(t, err)

	_, err = svc.AddReview(context.Background(), cmdFor(products, "u1", 5, "changed my mind"))
	assert.ErrorIs(t, err, domain.ErrDuplicateReview)

	// 其他用户不受影响
	_, err = svc.AddReview(context.Background(), cmdFor(products, "u2", 5, "love it"))
	assert.NoError(t, err)
}

func TestAddReview_UnknownProduct(t *testing.T) {
	svc, _ := newService()

	_, err := svc.AddReview(context.Background(), AddReviewCommand{
		ProductID: primitive.NewObjectID().Hex(),
		UserID:    "u1",
		Text:      "nice",
		Rating:    4,
	})
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestAddReview_RecomputesProductRating(t *testing.T) {
	svc, products := newService()

	_, err := svc.AddReview(context.Background(), cmdFor(products, "u1", 5, "excellent"))
	require.NoError(t, err)
	assert.Equal(t, 5.0, products.product.Rating)
	assert.Equal(t, 1, products.product.ReviewCount)

	_, err = svc.AddReview(context.Background(), cmdFor(products, "u2", 2, "not great"))
	require.NoError(t, err)
	assert.Equal(t, 3.5, products.product.Rating)
	assert.Equal(t, 2, products.product.ReviewCount)

	_, err = svc.AddReview(context.Background(), cmdFor(products, "u3", 4, "pretty good"))
	require.NoError(t, err)
	// (5+2+4)/3 保留两位小数
	assert.Equal(t, 3.67, products.product.Rating)
	assert.Equal(t, 3, products.product.ReviewCount)
}

func TestAddReview_InvalidatesProductCacheAndCounts(t *testing.T) {
	products := &fakeProductRepo{product: &catalogdomain.Product{
		ID:    primitive.NewObjectID(),
		Title: "Widget",
		SKU:   "SKU-1",
		Price: 10,
	}}
	cache := &fakeProductCache{}
	m := metrics.New("test")
	svc := NewReviewApplicationService(&fakeReviewRepo{}, products, cache, m)

	_, err := svc.AddReview(context.Background(), cmdFor(products, "u1", 5, "excellent"))
	require.NoError(t, err)

	assert.Equal(t, []string{catalogapp.ProductCacheKey(products.product.ID.Hex())}, cache.deleted)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReviewsCreatedTotal))

	// 重复评论失败，既不计数也不再失效缓存
	_, err = svc.AddReview(context.Background(), cmdFor(products, "u1", 4, "changed my mind"))
	require.ErrorIs(t, err, domain.ErrDuplicateReview)
	assert.Len(t, cache.deleted, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReviewsCreatedTotal))
}

func TestListReviews(t *testing.T) {
	svc, products := newService()

	_, err := svc.AddReview(context.Background(), cmdFor(products, "u1", 5, "excellent"))
	require.NoError(t, err)
	_, err = svc.AddReview(context.Background(), cmdFor(products, "u2", 3, "average"))
	require.NoError(t, err)

	reviews, err := svc.ListReviews(context.Background(), products.product.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	reviews, err = svc.ListReviews(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
