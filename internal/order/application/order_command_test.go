package application

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cartdomain "github.com/wyfcoding/storefront/internal/cart/domain"
	"github.com/wyfcoding/storefront/internal/order/domain"
	"github.com/wyfcoding/storefront/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- fakes ----

type fakeOrderRepo struct {
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *fakeOrderRepo) Save(_ context.Context, order *domain.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	r.orders[order.ID.Hex()] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) error {
	order, ok := r.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (r *fakeOrderRepo) ListByUserID(_ context.Context, userID string, _, _ int) ([]*domain.Order, int64, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListAll(_ context.Context, _, _ int) ([]*domain.Order, int64, error) {
	var out []*domain.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

type fakeCartRepo struct {
	carts map[string]*cartdomain.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*cartdomain.Cart)}
}

func (r *fakeCartRepo) GetByUserID(_ context.Context, userID string) (*cartdomain.Cart, error) {
	cart, ok := r.carts[userID]
	if !ok {
		return nil, cartdomain.ErrCartNotFound
	}
	return cart, nil
}

func (r *fakeCartRepo) Save(_ context.Context, cart *cartdomain.Cart) error {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	r.carts[cart.UserID] = cart
	return nil
}

type capturingMailer struct {
	sentTo []string
}

func (m *capturingMailer) SendOrderConfirmation(_ context.Context, to string, _ *domain.Order) error {
	m.sentTo = append(m.sentTo, to)
	return nil
}

func validShipping() domain.ShippingDetails {
	return domain.ShippingDetails{
		FullName:   "Jane Doe",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
		Country:    "US",
	}
}

// ---- tests ----

func TestCreateOrder_CopiesCartAndClearsIt(t *testing.T) {
	carts := newFakeCartRepo()
	cart := cartdomain.NewCart("u1")
	cart.AddItem("p1", 2, 30)
	cart.AddItem("p2", 1, 50)
	require.NoError(t, carts.Save(context.Background(), cart))

	mailer := &capturingMailer{}
	svc := NewOrderCommandService(newFakeOrderRepo(), carts, nil, mailer, nil)

	order, err := svc.CreateOrder(context.Background(), CreateOrderCommand{
		UserID:   "u1",
		Email:    "jane@example.com",
		Shipping: validShipping(),
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.InDelta(t, 110.0, order.Subtotal, 1e-9)
	assert.InDelta(t, 0.0, order.Shipping, 1e-9)
	assert.Equal(t, domain.StatusPending, order.Status)

	stored, err := carts.GetByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, stored.IsEmpty())

	assert.Equal(t, []string{"jane@example.com"}, mailer.sentTo)
}

func TestCreateOrder_SecondAttemptFailsOnEmptyCart(t *testing.T) {
	carts := newFakeCartRepo()
	cart := cartdomain.NewCart("u1")
	cart.AddItem("p1", 1, 20)
	require.NoError(t, carts.Save(context.Background(), cart))

	svc := NewOrderCommandService(newFakeOrderRepo(), carts, nil, nil, nil)

	_, err := svc.CreateOrder(context.Background(), CreateOrderCommand{UserID: "u1", Shipping: validShipping()})
	require.NoError(t, err)

	_, err = svc.CreateOrder(context.Background(), CreateOrderCommand{UserID: "u1", Shipping: validShipping()})
	assert.ErrorIs(t, err, domain.ErrCartEmpty)
}

func TestCreateOrder_Errors(t *testing.T) {
	t.Run("no cart", func(t *testing.T) {
		svc := NewOrderCommandService(newFakeOrderRepo(), newFakeCartRepo(), nil, nil, nil)
		_, err := svc.CreateOrder(context.Background(), CreateOrderCommand{UserID: "u1", Shipping: validShipping()})
		assert.ErrorIs(t, err, cartdomain.ErrCartNotFound)
	})

	t.Run("missing shipping details", func(t *testing.T) {
		svc := NewOrderCommandService(newFakeOrderRepo(), newFakeCartRepo(), nil, nil, nil)
		shipping := validShipping()
		shipping.Country = ""
		_, err := svc.CreateOrder(context.Background(), CreateOrderCommand{UserID: "u1", Shipping: shipping})
		assert.ErrorIs(t, err, domain.ErrMissingShippingDetails)
	})
}

func TestCreateOrder_ItemsIndependentOfCart(t *testing.T) {
	carts := newFakeCartRepo()
	cart := cartdomain.NewCart("u1")
	cart.AddItem("p1", 1, 20)
	require.NoError(t, carts.Save(context.Background(), cart))

	svc := NewOrderCommandService(newFakeOrderRepo(), carts, nil, nil, nil)
	order, err := svc.CreateOrder(context.Background(), CreateOrderCommand{UserID: "u1", Shipping: validShipping()})
	require.NoError(t, err)

	// 清空购物车后订单行保持不变
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, 1, order.Items[0].Quantity)
}

func TestCreateOrder_CountsCreatedOrders(t *testing.T) {
	carts := newFakeCartRepo()
	cart := cartdomain.NewCart("u1")
	cart.AddItem("p1", 1, 20)
	require.NoError(t, carts.Save(context.Background(), cart))

	m := metrics.New("test")
	svc := NewOrderCommandService(newFakeOrderRepo(), carts, nil, nil, m)

	_, err := svc.CreateOrder(context.Background(), CreateOrderCommand{UserID: "u1", Shipping: validShipping()})
	require.NoError(t, err)

	// 空车下单失败，不计数
	_, err = svc.CreateOrder(context.Background(), CreateOrderCommand{UserID: "u1", Shipping: validShipping()})
	require.ErrorIs(t, err, domain.ErrCartEmpty)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersCreatedTotal))
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeOrderRepo()
	order := domain.NewOrder("u1", []domain.OrderItem{{ProductID: "p1", Quantity: 1, Price: 10}}, validShipping())
	require.NoError(t, repo.Save(context.Background(), order))

	svc := NewOrderCommandService(repo, newFakeCartRepo(), nil, nil, nil)

	t.Run("valid transition", func(t *testing.T) {
		updated, err := svc.UpdateStatus(context.Background(), UpdateStatusCommand{
			OrderID: order.ID.Hex(),
			Status:  "Shipped",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusShipped, updated.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), UpdateStatusCommand{
			OrderID: order.ID.Hex(),
			Status:  "Lost",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := svc.UpdateStatus(context.Background(), UpdateStatusCommand{
			OrderID: primitive.NewObjectID().Hex(),
			Status:  "Shipped",
		})
		assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	})
}
