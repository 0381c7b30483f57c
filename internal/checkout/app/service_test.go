package app

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	cartapp "github.com/urban-store/storefront/internal/cart/app"
	cartdomain "github.com/urban-store/storefront/internal/cart/domain"
	catalogdomain "github.com/urban-store/storefront/internal/catalog/domain"
	"github.com/urban-store/storefront/internal/checkout/domain"
	"github.com/urban-store/storefront/pkg/logger"
)

type nopStore struct{}

func (nopStore) Load() []cartdomain.CartItem { return []cartdomain.CartItem{} }
func (nopStore) Save([]cartdomain.CartItem)  {}

var errMissingProduct = errors.New("missing product")

type fakeCatalog struct {
	missing map[string]bool
}

func (f fakeCatalog) GetProduct(_ context.Context, id string) (catalogdomain.Product, error) {
	if f.missing[id] {
		return catalogdomain.Product{}, errMissingProduct
	}
	return catalogdomain.Product{ID: id}, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(dec(want)), "expected %s, got %s", want, got)
}

// Cart with item A (price 10, qty 2) and B (price 5, qty 1): subtotal 25.
func twoItemState(promo *cartdomain.PromoCode) cartdomain.State {
	return cartdomain.State{
		Items: []cartdomain.CartItem{
			{ID: "a", Title: "Item A", Price: dec("10"), Quantity: 2},
			{ID: "b", Title: "Item B", Price: dec("5"), Quantity: 1},
		},
		AppliedPromo: promo,
	}
}

func newCart(t *testing.T) *cartapp.Service {
	t.Helper()
	return cartapp.NewService(nopStore{}, logger.Nop())
}

func fillCart(t *testing.T, cart *cartapp.Service) {
	t.Helper()
	for _, it := range twoItemState(nil).Items {
		cart.Dispatch(cartdomain.AddItem{Item: it})
	}
}

func validShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Address:   "1 Analytical Way",
		City:      "London",
		ZIP:       "E1 6AN",
		Country:   domain.CountryUK,
	}
}

func validPayment() domain.PaymentInfo {
	return domain.PaymentInfo{
		CardNumber: "4242424242424242",
		Expiry:     "12/27",
		CVV:        "123",
		NameOnCard: "Ada Lovelace",
		Method:     domain.PaymentCreditCard,
	}
}

func TestSummarize(t *testing.T) {
	t.Run("no promo", func(t *testing.T) {
		s := Summarize(twoItemState(nil))
		requireDecimal(t, "25", s.Subtotal)
		requireDecimal(t, "5.99", s.Shipping)
		requireDecimal(t, "2.5", s.Tax)
		requireDecimal(t, "0", s.Discount)
		requireDecimal(t, "33.49", s.Total)
		require.Equal(t, 2, s.ItemCount)
	})

	t.Run("ten percent promo", func(t *testing.T) {
		promo := &cartdomain.PromoCode{Code: "SAVE10", Discount: dec("0.1"), Kind: cartdomain.PromoPercentage}
		s := Summarize(twoItemState(promo))
		requireDecimal(t, "2.5", s.Discount)
		requireDecimal(t, "30.99", s.Total)
	})

	t.Run("fixed promo capped at the subtotal", func(t *testing.T) {
		promo := &cartdomain.PromoCode{Code: "BIG", Discount: dec("100"), Kind: cartdomain.PromoFixed}
		s := Summarize(twoItemState(promo))
		requireDecimal(t, "25", s.Discount)
		requireDecimal(t, "8.49", s.Total)
	})

	t.Run("empty cart pays no shipping", func(t *testing.T) {
		s := Summarize(cartdomain.State{})
		requireDecimal(t, "0", s.Subtotal)
		requireDecimal(t, "0", s.Shipping)
		requireDecimal(t, "0", s.Total)
		require.Zero(t, s.ItemCount)
	})
}

func TestValidateShipping(t *testing.T) {
	require.NoError(t, ValidateShipping(validShipping()))

	t.Run("each blank field is rejected", func(t *testing.T) {
		mutations := []func(*domain.ShippingInfo){
			func(s *domain.ShippingInfo) { s.FirstName = "  " },
			func(s *domain.ShippingInfo) { s.LastName = "" },
			func(s *domain.ShippingInfo) { s.Address = "" },
			func(s *domain.ShippingInfo) { s.City = "" },
			func(s *domain.ShippingInfo) { s.ZIP = "" },
		}
		for _, mutate := range mutations {
			info := validShipping()
			mutate(&info)
			require.ErrorIs(t, ValidateShipping(info), ErrInvalidInput)
		}
	})

	t.Run("unsupported country", func(t *testing.T) {
		info := validShipping()
		info.Country = "Atlantis"
		require.ErrorIs(t, ValidateShipping(info), ErrInvalidInput)
	})
}

func TestValidatePayment(t *testing.T) {
	require.NoError(t, ValidatePayment(validPayment()))

	t.Run("paypal needs no card fields", func(t *testing.T) {
		require.NoError(t, ValidatePayment(domain.PaymentInfo{Method: domain.PaymentPayPal}))
	})

	t.Run("card violations", func(t *testing.T) {
		cases := map[string]func(*domain.PaymentInfo){
			"short card number": func(p *domain.PaymentInfo) { p.CardNumber = "1234" },
			"bad expiry":        func(p *domain.PaymentInfo) { p.Expiry = "2027-12" },
			"short cvv":         func(p *domain.PaymentInfo) { p.CVV = "12" },
			"missing name":      func(p *domain.PaymentInfo) { p.NameOnCard = " " },
			"unknown method":    func(p *domain.PaymentInfo) { p.Method = "cheque" },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				info := validPayment()
				mutate(&info)
				require.ErrorIs(t, ValidatePayment(info), ErrInvalidInput)
			})
		}
	})
}

func TestLookupPromo(t *testing.T) {
	promo, err := LookupPromo("  save10 ")
	require.NoError(t, err)
	require.Equal(t, "SAVE10", promo.Code)
	require.Equal(t, cartdomain.PromoPercentage, promo.Kind)

	_, err = LookupPromo("NOPE")
	require.ErrorIs(t, err, ErrUnknownPromo)
}

func TestApplyPromoCode(t *testing.T) {
	cart := newCart(t)
	fillCart(t, cart)
	svc := NewService(cart, nil, logger.Nop())

	require.ErrorIs(t, svc.ApplyPromoCode("bogus"), ErrUnknownPromo)
	require.Nil(t, cart.State().AppliedPromo)

	require.NoError(t, svc.ApplyPromoCode("save10"))
	require.NotNil(t, cart.State().AppliedPromo)
	requireDecimal(t, "30.99", svc.Summary().Total)

	svc.RemovePromo()
	require.Nil(t, cart.State().AppliedPromo)
}

func TestPlaceOrder(t *testing.T) {
	t.Run("happy path clears the cart", func(t *testing.T) {
		cart := newCart(t)
		fillCart(t, cart)
		svc := NewService(cart, fakeCatalog{}, logger.Nop())

		order, err := svc.PlaceOrder(context.Background(), validShipping(), validPayment())
		require.NoError(t, err)

		_, err = uuid.Parse(order.ID)
		require.NoError(t, err, "order id must be a uuid")
		require.Equal(t, OrderStatusPending, order.Status)
		require.Len(t, order.Lines, 2)
		require.Equal(t, "a", order.Lines[0].ProductID)
		require.Equal(t, 2, order.Lines[0].Quantity)
		requireDecimal(t, "20", order.Lines[0].LineTotal)
		requireDecimal(t, "33.49", order.Summary.Total)
		require.False(t, order.CreatedAt.IsZero())

		require.Empty(t, cart.State().Items, "order placement must clear the cart")
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		svc := NewService(newCart(t), fakeCatalog{}, logger.Nop())
		_, err := svc.PlaceOrder(context.Background(), validShipping(), validPayment())
		require.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("invalid input leaves the cart untouched", func(t *testing.T) {
		cart := newCart(t)
		fillCart(t, cart)
		svc := NewService(cart, fakeCatalog{}, logger.Nop())

		bad := validPayment()
		bad.CVV = "1"
		_, err := svc.PlaceOrder(context.Background(), validShipping(), bad)
		require.ErrorIs(t, err, ErrInvalidInput)
		require.Len(t, cart.State().Items, 2)
	})

	t.Run("unavailable product aborts the order", func(t *testing.T) {
		cart := newCart(t)
		fillCart(t, cart)
		svc := NewService(cart, fakeCatalog{missing: map[string]bool{"b": true}}, logger.Nop())

		_, err := svc.PlaceOrder(context.Background(), validShipping(), validPayment())
		require.Error(t, err)
		require.Len(t, cart.State().Items, 2, "a failed order must not clear the cart")
	})
}
