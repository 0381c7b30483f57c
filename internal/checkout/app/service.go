package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	cartapp "github.com/urban-store/storefront/internal/cart/app"
	cartdomain "github.com/urban-store/storefront/internal/cart/domain"
	"github.com/urban-store/storefront/internal/checkout/domain"
)

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidInput = errors.New("invalid input")
)

const OrderStatusPending = "PENDING"

var (
	shippingFlat = decimal.RequireFromString("5.99")
	taxRate      = decimal.RequireFromString("0.1")
)

type Service struct {
	cart    *cartapp.Service
	catalog CatalogReader
	log     *slog.Logger

	maxConcurrent int
}

func NewService(cart *cartapp.Service, catalog CatalogReader, log *slog.Logger) *Service {
	return &Service{
		cart:          cart,
		catalog:       catalog,
		log:           log,
		maxConcurrent: 10,
	}
}

// Summary prices the current cart.
func (s *Service) Summary() domain.Summary {
	return Summarize(s.cart.State())
}

// Summarize prices a cart state: subtotal, flat shipping (waived when
// empty), 10% tax on the pre-discount subtotal, promo discount, total.
func Summarize(st cartdomain.State) domain.Summary {
	subtotal := st.Subtotal()

	shipping := decimal.Zero
	if len(st.Items) > 0 {
		shipping = shippingFlat
	}

	tax := subtotal.Mul(taxRate)
	discount := promoDiscount(st.AppliedPromo, subtotal)

	return domain.Summary{
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Discount:  discount,
		Total:     subtotal.Add(shipping).Add(tax).Sub(discount),
		ItemCount: st.ItemCount(),
	}
}

// PlaceOrder validates the shipping and payment input, verifies every
// cart line against the catalog, then creates the order and clears the
// cart. Nothing partial ever submits: the first violation aborts with
// the cart untouched.
func (s *Service) PlaceOrder(ctx context.Context, shipping domain.ShippingInfo, payment domain.PaymentInfo) (domain.Order, error) {
	if err := ValidateShipping(shipping); err != nil {
		return domain.Order{}, err
	}
	if err := ValidatePayment(payment); err != nil {
		return domain.Order{}, err
	}

	st := s.cart.State()
	if len(st.Items) == 0 {
		return domain.Order{}, ErrEmptyCart
	}

	if s.catalog != nil {
		if err := s.verifyAvailability(ctx, st.Items); err != nil {
			return domain.Order{}, err
		}
	}

	lines := make([]domain.OrderLine, len(st.Items))
	for i, it := range st.Items {
		lines[i] = domain.OrderLine{
			ProductID: it.ID,
			Title:     it.Title,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
			LineTotal: it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))),
		}
	}

	order := domain.Order{
		ID:        uuid.NewString(),
		Status:    OrderStatusPending,
		Lines:     lines,
		Summary:   Summarize(st),
		Shipping:  shipping,
		CreatedAt: time.Now().UTC(),
	}

	s.cart.Dispatch(cartdomain.ClearCart{})

	s.log.Info("order placed",
		slog.String("order_id", order.ID),
		slog.Int("lines", len(lines)),
		slog.String("total", order.Summary.Total.StringFixed(2)),
	)
	return order, nil
}

func (s *Service) verifyAvailability(ctx context.Context, items []cartdomain.CartItem) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for _, it := range items {
		it := it
		g.Go(func() error {
			if _, err := s.catalog.GetProduct(ctx, it.ID); err != nil {
				return fmt.Errorf("product %s unavailable: %w", it.ID, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func promoDiscount(promo *cartdomain.PromoCode, subtotal decimal.Decimal) decimal.Decimal {
	if promo == nil {
		return decimal.Zero
	}
	switch promo.Kind {
	case cartdomain.PromoPercentage:
		return subtotal.Mul(promo.Discount)
	case cartdomain.PromoFixed:
		if promo.Discount.GreaterThan(subtotal) {
			return subtotal
		}
		return promo.Discount
	default:
		return decimal.Zero
	}
}
