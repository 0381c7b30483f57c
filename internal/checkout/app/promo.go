package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	cartdomain "github.com/urban-store/storefront/internal/cart/domain"
)

var ErrUnknownPromo = errors.New("unknown promo code")

// Built-in promo rules, keyed by normalized code. Percentage discounts
// are fractions of the subtotal; fixed discounts are currency amounts.
var promoRules = map[string]cartdomain.PromoCode{
	"SAVE10":  {Code: "SAVE10", Discount: decimal.RequireFromString("0.1"), Kind: cartdomain.PromoPercentage},
	"URBAN20": {Code: "URBAN20", Discount: decimal.RequireFromString("0.2"), Kind: cartdomain.PromoPercentage},
	"FLAT5":   {Code: "FLAT5", Discount: decimal.NewFromInt(5), Kind: cartdomain.PromoFixed},
}

// LookupPromo resolves a user-entered code, case-insensitively.
func LookupPromo(code string) (cartdomain.PromoCode, error) {
	promo, ok := promoRules[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return cartdomain.PromoCode{}, fmt.Errorf("%w: %q", ErrUnknownPromo, code)
	}
	return promo, nil
}

// ApplyPromoCode resolves the code and applies it to the cart,
// replacing any promo already applied.
func (s *Service) ApplyPromoCode(code string) error {
	promo, err := LookupPromo(code)
	if err != nil {
		return err
	}
	s.cart.Dispatch(cartdomain.ApplyPromo{Promo: promo})
	return nil
}

// RemovePromo clears the applied promo, leaving the items untouched.
func (s *Service) RemovePromo() {
	s.cart.Dispatch(cartdomain.RemovePromo{})
}
