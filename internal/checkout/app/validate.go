package app

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/urban-store/storefront/internal/checkout/domain"
)

var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

// ValidateShipping requires every address field to be non-blank and the
// country to be one of the supported destinations.
func ValidateShipping(info domain.ShippingInfo) error {
	fields := []struct {
		name  string
		value string
	}{
		{"first name", info.FirstName},
		{"last name", info.LastName},
		{"address", info.Address},
		{"city", info.City},
		{"zip", info.ZIP},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: missing %s", ErrInvalidInput, f.name)
		}
	}

	switch info.Country {
	case domain.CountryUS, domain.CountryCA, domain.CountryUK:
		return nil
	default:
		return fmt.Errorf("%w: unsupported country %q", ErrInvalidInput, info.Country)
	}
}

// ValidatePayment checks card details for card payments: at least 12
// digits of card number, MM/YY expiry, a CVV of 3 or more digits and a
// cardholder name. PayPal needs no card fields.
func ValidatePayment(info domain.PaymentInfo) error {
	switch info.Method {
	case domain.PaymentPayPal:
		return nil
	case domain.PaymentCreditCard:
	default:
		return fmt.Errorf("%w: unsupported payment method %q", ErrInvalidInput, info.Method)
	}

	if len(strings.TrimSpace(info.CardNumber)) < 12 {
		return fmt.Errorf("%w: card number too short", ErrInvalidInput)
	}
	if !expiryPattern.MatchString(info.Expiry) {
		return fmt.Errorf("%w: expiry must be MM/YY", ErrInvalidInput)
	}
	if len(strings.TrimSpace(info.CVV)) < 3 {
		return fmt.Errorf("%w: cvv too short", ErrInvalidInput)
	}
	if strings.TrimSpace(info.NameOnCard) == "" {
		return fmt.Errorf("%w: missing name on card", ErrInvalidInput)
	}
	return nil
}
