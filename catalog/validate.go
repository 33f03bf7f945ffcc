package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
)

var ErrInvalidOffer = errors.New("invalid product offer")

// ValidateOffer checks the fields that belong to the product's type.
func ValidateOffer(o models.Offer) error {
	switch o := o.(type) {
	case models.SimpleOffer:
		if o.Price.IsNegative() {
			return invalid("price must not be negative")
		}
		if o.Stock < 0 {
			return invalid("stock must not be negative")
		}
		return nil
	case models.VariantOffer:
		return ValidateVariants(o)
	default:
		return invalid("product type is required")
	}
}

// ValidateVariants requires every variant to carry exactly the product's option names,
// each SKU and each option combination to appear once, and non-negative price and stock.
func ValidateVariants(o models.VariantOffer) error {
	if len(o.OptionNames) == 0 {
		return invalid("at least one option name is required")
	}
	names := make(map[string]bool, len(o.OptionNames))
	for _, n := range o.OptionNames {
		if strings.TrimSpace(n) == "" {
			return invalid("option names must not be empty")
		}
		if names[n] {
			return invalid(fmt.Sprintf("duplicate option name %q", n))
		}
		names[n] = true
	}
	if len(o.Variants) == 0 {
		return invalid("at least one variant is required")
	}

	skus := make(map[string]bool, len(o.Variants))
	combos := make(map[string]bool, len(o.Variants))
	for _, v := range o.Variants {
		if strings.TrimSpace(v.SKU) == "" {
			return invalid("every variant needs a sku")
		}
		if skus[v.SKU] {
			return invalid(fmt.Sprintf("duplicate sku %q", v.SKU))
		}
		skus[v.SKU] = true

		if len(v.Options) != len(names) {
			return invalid(fmt.Sprintf("variant %s must set exactly the options %v", v.SKU, o.OptionNames))
		}
		seen := make(map[string]bool, len(v.Options))
		for _, opt := range v.Options {
			if !names[opt.Name] || seen[opt.Name] {
				return invalid(fmt.Sprintf("variant %s must set exactly the options %v", v.SKU, o.OptionNames))
			}
			if strings.TrimSpace(opt.Value) == "" {
				return invalid(fmt.Sprintf("variant %s has an empty value for %s", v.SKU, opt.Name))
			}
			seen[opt.Name] = true
		}

		key := comboKey(v)
		if combos[key] {
			return invalid(fmt.Sprintf("variant %s repeats an existing option combination", v.SKU))
		}
		combos[key] = true

		if v.Price.IsNegative() {
			return invalid(fmt.Sprintf("variant %s: price must not be negative", v.SKU))
		}
		if v.Stock < 0 {
			return invalid(fmt.Sprintf("variant %s: stock must not be negative", v.SKU))
		}
	}
	return nil
}

func comboKey(v models.Variant) string {
	parts := make([]string, 0, len(v.Options))
	for _, o := range v.Options {
		parts = append(parts, o.Name+"="+o.Value)
	}
	sort.Strings(parts)
	return strings.Join(parts, "\x00")
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidOffer, msg)
}
