package catalog

import (
	"testing"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateOffer(t *testing.T) {
	valid := tshirt().Offer.(models.VariantOffer)

	withVariants := func(vs ...models.Variant) models.VariantOffer {
		return models.VariantOffer{OptionNames: []string{"Color", "Size"}, Variants: vs}
	}
	v := func(sku string, opts ...models.VariantOption) models.Variant {
		return models.Variant{SKU: sku, Options: opts, Price: models.NewMoney(10), Stock: 1}
	}

	tests := []struct {
		name  string
		offer models.Offer
		ok    bool
	}{
		{"valid variants", valid, true},
		{"valid simple", models.SimpleOffer{Price: models.NewMoney(10), Stock: 0}, true},
		{"nil offer", nil, false},
		{"negative simple price", models.SimpleOffer{Price: models.NewMoney(-1)}, false},
		{"negative simple stock", models.SimpleOffer{Price: models.NewMoney(1), Stock: -3}, false},
		{"no option names", models.VariantOffer{Variants: valid.Variants}, false},
		{"duplicate option name", models.VariantOffer{OptionNames: []string{"Size", "Size"}, Variants: valid.Variants}, false},
		{"no variants", withVariants(), false},
		{"missing option", withVariants(v("A", option("Color", "Red"))), false},
		{"unknown option", withVariants(v("A", option("Color", "Red"), option("Fit", "Slim"))), false},
		{"repeated option", withVariants(v("A", option("Color", "Red"), option("Color", "Blue"))), false},
		{"empty value", withVariants(v("A", option("Color", ""), option("Size", "M"))), false},
		{"empty sku", withVariants(v("", option("Color", "Red"), option("Size", "M"))), false},
		{"duplicate sku", withVariants(
			v("A", option("Color", "Red"), option("Size", "M")),
			v("A", option("Color", "Red"), option("Size", "L")),
		), false},
		{"duplicate combination in other order", withVariants(
			v("A", option("Color", "Red"), option("Size", "M")),
			v("B", option("Size", "M"), option("Color", "Red")),
		), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOffer(tt.offer)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidOffer)
		})
	}
}
