package catalog

import "github.com/Madhav-Gupta-28/sportsmart-backend-go/models"

// Selection maps option names to the values a shopper picked, e.g. {"Color": "Black"}.
type Selection map[string]string

type Status string

const (
	StatusInStock     Status = "in_stock"
	StatusOutOfStock  Status = "out_of_stock"
	StatusUnavailable Status = "unavailable"
)

// Availability is what the product page shows for the current selection.
type Availability struct {
	SKU         string       `json:"sku,omitempty"`
	Price       models.Money `json:"price"`
	Stock       int          `json:"stock"`
	Purchasable bool         `json:"purchasable"`
	Status      Status       `json:"status"`
}

// Listing is the aggregate shown on product cards before anything is selected.
// TotalStock only drives the "in stock" badge; it says nothing about a given combination.
type Listing struct {
	Price      models.Money  `json:"price"`
	MaxPrice   *models.Money `json:"maxPrice,omitempty"` // set when variant prices differ
	TotalStock int           `json:"totalStock"`
	InStock    bool          `json:"inStock"`
}

// Resolve computes price, stock and purchasability. For variant products the selection
// must name a value for every option and match one variant exactly; anything else is
// reported as unavailable rather than as an error.
func Resolve(p models.Product, sel Selection) Availability {
	switch o := p.Offer.(type) {
	case models.SimpleOffer:
		return stocked("", o.Price, o.Stock)
	case models.VariantOffer:
		v, ok := MatchVariant(o, sel)
		if !ok {
			return Availability{Status: StatusUnavailable}
		}
		return stocked(v.SKU, v.Price, v.Stock)
	default:
		return Availability{Status: StatusUnavailable}
	}
}

// MatchVariant finds the variant whose options equal the selection on every option name.
// Selection keys that are not option names are ignored.
func MatchVariant(o models.VariantOffer, sel Selection) (models.Variant, bool) {
	if len(o.OptionNames) == 0 {
		return models.Variant{}, false
	}
	for _, name := range o.OptionNames {
		if sel[name] == "" {
			return models.Variant{}, false
		}
	}
	for _, v := range o.Variants {
		if len(v.Options) != len(o.OptionNames) {
			continue
		}
		opts := v.OptionMap()
		matched := true
		for _, name := range o.OptionNames {
			if opts[name] != sel[name] {
				matched = false
				break
			}
		}
		if matched {
			return v, true
		}
	}
	return models.Variant{}, false
}

// ResolveSKU is Resolve for callers that already know the variant SKU, such as an
// order line. Simple products take no SKU.
func ResolveSKU(p models.Product, sku string) Availability {
	switch o := p.Offer.(type) {
	case models.SimpleOffer:
		if sku != "" {
			return Availability{Status: StatusUnavailable}
		}
		return stocked("", o.Price, o.Stock)
	case models.VariantOffer:
		for _, v := range o.Variants {
			if sku != "" && v.SKU == sku {
				return stocked(v.SKU, v.Price, v.Stock)
			}
		}
	}
	return Availability{Status: StatusUnavailable}
}

// Summarize returns the listing view: a simple product's own price, or the cheapest
// variant price (with the maximum when prices differ) and the stock of all variants.
func Summarize(p models.Product) Listing {
	switch o := p.Offer.(type) {
	case models.SimpleOffer:
		return Listing{Price: o.Price, TotalStock: o.Stock, InStock: o.Stock > 0}
	case models.VariantOffer:
		if len(o.Variants) == 0 {
			return Listing{}
		}
		lo, hi := o.Variants[0].Price, o.Variants[0].Price
		total := 0
		for _, v := range o.Variants {
			if v.Price.LessThan(lo.Decimal) {
				lo = v.Price
			}
			if v.Price.GreaterThan(hi.Decimal) {
				hi = v.Price
			}
			total += v.Stock
		}
		l := Listing{Price: lo, TotalStock: total, InStock: total > 0}
		if !hi.Equal(lo.Decimal) {
			l.MaxPrice = &hi
		}
		return l
	default:
		return Listing{}
	}
}

func stocked(sku string, price models.Money, stock int) Availability {
	a := Availability{SKU: sku, Price: price, Stock: stock, Purchasable: stock > 0, Status: StatusInStock}
	if stock <= 0 {
		a.Status = StatusOutOfStock
	}
	return a
}
