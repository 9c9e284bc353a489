package item

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gravitas-games/knapsack/pkg/price"
)

// base holds the immutable attributes every variant embeds.
type base struct {
	name            string
	pricePence      int
	weightInGrammes int
}

func newBase(name string, pricePence int, opts ...Option) (base, error) {
	if strings.TrimSpace(name) == "" {
		return base{}, newInvalidArgument("item name must not be empty")
	}
	if pricePence < 0 {
		return base{}, newInvalidArgument("expected price pence >= 0; found %d", pricePence)
	}
	b := base{name: name, pricePence: pricePence}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	if b.weightInGrammes < 0 {
		return base{}, newInvalidArgument("expected weight grammes >= 0; found %d", b.weightInGrammes)
	}
	return b, nil
}

func (b *base) Name() string { return b.name }

func (b *base) BasePricePence() int { return b.pricePence }

func (b *base) WeightInGrammes() int { return b.weightInGrammes }

// ComputePricePence returns the base price; variants may override it.
func (b *base) ComputePricePence() int { return b.pricePence }

// updateStockAfterSale does nothing: unlimited supply by default.
func (b *base) updateStockAfterSale() error { return nil }

func (b *base) describe(kind Kind, pence int, extra ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*** %s ***\nName: %s\nPrice: %s", kind, b.name, price.Format(pence))
	for _, line := range extra {
		sb.WriteByte('\n')
		sb.WriteString(line)
	}
	return sb.String()
}

// SellOne sells a single unit of it and returns the price charged. The price
// is computed before the stock is updated, so tiered items charge for the
// stock level the buyer saw.
func SellOne(it Item) (int, error) {
	if !it.InStock() {
		return 0, newOutOfStock("%s is out of stock", it.Name())
	}
	pence := it.ComputePricePence()
	if err := it.updateStockAfterSale(); err != nil {
		return 0, err
	}
	return pence, nil
}

// PriceString formats the price of the next unit of it.
func PriceString(it Item) string {
	return price.Format(it.ComputePricePence())
}

// Present reports whether it holds an item. A typed nil pointer such as a nil
// *Physical counts as absent.
func Present(it Item) bool {
	if it == nil {
		return false
	}
	v := reflect.ValueOf(it)
	return !(v.Kind() == reflect.Ptr && v.IsNil())
}
