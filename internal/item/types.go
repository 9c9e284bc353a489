// Package item models sellable catalog items. Every item has a name, an
// immutable base price in pence and a weight in grammes; each variant
// decides how the next unit is priced and whether a sale is possible.
//
// Items are not safe for concurrent use.
package item

import "fmt"

// Kind names an item variant.
type Kind string

const (
	KindPhysical   Kind = "physical"
	KindTiered     Kind = "tiered"
	KindPrintBook  Kind = "print_book"
	KindMusicTrack Kind = "music_track"
	KindEBook      Kind = "ebook"
)

// Item is the contract shared by every variant. The set of variants is
// closed: implementations live in this package.
type Item interface {
	fmt.Stringer

	Kind() Kind
	Name() string
	BasePricePence() int
	WeightInGrammes() int

	// ComputePricePence returns the price charged for the next unit sold.
	ComputePricePence() int
	// InStock reports whether a sale is currently possible.
	InStock() bool

	// updateStockAfterSale runs after the price of a sale was computed.
	updateStockAfterSale() error
}

// Stocked is implemented by items with a finite supply.
type Stocked interface {
	Item
	UnitsRemaining() int
}

// Book is implemented by items identified by an ISBN-13.
type Book interface {
	Item
	ISBN() string
}

// HasPages is implemented by printed items.
type HasPages interface {
	Pages() int
}

// Digital is implemented by items with unlimited supply.
type Digital interface {
	Item
	SizeBytes() int64
}

// Option configures the attributes shared by all variants.
type Option func(*base)

// WithWeight sets the item weight in grammes. The default is zero.
func WithWeight(grammes int) Option {
	return func(b *base) {
		b.weightInGrammes = grammes
	}
}
