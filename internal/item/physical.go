package item

import "fmt"

// TierThreshold is the stock level below which tiered items get pricier.
const TierThreshold = 5

// Physical is an item with a finite, countable supply.
type Physical struct {
	base
	units int
}

// NewPhysical creates a physical item with units > 0 in stock.
func NewPhysical(name string, pricePence, units int, opts ...Option) (*Physical, error) {
	b, err := newBase(name, pricePence, opts...)
	if err != nil {
		return nil, err
	}
	if units <= 0 {
		return nil, newInvalidArgument("expected units > 0; found %d", units)
	}
	return &Physical{base: b, units: units}, nil
}

func (p *Physical) Kind() Kind { return KindPhysical }

// InStock reports whether at least one unit is left.
func (p *Physical) InStock() bool { return p.units > 0 }

// UnitsRemaining returns the number of units that can still be sold.
func (p *Physical) UnitsRemaining() int { return p.units }

func (p *Physical) updateStockAfterSale() error {
	if p.units <= 0 {
		return newOutOfStock("%s is out of stock", p.name)
	}
	p.units--
	return nil
}

func (p *Physical) unitsLine() string {
	return fmt.Sprintf("Units left: %d", p.units)
}

func (p *Physical) String() string {
	return p.describe(p.Kind(), p.ComputePricePence(), p.unitsLine())
}

// Tiered is a physical item whose unit price rises as stock runs low: at or
// above TierThreshold units the base price applies, below it each unit costs
// (TierThreshold+1-units) times the base price.
type Tiered struct {
	Physical
}

// NewTiered creates a tiered item with units > 0 in stock.
func NewTiered(name string, pricePence, units int, opts ...Option) (*Tiered, error) {
	p, err := NewPhysical(name, pricePence, units, opts...)
	if err != nil {
		return nil, err
	}
	return &Tiered{Physical: *p}, nil
}

func (t *Tiered) Kind() Kind { return KindTiered }

// ComputePricePence prices the next unit from the current stock level.
// With nothing left it returns 0; SellOne never gets that far.
func (t *Tiered) ComputePricePence() int {
	switch u := t.units; {
	case u >= TierThreshold:
		return t.pricePence
	case u > 0:
		return (TierThreshold + 1 - u) * t.pricePence
	default:
		return 0
	}
}

func (t *Tiered) String() string {
	return t.describe(t.Kind(), t.ComputePricePence(), t.unitsLine())
}

// PrintBook is a physical book with an ISBN and a page count.
type PrintBook struct {
	Physical
	isbn  string
	pages int
}

// NewPrintBook creates a printed book. The ISBN must be well formed and
// pages must be positive.
func NewPrintBook(name string, pricePence, units int, isbn string, pages int, opts ...Option) (*PrintBook, error) {
	p, err := NewPhysical(name, pricePence, units, opts...)
	if err != nil {
		return nil, err
	}
	if pages <= 0 {
		return nil, newInvalidArgument("expected pages > 0; found %d", pages)
	}
	if err := checkISBN(isbn); err != nil {
		return nil, err
	}
	return &PrintBook{Physical: *p, isbn: isbn, pages: pages}, nil
}

func (b *PrintBook) Kind() Kind { return KindPrintBook }

func (b *PrintBook) ISBN() string { return b.isbn }

func (b *PrintBook) Pages() int { return b.pages }

func (b *PrintBook) String() string {
	return b.describe(b.Kind(), b.ComputePricePence(),
		b.unitsLine(),
		"ISBN: "+b.isbn,
		fmt.Sprintf("Pages: %d", b.pages))
}
