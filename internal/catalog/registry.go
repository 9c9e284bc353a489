// Package catalog keeps the sellable items of a shop under stable IDs and
// builds them from YAML definitions.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/gravitas-games/knapsack/internal/item"
	"github.com/gravitas-games/knapsack/internal/knapsack"
	"github.com/gravitas-games/knapsack/pkg/price"
)

// ID identifies an item in the catalog. IDs are derived from item names, so
// the same name always maps to the same ID.
type ID string

// Namespace is the UUID namespace catalog IDs are derived in.
var Namespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("gravitas-games/catalog"))

// IDFor derives the catalog ID of an item name.
func IDFor(name string) ID {
	return ID(uuid.NewSHA1(Namespace, []byte(name)).String())
}

var (
	ErrNilItem   = errors.New("catalog: nil item")
	ErrDuplicate = errors.New("catalog: item already registered")
	ErrNotFound  = errors.New("catalog: item not found")
)

// Entry describes a registered item for listings.
type Entry struct {
	ID             ID        `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Kind           item.Kind `json:"kind" yaml:"kind"`
	NextPricePence int       `json:"nextPricePence" yaml:"next_price_pence"`
	WeightGrammes  int       `json:"weightGrammes" yaml:"weight_grammes"`
	InStock        bool      `json:"inStock" yaml:"in_stock"`
}

// Registry stores items keyed by ID. It is not safe for concurrent use.
type Registry struct {
	items  map[ID]item.Item
	logger *zap.Logger
}

// Option configures a registry.
type Option func(*Registry)

// WithLogger sets the logger sales are reported to.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry constructs an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		items:  make(map[ID]item.Item),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register adds it under the ID derived from its name.
func (r *Registry) Register(it item.Item) (ID, error) {
	if !item.Present(it) {
		return "", ErrNilItem
	}
	id := IDFor(it.Name())
	if _, exists := r.items[id]; exists {
		return "", fmt.Errorf("%w: %s", ErrDuplicate, it.Name())
	}
	r.items[id] = it
	return id, nil
}

// RegisterAll registers every item and returns the combined errors of the
// ones that were rejected.
func (r *Registry) RegisterAll(items []item.Item) error {
	var errs error
	for _, it := range items {
		if _, err := r.Register(it); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Len returns the number of registered items.
func (r *Registry) Len() int { return len(r.items) }

// Lookup returns the item registered under id, if present.
func (r *Registry) Lookup(id ID) (item.Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// LookupName returns the item registered under name, if present.
func (r *Registry) LookupName(name string) (item.Item, bool) {
	return r.Lookup(IDFor(name))
}

// Sell sells one unit of the item registered under id.
func (r *Registry) Sell(id ID) (int, error) {
	it, ok := r.items[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	pence, err := item.SellOne(it)
	if err != nil {
		r.logger.Warn("sale refused",
			zap.String("id", string(id)),
			zap.String("item", it.Name()),
			zap.Error(err))
		return 0, err
	}
	r.logger.Info("item sold",
		zap.String("id", string(id)),
		zap.String("item", it.Name()),
		zap.Int("price_pence", pence),
		zap.String("price", price.Format(pence)))
	return pence, nil
}

// Export lists the registered items sorted by name.
func (r *Registry) Export() []Entry {
	if len(r.items) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(r.items))
	for id, it := range r.items {
		out = append(out, Entry{
			ID:             id,
			Name:           it.Name(),
			Kind:           it.Kind(),
			NextPricePence: it.ComputePricePence(),
			WeightGrammes:  it.WeightInGrammes(),
			InStock:        it.InStock(),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Knapsack packs every registered item, sorted by name, into a new knapsack.
func (r *Registry) Knapsack(opts ...knapsack.Option) *knapsack.Knapsack {
	k := knapsack.New(opts...)
	for _, e := range r.Export() {
		k.Add(r.items[e.ID])
	}
	return k
}
