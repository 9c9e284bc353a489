// Package knapsack provides a container of catalog items that keeps a
// running total of their weight and answers weight-bounded queries.
//
// A Knapsack holds references: the same item may sit in several knapsacks,
// or several times in one, and each occurrence counts on its own. Selling
// an item changes its stock but never its weight, so totals stay valid.
// Knapsacks are not safe for concurrent mutation.
package knapsack

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gravitas-games/knapsack/internal/item"
)

// Knapsack is an ordered multiset of items with a maintained total weight.
type Knapsack struct {
	id                   string
	items                []item.Item
	totalWeightInGrammes int
}

// Option configures knapsack construction.
type Option func(*Knapsack)

// WithID overrides the generated identifier.
func WithID(id string) Option {
	return func(k *Knapsack) {
		k.id = id
	}
}

// WithItems seeds the knapsack. Absent entries are skipped and the slice is
// not retained.
func WithItems(items ...item.Item) Option {
	return func(k *Knapsack) {
		k.AddAll(items)
	}
}

// New creates a knapsack. Without options it is empty and gets a random ID.
func New(opts ...Option) *Knapsack {
	k := &Knapsack{
		id:    uuid.NewString(),
		items: make([]item.Item, 0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(k)
		}
	}
	return k
}

// ID identifies the knapsack in logs.
func (k *Knapsack) ID() string { return k.id }

// Add appends it and reports true, or does nothing and reports false when
// it is absent.
func (k *Knapsack) Add(it item.Item) bool {
	if !item.Present(it) {
		return false
	}
	k.items = append(k.items, it)
	k.totalWeightInGrammes += it.WeightInGrammes()
	return true
}

// AddAll appends every present entry of items and reports whether at least
// one was added.
func (k *Knapsack) AddAll(items []item.Item) bool {
	added := false
	for _, it := range items {
		if k.Add(it) {
			added = true
		}
	}
	return added
}

// Reset empties the knapsack.
func (k *Knapsack) Reset() {
	k.items = make([]item.Item, 0)
	k.totalWeightInGrammes = 0
}

// KeepOnlyItemsWith drops every item heavier than maxItemWeightInGrammes.
// The order of the remaining items is preserved.
func (k *Knapsack) KeepOnlyItemsWith(maxItemWeightInGrammes int) {
	kept := k.items[:0]
	total := 0
	for _, it := range k.items {
		if it.WeightInGrammes() <= maxItemWeightInGrammes {
			kept = append(kept, it)
			total += it.WeightInGrammes()
		}
	}
	// release references held past the new length
	for i := len(kept); i < len(k.items); i++ {
		k.items[i] = nil
	}
	k.items = kept
	k.totalWeightInGrammes = total
}

// MakeNewKnapsackWith returns a new knapsack holding the items of k that
// weigh at most maxItemWeightInGrammes. k is not modified.
func (k *Knapsack) MakeNewKnapsackWith(maxItemWeightInGrammes int) *Knapsack {
	out := New()
	for _, it := range k.items {
		if it.WeightInGrammes() <= maxItemWeightInGrammes {
			out.Add(it)
		}
	}
	return out
}

// Partition splits k into two new knapsacks: items weighing at most
// thresholdInGrammes and the heavier rest. k is not modified.
func (k *Knapsack) Partition(thresholdInGrammes int) (light, heavy *Knapsack) {
	light, heavy = New(), New()
	for _, it := range k.items {
		if it.WeightInGrammes() <= thresholdInGrammes {
			light.Add(it)
		} else {
			heavy.Add(it)
		}
	}
	return light, heavy
}

// NumberOfItems returns how many items the knapsack holds.
func (k *Knapsack) NumberOfItems() int { return len(k.items) }

// TotalWeightInGrammes returns the summed weight of all items.
func (k *Knapsack) TotalWeightInGrammes() int { return k.totalWeightInGrammes }

// AverageWeightInGrammes returns the mean item weight, or -1.0 when the
// knapsack is empty.
func (k *Knapsack) AverageWeightInGrammes() float64 {
	if len(k.items) == 0 {
		return -1.0
	}
	return float64(k.totalWeightInGrammes) / float64(len(k.items))
}

// GreatestItem returns the item whose next unit costs the most. The first
// such item wins a tie. It returns nil for an empty knapsack.
func (k *Knapsack) GreatestItem() item.Item {
	var greatest item.Item
	best := 0
	for _, it := range k.items {
		pence := it.ComputePricePence()
		if greatest == nil || pence > best {
			greatest, best = it, pence
		}
	}
	return greatest
}

// Items returns a copy of the contents in insertion order.
func (k *Knapsack) Items() []item.Item {
	out := make([]item.Item, len(k.items))
	copy(out, k.items)
	return out
}

// String lists the contents as "[(name, grammes), ...]".
func (k *Knapsack) String() string {
	parts := make([]string, 0, len(k.items))
	for _, it := range k.items {
		parts = append(parts, fmt.Sprintf("(%s, %d)", it.Name(), it.WeightInGrammes()))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// HeaviestKnapsack returns the knapsack with the strictly greatest total
// weight, the first one winning a tie. Nil entries are ignored; the result
// is nil when knapsacks holds no knapsack at all.
func HeaviestKnapsack(knapsacks []*Knapsack) *Knapsack {
	var heaviest *Knapsack
	for _, k := range knapsacks {
		if k == nil {
			continue
		}
		if heaviest == nil || k.totalWeightInGrammes > heaviest.totalWeightInGrammes {
			heaviest = k
		}
	}
	return heaviest
}
