package catalog

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/gravitas-games/knapsack/internal/item"
)

// ErrUnknownKind is returned for a definition whose kind is not supported.
var ErrUnknownKind = errors.New("catalog: unknown item kind")

// Definition describes one item in a catalog file. Fields that do not apply
// to a kind are ignored.
type Definition struct {
	Kind            item.Kind `yaml:"kind"`
	Name            string    `yaml:"name"`
	PricePence      int       `yaml:"price_pence"`
	WeightGrammes   int       `yaml:"weight_grammes"`
	Units           int       `yaml:"units"`
	ISBN            string    `yaml:"isbn"`
	Pages           int       `yaml:"pages"`
	SizeBytes       int64     `yaml:"size_bytes"`
	DurationSeconds int       `yaml:"duration_seconds"`
}

type document struct {
	Items []Definition `yaml:"items"`
}

// Build constructs the item the definition describes.
func (d Definition) Build() (item.Item, error) {
	weight := item.WithWeight(d.WeightGrammes)
	switch d.Kind {
	case item.KindPhysical:
		return build(item.NewPhysical(d.Name, d.PricePence, d.Units, weight))
	case item.KindTiered:
		return build(item.NewTiered(d.Name, d.PricePence, d.Units, weight))
	case item.KindPrintBook:
		return build(item.NewPrintBook(d.Name, d.PricePence, d.Units, d.ISBN, d.Pages, weight))
	case item.KindMusicTrack:
		return build(item.NewMusicTrack(d.Name, d.PricePence, d.SizeBytes, d.DurationSeconds, weight))
	case item.KindEBook:
		return build(item.NewEBook(d.Name, d.PricePence, d.SizeBytes, d.ISBN, weight))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
}

// build keeps a failed construction from leaking a typed nil into an Item.
func build[T item.Item](it T, err error) (item.Item, error) {
	if err != nil {
		return nil, err
	}
	return it, nil
}

// Parse decodes a YAML catalog and builds its items. Definitions that fail
// to build are reported together in the returned error; the items that did
// build are returned regardless.
func Parse(data []byte) ([]item.Item, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	items := make([]item.Item, 0, len(doc.Items))
	var errs error
	for i, d := range doc.Items {
		it, err := d.Build()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("item %d (%s): %w", i, d.Name, err))
			continue
		}
		items = append(items, it)
	}
	return items, errs
}

// LoadFile reads and parses a YAML catalog file.
func LoadFile(path string) ([]item.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}
