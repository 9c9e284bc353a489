package knapsack

import "github.com/gravitas-games/knapsack/internal/item"

// ItemSnapshot is the reporting view of one contained item.
type ItemSnapshot struct {
	Name           string    `json:"name"`
	Kind           item.Kind `json:"kind"`
	WeightGrammes  int       `json:"weightGrammes"`
	NextPricePence int       `json:"nextPricePence"`
	InStock        bool      `json:"inStock"`
}

// Snapshot is a point-in-time view of a knapsack, suitable for logging or
// JSON encoding. It does not reference the live items.
type Snapshot struct {
	ID                   string         `json:"id"`
	Items                []ItemSnapshot `json:"items"`
	TotalWeightGrammes   int            `json:"totalWeightGrammes"`
	AverageWeightGrammes float64        `json:"averageWeightGrammes"`
}

// Snapshot captures the current contents and aggregates.
func (k *Knapsack) Snapshot() Snapshot {
	ss := Snapshot{
		ID:                   k.id,
		Items:                make([]ItemSnapshot, 0, len(k.items)),
		TotalWeightGrammes:   k.totalWeightInGrammes,
		AverageWeightGrammes: k.AverageWeightInGrammes(),
	}
	for _, it := range k.items {
		ss.Items = append(ss.Items, ItemSnapshot{
			Name:           it.Name(),
			Kind:           it.Kind(),
			WeightGrammes:  it.WeightInGrammes(),
			NextPricePence: it.ComputePricePence(),
			InStock:        it.InStock(),
		})
	}
	return ss
}
