package item

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructionRejectsInvalidBase(t *testing.T) {
	_, err := NewPhysical("", 100, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPhysical("   ", 100, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPhysical("Item of negative price", -2000, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewPhysical("Brick", 100, 1, WithWeight(-1))
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewMusicTrack("", 99, 10, 10)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConstructionErrorCarriesCode(t *testing.T) {
	_, err := NewPhysical("Jacket", 8000, 0)
	var itemErr *Error
	require.True(t, errors.As(err, &itemErr))
	assert.Equal(t, CodeInvalidArgument, itemErr.Code)
	assert.Equal(t, "INVALID_ARGUMENT", itemErr.Code.String())
	assert.False(t, errors.Is(err, ErrOutOfStock))
}

func TestFreeItemIsValid(t *testing.T) {
	it, err := NewPhysical("Flyer", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, it.BasePricePence())
	assert.Equal(t, 0, it.WeightInGrammes())
}

func TestPhysicalSellsBasePriceUntilEmpty(t *testing.T) {
	jacket, err := NewPhysical("Jacket", 8000, 2, WithWeight(1200))
	require.NoError(t, err)
	assert.Equal(t, 1200, jacket.WeightInGrammes())

	for i := 0; i < 2; i++ {
		pence, err := SellOne(jacket)
		require.NoError(t, err)
		assert.Equal(t, 8000, pence)
	}
	assert.False(t, jacket.InStock())
	assert.Equal(t, 0, jacket.UnitsRemaining())

	_, err = SellOne(jacket)
	require.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, 0, jacket.UnitsRemaining())
}

func TestPhysicalStockUpdateAtZeroFails(t *testing.T) {
	p, err := NewPhysical("Jacket", 8000, 1)
	require.NoError(t, err)
	require.NoError(t, p.updateStockAfterSale())
	require.ErrorIs(t, p.updateStockAfterSale(), ErrOutOfStock)
	assert.Equal(t, 0, p.UnitsRemaining())
}

func TestTieredPriceSequence(t *testing.T) {
	pod, err := NewTiered("JPod Deluxe", 20000, 6)
	require.NoError(t, err)

	want := []int{20000, 20000, 40000, 60000, 80000, 100000}
	for i, w := range want {
		pence, err := SellOne(pod)
		require.NoError(t, err, "sale %d", i+1)
		assert.Equal(t, w, pence, "sale %d", i+1)
	}
	assert.Equal(t, 0, pod.UnitsRemaining())

	_, err = SellOne(pod)
	require.ErrorIs(t, err, ErrOutOfStock)
}

func TestTieredPriceIsRecomputedEachCall(t *testing.T) {
	pod, err := NewTiered("JPod", 100, 4)
	require.NoError(t, err)
	assert.Equal(t, 200, pod.ComputePricePence())
	assert.Equal(t, 200, pod.ComputePricePence())
	_, err = SellOne(pod)
	require.NoError(t, err)
	assert.Equal(t, 300, pod.ComputePricePence())
}

func TestDigitalItemsNeverRunOut(t *testing.T) {
	track, err := NewMusicTrack("London Calling", 99, 5324214, 198)
	require.NoError(t, err)
	book, err := NewEBook("Java and all that", 1000, 4242000, "9780000000002")
	require.NoError(t, err)

	for _, it := range []Item{track, book} {
		for i := 0; i < 1000; i++ {
			pence, err := SellOne(it)
			require.NoError(t, err)
			assert.Equal(t, it.BasePricePence(), pence)
		}
		assert.True(t, it.InStock())
	}
}

func TestDigitalConstructionValidation(t *testing.T) {
	_, err := NewMusicTrack("Track", 99, 0, 198)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewMusicTrack("Track", 99, 100, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewEBook("Book", 1000, 0, "9780000000002")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewEBook("Book", 1000, 100, "9780000000003")
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewEBook("Book", 1000, 100, "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPrintBook(t *testing.T) {
	b, err := NewPrintBook("Effective Java, 3rd edition", 5500, 8, "9780134685991", 432)
	require.NoError(t, err)
	assert.Equal(t, "9780134685991", b.ISBN())
	assert.Equal(t, 432, b.Pages())
	assert.Equal(t, 8, b.UnitsRemaining())

	var asBook Book = b
	assert.Equal(t, "9780134685991", asBook.ISBN())

	_, err = NewPrintBook("Effective Java", 5500, 8, "9780134685992", 432)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewPrintBook("Effective Java", 5500, 8, "9780134685991", 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCapabilities(t *testing.T) {
	ebook, err := NewEBook("Java and all that", 1000, 4242000, "9780000000002")
	require.NoError(t, err)
	printed, err := NewPrintBook("Effective Java", 5500, 8, "9780134685991", 432)
	require.NoError(t, err)

	var it Item = ebook
	_, hasPages := it.(HasPages)
	assert.False(t, hasPages)
	_, isDigital := it.(Digital)
	assert.True(t, isDigital)

	it = printed
	_, hasPages = it.(HasPages)
	assert.True(t, hasPages)
	_, stocked := it.(Stocked)
	assert.True(t, stocked)
}

func TestString(t *testing.T) {
	jacket, err := NewPhysical("Jacket", 8000, 2)
	require.NoError(t, err)
	assert.Equal(t, "*** physical ***\nName: Jacket\nPrice: GBP 80.00\nUnits left: 2", jacket.String())

	track, err := NewMusicTrack("London Calling", 99, 5324214, 198)
	require.NoError(t, err)
	assert.Equal(t, "*** music_track ***\nName: London Calling\nPrice: GBP 0.99\nBytes: 5324214\nSeconds: 198", track.String())

	pod, err := NewTiered("JPod", 20000, 3)
	require.NoError(t, err)
	assert.Contains(t, pod.String(), "Price: GBP 600.00")
	assert.Equal(t, "GBP 600.00", PriceString(pod))
}

func TestPresent(t *testing.T) {
	var missing *Physical
	assert.False(t, Present(nil))
	assert.False(t, Present(missing))

	jacket, err := NewPhysical("Jacket", 8000, 1)
	require.NoError(t, err)
	assert.True(t, Present(jacket))
}
