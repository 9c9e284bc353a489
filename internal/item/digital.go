package item

import (
	"fmt"

	"github.com/gravitas-games/knapsack/pkg/isbn"
)

// digital carries what every downloadable item shares. Supply is unlimited.
type digital struct {
	base
	sizeBytes int64
}

func newDigital(name string, pricePence int, sizeBytes int64, opts ...Option) (digital, error) {
	b, err := newBase(name, pricePence, opts...)
	if err != nil {
		return digital{}, err
	}
	if sizeBytes < 1 {
		return digital{}, newInvalidArgument("expected size bytes > 0; found %d", sizeBytes)
	}
	return digital{base: b, sizeBytes: sizeBytes}, nil
}

func (d *digital) InStock() bool { return true }

func (d *digital) SizeBytes() int64 { return d.sizeBytes }

func (d *digital) bytesLine() string {
	return fmt.Sprintf("Bytes: %d", d.sizeBytes)
}

// MusicTrack is a downloadable track with a playing time.
type MusicTrack struct {
	digital
	durationSeconds int
}

// NewMusicTrack creates a track; size and duration must be positive.
func NewMusicTrack(name string, pricePence int, sizeBytes int64, durationSeconds int, opts ...Option) (*MusicTrack, error) {
	d, err := newDigital(name, pricePence, sizeBytes, opts...)
	if err != nil {
		return nil, err
	}
	if durationSeconds <= 0 {
		return nil, newInvalidArgument("expected duration seconds > 0; found %d", durationSeconds)
	}
	return &MusicTrack{digital: d, durationSeconds: durationSeconds}, nil
}

func (m *MusicTrack) Kind() Kind { return KindMusicTrack }

func (m *MusicTrack) DurationSeconds() int { return m.durationSeconds }

func (m *MusicTrack) String() string {
	return m.describe(m.Kind(), m.ComputePricePence(),
		m.bytesLine(),
		fmt.Sprintf("Seconds: %d", m.durationSeconds))
}

// EBook is a downloadable book identified by an ISBN.
type EBook struct {
	digital
	isbn string
}

// NewEBook creates an e-book; size must be positive and the ISBN well formed.
func NewEBook(name string, pricePence int, sizeBytes int64, isbn string, opts ...Option) (*EBook, error) {
	d, err := newDigital(name, pricePence, sizeBytes, opts...)
	if err != nil {
		return nil, err
	}
	if err := checkISBN(isbn); err != nil {
		return nil, err
	}
	return &EBook{digital: d, isbn: isbn}, nil
}

func (e *EBook) Kind() Kind { return KindEBook }

func (e *EBook) ISBN() string { return e.isbn }

func (e *EBook) String() string {
	return e.describe(e.Kind(), e.ComputePricePence(),
		e.bytesLine(),
		"ISBN: "+e.isbn)
}

func checkISBN(s string) error {
	if !isbn.CheckWellFormed(s) {
		return newInvalidArgument("malformed ISBN %q", s)
	}
	return nil
}
