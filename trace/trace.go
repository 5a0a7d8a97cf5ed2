// Package trace generates reference strings: ordered, finite, replayable
// sequences of page identifiers drawn from a bounded universe.
//
// Generators are seeded, so the same parameters always materialize the
// same sequence; every policy run consumes the same slice read-only.
package trace

import (
	"errors"
	"math/rand"
)

var (
	// ErrInvalidLength is returned when length is negative.
	ErrInvalidLength = errors.New("trace: length must be >= 0")
	// ErrInvalidPageRange is returned when the page universe is empty.
	ErrInvalidPageRange = errors.New("trace: page range must be >= 1")
	// ErrInvalidZipf is returned for out-of-domain Zipf parameters.
	ErrInvalidZipf = errors.New("trace: zipf requires s > 1 and v >= 1")
)

// Uniform returns length pages drawn uniformly from [0, pageRange).
// length 0 yields an empty, valid trace.
func Uniform(length, pageRange int, seed int64) ([]int, error) {
	if err := validate(length, pageRange); err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(seed))
	t := make([]int, length)
	for i := range t {
		t[i] = r.Intn(pageRange)
	}
	return t, nil
}

// Zipf returns length pages drawn from [0, pageRange) with a Zipf-skewed
// distribution (low page ids are hot). Skew grows with s; s must be > 1
// and v must be >= 1, per rand.NewZipf.
func Zipf(length, pageRange int, s, v float64, seed int64) ([]int, error) {
	if err := validate(length, pageRange); err != nil {
		return nil, err
	}
	if s <= 1 || v < 1 {
		return nil, ErrInvalidZipf
	}
	r := rand.New(rand.NewSource(seed))
	z := rand.NewZipf(r, s, v, uint64(pageRange-1))
	t := make([]int, length)
	for i := range t {
		t[i] = int(z.Uint64())
	}
	return t, nil
}

func validate(length, pageRange int) error {
	if length < 0 {
		return ErrInvalidLength
	}
	if pageRange < 1 {
		return ErrInvalidPageRange
	}
	return nil
}
