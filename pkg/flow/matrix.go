package flow

import (
	"sort"

	"github.com/crossflow/crossflow/pkg/compass"
	"github.com/crossflow/crossflow/pkg/errors"
)

// Movement is a single origin→destination flow with its traffic volume.
type Movement struct {
	From  string
	To    string
	Value float64
}

// Matrix is an origin-destination flow table.
type Matrix []Movement

// Complete expands a sparse matrix to the full Cartesian product of the
// directions it references. Missing pairs default to value 0; pairs
// supplied more than once keep the last value (entries overwrite, they do
// not accumulate). The result covers exactly |D|² ordered pairs.
func Complete(m Matrix) Matrix {
	dirs := m.Directions()

	values := make(map[[2]string]float64, len(dirs)*len(dirs))
	for _, from := range dirs {
		for _, to := range dirs {
			values[[2]string{from, to}] = 0
		}
	}
	for _, mv := range m {
		values[[2]string{mv.From, mv.To}] = mv.Value
	}

	out := make(Matrix, 0, len(dirs)*len(dirs))
	for _, from := range dirs {
		for _, to := range dirs {
			out = append(out, Movement{From: from, To: to, Value: values[[2]string{from, to}]})
		}
	}
	return out
}

// SortByRing stable-sorts the matrix by (origin position, destination
// position) in the given ring order. A movement referencing a label absent
// from the ring is a lookup failure.
func SortByRing(m Matrix, ring []string) (Matrix, error) {
	index := make(map[string]int, len(ring))
	for i, label := range ring {
		index[label] = i
	}

	for _, mv := range m {
		if _, ok := index[mv.From]; !ok {
			return nil, &compass.MissingDirectionError{Label: mv.From}
		}
		if _, ok := index[mv.To]; !ok {
			return nil, &compass.MissingDirectionError{Label: mv.To}
		}
	}

	out := make(Matrix, len(m))
	copy(out, m)
	sort.SliceStable(out, func(i, j int) bool {
		if index[out[i].From] != index[out[j].From] {
			return index[out[i].From] < index[out[j].From]
		}
		return index[out[i].To] < index[out[j].To]
	})
	return out, nil
}

// Directions returns the distinct direction labels appearing anywhere in
// the matrix, preserving first-seen order with origins before
// destinations. The result can be a strict subset of the configured rose
// when the caller supplies flows for only some directions.
func (m Matrix) Directions() []string {
	seen := make(map[string]bool, len(m))
	var out []string
	for _, mv := range m {
		if !seen[mv.From] {
			seen[mv.From] = true
			out = append(out, mv.From)
		}
	}
	for _, mv := range m {
		if !seen[mv.To] {
			seen[mv.To] = true
			out = append(out, mv.To)
		}
	}
	return out
}

// MinMax returns the smallest and largest value in the matrix.
func (m Matrix) MinMax() (min, max float64, err error) {
	if len(m) == 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidMatrix, "matrix is empty")
	}
	min, max = m[0].Value, m[0].Value
	for _, mv := range m[1:] {
		if mv.Value < min {
			min = mv.Value
		}
		if mv.Value > max {
			max = mv.Value
		}
	}
	return min, max, nil
}

// Totals sums the matrix per direction: outbound collects values where the
// direction is the origin, inbound where it is the destination.
func (m Matrix) Totals() (outbound, inbound map[string]float64) {
	outbound = make(map[string]float64)
	inbound = make(map[string]float64)
	for _, mv := range m {
		outbound[mv.From] += mv.Value
		inbound[mv.To] += mv.Value
	}
	return outbound, inbound
}
