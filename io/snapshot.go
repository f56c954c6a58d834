package io

import (
	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/spatial/r3"
)

// ReadPositions reads particle positions from a plain-text snapshot of
// whitespace-separated columns. xCol, yCol and zCol select the position
// columns; commented and malformed lines are skipped by the table reader.
func ReadPositions(file string, xCol, yCol, zCol int) ([]r3.Vec, error) {
	cols, err := table.ReadTable(file, []int{xCol, yCol, zCol}, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, zs := cols[0], cols[1], cols[2]
	pos := make([]r3.Vec, len(xs))
	for i := range pos {
		pos[i] = r3.Vec{X: xs[i], Y: ys[i], Z: zs[i]}
	}

	return pos, nil
}
