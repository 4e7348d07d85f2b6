package circuits

import (
	"context"

	"github.com/junctionbox/aoc"
	"github.com/pingcap/errors"
)

// Part1 connects the closest connections pairs of boxes and returns the
// product of the sizes of the top largest circuits. A connection between two
// boxes already on the same circuit still uses up one of the connections.
func Part1(ctx context.Context, boxes []Box, connections, top int) (int, error) {
	if connections < 0 {
		return 0, errors.Errorf("connections must not be negative, got %d", connections)
	}
	if top <= 0 {
		return 0, errors.Errorf("top must be positive, got %d", top)
	}
	pairs := Pairs(boxes)
	if connections > len(pairs) {
		connections = len(pairs)
	}

	f := aoc.New(boxes...)
	for i, p := range pairs[:connections] {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, errors.Trace(err)
			}
		}
		if _, err := f.Merge(p.A, p.B); err != nil {
			return 0, errors.Trace(err)
		}
	}

	sizes := f.ComponentSizes()
	if len(sizes) < top {
		return 0, errors.Errorf("not enough circuits: have %d, want %d", len(sizes), top)
	}
	prod := 1
	for _, s := range sizes[:top] {
		prod *= s
	}
	return prod, nil
}

// Part2 keeps connecting the closest pairs until every box is on one
// circuit, and returns the product of the X coordinates of the last two boxes
// connected. Boxes listed more than once count as a single box.
func Part2(ctx context.Context, boxes []Box) (int, error) {
	f := aoc.New(boxes...)
	for i, p := range Pairs(boxes) {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, errors.Trace(err)
			}
		}
		if _, err := f.Merge(p.A, p.B); err != nil {
			return 0, errors.Trace(err)
		}
		if f.Len() == 1 {
			return p.A.X * p.B.X, nil
		}
	}
	return 0, errors.Errorf("%d boxes never joined into a single circuit", f.Size())
}
