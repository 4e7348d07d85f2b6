// Package circuits wires 3-D junction boxes into circuits, shortest
// connection first, using a disjoint-set forest to track which boxes
// already share a circuit.
package circuits

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/junctionbox/aoc"
	"github.com/pingcap/errors"
)

// Box is the position of a junction box.
type Box struct {
	X, Y, Z int
}

func (b Box) String() string {
	return fmt.Sprintf("%d,%d,%d", b.X, b.Y, b.Z)
}

// DistSq returns the squared straight-line distance between a and b. It
// orders pairs the same way the distance itself does.
func (a Box) DistSq(b Box) int {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

// Parse reads one "X,Y,Z" box per line. Blank lines are skipped.
func Parse(r io.Reader) ([]Box, error) {
	var boxes []Box
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ",")
		if len(fields) != 3 {
			return nil, errors.Errorf("line %d: want 3 coordinates, got %q", line, text)
		}
		v, err := aoc.ParseInts(fields...)
		if err != nil {
			return nil, errors.Annotatef(err, "line %d", line)
		}
		boxes = append(boxes, Box{v[0], v[1], v[2]})
	}
	if err := s.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	return boxes, nil
}

// Pair is a candidate connection between two boxes.
type Pair struct {
	A, B   Box
	DistSq int
}

// Pairs returns every unordered pair of boxes, closest first. Pairs at the
// same distance keep the order in which they were generated: by index of A,
// then of B.
func Pairs(boxes []Box) []Pair {
	n := len(boxes)
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{
				A:      boxes[i],
				B:      boxes[j],
				DistSq: boxes[i].DistSq(boxes[j]),
			})
		}
	}
	slices.SortStableFunc(out, func(p, q Pair) int {
		return cmp.Compare(p.DistSq, q.DistSq)
	})
	return out
}
