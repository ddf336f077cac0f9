package truenetwork

import (
	"cmp"
	"math"
	"slices"
)

// Edge is a line between two points closer than the distance threshold.
// Start is always less than End.
type Edge struct {
	Start, End int
	Opacity    float64
}

// EdgeIndex selects how candidate pairs are found.
type EdgeIndex uint8

const (
	IndexBruteForce EdgeIndex = iota // test every pair
	IndexGrid                        // bucket points into cells of maxDistance and test neighbouring cells
)

// edgeOpacity maps a distance to 1 - d/maxDistance. Only meaningful for
// d < maxDistance.
func edgeOpacity(d, maxDistance float64) float64 {
	return 1 - d/maxDistance
}

// ComputeEdges returns every pair (i, j), i < j, whose Euclidean distance is
// strictly below maxDistance, ordered by (i, j). buf is reused when it has
// capacity. Both indexes return identical results.
func ComputeEdges(points []Point, maxDistance float64, index EdgeIndex, buf []Edge) []Edge {
	buf = buf[:0]
	if maxDistance <= 0 || len(points) < 2 {
		return buf
	}
	switch index {
	case IndexGrid:
		return gridEdges(points, maxDistance, buf)
	default:
		return bruteForceEdges(points, maxDistance, buf)
	}
}

func bruteForceEdges(points []Point, maxDistance float64, buf []Edge) []Edge {
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			dx := points[i].X - points[j].X
			dy := points[i].Y - points[j].Y
			d := math.Sqrt(dx*dx + dy*dy)
			if d < maxDistance {
				buf = append(buf, Edge{Start: i, End: j, Opacity: edgeOpacity(d, maxDistance)})
			}
		}
	}
	return buf
}

// gridEdges buckets points into square cells of side maxDistance, so any pair
// within range lies in the same or an adjacent cell. Points slightly outside
// the surface are clamped into the border cells.
func gridEdges(points []Point, maxDistance float64, buf []Edge) []Edge {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	cols := int((maxX-minX)/maxDistance) + 1
	rows := int((maxY-minY)/maxDistance) + 1

	cellOf := func(p Point) (int, int) {
		cx := int((p.X - minX) / maxDistance)
		cy := int((p.Y - minY) / maxDistance)
		return min(max(cx, 0), cols-1), min(max(cy, 0), rows-1)
	}

	cells := make([][]int, cols*rows)
	for i, p := range points {
		cx, cy := cellOf(p)
		cells[cy*cols+cx] = append(cells[cy*cols+cx], i)
	}

	for i, p := range points {
		cx, cy := cellOf(p)
		for ny := cy - 1; ny <= cy+1; ny++ {
			if ny < 0 || ny >= rows {
				continue
			}
			for nx := cx - 1; nx <= cx+1; nx++ {
				if nx < 0 || nx >= cols {
					continue
				}
				for _, j := range cells[ny*cols+nx] {
					if j <= i {
						continue
					}
					dx := p.X - points[j].X
					dy := p.Y - points[j].Y
					d := math.Sqrt(dx*dx + dy*dy)
					if d < maxDistance {
						buf = append(buf, Edge{Start: i, End: j, Opacity: edgeOpacity(d, maxDistance)})
					}
				}
			}
		}
	}

	slices.SortFunc(buf, func(a, b Edge) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.End, b.End)
	})
	return buf
}
