// Package systems provides the per-tick simulation rules for biots.
package systems

import (
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/pthm-cable/biots/components"
)

// Neighbor is an indexed point returned by a spatial query.
type Neighbor struct {
	Idx    int     // arena index of the originating biot
	X, Y   float64 // position when the index was built
	DistSq float64 // squared distance from the query point
}

// SpatialIndex is a k-d tree over biot positions.
// It is rebuilt from scratch every tick and never updated in place, so every
// query within a tick sees the pre-update snapshot.
type SpatialIndex struct {
	tree   *kdtree.Tree
	points []treePoint // arena order; the tree reorders its own copy
}

// NewSpatialIndex bulk-loads an index over positions. Point i refers to
// arena index i.
func NewSpatialIndex(positions []components.Position) *SpatialIndex {
	points := make([]treePoint, len(positions))
	for i, p := range positions {
		points[i] = treePoint{x: float64(p.X), y: float64(p.Y), idx: i}
	}
	idx := &SpatialIndex{points: points}
	if len(points) > 0 {
		idx.tree = kdtree.New(append(treePoints(nil), points...), false)
	}
	return idx
}

// Len returns the number of indexed points.
func (s *SpatialIndex) Len() int {
	return len(s.points)
}

// Point returns the indexed position of arena index i.
func (s *SpatialIndex) Point(i int) (x, y float64) {
	p := s.points[i]
	return p.x, p.y
}

// NearestN returns up to n points closest to (x, y), ordered by increasing
// squared distance. The query point's own entry is not excluded.
func (s *SpatialIndex) NearestN(x, y float64, n int) []Neighbor {
	if len(s.points) == 0 || n <= 0 {
		return nil
	}
	keep := kdtree.NewNKeeper(n)
	s.tree.NearestSet(keep, treePoint{x: x, y: y, idx: -1})
	return collect(keep.Heap)
}

// NearestWithin returns every point whose squared distance from (x, y) is at
// most maxDistSq, ordered by increasing squared distance.
func (s *SpatialIndex) NearestWithin(x, y, maxDistSq float64) []Neighbor {
	if len(s.points) == 0 || maxDistSq < 0 {
		return nil
	}
	keep := kdtree.NewDistKeeper(maxDistSq)
	s.tree.NearestSet(keep, treePoint{x: x, y: y, idx: -1})
	return collect(keep.Heap)
}

// scanBatch is the first batch size of ScanNearest.
const scanBatch = 8

// ScanNearest calls fn for the points within maxDistSq of (x, y) in the
// same order as NearestWithin, stopping as soon as fn returns false.
// Neighbours are fetched in doubling batches, so a scan that stops early
// only queries the closest few instead of the whole disc.
func (s *SpatialIndex) ScanNearest(x, y, maxDistSq float64, fn func(Neighbor) bool) {
	if len(s.points) == 0 || maxDistSq < 0 {
		return
	}
	q := treePoint{x: x, y: y, idx: -1}
	visited := 0
	for k := scanBatch; ; k *= 2 {
		keep := kdtree.NewNKeeper(k)
		s.tree.NearestSet(keep, q)
		batch := collect(keep.Heap)
		complete := len(batch) < k

		// A full batch may have cut a run of equal distances at its far end;
		// only points strictly closer than its farthest are known exactly.
		edge := batch[len(batch)-1].DistSq
		for _, nb := range batch[visited:] {
			if nb.DistSq > maxDistSq {
				return
			}
			if !complete && nb.DistSq >= edge {
				break
			}
			if !fn(nb) {
				return
			}
			visited++
		}
		if complete || edge > maxDistSq {
			return
		}
	}
}

// Within returns every point within radius of (x, y), ordered by arena index.
func (s *SpatialIndex) Within(x, y, radius float64) []Neighbor {
	found := s.NearestWithin(x, y, radius*radius)
	sort.Slice(found, func(i, j int) bool { return found[i].Idx < found[j].Idx })
	return found
}

// NthNearestExcluding returns the nth (1-based) nearest point to (x, y) that
// is not the point with arena index self.
func (s *SpatialIndex) NthNearestExcluding(x, y float64, self, nth int) (Neighbor, bool) {
	// One extra slot in case self is among the closest.
	found := s.NearestN(x, y, nth+1)
	seen := 0
	for _, nb := range found {
		if nb.Idx == self {
			continue
		}
		seen++
		if seen == nth {
			return nb, true
		}
	}
	return Neighbor{}, false
}

// collect drops keeper sentinels and sorts by distance, breaking ties by
// index so results do not depend on heap layout.
func collect(heap kdtree.Heap) []Neighbor {
	out := make([]Neighbor, 0, len(heap))
	for _, c := range heap {
		if c.Comparable == nil {
			continue
		}
		p := c.Comparable.(treePoint)
		out = append(out, Neighbor{Idx: p.idx, X: p.x, Y: p.y, DistSq: c.Dist})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DistSq != out[j].DistSq {
			return out[i].DistSq < out[j].DistSq
		}
		return out[i].Idx < out[j].Idx
	})
	return out
}

// treePoint is a 2D point that remembers which biot it came from.
type treePoint struct {
	x, y float64
	idx  int
}

// Compare returns the signed distance of p from the plane through c
// perpendicular to dimension d.
func (p treePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(treePoint)
	if d == 0 {
		return p.x - q.x
	}
	return p.y - q.y
}

// Dims returns the number of dimensions.
func (p treePoint) Dims() int { return 2 }

// Distance returns the squared Euclidean distance.
func (p treePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(treePoint)
	dx := p.x - q.x
	dy := p.y - q.y
	return dx*dx + dy*dy
}

func (p treePoint) coord(d kdtree.Dim) float64 {
	if d == 0 {
		return p.x
	}
	return p.y
}

// treePoints implements kdtree.Interface.
type treePoints []treePoint

func (p treePoints) Index(i int) kdtree.Comparable { return p[i] }
func (p treePoints) Len() int                      { return len(p) }
func (p treePoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// Pivot partitions p around the median along d.
func (p treePoints) Pivot(d kdtree.Dim) int {
	return treePlane{treePoints: p, dim: d}.Pivot()
}

// treePlane sorts points along one dimension.
type treePlane struct {
	treePoints
	dim kdtree.Dim
}

func (p treePlane) Less(i, j int) bool {
	return p.treePoints[i].coord(p.dim) < p.treePoints[j].coord(p.dim)
}

func (p treePlane) Swap(i, j int) {
	p.treePoints[i], p.treePoints[j] = p.treePoints[j], p.treePoints[i]
}

func (p treePlane) Slice(start, end int) kdtree.SortSlicer {
	p.treePoints = p.treePoints[start:end]
	return p
}

func (p treePlane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

var _ kdtree.Interface = treePoints(nil)
