package systems

// PerceptionScale is how far a biot sees per unit of intelligence.
const PerceptionScale = 40

// FeedingDirection picks the direction an intelligent biot hunts in: toward
// the closest indexed biot within its perception range that it is stronger
// than. Neighbours are visited by increasing distance and the biot itself is
// skipped. It returns nil for unintelligent biots, when no prey is in range,
// or when the prey sits exactly on the hunter so no direction exists.
func FeedingDirection(arena []Biot, self int, index *SpatialIndex) *Direction {
	me := arena[self]
	t := me.Traits()
	if !t.Intelligent() {
		return nil
	}

	reach := float64(PerceptionScale * t.Intelligence)
	x, y := index.Point(self)
	var dir *Direction
	index.ScanNearest(x, y, reach*reach, func(nb Neighbor) bool {
		if nb.Idx == self || !Stronger(t, arena[nb.Idx].Traits()) {
			return true
		}
		if dx, dy, ok := normalize(float32(nb.X-x), float32(nb.Y-y)); ok {
			dir = &Direction{X: dx, Y: dy}
		}
		return false
	})
	return dir
}
