package systems

import "github.com/pthm-cable/biots/traits"

// Combat constants.
const (
	DefenseFactor = 0.8 // share of the defender's defense that counts against attack
	CombatRadius  = 50  // candidate search radius around each biot
	ContactScale  = 10  // contact distance per unit of combined weight
	Spoils        = 0.8 // share of the loser's life the winner absorbs
)

// Stronger reports whether a dominates b. It is asymmetric and partial:
// both Stronger(a, b) and Stronger(b, a) may be false, never both true.
func Stronger(a, b traits.Traits) bool {
	return a.Attack > b.Attack+b.Defense*DefenseFactor
}

// Outcome is the result of two biots meeting.
type Outcome uint8

const (
	NoKill    Outcome = iota // out of contact, or neither dominates
	FirstWon                 // the first biot ate the second
	SecondWon                // the second biot ate the first
)

// Interact resolves a meeting of a and b using their current positions and
// life. The loser's life drops to zero and the winner absorbs Spoils of it.
func Interact(a, b Biot) Outcome {
	ta, tb := a.Traits(), b.Traits()
	if distance(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y) >= ContactScale*(ta.Weight()+tb.Weight()) {
		return NoKill
	}
	switch {
	case Stronger(ta, tb):
		a.Vitals.Life += b.Vitals.Life * Spoils
		b.Vitals.Life = 0
		return FirstWon
	case Stronger(tb, ta):
		b.Vitals.Life += a.Vitals.Life * Spoils
		a.Vitals.Life = 0
		return SecondWon
	}
	return NoKill
}

// ForEachCombatPair calls fn once for every unordered pair of indexed points
// within CombatRadius of each other. i is always the point visited first.
func ForEachCombatPair(index *SpatialIndex, fn func(i, j int)) {
	visited := make([]bool, index.Len())
	for i := range visited {
		visited[i] = true
		x, y := index.Point(i)
		for _, nb := range index.Within(x, y, CombatRadius) {
			if visited[nb.Idx] {
				continue
			}
			fn(i, nb.Idx)
		}
	}
}

// ResolveCombat lets every candidate pair from the pre-update index fight.
// It returns, per arena index, whether the biot lost a fight while it still
// had life. A loser can win a later pair and end the pass alive, so callers
// must check life before counting it as killed.
func ResolveCombat(arena []Biot, index *SpatialIndex) []bool {
	defeated := make([]bool, len(arena))
	ForEachCombatPair(index, func(i, j int) {
		aliveI, aliveJ := arena[i].Vitals.Life > 0, arena[j].Vitals.Life > 0
		switch Interact(arena[i], arena[j]) {
		case FirstWon:
			defeated[j] = defeated[j] || aliveJ
		case SecondWon:
			defeated[i] = defeated[i] || aliveI
		}
	})
	return defeated
}
