// Package traits defines the biot genome and the traits derived from it.
package traits

import (
	"fmt"

	"github.com/pthm-cable/biots/rng"
)

// Symbol is one locus value of a genome.
type Symbol uint8

const (
	Attack         Symbol = iota // 'a'
	Defense                      // 'd'
	Photosynthesis               // 'p'
	Motion                       // 'm'
	Noop                         // 'n', expresses nothing
	Intelligence                 // 'i'
)

// GenomeLength is the fixed number of loci in every genome.
const GenomeLength = 13

// alphabet is the distribution random symbols are drawn from.
// Noop appears three times, giving a 3/8 chance of an empty locus.
var alphabet = [...]Symbol{Attack, Defense, Photosynthesis, Motion, Noop, Noop, Noop, Intelligence}

// AlphabetSize is the number of entries symbols are drawn from.
const AlphabetSize = len(alphabet)

// Scale factors applied to symbol counts.
const (
	physicalScale     = 0.1
	intelligenceScale = 10
)

var symbolLetters = [...]byte{
	Attack:         'a',
	Defense:        'd',
	Photosynthesis: 'p',
	Motion:         'm',
	Noop:           'n',
	Intelligence:   'i',
}

// Letter returns the single-letter code of the symbol.
func (s Symbol) Letter() byte {
	if int(s) < len(symbolLetters) {
		return symbolLetters[s]
	}
	return '?'
}

// Genome is the heritable code of a biot.
type Genome [GenomeLength]Symbol

// String renders the genome as its letter codes, e.g. "adpmnnnimmaap".
func (g Genome) String() string {
	buf := make([]byte, GenomeLength)
	for i, s := range g {
		buf[i] = s.Letter()
	}
	return string(buf)
}

// Count returns how many loci carry the symbol.
func (g Genome) Count(s Symbol) int {
	n := 0
	for _, v := range g {
		if v == s {
			n++
		}
	}
	return n
}

// Parse reads a genome from its letter codes.
func Parse(code string) (Genome, error) {
	var g Genome
	if len(code) != GenomeLength {
		return g, fmt.Errorf("genome %q: want %d symbols, got %d", code, GenomeLength, len(code))
	}
	for i := 0; i < len(code); i++ {
		s, ok := symbolFor(code[i])
		if !ok {
			return g, fmt.Errorf("genome %q: unknown symbol %q at %d", code, code[i], i)
		}
		g[i] = s
	}
	return g, nil
}

// MustParse is like Parse but panics on error.
func MustParse(code string) Genome {
	g, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return g
}

func symbolFor(c byte) (Symbol, bool) {
	for s, l := range symbolLetters {
		if l == c {
			return Symbol(s), true
		}
	}
	return 0, false
}

// Random draws every locus uniformly from the alphabet.
func Random(r rng.Source) Genome {
	var g Genome
	for i := range g {
		g[i] = alphabet[r.Intn(AlphabetSize)]
	}
	return g
}

// Mutate returns a copy of g with one uniformly chosen locus replaced by a
// uniformly drawn symbol. Traits must be re-derived by the caller.
func Mutate(g Genome, r rng.Source) Genome {
	locus := r.Intn(GenomeLength)
	g[locus] = alphabet[r.Intn(AlphabetSize)]
	return g
}

// Traits are the numeric capabilities expressed by a genome.
// They are never set directly; use Derive.
type Traits struct {
	Attack         float32
	Defense        float32
	Photosynthesis float32
	Motion         float32
	Intelligence   float32
}

// Derive counts symbol occurrences and applies the fixed scale factors.
func Derive(g Genome) Traits {
	return Traits{
		Attack:         float32(g.Count(Attack)) * physicalScale,
		Defense:        float32(g.Count(Defense)) * physicalScale,
		Photosynthesis: float32(g.Count(Photosynthesis)) * physicalScale,
		Motion:         float32(g.Count(Motion)) * physicalScale,
		Intelligence:   float32(g.Count(Intelligence)) * intelligenceScale,
	}
}

// Weight is the physical mass of the body. Intelligence weighs nothing.
func (t Traits) Weight() float32 {
	return t.Attack + t.Defense + t.Photosynthesis + t.Motion
}

// BaseLife is the life a biot is born with.
func (t Traits) BaseLife() float32 {
	return 8 * t.Weight()
}

// Intelligent reports whether the biot can perceive prey.
func (t Traits) Intelligent() bool {
	return t.Intelligence > 0
}
