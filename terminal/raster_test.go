package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/biots/systems"
	"github.com/pthm-cable/biots/traits"
)

func traitsOf(code string) traits.Traits {
	return traits.Derive(traits.MustParse(code))
}

func TestRasterPlacement(t *testing.T) {
	r := NewRaster(10, 5, systems.Bounds{Width: 100, Height: 50})
	plant := traitsOf("pppnnnnnnnnnn")

	r.Add(0, 0, plant)
	r.Add(99.9, 49.9, plant)
	r.Add(55, 25, plant)
	r.Add(56, 26, plant)

	tests := []struct {
		name     string
		col, row int
		want     int
	}{
		{"origin", 0, 0, 1},
		{"far corner", 9, 4, 1},
		{"shared cell", 5, 2, 2},
		{"empty", 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.At(tt.col, tt.row).Count; got != tt.want {
				t.Errorf("At(%d, %d).Count = %d, want %d", tt.col, tt.row, got, tt.want)
			}
		})
	}
}

func TestCellDominantTrait(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  traits.Symbol
	}{
		{"plants", []string{"pppnnnnnnnnnn"}, traits.Photosynthesis},
		{"hunters outweigh", []string{"pnnnnnnnnnnnn", "aannnnnnnnnnn"}, traits.Attack},
		{"armored", []string{"dddpnnnnnnnnn"}, traits.Defense},
		{"runners", []string{"mmmmnnnnnnnnn"}, traits.Motion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cell
			for _, code := range tt.codes {
				c.Add(traitsOf(code))
			}
			if got := c.Dominant(); got != tt.want {
				t.Errorf("Dominant() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellGlyph(t *testing.T) {
	tests := []struct {
		count int
		want  rune
	}{
		{0, ' '},
		{1, '.'},
		{3, ':'},
		{8, '*'},
		{9, '#'},
	}

	for _, tt := range tests {
		c := Cell{Count: tt.count}
		if got := c.Glyph(); got != tt.want {
			t.Errorf("Glyph() with %d biots = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestCellStyleMarksIntelligence(t *testing.T) {
	var c Cell
	c.Add(traitsOf("pppinnnnnnnnn"))

	want := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	if c.Style() != want {
		t.Error("expected bold green style for an intelligent plant")
	}
}
