package model

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
)

func TestRandomFillDensity(t *testing.T) {
	tests := []struct {
		density  float64
		min, max int
	}{
		{0, 0, 0},
		{1, 10000, 10000},
		{0.5, 4700, 5300},
	}
	for _, tt := range tests {
		g := MustNewGrid(100, 100, RandomFill(rand.New(rand.NewSource(1)), tt.density))
		if n := g.CountLivingCells(); n < tt.min || n > tt.max {
			t.Errorf("density %v: %d living cells, want within [%d, %d]", tt.density, n, tt.min, tt.max)
		}
	}
}

func TestRandomFillSeeded(t *testing.T) {
	var (
		a = MustNewGrid(20, 20, RandomFill(rand.New(rand.NewSource(42)), 0.5))
		b = MustNewGrid(20, 20, RandomFill(rand.New(rand.NewSource(42)), 0.5))
	)
	if !a.Equal(b) {
		t.Fatalf("same seed produced different grids")
	}
}

func TestPatternFillClipsAtEdges(t *testing.T) {
	glider, _ := LookupPattern("glider")
	g := MustNewGrid(4, 4, PatternFill(glider, 2, 2))
	want := gridFromRows(t,
		"....",
		"....",
		"...#",
		"....",
	)
	if !g.Equal(want) {
		t.Fatalf("PatternFill =\n%s\nwant\n%s", g, want)
	}
}

func TestCenteredPatternFill(t *testing.T) {
	beehive, _ := LookupPattern("beehive")
	g := MustNewGrid(8, 7, CenteredPatternFill(beehive, 8, 7))
	want := gridFromRows(t,
		"........",
		"........",
		"...##...",
		"..#..#..",
		"...##...",
		"........",
		"........",
	)
	if !g.Equal(want) {
		t.Fatalf("CenteredPatternFill =\n%s\nwant\n%s", g, want)
	}
	if !Step(g).Equal(g) {
		t.Fatalf("beehive is not a still life")
	}
}

func TestLookupPattern(t *testing.T) {
	for _, name := range PatternNames() {
		p, err := LookupPattern(name)
		if err != nil {
			t.Fatalf("LookupPattern(%q): %v", name, err)
		}
		if p.Name != name || p.Width() == 0 || p.Height() == 0 {
			t.Errorf("pattern %q malformed: %+v", name, p)
		}
	}
	if _, err := LookupPattern("gosper"); !errors.Is(err, ErrUnknownPattern) {
		t.Errorf("LookupPattern(gosper) error = %v, want ErrUnknownPattern", err)
	}
}
