package model

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by LookupPattern for names that are not registered
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a literal arrangement of cells, Rows[y][x]
type Pattern struct {
	Name string
	Rows [][]bool
}

// Width returns the width of the widest pattern row
func (p Pattern) Width() (w int) {
	for _, row := range p.Rows {
		w = max(w, len(row))
	}
	return
}

// Height returns the number of pattern rows
func (p Pattern) Height() int {
	return len(p.Rows)
}

var patterns = map[string]Pattern{
	"block": {
		Name: "block",
		Rows: [][]bool{
			{true, true},
			{true, true},
		},
	},
	"beehive": {
		Name: "beehive",
		Rows: [][]bool{
			{false, true, true, false},
			{true, false, false, true},
			{false, true, true, false},
		},
	},
	"blinker": {
		Name: "blinker",
		Rows: [][]bool{
			{true, true, true},
		},
	},
	"toad": {
		Name: "toad",
		Rows: [][]bool{
			{false, true, true, true},
			{true, true, true, false},
		},
	},
	"glider": {
		Name: "glider",
		Rows: [][]bool{
			{false, true, false},
			{false, false, true},
			{true, true, true},
		},
	},
}

// LookupPattern returns the named built-in pattern
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
	}
	return p, nil
}

// PatternNames lists the built-in patterns in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
