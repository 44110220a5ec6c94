package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws generations to a terminal
type TerminalRenderer struct {
	out io.Writer
	au  aurora.Aurora
}

// NewTerminalRenderer creates a renderer writing to out, colouring live cells when colors is set
func NewTerminalRenderer(out io.Writer, colors bool) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{
		out: out,
		au:  aurora.NewAurora(colors),
	}
}

// Frame builds the text of one generation, reading the grid only through Get
func (r *TerminalRenderer) Frame(g *Grid) string {
	var (
		sb   strings.Builder
		live = r.au.Green(gridPosBlock).String()
	)
	for y := range g.Height() {
		for x := range g.Width() {
			cell, err := g.Get(x, y)
			if err != nil {
				// unreachable for in-range coordinates
				panic(err)
			}
			if cell == Alive {
				sb.WriteString(live)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display renders the grid to the terminal
func (r *TerminalRenderer) Display(g *Grid) {
	fmt.Fprint(r.out, r.Frame(g))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out, "Error clearing terminal:", err)
	}
}
