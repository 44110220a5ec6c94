package model

// DefaultHistorySize is the number of past generations kept for cycle detection
const DefaultHistorySize = 5

// History remembers the hashes of recent generations to detect still lifes and short cycles
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a History keeping the last size generations
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Record adds g to the history, dropping the oldest entry when full
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether g repeats one of the recorded generations,
// i.e. the board is static or cycling with a period no longer than the history
func (h *History) IsStagnant(g *Grid) bool {
	current := g.Hash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == current {
			return true
		}
	}
	return false
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}
