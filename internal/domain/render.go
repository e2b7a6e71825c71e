package domain

import "time"

// Band is the alternating visual grouping applied to consecutive revision blocks.
type Band int

// Bands alternate even/odd, starting with BandEven on the first group.
const (
	BandEven Band = iota
	BandOdd
)

// RenderSpec describes the gutter decoration of a single line.
// Fields are ordered to minimize memory padding.
type RenderSpec struct {
	Revision  string
	Label     string // empty except on the first line of a group
	Line      int
	Band      Band
	Committed bool
	Head      bool // first line of a revision group
}

// Render groups consecutive lines sharing a revision and emits one spec per line.
// Only the first line of a group carries a label; the band flips on every
// revision change.
func Render(blame Blame) []RenderSpec {
	lines := blame.Lines()
	specs := make([]RenderSpec, 0, len(lines))

	groups := 0
	band := BandEven
	last := ""
	for i, line := range lines {
		spec := RenderSpec{
			Line:      line.Index,
			Revision:  line.Revision,
			Committed: IsCommitted(line.Revision),
		}
		if i == 0 || line.Revision != last {
			band = Band(groups % 2)
			groups++
			spec.Head = true
			spec.Label = GroupLabel(line)
		}
		spec.Band = band
		last = line.Revision
		specs = append(specs, spec)
	}
	return specs
}

// GroupLabel returns the label shown on the first line of a revision group.
func GroupLabel(line BlameLine) string {
	if !IsCommitted(line.Revision) {
		if line.Author == "" {
			return UncommittedAuthor
		}
		return line.Author
	}
	return ShortHash(line.Revision) + " " + FormatDate(line.Date) + " " + line.Author
}

// FormatDate formats a calendar date as yyyy-mm-dd.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// GroupHead returns the index into specs of the head of the group containing pos.
// It returns -1 when pos is out of range.
func GroupHead(specs []RenderSpec, pos int) int {
	if pos < 0 || pos >= len(specs) {
		return -1
	}
	for i := pos; i >= 0; i-- {
		if specs[i].Head {
			return i
		}
	}
	return 0
}
