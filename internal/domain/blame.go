// Package domain contains the core types and pure logic of blame-gutter.
package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

// BoundaryMarker prefixes revisions that sit on the blame boundary.
const BoundaryMarker = "^"

// UncommittedAuthor is shown for lines that only exist in the working tree.
const UncommittedAuthor = "Not Committed Yet"

// BlameRecord is a raw per-line record as reported by the revision-control tool.
// Line numbers are 1-based.
type BlameRecord struct {
	Date     time.Time
	Revision string
	Author   string
	Line     int
}

// BlameLine attributes one line of a file to the revision that last touched it.
// Fields are ordered to minimize memory padding.
type BlameLine struct {
	Date     time.Time
	Revision string
	Author   string
	Index    int // 0-based
}

// Blame maps a 0-based line index to its attribution.
type Blame map[int]BlameLine

// Indices returns the line indices in ascending order.
func (b Blame) Indices() []int {
	keys := lo.Keys(b)
	slices.Sort(keys)
	return keys
}

// Lines returns the blame lines in ascending index order.
func (b Blame) Lines() []BlameLine {
	return lo.Map(b.Indices(), func(idx int, _ int) BlameLine {
		return b[idx]
	})
}

// NewBlame normalizes raw records into a Blame.
// Records with a non-positive line number are dropped.
func NewBlame(records []BlameRecord) Blame {
	result := make(Blame, len(records))
	for _, r := range records {
		if r.Line < 1 {
			continue
		}
		idx := r.Line - 1
		result[idx] = BlameLine{
			Index:    idx,
			Revision: NormalizeRevision(r.Revision),
			Author:   r.Author,
			Date:     r.Date,
		}
	}
	return result
}

// NormalizeRevision drops anything after the first whitespace of a revision id.
func NormalizeRevision(rev string) string {
	rev = strings.TrimSpace(rev)
	if i := strings.IndexAny(rev, " \t"); i >= 0 {
		rev = rev[:i]
	}
	return rev
}

// StripBoundary removes a leading boundary marker from a revision id.
func StripBoundary(rev string) string {
	return strings.TrimPrefix(rev, BoundaryMarker)
}

// IsCommitted reports whether rev names a real commit.
// The all-zero id denotes working-tree lines.
func IsCommitted(rev string) bool {
	rev = StripBoundary(NormalizeRevision(rev))
	if rev == "" {
		return false
	}
	return strings.Trim(rev, "0") != ""
}

// ShortHash abbreviates a revision id, keeping a boundary marker if present.
func ShortHash(rev string) string {
	prefix := ""
	if strings.HasPrefix(rev, BoundaryMarker) {
		prefix = BoundaryMarker
		rev = StripBoundary(rev)
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	return prefix + rev
}
