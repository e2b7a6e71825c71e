package git

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/blame-gutter/internal/domain"
)

const maxPorcelainLine = 16 * 1024 * 1024

// ParsePorcelain parses `git blame --line-porcelain` output.
// Boundary commits get the domain.BoundaryMarker prefix.
func ParsePorcelain(r io.Reader) ([]domain.BlameRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxPorcelainLine)

	var records []domain.BlameRecord
	var cur *porcelainEntry
	for scanner.Scan() {
		line := scanner.Text()

		if cur == nil {
			entry, err := parseHeader(line)
			if err != nil {
				return nil, err
			}
			cur = entry
			continue
		}

		if strings.HasPrefix(line, "\t") {
			records = append(records, cur.record())
			cur = nil
			continue
		}

		key, value, _ := strings.Cut(line, " ")
		switch key {
		case "author":
			cur.author = value
		case "author-time":
			sec, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid author-time %q: %w", value, err)
			}
			cur.time = sec
		case "author-tz":
			cur.tz = value
		case "boundary":
			cur.boundary = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if cur != nil {
		return nil, fmt.Errorf("truncated blame entry for line %d", cur.line)
	}
	return records, nil
}

type porcelainEntry struct {
	hash     string
	author   string
	tz       string
	time     int64
	line     int
	boundary bool
}

func parseHeader(line string) (*porcelainEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 || !isHex(fields[0]) {
		return nil, fmt.Errorf("invalid blame header %q", line)
	}
	final, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("invalid line number in %q: %w", line, err)
	}
	return &porcelainEntry{hash: fields[0], line: final}, nil
}

func (e *porcelainEntry) record() domain.BlameRecord {
	rev := e.hash
	if e.boundary {
		rev = domain.BoundaryMarker + rev
	}
	return domain.BlameRecord{
		Line:     e.line,
		Revision: rev,
		Author:   e.author,
		Date:     time.Unix(e.time, 0).In(parseZone(e.tz)),
	}
}

// parseZone converts a "+hhmm" offset into a fixed zone.
func parseZone(tz string) *time.Location {
	if len(tz) != 5 || (tz[0] != '+' && tz[0] != '-') {
		return time.UTC
	}
	hours, err1 := strconv.Atoi(tz[1:3])
	mins, err2 := strconv.Atoi(tz[3:5])
	if err1 != nil || err2 != nil {
		return time.UTC
	}
	offset := hours*3600 + mins*60
	if tz[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(tz, offset)
}

func isHex(s string) bool {
	if len(s) < 7 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
