package domain

import (
	"crypto/md5" //nolint:gosec // gravatar addresses avatars by md5 of the email
	"encoding/hex"
	"fmt"
	"strings"
)

// DefaultAvatarSize is the gravatar size, in pixels, requested for commit authors.
const DefaultAvatarSize = 80

// ShowFieldSeparator delimits the fields of ShowFormat output.
const ShowFieldSeparator = "####"

// ShowFormat is the pretty format passed to the show query.
// Fields: author email, subject, author name, body.
const ShowFormat = "%ae" + ShowFieldSeparator + "%s" + ShowFieldSeparator + "%an" + ShowFieldSeparator + "%b"

// CommitDetail holds the metadata shown in the commit popover.
type CommitDetail struct {
	AuthorEmail string
	Subject     string
	AuthorName  string
	Message     string
}

// CommitKey identifies a cached commit detail.
type CommitKey struct {
	FilePath string
	Revision string
}

// String returns the key in "file|revision" form.
func (k CommitKey) String() string {
	return k.FilePath + "|" + k.Revision
}

// ParseCommitDetail splits show output produced with ShowFormat.
// The body keeps any separator it contains and is trimmed of surrounding whitespace.
func ParseCommitDetail(out string) (*CommitDetail, error) {
	fields := strings.SplitN(out, ShowFieldSeparator, 4)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformedShowOutput, len(fields))
	}
	return &CommitDetail{
		AuthorEmail: strings.TrimSpace(fields[0]),
		Subject:     fields[1],
		AuthorName:  fields[2],
		Message:     strings.TrimSpace(fields[3]),
	}, nil
}

// AvatarURL returns the gravatar URL for the author email.
func (d *CommitDetail) AvatarURL(size int) string {
	email := strings.ToLower(strings.TrimSpace(d.AuthorEmail))
	sum := md5.Sum([]byte(email)) //nolint:gosec // not used for security
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=%d", hex.EncodeToString(sum[:]), size)
}
