package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommitDetail(t *testing.T) {
	detail, err := ParseCommitDetail("dev@acme.io####Fix bug####Dev Name####Body line1\nBody line2\n")
	require.NoError(t, err)
	assert.Equal(t, &CommitDetail{
		AuthorEmail: "dev@acme.io",
		Subject:     "Fix bug",
		AuthorName:  "Dev Name",
		Message:     "Body line1\nBody line2",
	}, detail)
}

func TestParseCommitDetail_EmptyBody(t *testing.T) {
	detail, err := ParseCommitDetail("dev@acme.io####Subject####Dev####\n")
	require.NoError(t, err)
	assert.Empty(t, detail.Message)
}

func TestParseCommitDetail_BodyKeepsSeparator(t *testing.T) {
	detail, err := ParseCommitDetail("a@b####s####n####one####two")
	require.NoError(t, err)
	assert.Equal(t, "one####two", detail.Message)
}

func TestParseCommitDetail_Malformed(t *testing.T) {
	_, err := ParseCommitDetail("only####two")
	assert.ErrorIs(t, err, ErrMalformedShowOutput)
}

func TestCommitDetail_AvatarURL(t *testing.T) {
	d := &CommitDetail{AuthorEmail: "  MyEmailAddress@example.com "}
	assert.Equal(t,
		"https://www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?s=80",
		d.AvatarURL(80))
}

func TestCommitKey_String(t *testing.T) {
	assert.Equal(t, "a.go|abc", CommitKey{FilePath: "a.go", Revision: "abc"}.String())
}

func TestShowFormat(t *testing.T) {
	assert.Equal(t, "%ae####%s####%an####%b", ShowFormat)
}

func TestCommitDetail_AvatarURL_DefaultSize(t *testing.T) {
	d := &CommitDetail{AuthorEmail: "dev@acme.io"}

	assert.True(t, strings.HasSuffix(d.AvatarURL(DefaultAvatarSize), "?s=80"))
}
