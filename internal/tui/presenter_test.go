package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/runoshun/blame-gutter/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	err    error
	copied []string
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

type fakeOpener struct {
	err    error
	opened []string
}

func (f *fakeOpener) Open(url string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, url)
	return nil
}

var testNow = time.Date(2024, 3, 12, 12, 0, 0, 0, time.UTC)

func TestPopover(t *testing.T) {
	line := domain.BlameLine{
		Date:     time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC),
		Revision: "a1b2c3d4e5f6",
		Author:   "Ann",
	}
	detail := &domain.CommitDetail{
		AuthorEmail: "ann@acme.io",
		Subject:     "Add parser",
		AuthorName:  "Ann Lee",
		Message:     "Longer body",
	}

	got := Popover(line, detail, &testutil.MockClock{NowTime: testNow})

	assert.Equal(t, "Add parser\n"+
		"Ann Lee <ann@acme.io> · 3 days ago\n"+
		"a1b2c3d\n\n"+
		"Longer body\n\n"+
		detail.AvatarURL(domain.DefaultAvatarSize), got)
}

func TestPopover_NoBodyNoDate(t *testing.T) {
	detail := &domain.CommitDetail{AuthorEmail: "a@b", Subject: "s", AuthorName: "n"}

	got := Popover(domain.BlameLine{Revision: "abc"}, detail, &testutil.MockClock{NowTime: testNow})

	assert.Equal(t, "s\nn <a@b>\nabc\n\n"+detail.AvatarURL(domain.DefaultAvatarSize), got)
}

func TestPresenter_AttachDetail(t *testing.T) {
	surface := NewSurface()
	p := NewPresenter(surface, &fakeClipboard{}, &fakeOpener{}, &testutil.MockClock{NowTime: testNow})
	mk := surface.AddMarker(domain.RenderSpec{Line: 0, Head: true})

	p.AttachDetail(mk, domain.BlameLine{Revision: "abc"}, &domain.CommitDetail{Subject: "Fix"})

	assert.Contains(t, surface.View().Markers[0].Detail, "Fix")
}

func TestPresenter_AttachDetail_ForeignMarker(t *testing.T) {
	surface := NewSurface()
	other := NewSurface()
	p := NewPresenter(surface, &fakeClipboard{}, &fakeOpener{}, &testutil.MockClock{NowTime: testNow})
	mk := other.AddMarker(domain.RenderSpec{Line: 0, Head: true})

	p.AttachDetail(mk, domain.BlameLine{}, &domain.CommitDetail{Subject: "Fix"})

	assert.Empty(t, other.View().Markers[0].Detail)
}

func TestPresenter_CopyAndOpen(t *testing.T) {
	clip := &fakeClipboard{}
	opener := &fakeOpener{}
	p := NewPresenter(NewSurface(), clip, opener, &testutil.MockClock{NowTime: testNow})

	require.NoError(t, p.CopyToClipboard("abc"))
	assert.Equal(t, "Copied abc", p.Notice())
	require.NoError(t, p.OpenURL("https://x"))
	assert.Equal(t, "Opened https://x", p.Notice())

	assert.Equal(t, []string{"abc"}, clip.copied)
	assert.Equal(t, []string{"https://x"}, opener.opened)

	p.ClearNotice()
	assert.Empty(t, p.Notice())
}

func TestPresenter_Errors(t *testing.T) {
	boom := errors.New("boom")
	p := NewPresenter(NewSurface(), &fakeClipboard{err: boom}, &fakeOpener{err: boom}, &testutil.MockClock{NowTime: testNow})

	assert.ErrorIs(t, p.CopyToClipboard("abc"), boom)
	assert.ErrorIs(t, p.OpenURL("https://x"), boom)
	assert.Empty(t, p.Notice())
}
