package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/runoshun/blame-gutter/internal/domain"
)

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// URLOpener opens URLs in a browser.
type URLOpener interface {
	Open(url string) error
}

// Ensure Presenter implements domain.Presenter.
var _ domain.Presenter = (*Presenter)(nil)

// Presenter performs user-facing gutter actions in the terminal.
// Fields are ordered to minimize memory padding.
type Presenter struct {
	clipboard Clipboard
	opener    URLOpener
	clock     domain.Clock
	surface   *Surface
	notice    string
	mu        sync.Mutex
}

// NewPresenter creates a Presenter drawing popovers on surface.
func NewPresenter(surface *Surface, clipboard Clipboard, opener URLOpener, clock domain.Clock) *Presenter {
	return &Presenter{
		clipboard: clipboard,
		opener:    opener,
		clock:     clock,
		surface:   surface,
	}
}

// CopyToClipboard copies text and confirms with a notice.
func (p *Presenter) CopyToClipboard(text string) error {
	if err := p.clipboard.Copy(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	p.Notify("Copied " + text)
	return nil
}

// OpenURL opens url in the browser.
func (p *Presenter) OpenURL(url string) error {
	if err := p.opener.Open(url); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	p.Notify("Opened " + url)
	return nil
}

// Notify shows msg in the status line.
func (p *Presenter) Notify(msg string) {
	p.mu.Lock()
	p.notice = msg
	p.mu.Unlock()
	p.surface.changed()
}

// Notice returns the current notice.
func (p *Presenter) Notice() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notice
}

// ClearNotice removes the current notice.
func (p *Presenter) ClearNotice() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notice = ""
}

// AttachDetail attaches a commit popover to a marker of this surface.
func (p *Presenter) AttachDetail(m domain.Marker, line domain.BlameLine, detail *domain.CommitDetail) {
	mk, ok := m.(*marker)
	if !ok || mk.surface != p.surface {
		return
	}
	p.surface.attach(mk, Popover(line, detail, p.clock))
}

// Popover renders the commit detail text shown for a revision group.
func Popover(line domain.BlameLine, detail *domain.CommitDetail, clock domain.Clock) string {
	var b strings.Builder
	b.WriteString(detail.Subject)
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s <%s>", detail.AuthorName, detail.AuthorEmail)
	if !line.Date.IsZero() {
		b.WriteString(" · ")
		b.WriteString(humanize.RelTime(line.Date, clock.Now(), "ago", "from now"))
	}
	b.WriteString("\n")
	b.WriteString(domain.ShortHash(line.Revision))
	if detail.Message != "" {
		b.WriteString("\n\n")
		b.WriteString(detail.Message)
	}
	b.WriteString("\n\n")
	b.WriteString(detail.AvatarURL(domain.DefaultAvatarSize))
	return b.String()
}
