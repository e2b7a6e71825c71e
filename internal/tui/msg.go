package tui

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgSurfaceChanged is sent when background gutter work updated the surface.
type MsgSurfaceChanged struct{}

func (MsgSurfaceChanged) sealed() {}

// MsgActionDone is sent when a gutter action finished.
type MsgActionDone struct {
	Err error
}

func (MsgActionDone) sealed() {}

// MsgReloaded is sent after the document was re-read from disk.
type MsgReloaded struct {
	Err error
}

func (MsgReloaded) sealed() {}

// MsgClearNotice is sent to clear a status line notice that is still shown.
type MsgClearNotice struct {
	Notice string
}

func (MsgClearNotice) sealed() {}
