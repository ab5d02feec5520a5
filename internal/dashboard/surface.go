// Package dashboard drives the interactive refresh loop and the plain-text
// fallback.
package dashboard

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrTerminalInit wraps failures entering raw mode or the alternate screen.
	ErrTerminalInit = errors.New("terminal init")
	// ErrDraw wraps failures presenting a frame.
	ErrDraw = errors.New("draw frame")
	// ErrClosed is returned by a Surface that was shut down from outside,
	// for example by a signal. The loop treats it as a clean exit.
	ErrClosed = errors.New("surface closed")
)

// Surface is the terminal the Loop renders into. Init acquires it and
// Restore gives it back; Restore must be safe to call even if Init failed.
type Surface interface {
	Init() error
	Restore() error
	// Size reports the current width and height in cells.
	Size() (width, height int)
	Draw(frame string) error
	// PollKey waits up to timeout for a key press. ok is false on timeout.
	PollKey(timeout time.Duration) (msg tea.KeyMsg, ok bool, err error)
}
