package dashboard

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	keyBuffer     = 16
)

type frameMsg string

// TeaSurface is a Surface backed by a bubbletea Program running on its own
// goroutine. bubbletea owns raw mode, the alternate screen, input decoding
// and resize tracking; the surface feeds it finished frames and hands key
// presses back to the Loop.
type TeaSurface struct {
	opts []tea.ProgramOption
	prog *tea.Program

	keys  chan tea.KeyMsg
	ready chan struct{}
	done  chan struct{}
	err   error

	width  atomic.Int64
	height atomic.Int64

	readyOnce sync.Once
	quitOnce  sync.Once
}

var _ Surface = (*TeaSurface)(nil)

// NewTeaSurface builds a surface on the alternate screen. opts are passed to
// tea.NewProgram after tea.WithAltScreen.
func NewTeaSurface(opts ...tea.ProgramOption) *TeaSurface {
	s := &TeaSurface{
		opts:  opts,
		keys:  make(chan tea.KeyMsg, keyBuffer),
		ready: make(chan struct{}),
		done:  make(chan struct{}),
	}
	s.width.Store(defaultWidth)
	s.height.Store(defaultHeight)
	return s
}

// Init starts the program and waits until the terminal has been set up.
func (s *TeaSurface) Init() error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, s.opts...)
	s.prog = tea.NewProgram(surfaceModel{s: s}, opts...)
	go func() {
		_, s.err = s.prog.Run()
		close(s.done)
	}()

	select {
	case <-s.ready:
		return nil
	case <-s.done:
		if s.err != nil {
			return s.err
		}
		return ErrClosed
	}
}

// Restore stops the program and waits for bubbletea to leave the alternate
// screen and raw mode. It is a no-op if Init was never called.
func (s *TeaSurface) Restore() error {
	if s.prog == nil {
		return nil
	}
	s.quitOnce.Do(s.prog.Quit)
	<-s.done
	if s.err != nil && !errors.Is(s.err, tea.ErrProgramKilled) {
		return s.err
	}
	return nil
}

func (s *TeaSurface) Size() (int, int) {
	return int(s.width.Load()), int(s.height.Load())
}

func (s *TeaSurface) Draw(frame string) error {
	select {
	case <-s.done:
		return s.closedErr()
	default:
	}
	s.prog.Send(frameMsg(frame))
	return nil
}

func (s *TeaSurface) PollKey(timeout time.Duration) (tea.KeyMsg, bool, error) {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case msg := <-s.keys:
		return msg, true, nil
	case <-s.done:
		return tea.KeyMsg{}, false, s.closedErr()
	case <-t.C:
		return tea.KeyMsg{}, false, nil
	}
}

// closedErr is only valid after done is closed.
func (s *TeaSurface) closedErr() error {
	if s.err != nil && !errors.Is(s.err, tea.ErrProgramKilled) {
		return s.err
	}
	return ErrClosed
}

// surfaceModel keeps no dashboard state of its own. It shows the last frame
// it was sent and forwards input and size changes to the surface.
type surfaceModel struct {
	s     *TeaSurface
	frame string
}

func (m surfaceModel) Init() tea.Cmd {
	m.s.readyOnce.Do(func() { close(m.s.ready) })
	return nil
}

func (m surfaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)
	case tea.WindowSizeMsg:
		m.s.width.Store(int64(msg.Width))
		m.s.height.Store(int64(msg.Height))
	case tea.KeyMsg:
		// Drop keys rather than stall the program if the loop falls behind.
		select {
		case m.s.keys <- msg:
		default:
		}
	}
	return m, nil
}

func (m surfaceModel) View() string { return m.frame }
