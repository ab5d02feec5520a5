package dashboard

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/sysdash/internal/model"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// poll is one scripted PollKey result.
type poll struct {
	key tea.KeyMsg
	ok  bool
	err error
}

var idle = poll{}

func press(k tea.KeyMsg) poll { return poll{key: k, ok: true} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// fakeSurface plays back a script of polls. Once the script runs out every
// poll is idle. Each poll advances the clock by the poll timeout.
type fakeSurface struct {
	clock *fakeClock

	initErr    error
	restoreErr error
	drawErr    error
	drawPanic  bool
	polls      []poll
	sizes      [][2]int

	inits, restores, draws, pollCalls int
	frames                            []string
}

func (s *fakeSurface) Init() error {
	s.inits++
	return s.initErr
}

func (s *fakeSurface) Restore() error {
	s.restores++
	return s.restoreErr
}

func (s *fakeSurface) Size() (int, int) {
	if len(s.sizes) == 0 {
		return 80, 24
	}
	i := min(s.draws, len(s.sizes)-1)
	return s.sizes[i][0], s.sizes[i][1]
}

func (s *fakeSurface) Draw(frame string) error {
	if s.drawPanic {
		panic("draw exploded")
	}
	if s.drawErr != nil {
		return s.drawErr
	}
	s.draws++
	s.frames = append(s.frames, frame)
	return nil
}

func (s *fakeSurface) PollKey(timeout time.Duration) (tea.KeyMsg, bool, error) {
	s.pollCalls++
	if s.clock != nil {
		s.clock.Advance(timeout)
	}
	if len(s.polls) == 0 {
		return tea.KeyMsg{}, false, nil
	}
	p := s.polls[0]
	s.polls = s.polls[1:]
	return p.key, p.ok, p.err
}

// countingProvider serves a fixed snapshot and counts full collections.
type countingProvider struct {
	collects int
}

func (p *countingProvider) RefreshCPU() error {
	p.collects++
	return nil
}
func (p *countingProvider) RefreshMemory() error    { return nil }
func (p *countingProvider) RefreshSwap() error      { return nil }
func (p *countingProvider) RefreshProcesses() error { return nil }
func (p *countingProvider) RefreshDisks() error     { return nil }
func (p *countingProvider) RefreshNetwork() error   { return nil }

func (p *countingProvider) CPUUsage() float64              { return 12.5 }
func (p *countingProvider) Memory() (uint64, uint64)       { return 4 << 30, 16 << 30 }
func (p *countingProvider) Swap() (uint64, uint64)         { return 0, 2 << 30 }
func (p *countingProvider) Disks() []model.DiskUsage       { return nil }
func (p *countingProvider) Networks() []model.NetworkIO    { return nil }
func (p *countingProvider) Hostname() (string, error)      { return "testbox", nil }
func (p *countingProvider) KernelVersion() (string, error) { return "6.1.0", nil }
func (p *countingProvider) Uptime() (uint64, error)        { return 3661, nil }

func (p *countingProvider) Processes() []model.ProcessInfo {
	return []model.ProcessInfo{
		{PID: 1, CPUUsage: 0.5, MemoryMB: 12, Cmd: "/sbin/init"},
		{PID: 42, CPUUsage: 30, MemoryMB: 512, Cmd: "postgres: writer"},
	}
}

func (p *countingProvider) LoadAverage() (model.LoadAvg, error) {
	return model.LoadAvg{One: 0.5, Five: 0.4, Fifteen: 0.3}, nil
}
