package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// Tracker reports progress over a known number of items, for batch
// resolution runs. Implementations are safe to drive from one goroutine.
type Tracker interface {
	// Increment advances the progress by n.
	Increment(n int)
	// SetTitle updates the line shown next to the bar.
	SetTitle(title string)
	// Done completes the tracker at 100% and releases its resources.
	Done()
}

// NewTracker creates a Tracker for total items. With a TTY it renders an
// animated progress bar; in headless mode it writes plain log lines to
// os.Stdout.
func NewTracker(theme *Theme, hm *HeadlessManager, title string, total int) Tracker {
	if hm.IsHeadless() || theme.NoColor {
		return newLogTracker(title, total, os.Stdout)
	}
	return newBarTracker(theme, title, total)
}

// --- barTracker ---

// trackerIncrMsg advances the bar.
type trackerIncrMsg int

// trackerTitleMsg updates the bar title.
type trackerTitleMsg string

// trackerDoneMsg completes the bar.
type trackerDoneMsg struct{}

// trackerModel is the bubbletea Model for the animated bar.
type trackerModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newTrackerModel(theme *Theme, title string, total int) trackerModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	return trackerModel{bar: bar, title: title, total: total}
}

func (m trackerModel) Init() tea.Cmd {
	return nil
}

func (m trackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case trackerIncrMsg:
		m.current += int(msg)
		if m.current > m.total {
			m.current = m.total
		}
		return m, nil
	case trackerTitleMsg:
		m.title = string(msg)
		return m, nil
	case trackerDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m trackerModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + " " + fmt.Sprintf("[%d/%d] %s\n", m.current, m.total, m.title)
}

// barTracker implements Tracker with an animated bubbles progress bar.
type barTracker struct {
	program *tea.Program
	once    sync.Once
}

func newBarTracker(theme *Theme, title string, total int) *barTracker {
	p := tea.NewProgram(newTrackerModel(theme, title, total))

	t := &barTracker{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return t
}

func (t *barTracker) Increment(n int) {
	t.program.Send(trackerIncrMsg(n))
}

func (t *barTracker) SetTitle(title string) {
	t.program.Send(trackerTitleMsg(title))
}

func (t *barTracker) Done() {
	t.once.Do(func() {
		t.program.Send(trackerDoneMsg{})
		t.program.Wait()
	})
}

// --- logTracker ---

// logTracker implements Tracker with plain text log output.
type logTracker struct {
	title   string
	total   int
	current int
	writer  io.Writer
}

func newLogTracker(title string, total int, w io.Writer) *logTracker {
	return &logTracker{title: title, total: total, writer: w}
}

func (t *logTracker) Increment(n int) {
	t.current += n
	if t.current > t.total {
		t.current = t.total
	}
	_, _ = fmt.Fprintf(t.writer, "[%d/%d] %s\n", t.current, t.total, t.title)
}

func (t *logTracker) SetTitle(title string) {
	t.title = title
}

func (t *logTracker) Done() {
	t.current = t.total
	_, _ = fmt.Fprintf(t.writer, "[%d/%d] %s\n", t.current, t.total, t.title)
}
