package exporter

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultWatchBacklog is the number of rows kept for scrolling in watch mode.
const DefaultWatchBacklog = 1000

// Key bindings as constants for consistency.
const (
	KeyQuit    = "q"
	KeyQuitAlt = "ctrl+c"
	KeyPause   = "p"
	KeyRebuild = "r"
)

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// Watch is a Bubble Tea model showing the header pinned at the top and the
// most recent rows in a scrollable viewport below it.
type Watch struct {
	register *Register
	interval time.Duration
	backlog  int
	maxRows  int

	header   string
	rows     []string
	printed  int
	err      error
	paused   bool
	quitting bool

	width         int
	height        int
	viewport      viewport.Model
	viewportReady bool
}

// NewWatch creates a watch model driving r. The register's Interval paces
// the refresh and MaxRows, if set, ends the program.
func NewWatch(r *Register) Watch {
	return Watch{
		register: r,
		interval: r.opts.Interval,
		backlog:  DefaultWatchBacklog,
		maxRows:  r.opts.MaxRows,
	}
}

// Init starts the refresh cycle with an immediate tick.
func (m Watch) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

// Update handles key presses, resizes and refresh ticks.
func (m Watch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case KeyQuit, KeyQuitAlt:
			m.quitting = true
			return m, tea.Quit
		case KeyPause:
			m.paused = !m.paused
			return m, nil
		case KeyRebuild:
			m.register.Reset()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeViewport()
		m.refreshViewport()

	case tickMsg:
		if m.paused {
			return m, m.tickCmd()
		}
		lines, err := m.register.Tick()
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		m.header = m.register.CurrentHeader()
		if len(lines) > 0 {
			m.appendRow(lines[len(lines)-1])
		}
		m.refreshViewport()
		if m.maxRows > 0 && m.printed >= m.maxRows {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tickCmd()
	}

	if m.viewportReady {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the pinned header, the rows and a one-line footer.
func (m Watch) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	footerStyle := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	b.WriteString(headerStyle.Render(m.register.opts.Styler(m.header)))
	b.WriteString("\n")
	if m.viewportReady {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(strings.Join(m.rows, "\n"))
	}
	b.WriteString("\n")

	status := "q quit  p pause  r rebuild"
	if m.paused {
		status = "PAUSED  " + status
	}
	b.WriteString(footerStyle.Render(status))
	return b.String()
}

// Err returns the error that stopped the model, if any.
func (m Watch) Err() error {
	return m.err
}

func (m Watch) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Watch) appendRow(row string) {
	m.rows = append(m.rows, row)
	if len(m.rows) > m.backlog {
		m.rows = m.rows[len(m.rows)-m.backlog:]
	}
	m.printed++
}

func (m *Watch) resizeViewport() {
	headerHeight := lipgloss.Height(m.header) + 1
	footerHeight := 1
	viewportHeight := m.height - headerHeight - footerHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.viewportReady {
		m.viewport = viewport.New(m.width, viewportHeight)
		m.viewport.YPosition = headerHeight
		m.viewportReady = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = viewportHeight
	}
}

func (m *Watch) refreshViewport() {
	if !m.viewportReady {
		return
	}
	m.resizeViewport()
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(strings.Join(m.rows, "\n"))
	if atBottom {
		m.viewport.GotoBottom()
	}
}
