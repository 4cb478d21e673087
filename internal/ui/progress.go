package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"snowball/internal/driver"
)

const statusColumn = 9 // "parsing" and "loading" plus padding

// progressModel renders one row per source file of a ParseDir run and a bar
// that fills as files finish.
type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []fileRow
	byPath  map[string]int
	phase   driver.Stage // последняя стадия из событий без файла
	width   int
	done    bool
}

type fileRow struct {
	path   string
	stage  driver.Stage
	status driver.Status
}

// label is what the status column shows: the stage while working,
// the status otherwise.
func (r fileRow) label() string {
	if r.status == driver.StatusWorking {
		return stageLabel(r.stage)
	}
	return string(r.status)
}

// finished reports whether the row no longer changes.
func (r fileRow) finished() bool {
	switch r.status {
	case driver.StatusDone, driver.StatusCached, driver.StatusError:
		return true
	}
	return false
}

// weight is the share of the row's work already done.
func (r fileRow) weight() float64 {
	if r.finished() {
		return 1
	}
	if r.status != driver.StatusWorking {
		return 0
	}
	switch r.stage {
	case driver.StageLex:
		return 0.3
	case driver.StageParse:
		return 0.5
	}
	return 0
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders ParseDir progress.
// The model quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	return newProgressModel(title, files, events)
}

func newProgressModel(title string, files []string, events <-chan driver.Event) *progressModel {
	m := &progressModel{
		title:   title,
		events:  events,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(workingStyle)),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
		rows:    make([]fileRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, file := range files {
		m.rows[i] = fileRow{path: file, status: driver.StatusQueued}
		m.byPath[file] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(driver.Event(msg)), m.waitEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case tea.KeyMsg:
		// прерывание только закрывает UI; разбор дочитает канал сам
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.header()))
	b.WriteString("\n\n")

	nameWidth := max(m.width-statusColumn-4, 20)
	for _, row := range m.rows {
		label := row.label()
		fmt.Fprintf(&b, "  %s %s\n",
			statusStyle(row.status).Render(runewidth.FillLeft(label, statusColumn)),
			truncate(row.path, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	b.WriteString(m.summary())
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) header() string {
	h := m.title
	if label := stageLabel(m.phase); label != "" {
		h += " (" + label + ")"
	}
	if m.done {
		return "done: " + h
	}
	return m.spinner.View() + " " + h
}

// summary counts finished files, e.g. "3/4 files, 1 with errors, 2 cached".
func (m *progressModel) summary() string {
	var finished, failed, cached int
	for _, row := range m.rows {
		if row.finished() {
			finished++
		}
		switch row.status {
		case driver.StatusError:
			failed++
		case driver.StatusCached:
			cached++
		}
	}
	s := fmt.Sprintf("%d/%d files", finished, len(m.rows))
	if failed > 0 {
		s += fmt.Sprintf(", %d with errors", failed)
	}
	if cached > 0 {
		s += fmt.Sprintf(", %d cached", cached)
	}
	return s
}

func (m *progressModel) waitEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

// applyEvent updates the row of ev.File. Events without a file only move
// the header's stage.
func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	if ev.File == "" {
		if ev.Status == driver.StatusWorking {
			m.phase = ev.Stage
		}
		return nil
	}
	idx, ok := m.byPath[ev.File]
	if !ok || m.rows[idx].finished() {
		return nil
	}
	m.rows[idx].stage = ev.Stage
	m.rows[idx].status = ev.Status
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	total := 0.0
	for _, row := range m.rows {
		total += row.weight()
	}
	return total / float64(len(m.rows))
}

func stageLabel(stage driver.Stage) string {
	switch stage {
	case driver.StageLoad:
		return "loading"
	case driver.StageLex:
		return "lexing"
	case driver.StageParse:
		return "parsing"
	}
	return ""
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

func statusStyle(status driver.Status) lipgloss.Style {
	switch status {
	case driver.StatusDone, driver.StatusCached:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case driver.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case driver.StatusWorking:
		return workingStyle
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
}

// truncate shortens value to width terminal columns, ending with "..."
// when there is room for it.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
