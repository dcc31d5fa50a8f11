package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tayrics/tayrics/internal/present"
)

// FlashDuration is how long a selected row stays highlighted
const FlashDuration = 250 * time.Millisecond

// defaultCoversPerPage is used until the terminal reports its width
const defaultCoversPerPage = 4

// clearFlashMsg ends the highlight of one selected row.
type clearFlashMsg struct {
	id string
}

// Model is the Bubble Tea model for the catalog browser.
type Model struct {
	snapshot present.Snapshot
	keys     keyMap
	help     help.Model

	// first cover shown in the strip
	coverStart int

	// outline state
	open    map[string]bool
	cursor  int
	offset  int
	flashID string

	width  int
	height int
}

// NewModel creates a model over snapshot. When expand is true every album
// starts open.
func NewModel(snapshot present.Snapshot, expand bool) Model {
	m := Model{
		snapshot: snapshot,
		keys:     defaultKeyMap(),
		help:     help.New(),
		open:     make(map[string]bool),
	}
	if expand && snapshot.Titles != nil {
		for _, id := range snapshot.Titles.Roots() {
			m.open[id] = true
		}
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.coverStart = m.clampCoverStart(m.coverStart)
		m.scrollToCursor()
		return m, nil

	case clearFlashMsg:
		if m.flashID == msg.id {
			m.flashID = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Left):
			m.coverStart = m.clampCoverStart(m.coverStart - 1)
		case key.Matches(msg, m.keys.Right):
			m.coverStart = m.clampCoverStart(m.coverStart + 1)
		case key.Matches(msg, m.keys.Toggle):
			return m, m.selectCurrent()
		}
	}
	return m, nil
}

// visibleRows returns the outline rows with the current albums open
func (m Model) visibleRows() []present.Node {
	if m.snapshot.Titles == nil {
		return nil
	}
	return m.snapshot.Titles.Visible(func(id string) bool { return m.open[id] })
}

func (m *Model) moveCursor(delta int) {
	rows := m.visibleRows()
	if len(rows) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(rows)-1)
	m.scrollToCursor()
}

// selectCurrent toggles an album or flashes a song; either way the row is
// only highlighted until the flash clears.
func (m *Model) selectCurrent() tea.Cmd {
	rows := m.visibleRows()
	if m.cursor >= len(rows) {
		return nil
	}
	node := rows[m.cursor]
	if node.Kind == present.NodeAlbum {
		m.open[node.ID] = !m.open[node.ID]
	}

	m.flashID = node.ID
	id := node.ID
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{id: id}
	})
}

func (m Model) coversPerPage() int {
	if m.width <= 0 {
		return defaultCoversPerPage
	}
	return max(m.width/cardOuterWidth, 1)
}

func (m Model) clampCoverStart(start int) int {
	maxStart := max(len(m.snapshot.Covers)-m.coversPerPage(), 0)
	return min(max(start, 0), maxStart)
}

// outlineHeight is the number of rows available to the outline, or 0 when
// the terminal size is unknown
func (m Model) outlineHeight() int {
	if m.height <= 0 {
		return 0
	}
	used := lipgloss.Height(m.headerView()) + lipgloss.Height(m.help.View(m.keys)) + 2
	return max(m.height-used, 1)
}

func (m *Model) scrollToCursor() {
	h := m.outlineHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.outlineView())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) headerView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Tayrics"))
	b.WriteString("\n")

	if m.snapshot.IsEmpty() {
		b.WriteString(dimStyle.Render("No albums"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(sectionStyle.Render("Album Covers"))
	b.WriteString("\n")
	b.WriteString(m.coversView())
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Album Titles"))
	return b.String()
}

func (m Model) coversView() string {
	covers := m.snapshot.Covers
	if len(covers) == 0 {
		return dimStyle.Render("(no covers)")
	}

	end := min(m.coverStart+m.coversPerPage(), len(covers))
	cards := make([]string, 0, end-m.coverStart)
	for _, item := range covers[m.coverStart:end] {
		cards = append(cards, renderCard(item), " ")
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	position := dimStyle.Render(fmt.Sprintf("%d-%d of %d", m.coverStart+1, end, len(covers)))
	return lipgloss.JoinVertical(lipgloss.Left, strip, position)
}

func renderCard(item present.CoverItem) string {
	rank := rankStyle.Render(fmt.Sprintf("#%d", item.DisplayOrder))
	name := truncate(item.CoverImageName, cardWidth-2)
	return cardStyle.Render(rank + "\n" + name)
}

func (m Model) outlineView() string {
	rows := m.visibleRows()
	start, end := 0, len(rows)
	if h := m.outlineHeight(); h > 0 {
		start = min(m.offset, len(rows))
		end = min(start+h, len(rows))
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(rows[i], i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRow(node present.Node, atCursor bool) string {
	prefix := "  "
	if atCursor {
		prefix = cursorStyle.Render("> ")
	}

	var line string
	switch node.Kind {
	case present.NodeAlbum:
		arrow := "▸"
		if m.open[node.ID] {
			arrow = "▾"
		}
		line = arrow + " " + albumStyle.Render(node.Album.Name)
	default:
		line = songIndent + node.Song.Name + "  " + durationStyle.Render(node.Song.FormattedLength()) + " " + dimStyle.Render("›")
	}

	if node.ID == m.flashID {
		line = flashStyle.Render(line)
	}
	return prefix + line
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
