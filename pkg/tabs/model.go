package tabs

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ChangeMsg is emitted after the user switches tabs.
type ChangeMsg struct {
	Key string
}

// Model draws a Panel and turns key and mouse input into tab changes.
type Model struct {
	panel     Panel
	styles    Styles
	keys      KeyMap
	help      help.Model
	width     int
	height    int
	scrollPos int // First visible tab index for overflow handling
	selected  string
	visited   map[string]bool
}

// New returns an empty panel model.
func New(styles Styles, keys KeyMap) Model {
	return Model{
		styles:  styles,
		keys:    keys,
		help:    help.New(),
		visited: make(map[string]bool),
	}
}

// SetPanel replaces what is drawn. Hosts call it on every render pass.
func (m *Model) SetPanel(p Panel) {
	m.panel = p
	if key := m.ActiveKey(); key != "" {
		m.visited[key] = true
	}
	m.adjustScrollForActiveTab()
}

// SetSize sets the area available to the panel.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.adjustScrollForActiveTab()
}

// SetStyles swaps styles, e.g. after a config reload.
func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

// SetKeyMap swaps key bindings.
func (m *Model) SetKeyMap(k KeyMap) {
	m.keys = k
}

// ActiveKey is the key of the pane being shown. A controlled ActiveKey on
// the panel wins; otherwise the last user selection, then the first enabled
// pane.
func (m Model) ActiveKey() string {
	if m.panel.ActiveKey != "" {
		return m.panel.ActiveKey
	}
	if m.selected != "" && m.panel.Index(m.selected) >= 0 {
		return m.selected
	}
	for _, p := range m.panel.Panes {
		if !p.Disabled {
			return p.Key
		}
	}
	return ""
}

// Select activates key as if the user picked it. Unknown, disabled and
// already active keys are ignored; otherwise the panel's OnChange runs
// before Select returns.
func (m Model) Select(key string) (Model, tea.Cmd) {
	idx := m.panel.Index(key)
	if idx < 0 || m.panel.Panes[idx].Disabled || key == m.ActiveKey() {
		return m, nil
	}
	m.selected = key
	m.visited[key] = true
	if m.panel.OnChange != nil {
		m.panel.OnChange(key)
	}
	m.adjustScrollForActiveTab()
	return m, func() tea.Msg { return ChangeMsg{Key: key} }
}

// step moves the selection by delta enabled panes, wrapping around.
func (m Model) step(delta int) (Model, tea.Cmd) {
	n := len(m.panel.Panes)
	if n == 0 {
		return m, nil
	}
	cur := m.panel.Index(m.ActiveKey())
	if cur < 0 {
		cur = 0
	}
	for i := 1; i <= n; i++ {
		next := ((cur+delta*i)%n + n) % n
		if !m.panel.Panes[next].Disabled {
			return m.Select(m.panel.Panes[next].Key)
		}
	}
	return m, nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			return m.step(1)
		case key.Matches(msg, m.keys.Prev):
			return m.step(-1)
		case key.Matches(msg, m.keys.Jump):
			if i := jumpIndex(msg.String()); i >= 0 && i < len(m.panel.Panes) {
				return m.Select(m.panel.Panes[i].Key)
			}
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == m.barRow() {
			if key, ok := m.keyAtX(msg.X); ok {
				return m.Select(key)
			}
		}
	}
	return m, nil
}

// tabEntry stores info about each tab for rendering and click detection
type tabEntry struct {
	key      string
	rendered string
	width    int
}

func (m Model) buildTabs() []tabEntry {
	active := m.ActiveKey()
	tabs := make([]tabEntry, 0, len(m.panel.Panes))
	for _, p := range m.panel.Panes {
		style := m.styles.Inactive
		switch {
		case p.Disabled:
			style = m.styles.Disabled
		case p.Key == active:
			style = m.styles.Active
		}
		text := p.Tab.Text
		if text == "" {
			text = p.Key
		}
		rendered := style.Render(text)
		width := runewidth.StringWidth(text) + 2 // +2 for padding
		if p.Tab.Badged() {
			count := m.styles.badgeText(p.Tab.Count)
			rendered += m.styles.Badge.Render(count)
			width += runewidth.StringWidth(count) + 2
		}
		tabs = append(tabs, tabEntry{key: p.Key, rendered: rendered, width: width})
	}
	return tabs
}

func (m Model) gutter() int {
	if m.panel.Gutter > 0 {
		return m.panel.Gutter
	}
	return 1
}

func (m Model) availableWidth() int {
	w := m.width - 4 // Reserve for "< " and " >"
	if w < 20 {
		return 80 // Fallback
	}
	return w
}

// adjustScrollForActiveTab ensures the active tab is visible
func (m *Model) adjustScrollForActiveTab() {
	tabs := m.buildTabs()
	if len(tabs) == 0 {
		m.scrollPos = 0
		return
	}
	if m.scrollPos >= len(tabs) {
		m.scrollPos = len(tabs) - 1
	}
	activeIdx := m.panel.Index(m.ActiveKey())
	if activeIdx < 0 {
		return
	}
	if activeIdx < m.scrollPos {
		m.scrollPos = activeIdx
		return
	}
	// Scroll right one tab at a time until the active tab fits.
	for m.scrollPos < activeIdx {
		used := 0
		for i := m.scrollPos; i <= activeIdx; i++ {
			used += tabs[i].width + m.gutter()
		}
		if used <= m.availableWidth() {
			return
		}
		m.scrollPos++
	}
}

// visibleRange returns the half-open range of tabs that fit from scrollPos.
func (m Model) visibleRange(tabs []tabEntry) (int, int) {
	used := 0
	end := m.scrollPos
	for i := m.scrollPos; i < len(tabs); i++ {
		w := tabs[i].width + m.gutter()
		if used+w > m.availableWidth() && i > m.scrollPos {
			break
		}
		used += w
		end = i + 1
	}
	return m.scrollPos, end
}

func (m Model) renderBar() string {
	tabs := m.buildTabs()
	if len(tabs) == 0 {
		return m.styles.Indicator.Render("No tabs")
	}
	start, end := m.visibleRange(tabs)

	var b strings.Builder
	if start > 0 {
		b.WriteString(m.styles.Indicator.Render("<") + " ")
	}
	gap := strings.Repeat(" ", m.gutter())
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString(gap)
		}
		b.WriteString(tabs[i].rendered)
	}
	if end < len(tabs) {
		b.WriteString(" " + m.styles.Indicator.Render(">"))
	}
	if m.panel.Extra != "" {
		b.WriteString(gap + m.panel.Extra)
	}
	return b.String()
}

// keyAtX finds which tab is at the given X coordinate
func (m Model) keyAtX(x int) (string, bool) {
	tabs := m.buildTabs()
	start, end := m.visibleRange(tabs)
	currentX := 0
	if start > 0 {
		currentX += 2 // "< " width
	}
	for i := start; i < end; i++ {
		w := tabs[i].width + m.gutter()
		if x >= currentX && x < currentX+w {
			return tabs[i].key, true
		}
		currentX += w
	}
	return "", false
}

func (m Model) barRow() int {
	if m.panel.Position != PositionBottom {
		return 0
	}
	return lipgloss.Height(m.renderBody()) + 1
}

func (m Model) bodyWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}

// renderBody renders every pane that is active, forced or previously shown
// and returns the active pane's output, padded to the tallest of them.
func (m Model) renderBody() string {
	active := m.ActiveKey()
	var body string
	height := 0
	for _, p := range m.panel.Panes {
		if p.Render == nil {
			continue
		}
		switch {
		case p.Key == active:
			body = p.Render(m.bodyWidth())
			height = max(height, lipgloss.Height(body))
		case p.ForceRender || m.visited[p.Key]:
			height = max(height, lipgloss.Height(p.Render(m.bodyWidth())))
		}
	}
	return lipgloss.PlaceVertical(height, lipgloss.Top, body)
}

func (m Model) View() string {
	bar := m.renderBar()
	divider := m.styles.Divider.Render(strings.Repeat(m.styles.DividerRune, m.bodyWidth()))
	body := m.renderBody()
	if m.panel.Position == PositionBottom {
		return lipgloss.JoinVertical(lipgloss.Left, body, divider, bar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, divider, body)
}

// HelpView renders the key help line.
func (m Model) HelpView() string {
	return m.help.View(m.keys)
}
