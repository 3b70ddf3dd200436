// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typr/internal/ledger"
	"github.com/verte-zerg/typr/internal/model"
	"github.com/verte-zerg/typr/internal/renderdiff"
	"github.com/verte-zerg/typr/internal/session"
	statsPkg "github.com/verte-zerg/typr/internal/stats"
	"github.com/verte-zerg/typr/internal/store"
	"github.com/verte-zerg/typr/internal/textsource"
)

type view int

const (
	viewMenu view = iota
	viewTyping
	viewMistyped
)

const noticeDuration = 2 * time.Second

var (
	untypedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	correctedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

type clearNoticeMsg struct {
	at time.Time
}

type statsTickMsg struct{}

// Model implements the Bubble Tea typing UI. It drives the session engine
// from key events and repaints only the display lines the render differ
// marks dirty.
type Model struct {
	cfg    model.Config
	store  *store.Store
	ledger *ledger.Ledger
	source *textsource.Source
	words  []string
	text   string

	sess      *session.Session
	differ    *renderdiff.Differ
	lines     []lineRange
	lineCache []string
	recorded  bool

	view     view
	showHelp bool
	keys     keyMap
	help     help.Model
	mistakes table.Model

	notice   string
	noticeAt time.Time

	width  int
	height int
}

// NewModel constructs the typing TUI model. The store may be nil when the
// database could not be opened; everything except persistence still works.
func NewModel(cfg model.Config, st *store.Store, led *ledger.Ledger, src *textsource.Source, words []string, text string) *Model {
	return &Model{
		cfg:    cfg,
		store:  st,
		ledger: led,
		source: src,
		words:  words,
		text:   text,
		differ: renderdiff.New(),
		keys:   newKeyMap(),
		help:   help.New(),
	}
}

// Record feeds the ledger when tracking is enabled. The model is the
// session's mistake recorder so the toggle applies immediately.
func (m *Model) Record(r rune) {
	if m.cfg.TrackMistakes {
		m.ledger.Record(r)
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil
	case clearNoticeMsg:
		if msg.at.Equal(m.noticeAt) {
			m.notice = ""
		}
		return m, nil
	case statsTickMsg:
		if m.view == viewTyping && m.sess != nil && m.sess.State() == session.Running {
			return m, m.statsTick()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.view {
	case viewTyping:
		return m.handleTypingKey(msg)
	case viewMistyped:
		return m.handleMistypedKey(msg)
	default:
		return m.handleMenuKey(msg)
	}
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), msg.Type == tea.KeyEnter, msg.Type == tea.KeyEsc:
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Type):
		cmd := m.startSession()
		return m, cmd
	case key.Matches(msg, m.keys.Cycle):
		m.cfg.Mode = m.cfg.Mode.Next()
		return m, m.showNotice(fmt.Sprintf("mode: %s", m.cfg.Mode))
	case key.Matches(msg, m.keys.Mistyped):
		m.openMistyped()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.ledger.Clear()
		m.persistLedger()
		return m, m.showNotice("mistyped characters cleared")
	case key.Matches(msg, m.keys.Track):
		m.cfg.TrackMistakes = !m.cfg.TrackMistakes
		return m, m.showNotice(onOff("mistake tracking", m.cfg.TrackMistakes))
	case key.Matches(msg, m.keys.Notices):
		m.cfg.Notifications = !m.cfg.Notifications
		return m, m.forceNotice(onOff("notifications", m.cfg.Notifications))
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Returning to the menu discards the session.
		m.sess = nil
		m.view = viewMenu
		return m, m.showNotice("mode: menu")
	case tea.KeyTab:
		cmd := m.startSession()
		return m, cmd
	case tea.KeyBackspace, tea.KeyDelete:
		m.applyBackspace()
		return m, nil
	case tea.KeySpace:
		return m, m.applyRunes([]rune{' '})
	case tea.KeyRunes:
		return m, m.applyRunes(msg.Runes)
	default:
		return m, nil
	}
}

func (m *Model) handleMistypedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, msg.Type == tea.KeyEnter, key.Matches(msg, m.keys.Mistyped):
		m.view = viewMenu
		return m, nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.mistakes, cmd = m.mistakes.Update(msg)
	return m, cmd
}

// startSession generates a fresh target and enters the typing view. On
// empty content the error surfaces as a notice and the menu stays active.
func (m *Model) startSession() tea.Cmd {
	target, err := m.source.Generate(m.cfg.Mode, textsource.Params{
		Chars:     m.cfg.Chars,
		TargetLen: m.cfg.TargetLen,
		Words:     m.words,
		Text:      m.text,
	})
	if err != nil {
		if errors.Is(err, textsource.ErrEmptyInput) {
			m.view = viewMenu
			return m.forceNotice(fmt.Sprintf("no content for %s mode", m.cfg.Mode))
		}
		return m.forceNotice(fmt.Sprintf("failed to generate target: %v", err))
	}
	m.sess = session.New(target, m)
	m.recorded = false
	m.differ.Reset()
	m.view = viewTyping
	m.relayout()
	return nil
}

// relayout recomputes line layout and repaints every line. Used on resize
// and session start; keystrokes go through the dirty-span path instead.
func (m *Model) relayout() {
	if m.sess == nil {
		return
	}
	target := m.sess.Target()
	m.lines = layoutLines(target, m.wrapWidth())
	m.lineCache = make([]string, len(m.lines))
	snap := m.sess.Snapshot()
	for i, lr := range m.lines {
		m.lineCache[i] = renderLine(target, snap, lr)
	}
	m.differ.Update(snap)
}

func (m *Model) wrapWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) applyRunes(runes []rune) tea.Cmd {
	if m.sess == nil || m.sess.IsComplete() {
		return nil
	}
	wasIdle := m.sess.State() == session.Idle
	now := time.Now()
	for _, r := range runes {
		m.sess.TypeChar(r, now)
	}
	m.repaintDirty()
	if m.sess.IsComplete() {
		m.finishSession(now)
		return nil
	}
	if wasIdle {
		return m.statsTick()
	}
	return nil
}

func (m *Model) applyBackspace() {
	if m.sess == nil || m.sess.IsComplete() {
		return
	}
	m.sess.Backspace(time.Now())
	m.repaintDirty()
}

// repaintDirty re-renders only the cached lines overlapping the differ's
// dirty spans.
func (m *Model) repaintDirty() {
	snap := m.sess.Snapshot()
	spans := m.differ.Update(snap)
	if len(spans) == 0 {
		return
	}
	target := m.sess.Target()
	for i, lr := range m.lines {
		if overlaps(lr, spans) {
			m.lineCache[i] = renderLine(target, snap, lr)
		}
	}
}

// finishSession records the completed run once.
func (m *Model) finishSession(now time.Time) {
	if m.recorded || m.store == nil {
		m.recorded = true
		return
	}
	m.recorded = true
	correct, corrected, incorrect := statsPkg.Counts(m.sess.Snapshot().States)
	rec := model.SessionRecord{
		StartedAt:  m.sess.StartedAt(),
		EndedAt:    now,
		Mode:       m.cfg.Mode.String(),
		TargetLen:  len(m.sess.Target()),
		Correct:    correct,
		Corrected:  corrected,
		Incorrect:  incorrect,
		DurationMs: now.Sub(m.sess.StartedAt()).Milliseconds(),
	}
	if _, err := m.store.InsertSession(context.Background(), rec); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
}

func (m *Model) persistLedger() {
	if m.store == nil {
		return
	}
	if err := m.ledger.Save(context.Background(), m.store); err != nil {
		logErrf("failed to save mistyped characters: %v\n", err)
	}
}

func (m *Model) openMistyped() {
	entries := m.ledger.TopN(20)
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		label := string(e.Char)
		if e.Char == ' ' {
			label = "<space>"
		}
		rows = append(rows, table.Row{label, fmt.Sprintf("%d", e.Count)})
	}
	columns := []table.Column{
		{Title: "Char", Width: 8},
		{Title: "Mistakes", Width: 10},
	}
	height := len(rows)
	if height > 10 {
		height = 10
	}
	m.mistakes = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height+1),
		table.WithFocused(true),
	)
	m.view = viewMistyped
}

func (m *Model) showNotice(text string) tea.Cmd {
	if !m.cfg.Notifications {
		return nil
	}
	return m.forceNotice(text)
}

// forceNotice shows a notice regardless of the notifications toggle, so
// the toggle confirmation itself is always visible.
func (m *Model) forceNotice(text string) tea.Cmd {
	m.notice = text
	m.noticeAt = time.Now()
	at := m.noticeAt
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{at: at}
	})
}

func (m *Model) statsTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return statsTickMsg{}
	})
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.view {
	case viewTyping:
		return m.viewTypingPage()
	case viewMistyped:
		return m.viewMistypedPage()
	default:
		return m.viewMenuPage()
	}
}

func (m *Model) viewMenuPage() string {
	if m.showHelp {
		m.help.ShowAll = true
		content := titleStyle.Render("typr — keys") + "\n\n" + m.help.View(m.keys)
		return m.place(content)
	}
	m.help.ShowAll = false
	var b strings.Builder
	b.WriteString(titleStyle.Render("typr"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("mode: %s\n", m.cfg.Mode))
	b.WriteString(onOff("mistake tracking", m.cfg.TrackMistakes))
	b.WriteString("\n")
	if n := m.ledger.Len(); n > 0 {
		b.WriteString(fmt.Sprintf("mistyped characters: %d\n", n))
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	if m.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}
	return m.place(b.String())
}

func (m *Model) viewTypingPage() string {
	if m.sess == nil {
		return m.viewMenuPage()
	}
	content := strings.Join(m.lineCache, "\n")
	footer := m.renderFooter()
	if m.width == 0 || m.height < 3 {
		return content + "\n" + footer
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) viewMistypedPage() string {
	title := titleStyle.Render("most mistyped")
	body := m.mistakes.View()
	if m.ledger.Len() == 0 {
		body = footerStyle.Render("no mistakes recorded")
	}
	hint := footerStyle.Render("esc: back · q: quit")
	return m.place(title + "\n\n" + body + "\n\n" + hint)
}

func (m *Model) renderFooter() string {
	snap := m.sess.Snapshot()
	keys := m.sess.Keystrokes()
	now := time.Now()
	wpm := statsPkg.WPM(snap.States, keys, now)
	acc := statsPkg.Accuracy(snap.States)
	progress := 0
	if n := len(snap.States); n > 0 {
		progress = snap.Cursor * 100 / n
	}
	segments := []string{
		fmt.Sprintf("%.1f WPM", wpm),
		fmt.Sprintf("%.1f%%", acc*100),
		fmt.Sprintf("Progress %d%%", progress),
	}
	if m.sess.IsComplete() {
		segments = append(segments, "done · tab: new target · esc: menu")
	}
	if m.notice != "" {
		segments = append(segments, noticeStyle.Render(m.notice))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func onOff(name string, on bool) string {
	if on {
		return name + ": on"
	}
	return name + ": off"
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
