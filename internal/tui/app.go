package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"packlist/internal/action"
	"packlist/internal/model"
	"packlist/internal/preset"
	"packlist/internal/state"
)

type (
	toastMsg         string
	toastClearMsg    int
	bellMsg          struct{}
	confettiMsg      struct{}
	confettiFrameMsg struct{}
)

const (
	toastDuration = 2500 * time.Millisecond
	confettiFrame = 120 * time.Millisecond
)

type appModel struct {
	store   *state.Store
	actions *action.Actions
	keys    keyMap
	th      theme

	width  int
	height int
	cursor int

	adding bool
	input  textinput.Model

	toast    string
	toastSeq int

	confettiLeft int
}

func newAppModel(st *state.Store, actions *action.Actions) appModel {
	in := textinput.New()
	in.Placeholder = "what to pack?"
	in.CharLimit = model.MaxNameLen
	in.Prompt = "> "
	return appModel{
		store:   st,
		actions: actions,
		keys:    defaultKeyMap(),
		th:      newTheme(),
		input:   in,
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

// row is one rendered line: a category header or an item.
type row struct {
	header   bool
	cat      model.Category
	item     model.Item
	itemIdx  int
	catEmpty bool
}

func buildRows(st *state.State) []row {
	var out []row
	if st.Data == nil {
		return out
	}
	idx := 0
	for _, c := range st.Data.Cats {
		if st.Selection.Cat != "" && c.ID != st.Selection.Cat {
			continue
		}
		items := []row{}
		for _, it := range st.Data.Items {
			if it.Cat != c.ID {
				continue
			}
			items = append(items, row{item: it, itemIdx: idx})
			idx++
		}
		out = append(out, row{header: true, cat: c, catEmpty: len(items) == 0})
		out = append(out, items...)
	}
	return out
}

func (m appModel) itemAt(cursor int) (model.Item, bool) {
	for _, r := range buildRows(m.store.Get()) {
		if !r.header && r.itemIdx == cursor {
			return r.item, true
		}
	}
	return model.Item{}, false
}

func (m appModel) visibleItems() int {
	n := 0
	for _, r := range buildRows(m.store.Get()) {
		if !r.header {
			n++
		}
	}
	return n
}

func (m appModel) clampCursor() appModel {
	n := m.visibleItems()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastMsg:
		m.toast = string(msg)
		m.toastSeq++
		seq := m.toastSeq
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastClearMsg(seq) })

	case toastClearMsg:
		if int(msg) == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case bellMsg:
		// Terminal bell is the tick sound of this renderer.
		fmt.Fprint(os.Stderr, "\a")
		return m, nil

	case confettiMsg:
		m.confettiLeft = 8
		return m, tea.Tick(confettiFrame, func(time.Time) tea.Msg { return confettiFrameMsg{} })

	case confettiFrameMsg:
		if m.confettiLeft > 0 {
			m.confettiLeft--
		}
		if m.confettiLeft > 0 {
			return m, tea.Tick(confettiFrame, func(time.Time) tea.Msg { return confettiFrameMsg{} })
		}
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m appModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.adding = false
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		res := m.actions.CreateItem(action.CreateItemInput{
			Name: m.input.Value(),
			Cat:  m.addTargetCat(),
		})
		if res.OK {
			m.adding = false
			m.input.Reset()
		}
		// On EMPTY_NAME the toast arrives via the effects context and the
		// input stays open.
		return m.clampCursor(), nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// addTargetCat picks where a new item goes: the active filter category, else
// the category under the cursor, else the fallback.
func (m appModel) addTargetCat() string {
	st := m.store.Get()
	if st.Selection.Cat != "" {
		return st.Selection.Cat
	}
	if it, ok := m.itemAt(m.cursor); ok {
		return it.Cat
	}
	return preset.FallbackCategoryID
}

func (m appModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.store.Get()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor--
		return m.clampCursor(), nil

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		return m.clampCursor(), nil

	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.itemAt(m.cursor); ok {
			m.actions.ToggleDone(it.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.itemAt(m.cursor); ok {
			m.actions.DeleteItem(it.ID)
		}
		return m.clampCursor(), nil

	case key.Matches(msg, m.keys.Add):
		m.adding = true
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Reset):
		m.actions.ResetChecks()
		return m, nil

	case key.Matches(msg, m.keys.Mode):
		m.actions.ChangeMode(nextMode(st.Settings.TripMode))
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.actions.SelectCategory(nextFilter(st))
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Share):
		m.actions.ShareList()
		return m, nil

	case key.Matches(msg, m.keys.Motion):
		on := !st.Settings.Motion
		m.actions.SetMotion(on)
		return m, announce("Motion", on)

	case key.Matches(msg, m.keys.Sound):
		on := !st.Settings.Sound
		m.actions.SetSound(on)
		return m, announce("Sound", on)
	}
	return m, nil
}

func announce(what string, on bool) tea.Cmd {
	label := "off"
	if on {
		label = "on"
	}
	return func() tea.Msg { return toastMsg(what + " " + label) }
}

func nextMode(cur string) string {
	keys := preset.Keys()
	for i, k := range keys {
		if k == cur {
			return keys[(i+1)%len(keys)]
		}
	}
	return preset.Default
}

// nextFilter cycles all -> first category -> ... -> last category -> all.
func nextFilter(st *state.State) string {
	if st.Data == nil || len(st.Data.Cats) == 0 {
		return ""
	}
	if st.Selection.Cat == "" {
		return st.Data.Cats[0].ID
	}
	for i, c := range st.Data.Cats {
		if c.ID == st.Selection.Cat {
			if i+1 < len(st.Data.Cats) {
				return st.Data.Cats[i+1].ID
			}
			return ""
		}
	}
	return ""
}

func (m appModel) View() string {
	st := m.store.Get()
	if st.Data == nil {
		return "no checklist loaded\n"
	}
	w := m.width
	if w <= 0 {
		w = 80
	}

	var b strings.Builder
	p := st.Data.Progress()

	title := fmt.Sprintf("🧳 Packlist — %s", preset.Lookup(st.Data.Mode).Label)
	meta := fmt.Sprintf("%d/%d packed", p.Done, p.Total)
	if st.Settings.Streak > 0 {
		meta += fmt.Sprintf("   🔥 %d", st.Settings.Streak)
	}
	b.WriteString(clampLine(m.th.title.Render(title)+"   "+m.th.dim.Render(meta), w))
	b.WriteString("\n")
	b.WriteString(m.renderBar(p))
	b.WriteString("\n")

	if m.confettiLeft > 0 {
		b.WriteString(m.th.banner.Render(confettiLine(m.confettiLeft, w)))
		b.WriteString("\n")
	}

	if st.Selection.Cat != "" {
		if c, ok := st.Data.FindCategory(st.Selection.Cat); ok {
			b.WriteString(m.th.dim.Render("filter: " + c.Name))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	for _, r := range buildRows(st) {
		b.WriteString(m.renderRow(r, w))
		b.WriteString("\n")
	}

	if m.adding {
		b.WriteString("\n")
		b.WriteString(clampLine("add to "+m.addTargetCat()+": "+m.input.View(), w))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.toast != "" {
		b.WriteString(clampLine(m.th.toast.Render(m.toast), w))
	} else {
		b.WriteString(clampLine(m.th.dim.Render("space toggle · a add · d delete · r reset · m mode · tab filter · s share · q quit"), w))
	}
	b.WriteString("\n")
	return b.String()
}

func (m appModel) renderRow(r row, w int) string {
	if r.header {
		label := r.cat.Name
		if r.cat.Emoji != "" {
			label = r.cat.Emoji + " " + label
		}
		if r.catEmpty {
			label += m.th.dim.Render("  (empty)")
		}
		return clampLine(m.th.header.Render(label), w)
	}

	mark := "[ ]"
	name := r.item.Name
	if r.item.Emoji != "" {
		name = r.item.Emoji + " " + name
	}
	line := fmt.Sprintf("  %s %s", mark, name)
	if r.item.Done {
		line = fmt.Sprintf("  [x] %s", m.th.done.Render(name))
	}
	if r.itemIdx == m.cursor {
		line = m.th.selected.Render(line)
	}
	return clampLine(line, w)
}

func (m appModel) renderBar(p model.Progress) string {
	const width = 24
	fill := 0
	if p.Total > 0 {
		fill = width * p.Done / p.Total
	}
	return m.th.barFill.Render(strings.Repeat("█", fill)) +
		m.th.barEmpty.Render(strings.Repeat("░", width-fill)) +
		fmt.Sprintf(" %d%%", p.Pct)
}

func confettiLine(frames, w int) string {
	parts := []string{"🎉", "✨", "🎊", "⭐"}
	n := w / 4
	if n > 16 {
		n = 16
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(parts[(i+frames)%len(parts)])
		b.WriteString(" ")
	}
	return strings.TrimRight(b.String(), " ")
}

// clampLine keeps a rendered line within the terminal width; terminate ANSI
// styling so truncation cannot bleed.
func clampLine(s string, w int) string {
	if xansi.StringWidth(s) <= w {
		return s
	}
	return xansi.Cut(s, 0, w) + "\x1b[0m"
}
