package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Daniel-Blankson/todo/internal/model"
	"github.com/Daniel-Blankson/todo/internal/store"
	"github.com/Daniel-Blankson/todo/internal/ui"
)

// listItem adapts a model.Item to bubbles/list.Item.
type listItem struct {
	item model.Item
}

func (i listItem) Title() string       { return i.item.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Title }

// Custom delegate to control how items render (single line).
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	box := mutedStyle.Render(t.BoxUnchecked)
	text := it.item.Title
	if it.item.Done {
		box = successStyle.Render(t.BoxChecked)
		text = doneStyle.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

// Model is the Bubble Tea model for the interactive list. The store
// is the single source of truth; the embedded list.Model is rebuilt
// from a fresh snapshot after every mutation, never mutated directly.
type Model struct {
	store *store.Store
	list  list.Model

	width  int
	height int

	// inline add / edit form
	adding  bool
	editing bool
	editID  int64
	input   textinput.Model
	formErr string
}

// NewModel wires a store into a fresh interactive model.
func NewModel(st *store.Store, charLimit int) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	delBind := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	extra := func() []key.Binding { return []key.Binding{addBind, editBind, toggleBind, delBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	m := Model{store: st, list: l, input: ti}
	m.sync()
	return m
}

// sync rebuilds the list rows and the summary header from the store.
func (m *Model) sync() {
	items := m.store.Items()
	rows := make([]list.Item, 0, len(items))
	for _, it := range items {
		rows = append(rows, listItem{item: it})
	}
	m.list.SetItems(rows)

	sum := m.store.Summary()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), sum.Completed,
		pendingStyle.Render("•"), sum.Total-sum.Completed,
		accentStyle.Render("Total"), sum.Total,
	)
}

// selectedID resolves the highlighted row to its store ID.
func (m Model) selectedID() (int64, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return 0, false
	}
	return it.item.ID, true
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding || m.editing {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break // let the list own keys while filtering
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if id, ok := m.selectedID(); ok {
				m.store.Toggle(id)
				idx := m.list.Index()
				m.sync()
				m.list.Select(idx)
			}
			return m, nil
		case "d":
			if id, ok := m.selectedID(); ok {
				m.store.Remove(id)
				idx := m.list.Index()
				m.sync()
				if idx >= len(m.list.Items()) {
					idx = len(m.list.Items()) - 1
				}
				if idx >= 0 {
					m.list.Select(idx)
				}
			}
			return m, nil
		case "a":
			m.adding = true
			m.formErr = ""
			m.input.SetValue("")
			m.input.Placeholder = "New item title..."
			m.input.Focus()
			m.resize()
			return m, nil
		case "e":
			if id, ok := m.selectedID(); ok {
				it, _ := m.list.SelectedItem().(listItem)
				m.editing = true
				m.editID = id
				m.formErr = ""
				m.input.SetValue(it.item.Title)
				m.input.CursorEnd()
				m.input.Placeholder = "Edit item title..."
				m.input.Focus()
				m.resize()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateForm handles keys while the inline add/edit bar is open.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			if m.adding {
				if _, ok := m.store.Add(m.input.Value()); !ok {
					m.formErr = "Title cannot be empty"
					return m, nil
				}
			} else {
				if !m.store.SetTitle(m.editID, m.input.Value()) {
					m.formErr = "Title cannot be empty"
					return m, nil
				}
			}
			m.closeForm()
			m.sync()
			return m, nil
		case "esc":
			m.closeForm()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeForm() {
	m.adding = false
	m.editing = false
	m.formErr = ""
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

func (m *Model) resize() {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.adding || m.editing {
		listHeight = h - 8
	}
	m.list.SetSize(w-4, listHeight)
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding || m.editing {
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		if m.formErr != "" {
			title += " " + errorStyle.Render(m.formErr)
		}
		content += "\n" + panelStyle.Render(title+"\n"+m.input.View())
	}
	return panelStyle.Render(content)
}

// Run starts the interactive list on the alt screen and blocks until
// the user quits. State is discarded with the process; nothing is
// persisted.
func Run(st *store.Store, charLimit int) error {
	p := tea.NewProgram(NewModel(st, charLimit), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
