// Package picker implements the interactive pending-prompt selector.
package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/promptq/internal/core/prompt"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

// Item is one selectable prompt row.
type Item struct {
	Rec  prompt.Record
	Desc string
}

func (i Item) Title() string { return i.Rec.Filename }

func (i Item) Description() string {
	if i.Desc == "" {
		return "(no description)"
	}
	return i.Desc
}

func (i Item) FilterValue() string { return i.Rec.Filename }

// Model is the bubbletea model for the picker.
type Model struct {
	list     list.Model
	choice   *prompt.Record
	quitting bool
}

// New builds a picker over the given items.
func New(items []Item) Model {
	rows := make([]list.Item, len(items))
	for i, it := range items {
		rows[i] = it
	}

	l := list.New(rows, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Pending prompts"
	l.SetShowStatusBar(false)

	return Model{list: l}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// Don't swallow keys while the user is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(Item); ok {
				rec := it.Rec
				m.choice = &rec
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting || m.choice != nil {
		return ""
	}
	return docStyle.Render(m.list.View())
}

// Choice returns the selected record, if any.
func (m Model) Choice() (prompt.Record, bool) {
	if m.choice == nil {
		return prompt.Record{}, false
	}
	return *m.choice, true
}

// Run shows the picker and blocks until a selection or dismissal.
func Run(items []Item) (prompt.Record, bool, error) {
	final, err := tea.NewProgram(New(items), tea.WithAltScreen()).Run()
	if err != nil {
		return prompt.Record{}, false, fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return prompt.Record{}, false, fmt.Errorf("unexpected picker model type %T", final)
	}

	rec, chosen := m.Choice()
	return rec, chosen, nil
}
