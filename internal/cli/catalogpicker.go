package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/gitextra/internal/catalog"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type catalogItem struct {
	name  string
	entry catalog.Entry
}

func (i catalogItem) Title() string {
	return i.name
}

func (i catalogItem) Description() string {
	if i.entry.Description != "" {
		return fmt.Sprintf("%s | %s", i.entry.Origin, i.entry.Description)
	}

	return i.entry.Origin
}

func (i catalogItem) FilterValue() string {
	return i.name
}

// CatalogPickerModel lets the user choose a catalog entry by name.
type CatalogPickerModel struct {
	list     list.Model
	selected string
	quitting bool
}

func (m CatalogPickerModel) Init() tea.Cmd {
	return nil
}

func (m CatalogPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			if i, ok := m.list.SelectedItem().(catalogItem); ok {
				m.selected = i.name
			}

			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m CatalogPickerModel) View() string {
	if m.quitting {
		return ""
	}

	return docStyle.Render(m.list.View())
}

// Selection returns the chosen catalog name, or "" if the user aborted.
func (m CatalogPickerModel) Selection() string {
	return m.selected
}

// NewCatalogPicker builds a picker over the catalog entries.
func NewCatalogPicker(cat *catalog.Catalog) CatalogPickerModel {
	names := cat.Names()

	items := make([]list.Item, len(names))
	for i, name := range names {
		entry, _ := cat.Get(name)
		items[i] = catalogItem{name: name, entry: entry}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Catalog Repositories"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return CatalogPickerModel{list: l}
}
