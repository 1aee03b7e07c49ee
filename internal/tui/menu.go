package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuItem struct {
	title string
	hint  string
	page  string
}

// MenuModel is the signed-out start page.
type MenuModel struct {
	items  []menuItem
	cursor int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []menuItem{
			{title: "Войти по ссылке из письма", hint: "код придёт на почту", page: pageLink},
			{title: "Войти с ключом доступа", hint: "ключ на этом устройстве", page: pagePasskey},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(k, keys.down):
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case key.Matches(k, keys.enter):
		return m, navigateCmd(m.items[m.cursor].page)
	}
	return m, nil
}

func (m *MenuModel) View() string {
	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		line := "  " + item.title
		if i == m.cursor {
			line = titleStyle.Render("> "+item.title) + "  " + helpStyle.Render(item.hint)
		}
		rows = append(rows, line)
	}
	return renderPage("ГЛАВНОЕ МЕНЮ", strings.Join(rows, "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}

func navigateCmd(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}
