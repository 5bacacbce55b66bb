package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"daytick/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePalette()
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.closePalette()
		cmd, err := commands.Parse(input)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		res, err := commands.Execute(cmd, m.paletteHandlers())
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: res.Message}
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.commandInput.Blur()
	m.commandInput.SetValue("")
}
