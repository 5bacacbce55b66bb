package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header     string
	LeftPane   string
	RightPane  string
	StatusLine string
	IsError    bool
	Overlay    string
	Footer     string
}

func RenderApp(th Theme, data AppData) string {
	left := th.Panel.Width(58).Render(data.LeftPane)
	right := th.Panel.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := th.Status.Render(data.StatusLine)
	if data.IsError {
		status = th.Error.Render(data.StatusLine)
	}

	lines := []string{
		th.Header.Render(data.Header),
		row,
		status,
	}
	if data.Overlay != "" {
		lines = append(lines, th.Alert.Render(data.Overlay))
	}
	if data.Footer != "" {
		lines = append(lines, th.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders task notes; on failure the raw text is shown as-is.
func RenderMarkdown(md, themeName string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if themeName == "light" {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
