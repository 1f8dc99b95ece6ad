package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"weatherscreen.app/internal/core/screen"
)

type styles struct {
	card        lipgloss.Style
	city        lipgloss.Style
	temperature lipgloss.Style
	description lipgloss.Style
	info        lipgloss.Style
	loading     lipgloss.Style
	selected    lipgloss.Style
	help        lipgloss.Style
}

func newStyles(theme screen.Theme) styles {
	return styles{
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Background)).
			Padding(1, 2),
		city:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.City)),
		temperature: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Temperature)),
		description: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color(theme.Description)),
		info:        lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Info)),
		loading:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.LoadingText)),
		selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Temperature)),
		help:        lipgloss.NewStyle().Faint(true),
	}
}

func (m Model) View() string {
	page := screen.BuildPage(m.state, m.page)
	st := newStyles(page.Theme)

	var b strings.Builder
	switch page.View.Kind {
	case screen.ViewLoading:
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(page.Theme.Spinner))
		b.WriteString(m.spinner.View() + " " + st.loading.Render(page.LoadingText))
	case screen.ViewEmpty:
		b.WriteString(st.description.Render(page.EmptyText))
		b.WriteString("\n\n" + m.input.View())
	default:
		m.renderPopulated(&b, page, st)
	}

	help := "t tema • l cidades • / buscar • q sair"
	if m.input.Focused() {
		help = "enter buscar • esc cancelar"
	}
	return st.card.Render(b.String()) + "\n" + st.help.Render(page.Theme.ToggleGlyph+"  "+help) + "\n"
}

func (m Model) renderPopulated(b *strings.Builder, page screen.Page, st styles) {
	b.WriteString(st.city.Render(page.City) + "\n")
	b.WriteString(st.temperature.Render(page.Temperature) + "  " + st.description.Render(page.Description) + "\n\n")

	b.WriteString(st.info.Render(infoLine(page.Labels.Sunrise, page.Labels.SunriseHint, page.Sunrise)) + "\n")
	b.WriteString(st.info.Render(infoLine(page.Labels.Sunset, page.Labels.SunsetHint, page.Sunset)) + "\n")
	b.WriteString(st.info.Render(infoLine(page.Labels.Wind, "", page.Wind)) + "\n")
	b.WriteString(st.info.Render(infoLine(page.Labels.Humidity, "", page.Humidity)) + "\n\n")

	b.WriteString(m.input.View())

	if page.View.ShowCityPicker {
		b.WriteString("\n")
		for i, city := range page.Shortlist {
			if i == m.cursor {
				b.WriteString("\n" + st.selected.Render("› "+city))
			} else {
				b.WriteString("\n  " + city)
			}
		}
	}
}

func infoLine(label, hint, value string) string {
	if hint != "" {
		label = fmt.Sprintf("%s (%s)", label, hint)
	}
	return fmt.Sprintf("%s: %s", label, value)
}
