package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"ustaad/history"
	"ustaad/prompt"
)

func (p Panel) View() string {
	if !p.ready {
		return "Loading..."
	}

	switch p.mode {
	case modeConfirm:
		return p.renderConfirmModal()
	case modeSetup:
		return p.renderSetupView()
	case modeHistory:
		return p.renderHistoryOverlay()
	}

	return fmt.Sprintf("%s\n%s\n%s", p.renderHeader(), p.viewport.View(), p.renderFooter())
}

func (p Panel) renderHeader() string {
	title := TitleStyle.Render("Code Ustaad")
	lang := CodeHeaderStyle.Render(prompt.DisplayLanguage(p.language))

	status := ""
	if p.streaming || p.followupStreaming {
		status = p.loadingSpinner.View() + DimStyle.Render(" Ustaad soch rahe hain...")
	}

	line := title + "  " + lang
	if status != "" {
		line += "  " + status
	}
	return line + "\n" + DimStyle.Render(strings.Repeat("─", max(p.width, 1)))
}

func (p Panel) renderFooter() string {
	var status string
	switch {
	case p.flash != "":
		if p.flashErr {
			status = ErrorStyle.Render(p.flash)
		} else {
			status = CodeHeaderStyle.Render(p.flash)
		}
	case p.input.Focused():
		status = p.input.View()
	default:
		status = FormatFooter("i", "Ask follow-up", "h", "History", "q", "Quit")
	}
	return DimStyle.Render(strings.Repeat("─", max(p.width, 1))) + "\n" + status
}

func (p Panel) renderHistoryOverlay() string {
	items := p.filteredHistory()

	var b strings.Builder
	b.WriteString(TitleStyle.Render("History"))
	b.WriteString("\n\n")

	if p.historyFilterMode || p.historyFilter.Value() != "" {
		b.WriteString(p.historyFilter.View())
		b.WriteString("\n\n")
	}

	if len(items) == 0 {
		b.WriteString(DimStyle.Render("Abhi tak kuch explain nahi karwaya!"))
	}

	for i, item := range items {
		row := formatHistoryRow(item)
		if i == p.selectedHistoryIdx {
			b.WriteString(SelectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(FormatFooter("j/k", "Navigate", "Enter", "Open", "/", "Search", "c", "Clear", "Esc", "Back")))
	return b.String()
}

func formatHistoryRow(item history.Item) string {
	title := history.ExtractCodeTitle(item.Code)
	firstLine := strings.SplitN(strings.TrimSpace(item.Code), "\n", 2)[0]
	preview := runewidth.Truncate(firstLine, 30, "...")
	when := item.Timestamp.Format("Jan 02 15:04")
	return fmt.Sprintf("%s  %s  %s",
		CodeHeaderStyle.Render(title),
		preview,
		DimStyle.Render(fmt.Sprintf("%s · %s", prompt.DisplayLanguage(item.Language), when)),
	)
}

func (p Panel) renderSetupView() string {
	modalWidth := 60
	if p.width < modalWidth+10 {
		modalWidth = p.width - 10
	}

	titleSection := lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor).
		Align(lipgloss.Center).
		Width(modalWidth).
		Render("API Key Setup")

	name := "Gemini"
	if p.setupProvider == "openai" {
		name = "OpenAI"
	}

	var lines []string
	lines = append(lines, strings.Repeat(" ", modalWidth))
	msgStyle := lipgloss.NewStyle().Width(modalWidth).Align(lipgloss.Center)
	lines = append(lines, msgStyle.Render(fmt.Sprintf("%s ki API key chahiye!", name)))
	lines = append(lines, msgStyle.Render(""))
	lines = append(lines, msgStyle.Render(p.setupInput.View()))
	lines = append(lines, strings.Repeat(" ", modalWidth))

	messageSection := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Width(modalWidth).
		Render(strings.Join(lines, "\n"))

	footerSection := lipgloss.NewStyle().
		Foreground(dimColor).
		Align(lipgloss.Center).
		Width(modalWidth).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Render(FormatFooter("Enter", "Save", "Ctrl+O", "Get a key", "Esc", "Cancel"))

	content := strings.Join([]string{titleSection, messageSection, footerSection}, "\n")
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, content)
}

func (p Panel) renderConfirmModal() string {
	modalWidth := 60
	if p.width < modalWidth+10 {
		modalWidth = p.width - 10
	}

	titleSection := lipgloss.NewStyle().
		Bold(true).
		Foreground(warningColor).
		Align(lipgloss.Center).
		Width(modalWidth).
		Render("Bahut Bada Selection")

	var lines []string
	lines = append(lines, strings.Repeat(" ", modalWidth))
	msgStyle := lipgloss.NewStyle().Width(modalWidth).Align(lipgloss.Center)
	lines = append(lines, msgStyle.Render(fmt.Sprintf("%d lines select kiye hain.", p.confirmLineCount)))
	lines = append(lines, msgStyle.Render("Itna bada code sirf summary milegi. Aage badhein?"))
	lines = append(lines, strings.Repeat(" ", modalWidth))

	messageSection := lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Width(modalWidth).
		Render(strings.Join(lines, "\n"))

	footerSection := lipgloss.NewStyle().
		Foreground(dimColor).
		Align(lipgloss.Center).
		Width(modalWidth).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(dimColor).
		Render(FormatFooter("y", "Yes", "n", "No"))

	content := strings.Join([]string{titleSection, messageSection, footerSection}, "\n")
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, content)
}
