package app

import (
	"fmt"
	"strings"

	"github.com/yoursandeshshrestha/videoable/internal/editstate"
	"github.com/yoursandeshshrestha/videoable/internal/ui"
)

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())
	sections = append(sections, m.renderStatusBar())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderPlayerPanel())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderChatPanel())

	if m.errorMessage != "" {
		sections = append(sections, m.renderErrorBar())
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("VIDEOABLE")

	var fileInfo string
	if m.session.VideoFilename != "" {
		fileInfo = ui.DimStyle.Render(" — " + m.session.VideoFilename)
	}

	return title + fileInfo
}

func (m Model) renderStatusBar() string {
	var dot string
	if m.clock.Playing() {
		dot = ui.PlayingDotStyle.Render("▶ PLAYING")
	} else {
		dot = ui.PausedDotStyle.Render("⏸ PAUSED")
	}

	var thinking string
	if m.sending {
		thinking = "  " + ui.SpinnerStyle.Render("⟳ AI")
	}

	var status string
	if m.statusText != "" {
		status = "  " + ui.StatusStyle.Render(m.statusText)
	}

	var download string
	if m.downloadURL != "" {
		download = "  " + ui.DimStyle.Render(m.downloadURL)
	}

	return dot + thinking + status + download
}

// renderPlayerPanel draws the preview frame with the subtitle overlay, then
// the timeline bar and time readout.
func (m Model) renderPlayerPanel() string {
	frameH := m.previewHeight()

	frame := ui.Overlay(m.spec, m.activeText, m.width, frameH)

	bar := m.renderTimelineBar()
	times := fmt.Sprintf("%s / %s", formatTime(m.clock.Position()), formatTime(m.clock.Duration()))

	return frame + "\n" + bar + "\n" + ui.TimestampStyle.Render(times)
}

func (m Model) renderTimelineBar() string {
	barLen := max(10, m.width-2)

	var filled int
	if m.clock.Duration() > 0 {
		filled = int(m.clock.Position() / m.clock.Duration() * float64(barLen))
		if filled > barLen {
			filled = barLen
		}
	}

	return " " + ui.ProgressFilledStyle.Render(strings.Repeat("━", filled)) +
		ui.ProgressEmptyStyle.Render(strings.Repeat("─", barLen-filled))
}

func (m Model) renderChatPanel() string {
	var header string
	if m.focusedPanel == FocusChat {
		header = ui.PanelTitleActiveStyle.Render(fmt.Sprintf("CHAT (%d)", len(m.state.Transcript)))
	} else {
		header = ui.PanelTitleStyle.Render(fmt.Sprintf("CHAT (%d)", len(m.state.Transcript)))
	}

	lines := []string{header}
	contentHeight := m.chatHeight() - 2 // header and input rows

	if !m.loaded && len(m.state.Transcript) == 0 {
		lines = append(lines, ui.DimStyle.Render("  "+m.statusText))
	} else if len(m.state.Transcript) == 0 {
		lines = append(lines, ui.DimStyle.Render(`  Try: "Generate subtitles"`))
	} else {
		display := m.transcriptLines()
		if len(display) > contentHeight {
			display = display[len(display)-contentHeight:]
		}
		lines = append(lines, display...)
	}

	for len(lines) < m.chatHeight()-1 {
		lines = append(lines, "")
	}
	if len(lines) > m.chatHeight()-1 {
		lines = lines[:m.chatHeight()-1]
	}

	lines = append(lines, m.renderInput())
	return strings.Join(lines, "\n")
}

// transcriptLines flattens the transcript into styled, wrapped display
// lines.
func (m Model) transcriptLines() []string {
	textWidth := max(10, m.width-8)

	var out []string
	for _, msg := range m.state.Transcript {
		var label string
		switch {
		case msg.Pending:
			label = ui.PendingStyle.Render("YOU… ")
		case msg.Role == editstate.RoleUser:
			label = ui.UserLabelStyle.Render("YOU  ")
		default:
			label = ui.AssistantLabelStyle.Render("AI   ")
		}

		wrapped := wrapText(msg.Content, textWidth)
		out = append(out, "  "+label+wrapped[0])
		for _, wl := range wrapped[1:] {
			out = append(out, "       "+wl)
		}
	}
	return out
}

func (m Model) renderInput() string {
	prompt := ui.InputPromptStyle.Render("> ")
	if m.sending {
		return prompt + ui.DimStyle.Render("waiting for reply...")
	}
	cursor := ""
	if m.focusedPanel == FocusChat {
		cursor = "▌"
	}
	return prompt + m.input + cursor
}

func (m Model) renderErrorBar() string {
	return ui.ErrorStyle.Render("Error: ") + ui.ErrorTextStyle.Render(m.errorMessage)
}

func (m Model) renderFooter() string {
	var parts []string

	if m.focusedPanel == FocusChat {
		parts = append(parts,
			ui.FooterKeyStyle.Render("Enter")+ui.FooterDescStyle.Render(" Send"),
			ui.FooterKeyStyle.Render("Esc")+ui.FooterDescStyle.Render(" Player"))
	} else {
		if m.clock.Playing() {
			parts = append(parts, ui.FooterKeyStyle.Render("Space")+ui.FooterDescStyle.Render(" Pause"))
		} else {
			parts = append(parts, ui.FooterKeyStyle.Render("Space")+ui.FooterDescStyle.Render(" Play"))
		}
		parts = append(parts,
			ui.FooterKeyStyle.Render("←→")+ui.FooterDescStyle.Render(" Seek"),
			ui.FooterKeyStyle.Render("0-9")+ui.FooterDescStyle.Render(" Jump"),
			ui.FooterKeyStyle.Render("e")+ui.FooterDescStyle.Render(" Export"),
			ui.FooterKeyStyle.Render("i")+ui.FooterDescStyle.Render(" Chat"),
			ui.FooterKeyStyle.Render("q")+ui.FooterDescStyle.Render(" Quit"))
	}

	return strings.Join(parts, "  ")
}

// previewHeight reserves a little under half the screen for the preview.
func (m Model) previewHeight() int {
	if m.height == 0 {
		return 12
	}
	return max(6, (m.height-10)*45/100)
}

func (m Model) chatHeight() int {
	if m.height == 0 {
		return 10
	}
	// Header(1) + status(1) + dividers(2) + bar(1) + times(1) + footer(1)
	// + error slack.
	reserved := m.previewHeight() + 8
	return max(4, m.height-reserved)
}

func formatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Helpers

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if len(current)+1+len(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		if current != "" {
			lines = append(lines, current)
		} else {
			lines = append(lines, "")
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
