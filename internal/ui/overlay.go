// Package ui renders the terminal preview. The overlay renderer is the only
// place that interprets a RenderSpec; all style-to-attribute rules live in
// the timeline package.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yoursandeshshrestha/videoable/internal/timeline"
)

// referenceFrameHeight is the nominal source frame height in pixels used to
// translate pixel margins into terminal rows.
const referenceFrameHeight = 720

// Overlay renders the subtitle overlay for one frame of the preview box.
// Empty text yields a fully blank frame: no box, no residue of the previous
// subtitle.
func Overlay(spec timeline.RenderSpec, text string, width, height int) string {
	if text == "" || width <= 0 || height <= 0 {
		return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, "")
	}

	box := boxStyle(spec, width).Render(text)

	switch spec.Anchor {
	case timeline.AnchorCenter:
		// True centering: 50%/50%, offset by half the box's own size,
		// which is what lipgloss.Center does.
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	case timeline.AnchorTop:
		return lipgloss.Place(width, height, lipgloss.Center, anchoredPosition(spec, box, height, false), box)
	default:
		return lipgloss.Place(width, height, lipgloss.Center, anchoredPosition(spec, box, height, true), box)
	}
}

func boxStyle(spec timeline.RenderSpec, maxWidth int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MaxWidth(maxWidth).
		Foreground(lipgloss.Color(spec.FontColor))

	if !spec.Transparent {
		// Terminal cells have no alpha channel; the blended color is
		// approximated by the base color.
		style = style.Background(lipgloss.Color(stripAlpha(spec.Background)))
	}

	if spec.OutlineWidth > 0 {
		style = style.
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(spec.OutlineColor))
	}

	return style
}

// anchoredPosition converts the pixel margin into a fractional vertical
// placement for the box inside the frame.
func anchoredPosition(spec timeline.RenderSpec, box string, height int, fromBottom bool) lipgloss.Position {
	avail := height - lipgloss.Height(box)
	if avail <= 0 {
		if fromBottom {
			return lipgloss.Bottom
		}
		return lipgloss.Top
	}

	rows := spec.MarginVertical * height / referenceFrameHeight
	frac := float64(rows) / float64(avail)
	if frac > 1 {
		frac = 1
	}
	if fromBottom {
		frac = 1 - frac
	}
	return lipgloss.Position(frac)
}

// stripAlpha drops an 8-digit hex color's alpha suffix.
func stripAlpha(color string) string {
	if strings.HasPrefix(color, "#") && len(color) == 9 {
		return color[:7]
	}
	return color
}
