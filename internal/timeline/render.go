package timeline

import "github.com/yoursandeshshrestha/videoable/internal/editstate"

// Anchor is the resolved vertical anchor for the overlay box.
type Anchor int

const (
	AnchorBottom Anchor = iota
	AnchorTop
	AnchorCenter
)

// backgroundAlpha is the fixed alpha suffix blended into a supplied
// background color, matching the burned-in export.
const backgroundAlpha = "80"

// RenderSpec is the fully resolved set of attributes the overlay renderer
// applies for one style. All style-to-display rules live here so the
// renderer itself stays mechanical.
type RenderSpec struct {
	FontFamily string
	FontSize   int
	FontColor  string

	// Background is the blended background color ("#RRGGBBAA"). Transparent
	// is false only when a real background should be painted.
	Background  string
	Transparent bool

	// Outline is applied only when OutlineWidth > 0.
	OutlineWidth int
	OutlineColor string

	Anchor Anchor
	// MarginVertical offsets the box from the anchored edge. Zero for the
	// center anchor, which is placed at 50%/50% translated by half the box
	// size instead.
	MarginVertical   int
	MarginHorizontal int
}

// RenderAttributes maps a style configuration to render attributes:
//
//   - top: MarginVertical from the top edge, horizontally centered
//   - center: 50% vertical and horizontal, translated by half the box size
//   - bottom (default): MarginVertical from the bottom edge, centered
//
// The background color is rendered with a fixed alpha blended in unless it
// is empty or "transparent", in which case no background is painted. An
// outline is applied only for a positive width, regardless of outline color.
func RenderAttributes(style editstate.StyleConfig) RenderSpec {
	spec := RenderSpec{
		FontFamily:       style.FontFamily,
		FontSize:         style.FontSize,
		FontColor:        style.FontColor,
		OutlineColor:     style.OutlineColor,
		MarginHorizontal: style.MarginHorizontal,
	}

	if style.BackgroundColor == "" || style.BackgroundColor == "transparent" {
		spec.Transparent = true
	} else {
		spec.Background = style.BackgroundColor + backgroundAlpha
	}

	if style.OutlineWidth > 0 {
		spec.OutlineWidth = style.OutlineWidth
	}

	switch style.Position {
	case editstate.PositionTop:
		spec.Anchor = AnchorTop
		spec.MarginVertical = style.MarginVertical
	case editstate.PositionCenter:
		spec.Anchor = AnchorCenter
	default:
		spec.Anchor = AnchorBottom
		spec.MarginVertical = style.MarginVertical
	}

	return spec
}
