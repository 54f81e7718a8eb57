package log

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color is a terminal color: an ANSI index ("0" through "255") or a hex RGB
// value ("#5fafff"). The empty Color draws text unstyled.
type Color string

// Standard and bright ANSI colors.
const (
	ColorNone          Color = ""
	ColorBlack         Color = "0"
	ColorRed           Color = "1"
	ColorGreen         Color = "2"
	ColorYellow        Color = "3"
	ColorBlue          Color = "4"
	ColorMagenta       Color = "5"
	ColorCyan          Color = "6"
	ColorWhite         Color = "7"
	ColorBrightBlack   Color = "8"
	ColorBrightRed     Color = "9"
	ColorBrightGreen   Color = "10"
	ColorBrightYellow  Color = "11"
	ColorBrightBlue    Color = "12"
	ColorBrightMagenta Color = "13"
	ColorBrightCyan    Color = "14"
	ColorBrightWhite   Color = "15"
)

var colorNames = []struct {
	name  string
	color Color
}{
	{"none", ColorNone},
	{"black", ColorBlack},
	{"red", ColorRed},
	{"green", ColorGreen},
	{"yellow", ColorYellow},
	{"blue", ColorBlue},
	{"magenta", ColorMagenta},
	{"cyan", ColorCyan},
	{"white", ColorWhite},
	{"bright-black", ColorBrightBlack},
	{"bright-red", ColorBrightRed},
	{"bright-green", ColorBrightGreen},
	{"bright-yellow", ColorBrightYellow},
	{"bright-blue", ColorBrightBlue},
	{"bright-magenta", ColorBrightMagenta},
	{"bright-cyan", ColorBrightCyan},
	{"bright-white", ColorBrightWhite},
}

// colorAliases are accepted by [ParseColor] but never produced by
// [Color.String].
var colorAliases = map[string]Color{
	"gray":   ColorBrightBlack,
	"grey":   ColorBrightBlack,
	"purple": ColorMagenta,
}

// ParseColor parses a color name ("bright-blue", "BrightBlue",
// "bright_blue"), an ANSI index ("12") or a hex RGB value ("#5fafff" or
// "#5af"). The names "" and "none" yield [ColorNone].
func ParseColor(s string) (Color, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return ColorNone, nil
	}

	if strings.HasPrefix(text, "#") {
		if isHexColor(text[1:]) {
			return Color(strings.ToLower(text)), nil
		}

		return ColorNone, invalid(ErrInvalidColor, "color", s, nil)
	}

	if n, err := strconv.Atoi(text); err == nil {
		if n >= 0 && n <= 255 {
			return Color(strconv.Itoa(n)), nil
		}

		return ColorNone, invalid(ErrInvalidColor, "color", s, nil)
	}

	key := normalizeColorName(text)
	for _, c := range colorNames {
		if key == normalizeColorName(c.name) {
			return c.color, nil
		}
	}

	if c, ok := colorAliases[key]; ok {
		return c, nil
	}

	names := make([]string, len(colorNames))
	for i, c := range colorNames {
		names[i] = c.name
	}

	return ColorNone, invalid(ErrInvalidColor, "color", s, names)
}

// String returns the name of c if it has one, otherwise c verbatim.
func (c Color) String() string {
	for _, n := range colorNames {
		if n.color == c {
			return n.name
		}
	}

	return string(c)
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}

	*c = color

	return nil
}

func normalizeColorName(s string) string {
	return strings.Map(
		func(r rune) rune {
			switch r {
			case '-', '_', ' ':
				return -1
			}

			return r
		},
		strings.ToLower(s),
	)
}

func isHexColor(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}

	_, err := strconv.ParseUint(s, 16, 32)

	return err == nil
}

// ColorMode selects when colors are emitted.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // auto
	ColorAlways                  // always
	ColorNever                   // never
)

var colorModeNames = []string{"auto", "always", "never"}

func (m ColorMode) String() string {
	if m >= 0 && int(m) < len(colorModeNames) {
		return colorModeNames[m]
	}

	return colorModeNames[ColorAuto]
}

// ParseColorMode parses "auto", "always" or "never". The aliases "true",
// "on" and "false", "off" map to always and never.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "true", "on":
		return ColorAlways, nil
	case "never", "false", "off":
		return ColorNever, nil
	}

	return ColorAuto, invalid(ErrInvalidColorMode, "color", s, colorModeNames)
}

// MarshalText implements [encoding.TextMarshaler].
func (m ColorMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *ColorMode) UnmarshalText(text []byte) error {
	mode, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}

	*m = mode

	return nil
}

// renderer returns a lipgloss renderer for w. In auto mode the color
// profile is detected from w; otherwise it is forced.
func (m ColorMode) renderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)

	switch m {
	case ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return r
}

// style returns a style drawing text in c.
func (c Color) style(r *lipgloss.Renderer) lipgloss.Style {
	s := r.NewStyle()
	if c != ColorNone {
		s = s.Foreground(lipgloss.Color(c))
	}

	return s
}
