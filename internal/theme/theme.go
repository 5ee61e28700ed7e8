// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/glance/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names the renderer and painter ask for.
const (
	StyleDefault = "Default"
	StyleBorder  = "Border"
	StyleTitle   = "Title"
)

// Theme maps style names to terminal styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style. Unknown names fall back to the part
// before the first dot, then to Default, then to the terminal default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if t == nil {
		return tcell.StyleDefault
	}
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Builtin themes.
var (
	// Plain uses the terminal's own colors throughout.
	Plain = Theme{
		Name: "Plain",
		Styles: map[string]tcell.Style{
			StyleDefault: tcell.StyleDefault,
			StyleBorder:  tcell.StyleDefault,
			StyleTitle:   tcell.StyleDefault.Bold(true),
		},
	}

	DevComfortDark = newDevComfortDark()
)

// DefaultThemeName is the theme used when none is configured.
const DefaultThemeName = "DevComfort Dark"

func newDevComfortDark() Theme {
	dcForeground := tcell.NewHexColor(0xc5cdd9) // soft off-white
	dcComment := tcell.NewHexColor(0x5c6370)    // muted grey
	dcYellow := tcell.NewHexColor(0xe5c07b)
	dcBlue := tcell.NewHexColor(0x61afef)

	// Terminal background, DevComfort foreground.
	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(dcForeground)

	return Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault: baseStyle,
			StyleBorder:  baseStyle.Foreground(dcComment),
			StyleTitle:   baseStyle.Foreground(dcYellow).Bold(true),
			"Title.path": baseStyle.Foreground(dcBlue).Bold(true),
		},
	}
}

// builtinThemes lists the themes compiled into the binary.
func builtinThemes() []*Theme {
	return []*Theme{&DevComfortDark, &Plain}
}
