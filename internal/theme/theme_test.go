package theme

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGetStyleFallback(t *testing.T) {
	def := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	title := tcell.StyleDefault.Bold(true)
	th := &Theme{
		Name: "test",
		Styles: map[string]tcell.Style{
			StyleDefault: def,
			StyleTitle:   title,
		},
	}

	tests := []struct {
		name string
		want tcell.Style
	}{
		{StyleTitle, title},
		{"Title.path", title},
		{StyleBorder, def},
		{"nonsense", def},
	}
	for _, tt := range tests {
		if got := th.GetStyle(tt.name); got != tt.want {
			t.Errorf("GetStyle(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	var nilTheme *Theme
	if got := nilTheme.GetStyle(StyleBorder); got != tcell.StyleDefault {
		t.Errorf("nil theme style = %v, want tcell default", got)
	}
}

func TestBuiltinThemesDefineUIStyles(t *testing.T) {
	for _, th := range builtinThemes() {
		for _, name := range []string{StyleDefault, StyleBorder, StyleTitle} {
			if _, ok := th.Styles[name]; !ok {
				t.Errorf("theme %q lacks style %q", th.Name, name)
			}
		}
	}
}

func TestParseTheme(t *testing.T) {
	data := []byte(`
name = "Ocean"
is_dark = true

[styles.Default]
fg = "#c0c5ce"
bg = "reset"

[styles.Title]
fg = "yellow"
bold = true

[styles.Border]
fg = "not-a-color"
`)
	th, err := ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.Name != "Ocean" || !th.IsDark {
		t.Errorf("theme = %q dark=%v", th.Name, th.IsDark)
	}

	base := tcell.StyleDefault.Foreground(tcell.NewHexColor(0xc0c5ce)).Background(tcell.ColorReset)
	if got := th.Styles[StyleDefault]; got != base {
		t.Errorf("Default = %v, want %v", got, base)
	}
	if got, want := th.Styles[StyleTitle], base.Foreground(tcell.ColorYellow).Bold(true); got != want {
		t.Errorf("Title = %v, want %v", got, want)
	}
	if _, ok := th.Styles[StyleBorder]; ok {
		t.Error("style with a bad color should be skipped")
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#ff0000", tcell.NewHexColor(0xff0000), false},
		{" #FF0000 ", tcell.NewHexColor(0xff0000), false},
		{"reset", tcell.ColorReset, false},
		{"default", tcell.ColorDefault, false},
		{"Red", tcell.ColorRed, false},
		{"#fff", tcell.NewHexColor(0xffffff), false},
		{"#gggggg", tcell.ColorDefault, true},
		{"chartreuse-ish", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := parseColorString(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseColorString(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseColorString(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestManagerLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"sunset.toml":  "name = \"Sunset\"\n[styles.Default]\nfg = \"#ffaa00\"\n",
		"unnamed.toml": "[styles.Default]\nfg = \"red\"\n",
		"broken.toml":  "name = \n",
		"notes.txt":    "ignored",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	mgr := NewManager(dir)
	want := []string{"DevComfort Dark", "Plain", "Sunset", "unnamed"}
	if got := mgr.ListThemes(); !slices.Equal(got, want) {
		t.Errorf("ListThemes() = %q, want %q", got, want)
	}

	if mgr.Current().Name != DefaultThemeName {
		t.Errorf("initial theme = %q, want %q", mgr.Current().Name, DefaultThemeName)
	}
	if err := mgr.SetTheme("sunset"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if mgr.Current().Name != "Sunset" {
		t.Errorf("active theme = %q, want Sunset", mgr.Current().Name)
	}
	if err := mgr.SetTheme("missing"); err == nil {
		t.Error("SetTheme of an unknown theme should fail")
	}
	if _, ok := mgr.GetTheme("PLAIN"); !ok {
		t.Error("GetTheme should be case-insensitive")
	}
}

func TestManagerMissingDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent"))
	if got := len(mgr.ListThemes()); got != len(builtinThemes()) {
		t.Errorf("got %d themes, want builtins only", got)
	}
}
