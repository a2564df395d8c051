package styles

import (
	"bytes"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/textctl/internal/config"
)

func TestSelectTheme(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.ThemeConfig
		want Theme
	}{
		{"empty config", config.ThemeConfig{Mode: "dark"}, DefaultTheme},
		{"dracula", config.ThemeConfig{Name: "dracula", Mode: "dark"}, DraculaTheme},
		{"dark only family ignores light mode", config.ThemeConfig{Name: "dracula", Mode: "light"}, DraculaTheme},
		{"nord dark", config.ThemeConfig{Name: "nord", Mode: "dark"}, NordTheme},
		{"nord light", config.ThemeConfig{Name: "nord", Mode: "light"}, NordLightTheme},
		{"none", config.ThemeConfig{Name: "none", Mode: "light"}, NoneTheme},
		{"default auto needs no terminal query", config.ThemeConfig{Name: "default", Mode: "auto"}, DefaultTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectTheme(tt.cfg); got != tt.want {
				t.Errorf("selectTheme(%+v) = %+v, want %+v", tt.cfg, got, tt.want)
			}
		})
	}
}

func TestInit_NoColorWriter(t *testing.T) {
	var buf bytes.Buffer
	Init(config.ThemeConfig{Name: "nord", Mode: "dark"}, &buf)
	defer applyTheme(DefaultTheme)

	if Current() != NoneTheme {
		t.Errorf("Current() = %+v, want NoneTheme for a non-terminal writer", Current())
	}
	if SupportsColor(&buf) {
		t.Error("SupportsColor should be false for a buffer")
	}
	if got := SuccessStyle.Render("ok"); got != "ok" {
		t.Errorf("SuccessStyle.Render = %q, want plain text", got)
	}
}

func TestFormatResult(t *testing.T) {
	applyTheme(DefaultTheme)

	if got := ansi.Strip(FormatResult(true)); got != SymbolOK {
		t.Errorf("FormatResult(true) = %q, want %q", got, SymbolOK)
	}
	if got := ansi.Strip(FormatResult(false)); got != SymbolFail {
		t.Errorf("FormatResult(false) = %q, want %q", got, SymbolFail)
	}
}

func TestDefaultThemeColors(t *testing.T) {
	if DefaultTheme.Primary != lipgloss.Color("62") {
		t.Errorf("expected default primary color 62, got %v", DefaultTheme.Primary)
	}
	for name := range themeFamilies {
		found := false
		for _, valid := range config.ValidThemeNames {
			if valid == name {
				found = true
			}
		}
		if !found {
			t.Errorf("theme %q missing from config.ValidThemeNames", name)
		}
	}
}
