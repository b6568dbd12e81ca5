package ui

import "testing"

func TestThemeNames_AllBuiltin(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(BuiltinThemes) {
		t.Errorf("ThemeNames() has %d entries, BuiltinThemes has %d", len(names), len(BuiltinThemes))
	}
	for _, name := range names {
		theme, ok := BuiltinThemes[name]
		if !ok {
			t.Errorf("theme %q missing from BuiltinThemes", name)
			continue
		}
		required := map[string]string{
			"Primary":   theme.Primary,
			"Bg":        theme.Bg,
			"Text":      theme.Text,
			"User":      theme.User,
			"Assistant": theme.Assistant,
			"Success":   theme.Success,
			"Warning":   theme.Warning,
			"CodeStyle": theme.CodeStyle,
		}
		for field, value := range required {
			if value == "" {
				t.Errorf("theme %q has empty %s", name, field)
			}
		}
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("no-such-theme"); got.Name != BuiltinThemes[DefaultTheme].Name {
		t.Errorf("GetTheme(unknown) = %q, want default", got.Name)
	}
	if got := GetTheme(ThemeNord); got.Name != "Nord" {
		t.Errorf("GetTheme(nord) = %q", got.Name)
	}
}

func TestSetThemeByName(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme) })

	if !SetThemeByName("dracula") {
		t.Error("SetThemeByName(dracula) should succeed")
	}
	if CurrentThemeName() != ThemeDracula {
		t.Errorf("CurrentThemeName() = %q", CurrentThemeName())
	}
	if CurrentTheme().Primary != BuiltinThemes[ThemeDracula].Primary {
		t.Error("CurrentTheme() not updated")
	}

	if SetThemeByName("bogus") {
		t.Error("SetThemeByName(bogus) should report failure")
	}
	if CurrentThemeName() != DefaultTheme {
		t.Errorf("unknown theme should select default, got %q", CurrentThemeName())
	}
}

func TestNextTheme_Wraps(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		want := names[(i+1)%len(names)]
		if got := NextTheme(name); got != want {
			t.Errorf("NextTheme(%q) = %q, want %q", name, got, want)
		}
	}
	if got := NextTheme("unknown"); got != names[0] {
		t.Errorf("NextTheme(unknown) = %q, want %q", got, names[0])
	}
}

func TestTheme_Defaults(t *testing.T) {
	theme := Theme{Primary: "#111111"}
	if theme.GetBgSelected() != "#111111" || theme.GetBorderFocus() != "#111111" {
		t.Error("unset selection and focus colors should fall back to Primary")
	}
	theme.BgSelected = "#222222"
	if theme.GetBgSelected() != "#222222" {
		t.Error("GetBgSelected should prefer BgSelected")
	}
}
