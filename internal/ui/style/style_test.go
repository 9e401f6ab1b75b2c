package style

import (
	"os"
	"strings"
	"testing"
)

func TestDisabledReturnsPlainText(t *testing.T) {
	// Ensure no env vars interfere
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("GTDIALOG_NO_COLOR")

	Init(false, nil)

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Success", Success},
		{"Warning", Warning},
		{"Error", Error},
		{"Info", Info},
		{"Header", Header},
		{"Muted", Muted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			if output != input {
				t.Errorf("%s() with disabled styling: got %q, want %q", tt.name, output, input)
			}

			// Verify no ANSI escape codes
			if strings.Contains(output, "\x1b[") {
				t.Errorf("%s() with disabled styling contains ANSI codes: %q", tt.name, output)
			}
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	// Ensure no env vars interfere
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("GTDIALOG_NO_COLOR")

	Init(true, nil)

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Success", Success},
		{"Warning", Warning},
		{"Error", Error},
		{"Info", Info},
		{"Header", Header},
		{"Muted", Muted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			// Output should contain the original text
			if !strings.Contains(output, input) {
				t.Errorf("%s() output %q does not contain input %q", tt.name, output, input)
			}

			// Output should contain ANSI escape codes when enabled
			if !strings.Contains(output, "\x1b[") {
				t.Errorf("%s() with enabled styling should contain ANSI codes: %q", tt.name, output)
			}
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	Init(true, nil) // Try to enable, but NO_COLOR should override

	if Enabled() {
		t.Error("Enabled() should return false when NO_COLOR is set")
	}

	input := "test"
	output := Success(input)
	if output != input {
		t.Errorf("Success() should return plain text when NO_COLOR is set: got %q, want %q", output, input)
	}
}

func TestAppNoColorEnvDisablesStyling(t *testing.T) {
	os.Setenv("GTDIALOG_NO_COLOR", "1")
	defer os.Unsetenv("GTDIALOG_NO_COLOR")

	Init(true, nil) // Try to enable, but GTDIALOG_NO_COLOR should override

	if Enabled() {
		t.Error("Enabled() should return false when GTDIALOG_NO_COLOR is set")
	}

	input := "test"
	output := Warning(input)
	if output != input {
		t.Errorf("Warning() should return plain text when GTDIALOG_NO_COLOR is set: got %q, want %q", output, input)
	}
}

func TestEnabledReturnsCorrectState(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("GTDIALOG_NO_COLOR")

	Init(false, nil)
	if Enabled() {
		t.Error("Enabled() should return false after Init(false, nil)")
	}

	Init(true, nil)
	if !Enabled() {
		t.Error("Enabled() should return true after Init(true, nil)")
	}
}

func TestEmptyStringHandling(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("GTDIALOG_NO_COLOR")

	// Test with disabled
	Init(false, nil)
	if got := Success(""); got != "" {
		t.Errorf("Success(\"\") with disabled styling: got %q, want \"\"", got)
	}

	// Focus stays visible without color
	if got := Focus("Ok"); got != "[Ok]" {
		t.Errorf("Focus() with disabled styling: got %q, want %q", got, "[Ok]")
	}
}

func TestLoadColorConfig(t *testing.T) {
	os.Unsetenv("GTDIALOG_THEME")
	os.Unsetenv("GTDIALOG_COLOR_FOCUS")

	cfg := map[string]string{"theme": "ocean-light", "color_focus": "205"}
	got := LoadColorConfig(cfg)

	want := Themes["ocean-light"]
	want.Focus = "205"
	if got != want {
		t.Errorf("LoadColorConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadColorConfigEnvWins(t *testing.T) {
	t.Setenv("GTDIALOG_THEME", "contrast-dark")
	t.Setenv("GTDIALOG_COLOR_BORDER", "1")

	got := LoadColorConfig(map[string]string{"theme": "mono-light", "color_border": "2"})

	if got.Success != Themes["contrast-dark"].Success {
		t.Errorf("theme from env not applied: %+v", got)
	}
	if got.Border != "1" {
		t.Errorf("Border = %q, want %q", got.Border, "1")
	}
}

func TestLoadColorConfigUnknownTheme(t *testing.T) {
	os.Unsetenv("GTDIALOG_THEME")

	got := LoadColorConfig(map[string]string{"theme": "plaid-dark"})
	if got != Themes["default-dark"] {
		t.Errorf("unknown theme should fall back to default-dark, got %+v", got)
	}
}

func TestResolveThemeNameKeepsSuffix(t *testing.T) {
	for _, name := range []string{"mono-dark", "ocean-light"} {
		if got := ResolveThemeName(name); got != name {
			t.Errorf("ResolveThemeName(%q) = %q", name, got)
		}
	}
}

func TestThemesCoverBaseNames(t *testing.T) {
	for _, base := range BaseThemeNames {
		for _, variant := range []string{"-dark", "-light"} {
			if _, ok := Themes[base+variant]; !ok {
				t.Errorf("missing theme %s%s", base, variant)
			}
		}
	}
}
