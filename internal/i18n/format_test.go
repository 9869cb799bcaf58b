package i18n

import "testing"

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		locale Locale
		want   string
	}{
		{"english", "2024-03-15", LocaleEN, "15 March 2024"},
		{"dutch", "2024-03-15", LocaleNL, "15 maart 2024"},
		{"german ordinal", "2024-03-15", LocaleDE, "15. März 2024"},
		{"french", "2024-08-01", LocaleFR, "1 août 2024"},
		{"spanish", "2024-01-03", LocaleES, "3 de enero de 2024"},
		{"italian", "2024-01-03", LocaleIT, "3 gennaio 2024"},
		{"unknown locale falls back to english", "2024-03-15", Locale("xx"), "15 March 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.input, tt.locale); got != tt.want {
				t.Errorf("FormatDate(%q, %q) = %q, want %q", tt.input, tt.locale, got, tt.want)
			}
		})
	}
}

func TestFormatDate_MalformedInputUnchanged(t *testing.T) {
	// Display text must never fail: bad input passes through verbatim
	inputs := []string{"", "not-a-date", "2024-13-99", "15/03/2024", "2024"}

	for _, input := range inputs {
		if got := FormatDate(input, LocaleEN); got != input {
			t.Errorf("FormatDate(%q) = %q, want input unchanged", input, got)
		}
	}
}
