package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPreprocessResume(t *testing.T) {
	raw := "Jane Doe   Software Engineer • Built APIs EXPERIENCE Acme 2019 - 2022 did things"

	got := preprocessResume(raw)
	require.Contains(t, got, "\n• Built APIs")
	require.Contains(t, got, "\n\nEXPERIENCE")
	require.Contains(t, got, "2019 - 2022\n")
	require.NotContains(t, got, "  ")
}

func TestParseYears(t *testing.T) {
	tests := []struct {
		name       string
		experience string
		want       int
	}{
		{"single position", "3 years as a developer", 3},
		{"mention mid-sentence", "Software Engineer with 3 years at Acme", 3},
		{"yrs abbreviation", "4 yrs experience building services", 4},
		{"case insensitive", "5 YEARS leading a platform team", 5},
		{"summed positions", "2 years at Acme\n4 years at Globex", 6},
		{"date range fallback", "Acme Corp, 2019 - 2024", 5},
		{"summed date ranges", "Acme 2015 - 2018\nGlobex 2019 - 2023", 7},
		{"explicit mention wins over ranges", "3 years at Acme (2015 - 2020)", 3},
		{"no years mentioned", "Developer at Acme", 0},
		{"no digits", "worked for years at Acme", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseYears(tt.experience))
		})
	}
}

func TestParseYearsOpenEndedRange(t *testing.T) {
	want := time.Now().Year() - 2020
	require.Equal(t, want, parseYears("Acme Corp, 2020 - Present"))
	require.Equal(t, want, parseYears("Acme Corp, 2020 - current"))
}

func TestCountLines(t *testing.T) {
	require.Equal(t, 0, countLines(""))
	require.Equal(t, 2, countLines("AWS Certified Developer\n\nCKA"))
}
