package textutil

import (
	"strings"
	"testing"
)

func TestFixNameCasing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "whole string abbreviation", input: "github", want: "GitHub"},
		{name: "per word independent", input: "ui ux designer", want: "UI UX designer"},
		{name: "compound slash", input: "Ui/Ux", want: "UI/UX"},
		{name: "mid sentence", input: "Senior Qa Engineer", want: "Senior QA Engineer"},
		{name: "no abbreviations", input: "Chief Of Staff", want: "Chief Of Staff"},
		{name: "devops", input: "Devops Lead", want: "DevOps Lead"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixNameCasing(tt.input); got != tt.want {
				t.Errorf("FixNameCasing(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "multi word slug", input: "chief-of-staff", want: "Chief Of Staff"},
		{name: "abbreviation in slug", input: "qa-lead", want: "QA Lead"},
		{name: "single word", input: "engineer", want: "Engineer"},
		{name: "brand word", input: "github-admin", want: "GitHub Admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Humanize(tt.input); got != tt.want {
				t.Errorf("Humanize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestShortenDescription(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "already fits",
			input:  "Short and sweet",
			maxLen: 40,
			want:   "Short and sweet",
		},
		{
			name:   "specializing pattern",
			input:  "Expert frontend developer specializing in react components, accessibility, and performance tuning.",
			maxLen: 40,
			want:   "React Components & accessibility",
		},
		{
			name:   "covering pattern",
			input:  "Handles quality assurance covering regression suites, release gates, and bug triage every sprint.",
			maxLen: 40,
			want:   "Regression Suites & release gates",
		},
		{
			name:   "for pattern skips article",
			input:  "Deep research agent built for a wide variety of long-horizon investigation tasks across the company.",
			maxLen: 40,
			want:   "Deep research agent built for a wide ...",
		},
		{
			name:   "first clause fallback",
			input:  "Owns the roadmap and backlog, keeps stakeholders aligned, and reports progress weekly without fail",
			maxLen: 40,
			want:   "Owns The Roadmap And Backlog",
		},
		{
			name:   "empty",
			input:  "",
			maxLen: 40,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortenDescription(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("ShortenDescription(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Truncation must bound output length whenever neither named pattern
// matches the input.
func TestShortenDescriptionLengthBound(t *testing.T) {
	input := strings.Repeat("x", 500)
	for _, maxLen := range []int{10, 40, 80} {
		got := ShortenDescription(input, maxLen)
		if len([]rune(got)) > maxLen {
			t.Errorf("len(ShortenDescription(_, %d)) = %d, want <= %d", maxLen, len([]rune(got)), maxLen)
		}
	}
}

// A shortened value that fits the budget must pass through unchanged on a
// second application.
func TestShortenDescriptionIdempotent(t *testing.T) {
	inputs := []string{
		"Owns the roadmap and backlog, keeps stakeholders aligned, and reports progress weekly without fail",
		strings.Repeat("word ", 30),
		"Expert frontend developer specializing in react components, accessibility, and performance tuning.",
	}
	for _, input := range inputs {
		once := ShortenDescription(input, 40)
		if len([]rune(once)) > 40 {
			continue
		}
		twice := ShortenDescription(once, 40)
		if once != twice {
			t.Errorf("ShortenDescription not idempotent: %q → %q", once, twice)
		}
	}
}
