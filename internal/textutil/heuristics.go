// Package textutil provides small pure text heuristics for deriving
// card-friendly display labels from free-form descriptions and slugs.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultShortLen is the card label budget used by discovery.
const DefaultShortLen = 40

// abbreviations maps lowercase words to their canonical casing. Words not
// in the table are left as received.
var abbreviations = map[string]string{
	"qa":       "QA",
	"ui":       "UI",
	"ux":       "UX",
	"ui/ux":    "UI/UX",
	"api":      "API",
	"ci":       "CI",
	"cd":       "CD",
	"pr":       "PR",
	"prd":      "PRD",
	"cto":      "CTO",
	"ceo":      "CEO",
	"devops":   "DevOps",
	"bizops":   "BizOps",
	"github":   "GitHub",
	"devtools": "DevTools",
}

var (
	// specializingRe matches "specializing in X, Y, and Z" up to the
	// first period.
	specializingRe = regexp.MustCompile(`specializing in ([^.]+)`)
	// coveringRe matches "for X" or "covering X" phrases.
	coveringRe = regexp.MustCompile(`(?:for|covering) ([^.]+)`)
	// articleRe detects targets that begin with an article word.
	articleRe = regexp.MustCompile(`(?i)^(?:a|an|the)\s`)
	// listSplitRe splits "X, Y, and Z" style enumerations.
	listSplitRe = regexp.MustCompile(`,\s*(?:and\s+)?`)
)

// FixNameCasing replaces whole-string or per-word matches against the
// abbreviation table with their canonical casing.
//
// Example: "ui ux designer" → "UI UX designer" (word matches apply
// independently of position).
func FixNameCasing(name string) string {
	if fixed, ok := abbreviations[strings.ToLower(name)]; ok {
		return fixed
	}
	words := strings.Split(name, " ")
	for i, w := range words {
		if fixed, ok := abbreviations[strings.ToLower(w)]; ok {
			words[i] = fixed
		}
	}
	return strings.Join(words, " ")
}

// TitleCase capitalizes the first letter of every word and lowercases the
// rest. A word boundary is any non-letter rune, so "ui/ux" becomes "Ui/Ux".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}

// Humanize converts a slug like "chief-of-staff" into a display name,
// applying abbreviation-aware casing ("qa-lead" → "QA Lead").
func Humanize(slug string) string {
	return FixNameCasing(TitleCase(strings.ReplaceAll(slug, "-", " ")))
}

// ShortenDescription shortens a long description to a card-friendly label
// of at most maxLen characters when no named pattern matches.
//
// Attempts, in order:
//  1. "specializing in X, Y, and Z" → "X & Y"
//  2. "for/covering X, Y, and Z" → "X & Y" (skipped when X begins with
//     an article)
//  3. first sentence, then first clause, title-cased when within budget
//  4. hard truncation of the first sentence with an ellipsis
//
// Every returned value passes through FixNameCasing.
func ShortenDescription(desc string, maxLen int) string {
	if desc == "" || len([]rune(desc)) <= maxLen {
		return desc
	}
	if m := specializingRe.FindStringSubmatch(desc); m != nil {
		return FixNameCasing(joinPair(m[1]))
	}
	if m := coveringRe.FindStringSubmatch(desc); m != nil {
		target := strings.TrimSpace(m[1])
		if !articleRe.MatchString(target) {
			return FixNameCasing(joinPair(target))
		}
	}
	first := strings.SplitN(desc, ".", 2)[0]
	clause := strings.SplitN(first, ",", 2)[0]
	if len([]rune(clause)) <= maxLen {
		return FixNameCasing(TitleCase(clause))
	}
	if len([]rune(first)) <= maxLen {
		return FixNameCasing(TitleCase(first))
	}
	runes := []rune(first)
	return FixNameCasing(string(runes[:maxLen-3]) + "...")
}

// joinPair takes an "X, Y, and Z" enumeration and joins the first two
// items with " & ", title-casing the first.
func joinPair(enumeration string) string {
	parts := listSplitRe.Split(enumeration, -1)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) >= 2 && parts[1] != "" {
		return TitleCase(parts[0]) + " & " + parts[1]
	}
	return TitleCase(parts[0])
}
