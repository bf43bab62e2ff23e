// Package frontmatter extracts the delimited metadata header from a
// markdown document.
//
// Documents may begin with a header fenced by lines containing only three
// hyphens. The header holds key/value pairs, inline lists ([a, b, c]), and
// indented bullet lists. Absent or malformed headers are a normal case:
// Parse never fails, it simply returns empty metadata and the original
// text as the body.
package frontmatter

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta maps frontmatter keys to either a scalar string or an ordered list
// of strings.
type Meta map[string]any

// String returns the scalar value for key, or "" when absent or a list.
func (m Meta) String(key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// List returns the list value for key. A scalar value is comma-split so
// "a, b" and ["a", "b"] read the same way.
func (m Meta) List(key string) []string {
	switch v := m[key].(type) {
	case []string:
		return v
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		var out []string
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	default:
		return nil
	}
}

var (
	headerRe     = regexp.MustCompile(`(?s)\A---[ \t]*\n(.*?)\n---[ \t]*\n?(.*)\z`)
	keyLineRe    = regexp.MustCompile(`^([A-Za-z0-9_][\w\- ]*):\s*(.*)$`)
	bulletLineRe = regexp.MustCompile(`^\s+-\s*(.*)$`)
)

// Parse splits content into header metadata and body text. The body is
// returned verbatim; trimming is the caller's concern.
func Parse(content string) (Meta, string) {
	m := headerRe.FindStringSubmatch(content)
	if m == nil {
		return Meta{}, content
	}
	header, body := m[1], m[2]

	// YAML is the common case for well-formed headers. Agent and skill
	// files in the wild often carry unquoted colons in description
	// values, which YAML rejects; the line scanner picks those up.
	if meta, ok := parseYAML(header); ok {
		return meta, body
	}
	return scanHeader(header), body
}

func parseYAML(header string) (Meta, bool) {
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(header), &raw); err != nil {
		return nil, false
	}
	meta := make(Meta, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			meta[k] = val
		case []any:
			items := make([]string, 0, len(val))
			for _, item := range val {
				items = append(items, strings.TrimSpace(fmt.Sprint(item)))
			}
			meta[k] = items
		case nil:
			meta[k] = ""
		default:
			meta[k] = fmt.Sprint(val)
		}
	}
	return meta, true
}

// scanHeader recovers metadata from headers YAML cannot decode. A list in
// progress is flushed when a new unindented key line appears or the
// header ends.
func scanHeader(header string) Meta {
	meta := Meta{}
	var listKey string
	var list []string

	flush := func() {
		if listKey != "" {
			meta[listKey] = list
			listKey, list = "", nil
		}
	}

	for _, line := range strings.Split(header, "\n") {
		if m := bulletLineRe.FindStringSubmatch(line); m != nil && listKey != "" {
			list = append(list, strings.TrimSpace(m[1]))
			continue
		}
		km := keyLineRe.FindStringSubmatch(line)
		if km == nil {
			continue
		}
		flush()
		key := strings.TrimSpace(km[1])
		value := strings.TrimSpace(km[2])
		switch {
		case value == "":
			// Possible start of a bullet list.
			listKey, list = key, []string{}
		case strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]"):
			meta[key] = splitInlineList(value)
		default:
			meta[key] = value
		}
	}
	flush()
	return meta
}

func splitInlineList(value string) []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
	var items []string
	for _, item := range strings.Split(inner, ",") {
		item = strings.Trim(strings.TrimSpace(item), `"'`)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
