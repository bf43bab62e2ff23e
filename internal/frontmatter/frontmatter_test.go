package frontmatter

import (
	"reflect"
	"testing"
)

func TestParseWellFormedHeader(t *testing.T) {
	content := "---\nname: engineer\nmodel: opus\ndescription: Builds things\n---\n# Engineer\n\nBody text.\n"
	meta, body := Parse(content)

	if got := meta.String("name"); got != "engineer" {
		t.Errorf("name = %q, want %q", got, "engineer")
	}
	if got := meta.String("model"); got != "opus" {
		t.Errorf("model = %q, want %q", got, "opus")
	}
	if body != "# Engineer\n\nBody text.\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseNoHeader(t *testing.T) {
	content := "# Just a document\n\nNo frontmatter here.\n"
	meta, body := Parse(content)

	if len(meta) != 0 {
		t.Errorf("meta = %v, want empty", meta)
	}
	if body != content {
		t.Errorf("body = %q, want original content", body)
	}
}

// Unquoted colons in values are common in the wild and break YAML; the
// scanner fallback must still recover every key.
func TestParseFallbackUnquotedColon(t *testing.T) {
	content := "---\nname: researcher\ndescription: Use when: deep research is needed\n---\nBody\n"
	meta, body := Parse(content)

	if got := meta.String("name"); got != "researcher" {
		t.Errorf("name = %q, want %q", got, "researcher")
	}
	if got := meta.String("description"); got != "Use when: deep research is needed" {
		t.Errorf("description = %q", got)
	}
	if body != "Body\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParseInlineList(t *testing.T) {
	content := "---\nname: engineer\nskills: [build, review, \"ship\"]\n---\n"
	meta, _ := Parse(content)

	want := []string{"build", "review", "ship"}
	if got := meta.List("skills"); !reflect.DeepEqual(got, want) {
		t.Errorf("skills = %v, want %v", got, want)
	}
}

func TestParseBulletList(t *testing.T) {
	content := "---\nname: engineer\nskills:\n  - build\n  - review\nmodel: opus\n---\nBody\n"
	meta, _ := Parse(content)

	want := []string{"build", "review"}
	if got := meta.List("skills"); !reflect.DeepEqual(got, want) {
		t.Errorf("skills = %v, want %v", got, want)
	}
	// The list must flush when the next unindented key appears.
	if got := meta.String("model"); got != "opus" {
		t.Errorf("model = %q, want %q", got, "opus")
	}
}

func TestParseCommaScalarAsList(t *testing.T) {
	content := "---\nskills: build, review\n---\n"
	meta, _ := Parse(content)

	want := []string{"build", "review"}
	if got := meta.List("skills"); !reflect.DeepEqual(got, want) {
		t.Errorf("skills = %v, want %v", got, want)
	}
}

func TestParseUnterminatedHeader(t *testing.T) {
	content := "---\nname: engineer\nno closing delimiter"
	meta, body := Parse(content)

	if len(meta) != 0 {
		t.Errorf("meta = %v, want empty", meta)
	}
	if body != content {
		t.Errorf("body = %q, want original content", body)
	}
}
