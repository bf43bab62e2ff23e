package infer

import (
	"reflect"
	"testing"
)

func noMeta(string) bool { return false }

func TestAliasIndexForms(t *testing.T) {
	aliases := AliasIndex([]string{"Chief Of Staff", "QA"})

	tests := []struct {
		name string
		ref  string
		want string
	}{
		{name: "slug", ref: "chief-of-staff", want: "Chief Of Staff"},
		{name: "concatenated", ref: "chiefofstaff", want: "Chief Of Staff"},
		{name: "lowercase", ref: "qa", want: "QA"},
		{name: "case insensitive ref", ref: "Chief-Of-Staff", want: "Chief Of Staff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.ref, aliases)
			if !ok || got != tt.want {
				t.Errorf("Resolve(%q) = %q, %v; want %q", tt.ref, got, ok, tt.want)
			}
		})
	}

	if _, ok := Resolve("nobody", aliases); ok {
		t.Error("Resolve of unknown reference should fail")
	}
}

// Repeated @mentions of the same agent in one skill body must produce a
// single edge.
func TestForwardEdgesDeduplicates(t *testing.T) {
	bodies := map[string]string{
		"build": "Delegate to @engineer. When blocked, ping @engineer again. @nobody is ignored.",
	}
	aliases := AliasIndex([]string{"Engineer"})

	got := ForwardEdges(bodies, aliases, noMeta)
	want := []Edge{{Agent: "Engineer", Skill: "build"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForwardEdges = %v, want %v", got, want)
	}
}

func TestForwardEdgesSkipsMetaSkills(t *testing.T) {
	bodies := map[string]string{
		"build":   "@engineer builds.",
		"standup": "@engineer reports too.",
	}
	aliases := AliasIndex([]string{"Engineer"})
	isMeta := func(name string) bool { return name == "standup" }

	got := ForwardEdges(bodies, aliases, isMeta)
	want := []Edge{{Agent: "Engineer", Skill: "build"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForwardEdges = %v, want %v", got, want)
	}
}

func TestReverseEdges(t *testing.T) {
	agentBodies := map[string]string{
		"Engineer": "# Role\n\nBuilds features.\n\n## When Delegated To\n\nRun /build then verify with `review`.\nIgnore /kickoff here.\n",
		"Designer": "# Role\n\nNo delegation section mentions /build.",
	}
	skills := []string{"build", "review", "kickoff", "ship"}
	isMeta := func(name string) bool { return name == "kickoff" }

	got := ReverseEdges(agentBodies, skills, isMeta)
	want := []Edge{
		{Agent: "Engineer", Skill: "build"},
		{Agent: "Engineer", Skill: "review"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReverseEdges = %v, want %v", got, want)
	}
}
