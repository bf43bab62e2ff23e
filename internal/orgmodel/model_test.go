package orgmodel

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeExcludesObserver(t *testing.T) {
	for _, name := range []string{"observer", "Observer", "OBSERVER"} {
		t.Run(name, func(t *testing.T) {
			org := &Org{
				Agents: []*Agent{
					{Name: "Engineer"},
					{Name: name},
				},
			}
			org.Normalize()
			for _, a := range org.Agents {
				if strings.EqualFold(a.Name, ObserverName) {
					t.Fatalf("observer agent %q survived Normalize", name)
				}
			}
			if len(org.Agents) != 1 || org.Agents[0].Name != "Engineer" {
				t.Errorf("agents = %v, want only Engineer", org.AgentNames())
			}
		})
	}
}

func TestPhaseIndex(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{name: "eight steps fixed split", n: 8, want: []int{0, 0, 1, 1, 2, 2, 3, 3}},
		{name: "five steps", n: 5, want: []int{0, 0, 1, 2, 3}},
		{name: "four steps", n: 4, want: []int{0, 1, 2, 3}},
		{name: "six steps", n: 6, want: []int{0, 0, 1, 2, 2, 3}},
		{name: "one step", n: 1, want: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]int, tt.n)
			for i := 0; i < tt.n; i++ {
				got[i] = PhaseIndex(i, tt.n)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("phases = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddSkillDeduplicates(t *testing.T) {
	a := &Agent{Name: "Engineer"}
	a.AddSkill("build")
	a.AddSkill("build")
	a.AddSkill("review")
	want := []string{"build", "review"}
	if !reflect.DeepEqual(a.Skills, want) {
		t.Errorf("skills = %v, want %v", a.Skills, want)
	}
}

func TestParseConfigValid(t *testing.T) {
	doc := `{
		"name": "Acme AI",
		"agents": [
			{"name": "Engineer", "model": "opus", "skills": ["build"], "mcps": ["GitHub"]},
			{"name": "observer", "model": "haiku"}
		],
		"skills": [{"name": "build", "description": "Build it"}],
		"mcps": [{"name": "GitHub"}],
		"teams": [{"name": "Core", "members": ["Engineer"]}],
		"lifecycle": ["build"]
	}`
	org, err := ParseConfig([]byte(doc))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if org.Name != "Acme AI" {
		t.Errorf("name = %q", org.Name)
	}
	if len(org.Agents) != 1 {
		t.Fatalf("agents = %v, want observer excluded", org.AgentNames())
	}
	if got := org.Agents[0].Skills; !reflect.DeepEqual(got, []string{"build"}) {
		t.Errorf("agent skills = %v", got)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `{"name":`},
		{name: "not an object", doc: `["agents"]`},
		{name: "name not string", doc: `{"name": 7}`},
		{name: "agents not array", doc: `{"agents": {"name": "x"}}`},
		{name: "agent missing name", doc: `{"agents": [{"model": "opus"}]}`},
		{name: "skill missing name", doc: `{"skills": [{"description": "d"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.doc)); err == nil {
				t.Errorf("ParseConfig(%s) = nil error, want failure", tt.doc)
			}
		})
	}
}

func TestFromFlatArgs(t *testing.T) {
	org := FromFlatArgs(FlatArgs{
		Name:   "Tiny Org",
		Agents: "Engineer, Designer, observer",
		Skills: "discover,spec,design,build,review,ship,standup,extra",
		MCPs:   "GitHub",
		Teams:  "Core:Engineer+Designer",
	})

	if len(org.Agents) != 2 {
		t.Fatalf("agents = %v, want observer excluded", org.AgentNames())
	}
	for _, a := range org.Agents {
		if len(a.Skills) != 8 {
			t.Errorf("agent %s skills = %d, want flat set of 8", a.Name, len(a.Skills))
		}
		if a.Model != ModelInherit {
			t.Errorf("agent %s model = %q, want inherit", a.Name, a.Model)
		}
	}
	if len(org.Lifecycle) != 7 {
		t.Errorf("lifecycle = %v, want first 7 skills", org.Lifecycle)
	}
	want := Team{Name: "Core", Members: []string{"Engineer", "Designer"}}
	if len(org.Teams) != 1 || !reflect.DeepEqual(org.Teams[0], want) {
		t.Errorf("teams = %v, want [%v]", org.Teams, want)
	}
}
