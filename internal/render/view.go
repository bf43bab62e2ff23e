// Package render serializes a completed org model into one self-contained
// interactive HTML document: a team roster, a vertical lifecycle grouped
// into the four phases, utility cards, teams, and an embedded data payload
// driving hover highlighting and click-to-open detail panels.
package render

import (
	"html/template"
	"sort"
	"strings"

	"github.com/orgviz/cli/internal/orgmodel"
)

// roleColors is the fixed preferred palette for well-known roles, keyed
// by display name.
var roleColors = map[string]string{
	"Chief Of Staff":  "#fbbf24",
	"Product Manager": "#818cf8",
	"Researcher":      "#38bdf8",
	"Designer":        "#f472b6",
	"Engineer":        "#34d399",
	"QA":              "#c084fc",
	"Analyst":         "#60a5fa",
	"Marketer":        "#fb923c",
	"Support":         "#a3e635",
}

// overflowColors cycles for roles outside the preferred palette.
var overflowColors = []string{
	"#2dd4bf", "#f87171", "#a78bfa", "#facc15", "#4ade80", "#e879f9",
}

// AgentCard is one roster entry with its resolved color assignment.
type AgentCard struct {
	*orgmodel.Agent
	ID         string
	Color      string
	ModelColor string
}

// Step is one lifecycle entry annotated with its phase and the agents
// whose operational skill set includes it.
type Step struct {
	Name   string
	Index  int
	Agents []string
	// BatchBranch marks the "or batch-execute" alternative attached
	// after the build step.
	BatchBranch bool
}

// PhaseGroup buckets lifecycle steps under one of the four fixed phases.
type PhaseGroup struct {
	Phase orgmodel.Phase
	Index int
	Steps []Step
}

// TeamCard is one team with a stable element id.
type TeamCard struct {
	orgmodel.Team
	ID string
}

// View is the fully assembled template context.
type View struct {
	Org       *orgmodel.Org
	Agents    []AgentCard
	Phases    []PhaseGroup
	Utilities []orgmodel.Utility
	Teams     []TeamCard
	Kickoff   *orgmodel.Utility
	Marketing bool
	Slug      string
	Version   string
	Payload   template.JS
}

// Slugify lowers a display name into an element-id-safe token.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// sortAgents reorders agents into the fixed preferred display order:
// named roles first, unrecognized roles after, alphabetically.
func sortAgents(agents []*orgmodel.Agent) []*orgmodel.Agent {
	rank := make(map[string]int, len(orgmodel.PreferredAgentOrder))
	for i, name := range orgmodel.PreferredAgentOrder {
		rank[name] = i
	}
	out := append([]*orgmodel.Agent{}, agents...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iKnown := rank[out[i].Name]
		rj, jKnown := rank[out[j].Name]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return out[i].Name < out[j].Name
		}
	})
	return out
}

// assignColors maps each agent to a display color: the preferred palette
// for recognized roles, the overflow palette cycling for the rest, never
// reusing a color while unused ones remain.
func assignColors(agents []*orgmodel.Agent) map[string]string {
	colors := make(map[string]string, len(agents))
	used := make(map[string]bool)
	overflow := 0
	for _, a := range agents {
		c, ok := roleColors[a.Name]
		if !ok || used[c] {
			for range overflowColors {
				c = overflowColors[overflow%len(overflowColors)]
				overflow++
				if !used[c] {
					break
				}
			}
		}
		used[c] = true
		colors[a.Name] = c
	}
	return colors
}

// sortUtilities reorders utility entries by the fixed preferred sequence,
// leaving unknown entries after in input order. The kickoff entry is
// excluded: it renders in the teams section only.
func sortUtilities(utilities []orgmodel.Utility) []orgmodel.Utility {
	rank := make(map[string]int, len(orgmodel.PreferredUtilityOrder))
	for i, name := range orgmodel.PreferredUtilityOrder {
		rank[name] = i
	}
	var out []orgmodel.Utility
	for _, u := range utilities {
		if u.Name != "kickoff" {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, iKnown := rank[out[i].Name]
		rj, jKnown := rank[out[j].Name]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		default:
			return false
		}
	})
	return out
}

// buildView assembles the full template context from the org model.
func buildView(org *orgmodel.Org, opts Options) *View {
	ordered := sortAgents(org.Agents)
	colors := assignColors(ordered)

	view := &View{
		Org:       org,
		Marketing: opts.Marketing,
		Slug:      Slugify(org.Name),
		Version:   opts.Version,
	}

	for _, a := range ordered {
		model := a.Model
		if model == "" {
			model = orgmodel.ModelInherit
		}
		badge, ok := orgmodel.ModelBadgeColors[model]
		if !ok {
			badge = orgmodel.ModelBadgeColors[orgmodel.ModelInherit]
		}
		view.Agents = append(view.Agents, AgentCard{
			Agent:      a,
			ID:         "agent-" + Slugify(a.Name),
			Color:      colors[a.Name],
			ModelColor: badge,
		})
	}

	// Utility entries authored by discovery, plus the fixed decision
	// memory card that every org gets.
	utilities := append([]orgmodel.Utility{{
		Icon:        orgmodel.UtilityIcons[orgmodel.DecisionMemoryName],
		Name:        orgmodel.DecisionMemoryName,
		Description: orgmodel.UtilityDefaults[orgmodel.DecisionMemoryName],
		Agents:      []string{orgmodel.Orchestrator},
	}}, org.Utilities...)
	view.Utilities = sortUtilities(utilities)

	hasBatch := false
	for _, u := range org.Utilities {
		if u.Name == "batch-run" {
			hasBatch = true
		}
		if u.Name == "kickoff" {
			k := u
			view.Kickoff = &k
		}
	}

	// Phase buckets with per-step agent annotations.
	n := len(org.Lifecycle)
	groups := make([]PhaseGroup, 0, len(orgmodel.Phases))
	for i, phase := range orgmodel.Phases {
		groups = append(groups, PhaseGroup{Phase: phase, Index: i})
	}
	for i, stepName := range org.Lifecycle {
		step := Step{Name: stepName, Index: i}
		for _, a := range ordered {
			if a.HasSkill(stepName) {
				step.Agents = append(step.Agents, a.Name)
			}
		}
		step.BatchBranch = hasBatch && stepName == "build"
		p := orgmodel.PhaseIndex(i, n)
		groups[p].Steps = append(groups[p].Steps, step)
	}
	for _, g := range groups {
		if len(g.Steps) > 0 {
			view.Phases = append(view.Phases, g)
		}
	}

	for i, team := range org.Teams {
		view.Teams = append(view.Teams, TeamCard{Team: team, ID: teamID(i)})
	}
	return view
}
