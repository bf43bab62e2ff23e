// Package infer extracts candidate relationship edges from the free-text
// corpus of an org: skill bodies mentioning agents, and agent documents
// referencing skills.
//
// Scanning is regex-driven and approximate by design. The package is a
// pure function from text to edges; applying edges to the model is the
// caller's job, which keeps the heuristics independently testable and
// swappable.
package infer

import (
	"regexp"
	"sort"
	"strings"
)

// Edge links an agent (by canonical display name) to a skill.
type Edge struct {
	Agent string
	Skill string
}

var (
	// mentionRe matches @identifier references in skill bodies.
	mentionRe = regexp.MustCompile(`@(\w[\w-]*)`)
	// delegatedRe captures the "When Delegated To" section of an agent
	// document, from the heading to end of text.
	delegatedRe = regexp.MustCompile(`(?s)When Delegated To.*$`)
)

// AliasIndex maps normalized reference forms to canonical agent display
// names. Each agent is reachable by slug ("chief-of-staff"), by
// concatenation ("chiefofstaff"), and by lowercase name ("chief of staff").
func AliasIndex(names []string) map[string]string {
	idx := make(map[string]string, len(names)*3)
	for _, name := range names {
		lower := strings.ToLower(name)
		idx[strings.ReplaceAll(lower, " ", "-")] = name
		idx[strings.ReplaceAll(lower, " ", "")] = name
		idx[lower] = name
	}
	return idx
}

// Resolve maps one @reference to a canonical agent name via the index.
func Resolve(ref string, aliases map[string]string) (string, bool) {
	name, ok := aliases[strings.ToLower(ref)]
	return name, ok
}

// ForwardEdges scans skill bodies for @agent mentions and returns one
// edge per (agent, skill) pair, regardless of how often the mention
// repeats. Meta-skills are skipped entirely; unresolvable references are
// dropped. Edges are ordered by skill name for determinism.
func ForwardEdges(skillBodies map[string]string, aliases map[string]string, isMeta func(string) bool) []Edge {
	skillNames := make([]string, 0, len(skillBodies))
	for name := range skillBodies {
		skillNames = append(skillNames, name)
	}
	sort.Strings(skillNames)

	var edges []Edge
	seen := make(map[Edge]bool)
	for _, skillName := range skillNames {
		if isMeta(skillName) {
			continue
		}
		for _, m := range mentionRe.FindAllStringSubmatch(skillBodies[skillName], -1) {
			agent, ok := Resolve(m[1], aliases)
			if !ok {
				continue
			}
			e := Edge{Agent: agent, Skill: skillName}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// ReverseEdges scans each agent's "When Delegated To" section for skill
// references written as /name or `name`. Skills outside that section and
// meta-skills are ignored.
func ReverseEdges(agentBodies map[string]string, skillNames []string, isMeta func(string) bool) []Edge {
	agents := make([]string, 0, len(agentBodies))
	for name := range agentBodies {
		agents = append(agents, name)
	}
	sort.Strings(agents)

	sorted := append([]string{}, skillNames...)
	sort.Strings(sorted)

	var edges []Edge
	for _, agent := range agents {
		section := delegatedRe.FindString(agentBodies[agent])
		if section == "" {
			continue
		}
		for _, skill := range sorted {
			if isMeta(skill) {
				continue
			}
			if strings.Contains(section, "/"+skill) || strings.Contains(section, "`"+skill+"`") {
				edges = append(edges, Edge{Agent: agent, Skill: skill})
			}
		}
	}
	return edges
}
