package discover

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/orgviz/cli/internal/infer"
	"github.com/orgviz/cli/internal/orgmodel"
	"github.com/orgviz/cli/internal/textutil"
)

// Regexes for the semi-structured notes document. All of this is
// best-effort scraping: an unmatched pattern degrades to the fallback,
// never to an error.
var (
	// lifecycleRe matches a "/ns:step → /ns:step → ..." chain.
	lifecycleRe = regexp.MustCompile(`(/[\w-]+:[\w-]+(?:\s*→\s*/[\w-]+:[\w-]+)+)`)
	// teamRe matches "**Team Name**: @agent + @agent" declarations.
	teamRe = regexp.MustCompile(`\*\*([^*\n]+)\*\*:\s*((?:@[\w-]+\s*\+?\s*)+)`)
	// mentionRe matches @identifier references.
	mentionRe = regexp.MustCompile(`@(\w[\w-]*)`)
	// bulletToolRe matches "- **Name**: description" bullet lines.
	bulletToolRe = regexp.MustCompile(`^\s*-\s+\*\*([^*]+)\*\*:?\s*(.*)$`)
	// topHeadingRe matches a top-level markdown heading line.
	topHeadingRe = regexp.MustCompile(`^#[^#]`)
)

// sectionAfter returns the notes text from the first line containing
// marker up to (excluding) the next top-level heading.
func sectionAfter(notes, marker string) string {
	idx := strings.Index(notes, marker)
	if idx < 0 {
		return ""
	}
	section := notes[idx:]
	for i, line := range strings.Split(section, "\n") {
		if i == 0 {
			continue
		}
		if topHeadingRe.MatchString(line) {
			return section[:strings.Index(section, "\n"+line)]
		}
	}
	return section
}

// parseLifecycle extracts the ordered pipeline from a slash-command chain
// in the notes. Without one, the fixed default list applies, filtered to
// skills that exist.
func parseLifecycle(notes string, skillNames map[string]bool) []string {
	if m := lifecycleRe.FindString(notes); m != "" {
		var steps []string
		for _, token := range strings.Split(m, "→") {
			token = strings.TrimSpace(token)
			if i := strings.LastIndex(token, ":"); i >= 0 {
				token = token[i+1:]
			}
			if token = strings.TrimSpace(token); token != "" {
				steps = append(steps, token)
			}
		}
		if len(steps) > 0 {
			log.Debug("lifecycle parsed from notes", "steps", steps)
			return steps
		}
	}
	var steps []string
	for _, s := range orgmodel.DefaultLifecycle {
		if skillNames[s] {
			steps = append(steps, s)
		}
	}
	return steps
}

// parseTeams extracts "**Team**: @a + @b" declarations, resolving each
// reference against known agents. Unresolvable members are dropped; a
// team with no resolved members is not recorded. When no declaration
// matches anywhere in the notes, three fixed heuristic buckets keyed by
// shared skill membership apply, provided at least three agents exist.
func parseTeams(notes string, org *orgmodel.Org) []orgmodel.Team {
	aliases := infer.AliasIndex(org.AgentNames())

	var teams []orgmodel.Team
	for _, m := range teamRe.FindAllStringSubmatch(notes, -1) {
		name := strings.TrimSpace(m[1])
		var members []string
		for _, ref := range mentionRe.FindAllStringSubmatch(m[2], -1) {
			if agent, ok := infer.Resolve(ref[1], aliases); ok {
				members = append(members, agent)
			}
		}
		if len(members) > 0 {
			teams = append(teams, orgmodel.Team{Name: name, Members: members})
		}
	}
	if len(teams) > 0 {
		return teams
	}
	return heuristicTeams(org)
}

// heuristicTeams groups agents into discovery, build, and ship buckets by
// shared skill membership. Each bucket is included only when non-empty.
func heuristicTeams(org *orgmodel.Org) []orgmodel.Team {
	if len(org.Agents) < 3 {
		return nil
	}
	buckets := []struct {
		name   string
		skills []string
	}{
		{name: "Discovery Sprint", skills: []string{"discover"}},
		{name: "Build & QA", skills: []string{"build", "design", "review"}},
		{name: "Ship & Launch", skills: []string{"ship", "release-notes"}},
	}
	var teams []orgmodel.Team
	for _, b := range buckets {
		var members []string
		for _, a := range org.Agents {
			for _, s := range b.skills {
				if a.HasSkill(s) {
					members = append(members, a.Name)
					break
				}
			}
		}
		if len(members) > 0 {
			teams = append(teams, orgmodel.Team{Name: b.name, Members: members})
		}
	}
	return teams
}

// parseCLITools extracts "- **name**: description" pairs from the CLI
// tools section of the notes.
func parseCLITools(notes string) []orgmodel.CLITool {
	section := sectionAfter(notes, "CLI Tools")
	if section == "" {
		return nil
	}
	var tools []orgmodel.CLITool
	for _, line := range strings.Split(section, "\n") {
		m := bulletToolRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		tools = append(tools, orgmodel.CLITool{
			Name:        textutil.FixNameCasing(strings.TrimSpace(m[1])),
			Description: strings.TrimSpace(m[2]),
		})
	}
	return tools
}

// assignMCPs walks the Tool Access section: each bullet line names one
// tool (first match wins) and zero or more agents; the tool is assigned
// to every agent mentioned on that same line. Agents still without tools
// afterwards receive best-effort role-based fallbacks; the heuristics may
// assign nothing.
func assignMCPs(org *orgmodel.Org, notes string) {
	if len(org.MCPs) > 0 && notes != "" {
		section := sectionAfter(notes, "Tool Access")
		for _, line := range strings.Split(section, "\n") {
			if !strings.HasPrefix(strings.TrimSpace(line), "-") {
				continue
			}
			lower := strings.ToLower(line)
			var matched *orgmodel.MCP
			for _, mcp := range org.MCPs {
				if strings.Contains(lower, strings.ToLower(mcp.Name)) {
					matched = mcp
					break
				}
			}
			if matched == nil {
				continue
			}
			for _, a := range org.Agents {
				if strings.Contains(lower, strings.ToLower(a.Name)) {
					a.AddMCP(matched.Name)
				}
			}
		}
	}

	for _, a := range org.Agents {
		if len(a.MCPs) > 0 || len(org.MCPs) == 0 {
			continue
		}
		agentLower := strings.ToLower(a.Name)
		descLower := strings.ToLower(a.DetailDescription)
		for _, mcp := range org.MCPs {
			mcpLower := strings.ToLower(mcp.Name)
			switch {
			case strings.Contains(mcpLower, "github") &&
				(strings.Contains(descLower, "code") || strings.Contains(agentLower, "engineer") || strings.Contains(agentLower, "qa")):
				a.AddMCP(mcp.Name)
			case strings.Contains(mcpLower, "devtools") &&
				(strings.Contains(descLower, "ui") || strings.Contains(agentLower, "design")):
				a.AddMCP(mcp.Name)
			case strings.Contains(mcpLower, "context") && strings.Contains(agentLower, "research"):
				a.AddMCP(mcp.Name)
			}
		}
	}
}

// assignCLITools applies the narrow CLI-tool heuristic: a tool with
// "github" in its name goes only to agents named exactly "engineer" or
// "qa".
func assignCLITools(org *orgmodel.Org) {
	for _, tool := range org.CLITools {
		if !strings.Contains(strings.ToLower(tool.Name), "github") {
			continue
		}
		for _, a := range org.Agents {
			lower := strings.ToLower(a.Name)
			if lower == "engineer" || lower == "qa" {
				a.AddCLITool(tool.Name)
			}
		}
	}
}
