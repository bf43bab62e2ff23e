package orgmodel

import "strings"

// FlatArgs carries the comma-separated name lists of flat CLI mode.
type FlatArgs struct {
	Name   string
	Agents string
	Skills string
	MCPs   string
	// Teams uses "Name:member+member,Other:member" syntax.
	Teams string
}

// FromFlatArgs builds a minimal org from flat name lists. Every agent
// receives the same flat skill and tool sets; the lifecycle defaults to
// the first seven skills in input order.
func FromFlatArgs(args FlatArgs) *Org {
	agents := splitCSV(args.Agents)
	skills := splitCSV(args.Skills)
	mcps := splitCSV(args.MCPs)

	org := &Org{Name: args.Name}
	for _, name := range agents {
		org.Agents = append(org.Agents, &Agent{
			Name:   name,
			Model:  ModelInherit,
			Skills: append([]string{}, skills...),
			MCPs:   append([]string{}, mcps...),
		})
	}
	for _, name := range skills {
		org.Skills = append(org.Skills, &Skill{Name: name})
	}
	for _, name := range mcps {
		org.MCPs = append(org.MCPs, &MCP{Name: name})
	}
	for _, spec := range splitCSV(args.Teams) {
		name, members, ok := strings.Cut(spec, ":")
		if !ok {
			continue
		}
		team := Team{Name: strings.TrimSpace(name)}
		for _, m := range strings.Split(members, "+") {
			if m = strings.TrimSpace(m); m != "" {
				team.Members = append(team.Members, m)
			}
		}
		org.Teams = append(org.Teams, team)
	}
	if len(skills) > 7 {
		org.Lifecycle = append([]string{}, skills[:7]...)
	} else {
		org.Lifecycle = append([]string{}, skills...)
	}
	org.Normalize()
	return org
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
