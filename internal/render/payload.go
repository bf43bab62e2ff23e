package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"

	"github.com/orgviz/cli/internal/orgmodel"
)

// Detail is one click-to-open panel record.
type Detail struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Model       string   `json:"model,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	MCPs        []string `json:"mcps,omitempty"`
	CLITools    []string `json:"cliTools,omitempty"`
	UsedBy      []string `json:"usedBy,omitempty"`
	Members     []string `json:"members,omitempty"`
	Description string   `json:"description,omitempty"`
	// HTML is the goldmark-rendered markdown body.
	HTML string `json:"html,omitempty"`
}

// highlight lists the lifecycle steps and teams one agent lights up on
// hover.
type highlight struct {
	Steps []int `json:"steps"`
	Teams []int `json:"teams"`
}

// payload is the embedded client-side data structure. Its "org" field
// carries the model verbatim so a rendered document round-trips back
// through explicit-config mode.
type payload struct {
	Org        *orgmodel.Org        `json:"org"`
	Details    map[string]Detail    `json:"details"`
	Highlights map[string]highlight `json:"highlights"`
}

func teamID(i int) string {
	return "team-" + strconv.Itoa(i)
}

// buildPayload serializes the org plus view-derived structures, annotates
// the generator metadata, and makes the result safe to embed in a script
// block: every "</" becomes "<\/" so an end-of-script-tag sequence inside
// a value cannot terminate the block early.
func buildPayload(org *orgmodel.Org, opts Options) (string, error) {
	p := payload{
		Org:        org,
		Details:    buildDetails(org),
		Highlights: buildHighlights(org),
	}
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("render: marshal payload: %w", err)
	}
	meta := map[string]string{
		"generator.name":    "orgviz",
		"generator.version": opts.Version,
		"generator.run_id":  uuid.NewString(),
		"generator.at":      opts.now().UTC().Format(time.RFC3339),
	}
	for key, value := range meta {
		if data, err = sjson.SetBytes(data, key, value); err != nil {
			return "", fmt.Errorf("render: annotate payload: %w", err)
		}
	}
	return strings.ReplaceAll(string(data), "</", `<\/`), nil
}

func buildDetails(org *orgmodel.Org) map[string]Detail {
	details := make(map[string]Detail)
	for _, a := range org.Agents {
		model := a.Model
		if model == "" {
			model = orgmodel.ModelInherit
		}
		desc := a.DetailDescription
		if desc == "" {
			desc = a.Description
		}
		details["agent-"+Slugify(a.Name)] = Detail{
			Type:        "agent",
			Name:        a.Name,
			Model:       model,
			Skills:      a.Skills,
			MCPs:        a.MCPs,
			CLITools:    a.CLITools,
			Description: desc,
			HTML:        markdownHTML(a.Markdown),
		}
	}
	for _, s := range org.Skills {
		var usedBy []string
		for _, a := range org.Agents {
			if a.HasSkill(s.Name) {
				usedBy = append(usedBy, a.Name)
			}
		}
		desc := s.DetailDescription
		if desc == "" {
			desc = s.Description
		}
		details["skill-"+Slugify(s.Name)] = Detail{
			Type:        "skill",
			Name:        "/" + s.Name,
			UsedBy:      usedBy,
			Description: desc,
			HTML:        markdownHTML(s.Markdown),
		}
	}
	for _, m := range org.MCPs {
		var usedBy []string
		for _, a := range org.Agents {
			for _, assigned := range a.MCPs {
				if assigned == m.Name {
					usedBy = append(usedBy, a.Name)
					break
				}
			}
		}
		desc := m.DetailDescription
		if desc == "" {
			desc = m.Description
		}
		details["mcp-"+Slugify(m.Name)] = Detail{
			Type:        "mcp",
			Name:        m.Name,
			UsedBy:      usedBy,
			Description: desc,
		}
	}
	for i, t := range org.Teams {
		details[teamID(i)] = Detail{
			Type:        "team",
			Name:        t.Name,
			Members:     t.Members,
			Description: t.Description,
		}
	}
	return details
}

func buildHighlights(org *orgmodel.Org) map[string]highlight {
	highlights := make(map[string]highlight, len(org.Agents))
	for _, a := range org.Agents {
		h := highlight{Steps: []int{}, Teams: []int{}}
		for i, step := range org.Lifecycle {
			if a.HasSkill(step) {
				h.Steps = append(h.Steps, i)
			}
		}
		for i, team := range org.Teams {
			for _, m := range team.Members {
				if m == a.Name {
					h.Teams = append(h.Teams, i)
					break
				}
			}
		}
		highlights[Slugify(a.Name)] = h
	}
	return highlights
}
