// Package orgmodel defines the in-memory org aggregate shared by the
// discovery, inference, and rendering stages, plus the fixed lookup
// tables that form part of the generator's contract.
//
// An Org is constructed fresh for every generation run, enriched once by
// relationship inference, handed to the renderer, and discarded.
package orgmodel

import "strings"

// Org is the root aggregate for one generation run.
type Org struct {
	Name      string    `json:"name"`
	Agents    []*Agent  `json:"agents"`
	Skills    []*Skill  `json:"skills"`
	MCPs      []*MCP    `json:"mcps"`
	CLITools  []CLITool `json:"cli_tools,omitempty"`
	Teams     []Team    `json:"teams"`
	Lifecycle []string  `json:"lifecycle"`
	Utilities []Utility `json:"utilities,omitempty"`
}

// Agent is a named role in the org.
type Agent struct {
	Name string `json:"name"`

	// Model is the model identifier, or ModelInherit when the agent
	// runs on the caller's default.
	Model string `json:"model,omitempty"`

	// Skills is the operational skill set, populated by relationship
	// inference rather than authored directly.
	Skills []string `json:"skills"`

	// Knowledge is the authored skill set from frontmatter, distinct
	// from the inferred operational set.
	Knowledge []string `json:"knowledge,omitempty"`

	MCPs     []string `json:"mcps"`
	CLITools []string `json:"cli_tools,omitempty"`

	// Description is the short card label; DetailDescription the full
	// authored text shown in the detail panel.
	Description       string `json:"description,omitempty"`
	DetailDescription string `json:"detail_description,omitempty"`

	// Markdown is the agent document body.
	Markdown string `json:"markdown,omitempty"`
}

// Skill is a named capability. Its slug doubles as the invocation token.
type Skill struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	DetailDescription string `json:"detail_description,omitempty"`
	Markdown          string `json:"markdown,omitempty"`
}

// MCP is a configured tool integration (an MCP server).
type MCP struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	DetailDescription string `json:"detail_description,omitempty"`
}

// CLITool is a command-line tool available to agents, independent of the
// MCP manifest.
type CLITool struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Team is a named grouping of agents.
type Team struct {
	Name        string   `json:"name"`
	Members     []string `json:"members"`
	Description string   `json:"description,omitempty"`
}

// Utility is a view-level record for a meta-skill or built-in feature,
// shown outside the main lifecycle.
type Utility struct {
	Icon        string   `json:"icon"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Agents      []string `json:"agents,omitempty"`
}

// Normalize enforces model invariants after assembly: the internal
// observer agent never enters the visible org, and collection fields are
// never nil so the rendered payload round-trips cleanly.
func (o *Org) Normalize() {
	if o.Name == "" {
		o.Name = DefaultOrgName
	}
	agents := o.Agents[:0]
	for _, a := range o.Agents {
		if strings.EqualFold(a.Name, ObserverName) {
			continue
		}
		if a.Skills == nil {
			a.Skills = []string{}
		}
		if a.MCPs == nil {
			a.MCPs = []string{}
		}
		agents = append(agents, a)
	}
	o.Agents = agents
	if o.Agents == nil {
		o.Agents = []*Agent{}
	}
	if o.Skills == nil {
		o.Skills = []*Skill{}
	}
	if o.MCPs == nil {
		o.MCPs = []*MCP{}
	}
	if o.Teams == nil {
		o.Teams = []Team{}
	}
	if o.Lifecycle == nil {
		o.Lifecycle = []string{}
	}
}

// Agent returns the agent with the given display name, or nil.
func (o *Org) Agent(name string) *Agent {
	for _, a := range o.Agents {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Skill returns the skill with the given name, or nil.
func (o *Org) Skill(name string) *Skill {
	for _, s := range o.Skills {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// SkillNames returns the set of discovered skill names.
func (o *Org) SkillNames() map[string]bool {
	set := make(map[string]bool, len(o.Skills))
	for _, s := range o.Skills {
		set[s.Name] = true
	}
	return set
}

// AgentNames returns agent display names in org order.
func (o *Org) AgentNames() []string {
	names := make([]string, 0, len(o.Agents))
	for _, a := range o.Agents {
		names = append(names, a.Name)
	}
	return names
}

// HasSkill reports whether the agent's operational skill set contains name.
func (a *Agent) HasSkill(name string) bool {
	for _, s := range a.Skills {
		if s == name {
			return true
		}
	}
	return false
}

// AddSkill appends a skill to the operational set, once.
func (a *Agent) AddSkill(name string) {
	if !a.HasSkill(name) {
		a.Skills = append(a.Skills, name)
	}
}

// AddMCP appends a tool integration to the agent, once.
func (a *Agent) AddMCP(name string) {
	for _, m := range a.MCPs {
		if m == name {
			return
		}
	}
	a.MCPs = append(a.MCPs, name)
}

// AddCLITool appends a CLI tool to the agent, once.
func (a *Agent) AddCLITool(name string) {
	for _, c := range a.CLITools {
		if c == name {
			return
		}
	}
	a.CLITools = append(a.CLITools, name)
}
