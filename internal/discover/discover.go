// Package discover builds an org model from a plugin directory layout:
// a plugin manifest for the org name, agent markdown files, skill
// definition folders, an MCP server manifest, and a project notes
// document (CLAUDE.md) carrying lifecycle, team, and tool-access hints.
//
// Every input except the plugin directory itself is optional. A missing
// manifest, notes document, or subdirectory degrades the corresponding
// feature to its empty or default value; discovery never fails because an
// optional input is absent.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"

	"github.com/orgviz/cli/internal/frontmatter"
	"github.com/orgviz/cli/internal/infer"
	"github.com/orgviz/cli/internal/orgmodel"
	"github.com/orgviz/cli/internal/textutil"
)

// SkillFileName is the standard definition file inside each skill folder.
const SkillFileName = "SKILL.md"

// NotesFileName is the project notes document scanned for lifecycle,
// team, and tool-access hints.
const NotesFileName = "CLAUDE.md"

// manifestPath locates the plugin manifest relative to the plugin root.
var manifestPath = filepath.Join(".claude-plugin", "plugin.json")

// Plugin discovers an org from the given plugin directory.
func Plugin(dir string) (*orgmodel.Org, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("discover: resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("discover: %s is not a directory", dir)
	}

	org := &orgmodel.Org{Name: pluginName(abs)}
	notes := readOptional(filepath.Join(abs, NotesFileName))

	loadAgents(org, filepath.Join(abs, "agents"))
	skillBodies := loadSkills(org, filepath.Join(abs, "skills"))
	applyInference(org, skillBodies)

	loadMCPs(org, filepath.Join(abs, ".mcp.json"))
	org.CLITools = parseCLITools(notes)
	assignMCPs(org, notes)
	assignCLITools(org)

	org.Lifecycle = parseLifecycle(notes, org.SkillNames())
	org.Teams = parseTeams(notes, org)
	org.Utilities = deriveUtilities(org, skillBodies)

	org.Normalize()
	return org, nil
}

// pluginName resolves the org display name from the plugin manifest,
// falling back to the fixed default.
func pluginName(dir string) string {
	data := readOptional(filepath.Join(dir, manifestPath))
	if data == "" {
		return orgmodel.DefaultOrgName
	}
	name := gjson.Get(data, "name").String()
	if name == "" {
		return orgmodel.DefaultOrgName
	}
	return textutil.TitleCase(strings.ReplaceAll(name, "-", " "))
}

// loadAgents reads agents/*.md. The internal observer agent is skipped
// before any other processing touches it.
func loadAgents(org *orgmodel.Org, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug("no agents directory", "dir", dir)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		content := readOptional(filepath.Join(dir, entry.Name()))
		meta, body := frontmatter.Parse(content)

		name := meta.String("name")
		if name == "" {
			name = strings.TrimSuffix(entry.Name(), ".md")
		}
		if strings.EqualFold(name, orgmodel.ObserverName) {
			log.Debug("skipping internal observer agent", "file", entry.Name())
			continue
		}

		model := meta.String("model")
		if model == "" {
			model = orgmodel.ModelInherit
		}
		fullDesc := meta.String("description")
		org.Agents = append(org.Agents, &orgmodel.Agent{
			Name:              textutil.Humanize(name),
			Model:             model,
			Skills:            []string{},
			Knowledge:         meta.List("skills"),
			MCPs:              []string{},
			Description:       textutil.ShortenDescription(fullDesc, textutil.DefaultShortLen),
			DetailDescription: fullDesc,
			Markdown:          strings.TrimSpace(body),
		})
	}
}

// loadSkills reads skills/*/SKILL.md and returns the raw bodies keyed by
// skill name for later reference scanning.
func loadSkills(org *orgmodel.Org, dir string) map[string]string {
	bodies := make(map[string]string)
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Debug("no skills directory", "dir", dir)
		return bodies
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		content := readOptional(filepath.Join(dir, entry.Name(), SkillFileName))
		if content == "" {
			continue
		}
		meta, body := frontmatter.Parse(content)
		name := meta.String("name")
		if name == "" {
			name = entry.Name()
		}
		fullDesc := meta.String("description")
		org.Skills = append(org.Skills, &orgmodel.Skill{
			Name:              name,
			Description:       textutil.ShortenDescription(fullDesc, textutil.DefaultShortLen),
			DetailDescription: fullDesc,
			Markdown:          strings.TrimSpace(body),
		})
		bodies[name] = body
	}
	return bodies
}

// applyInference populates each agent's operational skill set from the
// forward (@mention) and reverse (When Delegated To) scans.
func applyInference(org *orgmodel.Org, skillBodies map[string]string) {
	aliases := infer.AliasIndex(org.AgentNames())
	for _, e := range infer.ForwardEdges(skillBodies, aliases, orgmodel.IsMetaSkill) {
		org.Agent(e.Agent).AddSkill(e.Skill)
	}

	agentBodies := make(map[string]string, len(org.Agents))
	for _, a := range org.Agents {
		agentBodies[a.Name] = a.Markdown
	}
	skillNames := make([]string, 0, len(org.Skills))
	for _, s := range org.Skills {
		skillNames = append(skillNames, s.Name)
	}
	for _, e := range infer.ReverseEdges(agentBodies, skillNames, orgmodel.IsMetaSkill) {
		org.Agent(e.Agent).AddSkill(e.Skill)
	}
}

// loadMCPs parses the MCP server manifest. The detail description is
// synthesized from the invocation command and its first two arguments.
func loadMCPs(org *orgmodel.Org, path string) {
	data := readOptional(path)
	if data == "" {
		return
	}
	gjson.Get(data, "mcpServers").ForEach(func(key, server gjson.Result) bool {
		name := textutil.Humanize(key.String())
		command := server.Get("command").String()
		detail := ""
		if command != "" {
			parts := []string{command}
			server.Get("args").ForEach(func(_, arg gjson.Result) bool {
				if len(parts) > 2 {
					return false
				}
				parts = append(parts, arg.String())
				return true
			})
			detail = "Command: " + strings.Join(parts, " ")
		}
		org.MCPs = append(org.MCPs, &orgmodel.MCP{Name: name, DetailDescription: detail})
		return true
	})
}

// deriveUtilities builds a utility entry for every meta-skill present in
// the discovered skill set. An authored description wins over the
// built-in default; agents associated with the utility come from
// @mentions in the skill body, with the orchestrator sentinel when none
// resolve.
func deriveUtilities(org *orgmodel.Org, skillBodies map[string]string) []orgmodel.Utility {
	aliases := infer.AliasIndex(org.AgentNames())
	var utilities []orgmodel.Utility
	for _, s := range org.Skills {
		if !orgmodel.IsMetaSkill(s.Name) {
			continue
		}
		desc := s.DetailDescription
		if desc == "" {
			desc = orgmodel.UtilityDefaults[s.Name]
		}
		var agents []string
		seen := map[string]bool{}
		for _, m := range mentionRe.FindAllStringSubmatch(skillBodies[s.Name], -1) {
			if name, ok := infer.Resolve(m[1], aliases); ok && !seen[name] {
				seen[name] = true
				agents = append(agents, name)
			}
		}
		if len(agents) == 0 {
			agents = []string{orgmodel.Orchestrator}
		}
		utilities = append(utilities, orgmodel.Utility{
			Icon:        orgmodel.UtilityIcons[s.Name],
			Name:        s.Name,
			Description: desc,
			Agents:      agents,
		})
	}
	return utilities
}

// readOptional returns the file's contents, or "" when it does not exist
// or cannot be read. Absence of optional inputs is a normal case.
func readOptional(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
