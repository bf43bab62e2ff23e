package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/orgviz/cli/internal/orgmodel"
	"github.com/orgviz/cli/internal/ui"
)

// inspectCmd runs the assembly stage only and prints the resolved model,
// for checking what discovery inferred before rendering.
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the resolved org model without rendering",
	Long: `Assemble the org model and print a terminal summary instead of an
HTML document. Useful for checking discovery and inference results.

EXAMPLES:
  # Inspect a plugin directory
  orgviz inspect --plugin-dir ./my-plugin

  # Inspect an explicit config document
  orgviz inspect --config org.json`,
	RunE: runInspect,
}

func init() {
	flags := inspectCmd.Flags()
	flags.String("config", "", "Path to an explicit org config document (JSON)")
	flags.String("plugin-dir", ".", "Path to a plugin directory to discover the org from")
}

func runInspect(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	pluginDir, _ := flags.GetString("plugin-dir")
	if configPath != "" {
		pluginDir = ""
	}

	source, err := resolveSource(configPath, pluginDir, orgmodel.FlatArgs{})
	if err != nil {
		return err
	}
	org, err := source()
	if err != nil {
		return err
	}

	ui.PrintTitle(org.Name)
	ui.Println()

	agents := ui.NewTable("AGENT", "MODEL", "SKILLS", "TOOLS")
	agents.SetMaxWidth(2, 40)
	agents.SetMaxWidth(3, 30)
	for _, a := range org.Agents {
		model := a.Model
		if model == "" {
			model = orgmodel.ModelInherit
		}
		tools := append(append([]string{}, a.MCPs...), a.CLITools...)
		agents.AddRow(a.Name, model, strings.Join(a.Skills, ", "), strings.Join(tools, ", "))
	}
	agents.Render()
	ui.Println()

	if len(org.Lifecycle) > 0 {
		ui.PrintInfo("Lifecycle: %s", strings.Join(org.Lifecycle, " → "))
	}
	for _, team := range org.Teams {
		ui.PrintDim("Team %s: %s", team.Name, strings.Join(team.Members, ", "))
	}
	for _, u := range org.Utilities {
		ui.PrintDim("Utility /%s: %s", u.Name, u.Description)
	}

	var meta []string
	for _, s := range org.Skills {
		if orgmodel.IsMetaSkill(s.Name) {
			meta = append(meta, s.Name)
		}
	}
	if len(meta) > 0 {
		ui.PrintDim("Meta skills: %s", strings.Join(meta, ", "))
	}
	return nil
}
