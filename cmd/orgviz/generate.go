package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orgviz/cli/internal/discover"
	"github.com/orgviz/cli/internal/orgmodel"
	"github.com/orgviz/cli/internal/render"
	"github.com/orgviz/cli/internal/ui"
	"github.com/orgviz/cli/internal/watch"
)

// generateCmd runs the full pipeline: assemble an org model from one of
// the three input sources and write the HTML document.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an interactive org chart document",
	Long: `Generate a self-contained HTML org chart from one of three sources:
an explicit config document, a plugin directory, or flat arguments.

EXAMPLES:
  # Discover an org from a plugin directory
  orgviz generate --plugin-dir ./my-plugin

  # Render an explicit config document
  orgviz generate --config org.json --output chart.html

  # Build a minimal org from flat arguments
  orgviz generate --name "Solo Studio" --agents engineer,designer --skills design,build,ship

  # Regenerate on every change and open the result
  orgviz generate --plugin-dir . --watch --open`,
	RunE: runGenerate,
}

func init() {
	flags := generateCmd.Flags()
	flags.String("config", "", "Path to an explicit org config document (JSON)")
	flags.String("plugin-dir", "", "Path to a plugin directory to discover the org from")
	flags.String("name", "", "Org name (flat mode)")
	flags.String("agents", "", "Comma-separated agent names (flat mode)")
	flags.String("skills", "", "Comma-separated skill names (flat mode)")
	flags.String("mcps", "", "Comma-separated MCP server names (flat mode)")
	flags.String("teams", "", "Teams as Name:member+member,... (flat mode)")
	flags.StringP("output", "o", "org-chart.html", "Output file path")
	flags.Bool("marketing", false, "Add install instructions and attribution to the document")
	flags.Bool("open", false, "Open the generated document in the browser")
	flags.Bool("watch", false, "Regenerate whenever plugin files change (requires --plugin-dir)")
}

// orgSource produces a fresh org model per generation run.
type orgSource func() (*orgmodel.Org, error)

// resolveSource picks the input mode. The explicit config document and
// plugin discovery are mutually exclusive; flat arguments apply when
// neither is given.
func resolveSource(configPath, pluginDir string, flat orgmodel.FlatArgs) (orgSource, error) {
	if configPath != "" && pluginDir != "" {
		return nil, fmt.Errorf("--config and --plugin-dir are mutually exclusive")
	}
	switch {
	case configPath != "":
		return func() (*orgmodel.Org, error) {
			return orgmodel.LoadConfig(configPath)
		}, nil
	case pluginDir != "":
		return func() (*orgmodel.Org, error) {
			return discover.Plugin(pluginDir)
		}, nil
	default:
		return func() (*orgmodel.Org, error) {
			return orgmodel.FromFlatArgs(flat), nil
		}, nil
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	pluginDir, _ := flags.GetString("plugin-dir")
	output, _ := flags.GetString("output")
	marketing, _ := flags.GetBool("marketing")
	openAfter, _ := flags.GetBool("open")
	watchMode, _ := flags.GetBool("watch")

	flat := orgmodel.FlatArgs{}
	flat.Name, _ = flags.GetString("name")
	flat.Agents, _ = flags.GetString("agents")
	flat.Skills, _ = flags.GetString("skills")
	flat.MCPs, _ = flags.GetString("mcps")
	flat.Teams, _ = flags.GetString("teams")

	source, err := resolveSource(configPath, pluginDir, flat)
	if err != nil {
		return err
	}
	if watchMode && pluginDir == "" {
		return fmt.Errorf("--watch requires --plugin-dir")
	}

	opts := render.Options{Marketing: marketing, Version: version}
	generate := func() error {
		org, err := source()
		if err != nil {
			return err
		}
		if err := render.WriteFile(output, org, opts); err != nil {
			return err
		}
		ui.PrintSuccess("Generated org chart for %s (%d agents, %d skills)",
			org.Name, len(org.Agents), len(org.Skills))
		ui.PrintLink("Output", output)
		return nil
	}

	if err := generate(); err != nil {
		return err
	}

	if openAfter {
		path, err := filepath.Abs(output)
		if err != nil {
			path = output
		}
		if err := ui.OpenBrowser("file://" + path); err != nil {
			ui.PrintWarning("Could not open browser: %v", err)
		}
	}

	if watchMode {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ui.PrintInfo("Watching %s for changes (Ctrl-C to stop)", pluginDir)
		return watch.Run(ctx, pluginDir, generate)
	}
	return nil
}
