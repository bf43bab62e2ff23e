package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orgviz/cli/internal/orgmodel"
)

func TestResolveSource(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "org.json")
	config := `{"name": "Config Org", "agents": [{"name": "Engineer"}], "skills": [], "mcps": [], "teams": [], "lifecycle": []}`
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("config and plugin-dir are mutually exclusive", func(t *testing.T) {
		_, err := resolveSource(configPath, dir, orgmodel.FlatArgs{})
		if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
			t.Errorf("err = %v, want mutual exclusion error", err)
		}
	})

	t.Run("config wins over flat args", func(t *testing.T) {
		source, err := resolveSource(configPath, "", orgmodel.FlatArgs{Name: "Flat Org"})
		if err != nil {
			t.Fatal(err)
		}
		org, err := source()
		if err != nil {
			t.Fatal(err)
		}
		if org.Name != "Config Org" {
			t.Errorf("org name = %q, want Config Org", org.Name)
		}
	})

	t.Run("flat args when nothing else given", func(t *testing.T) {
		source, err := resolveSource("", "", orgmodel.FlatArgs{
			Name:   "Flat Org",
			Agents: "engineer,designer",
			Skills: "build",
		})
		if err != nil {
			t.Fatal(err)
		}
		org, err := source()
		if err != nil {
			t.Fatal(err)
		}
		if org.Name != "Flat Org" || len(org.Agents) != 2 {
			t.Errorf("unexpected flat org: %+v", org)
		}
	})

	t.Run("invalid config is fatal", func(t *testing.T) {
		badPath := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(badPath, []byte(`{"name": 42}`), 0644); err != nil {
			t.Fatal(err)
		}
		source, err := resolveSource(badPath, "", orgmodel.FlatArgs{})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := source(); err == nil {
			t.Error("expected error for structurally invalid config")
		}
	})
}
