package orgmodel

// Fixed lookup tables. These are part of the generator's contract and are
// never mutated at runtime.

// DefaultOrgName is used when no manifest or --name supplies one.
const DefaultOrgName = "My AI Org"

// ObserverName is the internal observer agent. It is an implementation
// device of the source plugin, never a user-facing role, and is excluded
// from the visible org in every input mode.
const ObserverName = "observer"

// ModelInherit means the agent runs on the caller's default model.
const ModelInherit = "inherit"

// Orchestrator is the sentinel agent identifier for utilities that belong
// to the coordinating role itself rather than a specific agent.
const Orchestrator = "orchestrator"

// metaSkills are orchestration/meeting/batch skills. They never appear on
// agent cards or in the lifecycle; they surface as utility entries.
var metaSkills = map[string]bool{
	"batch-run":      true,
	"status-summary": true,
	"scaffold":       true,
	"explain":        true,
	"kickoff":        true,
	"standup":        true,
	"story":          true,
}

// IsMetaSkill reports whether name belongs to the fixed meta-skill set.
func IsMetaSkill(name string) bool {
	return metaSkills[name]
}

// DefaultLifecycle is the fallback pipeline, filtered at discovery time to
// the skills that actually exist.
var DefaultLifecycle = []string{"discover", "spec", "design", "build", "review", "ship"}

// Phase is one of the four fixed lifecycle groupings.
type Phase struct {
	Name  string
	Color string
}

// Phases are the fixed four lifecycle phases, in order.
var Phases = [4]Phase{
	{Name: "Discovery", Color: "#38bdf8"},
	{Name: "Planning", Color: "#818cf8"},
	{Name: "Execution", Color: "#c084fc"},
	{Name: "Launch", Color: "#fbbf24"},
}

// PhaseIndex distributes n lifecycle steps evenly across the four phases
// and returns the phase for step i. The 8-step pipeline is pinned to the
// documented 2-2-2-2 split.
func PhaseIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	if n == 8 {
		return i / 2
	}
	idx := int(float64(i) / (float64(n) / 4.0))
	if idx > 3 {
		idx = 3
	}
	return idx
}

// PreferredAgentOrder is the fixed display order for well-known roles.
// Unrecognized roles render after these, alphabetically.
var PreferredAgentOrder = []string{
	"Chief Of Staff",
	"Product Manager",
	"Researcher",
	"Designer",
	"Engineer",
	"QA",
	"Analyst",
	"Marketer",
	"Support",
}

// DecisionMemoryName is the invocation label for the built-in decision
// memory feature card.
const DecisionMemoryName = "decision memory"

// PreferredUtilityOrder is the fixed display order for utility cards.
// The kickoff meeting skill is deliberately absent: it renders in the
// teams section instead of the card grid.
var PreferredUtilityOrder = []string{
	DecisionMemoryName,
	"batch-run",
	"status-summary",
	"standup",
	"story",
	"scaffold",
	"explain",
}

// UtilityIcons maps utility invocation names to their card icons.
var UtilityIcons = map[string]string{
	DecisionMemoryName: "\U0001F9E0", // brain
	"batch-run":        "\u26A1",     // high voltage
	"status-summary":   "\U0001F4CA", // bar chart
	"standup":          "\U0001F5E3", // speaking head
	"story":            "\U0001F4D6", // open book
	"scaffold":         "\U0001F3D7", // building construction
	"explain":          "\U0001F4A1", // light bulb
	"kickoff":          "\U0001F91D", // handshake
}

// UtilityDefaults are the built-in descriptions used when a meta-skill
// defines no description of its own.
var UtilityDefaults = map[string]string{
	DecisionMemoryName: "Decisions made along the way are recorded and recalled automatically in later stages.",
	"batch-run":        "Run every lifecycle stage back-to-back on one feature instead of stepping through the pipeline.",
	"status-summary":   "Summarize the state of every work item and surface blockers on demand.",
	"standup":          "Run a quick standup: each agent reports progress, plans, and blockers.",
	"story":            "Turn shipped work into a narrative update for stakeholders.",
	"scaffold":         "Bootstrap a new workspace with the org's directory and file conventions.",
	"explain":          "Explain any part of the org, its skills, or its output in plain language.",
	"kickoff":          "Kick off a project: align the whole team on goals before the pipeline starts.",
}

// ModelBadgeColors maps model identifiers to badge colors; unknown models
// fall back to the inherit color.
var ModelBadgeColors = map[string]string{
	"opus":       "#c084fc",
	"sonnet":     "#818cf8",
	"haiku":      "#38bdf8",
	ModelInherit: "#64748b",
}
