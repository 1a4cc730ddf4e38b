package reconcile

// Result represents the reconciliation output for a single product.
// It contains presence flags for each source and any detected mismatches.
type Result struct {
	// ID is the product id.
	ID string `json:"id"`

	// Present maps source name to whether the id exists there.
	Present map[string]bool `json:"present"`

	// Mismatch describes fields that differ between sources,
	// e.g. "title: storage=Tee database=Tee 2".
	Mismatch []string `json:"mismatch"`
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCopy writes the primary document to a mirror that lacks it.
	ActionCopy ActionType = "copy"
	// ActionSync overwrites a mirror document that differs from the primary.
	ActionSync ActionType = "sync"
	// ActionDelete removes a mirror document the primary does not have.
	ActionDelete ActionType = "delete"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the product id.
	Key string `json:"key"`

	// Target is the name of the mirror source the action mutates.
	Target string `json:"target"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan contains reconciliation results and planned actions.
type Plan struct {
	// Primary is the source every mirror is reconciled against.
	Primary string `json:"primary"`

	// Results contains per-product reconciliation data.
	Results []Result `json:"results"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a plan.
type Summary struct {
	TotalItems int `json:"total_items"`

	// MissingPrimary counts products only the mirrors hold.
	MissingPrimary int `json:"missing_primary"`

	// MissingMirror counts products absent from at least one mirror.
	MissingMirror int `json:"missing_mirror"`

	Mismatches int `json:"mismatches"`

	CopyActions  int `json:"copy_actions"`
	SyncActions  int `json:"sync_actions"`
	PurgeActions int `json:"purge_actions"`
}

// Options controls which actions are planned and whether they run.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// DoCopy plans copies of primary products missing from mirrors.
	DoCopy bool

	// DoSync plans overwrites of mirror products that differ from the primary.
	DoSync bool

	// DoPurge plans deletion of mirror products the primary does not have.
	DoPurge bool

	// Confirmed indicates user has confirmed destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}
