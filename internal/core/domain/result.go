package domain

// Outcome is the terminal state of a bump run.
type Outcome string

const (
	// OutcomeBumped means manifests were rewritten and recorded.
	OutcomeBumped Outcome = "bumped"
	// OutcomePlanned means a dry run resolved the affected packages without writing.
	OutcomePlanned Outcome = "planned"
	// OutcomeNothingAffected means resolution found no affected package.
	// It is a valid, non-error result.
	OutcomeNothingAffected Outcome = "nothing-affected"
)

// Result is returned from a bump run and interpreted by the CLI boundary.
type Result struct {
	Outcome         Outcome
	PreviousVersion string
	Version         string
	Waves           Waves

	// Touched lists the files written, in write order.
	Touched []string

	// Tag is the created tag name, empty when tagging was skipped.
	Tag string
}
