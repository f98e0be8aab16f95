package domain

// CommitKind classifies a history record.
type CommitKind string

const (
	// CommitKindVersion marks a commit that recorded a release version.
	CommitKindVersion CommitKind = "version"
	// CommitKindOther marks any other commit.
	CommitKindOther CommitKind = "other"
)

// Commit is one record of project history.
type Commit struct {
	// Ref is an opaque reference usable by the diff port.
	Ref string

	// Subject is the first line of the commit message.
	Subject string

	Kind CommitKind
}

// Baseline is the last point in history where a version was recorded.
// A nil *Baseline means no version was ever recorded.
type Baseline struct {
	Version string
	Ref     string
}
