package domain

// Dependency is a single entry of a manifest's dependencies mapping.
type Dependency struct {
	Name  string
	Range string
}

// Manifest is the typed, read-only view of a package.json document.
// The rest of the document is opaque and owned by the manifest store.
type Manifest struct {
	Name string

	// Version is empty when the document has no version field.
	Version string

	// Dependencies preserves the declaration order of the document.
	Dependencies []Dependency

	// Workspaces holds the path patterns of a workspace root, if any.
	Workspaces []string
}

// HasVersion reports whether the manifest declares a version.
func (m Manifest) HasVersion() bool {
	return m.Version != ""
}

// DependencyNames returns the declared dependency names in order.
func (m Manifest) DependencyNames() []string {
	names := make([]string, len(m.Dependencies))
	for i, d := range m.Dependencies {
		names[i] = d.Name
	}
	return names
}

// ManifestEdit describes the changes the version writer applies to one manifest.
type ManifestEdit struct {
	// Version is the new value of the version field.
	Version string

	// Dependencies maps dependency names to their new ranges. Entries the
	// document does not already declare are ignored.
	Dependencies map[string]string
}
