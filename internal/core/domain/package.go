// Package domain contains the core domain models for workspace version bumping.
package domain

import "slices"

// ManifestFileName is the name of the package manifest in every workspace member.
const ManifestFileName = "package.json"

// Package is a single workspace member as seen by the impact resolver.
type Package struct {
	// Name is the unique package name.
	Name string

	// Path is the slash separated location relative to the workspace root.
	// It is empty for the root package of a single-package project.
	Path string

	// Version is the current version from the manifest. It may be empty
	// in single-package mode, in which case history supplies the baseline.
	Version string

	// Dependencies lists the names of other catalog packages this package
	// depends on, in manifest declaration order.
	Dependencies []string
}

// HasDependencies reports whether the package has at least one intra-workspace edge.
func (p Package) HasDependencies() bool {
	return len(p.Dependencies) > 0
}

// DependsOn reports whether name is one of the package's workspace dependencies.
func (p Package) DependsOn(name string) bool {
	return slices.Contains(p.Dependencies, name)
}

// Owns reports whether the workspace relative file path lies inside the package.
func (p Package) Owns(file string) bool {
	if p.Path == "" {
		return true
	}
	if len(file) < len(p.Path) || file[:len(p.Path)] != p.Path {
		return false
	}
	return len(file) == len(p.Path) || file[len(p.Path)] == '/'
}

// Catalog is the flat list of packages discovered in a workspace.
type Catalog struct {
	// Root is the absolute workspace root directory.
	Root string

	// Workspace is true when the root manifest declares workspaces.
	Workspace bool

	// RootManifest is the parsed root package.json.
	RootManifest Manifest

	// Packages holds the members in discovery order.
	Packages []Package
}

// Lookup returns the package with the given name.
func (c *Catalog) Lookup(name string) (Package, bool) {
	for _, p := range c.Packages {
		if p.Name == name {
			return p, true
		}
	}
	return Package{}, false
}

// Names returns the package names in discovery order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Packages))
	for i, p := range c.Packages {
		names[i] = p.Name
	}
	return names
}
