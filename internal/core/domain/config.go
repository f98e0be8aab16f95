package domain

// ConfigFileNames are probed in order when no configuration file is given.
var ConfigFileNames = []string{".bump.yaml", ".bump.yml", ".bump.toml"}

// DefaultCompanionPath is the CSXS manifest patched alongside package.json.
const DefaultCompanionPath = "CSXS/manifest.xml"

// Config is the tool configuration read from the workspace root.
type Config struct {
	// TagPrefix is prepended to the version to form the tag name.
	TagPrefix string `yaml:"tagPrefix" toml:"tagPrefix" validate:"max=32,excludesall= ~^:?*[\\"`

	// Commit creates a version commit after writing manifests.
	Commit bool `yaml:"commit" toml:"commit"`

	// Tag creates an annotated tag for the version commit.
	Tag bool `yaml:"tag" toml:"tag"`

	// Identifiers are the prerelease identifiers offered by the prompt.
	Identifiers []string `yaml:"identifiers" toml:"identifiers" validate:"dive,required,alphanum"`

	// Companion is the workspace relative path of the XML companion manifest.
	// An empty value disables patching.
	Companion string `yaml:"companion" toml:"companion"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		TagPrefix:   "v",
		Commit:      true,
		Tag:         true,
		Identifiers: []string{"alpha", "beta", "rc"},
		Companion:   DefaultCompanionPath,
	}
}

// TagName returns the tag for the given version.
func (c Config) TagName(version string) string {
	return c.TagPrefix + version
}
