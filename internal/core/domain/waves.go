package domain

// Wave is one propagation round of affected packages, in catalog order.
type Wave []Package

// Waves is the ordered result of impact resolution. Wave 0 holds the
// directly affected packages, wave k the packages depending on wave k-1.
type Waves []Wave

// Empty reports whether no package is affected.
func (w Waves) Empty() bool {
	return w.Len() == 0
}

// Len returns the number of affected packages across all waves.
func (w Waves) Len() int {
	n := 0
	for _, wave := range w {
		n += len(wave)
	}
	return n
}

// Flatten returns all affected packages, wave order preserved.
func (w Waves) Flatten() []Package {
	out := make([]Package, 0, w.Len())
	for _, wave := range w {
		out = append(out, wave...)
	}
	return out
}

// NameSet returns the set of affected package names.
func (w Waves) NameSet() map[string]struct{} {
	set := make(map[string]struct{}, w.Len())
	for _, wave := range w {
		for _, p := range wave {
			set[p.Name] = struct{}{}
		}
	}
	return set
}

// Names returns the package names of a single wave.
func (w Wave) Names() []string {
	names := make([]string, len(w))
	for i, p := range w {
		names[i] = p.Name
	}
	return names
}

// ResolutionOptions are the caller supplied knobs of impact resolution.
type ResolutionOptions struct {
	// OnlyDirectImpact stops after the seed wave.
	OnlyDirectImpact bool

	// ForcedPackages are treated as directly changed regardless of file evidence.
	ForcedPackages map[string]struct{}
}

// NewResolutionOptions builds options from a list of forced package names.
func NewResolutionOptions(onlyDirect bool, forced []string) ResolutionOptions {
	set := make(map[string]struct{}, len(forced))
	for _, name := range forced {
		set[name] = struct{}{}
	}
	return ResolutionOptions{
		OnlyDirectImpact: onlyDirect,
		ForcedPackages:   set,
	}
}

// IsForced reports whether name was forced by the caller.
func (o ResolutionOptions) IsForced(name string) bool {
	_, ok := o.ForcedPackages[name]
	return ok
}
