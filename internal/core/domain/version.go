package domain

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// BumpKind names a version increment.
type BumpKind string

const (
	BumpPatch      BumpKind = "patch"
	BumpMinor      BumpKind = "minor"
	BumpMajor      BumpKind = "major"
	BumpPrepatch   BumpKind = "prepatch"
	BumpPreminor   BumpKind = "preminor"
	BumpPremajor   BumpKind = "premajor"
	BumpPrerelease BumpKind = "prerelease"
)

// BumpKinds lists the increments in the order they are offered to the user.
var BumpKinds = []BumpKind{
	BumpPatch,
	BumpMinor,
	BumpMajor,
	BumpPrepatch,
	BumpPreminor,
	BumpPremajor,
	BumpPrerelease,
}

// ParseBumpKind validates a user supplied increment kind.
func ParseBumpKind(s string) (BumpKind, error) {
	kind := BumpKind(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(BumpKinds, kind) {
		return "", zerr.With(ErrInvalidBumpKind, "kind", s)
	}
	return kind, nil
}

// Label returns the human readable name of the kind, e.g. "Pre Minor".
func (k BumpKind) Label() string {
	switch k {
	case BumpPatch:
		return "Patch"
	case BumpMinor:
		return "Minor"
	case BumpMajor:
		return "Major"
	case BumpPrepatch:
		return "Pre Patch"
	case BumpPreminor:
		return "Pre Minor"
	case BumpPremajor:
		return "Pre Major"
	case BumpPrerelease:
		return "Pre Release"
	default:
		return string(k)
	}
}

// Version is a parsed semantic version.
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Prerelease []string
	Build      string
}

// ParseVersion parses a strict semantic version. A single leading "v" is accepted.
func ParseVersion(s string) (Version, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "v")
	canonical := "v" + raw
	if raw == "" || !semver.IsValid(canonical) {
		return Version{}, zerr.With(ErrInvalidVersionInput, "version", s)
	}

	core, build, _ := strings.Cut(raw, "+")
	// semver.IsValid accepts shorthands such as "1.2"; Canonical expands them.
	if semver.Canonical(canonical) != "v"+core {
		return Version{}, zerr.With(ErrInvalidVersionInput, "version", s)
	}

	pre := semver.Prerelease(canonical)
	numbers := strings.Split(strings.TrimSuffix(core, pre), ".")

	var v Version
	for i, dst := range []*uint64{&v.Major, &v.Minor, &v.Patch} {
		n, err := strconv.ParseUint(numbers[i], 10, 64)
		if err != nil {
			return Version{}, zerr.With(zerr.Wrap(err, ErrInvalidVersionInput.Error()), "version", s)
		}
		*dst = n
	}
	if pre != "" {
		v.Prerelease = strings.Split(strings.TrimPrefix(pre, "-"), ".")
	}
	v.Build = build
	return v, nil
}

// IsPrerelease reports whether s is a valid version carrying a prerelease part.
// Invalid or empty input is not a prerelease.
func IsPrerelease(s string) bool {
	v, err := ParseVersion(s)
	if err != nil {
		return false
	}
	return v.IsPrerelease()
}

// IsPrerelease reports whether the version has prerelease identifiers.
func (v Version) IsPrerelease() bool {
	return len(v.Prerelease) > 0
}

// String formats the version without a leading "v".
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Patch, 10))
	if len(v.Prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(strings.Join(v.Prerelease, "."))
	}
	if v.Build != "" {
		b.WriteByte('+')
		b.WriteString(v.Build)
	}
	return b.String()
}

// Inc returns the version incremented by kind. The identifier is used by the
// pre* kinds; an empty identifier yields purely numeric prereleases such as 1.2.4-0.
// Build metadata is dropped.
func (v Version) Inc(kind BumpKind, identifier string) (Version, error) {
	next := Version{
		Major:      v.Major,
		Minor:      v.Minor,
		Patch:      v.Patch,
		Prerelease: slices.Clone(v.Prerelease),
	}

	switch kind {
	case BumpMajor:
		// 2.0.0-rc.1 finalizes to 2.0.0.
		if next.Minor != 0 || next.Patch != 0 || !next.IsPrerelease() {
			next.Major++
		}
		next.Minor, next.Patch, next.Prerelease = 0, 0, nil
	case BumpMinor:
		if next.Patch != 0 || !next.IsPrerelease() {
			next.Minor++
		}
		next.Patch, next.Prerelease = 0, nil
	case BumpPatch:
		if !next.IsPrerelease() {
			next.Patch++
		}
		next.Prerelease = nil
	case BumpPremajor:
		next.Major++
		next.Minor, next.Patch, next.Prerelease = 0, 0, nil
		next.incPre(identifier)
	case BumpPreminor:
		next.Minor++
		next.Patch, next.Prerelease = 0, nil
		next.incPre(identifier)
	case BumpPrepatch:
		next.Patch++
		next.Prerelease = nil
		next.incPre(identifier)
	case BumpPrerelease:
		if !next.IsPrerelease() {
			next.Patch++
		}
		next.incPre(identifier)
	default:
		return Version{}, zerr.With(ErrInvalidBumpKind, "kind", string(kind))
	}
	return next, nil
}

func (v *Version) incPre(identifier string) {
	if len(v.Prerelease) == 0 {
		v.Prerelease = []string{"0"}
	} else {
		bumped := false
		for i := len(v.Prerelease) - 1; i >= 0; i-- {
			if n, err := strconv.ParseUint(v.Prerelease[i], 10, 64); err == nil {
				v.Prerelease[i] = strconv.FormatUint(n+1, 10)
				bumped = true
				break
			}
		}
		if !bumped {
			v.Prerelease = append(v.Prerelease, "0")
		}
	}

	if identifier == "" {
		return
	}
	if v.Prerelease[0] == identifier && len(v.Prerelease) > 1 && isNumeric(v.Prerelease[1]) {
		return
	}
	v.Prerelease = []string{identifier, "0"}
}

func isNumeric(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// VersionChoice is one candidate offered when picking the next version.
type VersionChoice struct {
	Kind    BumpKind
	Version string
}

// Label renders the choice as "Patch 1.2.3 -> 1.2.4".
func (c VersionChoice) Label(current string) string {
	return c.Kind.Label() + " " + current + " -> " + c.Version
}

// Choices computes the next version for every bump kind.
func Choices(current Version, identifier string) ([]VersionChoice, error) {
	choices := make([]VersionChoice, 0, len(BumpKinds))
	for _, kind := range BumpKinds {
		next, err := current.Inc(kind, identifier)
		if err != nil {
			return nil, err
		}
		choices = append(choices, VersionChoice{Kind: kind, Version: next.String()})
	}
	return choices, nil
}
