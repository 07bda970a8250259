package sorter

import (
	"fmt"
	"strings"
)

// Origin classifies an import statement by where its path points.
type Origin int

const (
	FrameworkOrigin Origin = iota
	ModuleOrigin
	AliasedModuleOrigin
	RelativePathOrigin
)

// allOrigins lists every origin in declaration order, which is also the
// default bucket order when no user priority is configured.
var allOrigins = []Origin{FrameworkOrigin, ModuleOrigin, AliasedModuleOrigin, RelativePathOrigin}

// String returns the canonical configuration name of the origin.
func (o Origin) String() string {
	switch o {
	case FrameworkOrigin:
		return "framework"
	case ModuleOrigin:
		return "module"
	case AliasedModuleOrigin:
		return "aliased-module"
	case RelativePathOrigin:
		return "relative-path"
	}
	return fmt.Sprintf("origin(%d)", int(o))
}

// ParseOrigin maps a configuration name to an Origin. Names are matched
// case-insensitively and accept underscores in place of hyphens.
func ParseOrigin(name string) (Origin, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, origin := range allOrigins {
		if origin.String() == normalized {
			return origin, nil
		}
	}
	return 0, fmt.Errorf("unknown import classification %q", name)
}

// SortPolicy selects how statements or named bindings are ordered.
type SortPolicy int

const (
	SortNone SortPolicy = iota
	SortAscending
	SortDescending
	SortShorterFirst
	SortLongerFirst
)

// String returns the canonical configuration name of the policy.
func (p SortPolicy) String() string {
	switch p {
	case SortNone:
		return "none"
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	case SortShorterFirst:
		return "shorter-first"
	case SortLongerFirst:
		return "longer-first"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParseSortPolicy maps a configuration name to a SortPolicy. Names are
// matched case-insensitively and accept underscores in place of hyphens.
func ParseSortPolicy(name string) (SortPolicy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, policy := range []SortPolicy{SortNone, SortAscending, SortDescending, SortShorterFirst, SortLongerFirst} {
		if policy.String() == normalized {
			return policy, nil
		}
	}
	return 0, fmt.Errorf("unknown sort policy %q", name)
}

// BindingPair is one entry of a braced named-binding block.
type BindingPair struct {
	Display string // as written, "name" or "name as alias"
	Compare string // alias if present, else name; used for ordering
}

// ImportRecord is the structured form of a single import statement.
type ImportRecord struct {
	Origin                    Origin
	DefaultBinding            string // raw default/namespace binding text, may be empty
	CleanedDefaultBinding     string // alias-resolved form, for emptiness checks only
	NamedBindings             []BindingPair
	PathText                  string // quoted path literal as written, semicolon included
	CleanedPathText           string // path with quotes and semicolons stripped
	HasMultilineNamedBindings bool
	RenderedText              string // set by the renderer
}

// IsSideEffect reports whether the statement binds nothing and exists only
// for its evaluation effect. Such statements carry no from clause.
func (r *ImportRecord) IsSideEffect() bool {
	return r.CleanedDefaultBinding == "" && len(r.NamedBindings) == 0
}
