package generator

import (
	"fmt"

	"github.com/erraggy/typeschema/tserrors"
)

// AccessibilityMode controls which member visibilities are eligible for
// generation.
type AccessibilityMode int

const (
	// PublicOnly generates only public members (the default).
	PublicOnly AccessibilityMode = iota
	// PublicAndInternal additionally generates internal members.
	PublicAndInternal
	// All generates members of every visibility.
	All
)

// String returns the mode's snapshot/CLI spelling.
func (m AccessibilityMode) String() string {
	switch m {
	case PublicOnly:
		return "public"
	case PublicAndInternal:
		return "internal"
	case All:
		return "all"
	default:
		return fmt.Sprintf("AccessibilityMode(%d)", int(m))
	}
}

// ParseAccessibilityMode parses the CLI spelling of a mode.
func ParseAccessibilityMode(s string) (AccessibilityMode, error) {
	switch s {
	case "", "public":
		return PublicOnly, nil
	case "internal":
		return PublicAndInternal, nil
	case "all":
		return All, nil
	default:
		return 0, &tserrors.ConfigError{Option: "accessibility", Message: fmt.Sprintf("unrecognized mode %q", s)}
	}
}

// DictionaryKeyMode is the policy for dictionary types whose key type
// is not representable as a plain string-keyed JSON object property.
type DictionaryKeyMode int

const (
	// StringOnly emits an explicit unsupported-marker fragment for
	// dictionaries with non-string-representable keys (the default).
	StringOnly DictionaryKeyMode = iota
	// Permissive coerces any key type to a string property name,
	// recording the original key type in a $comment.
	Permissive
)

// String returns the mode's snapshot/CLI spelling.
func (m DictionaryKeyMode) String() string {
	switch m {
	case StringOnly:
		return "string-only"
	case Permissive:
		return "permissive"
	default:
		return fmt.Sprintf("DictionaryKeyMode(%d)", int(m))
	}
}

// ParseDictionaryKeyMode parses the CLI spelling of a mode.
func ParseDictionaryKeyMode(s string) (DictionaryKeyMode, error) {
	switch s {
	case "", "string-only":
		return StringOnly, nil
	case "permissive":
		return Permissive, nil
	default:
		return 0, &tserrors.ConfigError{Option: "dictionaryKeyMode", Message: fmt.Sprintf("unrecognized mode %q", s)}
	}
}

// DefaultMaxDepth is the recursion bound used when WithMaxDepth is not
// given. It permits deep graphs while keeping runaway recursion through
// anonymous shapes deterministic and testable.
const DefaultMaxDepth = 64

// config is the immutable option bundle for one Convert call.
type config struct {
	maxDepth             int
	parseDocComments     bool
	enumAsUnderlyingType bool
	includeInterfaces    bool
	accessibility        AccessibilityMode
	dictionaryKeyMode    DictionaryKeyMode
	commonNamespace      string
	id                   string
	allowAdditional      bool
	titleFromNames       bool
	logger               Logger
}

func defaultConfig() config {
	return config{
		maxDepth:          DefaultMaxDepth,
		parseDocComments:  true,
		includeInterfaces: true,
		logger:            NopLogger{},
	}
}

// Option configures one Convert call.
type Option func(*config)

// WithMaxDepth sets the recursion bound. Occurrences deeper than depth
// emit a too-deep marker fragment instead of descending further.
// Non-positive values are rejected by Convert.
func WithMaxDepth(depth int) Option {
	return func(c *config) { c.maxDepth = depth }
}

// WithDocComments controls whether free-text documentation is consulted
// as a metadata source. Enabled by default.
func WithDocComments(enabled bool) Option {
	return func(c *config) { c.parseDocComments = enabled }
}

// WithEnumAsUnderlyingType switches enum output from a string value
// list to the enum's underlying integer representation with storage
// width bounds. Display-name overrides are ignored in that mode.
func WithEnumAsUnderlyingType(enabled bool) Option {
	return func(c *config) { c.enumAsUnderlyingType = enabled }
}

// WithIncludeInterfaces controls whether interface types with known
// derived types emit polymorphic unions. When disabled, an interface
// falls back to a plain object of its own members. Enabled by default.
func WithIncludeInterfaces(enabled bool) Option {
	return func(c *config) { c.includeInterfaces = enabled }
}

// WithAccessibility sets which member visibilities are eligible.
// The default is PublicOnly.
func WithAccessibility(mode AccessibilityMode) Option {
	return func(c *config) { c.accessibility = mode }
}

// WithDictionaryKeyMode sets the policy for non-string dictionary keys.
// The default is StringOnly.
func WithDictionaryKeyMode(mode DictionaryKeyMode) Option {
	return func(c *config) { c.dictionaryKeyMode = mode }
}

// WithCommonNamespace sets a namespace prefix stripped when forming
// namespace-qualified definition names during collision resolution.
func WithCommonNamespace(ns string) Option {
	return func(c *config) { c.commonNamespace = ns }
}

// WithID sets the document's $id.
func WithID(id string) Option {
	return func(c *config) { c.id = id }
}

// WithAdditionalProperties opens object schemas to undeclared
// properties. By default objects are closed (additionalProperties:
// false).
func WithAdditionalProperties(allow bool) Option {
	return func(c *config) { c.allowAdditional = allow }
}

// WithTitleFromNames derives a human-readable title from the type's
// simple name for definitions that have no title from overrides or
// documentation. Disabled by default.
func WithTitleFromNames(enabled bool) Option {
	return func(c *config) { c.titleFromNames = enabled }
}

// WithLogger sets the logger for the conversion. The default discards
// all output.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// validate rejects unusable configurations before the walk starts.
func (c *config) validate() error {
	if c.maxDepth <= 0 {
		return &tserrors.ConfigError{
			Option:  "maxDepth",
			Message: fmt.Sprintf("must be positive, got %d", c.maxDepth),
		}
	}
	return nil
}
