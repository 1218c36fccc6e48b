package generator

import (
	"fmt"

	"github.com/erraggy/typeschema/graph"
	"github.com/erraggy/typeschema/schema"
	"github.com/erraggy/typeschema/tserrors"
)

// resolvedMetadata is the merged annotation state for one type or
// member. Declarative overrides win over documentation tags, which win
// over free-text summary fallbacks. Constraint fields come from
// overrides only.
type resolvedMetadata struct {
	title       string
	description string
	examples    []any
	deprecated  bool

	format  string
	pattern string
	cnst    any
	dflt    any

	minimum          *float64
	maximum          *float64
	exclusiveMinimum bool
	exclusiveMaximum bool
	multipleOf       *float64

	minLength     *int
	maxLength     *int
	minItems      *int
	maxItems      *int
	minProperties *int
	maxProperties *int

	uniqueItems bool
}

// resolveMetadata merges the override record and documentation attached
// to one node or member. typeID and member identify the source for
// error reporting. doc is ignored when doc-comment parsing is disabled.
func resolveMetadata(typeID graph.TypeID, member string, ov *graph.Overrides, doc *graph.DocComment, cfg *config) (*resolvedMetadata, error) {
	md := &resolvedMetadata{}

	if !cfg.parseDocComments {
		doc = nil
	}
	if !doc.Empty() {
		md.title = doc.Title
		md.description = doc.Description
		if md.description == "" {
			// Untagged prose: remarks become the description, with the
			// summary promoted to a title when both are present.
			if doc.Remarks != "" {
				if md.title == "" {
					md.title = doc.Summary
				}
				md.description = doc.Remarks
			} else {
				md.description = doc.Summary
			}
		}
		if doc.Example != "" {
			md.examples = []any{doc.Example}
		}
	}

	if ov != nil {
		if ov.Title != "" {
			md.title = ov.Title
		}
		if ov.Description != "" {
			md.description = ov.Description
		}
		if ov.Example != nil {
			md.examples = []any{ov.Example}
		}
		md.deprecated = ov.Deprecated

		md.format = ov.Format
		md.pattern = ov.Pattern
		md.cnst = ov.Const
		md.dflt = ov.Default

		md.minimum = ov.Minimum
		md.maximum = ov.Maximum
		md.exclusiveMinimum = ov.ExclusiveMinimum
		md.exclusiveMaximum = ov.ExclusiveMaximum
		md.multipleOf = ov.MultipleOf

		md.minLength = ov.MinLength
		md.maxLength = ov.MaxLength
		md.minItems = ov.MinItems
		md.maxItems = ov.MaxItems
		md.minProperties = ov.MinProperties
		md.maxProperties = ov.MaxProperties
		md.uniqueItems = ov.UniqueItems
	}

	if err := md.validateRanges(typeID, member); err != nil {
		return nil, err
	}
	return md, nil
}

// validateRanges rejects override pairs that can never be satisfied.
func (md *resolvedMetadata) validateRanges(typeID graph.TypeID, member string) error {
	rangeErr := func(option, msg string) error {
		return &tserrors.ConfigError{
			TypeID:  string(typeID),
			Member:  member,
			Option:  option,
			Message: msg,
		}
	}
	if md.minimum != nil && md.maximum != nil && *md.minimum > *md.maximum {
		return rangeErr("minimum", fmt.Sprintf("minimum %v exceeds maximum %v", *md.minimum, *md.maximum))
	}
	if md.minLength != nil && md.maxLength != nil && *md.minLength > *md.maxLength {
		return rangeErr("minLength", fmt.Sprintf("minLength %d exceeds maxLength %d", *md.minLength, *md.maxLength))
	}
	if md.minItems != nil && md.maxItems != nil && *md.minItems > *md.maxItems {
		return rangeErr("minItems", fmt.Sprintf("minItems %d exceeds maxItems %d", *md.minItems, *md.maxItems))
	}
	if md.minProperties != nil && md.maxProperties != nil && *md.minProperties > *md.maxProperties {
		return rangeErr("minProperties", fmt.Sprintf("minProperties %d exceeds maxProperties %d", *md.minProperties, *md.maxProperties))
	}
	if md.multipleOf != nil && *md.multipleOf <= 0 {
		return rangeErr("multipleOf", fmt.Sprintf("must be positive, got %v", *md.multipleOf))
	}
	return nil
}

// applyTo decorates a generated fragment with the resolved state.
// Overrides replace whatever the structural builder produced; empty
// resolved fields leave the fragment untouched.
func (md *resolvedMetadata) applyTo(s *schema.Schema) {
	if md.title != "" {
		s.Title = md.title
	}
	if md.description != "" {
		s.Description = md.description
	}
	if len(md.examples) > 0 {
		s.Examples = md.examples
	}
	if md.deprecated {
		s.Deprecated = true
	}

	if md.format != "" {
		s.Format = md.format
	}
	if md.pattern != "" {
		s.Pattern = md.pattern
	}
	if md.cnst != nil {
		s.Const = md.cnst
	}
	if md.dflt != nil {
		s.Default = md.dflt
	}

	if md.minimum != nil {
		if md.exclusiveMinimum {
			s.ExclusiveMinimum = md.minimum
		} else {
			s.Minimum = md.minimum
		}
	}
	if md.maximum != nil {
		if md.exclusiveMaximum {
			s.ExclusiveMaximum = md.maximum
		} else {
			s.Maximum = md.maximum
		}
	}
	if md.multipleOf != nil {
		s.MultipleOf = md.multipleOf
	}

	if md.minLength != nil {
		s.MinLength = md.minLength
	}
	if md.maxLength != nil {
		s.MaxLength = md.maxLength
	}
	if md.minItems != nil {
		s.MinItems = md.minItems
	}
	if md.maxItems != nil {
		s.MaxItems = md.maxItems
	}
	if md.minProperties != nil {
		s.MinProperties = md.minProperties
	}
	if md.maxProperties != nil {
		s.MaxProperties = md.maxProperties
	}
	if md.uniqueItems {
		s.UniqueItems = true
	}
}
