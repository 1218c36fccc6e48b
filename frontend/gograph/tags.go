package gograph

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/erraggy/typeschema/graph"
)

// jsonFieldName resolves the member name for a struct field following
// encoding/json rules. skip is true for fields tagged "-".
func jsonFieldName(field reflect.StructField) (name string, omitempty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = field.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}

// parseSchemaTag parses a schema struct tag into an override record.
// The tag is comma-separated key=value pairs; bare keys are boolean
// flags. Values containing commas are not supported.
func parseSchemaTag(tag string) (*graph.Overrides, error) {
	if tag == "" {
		return nil, nil
	}
	ov := &graph.Overrides{}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		if err := applySchemaTagEntry(ov, key, value, hasValue); err != nil {
			return nil, err
		}
	}
	return ov, nil
}

func applySchemaTagEntry(ov *graph.Overrides, key, value string, hasValue bool) error {
	switch key {
	case "title":
		ov.Title = value
	case "description":
		ov.Description = value
	case "format":
		ov.Format = value
	case "pattern":
		ov.Pattern = value
	case "required":
		v, err := tagBool(value, hasValue)
		if err != nil {
			return fmt.Errorf("required: %w", err)
		}
		ov.Required = &v
	case "ignore":
		v, err := tagBool(value, hasValue)
		if err != nil {
			return fmt.Errorf("ignore: %w", err)
		}
		ov.Ignore = v
	case "deprecated":
		v, err := tagBool(value, hasValue)
		if err != nil {
			return fmt.Errorf("deprecated: %w", err)
		}
		ov.Deprecated = v
	case "uniqueItems":
		v, err := tagBool(value, hasValue)
		if err != nil {
			return fmt.Errorf("uniqueItems: %w", err)
		}
		ov.UniqueItems = v
	case "min":
		f, err := tagFloat(value)
		if err != nil {
			return fmt.Errorf("min: %w", err)
		}
		ov.Minimum = &f
	case "max":
		f, err := tagFloat(value)
		if err != nil {
			return fmt.Errorf("max: %w", err)
		}
		ov.Maximum = &f
	case "multipleOf":
		f, err := tagFloat(value)
		if err != nil {
			return fmt.Errorf("multipleOf: %w", err)
		}
		ov.MultipleOf = &f
	case "minLength":
		n, err := tagInt(value)
		if err != nil {
			return fmt.Errorf("minLength: %w", err)
		}
		ov.MinLength = &n
	case "maxLength":
		n, err := tagInt(value)
		if err != nil {
			return fmt.Errorf("maxLength: %w", err)
		}
		ov.MaxLength = &n
	case "minItems":
		n, err := tagInt(value)
		if err != nil {
			return fmt.Errorf("minItems: %w", err)
		}
		ov.MinItems = &n
	case "maxItems":
		n, err := tagInt(value)
		if err != nil {
			return fmt.Errorf("maxItems: %w", err)
		}
		ov.MaxItems = &n
	case "default":
		ov.Default = value
	case "example":
		ov.Example = value
	case "const":
		ov.Const = value
	default:
		return fmt.Errorf("unrecognized key %q", key)
	}
	return nil
}

func tagBool(value string, hasValue bool) (bool, error) {
	if !hasValue {
		return true, nil
	}
	return strconv.ParseBool(value)
}

func tagFloat(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

func tagInt(value string) (int, error) {
	return strconv.Atoi(value)
}
