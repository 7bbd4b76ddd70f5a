package validation

import (
	"fmt"
	"strings"
)

// Kind identifies the per-field constraint
type Kind int

const (
	// KindString requires a non-empty string
	KindString Kind = iota
	// KindOptionalString accepts any string, including empty
	KindOptionalString
	// KindEnum requires a string drawn from a closed set
	KindEnum
	// KindNumber requires a non-negative number
	KindNumber
	// KindDate requires a non-empty date string. Dates are never parsed at
	// this layer; they pass through to the resource service as opaque strings.
	KindDate
)

// Field declares one schema field: its constraint, whether it is required,
// and the default applied when an optional field is absent on create.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	Enum     []string
	Default  interface{}
}

// Schema is the declarative validation record for one (resource, operation)
// pair. Field declaration order drives error accumulation order.
type Schema struct {
	Fields []Field
}

// FieldErrors maps a field name to its ordered list of violation messages.
// Every violated constraint contributes its own message.
type FieldErrors map[string][]string

// Validate checks the raw payload against the schema. On success it returns
// the normalized payload: unknown fields dropped, defaults applied, every
// present field type-checked. Validation is all-or-nothing; a payload with
// any violation produces no normalized output.
func (s Schema) Validate(payload map[string]interface{}) (map[string]interface{}, FieldErrors) {
	normalized := make(map[string]interface{}, len(s.Fields))
	fieldErrors := FieldErrors{}

	for _, field := range s.Fields {
		value, present := payload[field.Name]

		if !present || value == nil {
			if field.Required {
				fieldErrors[field.Name] = append(fieldErrors[field.Name], "is required")
				continue
			}
			if field.Default != nil {
				normalized[field.Name] = field.Default
			}
			continue
		}

		messages := checkField(field, value)
		if len(messages) > 0 {
			fieldErrors[field.Name] = append(fieldErrors[field.Name], messages...)
			continue
		}

		normalized[field.Name] = normalize(field, value)
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return normalized, nil
}

// Optional derives the update schema: the same per-field constraints with
// nothing required and no defaults. An empty update payload is valid.
func (s Schema) Optional() Schema {
	fields := make([]Field, len(s.Fields))
	for i, field := range s.Fields {
		field.Required = false
		field.Default = nil
		fields[i] = field
	}
	return Schema{Fields: fields}
}

// checkField returns every violation for a present value, in constraint order
func checkField(field Field, value interface{}) []string {
	var messages []string

	switch field.Kind {
	case KindString, KindDate:
		str, ok := value.(string)
		if !ok {
			return []string{"must be a string"}
		}
		if strings.TrimSpace(str) == "" {
			messages = append(messages, "must not be empty")
		}

	case KindOptionalString:
		if _, ok := value.(string); !ok {
			return []string{"must be a string"}
		}

	case KindEnum:
		str, ok := value.(string)
		if !ok {
			return []string{"must be a string"}
		}
		if strings.TrimSpace(str) == "" {
			messages = append(messages, "must not be empty")
		}
		if !containsString(field.Enum, str) {
			messages = append(messages, fmt.Sprintf("must be one of: %s", strings.Join(field.Enum, ", ")))
		}

	case KindNumber:
		num, ok := asNumber(value)
		if !ok {
			return []string{"must be a number"}
		}
		if num < 0 {
			messages = append(messages, "must be greater than or equal to 0")
		}
	}

	return messages
}

// normalize converts an accepted value to its canonical representation
func normalize(field Field, value interface{}) interface{} {
	if field.Kind == KindNumber {
		num, _ := asNumber(value)
		return num
	}
	return value
}

// asNumber accepts the numeric types a decoded JSON payload or a direct
// caller may supply
func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func containsString(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
