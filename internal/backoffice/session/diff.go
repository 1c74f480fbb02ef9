package session

import (
	"fmt"

	"bureau/internal/backoffice/client"
	"bureau/internal/domain/entity"
)

// Diff computes the minimal change set between the pre-edit original and
// the working copy of one track, in spec field order. A staged binary
// attachment is always "changed" versus the stored URL or nil original.
// Scalar values compare after numeric normalization so a float64 from JSON
// equals the int the form staged.
func Diff(spec entity.TrackSpec, original, working map[string]any) (map[string]any, map[string]client.Attachment) {
	fields := make(map[string]any)
	files := make(map[string]client.Attachment)

	for _, field := range spec.Fields {
		value, staged := working[field.Name]
		if !staged {
			continue
		}

		if field.Type == entity.FieldFile {
			diffFile(files, field.Name, original[field.Name], value)

			continue
		}

		if !equalValue(original[field.Name], value) {
			fields[field.Name] = value
		}
	}

	return fields, files
}

func diffFile(files map[string]client.Attachment, name string, original, value any) {
	if attachment, ok := value.(client.Attachment); ok {
		if attachment.Content != nil {
			files[name] = attachment

			return
		}
		if attachment.Remove && !isEmpty(original) {
			files[name] = client.Attachment{Remove: true}
		}

		return
	}

	// A plain value in a file slot means "cleared" when empty.
	if isEmpty(value) && !isEmpty(original) {
		files[name] = client.Attachment{Remove: true}
	}
}

// equalValue compares two staged values. Nil and the empty string both
// mean "no value"; numbers compare by magnitude regardless of Go type.
func equalValue(a, b any) bool {
	if isEmpty(a) && isEmpty(b) {
		return true
	}

	if na, ok := asFloat(a); ok {
		if nb, ok := asFloat(b); ok {
			return na == nb
		}

		return false
	}

	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}

	return false
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
