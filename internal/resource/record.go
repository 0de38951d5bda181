package resource

import "strconv"

// Record is one server-side resource record. The backend assigns ids and owns
// the field set, so records stay schemaless here; the Schema says which keys
// matter.
type Record map[string]any

// ID returns the record's identifier as a string, whatever JSON type the
// backend used for it.
func (r Record) ID() string {
	switch v := r["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// String returns a string field, or "" if absent or not a string.
func (r Record) String(key string) string {
	v, _ := r[key].(string)
	return v
}

// Strings returns a string-list field, skipping non-string entries.
func (r Record) Strings(key string) []string {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
