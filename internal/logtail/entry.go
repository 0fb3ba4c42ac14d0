package logtail

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Entry is one structured log line as written by foodie's JSON logger.
type Entry struct {
	Time    string
	Level   string
	Message string
	Fields  []Field
}

// Field is an extra key/value pair on an Entry, in key order.
type Field struct {
	Key   string
	Value string
}

var reservedKeys = map[string]bool{
	"ts": true, "level": true, "msg": true, "caller": true, "logger": true, "stacktrace": true,
}

// Parse decodes a JSON log line. It reports false for anything that is not a
// JSON object, so plain text lines can be shown unchanged.
func Parse(line string) (Entry, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "{") {
		return Entry{}, false
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Entry{}, false
	}

	entry := Entry{
		Time:    stringValue(raw["ts"]),
		Level:   strings.ToUpper(stringValue(raw["level"])),
		Message: stringValue(raw["msg"]),
	}
	keys := make([]string, 0, len(raw))
	for key := range raw {
		if !reservedKeys[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		entry.Fields = append(entry.Fields, Field{Key: key, Value: stringValue(raw[key])})
	}
	return entry, true
}

// String renders the entry as "time LEVEL message key=value ...".
func (e Entry) String() string {
	parts := make([]string, 0, 3+len(e.Fields))
	for _, part := range []string{e.Time, e.Level, e.Message} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	for _, f := range e.Fields {
		parts = append(parts, f.Key+"="+f.Value)
	}
	return strings.Join(parts, " ")
}

// Format renders a raw log line for display.
func Format(line string) string {
	entry, ok := Parse(line)
	if !ok {
		return line
	}
	return entry.String()
}

func stringValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return fmt.Sprintf("%v", value)
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(encoded)
	}
}
