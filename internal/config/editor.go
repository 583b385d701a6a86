package config

import "strings"

// Set replaces the value of key, keeping any inline comment, or appends
// key=value. It reports whether an existing line was updated.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		lineKey, rest, ok := splitEntry(line)
		if !ok || lineKey != key {
			continue
		}

		if idx := strings.Index(rest, "#"); idx >= 0 {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(rest[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset drops every line assigning key. It reports whether any was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if lineKey, _, ok := splitEntry(line); ok && lineKey == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// splitEntry returns the key and raw value of an assignment line.
// Comments and blank lines are not entries.
func splitEntry(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	key, value, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), value, true
}
