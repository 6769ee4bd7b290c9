package config

import (
	"sort"
	"strings"
)

// UpsertChannelConfig inserts or replaces a [channels.<kind>] section.
func UpsertChannelConfig(existing, kind string, values map[string]any) (string, bool) {
	header := "[channels." + kind + "]"
	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines)+8)
	replaced := false

	for i := 0; i < len(lines); {
		line := lines[i]
		trim := strings.TrimSpace(line)
		if trim == header {
			out = append(out, line)
			appendChannelOptions(&out, values)
			replaced = true
			i++
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if isSectionHeader(next) {
					break
				}
				i++
			}
			continue
		}
		out = append(out, line)
		i++
	}

	if !replaced {
		if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
			out = append(out, "")
		}
		out = append(out, "# Added by config channel")
		out = append(out, header)
		appendChannelOptions(&out, values)
	}

	return strings.Join(out, "\n"), true
}

// DeleteChannelConfig removes a [channels.<kind>] section if present.
func DeleteChannelConfig(existing, kind string) (string, bool) {
	header := "[channels." + kind + "]"
	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines))
	removed := false

	for i := 0; i < len(lines); {
		line := lines[i]
		trim := strings.TrimSpace(line)
		if trim == header {
			removed = true
			i++
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if isSectionHeader(next) {
					break
				}
				i++
			}
			continue
		}
		out = append(out, line)
		i++
	}

	return strings.Join(out, "\n"), removed
}

func appendChannelOptions(out *[]string, values map[string]any) {
	for _, key := range channelOptionOrder(values) {
		appendOption(out, ConfigOption{Key: key, Default: values[key]})
	}
}

func channelOptionOrder(values map[string]any) []string {
	pref := []string{"extensions"}
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, k := range pref {
		if _, ok := values[k]; ok {
			out = append(out, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(values))
	for k := range values {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	out = append(out, rest...)
	return out
}
