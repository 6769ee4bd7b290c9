package config

import (
	"fmt"
	"sort"
	"strings"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	topLevel, sections, order := splitOptions(GetConfigOptions())

	var b strings.Builder
	b.WriteString("# markbridge configuration (TOML)\n")
	for _, o := range topLevel {
		writeOption(&b, o)
	}
	for _, section := range order {
		b.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeOption(&b, o)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// UpdateTOML merges defaults into an existing TOML string and comments out unknown keys.
func UpdateTOML(existing string) (string, bool) {
	opts := GetConfigOptions()
	known := make(map[string]bool, len(opts))
	mapPrefixes := make(map[string]bool)
	for _, o := range opts {
		known[o.Key] = true
		if _, ok := o.Default.(map[string]any); ok {
			mapPrefixes[o.Key] = true
		}
	}

	existingKeys := make(map[string]bool)
	currentSection := ""
	lines := strings.Split(existing, "\n")
	out := make([]string, 0, len(lines))
	changed := false

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") || strings.HasPrefix(trim, ";") {
			out = append(out, line)
			continue
		}
		if isSectionHeader(trim) {
			currentSection = strings.TrimSpace(trim[1 : len(trim)-1])
			out = append(out, line)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		fullKey := key
		if currentSection != "" {
			fullKey = currentSection + "." + key
		}
		existingKeys[fullKey] = true
		if !isKnownKey(fullKey, known, mapPrefixes) {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema")
			out = append(out, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		out = append(out, line)
	}

	missing := make([]ConfigOption, 0)
	for _, o := range opts {
		// Map-valued options are optional sections; absence is their
		// default state, so there is nothing to add.
		if _, ok := o.Default.(map[string]any); ok {
			continue
		}
		if existingKeys[o.Key] {
			continue
		}
		missing = append(missing, o)
	}

	if len(missing) > 0 {
		missingTop, sections, order := splitOptions(missing)
		out = append(out, "", "# Added by config update")
		for _, o := range missingTop {
			appendOption(&out, o)
		}
		for _, section := range order {
			out = append(out, "["+section+"]")
			for _, o := range sections[section] {
				appendOption(&out, o)
			}
		}
		changed = true
	}

	return strings.Join(out, "\n"), changed
}

// splitOptions separates dotted keys into sections, preserving first-seen
// section order. Map-valued options stay top-level (rendered inline).
func splitOptions(opts []ConfigOption) (topLevel []ConfigOption, sections map[string][]ConfigOption, order []string) {
	sections = make(map[string][]ConfigOption)
	for _, o := range opts {
		if !strings.Contains(o.Key, ".") {
			topLevel = append(topLevel, o)
			continue
		}
		parts := strings.SplitN(o.Key, ".", 2)
		section := parts[0]
		if _, ok := sections[section]; !ok {
			order = append(order, section)
		}
		sections[section] = append(sections[section], ConfigOption{
			Key:     parts[1],
			Default: o.Default,
			Comment: o.Comment,
		})
	}
	return topLevel, sections, order
}

func writeOption(b *strings.Builder, o ConfigOption) {
	if o.Comment != "" {
		b.WriteString("# " + o.Comment + "\n")
	}
	// An empty map default renders as documentation only: writing
	// `key = {}` would make later [key.<name>] sections invalid TOML.
	if m, ok := o.Default.(map[string]any); ok && len(m) == 0 {
		b.WriteString("\n")
		return
	}
	b.WriteString(o.Key + " = " + tomlValue(o.Default) + "\n\n")
}

func appendOption(lines *[]string, o ConfigOption) {
	if o.Comment != "" {
		*lines = append(*lines, "# "+o.Comment)
	}
	*lines = append(*lines, o.Key+" = "+tomlValue(o.Default), "")
}

// tomlValue formats the value types GetConfigOptions actually uses:
// strings, bools, ints, string slices, and string-keyed maps.
func tomlValue(value any) string {
	switch v := value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case bool, int, int64:
		return fmt.Sprintf("%v", v)
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = fmt.Sprintf("%q", s)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		if len(v) == 0 {
			return "{}"
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s = \"%v\"", k, v[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") {
		return "", false
	}
	if strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func isKnownKey(key string, known map[string]bool, prefixes map[string]bool) bool {
	if known[key] {
		return true
	}
	for prefix := range prefixes {
		if key == prefix || strings.HasPrefix(key, prefix+".") {
			return true
		}
	}
	return false
}

func isSectionHeader(trim string) bool {
	if trim == "" || strings.HasPrefix(trim, "#") || strings.HasPrefix(trim, ";") {
		return false
	}
	return strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]")
}
