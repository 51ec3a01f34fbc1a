package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"maps"
	"strings"

	"gopkg.in/yaml.v3"
)

// NameKey is the record key holding a preset's display name.
const NameKey = "name"

// Record is a flat option name to value mapping, as stored in preset files.
type Record map[string]any

// Name returns the preset name, if any.
func (r Record) Name() string {
	name, _ := r[NameKey].(string)
	return name
}

// Clone returns a shallow copy of r.
func (r Record) Clone() Record {
	return maps.Clone(r)
}

// Merge returns a new record with overrides applied on top of r.
func (r Record) Merge(overrides Record) Record {
	out := make(Record, len(r)+len(overrides))
	maps.Copy(out, r)
	maps.Copy(out, overrides)
	return out
}

// Fingerprint hashes the canonical YAML encoding of the record without its
// name, so renamed presets keep their fingerprint.
func (r Record) Fingerprint() (string, error) {
	body := r.Clone()
	delete(body, NameKey)

	// yaml.v3 sorts map keys, which makes the encoding canonical
	data, err := yaml.Marshal(map[string]any(body))
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// ParseOverride parses a KEY=VALUE command line override. The value is typed
// by YAML scalar rules, so "20" is an int, "0.5" a float and "true" a bool;
// colors such as "#fff" stay strings.
func ParseOverride(s string) (string, any, error) {
	key, raw, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("%w: override %q is not KEY=VALUE", ErrInvalid, s)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "#") {
		return key, raw, nil
	}

	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return "", nil, fmt.Errorf("%w: override %s: %v", ErrInvalid, key, err)
	}
	switch v.(type) {
	case map[string]any, []any, nil:
		return key, raw, nil
	}
	return key, v, nil
}

// ParseOverrides folds a list of KEY=VALUE strings into a record.
func ParseOverrides(list []string) (Record, error) {
	rec := make(Record, len(list))
	for _, s := range list {
		k, v, err := ParseOverride(s)
		if err != nil {
			return nil, err
		}
		rec[k] = v
	}
	return rec, nil
}
