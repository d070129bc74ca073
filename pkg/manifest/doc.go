// Package manifest models per-file package manifest entries: attribute
// flags, immutable FileRecords, and loading of manifest documents in TOML
// or YAML form.
package manifest
