package services

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"labsite/pkg/config"

	"gopkg.in/yaml.v3"
)

// SidecarHeader starts every sidecar the backfill creates.
const SidecarHeader = "# Auto-généré (pre-render) — champs par défaut pour le listing\n"

// EnsureLine appends `key: "value"` unless a line already sets key. Existing
// lines are never rewritten, so curated values survive repeated runs.
func EnsureLine(lines []string, key, value string) []string {
	prefix := key + ":"
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), prefix) {
			return lines
		}
	}

	out := make([]string, len(lines), len(lines)+1)
	copy(out, lines)
	if n := len(out); n > 0 && !strings.HasSuffix(out[n-1], "\n") {
		out[n-1] += "\n"
	}
	return append(out, fmt.Sprintf("%s: \"%s\"\n", key, value))
}

// ReadMetadata loads a sidecar as flat key/value pairs. A missing file yields
// an empty map; a file YAML rejects is read line by line instead.
func ReadMetadata(path string) map[string]string {
	content, err := os.ReadFile(path)
	if err != nil {
		return map[string]string{}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		slog.Debug("sidecar is not valid YAML, reading key/value lines", "path", path, "error", err)
		return parseKeyValueLines(strings.Split(string(content), "\n"), ":")
	}

	out := make(map[string]string, len(doc))
	for k, v := range doc {
		out[k] = StringValue(v)
	}
	return out
}

// ProcessPublication adds the default pdf and image entries to the sidecar of
// the publication folder dir. Folders without a content entry are skipped.
// It reports whether the sidecar was written.
func ProcessPublication(cfg *config.Config, dir string) (bool, error) {
	if !fileExists(filepath.Join(dir, cfg.ContentFile)) {
		return false, nil
	}

	name := filepath.Base(dir)
	metaPath := filepath.Join(dir, cfg.SidecarFile)

	var lines []string
	existing, err := os.ReadFile(metaPath)
	switch {
	case err == nil:
		lines = splitLines(string(existing))
	case errors.Is(err, fs.ErrNotExist):
		lines = []string{SidecarHeader}
	default:
		return false, fmt.Errorf("read sidecar %s: %w", metaPath, err)
	}

	lines = EnsureLine(lines, "pdf", DefaultPDFPath(name))
	lines = EnsureLine(lines, "image", DefaultImagePath(name))

	written, err := WriteIfChanged(metaPath, []byte(strings.Join(lines, "")))
	if err != nil {
		return false, fmt.Errorf("write sidecar %s: %w", metaPath, err)
	}
	return written, nil
}

// BackfillMetadata runs ProcessPublication on every publication folder and
// returns how many sidecars were written. A missing publications directory
// means there is nothing to do.
func BackfillMetadata(cfg *config.Config) (int, error) {
	root := cfg.PubsPath()
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("no publications directory, nothing to backfill", "path", root)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read publications dir: %w", err)
	}

	written := 0
	for _, entry := range entries {
		dir := filepath.Join(root, entry.Name())
		if !isDir(dir) {
			continue
		}
		ok, err := ProcessPublication(cfg, dir)
		if err != nil {
			slog.Warn("sidecar backfill failed", "slug", entry.Name(), "error", err)
			continue
		}
		if ok {
			slog.Debug("sidecar updated", "slug", entry.Name())
			written++
		}
	}
	return written, nil
}
