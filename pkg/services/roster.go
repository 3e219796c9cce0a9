package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"labsite/pkg/config"
	"labsite/pkg/models"

	"github.com/goliatone/go-slug"
	"gopkg.in/yaml.v3"
)

// ErrRosterNotFound is returned when the roster file does not exist.
var ErrRosterNotFound = errors.New("roster file not found")

// ErrInvalidMemberID marks an id that cannot name a page file.
var ErrInvalidMemberID = errors.New("member id cannot be used as a file name")

// LoadRoster reads the member roster; .yml and .yaml files are decoded as
// YAML, anything else as JSON.
func LoadRoster(path string) (*models.Roster, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRosterNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var roster models.Roster
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(content, &roster)
	default:
		err = json.Unmarshal(content, &roster)
	}
	if err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return &roster, nil
}

// MemberPagePath is the output file for member id: <id><ext> when id can
// name a file as is, otherwise the slug normalization of id. Ids that
// normalize to nothing are rejected with ErrInvalidMemberID.
func MemberPagePath(cfg *config.Config, id string) (string, error) {
	name := strings.TrimSpace(id)
	if !usableFileName(name) {
		normalized, err := slug.Normalize(name)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrInvalidMemberID, id, err)
		}
		slog.Debug("member id normalized for its page name", "member", id, "name", normalized)
		name = normalized
	}
	return filepath.Join(cfg.MembersOutPath(), name+cfg.PageExtension), nil
}

func usableFileName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
