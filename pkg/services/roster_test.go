package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRoster_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.json")
	content := `{"members": [
		{"id": "alice", "name": "Alice", "social": {"x": "https://x.com/alice"}},
		{"id": 7, "name": "Seven"}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	roster, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, roster.Members, 2)
	assert.Equal(t, "alice", roster.Members[0].ID.String())
	assert.Equal(t, "https://x.com/alice", roster.Members[0].Social["x"])
	assert.Equal(t, "7", roster.Members[1].ID.String())
}

func TestLoadRoster_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.yml")
	content := "members:\n  - id: bob\n    name: Bob\n    role: PhD student\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	roster, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, roster.Members, 1)
	assert.Equal(t, "bob", roster.Members[0].ID.String())
	assert.Equal(t, "PhD student", roster.Members[0].Role)
}

func TestLoadRoster_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadRoster(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrRosterNotFound)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadRoster(bad)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRosterNotFound)
}

func TestMemberPagePath(t *testing.T) {
	cfg := newSite(t)

	tests := []struct {
		id   string
		want string
	}{
		{id: "alice", want: "alice.qmd"},
		{id: "1234567", want: "1234567.qmd"},
		{id: "Jean.Dupont", want: "Jean.Dupont.qmd"},
		{id: "../evil", want: "evil.qmd"},
		{id: "team/Alice Martin", want: "teamalice-martin.qmd"},
		{id: `a\b`, want: "ab.qmd"},
	}
	for _, tt := range tests {
		path, err := MemberPagePath(cfg, tt.id)
		require.NoError(t, err, tt.id)
		assert.Equal(t, filepath.Join(cfg.MembersOutPath(), tt.want), path, tt.id)
	}

	for _, id := range []string{"", " ", ".", "..", "../..", "/"} {
		_, err := MemberPagePath(cfg, id)
		assert.ErrorIs(t, err, ErrInvalidMemberID, id)
	}
}
