package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/catalog"
)

func TestDefaultCatalog(t *testing.T) {
	acts, err := catalog.Default()
	require.NoError(t, err)
	require.Len(t, acts, 9)

	require.Equal(t, "Chess Club", acts[0].Name)
	require.Equal(t, 12, acts[0].MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, acts[0].Participants)

	require.Equal(t, "Debate Team", acts[8].Name)

	seen := map[string]bool{}
	for _, act := range acts {
		require.False(t, seen[act.Name], "duplicate activity %q", act.Name)
		seen[act.Name] = true
		require.Positive(t, act.MaxParticipants)
		require.NotNil(t, act.Participants)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
- name: Robotics Lab
  description: Build and program robots
  schedule: Fridays, 3:00 PM - 5:00 PM
  max_participants: 8
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	acts, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, acts, 1)
	require.Equal(t, "Robotics Lab", acts[0].Name)
	require.NotNil(t, acts[0].Participants)
	require.Empty(t, acts[0].Participants)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFileRejectsDuplicateNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
- name: Chess Club
  description: a
  schedule: b
  max_participants: 5
- name: Chess Club
  description: c
  schedule: d
  max_participants: 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := catalog.LoadFile(path)
	require.ErrorContains(t, err, "duplicate name")
}

func TestLoadFileRejectsMissingName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
- description: a
  schedule: b
  max_participants: 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := catalog.LoadFile(path)
	require.ErrorContains(t, err, "missing name")
}

func TestLoadFileRejectsNonPositiveCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
- name: Chess Club
  description: a
  schedule: b
  max_participants: 0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := catalog.LoadFile(path)
	require.ErrorContains(t, err, "max_participants")
}
