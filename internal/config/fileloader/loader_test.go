package fileloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/stageflow/internal/config"
)

func writeDeclarations(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stages.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	t.Parallel()

	path := writeDeclarations(t, `
stages:
  - name: TaskStatus
    members:
      - name: PENDING
      - name: RUNNING
      - name: DONE
      - name: CLOSED
        value: expired
    ordering: [PENDING, RUNNING, DONE]
    flows:
      PENDING: [RUNNING]
      RUNNING: [DONE, CLOSED]
`)

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, cfg.Stages, 1)
	spec := cfg.Stages[0]
	assert.Equal(t, "TaskStatus", spec.Name)
	assert.Len(t, spec.Members, 4)
	require.NotNil(t, spec.Ordering)
	assert.Equal(t, []string{"PENDING", "RUNNING", "DONE"}, *spec.Ordering)
	assert.Equal(t, []string{"DONE", "CLOSED"}, spec.Flows["RUNNING"])
	assert.Equal(t, "expired", spec.Members[3].Value)
}

func TestFileLoader_LoadResolvesEndToEnd(t *testing.T) {
	t.Parallel()

	path := writeDeclarations(t, `
stages:
  - name: JobStatus
    members:
      - name: QUEUED
      - name: RUNNING
      - name: COMPLETED
    flows:
      QUEUED: [RUNNING]
      RUNNING: [COMPLETED]
`)

	cfg, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)

	reg, err := config.BuildDefinitions(cfg)
	require.NoError(t, err)

	def, ok := reg.Lookup("JobStatus")
	require.True(t, ok)

	legal, err := def.MustMember("COMPLETED").Follows("RUNNING")
	require.NoError(t, err)
	assert.True(t, legal)
}

func TestFileLoader_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		contains string
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
			contains: "failed to read",
		},
		{
			name:     "malformed yaml",
			path:     func(t *testing.T) string { return writeDeclarations(t, "stages: [:") },
			contains: "failed to parse",
		},
		{
			name:     "no stages declared",
			path:     func(t *testing.T) string { return writeDeclarations(t, "stages: []") },
			contains: "invalid declarations",
		},
		{
			name: "member missing name",
			path: func(t *testing.T) string {
				return writeDeclarations(t, `
stages:
  - name: S
    members:
      - value: orphan
`)
			},
			contains: "invalid declarations",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewFileLoader(tt.path(t)).Load(context.Background())
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
