package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when the file is absent", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		cfg, err := Load(dir)
		require.NoError(t, err)
		require.Nil(t, cfg)
	})

	t.Run("returns an error for malformed JSON", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0644))

		cfg, err := Load(dir)
		require.Error(t, err)
		require.Nil(t, cfg)
	})

	t.Run("reads a partial file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName),
			[]byte(`{"TargetBranch": "main"}`), 0644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		require.Equal(t, "main", *cfg.TargetBranch)
		require.Nil(t, cfg.StagingSuffix)
		require.Nil(t, cfg.Remote)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	saved := &WorkflowConfig{
		TargetBranch:  strPtr("main"),
		StagingSuffix: strPtr("-int"),
		Remote:        strPtr("upstream"),
	}
	require.NoError(t, Save(dir, saved))

	// Field names on disk are the documented capitalized ones
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	require.Contains(t, string(data), `"TargetBranch"`)
	require.Contains(t, string(data), `"StagingSuffix"`)
	require.Contains(t, string(data), `"Remote"`)

	loaded, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, saved, loaded)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	t.Run("nil config falls back entirely", func(t *testing.T) {
		t.Parallel()
		var cfg *WorkflowConfig
		require.Equal(t, DefaultTargetBranch, cfg.TargetBranchOrDefault())
		require.Equal(t, DefaultStagingSuffix, cfg.StagingSuffixOrDefault())
		require.Equal(t, DefaultRemote, cfg.RemoteOrDefault())
	})

	t.Run("absent fields fall back per field", func(t *testing.T) {
		t.Parallel()
		cfg := &WorkflowConfig{Remote: strPtr("upstream")}
		require.Equal(t, DefaultTargetBranch, cfg.TargetBranchOrDefault())
		require.Equal(t, DefaultStagingSuffix, cfg.StagingSuffixOrDefault())
		require.Equal(t, "upstream", cfg.RemoteOrDefault())
	})

	t.Run("empty strings are treated as absent", func(t *testing.T) {
		t.Parallel()
		cfg := &WorkflowConfig{TargetBranch: strPtr("")}
		require.Equal(t, DefaultTargetBranch, cfg.TargetBranchOrDefault())
	})
}
