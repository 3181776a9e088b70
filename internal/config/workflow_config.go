// Package config reads and writes the mergeflow workflow configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the name of the config file relative to the repository root
const FileName = ".git-merge-workflow.json"

// Hardcoded defaults applied per-field when a value is absent from the file
const (
	DefaultTargetBranch  = "develop"
	DefaultStagingSuffix = "-staging"
	DefaultRemote        = "origin"
)

// WorkflowConfig is the on-disk workflow configuration. Fields are pointers
// so an absent field is distinguishable from an explicit empty value.
type WorkflowConfig struct {
	TargetBranch  *string `json:"TargetBranch,omitempty"`
	StagingSuffix *string `json:"StagingSuffix,omitempty"`
	Remote        *string `json:"Remote,omitempty"`
}

// Path returns the config file path for a repository root
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, FileName)
}

// Load reads the workflow configuration from the repository root.
// An absent file returns (nil, nil). A malformed file returns an error that
// callers are expected to log and treat as absent; config is an optimization,
// not a requirement.
func Load(repoRoot string) (*WorkflowConfig, error) {
	data, err := os.ReadFile(Path(repoRoot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config WorkflowConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &config, nil
}

// Save writes the workflow configuration to the repository root
func Save(repoRoot string, config *WorkflowConfig) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(Path(repoRoot), configJSON, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}

// TargetBranchOrDefault returns the configured target branch or the default
func (c *WorkflowConfig) TargetBranchOrDefault() string {
	if c != nil && c.TargetBranch != nil && *c.TargetBranch != "" {
		return *c.TargetBranch
	}
	return DefaultTargetBranch
}

// StagingSuffixOrDefault returns the configured staging suffix or the default
func (c *WorkflowConfig) StagingSuffixOrDefault() string {
	if c != nil && c.StagingSuffix != nil && *c.StagingSuffix != "" {
		return *c.StagingSuffix
	}
	return DefaultStagingSuffix
}

// RemoteOrDefault returns the configured remote or the default
func (c *WorkflowConfig) RemoteOrDefault() string {
	if c != nil && c.Remote != nil && *c.Remote != "" {
		return *c.Remote
	}
	return DefaultRemote
}
