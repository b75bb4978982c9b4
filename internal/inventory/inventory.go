// Package inventory scans a set of directories for Python environments and
// merges the results into a single deduplicated report.
package inventory

import (
	"context"
	"errors"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/safedep/dry/log"
	"github.com/safedep/pyscout/locator"
)

// DirectoryStatus describes the outcome of scanning one directory.
type DirectoryStatus string

const (
	// DirectoryScanned means the directory was listed.
	DirectoryScanned DirectoryStatus = "scanned"
	// DirectoryMissing means the directory does not exist.
	DirectoryMissing DirectoryStatus = "missing"
	// DirectoryUnreadable means the directory exists but could not be listed.
	DirectoryUnreadable DirectoryStatus = "unreadable"
)

// DirectoryResult is the outcome of scanning one directory.
type DirectoryResult struct {
	Path         string          `json:"path" yaml:"path"`
	Status       DirectoryStatus `json:"status" yaml:"status"`
	Environments int             `json:"environments" yaml:"environments"`
	Error        string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the merged result of a scan.
type Report struct {
	ID           string                `json:"id" yaml:"id"`
	StartedAt    time.Time             `json:"started_at" yaml:"started_at"`
	Duration     time.Duration         `json:"duration" yaml:"duration"`
	Directories  []DirectoryResult     `json:"directories" yaml:"directories"`
	Environments []locator.Environment `json:"environments" yaml:"environments"`
	Duplicates   int                   `json:"duplicates" yaml:"duplicates"`
}

// Scanned returns the number of directories that could be listed.
func (r *Report) Scanned() int {
	n := 0
	for _, d := range r.Directories {
		if d.Status == DirectoryScanned {
			n++
		}
	}
	return n
}

// Lister enumerates the environments directly below a directory.
type Lister interface {
	List(ctx context.Context, dir string) ([]locator.Environment, error)
}

// Collector runs a Lister over several directories.
type Collector struct {
	lister Lister
	now    func() time.Time
}

// NewCollector creates a Collector backed by lister.
func NewCollector(lister Lister) *Collector {
	return &Collector{
		lister: lister,
		now:    time.Now,
	}
}

// Collect scans dirs in order. Environments are deduplicated by
// locator.EnvironmentKey, keeping the first occurrence, and sorted by key.
// Only a cancelled context is returned as an error; per-directory failures
// are recorded in the report.
func (c *Collector) Collect(ctx context.Context, dirs []string) (*Report, error) {
	started := c.now()
	report := &Report{
		ID:           uuid.New().String(),
		StartedAt:    started,
		Directories:  make([]DirectoryResult, 0, len(dirs)),
		Environments: make([]locator.Environment, 0),
	}

	seen := make(map[string]bool)
	for _, dir := range dirs {
		envs, err := c.lister.List(ctx, dir)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		result := DirectoryResult{Path: dir, Status: DirectoryScanned}
		if err != nil {
			result.Status = DirectoryUnreadable
			if errors.Is(err, os.ErrNotExist) {
				result.Status = DirectoryMissing
			}
			result.Error = err.Error()
			log.Debugf("could not scan %s: %v", dir, err)
			report.Directories = append(report.Directories, result)
			continue
		}

		result.Environments = len(envs)
		report.Directories = append(report.Directories, result)

		for _, env := range envs {
			key, ok := locator.EnvironmentKey(&env)
			if !ok {
				continue
			}
			if seen[key] {
				report.Duplicates++
				continue
			}
			seen[key] = true
			report.Environments = append(report.Environments, env)
		}
	}

	sort.SliceStable(report.Environments, func(i, j int) bool {
		ki, _ := locator.EnvironmentKey(&report.Environments[i])
		kj, _ := locator.EnvironmentKey(&report.Environments[j])
		return ki < kj
	})

	report.Duration = c.now().Sub(started)
	return report, nil
}
