// Package planner creates operation plans for directory syncs.
//
// A plan pairs every scanned local file with the remote file of the same
// name in the target folder. Matching files become updates, unmatched local
// files become creates and remote files without a local counterpart are
// reported as skips. Nothing is ever deleted remotely.
package planner

import (
	"fmt"
	"sort"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/internal/sync/scanner"
)

// Planner creates operation plans for sync operations.
type Planner struct{}

// NewPlanner creates a new planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// DuplicateNameError reports two local files that map to the same remote name.
type DuplicateNameError struct {
	Name  string
	First string
	Other string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("files %s and %s both map to remote name %q", e.First, e.Other, e.Name)
}

// Plan creates an execution plan from local files and the remote folder content.
// The result is sorted by name.
func (p *Planner) Plan(
	localFiles []*scanner.LocalFile,
	remoteFiles []crowdintypes.File,
) ([]crowdintypes.SyncOperation, error) {
	localMap, err := indexByName(localFiles)
	if err != nil {
		return nil, err
	}

	// First remote match wins, consistent with folder lookups.
	remoteMap := make(map[string]crowdintypes.File, len(remoteFiles))
	for _, rf := range remoteFiles {
		if _, ok := remoteMap[rf.Name]; !ok {
			remoteMap[rf.Name] = rf
		}
	}

	operations := make([]crowdintypes.SyncOperation, 0, len(localMap)+len(remoteMap))
	for name, lf := range localMap {
		op := crowdintypes.SyncOperation{
			Type:      crowdintypes.SyncCreate,
			Name:      name,
			LocalPath: lf.Path,
			Size:      lf.Size,
		}
		if rf, ok := remoteMap[name]; ok {
			op.Type = crowdintypes.SyncUpdate
			op.FileID = rf.ID
		}
		operations = append(operations, op)
	}

	for name, rf := range remoteMap {
		if _, ok := localMap[name]; ok {
			continue
		}
		operations = append(operations, crowdintypes.SyncOperation{
			Type:   crowdintypes.SyncSkip,
			Name:   name,
			FileID: rf.ID,
		})
	}

	sort.Slice(operations, func(i, j int) bool {
		return operations[i].Name < operations[j].Name
	})
	return operations, nil
}

// Validate checks that no two local files map to the same remote name.
func (p *Planner) Validate(localFiles []*scanner.LocalFile) error {
	_, err := indexByName(localFiles)
	return err
}

func indexByName(localFiles []*scanner.LocalFile) (map[string]*scanner.LocalFile, error) {
	localMap := make(map[string]*scanner.LocalFile, len(localFiles))
	for _, lf := range localFiles {
		if prev, ok := localMap[lf.Name]; ok {
			return nil, &DuplicateNameError{Name: lf.Name, First: prev.RelPath, Other: lf.RelPath}
		}
		localMap[lf.Name] = lf
	}
	return localMap, nil
}

// Summary counts planned operations by type.
type Summary struct {
	Creates int
	Updates int
	Skips   int
	Bytes   int64
}

// Summarize returns counts for a plan.
func Summarize(operations []crowdintypes.SyncOperation) Summary {
	var s Summary
	for _, op := range operations {
		switch op.Type {
		case crowdintypes.SyncCreate:
			s.Creates++
			s.Bytes += op.Size
		case crowdintypes.SyncUpdate:
			s.Updates++
			s.Bytes += op.Size
		case crowdintypes.SyncSkip:
			s.Skips++
		}
	}
	return s
}
