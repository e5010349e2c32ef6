// Package scanner discovers local source files for a directory sync.
//
// Files are read through a billy.Filesystem so that callers can sync from
// the OS, from memory in tests, or from any other billy implementation.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// LocalFile is a local file selected by the scanner.
type LocalFile struct {
	// Path is the file path on the filesystem
	Path string

	// RelPath is the slash-separated path relative to the scan root
	RelPath string

	// Name is the base name, used as the remote file name
	Name string

	// Size is the file size in bytes
	Size int64
}

// Scanner walks a local directory.
type Scanner struct {
	filesystem     billy.Filesystem
	patternMatcher *PatternMatcher
}

// NewScanner creates a new scanner over filesystem.
func NewScanner(filesystem billy.Filesystem) *Scanner {
	return &Scanner{
		filesystem:     filesystem,
		patternMatcher: NewPatternMatcher(),
	}
}

// ScanLocal lists the files under root that pass the include and exclude patterns.
// Only direct children are returned unless recursive is set. Results are sorted by RelPath.
func (s *Scanner) ScanLocal(
	ctx context.Context,
	root string,
	recursive bool,
	includePatterns []string,
	excludePatterns []string,
) ([]*LocalFile, error) {
	if errs := s.patternMatcher.ValidatePatterns(append(append([]string{}, includePatterns...), excludePatterns...)); len(errs) > 0 {
		return nil, errs[0]
	}

	info, err := s.filesystem.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	var files []*LocalFile
	visit := func(path string, info os.FileInfo) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		relPath = filepath.ToSlash(relPath)

		if !s.patternMatcher.ShouldIncludeFile(relPath, includePatterns, excludePatterns) {
			return nil
		}

		files = append(files, &LocalFile{
			Path:    path,
			RelPath: relPath,
			Name:    info.Name(),
			Size:    info.Size(),
		})
		return nil
	}

	if recursive {
		err = util.Walk(s.filesystem, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
			return visit(path, info)
		})
	} else {
		var entries []os.FileInfo
		entries, err = s.filesystem.ReadDir(root)
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if err = visit(s.filesystem.Join(root, entry.Name()), entry); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelPath < files[j].RelPath
	})
	return files, nil
}

// ReadFile returns the content of a scanned file.
func (s *Scanner) ReadFile(file *LocalFile) ([]byte, error) {
	content, err := util.ReadFile(s.filesystem, file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.Path, err)
	}
	return content, nil
}
