package danceload

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/npillmayer/schuko/tracing"
	"github.com/speezepearson/contravis/choreo"
)

func tracer() tracing.Trace {
	return tracing.Select("contra.tools")
}

// DanceFile is a dance together with the file it was read from.
type DanceFile struct {
	Path  string
	Dance *choreo.Dance
}

// LoadDance loads a dance from a YAML or JSON file. Dances without a name are
// named after their file.
func LoadDance(path string) (*DanceFile, error) {
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := choreo.DecodeDance(bytez)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	tracer().Debugf("loaded dance %q from %s", d.Name, path)
	return &DanceFile{Path: path, Dance: d}, nil
}

// SaveDance writes a dance as YAML.
func SaveDance(path string, d choreo.Dance) error {
	bytez, err := choreo.EncodeDance(d)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, bytez, 0o644)
}

// Expand resolves glob patterns like "dances/**/*.yaml" to a sorted list of
// files. Patterns without glob characters are passed through unchanged, even if
// the file does not exist.
func Expand(patterns ...string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			if !seen[pattern] {
				seen[pattern] = true
				files = append(files, pattern)
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// Result is the outcome of loading one file with LoadAll.
type Result struct {
	Path  string
	Dance *choreo.Dance // nil if loading failed
	Err   error
}

// LoadAll loads every file matching the patterns. Failing files are reported
// in their Result; only a bad pattern fails as a whole.
func LoadAll(patterns ...string) ([]Result, error) {
	files, err := Expand(patterns...)
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(files))
	for _, f := range files {
		df, err := LoadDance(f)
		if err != nil {
			results = append(results, Result{Path: f, Err: err})
			continue
		}
		results = append(results, Result{Path: f, Dance: df.Dance})
	}
	return results, nil
}
