// Package manifest reads pip requirements files for reporting purposes.
// Installation itself stays pip-driven; this reader never rewrites or
// validates the manifest, it only lists what the file declares.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Requirement is one declared package specifier.
type Requirement struct {
	// Name is the bare distribution name (extras and version pins stripped).
	Name string

	// Spec is the full specifier line as written (e.g. "streamlit>=1.30").
	Spec string
}

// Load reads the requirements file at path.
func Load(path string) ([]Requirement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads requirement lines, skipping blanks, comments, and pip options
// (lines starting with "-", e.g. "-r other.txt" or "--index-url").
func Parse(r io.Reader) ([]Requirement, error) {
	var reqs []Requirement

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "-") {
			continue
		}
		reqs = append(reqs, Requirement{Name: name(line), Spec: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return reqs, nil
}

// name strips extras, version constraints, and environment markers from a
// specifier: "pdf2image[extra]>=1.16; python_version>'3.8'" -> "pdf2image".
func name(spec string) string {
	if i := strings.IndexAny(spec, "[=<>~!; @"); i >= 0 {
		return strings.TrimSpace(spec[:i])
	}
	return spec
}
