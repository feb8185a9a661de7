package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/finderctl/pkg/domain"
)

// Default filenames and profile names. The venv directory and manifest are
// fixed relative paths resolved against the work directory at run time.
const (
	DefaultProfile = "streamlit"
	DefaultFile    = "finderctl.yaml"
	VenvDir        = ".venv"
	ManifestFile   = "requirements.txt"
	DefaultEntry   = "finder_ui.py"
	DefaultPython  = "python3"
)

// Builtins returns the two compiled-in profiles. The Streamlit profile needs
// Poppler's pdftotext for PDF text extraction; the older Gradio profile has
// no system precondition.
func Builtins() map[string]domain.Profile {
	return map[string]domain.Profile{
		"streamlit": {
			Name:        "streamlit",
			Command:     "streamlit",
			Entrypoint:  DefaultEntry,
			DefaultPort: 8501,
			Args: []string{
				"run", domain.PlaceholderEntrypoint,
				"--server.port", domain.PlaceholderPort,
				"--server.headless", "true",
			},
			Precondition: &domain.Precondition{
				Binary: "pdftotext",
				Packages: map[string]string{
					"apt-get": "poppler-utils",
					"dnf":     "poppler-utils",
					"brew":    "poppler",
				},
			},
			Description: "Streamlit UI (requires Poppler for PDF extraction)",
		},
		"gradio": {
			Name:        "gradio",
			Command:     domain.PlaceholderPython,
			Entrypoint:  DefaultEntry,
			DefaultPort: 7861,
			Args: []string{
				domain.PlaceholderEntrypoint,
				"--port", domain.PlaceholderPort,
				"--no-browser",
			},
			Description: "Gradio UI (legacy variant, no system precondition)",
		},
	}
}

// File is the on-disk shape of an optional finderctl.yaml. Declared profiles
// are overlaid on the built-ins; a file profile with a built-in's name
// replaces it wholesale.
type File struct {
	Profiles []domain.Profile `yaml:"profiles"`
}

// Load reads profiles from path and merges them over the built-ins.
// A missing file is not an error; the built-ins are returned as-is.
func Load(path string) (map[string]domain.Profile, error) {
	profiles := Builtins()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return profiles, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for _, p := range file.Profiles {
		if p.Name == "" {
			continue
		}
		profiles[p.Name] = p
	}
	return profiles, nil
}

// Resolve returns the named profile from the merged set.
func Resolve(name, path string) (domain.Profile, error) {
	profiles, err := Load(path)
	if err != nil {
		return domain.Profile{}, err
	}
	p, ok := profiles[name]
	if !ok {
		return domain.Profile{}, fmt.Errorf("%w: %q", domain.ErrProfileNotFound, name)
	}
	return p, nil
}

// Names returns the merged profile names in sorted order (for listing).
func Names(path string) ([]string, error) {
	profiles, err := Load(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
