package domain

// Argument placeholders expanded when a Profile is rendered into a command
// line. They are substituted by the launch step, not by the shell.
const (
	PlaceholderPort       = "{port}"
	PlaceholderPython     = "{python}"
	PlaceholderEntrypoint = "{entrypoint}"
)

// Profile describes one launchable UI variant in a declarative way.
// The runner never hardcodes a UI framework; everything framework-specific
// (command, arguments, default port, system precondition) lives here.
type Profile struct {
	Name string `yaml:"name" json:"name"`

	// Command is the executable to launch. The special value "{python}"
	// resolves to the virtual environment's interpreter; any other value is
	// resolved inside the environment's bin directory first, then via PATH.
	Command string `yaml:"command" json:"command"`

	// Entrypoint is the UI script handed to Command (e.g. "finder_ui.py").
	Entrypoint string `yaml:"entrypoint" json:"entrypoint"`

	// Args are the launch arguments. Placeholders ({port}, {python},
	// {entrypoint}) are expanded before execution.
	Args []string `yaml:"args" json:"args"`

	// DefaultPort is used when the port override variable is unset or invalid.
	DefaultPort int `yaml:"port" json:"port"`

	// Env holds extra KEY=VALUE pairs for the launched process.
	Env map[string]string `yaml:"env,omitempty" json:"env,omitempty"`

	// Precondition optionally names a system binary the UI stack needs
	// (installed best-effort via the host package manager when absent).
	Precondition *Precondition `yaml:"precondition,omitempty" json:"precondition,omitempty"`

	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Precondition declares a required non-Python system binary and the package
// that provides it, per package manager.
type Precondition struct {
	// Binary is the executable probed on PATH (e.g. "pdftotext").
	Binary string `yaml:"binary" json:"binary"`

	// Packages maps a package manager name to the package providing Binary,
	// e.g. {"apt-get": "poppler-utils", "brew": "poppler"}.
	Packages map[string]string `yaml:"packages" json:"packages"`
}

// PackageFor returns the package name for the given manager, or "" when the
// precondition has no mapping for it.
func (p *Precondition) PackageFor(manager string) string {
	if p == nil {
		return ""
	}
	return p.Packages[manager]
}
