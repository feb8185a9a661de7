/*
Package finderctl bootstraps and launches the finder diagnostic web UI.

It replaces the ad-hoc launch scripts with a single configurable runner that
executes a fixed fail-fast sequence: ensure the profile's system dependency
(best-effort, via the host package manager), create or reuse the Python
virtual environment, install the requirements manifest, and run the UI in the
foreground. The runner's exit status equals the UI process's exit code, or
the first failing step's status.

Virtualenv "activation" is never performed by mutating the runner's own
environment; the resolved interpreter and PATH are carried as an explicit
value and applied per subprocess.

# Usage

	runner, err := finderctl.New(".", finderctl.WithProfile("streamlit"))
	if err != nil {
		log.Fatal(err)
	}
	if err := runner.Run(context.Background()); err != nil {
		os.Exit(domain.ExitCode(err))
	}

Profiles describe the launchable UI variants declaratively. Two are built in
(the Streamlit UI on port 8501, which needs Poppler's pdftotext, and the
legacy Gradio UI on port 7861); more can be declared in finderctl.yaml. The
FINDER_UI_PORT variable overrides the listening port; unset or unparseable
values fall back to the profile default.
*/
package finderctl
