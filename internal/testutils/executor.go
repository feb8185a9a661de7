// Package testutils provides shared fakes for step and engine tests.
package testutils

import (
	"context"
	"fmt"

	"github.com/aretw0/finderctl/pkg/ports"
)

// Call records one invocation handed to the fake executor.
type Call struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

// FakeExecutor implements ports.Executor in-memory. Commands succeed unless
// an error is registered for their name; LookPath resolves only names listed
// in Paths.
type FakeExecutor struct {
	Calls      []Call
	RunErrs    map[string]error
	CaptureOut map[string]string
	Paths      map[string]string
}

// NewFakeExecutor creates an empty fake where nothing is on PATH.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{
		RunErrs:    map[string]error{},
		CaptureOut: map[string]string{},
		Paths:      map[string]string{},
	}
}

func (f *FakeExecutor) Run(_ context.Context, cmd ports.Command) error {
	f.Calls = append(f.Calls, Call{Name: cmd.Name, Args: cmd.Args, Dir: cmd.Dir, Env: cmd.Env})
	return f.RunErrs[cmd.Name]
}

func (f *FakeExecutor) Capture(_ context.Context, cmd ports.Command) (string, error) {
	f.Calls = append(f.Calls, Call{Name: cmd.Name, Args: cmd.Args, Dir: cmd.Dir, Env: cmd.Env})
	if err := f.RunErrs[cmd.Name]; err != nil {
		return "", err
	}
	return f.CaptureOut[cmd.Name], nil
}

func (f *FakeExecutor) LookPath(name string) (string, error) {
	if path, ok := f.Paths[name]; ok {
		return path, nil
	}
	return "", fmt.Errorf("%s: executable file not found in $PATH", name)
}

// CommandLines renders the recorded calls as "name arg1 arg2" strings, which
// keeps assertions on ordering readable.
func (f *FakeExecutor) CommandLines() []string {
	lines := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		line := c.Name
		for _, a := range c.Args {
			line += " " + a
		}
		lines[i] = line
	}
	return lines
}
