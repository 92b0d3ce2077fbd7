// Package exectest provides a scripted exec.CommandRunner for tests.
package exectest

import (
	"context"
	"strings"
	"sync"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/exec"
)

// Call records a single Run invocation.
type Call struct {
	Name string
	Args []string
	Dir  string
}

// Line returns "name arg1 arg2 ...".
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

type response struct {
	result exec.CmdResult
	err    error
}

// Stub is a CommandRunner whose responses are keyed by command line.
// Unscripted commands exit 127 with "command not found".
type Stub struct {
	mu        sync.Mutex
	responses map[string]response
	calls     []Call
}

// NewStub creates an empty Stub.
func NewStub() *Stub {
	return &Stub{responses: make(map[string]response)}
}

// On scripts the result for a command line such as "git push".
func (s *Stub) On(cmdline string, result exec.CmdResult) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[cmdline] = response{result: result}
	return s
}

// OnError scripts a failure to run cmdline at all.
func (s *Stub) OnError(cmdline string, err error) *Stub {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[cmdline] = response{err: err}
	return s
}

// Run implements exec.CommandRunner.
func (s *Stub) Run(ctx context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	call := Call{Name: name, Args: append([]string(nil), args...), Dir: opts.Dir}
	s.calls = append(s.calls, call)

	if r, ok := s.responses[call.Line()]; ok {
		return r.result, r.err
	}
	return exec.CmdResult{ExitCode: 127, Stderr: "command not found"}, nil
}

// Calls returns the recorded invocations in order.
func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Lines returns the recorded invocations as command lines.
func (s *Stub) Lines() []string {
	calls := s.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.Line()
	}
	return lines
}
