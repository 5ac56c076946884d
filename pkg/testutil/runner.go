package testutil

import (
	"fmt"
	"strings"
	"sync"
)

// Result is the scripted outcome of one command.
type Result struct {
	Output string
	Err    error
}

// Runner answers commands from a script and records every call. Commands
// missing from the script fail like a missing executable.
type Runner struct {
	mu     sync.Mutex
	script map[string]Result
	calls  []string
}

// NewRunner creates a Runner. Keys are full command lines, with arguments
// joined by single spaces.
func NewRunner(script map[string]Result) *Runner {
	if script == nil {
		script = map[string]Result{}
	}
	return &Runner{script: script}
}

// Shell matches dispatcher.Runner.
func (r *Runner) Shell(command string) ([]byte, error) {
	return r.answer(command)
}

// Exec matches collectors.CommandRunner.
func (r *Runner) Exec(name string, args ...string) ([]byte, error) {
	return r.answer(strings.Join(append([]string{name}, args...), " "))
}

// Calls returns the command lines seen so far, in order.
func (r *Runner) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *Runner) answer(line string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, line)
	res, ok := r.script[line]
	if !ok {
		return nil, fmt.Errorf("exec: %q: executable file not found in $PATH", line)
	}
	return []byte(res.Output), res.Err
}
