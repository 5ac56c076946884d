// Package collectors implements the built-in fact modules (os, kernel, cpu,
// memory, ...). Each module pairs a typed record, a per-platform reader that
// fills it, and an adapter that writes the record into a facts.Table.
//
// Readers never fail outwardly: any error while probing the host degrades to
// the record's documented defaults ("Unknown", "unknown", 0 or "N/A").
package collectors

import (
	"os/exec"

	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/facts"
	"github.com/arthur-debert/kifetch/pkg/logging"
	"github.com/arthur-debert/kifetch/pkg/registry"
)

// Collector produces the facts of one module.
type Collector interface {
	// Name is the module name used in the enabled-modules list
	Name() string

	// Collect writes the module's facts into t. It must not panic or block
	// on anything other than the probed host.
	Collect(t *facts.Table)
}

// CommandRunner executes a program and returns its standard output. A non-nil
// error means the program could not run or exited non-zero.
type CommandRunner func(name string, args ...string) ([]byte, error)

var builtins = registry.New[Collector]()

// Registry returns the process-wide table of built-in collectors. It is filled
// by init functions in this package and must be treated as read-only.
func Registry() registry.Registry[Collector] {
	return builtins
}

// Names lists the built-in module names in sorted order.
func Names() []string {
	return builtins.List()
}

func register(c Collector) {
	registry.MustRegister(builtins, c.Name(), c)
}

// runCommand is the default CommandRunner.
func runCommand(name string, args ...string) ([]byte, error) {
	logging.LogCommand(name, args)
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return out, errors.Wrapf(err, errors.ErrCommandFailed, "%s failed", name)
	}
	return out, nil
}

const (
	unknownTitle = "Unknown"
	unknownLower = "unknown"
	notAvailable = "N/A"
)
