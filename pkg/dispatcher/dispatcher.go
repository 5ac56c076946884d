package dispatcher

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/kifetch/pkg/collectors"
	"github.com/arthur-debert/kifetch/pkg/facts"
	"github.com/arthur-debert/kifetch/pkg/logging"
	"github.com/arthur-debert/kifetch/pkg/registry"
)

// CustomPrefix is prepended to the key of every custom module fact.
const CustomPrefix = "custom_"

// Runner executes a shell command line and returns its standard output.
type Runner func(command string) ([]byte, error)

// Options configures a Dispatcher. Zero values select the defaults.
type Options struct {
	// Registry resolves module names. Defaults to the built-in collectors.
	Registry registry.Registry[collectors.Collector]

	// Debug enables one timing line per module on DebugOut.
	Debug bool

	// DebugOut receives timing lines. Defaults to os.Stderr.
	DebugOut io.Writer

	// Runner executes custom module commands. Defaults to ShellRunner.
	Runner Runner

	// Logger receives structured diagnostics.
	Logger *zerolog.Logger
}

// Dispatcher runs collectors and custom modules.
type Dispatcher struct {
	registry registry.Registry[collectors.Collector]
	debug    bool
	debugOut io.Writer
	runner   Runner
	logger   zerolog.Logger
}

// New creates a Dispatcher from opts.
func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		registry: opts.Registry,
		debug:    opts.Debug,
		debugOut: opts.DebugOut,
		runner:   opts.Runner,
	}
	if d.registry == nil {
		d.registry = collectors.Registry()
	}
	if d.debugOut == nil {
		d.debugOut = os.Stderr
	}
	if d.runner == nil {
		d.runner = ShellRunner
	}
	if opts.Logger != nil {
		d.logger = *opts.Logger
	} else {
		d.logger = logging.GetLogger("dispatcher")
	}
	return d
}

// Known lists the module names the dispatcher can resolve, sorted.
func (d *Dispatcher) Known() []string {
	return d.registry.List()
}

// Collect runs every enabled module in order, then every custom module, and
// returns the merged facts. Later writes to the same key win.
func (d *Dispatcher) Collect(enabled []string, custom map[string]string) *facts.Table {
	done := logging.LogOperationStart(d.logger, "collect")
	defer done()

	t := facts.New()

	for _, name := range enabled {
		c, ok := d.registry.Lookup(name)
		if !ok {
			d.logger.Debug().Str("module", name).Msg("Unknown module ignored")
			continue
		}
		d.timed(name, func() { c.Collect(t) })
	}

	for _, key := range sortedKeys(custom) {
		command := custom[key]
		d.timed(CustomPrefix+key, func() { d.runCustom(t, key, command) })
	}

	return t
}

func (d *Dispatcher) runCustom(t *facts.Table, key, command string) {
	out, err := d.runner(command)
	if err != nil {
		d.logger.Debug().
			Str("module", key).
			Str("command", command).
			Err(err).
			Msg("Custom module failed")
		return
	}
	t.Set(CustomPrefix+key, cleanOutput(out))
}

func (d *Dispatcher) timed(name string, fn func()) {
	start := time.Now()
	fn()
	elapsed := time.Since(start)

	d.logger.Debug().Str("module", name).Dur("elapsed", elapsed).Msg("Module loaded")
	if d.debug {
		fmt.Fprintf(d.debugOut, "Loaded module %s in %dms\n", name, elapsed.Milliseconds())
	}
}

// cleanOutput decodes command output lossily and trims surrounding space.
func cleanOutput(out []byte) string {
	return strings.TrimSpace(strings.ToValidUTF8(string(out), "\uFFFD"))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
