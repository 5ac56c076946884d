package dispatcher

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/kifetch/pkg/collectors"
	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/facts"
	"github.com/arthur-debert/kifetch/pkg/registry"
	"github.com/arthur-debert/kifetch/pkg/testutil"
)

type stubCollector struct {
	name   string
	values map[string]string
	calls  *[]string
}

func (s stubCollector) Name() string { return s.name }

func (s stubCollector) Collect(t *facts.Table) {
	if s.calls != nil {
		*s.calls = append(*s.calls, s.name)
	}
	for k, v := range s.values {
		t.Set(k, v)
	}
}

func newTestRegistry(t *testing.T, cs ...collectors.Collector) registry.Registry[collectors.Collector] {
	t.Helper()
	reg := registry.New[collectors.Collector]()
	for _, c := range cs {
		require.NoError(t, reg.Register(c.Name(), c))
	}
	return reg
}

func quietLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// fakeRunner answers the given commands; anything else fails.
func fakeRunner(outputs map[string]string) Runner {
	script := make(map[string]testutil.Result, len(outputs))
	for command, out := range outputs {
		script[command] = testutil.Result{Output: out}
	}
	return testutil.NewRunner(script).Shell
}

func TestCollect_EnabledOrderAndOverwrite(t *testing.T) {
	var calls []string
	reg := newTestRegistry(t,
		stubCollector{name: "os", values: map[string]string{"os_name": "TestOS", "shared": "from-os"}, calls: &calls},
		stubCollector{name: "kernel", values: map[string]string{"kernel_version": "6.1.0", "shared": "from-kernel"}, calls: &calls},
	)
	d := New(Options{Registry: reg, Logger: quietLogger()})

	tbl := d.Collect([]string{"kernel", "os"}, nil)

	assert.Equal(t, []string{"kernel", "os"}, calls)
	shared, _ := tbl.Get("shared")
	assert.Equal(t, "from-os", shared)
	assert.Equal(t, 3, tbl.Len())
}

func TestCollect_UnknownModulesIgnored(t *testing.T) {
	reg := newTestRegistry(t, stubCollector{name: "os", values: map[string]string{"os_name": "TestOS"}})
	d := New(Options{Registry: reg, Logger: quietLogger()})

	tbl := d.Collect([]string{"nope", "os", "also-nope"}, nil)

	assert.Equal(t, map[string]string{"os_name": "TestOS"}, tbl.Map())
}

func TestCollect_DisabledModulesNotRun(t *testing.T) {
	var calls []string
	reg := newTestRegistry(t,
		stubCollector{name: "os", calls: &calls},
		stubCollector{name: "gpu", calls: &calls},
	)
	d := New(Options{Registry: reg, Logger: quietLogger()})

	d.Collect([]string{"os"}, nil)

	assert.Equal(t, []string{"os"}, calls)
}

func TestCollect_CustomModules(t *testing.T) {
	reg := newTestRegistry(t, stubCollector{name: "os", values: map[string]string{"os_name": "TestOS"}})
	runner := fakeRunner(map[string]string{
		"echo hi":  "  hi there \n",
		"date +%Y": "2026\n",
	})
	d := New(Options{Registry: reg, Runner: runner, Logger: quietLogger()})

	tbl := d.Collect([]string{"os"}, map[string]string{
		"greeting": "echo hi",
		"year":     "date +%Y",
		"broken":   "false",
	})

	assert.Equal(t, map[string]string{
		"os_name":         "TestOS",
		"custom_greeting": "hi there",
		"custom_year":     "2026",
	}, tbl.Map())
}

func TestCollect_CustomModulesRunWithoutEnabledModules(t *testing.T) {
	d := New(Options{
		Registry: newTestRegistry(t),
		Runner:   fakeRunner(map[string]string{"uname": "Linux"}),
		Logger:   quietLogger(),
	})

	tbl := d.Collect(nil, map[string]string{"sys": "uname"})

	v, ok := tbl.Get("custom_sys")
	assert.True(t, ok)
	assert.Equal(t, "Linux", v)
}

func TestCollect_CustomModulesSortedByKey(t *testing.T) {
	runner := testutil.NewRunner(map[string]testutil.Result{
		"1": {Output: "one"},
		"2": {Output: "two"},
		"3": {Output: "three"},
	})
	d := New(Options{Registry: newTestRegistry(t), Runner: runner.Shell, Logger: quietLogger()})

	d.Collect(nil, map[string]string{"c": "3", "a": "1", "b": "2"})

	assert.Equal(t, []string{"1", "2", "3"}, runner.Calls())
}

func TestCollect_CustomOutputLossyDecoded(t *testing.T) {
	runner := func(string) ([]byte, error) { return []byte{'o', 'k', 0xff}, nil }
	d := New(Options{Registry: newTestRegistry(t), Runner: runner, Logger: quietLogger()})

	tbl := d.Collect(nil, map[string]string{"bin": "x"})

	v, _ := tbl.Get("custom_bin")
	assert.Equal(t, "ok\uFFFD", v)
}

func TestCollect_DebugOutput(t *testing.T) {
	reg := newTestRegistry(t,
		stubCollector{name: "os", values: map[string]string{"os_name": "TestOS"}},
	)
	var buf bytes.Buffer
	d := New(Options{
		Registry: reg,
		Debug:    true,
		DebugOut: &buf,
		Runner:   fakeRunner(map[string]string{"true": ""}),
		Logger:   quietLogger(),
	})

	tbl := d.Collect([]string{"os", "missing"}, map[string]string{"t": "true"})

	assert.Regexp(t, `^Loaded module os in \d+ms\nLoaded module custom_t in \d+ms\n$`, buf.String())
	assert.Equal(t, map[string]string{"os_name": "TestOS", "custom_t": ""}, tbl.Map())
}

func TestCollect_NoDebugOutputByDefault(t *testing.T) {
	var buf bytes.Buffer
	reg := newTestRegistry(t, stubCollector{name: "os"})
	d := New(Options{Registry: reg, DebugOut: &buf, Logger: quietLogger()})

	d.Collect([]string{"os"}, nil)

	assert.Empty(t, buf.String())
}

func TestKnown(t *testing.T) {
	reg := newTestRegistry(t, stubCollector{name: "os"}, stubCollector{name: "cpu"})
	d := New(Options{Registry: reg, Logger: quietLogger()})

	assert.Equal(t, []string{"cpu", "os"}, d.Known())
}

func TestNew_DefaultsToBuiltinCollectors(t *testing.T) {
	d := New(Options{Logger: quietLogger()})
	assert.Equal(t, collectors.Names(), d.Known())
}

func TestShellCommand(t *testing.T) {
	name, args := shellCommand("linux", "echo hi")
	assert.Equal(t, "sh", name)
	assert.Equal(t, []string{"-c", "echo hi"}, args)

	name, args = shellCommand("windows", "echo hi")
	assert.Equal(t, "cmd", name)
	assert.Equal(t, []string{"/C", "echo hi"}, args)
}

func TestShellRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell syntax")
	}

	d := New(Options{Registry: newTestRegistry(t), Logger: quietLogger()})
	tbl := d.Collect(nil, map[string]string{
		"ok":   "printf ' value \\n'",
		"fail": "echo partial; exit 3",
	})

	assert.Equal(t, map[string]string{"custom_ok": "value"}, tbl.Map())

	out, err := ShellRunner("echo partial; exit 3")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandFailed))
	assert.Equal(t, "partial\n", string(out))
}
