package kifetch

import (
	"bytes"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/kifetch/internal/version"
	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/testutil"
)

// testConfig runs no built-in module so output does not depend on the host.
const testConfig = `
[general]
logo = "test"
separator = " = "
padding = 1

[colors]
color_1 = "bright_red"
color_reset = "reset"

[modules]
enabled = []

[modules.custom]
greet = "echo hello"

[layout]
lines = [
  "{color_1}Hi{color_reset}{separator}{custom_greet}",
  "{missing}",
]
`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("custom module tests use sh")
	}
}

func TestRoot_Render(t *testing.T) {
	requireShell(t)
	env := testutil.NewEnvironment(t)
	env.WriteUserConfig(testConfig)
	env.WriteLogo(env.WorkDir, "test", "\nAB\nC\n\n")

	stdout, stderr, err := execute(t)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Equal(t,
		"AB \x1b[91mHi\x1b[0m = hello\n"+
			"C  {missing}\n",
		stdout)
}

func TestRoot_ColorNever(t *testing.T) {
	requireShell(t)
	env := testutil.NewEnvironment(t)
	env.WriteUserConfig(testConfig)
	env.WriteLogo(env.WorkDir, "test", "AB\nC")

	stdout, _, err := execute(t, "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "AB Hi = hello\nC  {missing}\n", stdout)
}

func TestRoot_FlagOverrides(t *testing.T) {
	requireShell(t)
	env := testutil.NewEnvironment(t)
	env.WriteUserConfig(testConfig)
	env.WriteLogo(env.WorkDir, "test", "AB\nC")
	env.WriteLogo(env.UserConfigDir(), "other", "XYZ\nW\nV")

	stdout, _, err := execute(t, "--color=never", "--logo", "other", "--padding", "3")
	require.NoError(t, err)
	assert.Equal(t, "XYZ   Hi = hello\nW     {missing}\nV  \n", stdout)

	path := testutil.CreateFile(t, env.Root, "explicit.txt", "#")
	stdout, _, err = execute(t, "--color=never", "--logo-path", path)
	require.NoError(t, err)
	assert.Equal(t, "# Hi = hello\n  {missing}\n", stdout)
}

func TestRoot_LocalConfigWins(t *testing.T) {
	requireShell(t)
	env := testutil.NewEnvironment(t)
	env.WriteUserConfig(testConfig)
	env.WriteLocalConfig(strings.Replace(testConfig, `separator = " = "`, `separator = " -> "`, 1))
	env.WriteLogo(env.WorkDir, "test", "AB")

	stdout, _, err := execute(t, "--color=never")
	require.NoError(t, err)
	assert.Equal(t, "AB Hi -> hello\n   {missing}\n", stdout)
}

func TestRoot_EnvOverride(t *testing.T) {
	requireShell(t)
	env := testutil.NewEnvironment(t)
	env.WriteUserConfig(testConfig)
	env.WriteLogo(env.WorkDir, "test", "AB")
	t.Setenv("KIFETCH_GENERAL__PADDING", "0")

	stdout, _, err := execute(t, "--color=never")
	require.NoError(t, err)
	assert.Equal(t, "ABHi = hello\n  {missing}\n", stdout)
}

func TestRoot_Debug(t *testing.T) {
	requireShell(t)
	env := testutil.NewEnvironment(t)
	env.WriteUserConfig(testConfig)

	_, stderr, err := execute(t, "--debug", "--color=never")
	require.NoError(t, err)
	assert.Regexp(t, `^Loaded module custom_greet in \d+ms\n$`, stderr)

	t.Setenv("KIFETCH_DEBUG", "1")
	_, stderr, err = execute(t, "--color=never")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Loaded module custom_greet in ")
}

func TestRoot_BrokenConfigFallsBack(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := env.WriteUserConfig("[general\nlogo = ")

	stdout, stderr, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stderr, "Failed to load config: "), stderr)
	assert.Contains(t, stderr, "; using defaults")
	assert.Contains(t, stdout, `logo = 'linux'`)

	stdout, _, err = execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)
}

func TestRoot_RejectsArguments(t *testing.T) {
	testutil.NewEnvironment(t)

	_, _, err := execute(t, "nonsense")
	assert.Error(t, err)

	_, _, err = execute(t, "--color", "sometimes")
	assert.Error(t, err)
}

func TestFacts_JSON(t *testing.T) {
	requireShell(t)
	env := testutil.NewEnvironment(t)
	env.WriteUserConfig(testConfig)

	stdout, _, err := execute(t, "facts", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"custom_greet": "hello"}`, stdout)
}

func TestFacts_Env(t *testing.T) {
	requireShell(t)
	env := testutil.NewEnvironment(t)
	env.WriteUserConfig(testConfig)

	stdout, _, err := execute(t, "facts", "-f", "env")
	require.NoError(t, err)
	assert.Equal(t, "KIFETCH_CUSTOM_GREET='hello'\n", stdout)
}

func TestFacts_Modules(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteUserConfig("[modules]\nenabled = []\n")

	stdout, _, err := execute(t, "facts", "--modules", "env", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"env_os"`)
	assert.NotContains(t, stdout, `"cpu_model"`)

	_, _, err = execute(t, "facts", "--modules", "env,floppy")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), `unknown module "floppy"`)
}

func TestFacts_UnknownFormat(t *testing.T) {
	testutil.NewEnvironment(t)

	_, _, err := execute(t, "facts", "--format", "csv")
	assert.Error(t, err)
}

func TestModules(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteUserConfig(`
[modules]
enabled = ["cpu", "os"]

[modules.custom]
weather = "curl wttr.in"
`)

	stdout, _, err := execute(t, "modules")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "Built-in modules\n"))
	assert.Regexp(t, `(?m)^  cpu +enabled$`, stdout)
	assert.Regexp(t, `(?m)^  os +enabled$`, stdout)
	assert.Regexp(t, `(?m)^  bios +disabled$`, stdout)
	assert.Contains(t, stdout, "\nCustom modules\n  weather  curl wttr.in\n")
}

func TestConfigPath(t *testing.T) {
	env := testutil.NewEnvironment(t)

	stdout, _, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.ConfigHome, "kifetch", "config.toml")+"\n", stdout)

	local := env.WriteLocalConfig("")
	stdout, _, err = execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, local+" (local)\n", stdout)

	explicit := filepath.Join(env.Root, "elsewhere.toml")
	stdout, _, err = execute(t, "config", "path", "--config", explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit+"\n", stdout)
}

func TestConfigShow_AppliesFlags(t *testing.T) {
	testutil.NewEnvironment(t)

	stdout, _, err := execute(t, "config", "show", "--padding", "7", "--logo", "arch")
	require.NoError(t, err)
	assert.Contains(t, stdout, "padding = 7")
	assert.Contains(t, stdout, `logo = 'arch'`)
}

func TestConfigInit(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := filepath.Join(env.ConfigHome, "kifetch", "config.toml")

	stdout, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, "Wrote configuration to "+path+"\n", stdout)
	assert.Contains(t, testutil.ReadFile(t, path), "# kifetch configuration")

	_, _, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

	_, _, err = execute(t, "config", "init", "--force", "--current", "--padding", "5")
	require.NoError(t, err)
	written := testutil.ReadFile(t, path)
	assert.NotContains(t, written, "# kifetch configuration")
	assert.Contains(t, written, "padding = 5")
}

func TestVersion(t *testing.T) {
	testutil.NewEnvironment(t)

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "kifetch "+version.Version+" (commit "+version.Commit+", built "+version.Date+")\n", stdout)
}

func TestCompletion(t *testing.T) {
	testutil.NewEnvironment(t)

	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := execute(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, stdout, "kifetch")
		})
	}

	_, _, err := execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestMan(t *testing.T) {
	testutil.NewEnvironment(t)

	stdout, _, err := execute(t, "man")
	require.NoError(t, err)
	assert.Contains(t, stdout, ".TH")
	assert.Contains(t, stdout, "KIFETCH")
	assert.Contains(t, stdout, "facts")
}

func TestHelpTopics(t *testing.T) {
	testutil.NewEnvironment(t)

	stdout, _, err := execute(t, "help", "topics")
	require.NoError(t, err)
	for _, name := range []string{"templates", "colors", "logos", "custom-modules", "fact-keys", "configuration", "--color", "--debug"} {
		assert.Contains(t, stdout, "  "+name+"\n")
	}

	stdout, _, err = execute(t, "help", "templates")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Layout templates")

	stdout, _, err = execute(t, "help", "debug")
	require.NoError(t, err)
	assert.Contains(t, stdout, "KIFETCH_DEBUG")

	stdout, _, err = execute(t, "help", "fact-keys")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cpu_freq_ghz")
	assert.Contains(t, stdout, "always expressed in the total's unit")
	assert.Contains(t, stdout, "`memory_used` = `0.50`")

	stdout, _, err = execute(t, "help", "facts")
	require.NoError(t, err)
	assert.Contains(t, stdout, "kifetch facts [flags]")
}

func TestHelpCommand(t *testing.T) {
	testutil.NewEnvironment(t)

	stdout, _, err := execute(t, "help", "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, MsgConfigLong)
	assert.Contains(t, stdout, "kifetch config [command]")
}
