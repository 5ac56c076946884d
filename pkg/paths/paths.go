package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/filesystem"
)

// Environment variable names
const (
	// EnvConfigDir overrides the config directory
	EnvConfigDir = "KIFETCH_CONFIG_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name under XDG_CONFIG_HOME
	AppDirName = "kifetch"

	// LocalConfigFile is looked up in the working directory
	LocalConfigFile = "kifetch.toml"

	// ConfigFileName is the file name inside the config directory
	ConfigFileName = "config.toml"

	// LogosDirName holds <name>.txt logo files
	LogosDirName = "logos"

	// LogFileName is the log file inside the XDG state directory
	LogFileName = "kifetch.log"
)

// Paths exposes the resolved locations.
type Paths interface {
	WorkDir() string
	ConfigFile() string
	ConfigDir() string
	LogosDir() string
	UsingLocalConfig() bool
}

type paths struct {
	workDir     string
	configFile  string
	configDir   string
	localConfig bool
}

// New resolves paths. An empty workDir means the current directory; an empty
// explicitConfig means no --config flag was given.
func New(fs filesystem.FS, workDir, explicitConfig string) (Paths, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to get working directory")
		}
		workDir = wd
	}
	absWork, err := filepath.Abs(workDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to get absolute path for %s", workDir)
	}

	p := &paths{workDir: absWork}
	override := expandHome(os.Getenv(EnvConfigDir))
	local := filepath.Join(absWork, LocalConfigFile)

	switch {
	case explicitConfig != "":
		p.configFile = expandHome(explicitConfig)
		p.configDir = filepath.Dir(p.configFile)
	case filesystem.IsFile(fs, local):
		p.configFile = local
		p.configDir = absWork
		p.localConfig = true
	default:
		userDir := filepath.Join(xdg.ConfigHome, AppDirName)
		if override != "" {
			userDir = override
		}
		p.configFile = filepath.Join(userDir, ConfigFileName)
		p.configDir = userDir
	}

	if override != "" {
		p.configDir = override
	}

	return p, nil
}

func (p *paths) WorkDir() string        { return p.workDir }
func (p *paths) ConfigFile() string     { return p.configFile }
func (p *paths) ConfigDir() string      { return p.configDir }
func (p *paths) UsingLocalConfig() bool { return p.localConfig }

func (p *paths) LogosDir() string {
	return filepath.Join(p.configDir, LogosDirName)
}

// LogFile returns $XDG_STATE_HOME/kifetch/kifetch.log, creating its
// directory.
func LogFile() (string, error) {
	path, err := xdg.StateFile(filepath.Join(AppDirName, LogFileName))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to create state directory")
	}
	return path, nil
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
