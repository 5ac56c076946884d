// Package logo resolves and normalizes the ASCII art printed beside the facts.
package logo

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/filesystem"
	"github.com/arthur-debert/kifetch/pkg/logging"
)

// Default is the built-in logo used when no file is found.
const Default = `
    .---.
   /     \
   \.@-@./
   /` + "`" + `\_/` + "`" + `\
  //  _  \\
 | \     )|_
/` + "`" + `\_` + "`" + `>  <_/ \
\__/'---'\__/
`

// Origin names where a logo was loaded from.
type Origin string

const (
	OriginCustomPath Origin = "path"
	OriginWorkingDir Origin = "cwd"
	OriginConfigDir  Origin = "config"
	OriginBuiltin    Origin = "builtin"
)

// Loader finds logo files.
type Loader struct {
	fs        filesystem.FS
	workDir   string
	configDir string
	logger    zerolog.Logger
}

// NewLoader creates a Loader. workDir is where the relative logos/ directory
// is looked up; configDir is the installation directory holding logos/.
func NewLoader(fs filesystem.FS, workDir, configDir string) *Loader {
	return &Loader{
		fs:        fs,
		workDir:   workDir,
		configDir: configDir,
		logger:    logging.GetLogger("logo"),
	}
}

// Candidates lists the files tried for a logo, in priority order.
func (l *Loader) Candidates(name, customPath string) []string {
	file := name + ".txt"
	var paths []string
	if customPath != "" {
		paths = append(paths, customPath)
	}
	paths = append(paths,
		filepath.Join(l.workDir, "logos", file),
		filepath.Join(l.configDir, "logos", file),
	)
	return paths
}

// Resolve returns the raw text of the first existing candidate, or Default.
// It never fails: unreadable files are skipped.
func (l *Loader) Resolve(name, customPath string) (string, Origin) {
	origins := []Origin{OriginWorkingDir, OriginConfigDir}
	if customPath != "" {
		origins = append([]Origin{OriginCustomPath}, origins...)
	}

	for i, path := range l.Candidates(name, customPath) {
		if !filesystem.IsFile(l.fs, path) {
			continue
		}
		raw, err := l.Read(path)
		if err != nil {
			l.logger.Debug().Err(err).Msg("Skipping unreadable logo")
			continue
		}
		l.logger.Debug().Str("path", path).Str("origin", string(origins[i])).Msg("Logo loaded")
		return raw, origins[i]
	}

	l.logger.Debug().Str("logo", name).Msg("Using built-in logo")
	return Default, OriginBuiltin
}

// Read returns the text of one logo file, with invalid UTF-8 replaced.
func (l *Loader) Read(path string) (string, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrLogoRead, "failed to read logo %s", path)
	}
	return strings.ToValidUTF8(string(data), "\uFFFD"), nil
}

// Load resolves and normalizes a logo.
func (l *Loader) Load(name, customPath string) []string {
	raw, _ := l.Resolve(name, customPath)
	return Normalize(raw)
}

// Normalize drops blank leading and trailing lines and right-pads every
// remaining line with spaces to the longest one. Interior blank lines are
// kept. Length is counted in runes, so tabs and escape sequences count like
// any other character and every returned line has the same rune count. The
// result is empty when raw has no visible content.
func Normalize(raw string) []string {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	lines = lines[start:end]

	width := Width(lines)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line + strings.Repeat(" ", width-utf8.RuneCountInString(line))
	}
	return out
}

// Width is the rune count of the longest line.
func Width(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, utf8.RuneCountInString(line))
	}
	return w
}
