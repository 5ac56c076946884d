package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/kifetch/pkg/errors"
	"github.com/arthur-debert/kifetch/pkg/facts"
)

// EnvPrefix starts every variable written by FormatEnv.
const EnvPrefix = "KIFETCH_"

// Options tunes the writers.
type Options struct {
	// Styled renders markdown through glamour for a terminal instead of
	// emitting the raw markdown source.
	Styled bool

	// Width wraps styled markdown; 0 keeps glamour's default.
	Width int
}

// Write encodes the table in the given format. Keys are always emitted in
// sorted order.
func Write(w io.Writer, format Format, t *facts.Table, opts Options) error {
	var (
		out []byte
		err error
	)

	switch format {
	case FormatText:
		out = Text(t)
	case FormatJSON:
		out, err = JSON(t)
	case FormatYAML:
		out, err = YAML(t)
	case FormatXML:
		out, err = XML(t)
	case FormatMarkdown:
		out, err = Markdown(t, opts)
	case FormatEnv:
		out = Env(t)
	default:
		return errors.Newf(errors.ErrUnknownFormat, "unknown format: %v", format)
	}
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, errors.ErrRenderWrite, "failed to write facts")
	}
	return nil
}

// Text renders one "key: value" line per fact, values aligned. Alignment
// is in terminal cells: custom module keys may hold wide characters.
func Text(t *facts.Table) []byte {
	keys := t.Keys()
	width := 0
	for _, k := range keys {
		width = max(width, runewidth.StringWidth(k+":"))
	}

	var b strings.Builder
	for _, k := range keys {
		v, _ := t.Get(k)
		fmt.Fprintf(&b, "%s  %s\n", runewidth.FillRight(k+":", width), v)
	}
	return []byte(b.String())
}

// JSON renders an indented object.
func JSON(t *facts.Table) ([]byte, error) {
	out, err := json.MarshalIndent(t.Map(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode json")
	}
	return append(out, '\n'), nil
}

// YAML renders a flat mapping. Every value is quoted as a string so that
// "6.10" or "yes" keep their textual form.
func YAML(t *facts.Table) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v, Style: yaml.DoubleQuotedStyle},
		)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
	}
	return out, nil
}

// XML renders <facts><fact key="...">value</fact>...</facts>.
func XML(t *facts.Table) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("facts")
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		fact := root.CreateElement("fact")
		fact.CreateAttr("key", k)
		fact.SetText(v)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode xml")
	}
	return out, nil
}

// Markdown renders a two-column table. With opts.Styled the table is
// rendered for the terminal by glamour; on any glamour failure the raw
// markdown is returned.
func Markdown(t *facts.Table, opts Options) ([]byte, error) {
	var b strings.Builder
	b.WriteString("| Fact | Value |\n")
	b.WriteString("| --- | --- |\n")
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		fmt.Fprintf(&b, "| `%s` | %s |\n", k, escapeCell(v))
	}
	source := b.String()

	if !opts.Styled {
		return []byte(source), nil
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if opts.Width > 0 {
		options = append(options, glamour.WithWordWrap(opts.Width))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return []byte(source), nil
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return []byte(source), nil
	}
	return []byte(rendered), nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}

// Env renders KIFETCH_<KEY>='value' lines suitable for `eval`.
func Env(t *facts.Table) []byte {
	var b strings.Builder
	for _, k := range t.Keys() {
		v, _ := t.Get(k)
		fmt.Fprintf(&b, "%s%s=%s\n", EnvPrefix, envName(k), shellQuote(v))
	}
	return []byte(b.String())
}

// envName upper-cases a key and maps anything outside [A-Z0-9_] to '_'.
func envName(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
