package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/templates.md":     {Data: []byte("# Templates\n\nUse {name}.")},
		"help/logos.txt":        {Data: []byte("Logo lookup order")},
		"help/option-color.txt": {Data: []byte("Color modes")},
		"help/nested/deep.md":   {Data: []byte("Deep topic")},
		"help/notes.json":       {Data: []byte("{}")},
		"other/outside.md":      {Data: []byte("Not a topic")},
	}
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), "help", Options{})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"deep", "logos", "option-color", "templates"}, tm.ListTopics())
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(testFS(), "help", Options{Extensions: []string{".json"}})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})

	t.Run("missing root", func(t *testing.T) {
		tm := New(testFS(), "nowhere", Options{})
		require.NoError(t, tm.Load())

		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopic(t *testing.T) {
	tm := New(testFS(), "help", Options{})
	require.NoError(t, tm.Load())

	tests := []struct {
		query   string
		found   bool
		content string
	}{
		{"templates", true, "# Templates\n\nUse {name}."},
		{"logos", true, "Logo lookup order"},
		{"color", true, "Color modes"},
		{"--color", true, "Color modes"},
		{"-color", true, "Color modes"},
		{"option-color", true, "Color modes"},
		{"outside", false, ""},
		{"missing", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.query)
			assert.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.content, topic.Content)
			}
		})
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content string, format string) string {
	return format + ":" + strings.ToUpper(content)
}

func TestRender(t *testing.T) {
	tm := New(testFS(), "help", Options{Renderer: upperRenderer{}})
	require.NoError(t, tm.Load())

	topic, ok := tm.GetTopic("logos")
	require.True(t, ok)
	assert.Equal(t, ".txt:LOGO LOOKUP ORDER", tm.Render(topic))
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# Title", (&PlainRenderer{}).Render("# Title", ".md"))
}

func TestGlamourRenderer_SkipsNonMarkdown(t *testing.T) {
	assert.Equal(t, "plain *text*", NewGlamourRenderer().Render("plain *text*", ".txt"))
}

func TestGlamourRenderer_Markdown(t *testing.T) {
	r := &GlamourRenderer{Style: "dark", Width: 40}
	out := r.Render("# Title\n\nSome **bold** text.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
	assert.NotContains(t, out, "**")
}

func TestWriteList(t *testing.T) {
	tm := New(testFS(), "help", Options{})
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	tm.WriteList(&buf, "app")

	assert.Equal(t, "Available help topics:\n"+
		"\nGeneral topics:\n  deep\n  logos\n  templates\n"+
		"\nOption topics:\n  --color\n"+
		"\nUse 'app help <topic>' to read about a specific topic.\n", buf.String())
}

func TestWriteList_Empty(t *testing.T) {
	var buf bytes.Buffer
	New(fstest.MapFS{}, "help", Options{}).WriteList(&buf, "app")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "app", Run: func(cmd *cobra.Command, args []string) {}}
	root.AddCommand(&cobra.Command{Use: "sub", Short: "A subcommand", Run: func(cmd *cobra.Command, args []string) {}})
	return root
}

func runHelp(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"help"}, args...))
	require.NoError(t, root.Execute())
	return out.String()
}

func TestInstall(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root := newTestRoot()
		_, err := Install(root, testFS(), "help", Options{})
		require.NoError(t, err)

		assert.Equal(t, "Logo lookup order", runHelp(t, root, "logos"))
	})

	t.Run("topic list", func(t *testing.T) {
		root := newTestRoot()
		_, err := Install(root, testFS(), "help", Options{})
		require.NoError(t, err)

		assert.Contains(t, runHelp(t, root, "topics"), "Use 'app help <topic>'")
	})

	t.Run("command help still works", func(t *testing.T) {
		root := newTestRoot()
		_, err := Install(root, testFS(), "help", Options{})
		require.NoError(t, err)

		assert.Contains(t, runHelp(t, root, "sub"), "A subcommand")
	})

	t.Run("unknown", func(t *testing.T) {
		root := newTestRoot()
		_, err := Install(root, testFS(), "help", Options{})
		require.NoError(t, err)

		assert.Contains(t, runHelp(t, root, "nothing"), "Unknown help topic")
	})
}
