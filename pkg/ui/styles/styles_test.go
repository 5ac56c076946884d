package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/kifetch/pkg/ui/styles"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{"Error", "Header", "Module", "Enabled", "Disabled", "Muted", "Key"} {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "style %s should exist", name)
		})
	}
}

func TestGetStyle_Unknown(t *testing.T) {
	assert.Equal(t, "plain", styles.GetStyle("Nope").Render("plain"))
}

func TestRender_KeepsText(t *testing.T) {
	assert.Contains(t, styles.Render("Error", "boom"), "boom")
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() { require.NoError(t, styles.Reset()) })

	require.NoError(t, styles.LoadStylesFromData([]byte("styles:\n  Only:\n    bold: true\n")))
	assert.Len(t, styles.StyleRegistry, 1)
	assert.True(t, styles.GetStyle("Only").GetBold())

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}
