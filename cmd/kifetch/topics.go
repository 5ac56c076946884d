package kifetch

import (
	"embed"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/kifetch/pkg/cobrax/topics"
)

//go:embed topics
var helpTopics embed.FS

// installTopics replaces the help command with one that also serves the
// embedded topics. Markdown is rendered with glamour on terminals only.
func installTopics(rootCmd *cobra.Command) {
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if isTerminal() {
		renderer = topics.NewGlamourRenderer()
	}

	_, err := topics.Install(rootCmd, helpTopics, "topics", topics.Options{
		Renderer: renderer,
		GroupID:  "misc",
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}
}
