package topics

// Renderer turns a topic file into what `help <topic>` prints. format is the
// file extension including the dot (".md", ".txt"), so a renderer can style
// markdown and pass anything else through.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim. Install uses it when no renderer is
// given, and kifetch picks it whenever stdout is not a terminal.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
