package topics

// Renderer turns a topic's raw markdown into what `petrovich help <topic>`
// prints. format is the topic file extension, e.g. ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics verbatim. TopicManager falls back to it when
// no renderer is configured, which keeps piped help output free of ANSI codes.
type PlainRenderer struct{}

// Render returns content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
