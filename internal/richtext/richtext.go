package richtext

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// Renderer turns a stored rich-text body into HTML.
type Renderer interface {
	Render(src string) (string, error)
}

// Passthrough returns bodies unchanged, for content already stored as HTML.
type Passthrough struct{}

func (Passthrough) Render(src string) (string, error) { return src, nil }

// Markdown renders GitHub flavoured markdown. Inline HTML is kept so bodies
// written in an HTML editor render as they were entered.
type Markdown struct {
	engine goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{engine: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithHardWraps(),
			htmlrenderer.WithXHTML(),
			htmlrenderer.WithUnsafe(),
		),
	)}
}

func (m *Markdown) Render(src string) (string, error) {
	text := strings.TrimSpace(src)
	if text == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := m.engine.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
