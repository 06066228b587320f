package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter streams markup and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// url writes a sanitized URL attribute.
func (h *htmlWriter) url(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *htmlWriter) flag(name string, on bool) {
	if on {
		h.raw(" ", name)
	}
}

func (h *htmlWriter) json(name string, value any) {
	if h.err != nil {
		return
	}
	encoded, err := templ.JSONString(value)
	if err != nil {
		h.err = err
		return
	}
	h.attr(name, encoded)
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// children renders the components passed through templ.WithChildren.
func (h *htmlWriter) children(ctx context.Context) {
	children := templ.GetChildren(ctx)
	if children == nil {
		children = templ.NopComponent
	}
	h.component(templ.ClearChildren(ctx), children)
}

// htmlComponent builds a templ.Component from a writer callback.
func htmlComponent(render func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		render(ctx, h)
		return h.err
	})
}
