// Package templates renders the app's pages as templ components.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes s escaped for element content and attribute values.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}

func (h *htmlWriter) input(label, name, value, inputType, errMsg string, attrs string) {
	h.raw(`<label class="field"><span>`)
	h.text(label)
	h.raw(`</span><input type="`)
	h.text(inputType)
	h.raw(`" name="`)
	h.text(name)
	h.raw(`" value="`)
	h.text(value)
	h.raw(`"`)
	if attrs != "" {
		h.raw(" " + attrs)
	}
	h.raw(`>`)
	if errMsg != "" {
		h.raw(`<small class="error">`)
		h.text(errMsg)
		h.raw(`</small>`)
	}
	h.raw(`</label>`)
}

func (h *htmlWriter) textarea(label, name, value, errMsg string) {
	h.raw(`<label class="field"><span>`)
	h.text(label)
	h.raw(`</span><textarea name="`)
	h.text(name)
	h.raw(`" rows="3">`)
	h.text(value)
	h.raw(`</textarea>`)
	if errMsg != "" {
		h.raw(`<small class="error">`)
		h.text(errMsg)
		h.raw(`</small>`)
	}
	h.raw(`</label>`)
}
