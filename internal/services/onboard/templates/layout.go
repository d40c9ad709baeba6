package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/trustgate/onboard/internal/platform/icons"
)

// Layout renders the document shell: head, stylesheet, the inline icon
// sprite, and the instructions toggle script. Page content is injected
// through templ.WithChildren.
func Layout(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head>`+
			`<meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+templ.EscapeString(title)+`</title>`+
			`<link rel="stylesheet" href="/static/onboard.css">`+
			`</head><body>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, icons.Sprite()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="onboarding">`); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><script src="/static/onboard.js" defer></script></body></html>`)
		return err
	})
}
