// Package templates holds the onboarding page components.
//
// Components are hand-written templ values. The entry fragment is the
// reusable building block: the page composer calls it once per platform
// with an injected instruction body.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/trustgate/onboard/internal/certfiles"
	"github.com/trustgate/onboard/internal/platform/icons"
)

// EntryOptions parameterizes one platform entry.
type EntryOptions struct {
	// Title is the entry heading. Its first word becomes the toggle anchor.
	Title string
	// Note is an optional muted annotation rendered after the title.
	Note string
	// Icon is the icon catalog key for the entry.
	Icon string
	// FileType selects the certificate download format. Empty means pem.
	FileType certfiles.Format
	// CAName labels the download action with the certificate filename.
	CAName string
}

// AnchorID derives the instruction toggle anchor from an entry title:
// the first whitespace-delimited token. Uniqueness across a page is not
// enforced; duplicate titles produce duplicate element IDs.
func AnchorID(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Entry renders one platform list item: icon, heading, a download action
// for the entry's certificate format, show/hide instruction toggles, and
// the injected instruction body. An unresolvable icon key fails the
// render rather than dropping the icon block.
func Entry(opts EntryOptions, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fileType := opts.FileType
		if fileType == "" {
			fileType = certfiles.FormatPEM
		}
		icon, err := icons.Resolve(opts.Icon)
		if err != nil {
			return err
		}
		anchor := templ.EscapeString(AnchorID(opts.Title))

		if _, err := io.WriteString(w, `<li class="entry">`+
			`<svg class="entry-icon" aria-hidden="true"><use href="#`+icon.SymbolID()+`"></use></svg>`+
			`<h3>`+templ.EscapeString(opts.Title)); err != nil {
			return err
		}
		if opts.Note != "" {
			if _, err := io.WriteString(w, ` <span class="note">`+templ.EscapeString(opts.Note)+`</span>`); err != nil {
				return err
			}
		}

		label := certfiles.Filename(opts.CAName, fileType)
		if _, err := io.WriteString(w, `</h3>`+
			`<p class="entry-actions">`+
			`<a class="download" href="/cert/`+fileType.Extension()+`">Get `+templ.EscapeString(label)+`</a> `+
			`<a class="toggle-show" id="`+anchor+`" href="#`+anchor+`">Show Instructions</a> `+
			`<a class="toggle-hide" href="/#">Hide Instructions</a>`+
			`</p>`+
			`<div class="instructions">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</div></li>`)
		return err
	})
}
