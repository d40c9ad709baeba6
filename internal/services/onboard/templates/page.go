package templates

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/trustgate/onboard/internal/certfiles"
	"github.com/trustgate/onboard/internal/platform/branding"
	"github.com/trustgate/onboard/internal/platform/icons"
)

// ErrBlankCAName is returned when the page composer is asked to render
// without a certificate authority name.
var ErrBlankCAName = errors.New("templates: CA name must not be blank")

// platformEntry pairs entry parameters with the injected instruction body.
type platformEntry struct {
	opts EntryOptions
	body templ.Component
}

func platformEntries(caName string) []platformEntry {
	return []platformEntry{
		{EntryOptions{Title: "Windows", Icon: "windows", FileType: certfiles.FormatP12, CAName: caName}, WindowsInstructions(caName)},
		{EntryOptions{Title: "Linux", Icon: "linux", CAName: caName}, LinuxInstructions(caName)},
		{EntryOptions{Title: "macOS", Icon: "macos", CAName: caName}, MacOSInstructions(caName)},
		{EntryOptions{Title: "iOS", Note: "please read the instructions!", Icon: "ios", CAName: caName}, IOSInstructions(caName)},
		{EntryOptions{Title: "Android", Note: "please read the instructions!", Icon: "android", FileType: certfiles.FormatCER, CAName: caName}, AndroidInstructions(caName)},
		{EntryOptions{Title: "Firefox", Icon: "firefox", CAName: caName}, FirefoxInstructions(caName)},
	}
}

// OnboardingPage composes the certificate onboarding content: one entry
// per supported platform in fixed order, a hand-rolled "Other Platforms"
// entry with raw downloads, and the trust-scope footer. Rendering is a
// single pure pass; identical inputs produce identical bytes.
func OnboardingPage(caName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if strings.TrimSpace(caName) == "" {
			return ErrBlankCAName
		}
		ca := templ.EscapeString(caName)

		if _, err := io.WriteString(w, `<h2>Install the `+ca+` certificate authority</h2>`+
			`<p class="lead">Pick your platform below, download the certificate, and follow the instructions to trust it.</p>`+
			`<ul class="entries">`); err != nil {
			return err
		}
		for _, entry := range platformEntries(caName) {
			if err := Entry(entry.opts, entry.body).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := otherPlatformsEntry(caName).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</ul>`); err != nil {
			return err
		}
		return trustScopeFooter(caName).Render(ctx, w)
	})
}

// otherPlatformsEntry offers the raw downloads without an instructions
// toggle; there is nothing to explain for platforms we do not document.
func otherPlatformsEntry(caName string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		icon, err := icons.Resolve("download")
		if err != nil {
			return err
		}
		pemLabel := templ.EscapeString(certfiles.Filename(caName, certfiles.FormatPEM))
		p12Label := templ.EscapeString(certfiles.Filename(caName, certfiles.FormatP12))
		_, err = io.WriteString(w, `<li class="entry">`+
			`<svg class="entry-icon" aria-hidden="true"><use href="#`+icon.SymbolID()+`"></use></svg>`+
			`<h3>Other Platforms</h3>`+
			`<p class="entry-actions">`+
			`<a class="download" href="/cert/pem">Get `+pemLabel+`</a> `+
			`<a class="download" href="/cert/p12">Get `+p12Label+`</a>`+
			`</p></li>`)
		return err
	})
}

func trustScopeFooter(caName string) templ.Component {
	ca := templ.EscapeString(caName)
	return staticHTML(`<footer class="trust-scope">` +
		`<p>The ` + ca + ` certificate authority is generated locally and is unique to this installation; its private key never leaves your machine.</p>` +
		`<p>Trusting it only affects connections you explicitly route through ` + ca + `. All other traffic is untouched.</p>` +
		`<p>To revoke trust later, remove the ` + ca + ` certificate from your platform's trust store.</p>` +
		`</footer>`)
}

// Document wraps the onboarding content in the page shell and, when a
// public URL is configured, appends the mobile handoff section.
func Document(caName string, publicURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if err := OnboardingPage(caName).Render(ctx, w); err != nil {
				return err
			}
			return MobileHandoff(publicURL).Render(ctx, w)
		})
		title := "Certificate Setup | " + branding.AppName
		return Layout(title).Render(templ.WithChildren(ctx, content), w)
	})
}
