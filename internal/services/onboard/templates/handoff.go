package templates

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	qrcode "github.com/skip2/go-qrcode"
)

// MobileHandoff renders a QR code pointing at the onboarding page so the
// page can be opened on the device that needs the certificate. It renders
// nothing when no public URL is configured.
func MobileHandoff(publicURL string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		publicURL = strings.TrimSpace(publicURL)
		if publicURL == "" {
			return nil
		}
		png, err := qrcode.Encode(publicURL, qrcode.Medium, 256)
		if err != nil {
			return fmt.Errorf("templates: encode handoff qr: %w", err)
		}
		encoded := base64.StdEncoding.EncodeToString(png)
		_, err = io.WriteString(w, `<section class="handoff">`+
			`<h3>On your phone?</h3>`+
			`<p>Scan to open this page on the device that needs the certificate.</p>`+
			`<img src="data:image/png;base64,`+encoded+`" width="256" height="256" alt="QR code linking to this page">`+
			`</section>`)
		return err
	})
}
