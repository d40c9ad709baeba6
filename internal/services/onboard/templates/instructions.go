package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Instruction bodies are opaque to Entry: each platform authors its own
// markup and Entry renders it verbatim inside the instructions container.

// WindowsInstructions explains the PKCS#12 import wizard flow.
func WindowsInstructions(caName string) templ.Component {
	ca := templ.EscapeString(caName)
	return staticHTML(`<ol>` +
		`<li>Double-click the downloaded <code>` + ca + `-ca-cert.p12</code> file to start the Certificate Import Wizard.</li>` +
		`<li>Select <strong>Local Machine</strong> as the store location.</li>` +
		`<li>Leave the password field blank and continue.</li>` +
		`<li>Choose <strong>Place all certificates in the following store</strong> and browse to <strong>Trusted Root Certification Authorities</strong>.</li>` +
		`<li>Finish the wizard and confirm the security warning.</li>` +
		`</ol>`)
}

// LinuxInstructions covers the common ca-certificates flow.
func LinuxInstructions(caName string) templ.Component {
	ca := templ.EscapeString(caName)
	return staticHTML(`<p>On Debian, Ubuntu, and derivatives:</p>` +
		`<pre><code>mv ` + ca + `-ca-cert.pem /usr/local/share/ca-certificates/` + ca + `.crt
sudo update-ca-certificates</code></pre>` +
		`<p>Some distributions and applications keep their own trust stores and need the certificate imported separately.</p>`)
}

// MacOSInstructions covers the Keychain Access flow.
func MacOSInstructions(caName string) templ.Component {
	ca := templ.EscapeString(caName)
	return staticHTML(`<ol>` +
		`<li>Double-click the downloaded <code>` + ca + `-ca-cert.pem</code> file; Keychain Access opens and imports it.</li>` +
		`<li>Locate the new certificate in the <strong>System</strong> keychain and double-click it.</li>` +
		`<li>Expand <strong>Trust</strong> and set <strong>When using this certificate</strong> to <strong>Always Trust</strong>.</li>` +
		`</ol>`)
}

// IOSInstructions covers profile installation plus the full-trust switch
// that iOS hides behind a second settings screen.
func IOSInstructions(caName string) templ.Component {
	ca := templ.EscapeString(caName)
	return staticHTML(`<ol>` +
		`<li>Download the certificate; iOS stores it as a configuration profile.</li>` +
		`<li>Open <strong>Settings</strong>, tap <strong>Profile Downloaded</strong>, and install the profile.</li>` +
		`</ol>` +
		`<p class="warning"><strong>Important:</strong> installing the profile is not enough. Go to <strong>Settings &gt; General &gt; About &gt; Certificate Trust Settings</strong> and enable full trust for the ` + ca + ` root certificate.</p>`)
}

// AndroidInstructions covers the user trust store flow and the Magisk
// module for devices where apps ignore user-added authorities.
func AndroidInstructions(caName string) templ.Component {
	ca := templ.EscapeString(caName)
	return staticHTML(`<ol>` +
		`<li>Open <strong>Settings &gt; Security &gt; Encryption &amp; credentials &gt; Install a certificate &gt; CA certificate</strong>.</li>` +
		`<li>Select the downloaded <code>` + ca + `-ca-cert.cer</code> file and confirm.</li>` +
		`</ol>` +
		`<p class="warning"><strong>Warning:</strong> apps targeting recent Android versions only trust system authorities and ignore user-added certificates.</p>` +
		`<p>Rooted devices running Magisk can install the certificate system-wide instead: <a href="/cert/magisk">download the Magisk module</a> and install it from the Magisk app, then reboot.</p>`)
}

// FirefoxInstructions covers Firefox's separate trust store.
func FirefoxInstructions(caName string) templ.Component {
	ca := templ.EscapeString(caName)
	return staticHTML(`<p>Firefox does not use the operating system trust store.</p>` +
		`<ol>` +
		`<li>Open <strong>Settings &gt; Privacy &amp; Security &gt; Certificates</strong> and click <strong>View Certificates</strong>.</li>` +
		`<li>On the <strong>Authorities</strong> tab, click <strong>Import</strong> and select the downloaded <code>` + ca + `-ca-cert.pem</code> file.</li>` +
		`<li>Check <strong>Trust this CA to identify websites</strong> and confirm.</li>` +
		`</ol>`)
}

func staticHTML(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}
