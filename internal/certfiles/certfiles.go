// Package certfiles reads CA certificate artifacts from the configuration
// directory and packages the Android Magisk module variant.
//
// Artifacts are produced elsewhere; this package only locates and serves
// them. File naming follows the store layout: <basename>-ca-cert.<ext>.
package certfiles

import (
	"fmt"
	"os"
	"path/filepath"
)

// Format identifies a downloadable certificate file type.
type Format string

const (
	// FormatPEM is the default certificate download format.
	FormatPEM Format = "pem"
	// FormatP12 is the PKCS#12 bundle used by Windows.
	FormatP12 Format = "p12"
	// FormatCER is the PEM copy with the extension Android expects.
	FormatCER Format = "cer"
)

// Formats lists every downloadable certificate format in a stable order.
func Formats() []Format {
	return []Format{FormatPEM, FormatP12, FormatCER}
}

// Valid reports whether the format is a known certificate file type.
func (f Format) Valid() bool {
	switch f {
	case FormatPEM, FormatP12, FormatCER:
		return true
	}
	return false
}

// Extension returns the filename extension for the format.
func (f Format) Extension() string {
	return string(f)
}

// ContentType returns the media type the download endpoint serves.
func (f Format) ContentType() string {
	if f == FormatP12 {
		return "application/x-pkcs12"
	}
	return "application/x-x509-ca-cert"
}

// Filename returns the artifact filename for a CA basename, for example
// "trustgate-ca-cert.pem".
func Filename(basename string, f Format) string {
	return basename + "-ca-cert." + f.Extension()
}

// Store locates CA artifacts inside a configuration directory.
type Store struct {
	// Dir is the configuration directory holding the artifacts.
	Dir string
	// Basename prefixes every artifact filename.
	Basename string
}

// Path returns the on-disk location of the artifact for a format.
func (s Store) Path(f Format) string {
	return filepath.Join(s.Dir, Filename(s.Basename, f))
}

// Read returns the artifact bytes for a format.
func (s Store) Read(f Format) ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("certfiles: unknown format %q", string(f))
	}
	data, err := os.ReadFile(s.Path(f))
	if err != nil {
		return nil, fmt.Errorf("certfiles: read %s artifact: %w", f, err)
	}
	return data, nil
}

// HasCert reports whether the PEM artifact exists, which is the readiness
// signal for the onboarding service.
func (s Store) HasCert() bool {
	_, err := os.Stat(s.Path(FormatPEM))
	return err == nil
}
