package certfiles

import (
	"archive/zip"
	"bytes"
	"crypto/md5"
	"crypto/x509"
	"encoding/binary"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
)

// MagiskModuleName returns the filename of the packaged Magisk module.
func (s Store) MagiskModuleName() string {
	return s.Basename + "-magisk-module.zip"
}

// MagiskModule returns the Magisk module zip that installs the CA
// certificate into the Android system trust store. The zip is built from
// the PEM artifact on first use and cached in the configuration directory.
func (s Store) MagiskModule() ([]byte, error) {
	path := filepath.Join(s.Dir, s.MagiskModuleName())
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	pemData, err := s.Read(FormatPEM)
	if err != nil {
		return nil, err
	}
	module, err := buildMagiskModule(s.Basename, pemData)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, module, 0o644); err != nil {
		return nil, fmt.Errorf("certfiles: cache magisk module: %w", err)
	}
	return module, nil
}

func buildMagiskModule(basename string, pemData []byte) ([]byte, error) {
	hash, err := subjectHashOld(pemData)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := []struct {
		name string
		body []byte
	}{
		{"module.prop", []byte(magiskModuleProp(basename))},
		{"customize.sh", []byte(magiskCustomizeScript)},
		{"system/etc/security/cacerts/" + hash + ".0", pemData},
	}
	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, fmt.Errorf("certfiles: add %s to magisk module: %w", entry.name, err)
		}
		if _, err := w.Write(entry.body); err != nil {
			return nil, fmt.Errorf("certfiles: write %s to magisk module: %w", entry.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("certfiles: finalize magisk module: %w", err)
	}
	return buf.Bytes(), nil
}

// subjectHashOld computes the OpenSSL -subject_hash_old value for the
// certificate: the first four bytes of the MD5 of the DER-encoded subject,
// read little-endian. Android names system trust anchors "<hash>.0".
func subjectHashOld(pemData []byte) (string, error) {
	block, _ := pem.Decode(pemData)
	if block == nil || block.Type != "CERTIFICATE" {
		return "", fmt.Errorf("certfiles: artifact is not a PEM certificate")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return "", fmt.Errorf("certfiles: parse certificate: %w", err)
	}
	sum := md5.Sum(cert.RawSubject)
	return fmt.Sprintf("%08x", binary.LittleEndian.Uint32(sum[:4])), nil
}

func magiskModuleProp(basename string) string {
	return "id=" + basename + "-ca-cert\n" +
		"name=" + basename + " CA certificate\n" +
		"version=1.0\n" +
		"versionCode=1\n" +
		"author=" + basename + "\n" +
		"description=Adds the " + basename + " CA certificate to the Android system trust store.\n"
}

const magiskCustomizeScript = `#!/system/bin/sh
set_perm_recursive "$MODPATH/system/etc/security/cacerts" 0 0 0755 0644 u:object_r:system_file:s0
`
