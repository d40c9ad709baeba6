package onboard

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		HTTPAddr: ":0",
		ConfDir:  t.TempDir(),
		CAName:   "acme",
	}
}

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestNewHandlerRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.CAName = " "
	if _, err := NewHandler(cfg); err == nil {
		t.Fatal("expected error for blank CA name")
	}
}

func TestIndexRendersOnboardingPage(t *testing.T) {
	h := newTestHandler(t, testConfig(t))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("content-type = %q, want text/html", ct)
	}
	body := rr.Body.String()
	if count := strings.Count(body, `<li class="entry">`); count != 7 {
		t.Fatalf("entry count = %d, want 7", count)
	}
	if !strings.Contains(body, "acme-ca-cert.p12") {
		t.Fatalf("page missing CA-labeled download, got %q", body)
	}
	if strings.Contains(body, `class="handoff"`) {
		t.Fatal("handoff section rendered without a public URL")
	}
}

func TestIndexIncludesHandoffWhenPublicURLConfigured(t *testing.T) {
	cfg := testConfig(t)
	cfg.PublicURL = "https://onboard.acme.example:8432"
	h := newTestHandler(t, cfg)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "data:image/png;base64,") {
		t.Fatal("expected embedded QR image with public URL configured")
	}
}

func TestIndexRejectsNonGET(t *testing.T) {
	h := newTestHandler(t, testConfig(t))
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if allow := rr.Header().Get("Allow"); allow != http.MethodGet {
		t.Fatalf("Allow = %q, want %q", allow, http.MethodGet)
	}
}

func TestUnknownPathNotFound(t *testing.T) {
	h := newTestHandler(t, testConfig(t))
	req := httptest.NewRequest(http.MethodGet, "/nonsense", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestCertDownloadServesArtifact(t *testing.T) {
	cfg := testConfig(t)
	want := []byte("pem-bytes")
	if err := os.WriteFile(filepath.Join(cfg.ConfDir, "acme-ca-cert.pem"), want, 0o644); err != nil {
		t.Fatal(err)
	}
	h := newTestHandler(t, cfg)
	req := httptest.NewRequest(http.MethodGet, "/cert/pem", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/x-x509-ca-cert" {
		t.Fatalf("content-type = %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); cd != "attachment; filename=acme-ca-cert.pem" {
		t.Fatalf("content-disposition = %q", cd)
	}
	if rr.Body.String() != string(want) {
		t.Fatalf("body = %q, want %q", rr.Body.String(), want)
	}
}

func TestCertDownloadMissingArtifactErrors(t *testing.T) {
	h := newTestHandler(t, testConfig(t))
	req := httptest.NewRequest(http.MethodGet, "/cert/p12", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestMagiskDownloadServesModule(t *testing.T) {
	cfg := testConfig(t)
	if err := os.WriteFile(filepath.Join(cfg.ConfDir, "acme-ca-cert.pem"), serviceTestPEM(t), 0o644); err != nil {
		t.Fatal(err)
	}
	h := newTestHandler(t, cfg)
	req := httptest.NewRequest(http.MethodGet, "/cert/magisk", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/zip" {
		t.Fatalf("content-type = %q, want application/zip", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); cd != "attachment; filename=acme-magisk-module.zip" {
		t.Fatalf("content-disposition = %q", cd)
	}
}

func TestHealthzTracksCertificateArtifact(t *testing.T) {
	cfg := testConfig(t)
	h := newTestHandler(t, cfg)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status before artifact = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}

	if err := os.WriteFile(filepath.Join(cfg.ConfDir, "acme-ca-cert.pem"), []byte("pem"), 0o644); err != nil {
		t.Fatal(err)
	}
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status after artifact = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestStaticAssetsServed(t *testing.T) {
	h := newTestHandler(t, testConfig(t))

	req := httptest.NewRequest(http.MethodGet, "/static/onboard.css", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("css status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Fatalf("css content-type = %q", ct)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/onboard.js", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("js status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "toggle-show") {
		t.Fatal("toggle script missing show-toggle binding")
	}
}

func serviceTestPEM(t *testing.T) []byte {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "acme", Organization: []string{"acme"}},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatal(err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}
