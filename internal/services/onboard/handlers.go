package onboard

import (
	"bytes"
	"log"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustgate/onboard/internal/certfiles"
	"github.com/trustgate/onboard/internal/services/onboard/templates"
)

type handler struct {
	cfg    Config
	store  certfiles.Store
	tracer trace.Tracer
}

// handleIndex renders the onboarding page. Rendering happens into a
// buffer first so a failed render never emits a partial page.
func (h *handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !requireGet(w, r) {
		return
	}
	ctx, span := h.tracer.Start(r.Context(), "onboard.index")
	defer span.End()

	var buf bytes.Buffer
	if err := templates.Document(h.cfg.CAName, h.cfg.PublicURL).Render(ctx, &buf); err != nil {
		log.Printf("render onboarding page: %v", err)
		http.Error(w, "failed to render onboarding page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// certHandler serves one certificate artifact as an attachment.
func (h *handler) certHandler(format certfiles.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireGet(w, r) {
			return
		}
		_, span := h.tracer.Start(r.Context(), "onboard.cert_download",
			trace.WithAttributes(attribute.String("cert.format", string(format))))
		defer span.End()

		data, err := h.store.Read(format)
		if err != nil {
			log.Printf("read %s artifact: %v", format, err)
			http.Error(w, "certificate not available", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Content-Disposition", "attachment; filename="+certfiles.Filename(h.store.Basename, format))
		_, _ = w.Write(data)
	}
}

// handleMagisk serves the lazily packaged Magisk module zip.
func (h *handler) handleMagisk(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	_, span := h.tracer.Start(r.Context(), "onboard.magisk_download")
	defer span.End()

	data, err := h.store.MagiskModule()
	if err != nil {
		log.Printf("package magisk module: %v", err)
		http.Error(w, "magisk module not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename="+h.store.MagiskModuleName())
	_, _ = w.Write(data)
}

// handleHealthz reports readiness once the PEM artifact exists.
func (h *handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	if !h.store.HasCert() {
		http.Error(w, "certificate store not ready", http.StatusServiceUnavailable)
		return
	}
	_, _ = w.Write([]byte("ok\n"))
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	return false
}
