package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/triviet-energy/kpi-gateway/internal/evaluation"
	"github.com/triviet-energy/kpi-gateway/internal/importer"
	syncx "github.com/triviet-energy/kpi-gateway/internal/sync"
)

// UploadReportHandler parses an uploaded report PDF and stages the
// reconstructed evaluation on the session. Nothing is applied until the
// user confirms; a failed parse leaves the session exactly as it was.
func UploadReportHandler(store evaluation.Store, svc *importer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "bad multipart form", http.StatusBadRequest)
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file field", http.StatusBadRequest)
			return
		}
		defer f.Close()

		s := store.Get(sub)
		pending, err := svc.FromUpload(r.Context(), f, hdr, s.Info, s.Role)
		if err != nil {
			importError(w, err)
			return
		}
		s, err = store.StageImport(sub, pending)
		if err != nil {
			storeError(w, err)
			return
		}
		writeSession(w, s)
	}
}

// ConfirmImportHandler applies the staged import in one step.
func ConfirmImportHandler(store evaluation.Store, events *syncx.EventRepo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		s, err := store.ConfirmImport(sub)
		if err != nil {
			storeError(w, err)
			return
		}
		if events != nil {
			if err := events.Record(r.Context(), syncx.EventReportImported, sub, map[string]string{"month": s.Month, "role": string(s.Role)}); err != nil {
				log.Printf("event log: %v", err)
			}
		}
		writeSession(w, s)
	}
}

// DiscardImportHandler drops the staged import without touching the session.
func DiscardImportHandler(store evaluation.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, ok := subject(w, r)
		if !ok {
			return
		}
		s, err := store.DiscardImport(sub)
		if err != nil {
			storeError(w, err)
			return
		}
		writeSession(w, s)
	}
}

func importError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, importer.ErrNotPDF):
		http.Error(w, importer.ErrNotPDF.Error(), http.StatusBadRequest)
	case errors.Is(err, importer.ErrUnavailable):
		http.Error(w, importer.ErrUnavailable.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, importer.ErrUnreadable):
		http.Error(w, importer.ErrUnreadable.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
