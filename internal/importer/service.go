package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/triviet-energy/kpi-gateway/internal/evaluation"
	"github.com/triviet-energy/kpi-gateway/internal/rubric"
)

var (
	// ErrNotPDF rejects uploads before any parse attempt.
	ErrNotPDF = errors.New("file is not a PDF report")
	// ErrUnavailable means no text extractor is configured.
	ErrUnavailable = errors.New("pdf reader unavailable")
	// ErrUnreadable is the generic soft failure for corrupt or unparseable
	// files; no session state is touched when it is returned.
	ErrUnreadable = errors.New("could not read report file")
)

// maxUploadBytes caps report uploads. Generated reports are single-digit MB.
const maxUploadBytes = 20 << 20

// Service turns an uploaded report back into a staged evaluation.
type Service struct {
	src TextSource
}

func NewService(src TextSource) *Service { return &Service{src: src} }

// FromUpload validates the upload, extracts its text, and reconstructs the
// evaluation. All failures are contained here: the caller either gets a
// complete PendingImport or one of the sentinel errors, never partial state.
func (s *Service) FromUpload(ctx context.Context, f multipart.File, hdr *multipart.FileHeader, current evaluation.EmployeeInfo, currentRole rubric.Role) (p evaluation.PendingImport, err error) {
	if hdr == nil || !isPDF(hdr) {
		return evaluation.PendingImport{}, ErrNotPDF
	}
	if s.src == nil {
		return evaluation.PendingImport{}, ErrUnavailable
	}

	// pdf parsing walks attacker-supplied structures; contain panics to the
	// import boundary
	defer func() {
		if r := recover(); r != nil {
			p = evaluation.PendingImport{}
			err = ErrUnreadable
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return evaluation.PendingImport{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(raw) > maxUploadBytes {
		return evaluation.PendingImport{}, ErrUnreadable
	}

	fullText, err := s.src.Extract(ctx, bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return evaluation.PendingImport{}, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return ParseReport(fullText, current, currentRole), nil
}

func isPDF(hdr *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(hdr.Filename), ".pdf") {
		return true
	}
	ct := hdr.Header.Get("Content-Type")
	return strings.HasPrefix(strings.ToLower(ct), "application/pdf")
}
