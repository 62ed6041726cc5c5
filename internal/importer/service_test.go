package importer

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/triviet-energy/kpi-gateway/internal/evaluation"
	"github.com/triviet-energy/kpi-gateway/internal/rubric"
)

type fakeSource struct {
	text string
	err  error
}

func (f fakeSource) Extract(ctx context.Context, r io.ReaderAt, size int64) (string, error) {
	return f.text, f.err
}

type panicSource struct{}

func (panicSource) Extract(ctx context.Context, r io.ReaderAt, size int64) (string, error) {
	panic("corrupt xref table")
}

type memFile struct{ *strings.Reader }

func (memFile) Close() error { return nil }

func upload(name, contentType, body string) (multipart.File, *multipart.FileHeader) {
	hdr := &multipart.FileHeader{Filename: name, Size: int64(len(body)), Header: textproto.MIMEHeader{}}
	if contentType != "" {
		hdr.Header.Set("Content-Type", contentType)
	}
	return memFile{strings.NewReader(body)}, hdr
}

func TestFromUploadRejectsNonPDF(t *testing.T) {
	svc := NewService(fakeSource{text: "irrelevant"})
	f, hdr := upload("report.docx", "application/msword", "not a pdf")
	_, err := svc.FromUpload(context.Background(), f, hdr, evaluation.EmployeeInfo{}, rubric.RoleWorker)
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("err = %v, want ErrNotPDF", err)
	}
}

func TestFromUploadAcceptsByExtensionOrContentType(t *testing.T) {
	svc := NewService(fakeSource{text: "Họ và tên: Nguyễn Văn An\n"})

	f, hdr := upload("report.PDF", "", "%PDF-1.7")
	p, err := svc.FromUpload(context.Background(), f, hdr, evaluation.EmployeeInfo{}, rubric.RoleWorker)
	if err != nil {
		t.Fatalf("pdf extension rejected: %v", err)
	}
	if p.Info.Name != "Nguyễn Văn An" {
		t.Fatalf("parsed name = %q", p.Info.Name)
	}

	f, hdr = upload("report.bin", "application/pdf", "%PDF-1.7")
	if _, err := svc.FromUpload(context.Background(), f, hdr, evaluation.EmployeeInfo{}, rubric.RoleWorker); err != nil {
		t.Fatalf("pdf content type rejected: %v", err)
	}
}

func TestFromUploadNoSourceConfigured(t *testing.T) {
	svc := NewService(nil)
	f, hdr := upload("report.pdf", "application/pdf", "%PDF-1.7")
	_, err := svc.FromUpload(context.Background(), f, hdr, evaluation.EmployeeInfo{}, rubric.RoleWorker)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestFromUploadExtractorFailure(t *testing.T) {
	svc := NewService(fakeSource{err: errors.New("bad xref")})
	f, hdr := upload("report.pdf", "application/pdf", "%PDF-1.7")
	_, err := svc.FromUpload(context.Background(), f, hdr, evaluation.EmployeeInfo{}, rubric.RoleWorker)
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
}

func TestFromUploadContainsPanics(t *testing.T) {
	svc := NewService(panicSource{})
	f, hdr := upload("report.pdf", "application/pdf", "%PDF-1.7")
	p, err := svc.FromUpload(context.Background(), f, hdr, evaluation.EmployeeInfo{}, rubric.RoleWorker)
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("err = %v, want ErrUnreadable", err)
	}
	if p.Ratings != nil || p.Info.Name != "" {
		t.Fatalf("panic path leaked partial state: %+v", p)
	}
}
