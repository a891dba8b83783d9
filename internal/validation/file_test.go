package validation

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"
)

// fileHeader builds a real multipart.FileHeader carrying the given content
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile error: %v", err)
	}
	_, err = fw.Write(content)
	if err != nil {
		t.Fatalf("write error: %v", err)
	}
	err = w.Close()
	if err != nil {
		t.Fatalf("close error: %v", err)
	}

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	err = req.ParseMultipartForm(32 << 20)
	if err != nil {
		t.Fatalf("ParseMultipartForm error: %v", err)
	}

	return req.MultipartForm.File["file"][0]
}

func TestValidateFile_PDFAccepted(t *testing.T) {
	t.Parallel()

	header := fileHeader(t, "paper.pdf", []byte("%PDF-1.5\n%some pdf body"))
	err := ValidateFile(header, PDFConstraints(10<<20))
	if err != nil {
		t.Fatalf("expected valid PDF, got %v", err)
	}
}

func TestValidateFile_PlainTextRejected(t *testing.T) {
	t.Parallel()

	header := fileHeader(t, "paper.pdf", []byte("just some plain text"))
	err := ValidateFile(header, PDFConstraints(10<<20))
	if err == nil {
		t.Fatalf("expected rejection for non-PDF content")
	}
}

func TestValidateFile_WrongExtensionRejected(t *testing.T) {
	t.Parallel()

	header := fileHeader(t, "paper.txt", []byte("%PDF-1.5\n"))
	err := ValidateFile(header, PDFConstraints(10<<20))
	if err == nil {
		t.Fatalf("expected rejection for wrong extension")
	}
}

func TestValidateFile_OversizeRejected(t *testing.T) {
	t.Parallel()

	content := append([]byte("%PDF-1.5\n"), bytes.Repeat([]byte("a"), 2048)...)
	header := fileHeader(t, "paper.pdf", content)
	err := ValidateFile(header, PDFConstraints(1024))
	if err == nil {
		t.Fatalf("expected rejection for oversize file")
	}
}

func TestValidateFile_PNGAvatarAccepted(t *testing.T) {
	t.Parallel()

	// PNG magic bytes
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	header := fileHeader(t, "avatar.png", png)
	err := ValidateFile(header, ImageConstraints(5<<20))
	if err != nil {
		t.Fatalf("expected valid PNG, got %v", err)
	}
}

func TestValidateFile_PDFAvatarRejected(t *testing.T) {
	t.Parallel()

	header := fileHeader(t, "avatar.pdf", []byte("%PDF-1.5\n"))
	err := ValidateFile(header, ImageConstraints(5<<20))
	if err == nil {
		t.Fatalf("expected rejection for PDF as avatar")
	}
}
