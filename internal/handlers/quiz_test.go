package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"content-curator/internal/models"
)

type fakeExtractor struct {
	text   string
	err    error
	called bool
}

func (f *fakeExtractor) ExtractText(data []byte) (string, error) {
	f.called = true
	return f.text, f.err
}

type fakeQuizGenerator struct {
	quiz   *models.Quiz
	err    error
	called bool
}

func (f *fakeQuizGenerator) GenerateQuiz(_ context.Context, pdfText string) (*models.Quiz, error) {
	f.called = true
	return f.quiz, f.err
}

func newUploadRequest(t *testing.T, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to build multipart body: %v", err)
	}
	fw.Write([]byte("%PDF-1.4 fake payload"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/generate-quiz", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestQuizHandler_RejectsNonPDF(t *testing.T) {
	extractor := &fakeExtractor{}
	generator := &fakeQuizGenerator{}
	h := NewQuizHandler(extractor, generator)

	rr := httptest.NewRecorder()
	h.Generate(rr, newUploadRequest(t, "notes.docx"))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-pdf filename, got %d", rr.Code)
	}
	if extractor.called {
		t.Error("Extractor should not run for a rejected filename")
	}
}

func TestQuizHandler_UppercaseSuffixAccepted(t *testing.T) {
	extractor := &fakeExtractor{text: "conteúdo"}
	generator := &fakeQuizGenerator{quiz: &models.Quiz{Title: "T"}}
	h := NewQuizHandler(extractor, generator)

	rr := httptest.NewRecorder()
	h.Generate(rr, newUploadRequest(t, "APOSTILA.PDF"))

	if rr.Code != http.StatusOK {
		t.Errorf("Expected 200 for uppercase .PDF suffix, got %d", rr.Code)
	}
}

func TestQuizHandler_EmptyExtractedText(t *testing.T) {
	extractor := &fakeExtractor{text: "   \n"}
	generator := &fakeQuizGenerator{}
	h := NewQuizHandler(extractor, generator)

	rr := httptest.NewRecorder()
	h.Generate(rr, newUploadRequest(t, "scanned.pdf"))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for unextractable PDF, got %d", rr.Code)
	}
	if generator.called {
		t.Error("Generation service must not be called when no text was extracted")
	}
}

func TestQuizHandler_ExtractionError(t *testing.T) {
	extractor := &fakeExtractor{err: errors.New("corrupt pdf")}
	generator := &fakeQuizGenerator{}
	h := NewQuizHandler(extractor, generator)

	rr := httptest.NewRecorder()
	h.Generate(rr, newUploadRequest(t, "broken.pdf"))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for unreadable PDF, got %d", rr.Code)
	}
	if generator.called {
		t.Error("Generation service must not be called when extraction failed")
	}
}

func TestQuizHandler_Success(t *testing.T) {
	extractor := &fakeExtractor{text: "conteúdo extraído"}
	generator := &fakeQuizGenerator{quiz: &models.Quiz{
		Title:       "Quiz de Go",
		Description: "Laços e condicionais",
		Questions: []models.QuizQuestion{
			{QuestionID: "q1", Type: "true_false", Question: "Go é compilado?", CorrectAnswers: []string{"verdadeiro"}, Status: "draft"},
		},
	}}
	h := NewQuizHandler(extractor, generator)

	rr := httptest.NewRecorder()
	h.Generate(rr, newUploadRequest(t, "apostila.pdf"))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var quiz models.Quiz
	if err := json.NewDecoder(rr.Body).Decode(&quiz); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if quiz.Title != "Quiz de Go" || len(quiz.Questions) != 1 {
		t.Errorf("Unexpected quiz payload: %+v", quiz)
	}
}

func TestQuizHandler_GenerationFailure(t *testing.T) {
	extractor := &fakeExtractor{text: "conteúdo"}
	generator := &fakeQuizGenerator{err: errors.New("decode failed")}
	h := NewQuizHandler(extractor, generator)

	rr := httptest.NewRecorder()
	h.Generate(rr, newUploadRequest(t, "apostila.pdf"))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 on generation failure, got %d", rr.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error.Code != "GENERATION_ERROR" {
		t.Errorf("Expected GENERATION_ERROR code, got %q", resp.Error.Code)
	}
}

func TestQuizHandler_OversizeUpload(t *testing.T) {
	extractor := &fakeExtractor{}
	h := NewQuizHandler(extractor, &fakeQuizGenerator{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "huge.pdf")
	if err != nil {
		t.Fatalf("Failed to build multipart body: %v", err)
	}
	fw.Write(bytes.Repeat([]byte("a"), 21*1024*1024))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/generate-quiz", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := httptest.NewRecorder()
	h.Generate(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413 for an oversize upload, got %d", rr.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error.Code != "FILE_TOO_LARGE" {
		t.Errorf("Expected FILE_TOO_LARGE code, got %q", resp.Error.Code)
	}
	if extractor.called {
		t.Error("Extractor should not run for an oversize upload")
	}
}

func TestQuizHandler_MissingFile(t *testing.T) {
	h := NewQuizHandler(&fakeExtractor{}, &fakeQuizGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/generate-quiz", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")

	rr := httptest.NewRecorder()
	h.Generate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing file field, got %d", rr.Code)
	}
}
