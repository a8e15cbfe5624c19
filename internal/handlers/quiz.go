package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"content-curator/internal/models"
)

// PDFs above this are rejected outright.
const maxUploadBytes = 20 * 1024 * 1024

type textExtractor interface {
	ExtractText(data []byte) (string, error)
}

type quizGenerator interface {
	GenerateQuiz(ctx context.Context, pdfText string) (*models.Quiz, error)
}

type QuizHandler struct {
	extractor textExtractor
	quizzes   quizGenerator
}

func NewQuizHandler(extractor textExtractor, quizzes quizGenerator) *QuizHandler {
	return &QuizHandler{extractor: extractor, quizzes: quizzes}
}

// Generate accepts a multipart PDF upload and returns the generated quiz
// document. A PDF with no extractable text is a 422, not a 500, and never
// reaches the generation service.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		// FormFile parses the whole multipart body, so the size limit
		// trips here rather than on a later read.
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResp("FILE_TOO_LARGE", "File exceeds the 20MB limit", r))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "No file provided", r))
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "File must be a PDF", r))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to read uploaded file", r))
		return
	}

	logrus.WithFields(logrus.Fields{
		"filename": header.Filename,
		"bytes":    len(data),
	}).Info("quiz upload received")

	text, err := h.extractor.ExtractText(data)
	if err != nil {
		logrus.WithError(err).Warn("pdf text extraction failed")
	}
	if err != nil || strings.TrimSpace(text) == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResp("UNPROCESSABLE", "Could not extract text from the PDF", r))
		return
	}

	quiz, err := h.quizzes.GenerateQuiz(r.Context(), text)
	if err != nil {
		logrus.WithError(err).Error("quiz generation failed")
		writeJSON(w, http.StatusInternalServerError, errorResp("GENERATION_ERROR", "Failed to generate quiz: "+err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, quiz)
}
