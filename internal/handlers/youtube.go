package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"content-curator/internal/models"
)

// searchPhraseGenerator produces a search-optimized phrase in the requested
// language.
type searchPhraseGenerator interface {
	SearchPhrase(ctx context.Context, title, description, language string) (string, error)
}

type YouTubeLinksHandler struct {
	phrases searchPhraseGenerator
}

func NewYouTubeLinksHandler(phrases searchPhraseGenerator) *YouTubeLinksHandler {
	return &YouTubeLinksHandler{phrases: phrases}
}

// Generate builds one YouTube search URL per language from a title and
// description. Both phrases come from the generation service; a failure on
// either language fails the request.
func (h *YouTubeLinksHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.YouTubeLinksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	phrasePT, err := h.phrases.SearchPhrase(r.Context(), req.Title, req.Description, "português")
	if err != nil {
		logrus.WithError(err).Error("failed to generate Portuguese search phrase")
		writeJSON(w, http.StatusInternalServerError, errorResp("GENERATION_ERROR", err.Error(), r))
		return
	}

	phraseEN, err := h.phrases.SearchPhrase(r.Context(), req.Title, req.Description, "inglês")
	if err != nil {
		logrus.WithError(err).Error("failed to generate English search phrase")
		writeJSON(w, http.StatusInternalServerError, errorResp("GENERATION_ERROR", err.Error(), r))
		return
	}

	writeJSON(w, http.StatusOK, models.YouTubeLinksResponse{
		PT: searchURL(phrasePT),
		EN: searchURL(phraseEN),
	})
}

func searchURL(phrase string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(phrase)
}
