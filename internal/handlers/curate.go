package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"content-curator/internal/models"
	"content-curator/internal/services"
)

type keywordExtractor interface {
	ExtractKeywords(ctx context.Context, text string) models.KeywordSet
}

type videoSearcher interface {
	SearchVideos(ctx context.Context, keywords models.KeywordSet, relevanceLanguage string, maxResults int64) ([]models.VideoResult, error)
}

type CurateHandler struct {
	keywords   keywordExtractor
	videos     videoSearcher
	maxResults int64
}

func NewCurateHandler(keywords keywordExtractor, videos videoSearcher, maxResults int64) *CurateHandler {
	return &CurateHandler{keywords: keywords, videos: videos, maxResults: maxResults}
}

// Curate runs the full pipeline: bilingual keyword extraction, then one video
// search per language tag over the whole keyword set.
func (h *CurateHandler) Curate(w http.ResponseWriter, r *http.Request) {
	var req models.CurateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Text is required", r))
		return
	}

	set := h.keywords.ExtractKeywords(r.Context(), req.Text)

	byLang := models.VideosByLanguage{
		PT: []models.VideoResult{},
		EN: []models.VideoResult{},
	}
	for _, lang := range []string{"pt", "en"} {
		results, err := h.videos.SearchVideos(r.Context(), set, lang, h.maxResults)
		if err != nil {
			var searchErr *services.SearchError
			if errors.As(err, &searchErr) && searchErr.Kind == services.SearchErrorQuotaExceeded {
				writeJSON(w, http.StatusServiceUnavailable, errorResp("QUOTA_EXCEEDED", searchErr.Message, r))
				return
			}
			writeJSON(w, http.StatusBadGateway, errorResp("UPSTREAM_ERROR", err.Error(), r))
			return
		}

		if lang == "pt" {
			byLang.PT = results
		} else {
			byLang.EN = results
		}
	}

	writeJSON(w, http.StatusOK, models.CurateResponse{
		Keywords: set,
		Videos:   byLang,
	})
}
