package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"content-curator/internal/models"
)

// Content older than this is excluded from the filtered query.
const recencyWindow = 365 * 24 * time.Hour

type YouTubeService struct {
	svc             *youtube.Service
	region          string
	defaultLanguage string
	now             func() time.Time
}

// NewYouTubeService builds a Data API v3 client. Extra options let tests
// point the client at a local stub endpoint.
func NewYouTubeService(ctx context.Context, apiKey, region, relevanceLanguage string, opts ...option.ClientOption) (*YouTubeService, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}

	return &YouTubeService{
		svc:             svc,
		region:          region,
		defaultLanguage: relevanceLanguage,
		now:             time.Now,
	}, nil
}

// SearchVideos queries the provider once per keyword, Portuguese list first
// then English, preserving order and duplicates. Keywords whose filtered
// query returns nothing get one unfiltered retry. The aggregate is capped at
// maxResults regardless of how many keywords were searched.
//
// Quota exhaustion or any provider error envelope aborts the whole loop with
// a SearchError; transport failures only cost that keyword.
func (s *YouTubeService) SearchVideos(ctx context.Context, keywords models.KeywordSet, relevanceLanguage string, maxResults int64) ([]models.VideoResult, error) {
	if relevanceLanguage == "" {
		relevanceLanguage = s.defaultLanguage
	}
	publishedAfter := s.now().UTC().Add(-recencyWindow).Format(time.RFC3339)

	all := make([]string, 0, len(keywords.PT)+len(keywords.EN))
	all = append(all, keywords.PT...)
	all = append(all, keywords.EN...)

	videos := []models.VideoResult{}
	for _, keyword := range all {
		items, err := s.searchOnce(ctx, keyword, relevanceLanguage, publishedAfter, maxResults)
		if err != nil {
			var searchErr *SearchError
			if errors.As(err, &searchErr) {
				return nil, searchErr
			}
			logrus.WithError(err).WithField("keyword", keyword).Warn("video search failed, skipping keyword")
			continue
		}

		if len(items) == 0 {
			// Broadest possible retry: drop region, language and recency.
			logrus.WithField("keyword", keyword).Info("no videos for filtered query, retrying without filters")
			items, err = s.searchOnce(ctx, keyword, "", "", maxResults)
			if err != nil {
				var searchErr *SearchError
				if errors.As(err, &searchErr) {
					return nil, searchErr
				}
				logrus.WithError(err).WithField("keyword", keyword).Warn("unfiltered retry failed, skipping keyword")
				continue
			}
		}

		for _, item := range items {
			publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"keyword": keyword,
					"videoId": item.Id.VideoId,
				}).Warn("unparseable publishedAt from provider, keeping video with zero time")
			}
			videos = append(videos, models.VideoResult{
				Title:       item.Snippet.Title,
				Channel:     item.Snippet.ChannelTitle,
				PublishedAt: publishedAt,
				URL:         "https://www.youtube.com/watch?v=" + item.Id.VideoId,
			})
		}
	}

	if int64(len(videos)) > maxResults {
		videos = videos[:maxResults]
	}

	return videos, nil
}

func (s *YouTubeService) searchOnce(ctx context.Context, keyword, relevanceLanguage, publishedAfter string, maxResults int64) ([]*youtube.SearchResult, error) {
	call := s.svc.Search.List([]string{"snippet"}).
		Context(ctx).
		Q(keyword).
		Type("video").
		MaxResults(maxResults).
		Order("viewCount").
		VideoCaption("any")

	if relevanceLanguage != "" {
		call = call.RegionCode(s.region).RelevanceLanguage(relevanceLanguage)
	}
	if publishedAfter != "" {
		call = call.PublishedAfter(publishedAfter)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, classifySearchError(err)
	}

	return resp.Items, nil
}

// classifySearchError maps provider error envelopes onto the search error
// taxonomy. Quota errors apply account-wide, so retrying other keywords is
// pointless.
func classifySearchError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	for _, item := range apiErr.Errors {
		if item.Reason == "quotaExceeded" {
			return &SearchError{
				Kind:    SearchErrorQuotaExceeded,
				Message: "YouTube API quota exceeded, try again later",
			}
		}
	}

	return &SearchError{Kind: SearchErrorProvider, Message: apiErr.Message}
}
