package models

import "time"

// KeywordSet holds the bilingual keywords produced by the extraction chain.
// Order is preserved from the model's reply; it drives the video search order.
type KeywordSet struct {
	PT []string `json:"pt"`
	EN []string `json:"en"`
}

// VideoResult is a projection of the fields we keep from a YouTube search hit.
type VideoResult struct {
	Title       string    `json:"title"`
	Channel     string    `json:"channel"`
	PublishedAt time.Time `json:"publishedAt"`
	URL         string    `json:"url"`
}

type YouTubeLinksRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type YouTubeLinksResponse struct {
	PT string `json:"pt"`
	EN string `json:"en"`
}

type CurateRequest struct {
	Text string `json:"text"`
}

type VideosByLanguage struct {
	PT []VideoResult `json:"pt"`
	EN []VideoResult `json:"en"`
}

type CurateResponse struct {
	Keywords KeywordSet       `json:"keywords"`
	Videos   VideosByLanguage `json:"videos"`
}
