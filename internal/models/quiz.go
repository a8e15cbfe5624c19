package models

import "encoding/json"

// QuizOption is one answer choice. Explanation says why the option is right
// or wrong, so the frontend can show it after the attempt.
type QuizOption struct {
	Label       string `json:"label"`
	Text        string `json:"text"`
	IsCorrect   bool   `json:"is_correct"`
	Explanation string `json:"explanation"`
}

// QuizQuestion mirrors the document contract the model is asked to produce.
// Options is only present for types where it applies; for fill_in_blank and
// short_answer the accepted answers live in CorrectAnswers.
type QuizQuestion struct {
	QuestionID        string          `json:"question_id"`
	Type              string          `json:"type"`
	Level             string          `json:"level"`
	Question          string          `json:"question"`
	Options           []QuizOption    `json:"options,omitempty"`
	CorrectAnswers    []string        `json:"correct_answers"`
	GuidanceOnError   string          `json:"guidance_on_error"`
	GuidanceOnSuccess string          `json:"guidance_on_success"`
	TimesUsed         int             `json:"times_used"`
	Status            string          `json:"status"`
	Extra             json.RawMessage `json:"extra,omitempty"`
}

type Quiz struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuizQuestion `json:"questions"`
}
