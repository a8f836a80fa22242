// package services defines interface Service for the notebook backend HTTP API
package services

import (
	"context"

	"github.com/desertthunder/nbx/internal/models"
)

// Selector identifies a study-aid generation category.
type Selector string

const (
	SelectorFlowchart Selector = "flowchart"
	SelectorFlashcard Selector = "flashcard"
	SelectorQuiz      Selector = "quiz"
)

// Service defines the opaque request/response boundary to the notebook
// backend. Implementations validate response shape at the boundary; callers
// only ever see typed results or an error.
type Service interface {
	// Upload sends one local file to the backend and returns the source
	// identifier on success.
	Upload(ctx context.Context, path string) (*UploadResult, error)

	// Chat sends a free-text query against the uploaded sources.
	Chat(ctx context.Context, query string) (string, error)

	// GenerateStudyAid requests one of flowchart, flashcard, or quiz
	// generation and returns the matching variant of StudyAidResult.
	GenerateStudyAid(ctx context.Context, selector Selector) (*StudyAidResult, error)

	// GenerateSlides requests a presentation built from the sources.
	GenerateSlides(ctx context.Context) (*SlideResult, error)

	// GenerateVideo requests a narrated video overview. Can take minutes.
	GenerateVideo(ctx context.Context) (*VideoResult, error)

	// GenerateAudio requests an audio overview of the sources.
	GenerateAudio(ctx context.Context) (*AudioResult, error)

	// Name returns the name of the backend service.
	Name() string
}

// UploadResult is the outcome of a successful upload.
type UploadResult struct {
	Source  string // source identifier for the registry (the file name)
	Message string // backend status line, e.g. chunk count
}

// StudyAidResult is the tagged variant returned by GenerateStudyAid: exactly
// one payload field is populated, matching Selector.
type StudyAidResult struct {
	Selector   Selector
	Flashcards []models.FlashCard
	Questions  []models.QuizQuestion
	Diagram    string // mermaid markup for flowcharts
}

// SlideResult is the locator for a generated presentation.
type SlideResult struct {
	DownloadURL string `json:"download_url" validate:"required"`
}

// VideoResult is the locator and metadata for a generated video overview.
type VideoResult struct {
	VideoURL   string  `json:"video_url" validate:"required"`
	Duration   float64 `json:"duration"` // seconds
	SlideCount int     `json:"slides_count"`
}

// AudioResult is the locator for a generated audio overview.
type AudioResult struct {
	AudioURL string `json:"audio_url" validate:"required"`
}
