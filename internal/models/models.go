// package models defines the data model for the notebook studio client
package models

import (
	"time"
)

// ArtifactKind enumerates the saved artifact categories.
//
// Title is the natural key within a category; categories do not share a
// namespace, so a flashcard deck and a quiz deck may carry the same title.
type ArtifactKind int

const (
	KindFlashcards ArtifactKind = iota
	KindQuiz
	KindSlides
	KindVideo
)

func (k ArtifactKind) String() string {
	switch k {
	case KindFlashcards:
		return "flashcards"
	case KindQuiz:
		return "quiz"
	case KindSlides:
		return "slides"
	case KindVideo:
		return "video"
	default:
		return ""
	}
}

// DefaultTitle returns the title used when no sources have been uploaded.
func (k ArtifactKind) DefaultTitle() string {
	switch k {
	case KindFlashcards:
		return "Flashcards"
	case KindQuiz:
		return "Quiz"
	case KindSlides:
		return "Presentation"
	case KindVideo:
		return "Video Overview"
	default:
		return ""
	}
}

// FlashCard is a single question/answer pair. Immutable once generated.
type FlashCard struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// QuizQuestion is a multiple-choice question as produced by the backend.
//
// Options holds 4 answers including the correct one, in the order authored at
// generation time. Explanation and WrongExplanation are optional feedback
// strings shown after the slot is answered.
type QuizQuestion struct {
	Question         string   `json:"question" validate:"required"`
	Answer           string   `json:"answer" validate:"required"`
	Options          []string `json:"options,omitempty"`
	Explanation      string   `json:"explanation,omitempty"`
	WrongExplanation string   `json:"wrongExplanation,omitempty"`
}

// FlashcardDeck is a saved flashcard artifact keyed by Title.
type FlashcardDeck struct {
	Title     string      `json:"title"`
	Cards     []FlashCard `json:"cards"`
	Timestamp time.Time   `json:"timestamp"`
}

// QuizDeck is a saved quiz artifact keyed by Title.
type QuizDeck struct {
	Title     string         `json:"title"`
	Questions []QuizQuestion `json:"questions"`
	Timestamp time.Time      `json:"timestamp"`
}

// SlideDeck is a saved presentation artifact keyed by Title.
type SlideDeck struct {
	Title       string    `json:"title"`
	DownloadURL string    `json:"download_url"`
	Timestamp   time.Time `json:"timestamp"`
}

// VideoOverview is a saved video artifact keyed by Title.
type VideoOverview struct {
	Title      string    `json:"title"`
	VideoURL   string    `json:"video_url"`
	Duration   int       `json:"duration"` // seconds
	SlideCount int       `json:"slide_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser   Role = "user"
	RoleSystem Role = "system"
)

// ChatMessage is a single entry in the session chat transcript.
type ChatMessage struct {
	ID     string    `json:"id"`
	Role   Role      `json:"role"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}
