package studio

import (
	"fmt"
	"time"

	"github.com/desertthunder/nbx/internal/models"
	"github.com/desertthunder/nbx/internal/shared"
)

// ArtifactStore holds the generated artifacts saved during a session, one
// ordered collection per [models.ArtifactKind], each entry keyed by title.
//
// Saving under an existing title replaces that entry's payload and bumps its
// timestamp (merge-by-title, last write wins). The store lives for the
// session only; nothing is persisted across process restarts.
type ArtifactStore struct {
	now func() time.Time

	quizzes    []models.QuizDeck
	flashcards []models.FlashcardDeck
	slides     []models.SlideDeck
	videos     []models.VideoOverview
}

// SavedItem is a display-list projection of one stored artifact.
type SavedItem struct {
	Kind      models.ArtifactKind
	Index     int // index within the kind's collection
	Title     string
	Timestamp time.Time
	Detail    string // kind-specific metadata line, e.g. video duration
}

// NewArtifactStore creates an empty store using the wall clock for timestamps.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{now: time.Now}
}

// SaveFlashcards upserts a flashcard deck by title.
func (s *ArtifactStore) SaveFlashcards(title string, cards []models.FlashCard) {
	for i := range s.flashcards {
		if s.flashcards[i].Title == title {
			s.flashcards[i].Cards = cards
			s.flashcards[i].Timestamp = s.now()
			return
		}
	}
	s.flashcards = append(s.flashcards, models.FlashcardDeck{Title: title, Cards: cards, Timestamp: s.now()})
}

// SaveQuiz upserts a quiz deck by title.
func (s *ArtifactStore) SaveQuiz(title string, questions []models.QuizQuestion) {
	for i := range s.quizzes {
		if s.quizzes[i].Title == title {
			s.quizzes[i].Questions = questions
			s.quizzes[i].Timestamp = s.now()
			return
		}
	}
	s.quizzes = append(s.quizzes, models.QuizDeck{Title: title, Questions: questions, Timestamp: s.now()})
}

// SaveSlides upserts a slide deck by title.
func (s *ArtifactStore) SaveSlides(title, downloadURL string) {
	for i := range s.slides {
		if s.slides[i].Title == title {
			s.slides[i].DownloadURL = downloadURL
			s.slides[i].Timestamp = s.now()
			return
		}
	}
	s.slides = append(s.slides, models.SlideDeck{Title: title, DownloadURL: downloadURL, Timestamp: s.now()})
}

// SaveVideo upserts a video overview by title.
func (s *ArtifactStore) SaveVideo(title, videoURL string, duration, slideCount int) {
	for i := range s.videos {
		if s.videos[i].Title == title {
			s.videos[i].VideoURL = videoURL
			s.videos[i].Duration = duration
			s.videos[i].SlideCount = slideCount
			s.videos[i].Timestamp = s.now()
			return
		}
	}
	s.videos = append(s.videos, models.VideoOverview{
		Title:      title,
		VideoURL:   videoURL,
		Duration:   duration,
		SlideCount: slideCount,
		Timestamp:  s.now(),
	})
}

// Flashcards returns the stored flashcard decks in insertion order.
func (s *ArtifactStore) Flashcards() []models.FlashcardDeck {
	out := make([]models.FlashcardDeck, len(s.flashcards))
	copy(out, s.flashcards)
	return out
}

// Quizzes returns the stored quiz decks in insertion order.
func (s *ArtifactStore) Quizzes() []models.QuizDeck {
	out := make([]models.QuizDeck, len(s.quizzes))
	copy(out, s.quizzes)
	return out
}

// Slides returns the stored slide decks in insertion order.
func (s *ArtifactStore) Slides() []models.SlideDeck {
	out := make([]models.SlideDeck, len(s.slides))
	copy(out, s.slides)
	return out
}

// Videos returns the stored video overviews in insertion order.
func (s *ArtifactStore) Videos() []models.VideoOverview {
	out := make([]models.VideoOverview, len(s.videos))
	copy(out, s.videos)
	return out
}

// FlashcardDeck returns the flashcard deck at index.
func (s *ArtifactStore) FlashcardDeck(index int) (models.FlashcardDeck, error) {
	if index < 0 || index >= len(s.flashcards) {
		return models.FlashcardDeck{}, fmt.Errorf("%w: flashcard deck %d", shared.ErrArtifactNotFound, index)
	}
	return s.flashcards[index], nil
}

// QuizDeck returns the quiz deck at index.
func (s *ArtifactStore) QuizDeck(index int) (models.QuizDeck, error) {
	if index < 0 || index >= len(s.quizzes) {
		return models.QuizDeck{}, fmt.Errorf("%w: quiz deck %d", shared.ErrArtifactNotFound, index)
	}
	return s.quizzes[index], nil
}

// SlideDeck returns the slide deck at index.
func (s *ArtifactStore) SlideDeck(index int) (models.SlideDeck, error) {
	if index < 0 || index >= len(s.slides) {
		return models.SlideDeck{}, fmt.Errorf("%w: slide deck %d", shared.ErrArtifactNotFound, index)
	}
	return s.slides[index], nil
}

// Video returns the video overview at index.
func (s *ArtifactStore) Video(index int) (models.VideoOverview, error) {
	if index < 0 || index >= len(s.videos) {
		return models.VideoOverview{}, fmt.Errorf("%w: video %d", shared.ErrArtifactNotFound, index)
	}
	return s.videos[index], nil
}

// Delete removes the artifact at index within kind's collection. Confirmation
// is the caller's responsibility; the store does not prompt.
func (s *ArtifactStore) Delete(kind models.ArtifactKind, index int) error {
	switch kind {
	case models.KindFlashcards:
		if index < 0 || index >= len(s.flashcards) {
			return fmt.Errorf("%w: flashcard deck %d", shared.ErrArtifactNotFound, index)
		}
		s.flashcards = append(s.flashcards[:index], s.flashcards[index+1:]...)
	case models.KindQuiz:
		if index < 0 || index >= len(s.quizzes) {
			return fmt.Errorf("%w: quiz deck %d", shared.ErrArtifactNotFound, index)
		}
		s.quizzes = append(s.quizzes[:index], s.quizzes[index+1:]...)
	case models.KindSlides:
		if index < 0 || index >= len(s.slides) {
			return fmt.Errorf("%w: slide deck %d", shared.ErrArtifactNotFound, index)
		}
		s.slides = append(s.slides[:index], s.slides[index+1:]...)
	case models.KindVideo:
		if index < 0 || index >= len(s.videos) {
			return fmt.Errorf("%w: video %d", shared.ErrArtifactNotFound, index)
		}
		s.videos = append(s.videos[:index], s.videos[index+1:]...)
	default:
		return fmt.Errorf("%w: unknown artifact kind", shared.ErrInvalidArgument)
	}
	return nil
}

// IsEmpty reports whether all four collections are empty, in which case the
// saved-items area renders a placeholder instead of a list.
func (s *ArtifactStore) IsEmpty() bool {
	return len(s.quizzes) == 0 && len(s.flashcards) == 0 && len(s.slides) == 0 && len(s.videos) == 0
}

// Items projects the store into the saved-items display list, ordered by
// category (quizzes, flashcards, slides, videos) then insertion.
func (s *ArtifactStore) Items() []SavedItem {
	items := make([]SavedItem, 0, len(s.quizzes)+len(s.flashcards)+len(s.slides)+len(s.videos))

	for i, q := range s.quizzes {
		items = append(items, SavedItem{
			Kind:      models.KindQuiz,
			Index:     i,
			Title:     q.Title,
			Timestamp: q.Timestamp,
			Detail:    fmt.Sprintf("%d questions", len(q.Questions)),
		})
	}
	for i, f := range s.flashcards {
		items = append(items, SavedItem{
			Kind:      models.KindFlashcards,
			Index:     i,
			Title:     f.Title,
			Timestamp: f.Timestamp,
			Detail:    fmt.Sprintf("%d cards", len(f.Cards)),
		})
	}
	for i, d := range s.slides {
		items = append(items, SavedItem{
			Kind:      models.KindSlides,
			Index:     i,
			Title:     d.Title,
			Timestamp: d.Timestamp,
			Detail:    "presentation",
		})
	}
	for i, v := range s.videos {
		items = append(items, SavedItem{
			Kind:      models.KindVideo,
			Index:     i,
			Title:     v.Title,
			Timestamp: v.Timestamp,
			Detail:    shared.FormatDuration(v.Duration),
		})
	}

	return items
}
