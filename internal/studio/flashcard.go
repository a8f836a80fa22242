package studio

import (
	"fmt"
	"math/rand"

	"github.com/desertthunder/nbx/internal/models"
	"github.com/desertthunder/nbx/internal/shared"
)

// FlashcardSession is a navigable, flippable walkthrough of one flashcard
// deck. It operates on a copy of the deck taken at open time, so store merges
// that happen while the session is open never alter it.
type FlashcardSession struct {
	cards   []models.FlashCard
	cursor  int
	flipped bool
}

// NewFlashcardSession opens a session over a non-empty deck with the cursor
// on the first card, face up.
func NewFlashcardSession(cards []models.FlashCard) (*FlashcardSession, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: no flashcards to review", shared.ErrEmptyDeck)
	}

	snapshot := make([]models.FlashCard, len(cards))
	copy(snapshot, cards)

	return &FlashcardSession{cards: snapshot}, nil
}

// Card returns the card under the cursor.
func (s *FlashcardSession) Card() models.FlashCard {
	return s.cards[s.cursor]
}

// Cards returns a copy of the session's current card order.
func (s *FlashcardSession) Cards() []models.FlashCard {
	out := make([]models.FlashCard, len(s.cards))
	copy(out, s.cards)
	return out
}

// Cursor returns the zero-based position of the current card.
func (s *FlashcardSession) Cursor() int { return s.cursor }

// Len returns the number of cards in the session.
func (s *FlashcardSession) Len() int { return len(s.cards) }

// Flipped reports whether the current card shows its answer side.
func (s *FlashcardSession) Flipped() bool { return s.flipped }

// Flip toggles between the question and answer side of the current card.
func (s *FlashcardSession) Flip() {
	s.flipped = !s.flipped
}

// Next moves the cursor forward and reports whether it moved. At the last
// card this is a no-op. A newly navigated-to card is always face up.
func (s *FlashcardSession) Next() bool {
	if s.cursor >= len(s.cards)-1 {
		return false
	}
	s.cursor++
	s.flipped = false
	return true
}

// Previous moves the cursor backward and reports whether it moved. At the
// first card this is a no-op.
func (s *FlashcardSession) Previous() bool {
	if s.cursor <= 0 {
		return false
	}
	s.cursor--
	s.flipped = false
	return true
}

// Shuffle applies a Fisher-Yates permutation to the session-local card order,
// then resets the cursor to the first card, face up. The saved artifact is
// unaffected; no re-save occurs.
func (s *FlashcardSession) Shuffle() {
	rand.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.cursor = 0
	s.flipped = false
}
