package studio

import (
	"github.com/desertthunder/nbx/internal/models"
)

// ViewerHost identifies what the single-slot viewer currently hosts.
type ViewerHost int

const (
	HostNone ViewerHost = iota
	HostFlashcards
	HostQuiz
)

// Viewer is the single-slot exclusive surface hosting at most one session.
//
// Opening a session unconditionally replaces whatever is hosted; the previous
// session is discarded silently with no save prompt, since saving already
// happened at open time via the artifact store. Close is the only path back
// to the idle default panel.
type Viewer struct {
	host       ViewerHost
	flashcards *FlashcardSession
	quiz       *QuizSession
}

// NewViewer creates an idle viewer.
func NewViewer() *Viewer {
	return &Viewer{host: HostNone}
}

// OpenFlashcards opens a flashcard session over deck, replacing any hosted
// session. An empty deck refuses to open and leaves the viewer unchanged.
func (v *Viewer) OpenFlashcards(cards []models.FlashCard) (*FlashcardSession, error) {
	session, err := NewFlashcardSession(cards)
	if err != nil {
		return nil, err
	}

	v.host = HostFlashcards
	v.flashcards = session
	v.quiz = nil
	return session, nil
}

// OpenQuiz opens a quiz attempt over questions, replacing any hosted session.
// An empty deck refuses to open and leaves the viewer unchanged.
func (v *Viewer) OpenQuiz(questions []models.QuizQuestion) (*QuizSession, error) {
	session, err := NewQuizSession(questions)
	if err != nil {
		return nil, err
	}

	v.host = HostQuiz
	v.quiz = session
	v.flashcards = nil
	return session, nil
}

// Close discards the hosted session and returns the viewer to idle.
func (v *Viewer) Close() {
	v.host = HostNone
	v.flashcards = nil
	v.quiz = nil
}

// Host returns what the viewer currently hosts.
func (v *Viewer) Host() ViewerHost { return v.host }

// Active reports whether a session is hosted.
func (v *Viewer) Active() bool { return v.host != HostNone }

// Flashcards returns the hosted flashcard session, or nil.
func (v *Viewer) Flashcards() *FlashcardSession { return v.flashcards }

// Quiz returns the hosted quiz session, or nil.
func (v *Viewer) Quiz() *QuizSession { return v.quiz }
