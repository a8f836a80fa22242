package tasks

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/desertthunder/nbx/internal/models"
	"github.com/desertthunder/nbx/internal/services"
	"github.com/desertthunder/nbx/internal/shared"
	"github.com/desertthunder/nbx/internal/studio"
	"golang.org/x/time/rate"
)

// AddSourceResult contains the outcome of one source upload.
type AddSourceResult struct {
	Info      *services.PreflightInfo // local file metadata
	Message   string                  // backend processing summary
	First     bool                    // this upload registered the session's first source
	Duplicate bool                    // the source name was already registered
}

// StudyEngine coordinates the backend service and the studio session state.
// Contains dependencies on the notebook service and the session studio.
type StudyEngine struct {
	service services.Service
	studio  *studio.Studio
	limiter *rate.Limiter

	mu       sync.Mutex
	inFlight map[string]bool

	transcript []models.ChatMessage
}

// NewStudyEngine creates a StudyEngine with the provided service and studio.
// rateLimit is outgoing generation requests per second (default: 1).
func NewStudyEngine(svc services.Service, st *studio.Studio, rateLimit float64) *StudyEngine {
	if rateLimit <= 0 {
		rateLimit = 1.0
	}

	return &StudyEngine{
		service:  svc,
		studio:   st,
		limiter:  rate.NewLimiter(rate.Limit(rateLimit), 1),
		inFlight: make(map[string]bool),
	}
}

// Studio returns the session state the engine mutates.
func (e *StudyEngine) Studio() *studio.Studio { return e.studio }

// begin marks op in flight, failing with ErrBusy when a request of the same
// kind is already running.
func (e *StudyEngine) begin(op string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight[op] {
		return fmt.Errorf("%w: %s request already in progress", shared.ErrBusy, op)
	}
	e.inFlight[op] = true
	return nil
}

func (e *StudyEngine) end(op string) {
	e.mu.Lock()
	delete(e.inFlight, op)
	e.mu.Unlock()
}

// requireSources gates generation and chat: without at least one uploaded
// source no network request is made.
func (e *StudyEngine) requireSources() error {
	if e.studio.Sources.Size() == 0 {
		return fmt.Errorf("%w: upload a document first", shared.ErrNoSources)
	}
	return nil
}

// title derives the artifact title for kind from the first uploaded source.
func (e *StudyEngine) title(kind models.ArtifactKind) string {
	source, ok := e.studio.Sources.First()
	if !ok {
		return kind.DefaultTitle()
	}
	return studio.DeriveTitle(source, kind)
}

func (e *StudyEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// AddSource preflights, uploads, and registers one local document. The same
// file may be uploaded again; the registry keeps one entry per source name and
// the result reports the duplicate.
func (e *StudyEngine) AddSource(ctx context.Context, progress chan<- ProgressUpdate, path string) (*AddSourceResult, error) {
	if e.service == nil {
		return nil, fmt.Errorf("%w: service not initialized", shared.ErrServiceUnavailable)
	}

	if err := e.begin("upload"); err != nil {
		return nil, err
	}
	defer e.end("upload")

	e.sendProgress(progress, preflightUpdate(path))
	info, err := services.PreflightSource(path)
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, uploadingUpdate(info.Name))
	uploaded, err := e.service.Upload(ctx, path)
	if err != nil {
		return nil, err
	}

	added := e.studio.Sources.Add(uploaded.Source)

	return &AddSourceResult{
		Info:      info,
		Message:   uploaded.Message,
		First:     added && e.studio.Sources.Size() == 1,
		Duplicate: !added,
	}, nil
}

// Chat sends one query over the uploaded sources and records both sides of
// the exchange in the session transcript. A single chat request may be in
// flight at a time.
func (e *StudyEngine) Chat(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", fmt.Errorf("%w: empty query", shared.ErrInvalidInput)
	}
	if err := e.requireSources(); err != nil {
		return "", err
	}
	if err := e.begin("chat"); err != nil {
		return "", err
	}
	defer e.end("chat")

	e.record(models.RoleUser, query)

	answer, err := e.service.Chat(ctx, query)
	if err != nil {
		e.record(models.RoleSystem, fmt.Sprintf("Error: %v", err))
		return "", err
	}

	e.record(models.RoleSystem, answer)
	return answer, nil
}

func (e *StudyEngine) record(role models.Role, text string) {
	e.mu.Lock()
	e.transcript = append(e.transcript, models.ChatMessage{
		ID:     shared.GenerateID(),
		Role:   role,
		Text:   text,
		SentAt: time.Now(),
	})
	e.mu.Unlock()
}

// Transcript returns a copy of the session chat history in order.
func (e *StudyEngine) Transcript() []models.ChatMessage {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.ChatMessage, len(e.transcript))
	copy(out, e.transcript)
	return out
}

// GenerateFlashcards requests a flashcard deck, saves it under the derived
// title, and opens it in the viewer.
func (e *StudyEngine) GenerateFlashcards(ctx context.Context, progress chan<- ProgressUpdate) (*studio.FlashcardSession, error) {
	if err := e.requireSources(); err != nil {
		return nil, err
	}
	if err := e.begin("flashcards"); err != nil {
		return nil, err
	}
	defer e.end("flashcards")

	e.sendProgress(progress, generatingUpdate("flashcards"))
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := e.service.GenerateStudyAid(ctx, services.SelectorFlashcard)
	if err != nil {
		return nil, err
	}

	title := e.title(models.KindFlashcards)
	e.studio.Store.SaveFlashcards(title, result.Flashcards)
	e.sendProgress(progress, savedUpdate(title))

	session, err := e.studio.Viewer.OpenFlashcards(result.Flashcards)
	if err != nil {
		return nil, err
	}
	e.sendProgress(progress, openedUpdate(title))

	return session, nil
}

// GenerateQuiz requests a quiz, fills in any missing options, saves the deck
// under the derived title, and opens an attempt in the viewer. The saved deck
// carries the filled options, so a later retake sees the same four choices.
func (e *StudyEngine) GenerateQuiz(ctx context.Context, progress chan<- ProgressUpdate) (*studio.QuizSession, error) {
	if err := e.requireSources(); err != nil {
		return nil, err
	}
	if err := e.begin("quiz"); err != nil {
		return nil, err
	}
	defer e.end("quiz")

	e.sendProgress(progress, generatingUpdate("quiz"))
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := e.service.GenerateStudyAid(ctx, services.SelectorQuiz)
	if err != nil {
		return nil, err
	}

	questions := studio.EnsureOptions(result.Questions)

	title := e.title(models.KindQuiz)
	e.studio.Store.SaveQuiz(title, questions)
	e.sendProgress(progress, savedUpdate(title))

	session, err := e.studio.Viewer.OpenQuiz(questions)
	if err != nil {
		return nil, err
	}
	e.sendProgress(progress, openedUpdate(title))

	return session, nil
}

// GenerateFlowchart requests flowchart markup. Flowcharts render once and are
// not saved to the artifact store.
func (e *StudyEngine) GenerateFlowchart(ctx context.Context, progress chan<- ProgressUpdate) (string, error) {
	if err := e.requireSources(); err != nil {
		return "", err
	}
	if err := e.begin("flowchart"); err != nil {
		return "", err
	}
	defer e.end("flowchart")

	e.sendProgress(progress, generatingUpdate("flowchart"))
	if err := e.limiter.Wait(ctx); err != nil {
		return "", err
	}

	result, err := e.service.GenerateStudyAid(ctx, services.SelectorFlowchart)
	if err != nil {
		return "", err
	}

	return result.Diagram, nil
}

// GenerateSlides requests a presentation and saves its download locator under
// the derived title.
func (e *StudyEngine) GenerateSlides(ctx context.Context, progress chan<- ProgressUpdate) (*services.SlideResult, error) {
	if err := e.requireSources(); err != nil {
		return nil, err
	}
	if err := e.begin("slides"); err != nil {
		return nil, err
	}
	defer e.end("slides")

	e.sendProgress(progress, generatingUpdate("slides"))
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := e.service.GenerateSlides(ctx)
	if err != nil {
		return nil, err
	}

	title := e.title(models.KindSlides)
	e.studio.Store.SaveSlides(title, result.DownloadURL)
	e.sendProgress(progress, savedUpdate(title))

	return result, nil
}

// GenerateVideo requests a video overview and saves its locator and metadata
// under the derived title.
func (e *StudyEngine) GenerateVideo(ctx context.Context, progress chan<- ProgressUpdate) (*services.VideoResult, error) {
	if err := e.requireSources(); err != nil {
		return nil, err
	}
	if err := e.begin("video"); err != nil {
		return nil, err
	}
	defer e.end("video")

	e.sendProgress(progress, generatingUpdate("video overview"))
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := e.service.GenerateVideo(ctx)
	if err != nil {
		return nil, err
	}

	title := e.title(models.KindVideo)
	e.studio.Store.SaveVideo(title, result.VideoURL, int(math.Round(result.Duration)), result.SlideCount)
	e.sendProgress(progress, savedUpdate(title))

	return result, nil
}

// GenerateAudio requests an audio overview. Audio plays once and is not saved
// to the artifact store.
func (e *StudyEngine) GenerateAudio(ctx context.Context, progress chan<- ProgressUpdate) (*services.AudioResult, error) {
	if err := e.requireSources(); err != nil {
		return nil, err
	}
	if err := e.begin("audio"); err != nil {
		return nil, err
	}
	defer e.end("audio")

	e.sendProgress(progress, generatingUpdate("audio overview"))
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return e.service.GenerateAudio(ctx)
}

// OpenSavedFlashcards opens the stored deck at index in the viewer, replacing
// any hosted session.
func (e *StudyEngine) OpenSavedFlashcards(index int) (*studio.FlashcardSession, error) {
	deck, err := e.studio.Store.FlashcardDeck(index)
	if err != nil {
		return nil, err
	}
	return e.studio.Viewer.OpenFlashcards(deck.Cards)
}

// OpenSavedQuiz opens a fresh attempt of the stored quiz at index in the
// viewer, replacing any hosted session.
func (e *StudyEngine) OpenSavedQuiz(index int) (*studio.QuizSession, error) {
	deck, err := e.studio.Store.QuizDeck(index)
	if err != nil {
		return nil, err
	}
	return e.studio.Viewer.OpenQuiz(deck.Questions)
}

// DeleteSaved removes the stored artifact at index within kind's collection.
func (e *StudyEngine) DeleteSaved(kind models.ArtifactKind, index int) error {
	return e.studio.Store.Delete(kind, index)
}
