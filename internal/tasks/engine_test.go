package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/nbx/internal/models"
	"github.com/desertthunder/nbx/internal/services"
	"github.com/desertthunder/nbx/internal/shared"
	"github.com/desertthunder/nbx/internal/studio"
	mocks "github.com/desertthunder/nbx/internal/testing"
)

// newEngine builds an engine over a fresh studio with source already uploaded.
func newEngine(mock *mocks.MockService) *StudyEngine {
	st := studio.New()
	st.Sources.Add("Intro_to_ML.pdf")
	return NewStudyEngine(mock, st, 100)
}

func TestStudyEngine(t *testing.T) {
	ctx := context.Background()

	cards := []models.FlashCard{
		{Question: "Q1", Answer: "A1"},
		{Question: "Q2", Answer: "A2"},
	}
	questions := []models.QuizQuestion{
		{Question: "Q1", Answer: "A1", Options: []string{"A1", "B", "C", "D"}},
		{Question: "Q2", Answer: "A2", Options: []string{"A2", "B", "C", "D"}},
	}

	t.Run("AddSource", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "Lecture_Notes.txt")
		if err := os.WriteFile(path, []byte("chapter one"), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		t.Run("Success Registers Source", func(t *testing.T) {
			mock := &mocks.MockService{
				UploadResult: &services.UploadResult{Source: "Lecture_Notes.txt", Message: "Successfully processed 3 chunks"},
			}
			engine := NewStudyEngine(mock, studio.New(), 100)

			result, err := engine.AddSource(ctx, nil, path)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !result.First {
				t.Error("expected first upload to be flagged")
			}
			if result.Duplicate {
				t.Error("expected no duplicate on first upload")
			}
			if engine.Studio().Sources.Size() != 1 {
				t.Errorf("expected 1 registered source, got %d", engine.Studio().Sources.Size())
			}
		})

		t.Run("Duplicate Upload Keeps One Entry", func(t *testing.T) {
			mock := &mocks.MockService{
				UploadResult: &services.UploadResult{Source: "Lecture_Notes.txt", Message: "ok"},
			}
			engine := NewStudyEngine(mock, studio.New(), 100)

			if _, err := engine.AddSource(ctx, nil, path); err != nil {
				t.Fatalf("first upload failed: %v", err)
			}
			result, err := engine.AddSource(ctx, nil, path)
			if err != nil {
				t.Fatalf("second upload failed: %v", err)
			}
			if !result.Duplicate {
				t.Error("expected duplicate flag on re-upload")
			}
			if result.First {
				t.Error("re-upload must not be flagged as first")
			}
			if engine.Studio().Sources.Size() != 1 {
				t.Errorf("expected 1 registered source, got %d", engine.Studio().Sources.Size())
			}
			if mock.Calls["Upload"] != 2 {
				t.Errorf("expected 2 upload calls, got %d", mock.Calls["Upload"])
			}
		})

		t.Run("Failed Preflight Skips Upload", func(t *testing.T) {
			bad := filepath.Join(tmpDir, "notes.docx")
			if err := os.WriteFile(bad, []byte("content"), 0644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			mock := &mocks.MockService{}
			engine := NewStudyEngine(mock, studio.New(), 100)

			if _, err := engine.AddSource(ctx, nil, bad); !errors.Is(err, shared.ErrUnsupportedSource) {
				t.Errorf("expected ErrUnsupportedSource, got %v", err)
			}
			if mock.Calls["Upload"] != 0 {
				t.Errorf("expected no upload call, got %d", mock.Calls["Upload"])
			}
		})

		t.Run("Failed Upload Leaves Registry Unchanged", func(t *testing.T) {
			mock := &mocks.MockService{UploadErr: shared.ErrAPIRequest}
			engine := NewStudyEngine(mock, studio.New(), 100)

			if _, err := engine.AddSource(ctx, nil, path); !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
			if engine.Studio().Sources.Size() != 0 {
				t.Error("expected registry to stay empty after failed upload")
			}
		})
	})

	t.Run("Chat", func(t *testing.T) {
		t.Run("Requires Sources", func(t *testing.T) {
			mock := &mocks.MockService{ChatAnswer: "never sent"}
			engine := NewStudyEngine(mock, studio.New(), 100)

			if _, err := engine.Chat(ctx, "what is mitosis?"); !errors.Is(err, shared.ErrNoSources) {
				t.Errorf("expected ErrNoSources, got %v", err)
			}
			if mock.Calls["Chat"] != 0 {
				t.Errorf("expected no chat call, got %d", mock.Calls["Chat"])
			}
		})

		t.Run("Rejects Empty Query", func(t *testing.T) {
			engine := newEngine(&mocks.MockService{})
			if _, err := engine.Chat(ctx, ""); !errors.Is(err, shared.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("Records Both Sides In Transcript", func(t *testing.T) {
			engine := newEngine(&mocks.MockService{ChatAnswer: "Cell division."})

			answer, err := engine.Chat(ctx, "what is mitosis?")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if answer != "Cell division." {
				t.Errorf("expected answer, got %q", answer)
			}

			transcript := engine.Transcript()
			if len(transcript) != 2 {
				t.Fatalf("expected 2 transcript entries, got %d", len(transcript))
			}
			if transcript[0].Role != models.RoleUser || transcript[0].Text != "what is mitosis?" {
				t.Errorf("unexpected user entry: %+v", transcript[0])
			}
			if transcript[1].Role != models.RoleSystem || transcript[1].Text != "Cell division." {
				t.Errorf("unexpected system entry: %+v", transcript[1])
			}
		})

		t.Run("Records Error Reply", func(t *testing.T) {
			engine := newEngine(&mocks.MockService{ChatErr: shared.ErrAPIRequest})

			if _, err := engine.Chat(ctx, "q"); !errors.Is(err, shared.ErrAPIRequest) {
				t.Fatalf("expected ErrAPIRequest, got %v", err)
			}

			transcript := engine.Transcript()
			if len(transcript) != 2 {
				t.Fatalf("expected 2 transcript entries, got %d", len(transcript))
			}
			if transcript[1].Role != models.RoleSystem {
				t.Errorf("expected system error entry, got %+v", transcript[1])
			}
		})
	})

	t.Run("GenerateFlashcards", func(t *testing.T) {
		t.Run("Requires Sources", func(t *testing.T) {
			mock := &mocks.MockService{Flashcards: cards}
			engine := NewStudyEngine(mock, studio.New(), 100)

			if _, err := engine.GenerateFlashcards(ctx, nil); !errors.Is(err, shared.ErrNoSources) {
				t.Errorf("expected ErrNoSources, got %v", err)
			}
			if mock.Calls["GenerateStudyAid"] != 0 {
				t.Errorf("expected no generation call, got %d", mock.Calls["GenerateStudyAid"])
			}
		})

		t.Run("Saves And Opens", func(t *testing.T) {
			engine := newEngine(&mocks.MockService{Flashcards: cards})

			session, err := engine.GenerateFlashcards(ctx, nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session.Len() != 2 {
				t.Errorf("expected session over 2 cards, got %d", session.Len())
			}

			decks := engine.Studio().Store.Flashcards()
			if len(decks) != 1 {
				t.Fatalf("expected 1 saved deck, got %d", len(decks))
			}
			if decks[0].Title != "Intro to ML" {
				t.Errorf("expected derived title, got %q", decks[0].Title)
			}
			if engine.Studio().Viewer.Host() != studio.HostFlashcards {
				t.Error("expected viewer to host the flashcard session")
			}
		})

		t.Run("Regenerating Merges By Title", func(t *testing.T) {
			mock := &mocks.MockService{Flashcards: cards}
			engine := newEngine(mock)

			if _, err := engine.GenerateFlashcards(ctx, nil); err != nil {
				t.Fatalf("first generation failed: %v", err)
			}
			mock.Flashcards = cards[:1]
			if _, err := engine.GenerateFlashcards(ctx, nil); err != nil {
				t.Fatalf("second generation failed: %v", err)
			}

			decks := engine.Studio().Store.Flashcards()
			if len(decks) != 1 {
				t.Fatalf("expected merged deck, got %d decks", len(decks))
			}
			if len(decks[0].Cards) != 1 {
				t.Errorf("expected replaced payload with 1 card, got %d", len(decks[0].Cards))
			}
		})

		t.Run("Service Error Leaves State Unchanged", func(t *testing.T) {
			engine := newEngine(&mocks.MockService{StudyErr: shared.ErrAPIRequest})

			if _, err := engine.GenerateFlashcards(ctx, nil); !errors.Is(err, shared.ErrAPIRequest) {
				t.Fatalf("expected ErrAPIRequest, got %v", err)
			}
			if !engine.Studio().Store.IsEmpty() {
				t.Error("expected store to stay empty")
			}
			if engine.Studio().Viewer.Active() {
				t.Error("expected viewer to stay idle")
			}
		})

		t.Run("Busy Engine Refuses Second Request", func(t *testing.T) {
			engine := newEngine(&mocks.MockService{Flashcards: cards})
			if err := engine.begin("flashcards"); err != nil {
				t.Fatalf("failed to mark in flight: %v", err)
			}
			defer engine.end("flashcards")

			if _, err := engine.GenerateFlashcards(ctx, nil); !errors.Is(err, shared.ErrBusy) {
				t.Errorf("expected ErrBusy, got %v", err)
			}
		})
	})

	t.Run("GenerateQuiz", func(t *testing.T) {
		t.Run("Saves With Quiz Title And Opens", func(t *testing.T) {
			engine := newEngine(&mocks.MockService{Questions: questions})

			session, err := engine.GenerateQuiz(ctx, nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session.Len() != 2 {
				t.Errorf("expected session over 2 questions, got %d", session.Len())
			}

			decks := engine.Studio().Store.Quizzes()
			if len(decks) != 1 {
				t.Fatalf("expected 1 saved quiz, got %d", len(decks))
			}
			if decks[0].Title != "Intro to ML Quiz" {
				t.Errorf("expected quiz title suffix, got %q", decks[0].Title)
			}
			if engine.Studio().Viewer.Host() != studio.HostQuiz {
				t.Error("expected viewer to host the quiz session")
			}
		})

		t.Run("Synthesizes Options Before Saving", func(t *testing.T) {
			bare := []models.QuizQuestion{{Question: "Q", Answer: "A"}}
			engine := newEngine(&mocks.MockService{Questions: bare})

			if _, err := engine.GenerateQuiz(ctx, nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			decks := engine.Studio().Store.Quizzes()
			if len(decks[0].Questions[0].Options) != 4 {
				t.Errorf("expected 4 saved options, got %d", len(decks[0].Questions[0].Options))
			}
		})

		t.Run("Replaces Hosted Flashcard Session", func(t *testing.T) {
			engine := newEngine(&mocks.MockService{Flashcards: cards, Questions: questions})

			if _, err := engine.GenerateFlashcards(ctx, nil); err != nil {
				t.Fatalf("flashcard generation failed: %v", err)
			}
			if _, err := engine.GenerateQuiz(ctx, nil); err != nil {
				t.Fatalf("quiz generation failed: %v", err)
			}

			viewer := engine.Studio().Viewer
			if viewer.Host() != studio.HostQuiz {
				t.Error("expected quiz to replace flashcards")
			}
			if viewer.Flashcards() != nil {
				t.Error("expected flashcard session to be discarded")
			}
		})
	})

	t.Run("GenerateFlowchart", func(t *testing.T) {
		engine := newEngine(&mocks.MockService{Diagram: "graph TD; A-->B"})

		markup, err := engine.GenerateFlowchart(ctx, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if markup != "graph TD; A-->B" {
			t.Errorf("expected diagram markup, got %q", markup)
		}
		if !engine.Studio().Store.IsEmpty() {
			t.Error("flowcharts must not be saved to the store")
		}
	})

	t.Run("GenerateSlides", func(t *testing.T) {
		engine := newEngine(&mocks.MockService{
			Slides: &services.SlideResult{DownloadURL: "/static/presentation_x.pptx"},
		})

		if _, err := engine.GenerateSlides(ctx, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		decks := engine.Studio().Store.Slides()
		if len(decks) != 1 {
			t.Fatalf("expected 1 saved slide deck, got %d", len(decks))
		}
		if decks[0].Title != "Intro to ML" {
			t.Errorf("expected derived title, got %q", decks[0].Title)
		}
		if decks[0].DownloadURL != "/static/presentation_x.pptx" {
			t.Errorf("expected download URL, got %q", decks[0].DownloadURL)
		}
	})

	t.Run("GenerateVideo", func(t *testing.T) {
		engine := newEngine(&mocks.MockService{
			Video: &services.VideoResult{VideoURL: "/static/v.mp4", Duration: 154.6, SlideCount: 6},
		})

		if _, err := engine.GenerateVideo(ctx, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		videos := engine.Studio().Store.Videos()
		if len(videos) != 1 {
			t.Fatalf("expected 1 saved video, got %d", len(videos))
		}
		if videos[0].Duration != 155 {
			t.Errorf("expected rounded duration 155, got %d", videos[0].Duration)
		}
		if videos[0].SlideCount != 6 {
			t.Errorf("expected slide count 6, got %d", videos[0].SlideCount)
		}
	})

	t.Run("GenerateAudio", func(t *testing.T) {
		engine := newEngine(&mocks.MockService{
			Audio: &services.AudioResult{AudioURL: "/static/a.mp3"},
		})

		result, err := engine.GenerateAudio(ctx, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result.AudioURL != "/static/a.mp3" {
			t.Errorf("expected audio URL, got %q", result.AudioURL)
		}
		if !engine.Studio().Store.IsEmpty() {
			t.Error("audio overviews must not be saved to the store")
		}
	})

	t.Run("OpenSaved", func(t *testing.T) {
		engine := newEngine(&mocks.MockService{Flashcards: cards, Questions: questions})
		if _, err := engine.GenerateFlashcards(ctx, nil); err != nil {
			t.Fatalf("flashcard generation failed: %v", err)
		}
		if _, err := engine.GenerateQuiz(ctx, nil); err != nil {
			t.Fatalf("quiz generation failed: %v", err)
		}

		t.Run("Flashcards", func(t *testing.T) {
			session, err := engine.OpenSavedFlashcards(0)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session.Len() != 2 {
				t.Errorf("expected 2 cards, got %d", session.Len())
			}
			if engine.Studio().Viewer.Host() != studio.HostFlashcards {
				t.Error("expected viewer to host flashcards")
			}
		})

		t.Run("Quiz Opens Fresh Attempt", func(t *testing.T) {
			session, err := engine.OpenSavedQuiz(0)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if session.Phase() != studio.PhaseAnswering {
				t.Error("expected fresh attempt in answering phase")
			}
			if _, ok := session.AnswerAt(0); ok {
				t.Error("expected no recorded answers on reopen")
			}
		})

		t.Run("Bad Index", func(t *testing.T) {
			if _, err := engine.OpenSavedFlashcards(5); !errors.Is(err, shared.ErrArtifactNotFound) {
				t.Errorf("expected ErrArtifactNotFound, got %v", err)
			}
			if _, err := engine.OpenSavedQuiz(-1); !errors.Is(err, shared.ErrArtifactNotFound) {
				t.Errorf("expected ErrArtifactNotFound, got %v", err)
			}
		})
	})

	t.Run("DeleteSaved", func(t *testing.T) {
		engine := newEngine(&mocks.MockService{Flashcards: cards})
		if _, err := engine.GenerateFlashcards(ctx, nil); err != nil {
			t.Fatalf("generation failed: %v", err)
		}

		if err := engine.DeleteSaved(models.KindFlashcards, 0); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !engine.Studio().Store.IsEmpty() {
			t.Error("expected empty store after delete")
		}

		if err := engine.DeleteSaved(models.KindFlashcards, 0); !errors.Is(err, shared.ErrArtifactNotFound) {
			t.Errorf("expected ErrArtifactNotFound, got %v", err)
		}
	})
}
