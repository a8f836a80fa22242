package studio

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/desertthunder/nbx/internal/models"
)

func makeQuestions(n int) []models.QuizQuestion {
	qs := make([]models.QuizQuestion, n)
	for i := range qs {
		correct := fmt.Sprintf("A%d", i)
		qs[i] = models.QuizQuestion{
			Question: fmt.Sprintf("Q%d", i),
			Answer:   correct,
			Options:  []string{correct, "B", "C", "D"},
		}
	}
	return qs
}

func TestQuizSession(t *testing.T) {
	t.Run("Open", func(t *testing.T) {
		s, err := NewQuizSession(makeQuestions(3))
		if err != nil {
			t.Fatalf("expected session to open, got %v", err)
		}

		if s.Cursor() != 0 {
			t.Errorf("expected cursor 0, got %d", s.Cursor())
		}
		if s.Phase() != PhaseAnswering {
			t.Errorf("expected answering phase, got %v", s.Phase())
		}
		for i := 0; i < s.Len(); i++ {
			if _, ok := s.AnswerAt(i); ok {
				t.Errorf("expected slot %d unanswered on open", i)
			}
		}

		t.Run("Empty Deck Refused", func(t *testing.T) {
			if _, err := NewQuizSession(nil); err == nil {
				t.Error("expected error opening empty quiz")
			}
		})
	})

	t.Run("Correct Answer Frozen At Open", func(t *testing.T) {
		qs := makeQuestions(1)
		s, _ := NewQuizSession(qs)

		qs[0].Answer = "changed after open"

		if s.CorrectAnswer() != "A0" {
			t.Errorf("expected frozen correct answer A0, got %s", s.CorrectAnswer())
		}
	})

	t.Run("Select", func(t *testing.T) {
		s, _ := NewQuizSession(makeQuestions(2))

		if !s.Select("B") {
			t.Fatal("expected first select to take effect")
		}

		t.Run("Answered Slot Is Immutable", func(t *testing.T) {
			before := *s

			if s.Select("C") {
				t.Error("expected select on answered slot to be a no-op")
			}
			if !reflect.DeepEqual(before, *s) {
				t.Error("expected state to be identical after refused select")
			}
		})

		got, ok := s.Answer()
		if !ok || got != "B" {
			t.Errorf("expected recorded answer B, got %q (answered=%v)", got, ok)
		}
	})

	t.Run("Advance", func(t *testing.T) {
		s, _ := NewQuizSession(makeQuestions(3))

		t.Run("Unanswered Non-Final Is No-Op", func(t *testing.T) {
			if s.Advance() {
				t.Error("expected advance to refuse an unanswered non-final question")
			}
		})

		s.Select("A0")
		if !s.Advance() || s.Cursor() != 1 {
			t.Fatalf("expected cursor 1 after advance, got %d", s.Cursor())
		}

		t.Run("Retreat Is Read-Only Review", func(t *testing.T) {
			if !s.Retreat() || s.Cursor() != 0 {
				t.Fatalf("expected cursor back at 0, got %d", s.Cursor())
			}
			if s.Retreat() {
				t.Error("expected retreat at first question to be a no-op")
			}
			if got, _ := s.Answer(); got != "A0" {
				t.Error("expected earlier answer preserved")
			}
			s.Advance()
		})

		t.Run("Finish On Last Completes Even Unanswered", func(t *testing.T) {
			s.Select("wrong")
			s.Advance()
			// last question left unanswered: the finish action still completes
			if !s.Advance() {
				t.Fatal("expected finish on last question to complete the attempt")
			}
			if s.Phase() != PhaseComplete {
				t.Errorf("expected complete phase, got %v", s.Phase())
			}

			res, ok := s.Result()
			if !ok {
				t.Fatal("expected a result after completion")
			}
			if res.Correct != 1 || res.Wrong != 1 || res.Skipped != 1 {
				t.Errorf("expected 1/1/1 correct/wrong/skipped, got %d/%d/%d", res.Correct, res.Wrong, res.Skipped)
			}
		})
	})

	t.Run("Grading", func(t *testing.T) {
		// answers [correct, wrong, skipped, correct, wrong] => 2/2/1, accuracy 40
		s, _ := NewQuizSession(makeQuestions(5))

		picks := []string{"A0", "nope", "", "A3", "nope"}
		for i, pick := range picks {
			if pick != "" {
				s.Select(pick)
			}
			if i < len(picks)-1 {
				if pick == "" {
					s.cursor++ // skipped slot: UI only blocks non-final advance; walk past directly
				} else {
					s.Advance()
				}
			}
		}
		s.Advance()

		res, ok := s.Result()
		if !ok {
			t.Fatal("expected a result")
		}
		if res.Correct != 2 {
			t.Errorf("expected correct=2, got %d", res.Correct)
		}
		if res.Wrong != 2 {
			t.Errorf("expected wrong=2, got %d", res.Wrong)
		}
		if res.Skipped != 1 {
			t.Errorf("expected skipped=1, got %d", res.Skipped)
		}
		if res.Accuracy != 40 {
			t.Errorf("expected accuracy=40, got %d", res.Accuracy)
		}
		if res.Total != 5 {
			t.Errorf("expected total=5, got %d", res.Total)
		}
	})

	t.Run("Accuracy Rounds Half Up", func(t *testing.T) {
		// 1 of 8 correct = 12.5% => 13
		s, _ := NewQuizSession(makeQuestions(8))
		s.Select("A0")
		for s.Cursor() < s.Len()-1 {
			if !s.Answered() {
				s.Select("nope")
			}
			s.Advance()
		}
		s.Select("nope")
		s.Advance()

		res, _ := s.Result()
		if res.Accuracy != 13 {
			t.Errorf("expected accuracy 13, got %d", res.Accuracy)
		}
	})

	t.Run("Review", func(t *testing.T) {
		s := completedSession(t, 3)

		if !s.Review() {
			t.Fatal("expected review to be available when complete")
		}
		if s.Phase() != PhaseComplete {
			t.Error("expected review to stay in complete phase")
		}
		if s.Cursor() != 0 {
			t.Errorf("expected cursor reset to 0, got %d", s.Cursor())
		}

		t.Run("Slots Stay Locked", func(t *testing.T) {
			if s.Select("anything") {
				t.Error("expected selections to be refused during review")
			}
		})

		t.Run("Unavailable While Answering", func(t *testing.T) {
			s, _ := NewQuizSession(makeQuestions(2))
			if s.Review() {
				t.Error("expected review to be refused in answering phase")
			}
		})
	})

	t.Run("Retake", func(t *testing.T) {
		s := completedSession(t, 4)
		before := s.Questions()

		if !s.Retake() {
			t.Fatal("expected retake to be available when complete")
		}
		if s.Phase() != PhaseAnswering {
			t.Errorf("expected answering phase, got %v", s.Phase())
		}
		if s.Cursor() != 0 {
			t.Errorf("expected cursor 0, got %d", s.Cursor())
		}
		for i := 0; i < s.Len(); i++ {
			if _, ok := s.AnswerAt(i); ok {
				t.Errorf("expected slot %d cleared after retake", i)
			}
		}

		if !reflect.DeepEqual(before, s.Questions()) {
			t.Error("expected question order preserved across retake")
		}

		t.Run("Unavailable While Answering", func(t *testing.T) {
			if s.Retake() {
				t.Error("expected retake to be refused outside complete phase")
			}
		})
	})

	t.Run("Fallback Options", func(t *testing.T) {
		qs := []models.QuizQuestion{{Question: "Q", Answer: "the answer"}}
		s, _ := NewQuizSession(qs)

		opts := s.Question().Options
		if len(opts) != 4 {
			t.Fatalf("expected 4 synthesized options, got %d", len(opts))
		}

		found := false
		for _, o := range opts {
			if o == "the answer" {
				found = true
			}
		}
		if !found {
			t.Error("expected correct answer among synthesized options")
		}

		t.Run("Authored Options Preserved", func(t *testing.T) {
			qs := makeQuestions(1)
			s, _ := NewQuizSession(qs)

			if !reflect.DeepEqual(s.Question().Options, qs[0].Options) {
				t.Error("expected authored option order preserved")
			}
		})
	})
}

// completedSession answers every question correctly and finishes the attempt.
func completedSession(t *testing.T, n int) *QuizSession {
	t.Helper()

	s, err := NewQuizSession(makeQuestions(n))
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}

	for i := 0; i < n; i++ {
		s.Select(fmt.Sprintf("A%d", i))
		s.Advance()
	}

	if s.Phase() != PhaseComplete {
		t.Fatalf("expected complete phase, got %v", s.Phase())
	}
	return s
}
