package studio

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/desertthunder/nbx/internal/models"
	"github.com/desertthunder/nbx/internal/shared"
)

// QuizPhase is the quiz session state machine phase.
type QuizPhase int

const (
	PhaseAnswering QuizPhase = iota
	PhaseComplete
)

func (p QuizPhase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseComplete:
		return "complete"
	default:
		return ""
	}
}

// QuizResult is the score computed when an attempt completes.
type QuizResult struct {
	Correct  int
	Wrong    int
	Skipped  int
	Total    int
	Accuracy int // rounded percentage of correct answers
}

// QuizSession is a navigable, answerable walkthrough of one quiz deck with
// scoring.
//
// The session snapshots the questions at open time and freezes each
// question's correct answer then; later mutation of the stored deck never
// changes grading for an open attempt. Answer slots are write-once for the
// duration of an attempt and only Retake clears them.
type QuizSession struct {
	questions []models.QuizQuestion
	correct   []string // frozen at open time
	answers   []string
	answered  []bool
	cursor    int
	phase     QuizPhase
	result    QuizResult
}

// fallback options shown when the backend omits them. The correct answer is
// mixed in and the four are scrambled.
var placeholderOptions = []string{
	"Alternative answer 1",
	"Alternative answer 2",
	"Alternative answer 3",
}

// EnsureOptions returns a copy of questions where every entry carries exactly
// four options. Questions that already have options keep them as authored;
// for the rest the correct answer plus three placeholders are synthesized in
// approximately random order.
func EnsureOptions(questions []models.QuizQuestion) []models.QuizQuestion {
	out := make([]models.QuizQuestion, len(questions))
	copy(out, questions)

	for i := range out {
		if len(out[i].Options) > 0 {
			continue
		}
		opts := append([]string{out[i].Answer}, placeholderOptions...)
		rand.Shuffle(len(opts), func(a, b int) {
			opts[a], opts[b] = opts[b], opts[a]
		})
		out[i].Options = opts
	}

	return out
}

// NewQuizSession opens an attempt over a non-empty question deck: all slots
// unanswered, cursor on the first question, answering phase.
func NewQuizSession(questions []models.QuizQuestion) (*QuizSession, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no quiz questions to answer", shared.ErrEmptyDeck)
	}

	snapshot := EnsureOptions(questions)

	correct := make([]string, len(snapshot))
	for i, q := range snapshot {
		correct[i] = q.Answer
	}

	return &QuizSession{
		questions: snapshot,
		correct:   correct,
		answers:   make([]string, len(snapshot)),
		answered:  make([]bool, len(snapshot)),
		phase:     PhaseAnswering,
	}, nil
}

// Question returns the question under the cursor.
func (s *QuizSession) Question() models.QuizQuestion {
	return s.questions[s.cursor]
}

// Questions returns a copy of the session's question sequence.
func (s *QuizSession) Questions() []models.QuizQuestion {
	out := make([]models.QuizQuestion, len(s.questions))
	copy(out, s.questions)
	return out
}

// Cursor returns the zero-based position of the current question.
func (s *QuizSession) Cursor() int { return s.cursor }

// Len returns the number of questions in the attempt.
func (s *QuizSession) Len() int { return len(s.questions) }

// Phase returns the current state machine phase.
func (s *QuizSession) Phase() QuizPhase { return s.phase }

// CorrectAnswer returns the answer frozen at open time for the current question.
func (s *QuizSession) CorrectAnswer() string {
	return s.correct[s.cursor]
}

// Answer returns the selection for the current question, if answered.
func (s *QuizSession) Answer() (string, bool) {
	return s.AnswerAt(s.cursor)
}

// AnswerAt returns the selection for the question at index, if answered.
func (s *QuizSession) AnswerAt(index int) (string, bool) {
	if index < 0 || index >= len(s.answers) || !s.answered[index] {
		return "", false
	}
	return s.answers[index], true
}

// Answered reports whether the current question's slot is filled.
func (s *QuizSession) Answered() bool {
	return s.answered[s.cursor]
}

// Select records option as the answer for the current question and reports
// whether the selection took effect. Selecting on an already-answered slot,
// or outside the answering phase, is a no-op.
func (s *QuizSession) Select(option string) bool {
	if s.phase != PhaseAnswering || s.answered[s.cursor] {
		return false
	}
	s.answers[s.cursor] = option
	s.answered[s.cursor] = true
	return true
}

// Advance moves forward through the attempt and reports whether state
// changed. On a non-final answered question the cursor moves ahead; on the
// final question the attempt completes and the score is computed, whether or
// not the slot was answered (unanswered slots grade as skipped). Advancing an
// unanswered non-final question is a no-op.
func (s *QuizSession) Advance() bool {
	last := s.cursor == len(s.questions)-1

	if !last {
		if !s.answered[s.cursor] {
			return false
		}
		s.cursor++
		return true
	}

	if s.phase == PhaseComplete {
		return false
	}
	s.result = s.grade()
	s.phase = PhaseComplete
	return true
}

// Retreat moves the cursor back one question, clamped at the first. Answers
// and phase are untouched; earlier questions are reviewable read-only.
func (s *QuizSession) Retreat() bool {
	if s.cursor <= 0 {
		return false
	}
	s.cursor--
	return true
}

// Result returns the computed score once the attempt is complete.
func (s *QuizSession) Result() (QuizResult, bool) {
	if s.phase != PhaseComplete {
		return QuizResult{}, false
	}
	return s.result, true
}

// Review resets the cursor for a read-only walkthrough of a completed
// attempt. The phase stays complete, so every slot remains locked.
func (s *QuizSession) Review() bool {
	if s.phase != PhaseComplete {
		return false
	}
	s.cursor = 0
	return true
}

// Retake clears every answer slot and re-enters the answering phase. The
// question order is preserved exactly as opened; quizzes are never reshuffled.
func (s *QuizSession) Retake() bool {
	if s.phase != PhaseComplete {
		return false
	}
	s.answers = make([]string, len(s.questions))
	s.answered = make([]bool, len(s.questions))
	s.cursor = 0
	s.phase = PhaseAnswering
	return true
}

func (s *QuizSession) grade() QuizResult {
	res := QuizResult{Total: len(s.questions)}

	for i := range s.questions {
		switch {
		case !s.answered[i]:
			res.Skipped++
		case s.answers[i] == s.correct[i]:
			res.Correct++
		default:
			res.Wrong++
		}
	}

	res.Accuracy = int(math.Round(100 * float64(res.Correct) / float64(res.Total)))
	return res
}
