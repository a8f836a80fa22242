// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"

	"github.com/desertthunder/nbx/internal/models"
	"github.com/desertthunder/nbx/internal/services"
)

// MockService is a configurable test double for [services.Service].
type MockService struct {
	UploadResult *services.UploadResult
	UploadErr    error

	ChatAnswer string
	ChatErr    error

	Flashcards []models.FlashCard
	Questions  []models.QuizQuestion
	Diagram    string
	StudyErr   error

	Slides    *services.SlideResult
	SlidesErr error

	Video    *services.VideoResult
	VideoErr error

	Audio    *services.AudioResult
	AudioErr error

	// Calls counts service invocations by method name.
	Calls map[string]int
}

func (m *MockService) record(method string) {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[method]++
}

func (m *MockService) Upload(ctx context.Context, path string) (*services.UploadResult, error) {
	m.record("Upload")
	return m.UploadResult, m.UploadErr
}

func (m *MockService) Chat(ctx context.Context, query string) (string, error) {
	m.record("Chat")
	return m.ChatAnswer, m.ChatErr
}

func (m *MockService) GenerateStudyAid(ctx context.Context, selector services.Selector) (*services.StudyAidResult, error) {
	m.record("GenerateStudyAid")
	if m.StudyErr != nil {
		return nil, m.StudyErr
	}
	return &services.StudyAidResult{
		Selector:   selector,
		Flashcards: m.Flashcards,
		Questions:  m.Questions,
		Diagram:    m.Diagram,
	}, nil
}

func (m *MockService) GenerateSlides(ctx context.Context) (*services.SlideResult, error) {
	m.record("GenerateSlides")
	return m.Slides, m.SlidesErr
}

func (m *MockService) GenerateVideo(ctx context.Context) (*services.VideoResult, error) {
	m.record("GenerateVideo")
	return m.Video, m.VideoErr
}

func (m *MockService) GenerateAudio(ctx context.Context) (*services.AudioResult, error) {
	m.record("GenerateAudio")
	return m.Audio, m.AudioErr
}

func (m *MockService) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// SequenceRoundTripper returns queued responses in order, repeating the last.
type SequenceRoundTripper struct {
	responses []*http.Response
	index     int
}

func NewSequenceRoundTripper(responses ...*http.Response) *SequenceRoundTripper {
	return &SequenceRoundTripper{responses: responses}
}

func (s *SequenceRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	if s.index >= len(s.responses) {
		return s.responses[len(s.responses)-1], nil
	}
	resp := s.responses[s.index]
	s.index++
	return resp, nil
}
