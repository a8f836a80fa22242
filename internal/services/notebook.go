// HTTP client for the notebook backend
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/desertthunder/nbx/internal/shared"
	"github.com/go-playground/validator/v10"
)

// NotebookService implements [Service] against the notebook backend's JSON
// endpoints (/upload, /chat, /generate_study_aid, /generate_slides,
// /generate_video, /generate_audio).
type NotebookService struct {
	baseURL    string
	httpClient *http.Client
	validate   *validator.Validate
}

var _ Service = (*NotebookService)(nil)

// NewNotebookService creates a client for the backend at baseURL.
func NewNotebookService(baseURL string, client *http.Client) *NotebookService {
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &NotebookService{
		baseURL:    baseURL,
		httpClient: client,
		validate:   validator.New(),
	}
}

// Name returns the name of the backend service.
func (n *NotebookService) Name() string { return "Notebook" }

// errorEnvelope is the backend's failure payload shape.
type errorEnvelope struct {
	Error string `json:"error"`
}

// postJSON sends a JSON POST and returns the response body for 2xx statuses.
// Non-2xx responses are surfaced as ErrAPIRequest carrying the backend's
// error message when one is present.
func (n *NotebookService) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return n.do(req)
}

func (n *NotebookService) do(req *http.Request) ([]byte, error) {
	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope errorEnvelope
		if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error != "" {
			return nil, fmt.Errorf("%w: %s", shared.ErrAPIRequest, envelope.Error)
		}
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	return data, nil
}

// Upload sends one local file as multipart form data. The returned source
// identifier is the file's base name, matching what the registry tracks.
func (n *NotebookService) Upload(ctx context.Context, path string) (*UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	name := filepath.Base(path)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	data, err := n.do(req)
	if err != nil {
		return nil, err
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
	}

	return &UploadResult{Source: name, Message: body.Message}, nil
}

// Chat sends a query and returns the backend's answer.
func (n *NotebookService) Chat(ctx context.Context, query string) (string, error) {
	data, err := n.postJSON(ctx, "/chat", map[string]string{"query": query})
	if err != nil {
		return "", err
	}

	var body struct {
		Answer string `json:"answer"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
	}
	// The backend reports some chat failures with a 200 and an error field.
	if body.Answer == "" {
		if body.Error != "" {
			return "", fmt.Errorf("%w: %s", shared.ErrAPIRequest, body.Error)
		}
		return "", fmt.Errorf("%w: missing answer field", shared.ErrMalformedResponse)
	}

	return body.Answer, nil
}

// GenerateStudyAid requests generation for selector and decodes the matching
// variant: a flashcard or quiz array, or flowchart markup.
func (n *NotebookService) GenerateStudyAid(ctx context.Context, selector Selector) (*StudyAidResult, error) {
	data, err := n.postJSON(ctx, "/generate_study_aid", map[string]string{"type": string(selector)})
	if err != nil {
		return nil, err
	}

	result := &StudyAidResult{Selector: selector}

	switch selector {
	case SelectorFlashcard:
		if err := json.Unmarshal(data, &result.Flashcards); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
		}
		if len(result.Flashcards) == 0 {
			return nil, fmt.Errorf("%w: no flashcards generated", shared.ErrMalformedResponse)
		}
		for i, card := range result.Flashcards {
			if err := n.validate.Struct(card); err != nil {
				return nil, fmt.Errorf("%w: flashcard %d: %v", shared.ErrMalformedResponse, i, err)
			}
		}

	case SelectorQuiz:
		if err := json.Unmarshal(data, &result.Questions); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
		}
		if len(result.Questions) == 0 {
			return nil, fmt.Errorf("%w: no quiz questions generated", shared.ErrMalformedResponse)
		}
		for i, q := range result.Questions {
			if err := n.validate.Struct(q); err != nil {
				return nil, fmt.Errorf("%w: question %d: %v", shared.ErrMalformedResponse, i, err)
			}
		}

	case SelectorFlowchart:
		var body struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
		}
		if body.Content == "" {
			return nil, fmt.Errorf("%w: missing content field", shared.ErrMalformedResponse)
		}
		result.Diagram = body.Content

	default:
		return nil, fmt.Errorf("%w: unknown study aid type %q", shared.ErrInvalidArgument, selector)
	}

	return result, nil
}

// GenerateSlides requests a presentation and returns its download locator.
func (n *NotebookService) GenerateSlides(ctx context.Context) (*SlideResult, error) {
	data, err := n.postJSON(ctx, "/generate_slides", nil)
	if err != nil {
		return nil, err
	}

	var result SlideResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
	}
	if err := n.validate.Struct(result); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
	}

	return &result, nil
}

// GenerateVideo requests a video overview and returns its locator and metadata.
func (n *NotebookService) GenerateVideo(ctx context.Context) (*VideoResult, error) {
	data, err := n.postJSON(ctx, "/generate_video", nil)
	if err != nil {
		return nil, err
	}

	var result VideoResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
	}
	if err := n.validate.Struct(result); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
	}

	return &result, nil
}

// GenerateAudio requests an audio overview and returns its locator.
func (n *NotebookService) GenerateAudio(ctx context.Context) (*AudioResult, error) {
	data, err := n.postJSON(ctx, "/generate_audio", nil)
	if err != nil {
		return nil, err
	}

	var result AudioResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
	}
	if err := n.validate.Struct(result); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedResponse, err)
	}

	return &result, nil
}
