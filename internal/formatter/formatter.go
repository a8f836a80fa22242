// package formatter provides functions to export study decks to various formats (CSV, Markdown, JSON, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/desertthunder/nbx/internal/models"
	"github.com/desertthunder/nbx/internal/shared"
)

// TimeAgo renders a saved-item timestamp relative to now ("just now", "5m ago",
// "2h ago", "3d ago", "1mo ago").
func TimeAgo(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())
	if seconds < 60 {
		return "just now"
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	days := hours / 24
	if days < 30 {
		return fmt.Sprintf("%dd ago", days)
	}

	return fmt.Sprintf("%dmo ago", days/30)
}

// FlashcardsToCSV converts a flashcard deck to CSV with columns: Question, Answer
func FlashcardsToCSV(deck *models.FlashcardDeck) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Question", "Answer"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, card := range deck.Cards {
		if err := writer.Write([]string{card.Question, card.Answer}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// QuizToCSV converts a quiz deck to CSV with columns: Question, Answer, Options, Explanation
func QuizToCSV(deck *models.QuizDeck) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Question", "Answer", "Options", "Explanation"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, q := range deck.Questions {
		record := []string{
			q.Question,
			q.Answer,
			strings.Join(q.Options, "; "),
			q.Explanation,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// FlashcardsToMarkdown converts a flashcard deck to Markdown
func FlashcardsToMarkdown(deck *models.FlashcardDeck) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", deck.Title))
	buf.WriteString(fmt.Sprintf("**Cards**: %d\n\n", len(deck.Cards)))

	for i, card := range deck.Cards {
		buf.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, card.Question))
		buf.WriteString(fmt.Sprintf("%s\n\n", card.Answer))
	}

	return buf.Bytes(), nil
}

// QuizToMarkdown converts a quiz deck to Markdown with answers listed after the options
func QuizToMarkdown(deck *models.QuizDeck) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", deck.Title))
	buf.WriteString(fmt.Sprintf("**Questions**: %d\n\n", len(deck.Questions)))

	for i, q := range deck.Questions {
		buf.WriteString(fmt.Sprintf("## %d. %s\n\n", i+1, q.Question))
		for _, opt := range q.Options {
			buf.WriteString(fmt.Sprintf("- %s\n", opt))
		}
		buf.WriteString(fmt.Sprintf("\n**Answer**: %s\n", q.Answer))
		if q.Explanation != "" {
			buf.WriteString(fmt.Sprintf("\n%s\n", q.Explanation))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// FlashcardsToText converts a flashcard deck to plain text
func FlashcardsToText(deck *models.FlashcardDeck) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Deck: %s\n", deck.Title))
	buf.WriteString(fmt.Sprintf("Cards: %d\n\n", len(deck.Cards)))

	for i, card := range deck.Cards {
		buf.WriteString(fmt.Sprintf("%d. Q: %s\n   A: %s\n", i+1, card.Question, card.Answer))
	}

	return buf.Bytes(), nil
}

// QuizToText converts a quiz deck to plain text
func QuizToText(deck *models.QuizDeck) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Quiz: %s\n", deck.Title))
	buf.WriteString(fmt.Sprintf("Questions: %d\n\n", len(deck.Questions)))

	for i, q := range deck.Questions {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, q.Question))
		for _, opt := range q.Options {
			buf.WriteString(fmt.Sprintf("   - %s\n", opt))
		}
		buf.WriteString(fmt.Sprintf("   Answer: %s\n", q.Answer))
	}

	return buf.Bytes(), nil
}

// ExportFlashcards renders a flashcard deck in the requested format (json, csv, markdown, txt).
func ExportFlashcards(deck *models.FlashcardDeck, format string) ([]byte, error) {
	switch format {
	case "json":
		return shared.MarshalJSON(deck, true)
	case "csv":
		return FlashcardsToCSV(deck)
	case "markdown", "md":
		return FlashcardsToMarkdown(deck)
	case "txt", "text":
		return FlashcardsToText(deck)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
}

// ExportQuiz renders a quiz deck in the requested format (json, csv, markdown, txt).
func ExportQuiz(deck *models.QuizDeck, format string) ([]byte, error) {
	switch format {
	case "json":
		return shared.MarshalJSON(deck, true)
	case "csv":
		return QuizToCSV(deck)
	case "markdown", "md":
		return QuizToMarkdown(deck)
	case "txt", "text":
		return QuizToText(deck)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
}

// Extension returns the file extension for an export format.
func Extension(format string) string {
	switch format {
	case "markdown", "md":
		return "md"
	case "txt", "text":
		return "txt"
	default:
		return format
	}
}

// WriteFile writes exported data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
