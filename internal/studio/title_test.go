package studio

import (
	"testing"

	"github.com/desertthunder/nbx/internal/models"
)

func TestDeriveTitle(t *testing.T) {
	tc := []struct {
		name   string
		source string
		kind   models.ArtifactKind
		want   string
	}{
		{
			name:   "strips extension and underscores",
			source: "Intro_to_ML.pdf",
			kind:   models.KindFlashcards,
			want:   "Intro to ML",
		},
		{
			name:   "quiz gets suffix",
			source: "Intro_to_ML.pdf",
			kind:   models.KindQuiz,
			want:   "Intro to ML Quiz",
		},
		{
			name:   "extension match is case-insensitive",
			source: "biology_notes.TXT",
			kind:   models.KindSlides,
			want:   "biology notes",
		},
		{
			name:   "only trailing extension is stripped",
			source: "lecture.pdf.txt",
			kind:   models.KindFlashcards,
			want:   "lecture.pdf",
		},
		{
			name:   "unknown extension kept",
			source: "notes.docx",
			kind:   models.KindFlashcards,
			want:   "notes.docx",
		},
		{
			name:   "no sources falls back to flashcard default",
			source: "",
			kind:   models.KindFlashcards,
			want:   "Flashcards",
		},
		{
			name:   "no sources falls back to quiz default",
			source: "",
			kind:   models.KindQuiz,
			want:   "Quiz",
		},
		{
			name:   "no sources falls back to slides default",
			source: "",
			kind:   models.KindSlides,
			want:   "Presentation",
		},
		{
			name:   "no sources falls back to video default",
			source: "",
			kind:   models.KindVideo,
			want:   "Video Overview",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveTitle(tt.source, tt.kind)
			if got != tt.want {
				t.Errorf("DeriveTitle(%q, %v) = %q, want %q", tt.source, tt.kind, got, tt.want)
			}
		})
	}
}
