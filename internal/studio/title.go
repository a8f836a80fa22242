package studio

import (
	"regexp"
	"strings"

	"github.com/desertthunder/nbx/internal/models"
)

var sourceExt = regexp.MustCompile(`(?i)\.(pdf|txt)$`)

// DeriveTitle derives an artifact title from the first uploaded source:
// trailing .pdf/.txt extension stripped (case-insensitive), underscores
// replaced by spaces. Quiz titles get a literal " Quiz" suffix.
//
// When source is empty the kind-specific default title is returned instead.
func DeriveTitle(source string, kind models.ArtifactKind) string {
	if source == "" {
		return kind.DefaultTitle()
	}

	base := sourceExt.ReplaceAllString(source, "")
	base = strings.ReplaceAll(base, "_", " ")

	if kind == models.KindQuiz {
		return base + " Quiz"
	}
	return base
}
