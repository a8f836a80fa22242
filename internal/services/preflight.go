package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/nbx/internal/shared"
	"github.com/ledongthuc/pdf"
)

// PreflightInfo describes a local source file that passed upload checks.
type PreflightInfo struct {
	Name  string // base file name, the future source identifier
	Size  int64  // bytes
	Pages int    // PDF page count; 0 for text files
}

// PreflightSource checks a local file before any upload request is made:
// only .pdf and .txt sources are accepted, PDFs must parse and contain at
// least one page, and text files must be non-empty. A failed preflight means
// no network call happens for this action.
func PreflightSource(path string) (*PreflightInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	name := filepath.Base(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		f, reader, err := pdf.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: unreadable PDF: %v", shared.ErrInvalidInput, err)
		}
		defer f.Close()

		pages := reader.NumPage()
		if pages < 1 {
			return nil, fmt.Errorf("%w: PDF has no pages", shared.ErrEmptySource)
		}
		return &PreflightInfo{Name: name, Size: info.Size(), Pages: pages}, nil

	case ".txt":
		if info.Size() == 0 {
			return nil, fmt.Errorf("%w: empty text file", shared.ErrEmptySource)
		}
		return &PreflightInfo{Name: name, Size: info.Size()}, nil

	default:
		return nil, fmt.Errorf("%w: %s (want .pdf or .txt)", shared.ErrUnsupportedSource, name)
	}
}
