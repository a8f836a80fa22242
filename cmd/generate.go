package main

import (
	"context"
	"math"

	"github.com/desertthunder/nbx/internal/formatter"
	"github.com/desertthunder/nbx/internal/shared"
	"github.com/urfave/cli/v3"
)

// GenerateFlashcards generates and saves a flashcard deck.
func (r *Runner) GenerateFlashcards(ctx context.Context, cmd *cli.Command) error {
	if err := r.addFiles(ctx, cmd); err != nil {
		return err
	}

	prog, stop := r.trackProgress()
	_, err := r.engine.GenerateFlashcards(ctx, prog)
	stop()
	if err != nil {
		return err
	}

	decks := r.engine.Studio().Store.Flashcards()
	deck := decks[len(decks)-1]

	if output := cmd.String("output"); output != "" {
		data, err := formatter.ExportFlashcards(&deck, cmd.String("format"))
		if err != nil {
			return err
		}
		if err := formatter.WriteFile(output, data); err != nil {
			return err
		}
		r.writePlainln("✓ Wrote %s", output)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(deck, cmd.Bool("pretty"))
	}

	r.writePlainln("✓ Generated %q (%d cards)", deck.Title, len(deck.Cards))
	for i, card := range deck.Cards {
		r.writePlain("%d. %s\n", i+1, card.Question)
	}
	return nil
}

// GenerateQuiz generates and saves a multiple-choice quiz.
func (r *Runner) GenerateQuiz(ctx context.Context, cmd *cli.Command) error {
	if err := r.addFiles(ctx, cmd); err != nil {
		return err
	}

	prog, stop := r.trackProgress()
	_, err := r.engine.GenerateQuiz(ctx, prog)
	stop()
	if err != nil {
		return err
	}

	decks := r.engine.Studio().Store.Quizzes()
	deck := decks[len(decks)-1]

	if output := cmd.String("output"); output != "" {
		data, err := formatter.ExportQuiz(&deck, cmd.String("format"))
		if err != nil {
			return err
		}
		if err := formatter.WriteFile(output, data); err != nil {
			return err
		}
		r.writePlainln("✓ Wrote %s", output)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(deck, cmd.Bool("pretty"))
	}

	r.writePlainln("✓ Generated %q (%d questions)", deck.Title, len(deck.Questions))
	for i, q := range deck.Questions {
		r.writePlain("%d. %s\n", i+1, q.Question)
	}
	return nil
}

// GenerateFlowchart generates flowchart markup and prints it.
func (r *Runner) GenerateFlowchart(ctx context.Context, cmd *cli.Command) error {
	if err := r.addFiles(ctx, cmd); err != nil {
		return err
	}

	prog, stop := r.trackProgress()
	markup, err := r.engine.GenerateFlowchart(ctx, prog)
	stop()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(struct {
			Content string `json:"content"`
		}{markup}, cmd.Bool("pretty"))
	}

	r.writePlain("%s\n", markup)
	return nil
}

// GenerateSlides generates a presentation and prints its download locator.
func (r *Runner) GenerateSlides(ctx context.Context, cmd *cli.Command) error {
	if err := r.addFiles(ctx, cmd); err != nil {
		return err
	}

	prog, stop := r.trackProgress()
	result, err := r.engine.GenerateSlides(ctx, prog)
	stop()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	r.writePlainln("✓ Presentation ready")
	r.writePlain("Download: %s%s\n", r.config.Server.BaseURL, result.DownloadURL)
	return nil
}

// GenerateVideo generates a video overview and prints its locator and metadata.
func (r *Runner) GenerateVideo(ctx context.Context, cmd *cli.Command) error {
	if err := r.addFiles(ctx, cmd); err != nil {
		return err
	}

	prog, stop := r.trackProgress()
	result, err := r.engine.GenerateVideo(ctx, prog)
	stop()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	duration := shared.FormatDuration(int(math.Round(result.Duration)))
	r.writePlainln("✓ Video overview ready (%s, %d slides)", duration, result.SlideCount)
	r.writePlain("Video: %s%s\n", r.config.Server.BaseURL, result.VideoURL)
	return nil
}

// GenerateAudio generates an audio overview and prints its locator.
func (r *Runner) GenerateAudio(ctx context.Context, cmd *cli.Command) error {
	if err := r.addFiles(ctx, cmd); err != nil {
		return err
	}

	prog, stop := r.trackProgress()
	result, err := r.engine.GenerateAudio(ctx, prog)
	stop()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	r.writePlainln("✓ Audio overview ready")
	r.writePlain("Audio: %s%s\n", r.config.Server.BaseURL, result.AudioURL)
	return nil
}
