package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/nbx/internal/formatter"
	"github.com/desertthunder/nbx/internal/shared"
	"github.com/urfave/cli/v3"
)

// addFiles uploads every --file argument before the command's main action runs.
func (r *Runner) addFiles(ctx context.Context, cmd *cli.Command) error {
	for _, path := range cmd.StringSlice("file") {
		prog, stop := r.trackProgress()
		result, err := r.engine.AddSource(ctx, prog, path)
		stop()
		if err != nil {
			return err
		}
		r.logger.Info("registered source", "name", result.Info.Name)
	}
	return nil
}

// Upload sends one document to the notebook backend and registers it as a source.
func (r *Runner) Upload(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if path == "" {
		return fmt.Errorf("%w: path to a .pdf or .txt file", shared.ErrMissingArgument)
	}

	prog, stop := r.trackProgress()
	result, err := r.engine.AddSource(ctx, prog, path)
	stop()
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(result, pretty)
	}

	r.writePlainln("✓ Uploaded %s (%d bytes)", result.Info.Name, result.Info.Size)
	if result.Message != "" {
		r.writePlain("%s\n", result.Message)
	}
	return nil
}

// Chat asks one question over the uploaded documents.
func (r *Runner) Chat(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if query == "" {
		return fmt.Errorf("%w: a question to ask", shared.ErrMissingArgument)
	}
	if err := r.addFiles(ctx, cmd); err != nil {
		return err
	}

	r.logger.Info("sending chat query", "query", query)

	answer, err := r.engine.Chat(ctx, query)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(struct {
			Query  string `json:"query"`
			Answer string `json:"answer"`
		}{query, answer}, pretty)
	}

	r.writePlainln("%s", answer)
	return nil
}

// Sources lists the registered sources for this session.
func (r *Runner) Sources(ctx context.Context, cmd *cli.Command) error {
	sources := r.engine.Studio().Sources.List()

	if cmd.Bool("json") {
		return r.writeJSON(sources, cmd.Bool("pretty"))
	}

	if len(sources) == 0 {
		r.writePlainln("No sources uploaded")
		return nil
	}

	for i, source := range sources {
		r.writePlain("%d. %s\n", i+1, source)
	}
	return nil
}

// Saved lists the saved study aids for this session.
func (r *Runner) Saved(ctx context.Context, cmd *cli.Command) error {
	items := r.engine.Studio().Store.Items()

	if cmd.Bool("json") {
		return r.writeJSON(items, cmd.Bool("pretty"))
	}

	if len(items) == 0 {
		r.writePlainln("No saved items")
		return nil
	}

	now := time.Now()
	for _, item := range items {
		r.writePlain("[%s] %s — %s (%s)\n", item.Kind, item.Title, item.Detail, formatter.TimeAgo(item.Timestamp, now))
	}
	return nil
}
