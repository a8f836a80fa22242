// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// fileFlag registers the documents uploaded before an operation runs.
func fileFlag() *cli.StringSliceFlag {
	return &cli.StringSliceFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "Source document (.pdf or .txt) to upload first; repeatable",
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
			Value: true,
		},
	}
}

// uploadCommand handles source document uploads
func uploadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "upload",
		Aliases: []string{"up"},
		Usage:   "Upload a document to the notebook backend",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "path",
			},
		},
		Flags:  outputFlags(),
		Action: r.Upload,
	}
}

// chatCommand handles question answering over uploaded sources
func chatCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "chat",
		Usage: "Ask a question about your uploaded documents",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags:  append([]cli.Flag{fileFlag()}, outputFlags()...),
		Action: r.Chat,
	}
}

// generateCommand handles study-aid generation
func generateCommand(r *Runner) *cli.Command {
	exportFlags := []cli.Flag{
		fileFlag(),
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Write the generated deck to a file",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Export format: json, csv, markdown, txt",
			Value: "json",
		},
	}

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"gen"},
		Usage:   "Generate study aids from uploaded documents",
		Commands: []*cli.Command{
			{
				Name:    "flashcards",
				Aliases: []string{"cards"},
				Usage:   "Generate a flashcard deck",
				Flags:   append(exportFlags, outputFlags()...),
				Action:  r.GenerateFlashcards,
			},
			{
				Name:   "quiz",
				Usage:  "Generate a multiple-choice quiz",
				Flags:  append(exportFlags, outputFlags()...),
				Action: r.GenerateQuiz,
			},
			{
				Name:   "flowchart",
				Usage:  "Generate flowchart markup",
				Flags:  append([]cli.Flag{fileFlag()}, outputFlags()...),
				Action: r.GenerateFlowchart,
			},
			{
				Name:   "slides",
				Usage:  "Generate a downloadable presentation",
				Flags:  append([]cli.Flag{fileFlag()}, outputFlags()...),
				Action: r.GenerateSlides,
			},
			{
				Name:   "video",
				Usage:  "Generate a narrated video overview",
				Flags:  append([]cli.Flag{fileFlag()}, outputFlags()...),
				Action: r.GenerateVideo,
			},
			{
				Name:   "audio",
				Usage:  "Generate an audio overview",
				Flags:  append([]cli.Flag{fileFlag()}, outputFlags()...),
				Action: r.GenerateAudio,
			},
		},
	}
}

// sourcesCommand lists the registered sources for this session
func sourcesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "sources",
		Usage:  "List uploaded sources for this session",
		Flags:  outputFlags(),
		Action: r.Sources,
	}
}

// savedCommand lists the saved artifacts for this session
func savedCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "saved",
		Usage:  "List saved study aids for this session",
		Flags:  outputFlags(),
		Action: r.Saved,
	}
}

// configCommand manages the configuration file
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create a config.toml with defaults",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}

// tuiCommand launches the interactive terminal UI
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive studio",
		Flags:  []cli.Flag{fileFlag()},
		Action: r.TUI,
	}
}
