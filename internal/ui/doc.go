// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for the study session:
//  1. [StudioView] : Upload sources, ask questions, and browse saved artifacts
//  2. [FlashcardView] : Flip and navigate a generated flashcard deck
//  3. [QuizView] : Answer a generated quiz one question at a time
//  4. [QuizResultView] : Display the score with retake and review options
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Backend calls run as [tea.Cmd] closures over the StudyEngine, so the event
// loop never blocks on the network; only one request per operation kind is in
// flight at a time and the engine refuses overlapping ones.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
