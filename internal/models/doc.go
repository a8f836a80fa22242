// Package models defines domain entities for the nbx study-aid client.
//
// The package contains two categories of types:
//
// 1. Generated items: Lightweight structs decoded from backend responses
//   - [FlashCard] : Question/answer pair
//   - [QuizQuestion] : Multiple-choice question with authored options and feedback
//
// 2. Saved artifacts: Session-scoped registry entries keyed by title
//   - [FlashcardDeck] : Flashcards with last-modified timestamp
//   - [QuizDeck] : Quiz questions with last-modified timestamp
//   - [SlideDeck] : Downloadable presentation locator
//   - [VideoOverview] : Playable video locator with duration metadata
//
// Saved artifacts follow merge-by-title semantics: regenerating under an
// existing title overwrites that entry in place and bumps its timestamp,
// rather than creating a duplicate. See the studio package for the store.
package models
