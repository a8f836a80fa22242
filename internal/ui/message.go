package ui

import (
	"github.com/desertthunder/nbx/internal/studio"
	"github.com/desertthunder/nbx/internal/tasks"
)

type sourceAddedMsg struct {
	result *tasks.AddSourceResult
	err    error
}

type chatRepliedMsg struct {
	answer string
	err    error
}

type flashcardsGeneratedMsg struct {
	session *studio.FlashcardSession
	err     error
}

type quizGeneratedMsg struct {
	session *studio.QuizSession
	err     error
}
