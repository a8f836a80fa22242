package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	back    key.Binding
	flip    key.Binding
	shuffle key.Binding
	retake  key.Binding
	review  key.Binding
	upload  key.Binding
	chat    key.Binding
	flash   key.Binding
	quiz    key.Binding
	remove  key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		enter:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		flip:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "flip")),
		shuffle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		retake:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retake")),
		review:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "review")),
		upload:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "upload")),
		chat:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chat")),
		flash:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flashcards")),
		quiz:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "quiz")),
		remove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.upload, k.chat, k.flash, k.quiz},
		{k.flip, k.shuffle, k.left, k.right},
		{k.retake, k.review, k.back, k.quit},
	}
}
