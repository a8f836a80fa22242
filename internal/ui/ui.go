package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/nbx/internal/models"
	"github.com/desertthunder/nbx/internal/studio"
	"github.com/desertthunder/nbx/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	StudioView ViewState = iota
	FlashcardView
	QuizView
	QuizResultView
)

// inputMode identifies what the text input collects when focused.
type inputMode int

const (
	inputNone inputMode = iota
	inputUpload
	inputChat
)

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	engine *tasks.StudyEngine
	view   ViewState
	width  int
	height int

	savedList list.Model
	listReady bool
	input     textinput.Model
	mode      inputMode
	spin      spinner.Model

	busy   bool
	status string
	err    error

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, engine *tasks.StudyEngine) *Model {
	input := textinput.New()
	input.CharLimit = 512

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		ctx:    ctx,
		view:   StudioView,
		engine: engine,
		input:  input,
		spin:   spin,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init sets up the saved-items list.
func (m *Model) Init() tea.Cmd {
	m.refreshList()
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.savedList.SetSize(msg.Width-4, msg.Height-14)
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.handleInputKeys(msg)
		}
		switch m.view {
		case StudioView:
			return m.handleStudioKeys(msg)
		case FlashcardView:
			return m.handleFlashcardKeys(msg)
		case QuizView:
			return m.handleQuizKeys(msg)
		case QuizResultView:
			return m.handleResultKeys(msg)
		}

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case sourceAddedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Added %s (%d source(s))", msg.result.Info.Name, m.engine.Studio().Sources.Size())
		if msg.result.Duplicate {
			m.status = fmt.Sprintf("Re-uploaded %s", msg.result.Info.Name)
		}
		return m, nil

	case chatRepliedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = ""
		return m, nil

	case flashcardsGeneratedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.refreshList()
		m.view = FlashcardView
		return m, nil

	case quizGeneratedMsg:
		m.busy = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.refreshList()
		m.view = QuizView
		return m, nil
	}

	if m.view == StudioView && m.listReady {
		var cmd tea.Cmd
		m.savedList, cmd = m.savedList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case StudioView:
		return m.renderStudio()
	case FlashcardView:
		return m.renderFlashcard()
	case QuizView:
		return m.renderQuiz()
	case QuizResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = inputNone
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = inputNone
		m.input.Blur()
		m.input.SetValue("")
		if value == "" {
			return m, nil
		}
		m.busy = true
		switch mode {
		case inputUpload:
			m.status = fmt.Sprintf("Uploading %s...", value)
			return m, tea.Batch(m.addSource(value), m.spin.Tick)
		case inputChat:
			m.status = "Thinking..."
			return m, tea.Batch(m.sendChat(value), m.spin.Tick)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleStudioKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.upload):
		m.mode = inputUpload
		m.input.Placeholder = "path/to/notes.pdf"
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.chat):
		m.mode = inputChat
		m.input.Placeholder = "Ask about your sources..."
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.flash):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Generating flashcards..."
		return m, tea.Batch(m.generateFlashcards(), m.spin.Tick)

	case key.Matches(msg, m.keys.quiz):
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Generating quiz..."
		return m, tea.Batch(m.generateQuiz(), m.spin.Tick)

	case key.Matches(msg, m.keys.enter):
		return m.openSelected()

	case key.Matches(msg, m.keys.remove):
		return m.deleteSelected()
	}

	if m.listReady {
		var cmd tea.Cmd
		m.savedList, cmd = m.savedList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleFlashcardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.engine.Studio().Viewer.Flashcards()
	if session == nil {
		m.view = StudioView
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.engine.Studio().Viewer.Close()
		m.view = StudioView
	case key.Matches(msg, m.keys.flip):
		session.Flip()
	case key.Matches(msg, m.keys.right):
		session.Next()
	case key.Matches(msg, m.keys.left):
		session.Previous()
	case key.Matches(msg, m.keys.shuffle):
		session.Shuffle()
	}
	return m, nil
}

func (m *Model) handleQuizKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.engine.Studio().Viewer.Quiz()
	if session == nil {
		m.view = StudioView
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.back):
		if session.Phase() == studio.PhaseComplete {
			m.view = QuizResultView
			return m, nil
		}
		m.engine.Studio().Viewer.Close()
		m.view = StudioView

	case key.Matches(msg, m.keys.left):
		session.Retreat()

	case key.Matches(msg, m.keys.enter):
		session.Advance()
		if session.Phase() == studio.PhaseComplete && session.Cursor() == session.Len()-1 {
			m.view = QuizResultView
		}

	default:
		if idx := optionIndex(msg.String()); idx >= 0 {
			options := session.Question().Options
			if idx < len(options) {
				session.Select(options[idx])
			}
		}
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	session := m.engine.Studio().Viewer.Quiz()
	if session == nil {
		m.view = StudioView
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.engine.Studio().Viewer.Close()
		m.view = StudioView
	case key.Matches(msg, m.keys.retake):
		if session.Retake() {
			m.view = QuizView
		}
	case key.Matches(msg, m.keys.review):
		if session.Review() {
			m.view = QuizView
		}
	}
	return m, nil
}

// optionIndex maps number keys to option positions, -1 for anything else.
func optionIndex(s string) int {
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}

func (m *Model) openSelected() (tea.Model, tea.Cmd) {
	if !m.listReady {
		return m, nil
	}
	selected := m.savedList.SelectedItem()
	if selected == nil {
		return m, nil
	}
	item, ok := selected.(savedItem)
	if !ok {
		return m, nil
	}

	switch item.item.Kind {
	case models.KindFlashcards:
		if _, err := m.engine.OpenSavedFlashcards(item.item.Index); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.view = FlashcardView

	case models.KindQuiz:
		if _, err := m.engine.OpenSavedQuiz(item.item.Index); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.view = QuizView

	case models.KindSlides:
		deck, err := m.engine.Studio().Store.SlideDeck(item.item.Index)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("Download: %s", deck.DownloadURL)

	case models.KindVideo:
		video, err := m.engine.Studio().Store.Video(item.item.Index)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.status = fmt.Sprintf("Video: %s", video.VideoURL)
	}
	return m, nil
}

func (m *Model) deleteSelected() (tea.Model, tea.Cmd) {
	if !m.listReady {
		return m, nil
	}
	selected := m.savedList.SelectedItem()
	if selected == nil {
		return m, nil
	}
	if item, ok := selected.(savedItem); ok {
		if err := m.engine.DeleteSaved(item.item.Kind, item.item.Index); err != nil {
			m.err = err
			return m, nil
		}
		m.refreshList()
	}
	return m, nil
}

func (m *Model) refreshList() {
	stored := m.engine.Studio().Store.Items()
	items := make([]list.Item, len(stored))
	for i, it := range stored {
		items[i] = savedItem{item: it}
	}

	if !m.listReady {
		m.savedList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.savedList.Title = "Saved Items"
		m.savedList.SetShowHelp(false)
		if m.width > 0 {
			m.savedList.SetSize(m.width-4, m.height-14)
		}
		m.listReady = true
		return
	}
	m.savedList.SetItems(items)
}

func (m *Model) addSource(path string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.engine.AddSource(m.ctx, nil, path)
		return sourceAddedMsg{result: result, err: err}
	}
}

func (m *Model) sendChat(query string) tea.Cmd {
	return func() tea.Msg {
		answer, err := m.engine.Chat(m.ctx, query)
		return chatRepliedMsg{answer: answer, err: err}
	}
}

func (m *Model) generateFlashcards() tea.Cmd {
	return func() tea.Msg {
		session, err := m.engine.GenerateFlashcards(m.ctx, nil)
		return flashcardsGeneratedMsg{session: session, err: err}
	}
}

func (m *Model) generateQuiz() tea.Cmd {
	return func() tea.Msg {
		session, err := m.engine.GenerateQuiz(m.ctx, nil)
		return quizGeneratedMsg{session: session, err: err}
	}
}

func (m *Model) renderStudio() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Notebook Studio"))
	b.WriteString("\n")

	sources := m.engine.Studio().Sources.List()
	if len(sources) == 0 {
		b.WriteString(styles.warn.Render("No sources uploaded. Press u to add a document."))
	} else {
		b.WriteString(fmt.Sprintf("Sources: %s", strings.Join(sources, ", ")))
	}
	b.WriteString("\n\n")

	if transcript := m.engine.Transcript(); len(transcript) > 0 {
		start := len(transcript) - 4
		if start < 0 {
			start = 0
		}
		for _, msg := range transcript[start:] {
			speaker := "You"
			if msg.Role == models.RoleSystem {
				speaker = "Notebook"
			}
			b.WriteString(fmt.Sprintf("%s: %s\n", styles.ok.Render(speaker), msg.Text))
		}
		b.WriteString("\n")
	}

	if m.mode != inputNone {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if m.listReady && !m.engine.Studio().Store.IsEmpty() {
		b.WriteString(m.savedList.View())
		b.WriteString("\n")
	} else {
		b.WriteString(styles.help.Render("No saved items yet."))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
	} else if m.busy {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s%s", m.spin.View(), styles.warn.Render(m.status)))
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styles.warn.Render(m.status))
	}

	helpKeys := []key.Binding{m.keys.upload, m.keys.chat, m.keys.flash, m.keys.quiz, m.keys.enter, m.keys.remove, m.keys.quit}
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderFlashcard() string {
	session := m.engine.Studio().Viewer.Flashcards()
	if session == nil {
		return ""
	}

	card := session.Card()
	face := card.Question
	label := "Question"
	if session.Flipped() {
		face = card.Answer
		label = "Answer"
	}

	title := styles.title.Render(fmt.Sprintf("Flashcards — card %d/%d", session.Cursor()+1, session.Len()))
	body := styles.card.Render(fmt.Sprintf("%s\n\n%s", styles.ok.Render(label), face))

	helpKeys := []key.Binding{m.keys.flip, m.keys.left, m.keys.right, m.keys.shuffle, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, body, helpView)
}

func (m *Model) renderQuiz() string {
	session := m.engine.Studio().Viewer.Quiz()
	if session == nil {
		return ""
	}

	question := session.Question()
	title := styles.title.Render(fmt.Sprintf("Quiz — question %d/%d", session.Cursor()+1, session.Len()))

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(question.Question)
	b.WriteString("\n\n")

	answer, answered := session.Answer()
	for i, opt := range question.Options {
		marker := " "
		line := fmt.Sprintf("%d. %s", i+1, opt)
		if answered {
			switch {
			case opt == session.CorrectAnswer():
				marker = "✓"
				line = styles.ok.Render(line)
			case opt == answer:
				marker = "✗"
				line = styles.err.Render(line)
			}
		}
		b.WriteString(fmt.Sprintf(" %s %s\n", marker, line))
	}

	if answered {
		if answer == session.CorrectAnswer() {
			if question.Explanation != "" {
				b.WriteString("\n" + question.Explanation + "\n")
			}
		} else if question.WrongExplanation != "" {
			b.WriteString("\n" + question.WrongExplanation + "\n")
		}
	}

	selectKey := key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "answer"))
	helpKeys := []key.Binding{selectKey, m.keys.enter, m.keys.left, m.keys.back, m.keys.quit}
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(helpKeys))
	return b.String()
}

func (m *Model) renderResult() string {
	session := m.engine.Studio().Viewer.Quiz()
	if session == nil {
		return ""
	}

	result, ok := session.Result()
	if !ok {
		return ""
	}

	title := styles.title.Render("Quiz Complete!")
	score := fmt.Sprintf(
		"\nCorrect: %s\nWrong: %s\nSkipped: %d\n\nAccuracy: %d%%",
		styles.ok.Render(fmt.Sprintf("%d", result.Correct)),
		styles.err.Render(fmt.Sprintf("%d", result.Wrong)),
		result.Skipped,
		result.Accuracy,
	)

	helpKeys := []key.Binding{m.keys.retake, m.keys.review, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s%s\n\n%s", title, score, helpView)
}
