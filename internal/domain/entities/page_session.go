package entities

import "sync"

// Menu button glyphs.
const (
	MenuIconClosed = "☰"
	MenuIconOpen   = "✕"
)

// PageSession is the interactive state of one chat, the equivalent of a
// single page view. It lives in memory until the chat resets it.
//
// Callers hold the embedded mutex while reading or changing a session.
type PageSession struct {
	sync.Mutex

	ChatID    int64
	PopupOpen bool
	MenuOpen  bool
	Filter    *CategoryFilter
	Quizzes   map[QuizVariant]*QuizPass

	// SettingsMessageID hosts the accessibility popup. Zero means none.
	SettingsMessageID int

	// CountdownMessageID is the last countdown message sent to the chat,
	// kept so the hourly refresh can edit it in place. Zero means none.
	CountdownMessageID int
}

// QuizPass is one run of a quiz. PassID changes on every reset so stale
// buttons from an earlier pass can be told apart.
type QuizPass struct {
	PassID    string
	Engine    *QuizEngine
	Submitted bool
	Focus     int // index of the question currently shown
}

// NewPageSession creates an empty session for chatID.
func NewPageSession(chatID int64) *PageSession {
	return &PageSession{
		ChatID:  chatID,
		Quizzes: make(map[QuizVariant]*QuizPass),
	}
}

// TogglePopup opens or closes the accessibility popup and returns the new state.
func (s *PageSession) TogglePopup() bool {
	s.PopupOpen = !s.PopupOpen
	return s.PopupOpen
}

// ClosePopup hides the popup, as a click anywhere outside it would.
func (s *PageSession) ClosePopup() {
	s.PopupOpen = false
}

// ToggleMenu opens or closes the navigation menu and returns the new state.
func (s *PageSession) ToggleMenu() bool {
	s.MenuOpen = !s.MenuOpen
	return s.MenuOpen
}

// MenuIcon returns the glyph for the menu button in its current state.
func (s *PageSession) MenuIcon() string {
	if s.MenuOpen {
		return MenuIconOpen
	}
	return MenuIconClosed
}
