package state

import "time"

// AppState contains the UI state that lives next to the editor
type AppState struct {
	// File data
	FileName string // empty for an untitled buffer

	// Message bar
	StatusMessage string
	StatusTime    time.Time // when StatusMessage was set

	// Terminal size
	Width  int
	Height int
	Ready  bool // a window size has been received

	InPagerMode bool // an external pager owns the terminal
	Quitting    bool
}

// NewAppState creates a new application state
func NewAppState(fileName string) *AppState {
	return &AppState{FileName: fileName}
}

// SetStatus replaces the status message
func (s *AppState) SetStatus(msg string, now time.Time) {
	s.StatusMessage = msg
	s.StatusTime = now
}

// ClearStatus removes the status message
func (s *AppState) ClearStatus() {
	s.StatusMessage = ""
	s.StatusTime = time.Time{}
}

// VisibleStatus returns the status message if it is younger than d
func (s *AppState) VisibleStatus(now time.Time, d time.Duration) string {
	if s.StatusMessage == "" || now.Sub(s.StatusTime) >= d {
		return ""
	}
	return s.StatusMessage
}

// Untitled reports whether the buffer has no file name yet
func (s *AppState) Untitled() bool {
	return s.FileName == ""
}
