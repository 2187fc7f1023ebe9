package app

// Key binding constants used in handleKey.
const (
	KeyQuit      = "q"
	KeyCtrlC     = "ctrl+c"
	KeySpace     = " "
	KeyTab       = "tab"
	KeyEnter     = "enter"
	KeyEsc       = "esc"
	KeyBackspace = "backspace"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeySeekBack  = "h"
	KeySeekFwd   = "l"
	KeyExport    = "e"
	KeyRetry     = "r"
	KeyChatFocus = "i"
)
