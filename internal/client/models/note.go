package models

import "time"

// Color is the note background color accepted by the server.
type Color string

const (
	ColorYellow Color = "YELLOW"
	ColorBlue   Color = "BLUE"
	ColorGrey   Color = "GREY"
)

// Valid reports whether c is one of the server-accepted colors.
func (c Color) Valid() bool {
	switch c {
	case ColorYellow, ColorBlue, ColorGrey:
		return true
	}
	return false
}

// Label returns a human-readable name for the color.
func (c Color) Label() string {
	switch c {
	case ColorBlue:
		return "Blue"
	case ColorGrey:
		return "Grey"
	default:
		return "Yellow"
	}
}

// Note is a single note as stored on the server. The id and both
// timestamps are server-assigned; the client never generates them.
type Note struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	BackgroundColor Color     `json:"backgroundColor"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NoteRequest is the payload for note create and update calls.
type NoteRequest struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	BackgroundColor Color  `json:"backgroundColor"`
}
