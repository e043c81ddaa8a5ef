package entity

import "time"

type Speaker string

const (
	SpeakerUser Speaker = "You"
	SpeakerBot  Speaker = "Bot"
)

// Turn is one line of a chat session transcript.
type Turn struct {
	Speaker   Speaker   `json:"speaker"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
