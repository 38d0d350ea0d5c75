package protocol

import "fmt"

// MessageKey identifies the outcome of a command. Controllers map keys to
// text; games never produce display strings.
type MessageKey int

const (
	Success MessageKey = iota
	NotPlayersTurn
	CardIsNotInPlayersHand
	InvalidPlay
	InvalidTake
	AlreadyTaken
	GameCompleted
	GameNotStarted
	AlreadyDealt
	UnknownCommand
	InvalidState
)

var messageKeyNames = map[MessageKey]string{
	Success:                "Success",
	NotPlayersTurn:         "NotPlayersTurn",
	CardIsNotInPlayersHand: "CardIsNotInPlayersHand",
	InvalidPlay:            "InvalidPlay",
	InvalidTake:            "InvalidTake",
	AlreadyTaken:           "AlreadyTaken",
	GameCompleted:          "GameCompleted",
	GameNotStarted:         "GameNotStarted",
	AlreadyDealt:           "AlreadyDealt",
	UnknownCommand:         "UnknownCommand",
	InvalidState:           "InvalidState",
}

func (k MessageKey) String() string {
	if n, ok := messageKeyNames[k]; ok {
		return n
	}
	return "Unknown"
}

func (k MessageKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *MessageKey) UnmarshalText(text []byte) error {
	for key, name := range messageKeyNames {
		if name == string(text) {
			*k = key
			return nil
		}
	}
	return fmt.Errorf("unknown message key %q", text)
}

// Result is the outcome of a command
type Result struct {
	IsSuccess bool       `json:"isSuccess"`
	Key       MessageKey `json:"messageKey"`
}

// Succeeded is the successful result
func Succeeded() Result {
	return Result{IsSuccess: true, Key: Success}
}

// Failed is a failed result with the reason
func Failed(key MessageKey) Result {
	return Result{IsSuccess: false, Key: key}
}
