package cms

import "errors"

// Failure classes reported by the fetch layer. Callers match them with errors.Is.
var (
	ErrTransport = errors.New("cms: transport failure")
	ErrStatus    = errors.New("cms: unexpected status")
	ErrDecode    = errors.New("cms: malformed response")
	ErrNotFound  = errors.New("cms: not found")
)

// apiError is the error envelope returned on non-2xx responses. Older API
// versions return error as a plain string with a separate message.
type apiError struct {
	Error struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error"`
	Message string `json:"message"`
}

func (e apiError) String() string {
	switch {
	case e.Error.Description != "":
		return e.Error.Description
	case e.Message != "":
		return e.Message
	default:
		return e.Error.Type
	}
}
