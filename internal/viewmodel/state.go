// Package viewmodel owns the non-visual view logic: each view model wraps
// the API client, tracks its own loading/error state and keeps what it
// displays converged with the backend after every mutation.
package viewmodel

import (
	"errors"

	"github.com/sandeep-sarma-24/Shopping-Cart/internal/api"
)

// ViewState is the loading/error surface of one view. Transitions are
// strictly start -> success | failure; failure sets the message but never
// discards already-loaded data, which stays in the owning view model.
type ViewState struct {
	Loading bool
	Err     string
}

func (s *ViewState) start() {
	s.Loading = true
	s.Err = ""
}

func (s *ViewState) succeed() {
	s.Loading = false
	s.Err = ""
}

func (s *ViewState) fail(err error) {
	s.Loading = false
	s.Err = userMessage(err)
}

// userMessage folds the API error taxonomy into text safe to render
// inline. Server internals never pass through except the backend's own
// error envelope, which is written for end users.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	var ve *api.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var ae *api.AuthError
	if errors.As(err, &ae) {
		if errors.Is(err, api.ErrMissingCredential) {
			return "please log in first"
		}
		return "please log in again"
	}
	var ne *api.NetworkError
	if errors.As(err, &ne) {
		return "cannot reach the shop right now, please try again"
	}
	var se *api.ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return "something went wrong"
}
