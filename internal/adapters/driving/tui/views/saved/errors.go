package saved

import "errors"

// ErrNoDecisionService is returned when saved decisions are not configured.
var ErrNoDecisionService = errors.New("saved decisions not available")
