package rules

import "errors"

// Sentinel errors returned by CheckMove/TryPlay. Each names exactly one
// reason a move was rejected; compare with errors.Is.
var (
	ErrPointNotEmpty = errors.New("rules: point is not empty")
	ErrKo            = errors.New("rules: point is forbidden by ko")
	ErrSuicide       = errors.New("rules: move is suicide")
	ErrFillEye       = errors.New("rules: move fills an eye")
	ErrSuperKo       = errors.New("rules: move repeats a previous board position")
	ErrGamePaused    = errors.New("rules: game has ended, call Resume or start a new game")
)
