package wm

import "errors"

// Terminal request errors. The daemon never retries; callers re-issue the
// request after fixing the cause.
var (
	ErrInvalidMonitorIndex = errors.New("invalid monitor index")
	ErrHandleInvalid       = errors.New("window handle is no longer valid")
	ErrNoFocusedWindow     = errors.New("no focused window")
	ErrNoScreenForWindow   = errors.New("no screen contains the window")
)
