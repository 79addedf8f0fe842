package resolver

import (
	"errors"

	"hypr-window/internal/wm"
)

var (
	ErrNoActiveWindow = errors.New("no active window")
	ErrNoClients      = errors.New("no clients on active workspace")
	ErrEmptyTitle     = errors.New("window title is empty")
)

type Kind int

const (
	// NoData covers every failure, from a missing hyprctl to an untitled window.
	NoData Kind = iota
	Found
)

func (k Kind) String() string {
	if k == Found {
		return "found"
	}
	return "no_data"
}

// Result is the outcome of a single resolution.
type Result struct {
	Kind   Kind
	Title  string
	Window *wm.Client
	// Err explains a NoData result. It is for logs only.
	Err error
}

func found(c *wm.Client, title string) Result {
	return Result{Kind: Found, Title: title, Window: c}
}

func noData(err error) Result {
	return Result{Kind: NoData, Err: err}
}

func (r Result) OK() bool {
	return r.Kind == Found
}
