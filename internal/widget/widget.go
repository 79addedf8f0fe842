package widget

import (
	"encoding/json"
	"fmt"
	"io"

	"hypr-window/internal/resolver"
)

const (
	ClassWindow = "window"
	ClassHidden = "hidden"
)

// Output is the payload a Waybar custom module reads, one per line.
type Output struct {
	Text  string `json:"text"`
	Class string `json:"class"`
}

func Hidden() Output {
	return Output{Text: "", Class: ClassHidden}
}

func Window(title string) Output {
	return Output{Text: title, Class: ClassWindow}
}

// FromResult maps anything but a found window to Hidden.
func FromResult(r resolver.Result) Output {
	if !r.OK() {
		return Hidden()
	}
	return Window(r.Title)
}

// Write prints o as a single line of compact JSON.
func (o Output) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}
