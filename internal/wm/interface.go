package wm

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cast"
)

// Source is the read side of the window manager IPC.
type Source interface {
	// ListMonitors returns every monitor in the order the WM reports them
	ListMonitors() ([]Monitor, error)
	// ListClients returns every mapped window
	ListClients() ([]Client, error)
	// GetActiveWindow returns nil without error when nothing has focus
	GetActiveWindow() (*Client, error)
	// Name returns the WM name for logging
	Name() string
}

// Ident is a JSON string or number kept in its string form, so that ids
// like 2 and "2" compare equal. Anything else decodes to "".
type Ident string

func (i *Ident) UnmarshalJSON(data []byte) error {
	*i = ""

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch v := v.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			*i = Ident(cast.ToString(n))
		} else if f, err := v.Float64(); err == nil {
			// 2.0 reads as "2"
			*i = Ident(cast.ToString(f))
		} else {
			*i = Ident(v.String())
		}
	case string:
		*i = Ident(v)
	}
	return nil
}

func (i Ident) String() string {
	return string(i)
}

type WorkspaceRef struct {
	ID   Ident `json:"id"`
	Name Ident `json:"name"`
}

// Identity is the name when set, else the id. A nil ref has no identity.
func (w *WorkspaceRef) Identity() string {
	if w == nil {
		return ""
	}
	if w.Name != "" {
		return w.Name.String()
	}
	return w.ID.String()
}

type Monitor struct {
	ID              Ident         `json:"id"`
	Name            string        `json:"name"`
	Focused         bool          `json:"focused"`
	ActiveWorkspace *WorkspaceRef `json:"activeWorkspace"`
}

type Client struct {
	Address        string        `json:"address"`
	Class          string        `json:"class"`
	Title          string        `json:"title"`
	Workspace      *WorkspaceRef `json:"workspace"`
	FocusHistoryID int           `json:"focusHistoryID"`
}

// IsEmpty reports a record that names no window, like the {} hyprctl
// prints when nothing is focused.
func (c Client) IsEmpty() bool {
	return c.Address == "" && c.Title == "" && c.Class == "" && c.Workspace == nil
}
