package resolver

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"hypr-window/internal/wm"
	"hypr-window/pkg/config"
	"hypr-window/pkg/core"
)

// Resolver picks the window a bar instance should show.
type Resolver struct {
	src   wm.Source
	log   core.Logger
	order config.FocusOrder
}

func New(src wm.Source, order config.FocusOrder, log core.Logger) *Resolver {
	if order != config.FocusLowest {
		order = config.FocusHighest
	}
	return &Resolver{src: src, log: log, order: order}
}

// Resolve returns the active window for output, or the globally active
// window when output is empty or names no known monitor.
func (r *Resolver) Resolve(output string) Result {
	if output == "" {
		return r.activeWindow()
	}

	monitors, err := r.src.ListMonitors()
	if err != nil {
		return noData(fmt.Errorf("list monitors: %w", err))
	}

	monitor := findMonitor(monitors, output)
	if monitor == nil {
		if len(monitors) == 0 {
			r.log.Debug("No monitors reported, using global active window", "output", output)
		} else {
			r.log.Debug("No monitor matched output, using global active window",
				"output", output,
				"monitor_count", len(monitors))
		}
		return r.activeWindow()
	}

	workspace := monitor.ActiveWorkspace.Identity()
	r.log.Debug("Matched monitor",
		"output", output,
		"monitor", monitor.Name,
		"focused", monitor.Focused,
		"workspace", workspace)

	if workspace == "" {
		return noData(fmt.Errorf("monitor %s: %w", monitor.Name, ErrNoClients))
	}

	clients, err := r.src.ListClients()
	if err != nil {
		return noData(fmt.Errorf("list clients: %w", err))
	}

	candidate := r.pick(onWorkspace(clients, workspace))
	if candidate == nil {
		return noData(fmt.Errorf("workspace %s: %w", workspace, ErrNoClients))
	}
	return fromCandidate(candidate)
}

func (r *Resolver) activeWindow() Result {
	client, err := r.src.GetActiveWindow()
	if err != nil {
		return noData(fmt.Errorf("active window: %w", err))
	}
	if client == nil {
		return noData(ErrNoActiveWindow)
	}
	return fromCandidate(client)
}

// pick selects by focusHistoryID. The earliest client wins ties.
func (r *Resolver) pick(clients []wm.Client) *wm.Client {
	if len(clients) == 0 {
		return nil
	}

	byFocus := func(a, b wm.Client) int { return cmp.Compare(a.FocusHistoryID, b.FocusHistoryID) }
	var c wm.Client
	if r.order == config.FocusLowest {
		c = slices.MinFunc(clients, byFocus)
	} else {
		c = slices.MaxFunc(clients, byFocus)
	}

	r.log.Debug("Selected client",
		"address", c.Address,
		"focus_history_id", c.FocusHistoryID,
		"order", string(r.order),
		"candidates", len(clients))
	return &c
}

// findMonitor matches by name first, then by id, in list order.
func findMonitor(monitors []wm.Monitor, output string) *wm.Monitor {
	for i := range monitors {
		if monitors[i].Name == output {
			return &monitors[i]
		}
	}
	for i := range monitors {
		if monitors[i].ID.String() == output {
			return &monitors[i]
		}
	}
	return nil
}

func onWorkspace(clients []wm.Client, workspace string) []wm.Client {
	var matches []wm.Client
	for _, c := range clients {
		if id := c.Workspace.Identity(); id != "" && id == workspace {
			matches = append(matches, c)
		}
	}
	return matches
}

func fromCandidate(c *wm.Client) Result {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return noData(ErrEmptyTitle)
	}
	return found(c, title)
}
