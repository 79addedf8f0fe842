package wm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"

	"hypr-window/pkg/core"
)

// ErrEmptyResponse is returned when hyprctl exits cleanly but prints nothing.
var ErrEmptyResponse = errors.New("empty hyprctl response")

// Runner executes hyprctl and returns its stdout.
type Runner interface {
	Run(args ...string) ([]byte, error)
}

// ExecRunner runs the hyprctl binary found at Path or in PATH.
type ExecRunner struct {
	Path string
}

func (r ExecRunner) Run(args ...string) ([]byte, error) {
	bin := r.Path
	if bin == "" {
		bin = "hyprctl"
	}

	var stderr bytes.Buffer
	cmd := exec.Command(bin, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return out, fmt.Errorf("%s %v: %w: %s", bin, args, err, msg)
		}
		return out, fmt.Errorf("%s %v: %w", bin, args, err)
	}
	return out, nil
}

type Hyprland struct {
	log    core.Logger
	runner Runner
}

func NewHyprland(runner Runner, log core.Logger) *Hyprland {
	return &Hyprland{log: log, runner: runner}
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

func (h *Hyprland) ListMonitors() ([]Monitor, error) {
	var monitors []Monitor
	if err := h.query(&monitors, "monitors", "-j"); err != nil {
		return nil, err
	}
	h.log.Debug("Listed monitors", "count", len(monitors))
	return monitors, nil
}

func (h *Hyprland) ListClients() ([]Client, error) {
	var clients []Client
	if err := h.query(&clients, "clients", "-j"); err != nil {
		return nil, err
	}
	h.log.Debug("Listed clients", "count", len(clients))
	return clients, nil
}

func (h *Hyprland) GetActiveWindow() (*Client, error) {
	var client Client
	err := h.query(&client, "activewindow", "-j")
	if errors.Is(err, ErrEmptyResponse) {
		h.log.Debug("No active window reported")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if client.IsEmpty() {
		h.log.Debug("Active window record is empty")
		return nil, nil
	}

	h.log.Debug("Found active window",
		"class", client.Class,
		"title", client.Title,
		"address", client.Address)
	return &client, nil
}

func (h *Hyprland) query(v interface{}, args ...string) error {
	h.log.Debug("Executing hyprctl", "args", args)

	output, err := h.runner.Run(args...)
	if err != nil {
		h.log.Debug("Failed to execute hyprctl", "error", err.Error(), "output", string(output))
		return fmt.Errorf("hyprctl error: %w", err)
	}

	output = bytes.TrimSpace(output)
	if len(output) == 0 {
		return fmt.Errorf("hyprctl %v: %w", args, ErrEmptyResponse)
	}

	if err := json.Unmarshal(output, v); err != nil {
		h.log.Debug("Failed to parse hyprctl output", "error", err.Error(), "output", string(output))
		return fmt.Errorf("failed to parse hyprctl output: %w", err)
	}
	return nil
}
