package main

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hypr-window/pkg/config"
)

// fakeHyprctl writes a shell script that prints canned JSON per subcommand.
func fakeHyprctl(t *testing.T, monitors, clients, active string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	dir := t.TempDir()
	for name, body := range map[string]string{"monitors": monitors, "clients": clients, "activewindow": active} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(body), 0644))
	}

	script := "#!/bin/sh\n" +
		"f=\"" + dir + "/$1.json\"\n" +
		"if [ ! -s \"$f\" ]; then exit 0; fi\n" +
		"if [ \"$(cat \"$f\")\" = FAIL ]; then echo boom >&2; exit 1; fi\n" +
		"cat \"$f\"\n"
	path := filepath.Join(dir, "hyprctl")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func runWith(vars map[string]string) string {
	var buf bytes.Buffer
	run(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}, &buf)
	return buf.String()
}

const (
	hidden   = `{"text":"","class":"hidden"}` + "\n"
	monitors = `[{"id":0,"name":"eDP-1","activeWorkspace":{"id":1,"name":"1"}},{"id":1,"name":"DP-1","activeWorkspace":{"id":2,"name":"2"}}]`
	clients  = `[{"title":"Mail","workspace":{"id":1,"name":"1"},"focusHistoryID":0},` +
		`{"title":"Editor","workspace":{"id":2,"name":"2"},"focusHistoryID":3},` +
		`{"title":"Browser","workspace":{"id":2,"name":"2"},"focusHistoryID":7}]`
)

func TestRun_GlobalActiveWindow(t *testing.T) {
	bin := fakeHyprctl(t, monitors, clients, `{"title": "Terminal"}`)

	out := runWith(map[string]string{config.HyprctlEnv: bin})

	assert.Equal(t, `{"text":"Terminal","class":"window"}`+"\n", out)
}

func TestRun_OutputScoped(t *testing.T) {
	bin := fakeHyprctl(t, monitors, clients, `{"title": "Terminal"}`)

	out := runWith(map[string]string{config.HyprctlEnv: bin, "WAYBAR_OUTPUT": "DP-1"})
	assert.Equal(t, `{"text":"Browser","class":"window"}`+"\n", out)

	out = runWith(map[string]string{config.HyprctlEnv: bin, "WAYBAR_OUTPUT_NAME": "0"})
	assert.Equal(t, `{"text":"Mail","class":"window"}`+"\n", out)
}

func TestRun_FocusOrderLowest(t *testing.T) {
	bin := fakeHyprctl(t, monitors, clients, "")

	out := runWith(map[string]string{config.HyprctlEnv: bin, "WAYBAR_OUTPUT": "DP-1", config.FocusOrderEnv: "lowest"})

	assert.Equal(t, `{"text":"Editor","class":"window"}`+"\n", out)
}

func TestRun_UnknownOutputWithNoActiveWindow(t *testing.T) {
	bin := fakeHyprctl(t, monitors, clients, "")

	out := runWith(map[string]string{config.HyprctlEnv: bin, "WAYBAR_OUTPUT": "HDMI-9"})

	assert.Equal(t, hidden, out)
}

func TestRun_FailuresAreHidden(t *testing.T) {
	tests := []struct {
		name                      string
		monitors, clients, active string
		vars                      map[string]string
	}{
		{name: "active window fails", active: "FAIL"},
		{name: "active window malformed", active: `{"title":`},
		{name: "active window empty object", active: `{}`},
		{name: "whitespace title", active: `{"title":"   "}`},
		{name: "monitors fail", monitors: "FAIL", active: `{"title":"Terminal"}`, vars: map[string]string{"WAYBAR_OUTPUT": "DP-1"}},
		{name: "monitors empty", active: `{"title":"Terminal"}`, vars: map[string]string{"WAYBAR_OUTPUT": "DP-1"}},
		{name: "clients malformed", monitors: monitors, clients: `[{`, vars: map[string]string{"WAYBAR_OUTPUT": "DP-1"}},
		{name: "no clients", monitors: monitors, clients: `[]`, vars: map[string]string{"WAYBAR_OUTPUT": "DP-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vars := map[string]string{config.HyprctlEnv: fakeHyprctl(t, tt.monitors, tt.clients, tt.active)}
			for k, v := range tt.vars {
				vars[k] = v
			}

			assert.Equal(t, hidden, runWith(vars))
		})
	}
}

func TestRun_MissingHyprctl(t *testing.T) {
	out := runWith(map[string]string{config.HyprctlEnv: filepath.Join(t.TempDir(), "missing")})

	assert.Equal(t, hidden, out)
}

func TestRun_InvalidSettingsStillEmit(t *testing.T) {
	bin := fakeHyprctl(t, monitors, clients, `{"title":"Terminal"}`)
	logFile := filepath.Join(t.TempDir(), "logs", "hypr-window.log")

	out := runWith(map[string]string{
		config.HyprctlEnv:    bin,
		config.DebugEnv:      "loud",
		config.FocusOrderEnv: "newest",
		config.LogFileEnv:    logFile,
	})

	assert.Equal(t, `{"text":"Terminal","class":"window"}`+"\n", out)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), config.FocusOrderEnv)
}

func TestRun_DebugLogReportsContext(t *testing.T) {
	bin := fakeHyprctl(t, monitors, clients, "")
	logFile := filepath.Join(t.TempDir(), "hypr-window.log")

	out := runWith(map[string]string{
		config.HyprctlEnv: bin,
		config.DebugEnv:   "true",
		config.LogFileEnv: logFile,
		"WAYBAR_OUTPUT":   "DP-1",
	})
	assert.Equal(t, `{"text":"Browser","class":"window"}`+"\n", out)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	log := string(data)
	assert.Contains(t, log, "debug=true")
	assert.Contains(t, log, "log_level=debug")
	assert.Contains(t, log, "wm=Hyprland")
	assert.Contains(t, log, "Matched monitor")
	assert.Contains(t, log, "focused=")
}
