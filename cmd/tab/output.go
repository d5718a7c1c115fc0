package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"

	"tab/internal/clierr"
)

type outputMode int

const (
	outputHuman outputMode = iota
	outputJSON
	outputQuiet
)

func parseOutputMode(value string) (outputMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "human":
		return outputHuman, nil
	case "json":
		return outputJSON, nil
	case "quiet":
		return outputQuiet, nil
	default:
		return 0, clierr.Newf(clierr.InvalidArguments, "unknown output format %q (expected human, json, or quiet)", value)
	}
}

type snapshotData struct {
	Snapshot string `json:"snapshot"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

type tabInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

type tabListData struct {
	Tabs        []tabInfo `json:"tabs"`
	ActiveTabID string    `json:"activeTabId"`
}

// renderResult writes a successful command's data to w in the selected
// mode. Quiet writes nothing; success is the exit code. JSON re-indents
// the daemon's data verbatim. Human picks a renderer from the shape of
// the data and falls back to key/value lines.
func renderResult(w io.Writer, mode outputMode, data json.RawMessage) error {
	switch mode {
	case outputQuiet:
		return nil
	case outputJSON:
		if len(data) == 0 {
			data = json.RawMessage(`{"success":true}`)
		}
		return writeJSON(w, data)
	}
	return renderHuman(w, data)
}

func renderHuman(w io.Writer, data json.RawMessage) error {
	if len(data) == 0 {
		fmt.Fprintln(w, "Success")
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		// Scalar or array data; print it as-is.
		fmt.Fprintln(w, strings.TrimSpace(string(data)))
		return nil
	}

	switch {
	case hasField(fields, "snapshot"):
		var snap snapshotData
		if err := json.Unmarshal(data, &snap); err == nil {
			renderSnapshot(w, snap)
			return nil
		}
	case hasField(fields, "tabs"):
		var list tabListData
		if err := json.Unmarshal(data, &list); err == nil {
			renderTabList(w, list)
			return nil
		}
	}

	if executedOnly(fields) {
		fmt.Fprintln(w, "Success")
		return nil
	}

	renderKeyValues(w, fields)
	return nil
}

func renderSnapshot(w io.Writer, snap snapshotData) {
	colorize := shouldColorize(w)
	header := snap.Title
	if header == "" {
		header = snap.URL
	}
	if header != "" {
		line := fmt.Sprintf("== %s ==", header)
		if colorize {
			line = ansiBlue + line + ansiReset
		}
		fmt.Fprintln(w, line)
	}
	if snap.URL != "" && snap.Title != "" {
		fmt.Fprintln(w, snap.URL)
	}
	if header != "" {
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, strings.TrimRight(snap.Snapshot, "\n"))
}

func renderTabList(w io.Writer, list tabListData) {
	if len(list.Tabs) == 0 {
		fmt.Fprintln(w, "No open tabs")
		return
	}
	fmt.Fprintln(w, renderTabTable(list))
}

func renderKeyValues(w io.Writer, fields map[string]json.RawMessage) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := fields[key]
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			text = strings.TrimSpace(string(value))
		}
		fmt.Fprintf(w, "%s: %s\n", key, text)
	}
}

func hasField(fields map[string]json.RawMessage, name string) bool {
	_, ok := fields[name]
	return ok
}

// executedOnly reports whether the data is a bare acknowledgement like
// {"executed":true} that deserves a one-word success line.
func executedOnly(fields map[string]json.RawMessage) bool {
	if len(fields) != 1 {
		return false
	}
	for _, value := range fields {
		var flag bool
		if err := json.Unmarshal(value, &flag); err != nil || !flag {
			return false
		}
	}
	return true
}

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
