package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/fhdsl/metricminer/internal/core/domain"
)

// Colours follow the palette used across the project's terminal output.
var (
	colourPrimary = lipgloss.Color("#7C3AED")
	colourMuted   = lipgloss.Color("#6C7086")
	colourSuccess = lipgloss.Color("#A6E3A1")
	colourError   = lipgloss.Color("#F38BA8")
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

// newStyles returns coloured styles when enabled, plain ones otherwise.
func newStyles(enabled bool) styles {
	if !enabled {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(colourPrimary),
		label:   lipgloss.NewStyle().Bold(true),
		value:   lipgloss.NewStyle(),
		muted:   lipgloss.NewStyle().Foreground(colourMuted),
		success: lipgloss.NewStyle().Bold(true).Foreground(colourSuccess),
		failure: lipgloss.NewStyle().Bold(true).Foreground(colourError),
	}
}

// stylesFor enables colour only when w is a terminal.
func stylesFor(w io.Writer) styles {
	f, ok := w.(*os.File)
	return newStyles(ok && term.IsTerminal(int(f.Fd())))
}

func renderField(w io.Writer, st styles, label, value string) {
	if value == "" {
		value = st.muted.Render("(not set)")
	} else {
		value = st.value.Render(value)
	}
	fmt.Fprintf(w, "  %s %s\n", st.label.Render(fmt.Sprintf("%-12s", label+":")), value)
}

func renderClientInfo(w io.Writer, st styles, info domain.ClientInfo) {
	fmt.Fprintln(w, st.title.Render("Client"))
	renderField(w, st, "Service", info.ServiceName)
	renderField(w, st, "Version", info.Version)
	renderField(w, st, "Endpoint", info.Endpoint)
	renderField(w, st, "Account", info.Account)
	renderField(w, st, "Project", info.ProjectID)
	renderField(w, st, "Scopes", strings.Join(info.Scopes, ", "))
	renderField(w, st, "Client ID", info.ID)
	renderField(w, st, "Created", formatTime(info.CreatedAt))
}

func renderSettings(w io.Writer, st styles, s *domain.Settings, source string) {
	fmt.Fprintln(w, st.title.Render("Settings"))
	renderField(w, st, "Key file", s.KeyFile)
	renderField(w, st, "Scopes", strings.Join(s.Scopes, ", "))
	renderField(w, st, "Service", s.Service.String())
	renderField(w, st, "Endpoint", s.Endpoint)
	renderField(w, st, "Discovery", fmt.Sprint(s.Discovery))
	renderField(w, st, "Timeout", s.HTTPTimeout.String())
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.muted.Render("Config file: "+source))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
