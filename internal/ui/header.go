package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const logo = "foodie"

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if !m.snapshot.HasCookbook {
		return m.renderConnectingHeader(styles, bg)
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(m.buildStatusContent(styles, bg))
}

// renderConnectingHeader shows the state before the first cookbook arrives.
func (m Model) renderConnectingHeader(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)

	if m.snapshot.LastError != nil {
		last := "soon"
		if !m.snapshot.LastUpdated.IsZero() {
			last = m.snapshot.LastUpdated.Format("15:04:05")
		}
		parts := []string{
			bg.Render(logo, styles.Logo),
			bg.Render("COOKBOOK "+classifyConnectionError(m.snapshot.LastError), styles.DangerText.Bold(true)),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
			bg.Render(last, styles.MutedText),
		}
		if m.book != nil {
			parts = append(parts, bg.Render(truncateMiddle(m.book.Describe(), 50), styles.FaintText))
		}
		return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
	}

	return styles.Header.Width(m.width).Render(
		bg.Render(logo, styles.Logo) + sep +
			bg.Render("Loading cookbook...", styles.WarningText.Bold(true)),
	)
}

// buildStatusContent builds the status bar content string.
func (m Model) buildStatusContent(styles Styles, bg BgStyle) string {
	compact := m.width < LayoutCompactWidth
	cb := m.snapshot.Cookbook

	parts := []string{bg.Render(logo, styles.Logo)}

	if m.book != nil {
		where := m.book.Describe()
		if compact {
			where = truncateMiddle(where, 24)
		} else {
			where = truncateMiddle(where, 48)
		}
		parts = append(parts, bg.Render(where, styles.InfoText))
	}

	recipesLabel, favoritesLabel := "Recipes:", "Favorites:"
	if compact {
		recipesLabel, favoritesLabel = "R:", "★"
	}
	parts = append(parts,
		bg.Render(recipesLabel, styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", cb.Len()), styles.Text),
		bg.Render(favoritesLabel, styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(cb.Favorites())), styles.WarningText),
	)

	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	// Refresh errors keep the last good cookbook on screen
	if m.snapshot.LastError != nil {
		maxErr := 80
		if compact {
			maxErr = 40
		}
		indicator := "Retrying..."
		if m.snapshot.IsOffline() {
			indicator = classifyConnectionError(m.snapshot.LastError)
		}
		parts = append(parts,
			bg.Render(indicator, styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.snapshot.LastError.Error(), maxErr), styles.DangerText),
		)
	}

	if text, isErr := m.activeStatus(); text != "" {
		style := styles.SuccessText
		if isErr {
			style = styles.WarningText
		}
		parts = append(parts,
			bg.Render("!", style.Bold(true))+bg.Space()+
				bg.Render(truncate(text, 60), style),
		)
	}

	return bg.Join(parts, "  ")
}

// formatTimestamp formats the last refresh time with relative indicator.
func (m Model) formatTimestamp() string {
	last := m.snapshot.LastUpdated
	if last.IsZero() {
		return ""
	}

	timeSince := time.Since(last)
	timeStr := last.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	// Command bar uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewRecipe:
		commands = []cmd{
			{"j/k", "Scroll"},
			{"e", "Edit"},
			{"s", "Favorite"},
			{"d", "Delete"},
			{"Esc", "Back"},
			{"?", "More"},
		}
	case ViewForm:
		commands = []cmd{
			{"Tab", "Next"},
			{"S-Tab", "Prev"},
			{"←/→", "Choose"},
			{"Enter", "Add ingredient"},
			{"Ctrl+S", "Save"},
			{"Esc", "Cancel"},
		}
	default: // ViewList
		if m.searchActive {
			commands = []cmd{
				{"Enter", "Apply"},
				{"Esc", "Clear"},
			}
			break
		}
		commands = []cmd{
			{"f", m.filterMode.Title()}, // Shows current filter state
			{"/", "Search"},
			{"j/k", "Navigate"},
			{"Enter", "Open"},
			{"n", "New"},
			{"e", "Edit"},
			{"s", "Favorite"},
			{"d", "Delete"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	if m.currentView == ViewList && !m.searchActive && m.searchQuery != "" {
		segments = append(segments,
			bg.Render("/"+truncate(m.searchQuery, 18), styles.AccentText))
	}

	if m.currentView != ViewForm {
		segments = append(segments,
			bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
