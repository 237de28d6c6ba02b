// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/commonfollowers/lib/followers"
)

// chromeLines is the number of lines View spends above and below the
// result list: title, blank, two labelled inputs with helpers (6),
// blank, filter line, blank, status, help.
const chromeLines = 13

// defaultRows is the list height used before the first WindowSizeMsg.
const defaultRows = 10

func (model Model) visibleRows() int {
	if model.height <= 0 {
		return defaultRows
	}
	return max(model.height-chromeLines, 1)
}

// View renders the viewer.
func (model Model) View() string {
	var builder strings.Builder

	builder.WriteString(model.styles.header.Render("Common followers"))
	builder.WriteString("\n\n")

	labels := [fieldCount]string{FirstLabel, SecondLabel}
	helpers := [fieldCount]string{FirstHelper, SecondHelper}
	for index := range model.inputs {
		labelStyle := model.styles.label
		if index == model.focused && !model.filterActive {
			labelStyle = model.styles.labelActive
		}
		builder.WriteString(labelStyle.Render(labels[index]))
		builder.WriteString("\n")
		builder.WriteString(model.inputs[index].View())
		builder.WriteString("\n")
		if model.inputs[index].Value() == "" {
			builder.WriteString(model.styles.helper.Render("  " + helpers[index]))
		}
		builder.WriteString("\n")
	}
	builder.WriteString("\n")

	builder.WriteString(model.renderBody())
	builder.WriteString("\n")
	builder.WriteString(model.renderStatus())
	return builder.String()
}

func (model Model) renderBody() string {
	switch model.controller.Phase() {
	case PhaseLoading:
		return model.spinner.View() + " Loading followers…"
	case PhaseError:
		return model.styles.errorText.Render(model.controller.Message())
	case PhaseSuccess:
		if message := model.controller.Message(); message != "" {
			return model.styles.emptyText.Render(message)
		}
		return model.renderList()
	default:
		return ""
	}
}

func (model Model) renderList() string {
	var builder strings.Builder

	total := len(model.controller.Common())
	if model.filterActive || model.filterInput.Value() != "" {
		builder.WriteString(model.filterInput.View())
		builder.WriteString(model.styles.status.Render(fmt.Sprintf("  %d/%d", len(model.filtered), total)))
	} else {
		builder.WriteString(model.styles.status.Render(fmt.Sprintf("%d common followers", total)))
	}
	builder.WriteString("\n")

	end := min(model.scrollOffset+model.visibleRows(), len(model.filtered))
	for index := model.scrollOffset; index < end; index++ {
		builder.WriteString(model.renderRow(model.filtered[index], index == model.cursor))
		builder.WriteString("\n")
	}
	return strings.TrimSuffix(builder.String(), "\n")
}

// loginColumn is the padded width of the login column. GitHub logins
// are at most 39 characters.
const loginColumn = 40

func (model Model) renderRow(match filterMatch, selected bool) string {
	login := highlightPositions(match.Follower.Login, match.Positions, model.styles.match.Render)
	padding := max(loginColumn-ansi.StringWidth(match.Follower.Login), 1)
	line := login + strings.Repeat(" ", padding) + model.styles.avatar.Render(match.Follower.AvatarURL)

	if model.width > 0 {
		line = ansi.Truncate(line, model.width-2, "…")
	}
	if selected {
		return model.styles.rowSelected.Render("› " + line)
	}
	return model.styles.row.Render("  " + line)
}

// highlightPositions renders the runes of text at the given positions
// with render and the rest unchanged.
func highlightPositions(text string, positions []int, render func(...string) string) string {
	if len(positions) == 0 {
		return text
	}
	marked := make(map[int]bool, len(positions))
	for _, position := range positions {
		marked[position] = true
	}
	var builder strings.Builder
	for index, character := range []rune(text) {
		if marked[index] {
			builder.WriteString(render(string(character)))
		} else {
			builder.WriteRune(character)
		}
	}
	return builder.String()
}

func (model Model) renderStatus() string {
	var parts []string
	if model.rateLimit != nil {
		if limit := model.rateLimit(); limit.Known {
			parts = append(parts, fmt.Sprintf("rate limit %d/%d, resets %s",
				limit.Remaining, limit.Limit, limit.Reset.Local().Format(time.Kitchen)))
		}
	}

	var help []string
	for _, binding := range model.keys.ShortHelp() {
		helpInfo := binding.Help()
		help = append(help, helpInfo.Key+" "+helpInfo.Desc)
	}
	parts = append(parts, strings.Join(help, " · "))

	line := strings.Join(parts, "  |  ")
	if model.width > 0 {
		line = ansi.Truncate(line, model.width, "…")
	}
	return model.styles.status.Render(line)
}

// Logins returns the logins currently visible after filtering, in
// display order.
func (model Model) Logins() []string {
	list := make([]followers.Follower, len(model.filtered))
	for index, match := range model.filtered {
		list[index] = match.Follower
	}
	return followers.Logins(list)
}
