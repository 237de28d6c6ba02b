// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/commonfollowers/lib/followers"
	"github.com/bureau-foundation/commonfollowers/lib/github"
)

// DefaultDebounce is the quiet period applied to second-username edits
// when Config.Debounce is zero.
const DefaultDebounce = time.Second

// Field labels and helper text for the two inputs.
const (
	FirstLabel   = "First user"
	SecondLabel  = "Second user"
	FirstHelper  = "Please enter first user"
	SecondHelper = "Please enter second user"
)

const (
	fieldFirst = iota
	fieldSecond
	fieldCount
)

// Config configures a Model.
type Config struct {
	// Fetcher retrieves follower lists. Required.
	Fetcher followers.Fetcher

	// Debounce delays applying second-username edits. Zero selects
	// DefaultDebounce; a negative value applies edits immediately.
	Debounce time.Duration

	// RateLimit, if set, is polled on each render for the status line.
	RateLimit func() github.RateLimit

	// InitialFirst and InitialSecond prefill the inputs. Both
	// non-empty starts a fetch from Init.
	InitialFirst  string
	InitialSecond string

	Theme  Theme
	Keys   KeyMap
	Logger *slog.Logger
}

// debounceMsg is delivered when a second-username debounce timer
// fires. Only the message whose sequence matches the latest edit is
// applied; earlier timers are stale.
type debounceMsg struct {
	sequence uint64
	value    string
}

// resultMsg carries the outcome of a fetch cycle back to Update.
type resultMsg struct {
	generation uint64
	common     []followers.Follower
	err        error
}

// Model is the bubbletea model for the viewer.
type Model struct {
	fetcher   followers.Fetcher
	debounce  time.Duration
	rateLimit func() github.RateLimit
	keys      KeyMap
	styles    styles
	logger    *slog.Logger

	inputs  [fieldCount]textinput.Model
	focused int

	spinner    spinner.Model
	controller Controller

	// debounceSequence increments on every edit of the second input.
	debounceSequence uint64

	// cancelFetch cancels the in-flight fetch cycle, if any.
	cancelFetch context.CancelFunc

	// Result list state.
	cursor       int
	scrollOffset int

	filterInput  textinput.Model
	filterActive bool
	filtered     []filterMatch
	slab         *util.Slab

	width  int
	height int

	// pendingInit is the fetch started by Init for prefilled inputs.
	pendingInit tea.Cmd
}

// NewModel creates a viewer model.
func NewModel(config Config) Model {
	debounce := config.Debounce
	if debounce == 0 {
		debounce = DefaultDebounce
	}
	keys := config.Keys
	if keys.Quit.Keys() == nil {
		keys = DefaultKeyMap
	}
	theme := config.Theme
	if theme == (Theme{}) {
		theme = DefaultTheme
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	model := Model{
		fetcher:   config.Fetcher,
		debounce:  debounce,
		rateLimit: config.RateLimit,
		keys:      keys,
		styles:    newStyles(theme),
		logger:    logger,
		slab:      util.MakeSlab(100*1024, 2048),
	}

	placeholders := [fieldCount]string{"octocat", "defunkt"}
	for index := range model.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[index]
		input.CharLimit = 39 // GitHub's maximum login length.
		input.Prompt = "> "
		model.inputs[index] = input
	}
	model.inputs[fieldFirst].SetValue(config.InitialFirst)
	model.inputs[fieldSecond].SetValue(config.InitialSecond)
	model.inputs[fieldFirst].Focus()

	model.filterInput = textinput.New()
	model.filterInput.Prompt = "/"

	model.spinner = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(model.styles.spinner),
	)

	// Prefilled values apply immediately; there is no typing to debounce.
	model.controller.SetFirst(config.InitialFirst)
	if request, start := model.controller.SetSecond(config.InitialSecond); start {
		model.pendingInit = model.startFetch(request)
	}
	return model
}

// Init starts the cursor blink and any fetch for prefilled inputs.
func (model Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, model.pendingInit)
}

// Controller exposes the state machine for inspection.
func (model Model) Controller() *Controller { return &model.controller }

// Update handles a message and returns the updated model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		for index := range model.inputs {
			model.inputs[index].Width = max(message.Width-4, 10)
		}
		model.clampScroll()
		return model, nil

	case tea.KeyMsg:
		if model.filterActive {
			return model.handleFilterKeys(message)
		}
		return model.handleKeys(message)

	case debounceMsg:
		if message.sequence != model.debounceSequence {
			return model, nil
		}
		command := model.apply(model.controller.SetSecond, message.value)
		return model, command

	case resultMsg:
		if !model.controller.Complete(message.generation, message.common, message.err) {
			model.logger.Debug("dropping stale result", "generation", message.generation)
			return model, nil
		}
		if message.err != nil {
			model.logger.Warn("fetch failed", "error", message.err)
		}
		model.stopFetch()
		model.cursor = 0
		model.scrollOffset = 0
		model.refilter()
		return model, nil

	case spinner.TickMsg:
		if !model.controller.Loading() {
			return model, nil
		}
		var command tea.Cmd
		model.spinner, command = model.spinner.Update(message)
		return model, command
	}

	var command tea.Cmd
	model.inputs[model.focused], command = model.inputs[model.focused].Update(message)
	return model, command
}

func (model Model) handleKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		model.stopFetch()
		return model, tea.Quit

	case key.Matches(message, model.keys.NextField):
		model.setFocus((model.focused + 1) % fieldCount)
		return model, nil

	case key.Matches(message, model.keys.PreviousField):
		model.setFocus((model.focused + fieldCount - 1) % fieldCount)
		return model, nil

	case key.Matches(message, model.keys.ClearField):
		model.inputs[model.focused].Reset()
		command := model.inputChanged(model.focused)
		return model, command

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)
		return model, nil

	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)
		return model, nil

	case key.Matches(message, model.keys.PageUp):
		model.moveCursor(-model.visibleRows())
		return model, nil

	case key.Matches(message, model.keys.PageDown):
		model.moveCursor(model.visibleRows())
		return model, nil

	case key.Matches(message, model.keys.FilterActivate) && model.hasResults():
		model.filterActive = true
		model.inputs[model.focused].Blur()
		command := model.filterInput.Focus()
		return model, command
	}

	before := model.inputs[model.focused].Value()
	var command tea.Cmd
	model.inputs[model.focused], command = model.inputs[model.focused].Update(message)
	if model.inputs[model.focused].Value() == before {
		return model, command
	}
	changed := model.inputChanged(model.focused)
	return model, tea.Batch(command, changed)
}

func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.FilterClear):
		model.filterInput.Reset()
		model.closeFilter()
		model.refilter()
		return model, nil

	case key.Matches(message, model.keys.FilterAccept):
		model.closeFilter()
		return model, nil

	// Esc is taken by FilterClear above, so only ctrl+c quits here.
	case key.Matches(message, model.keys.Quit):
		model.stopFetch()
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)
		return model, nil

	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)
		return model, nil
	}

	var command tea.Cmd
	model.filterInput, command = model.filterInput.Update(message)
	model.cursor = 0
	model.scrollOffset = 0
	model.refilter()
	return model, command
}

func (model *Model) closeFilter() {
	model.filterActive = false
	model.filterInput.Blur()
	model.inputs[model.focused].Focus()
}

func (model *Model) setFocus(field int) {
	model.inputs[model.focused].Blur()
	model.focused = field
	model.inputs[model.focused].Focus()
}

// inputChanged routes an edited field to the controller. The first
// username applies immediately. The second is debounced unless it was
// cleared, which returns to Idle at once.
func (model *Model) inputChanged(field int) tea.Cmd {
	value := model.inputs[field].Value()

	if field == fieldFirst {
		return model.apply(model.controller.SetFirst, value)
	}

	model.debounceSequence++
	if value == "" || model.debounce < 0 {
		return model.apply(model.controller.SetSecond, value)
	}

	sequence := model.debounceSequence
	return tea.Tick(model.debounce, func(time.Time) tea.Msg {
		return debounceMsg{sequence: sequence, value: value}
	})
}

// apply hands value to one of the controller setters. A value that
// trims to the applied username keeps the current generation, so the
// in-flight fetch and the filter are left alone.
func (model *Model) apply(set func(string) (Request, bool), value string) tea.Cmd {
	generation := model.controller.Generation()
	request, start := set(value)
	if model.controller.Generation() == generation {
		return nil
	}
	return model.afterChange(request, start)
}

// afterChange reacts to a controller transition. Any in-flight fetch
// belongs to an older generation and is cancelled.
func (model *Model) afterChange(request Request, start bool) tea.Cmd {
	model.stopFetch()
	model.filterInput.Reset()
	model.filterActive = false
	model.filtered = nil
	if !start {
		return nil
	}
	return model.startFetch(request)
}

func (model *Model) startFetch(request Request) tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	model.cancelFetch = cancel
	fetcher := model.fetcher
	logger := model.logger

	fetch := func() tea.Msg {
		logger.Debug("fetching common followers",
			"first", request.First,
			"second", request.Second,
			"generation", request.Generation,
		)
		result, err := followers.Common(ctx, fetcher, request.First, request.Second)
		return resultMsg{generation: request.Generation, common: result.Common, err: err}
	}
	return tea.Batch(model.spinner.Tick, fetch)
}

func (model *Model) stopFetch() {
	if model.cancelFetch != nil {
		model.cancelFetch()
		model.cancelFetch = nil
	}
}

func (model *Model) refilter() {
	model.filtered = filterFollowers(model.controller.Common(), model.filterInput.Value(), model.slab)
	model.clampScroll()
}

func (model Model) hasResults() bool {
	return model.controller.Phase() == PhaseSuccess && len(model.controller.Common()) > 0
}

func (model *Model) moveCursor(delta int) {
	if len(model.filtered) == 0 {
		return
	}
	model.cursor = min(max(model.cursor+delta, 0), len(model.filtered)-1)
	model.clampScroll()
}

// clampScroll keeps the cursor inside the visible window.
func (model *Model) clampScroll() {
	if model.cursor >= len(model.filtered) {
		model.cursor = max(len(model.filtered)-1, 0)
	}
	rows := model.visibleRows()
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+rows {
		model.scrollOffset = model.cursor - rows + 1
	}
	model.scrollOffset = max(model.scrollOffset, 0)
}
