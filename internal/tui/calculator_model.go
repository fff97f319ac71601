package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/routes"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/trip"
)

// CalculatorState represents the current state of the calculator TUI.
type CalculatorState int

const (
	// CalculatorStateEditing indicates the user is filling in the trip form.
	CalculatorStateEditing CalculatorState = iota
	// CalculatorStateCalculating indicates a calculation is in progress.
	CalculatorStateCalculating
	// CalculatorStateResults indicates a completed report is on screen.
	CalculatorStateResults
	// CalculatorStateQuitting indicates the application is exiting.
	CalculatorStateQuitting
)

// Form field indices, in focus order.
const (
	fieldOrigin = iota
	fieldDestination
	fieldDistance
	fieldMode
	fieldCount
)

// calculateDoneMsg is sent when a trip calculation completes.
type calculateDoneMsg struct {
	report *trip.Report
	err    error
}

// Default dimensions and input limits for the calculator model.
const (
	calculatorDefaultWidth  = 80
	calculatorDefaultHeight = 24
	cityInputCharLimit      = 64
	cityInputWidth          = 32
	distanceInputCharLimit  = 10
	distanceInputWidth      = 12

	// processingDelay keeps the spinner visible long enough for the
	// state change to register with the user, even though the
	// calculation itself is instant.
	processingDelay = 750 * time.Millisecond
)

// CalculatorModel is the Bubble Tea model for the interactive trip form.
type CalculatorModel struct {
	ctx        context.Context
	calculator *trip.Calculator

	// Form inputs
	origin      textinput.Model
	destination textinput.Model
	distance    textinput.Model
	modeIdx     int
	focused     int

	// Result display
	report *trip.Report

	// State management
	state   CalculatorState
	loading *LoadingState
	err     error

	// Display dimensions
	width  int
	height int
}

// NewCalculatorModel creates the trip form model. City inputs offer
// tab-completion over the calculator's known cities.
func NewCalculatorModel(ctx context.Context, calculator *trip.Calculator) *CalculatorModel {
	cities := calculator.Table().Cities()

	origin := newCityInput("Origin city, e.g. Toronto, ON", cities)
	origin.Focus()

	m := &CalculatorModel{
		ctx:         ctx,
		calculator:  calculator,
		origin:      origin,
		destination: newCityInput("Destination city", cities),
		distance:    newDistanceInput(),
		state:       CalculatorStateEditing,
		loading:     NewLoadingState("Calculating emissions..."),
		width:       calculatorDefaultWidth,
		height:      calculatorDefaultHeight,
	}
	return m
}

// newCityInput creates a text input with suggestion support for city names.
func newCityInput(placeholder string, cities []string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = cityInputCharLimit
	ti.Width = cityInputWidth
	ti.ShowSuggestions = true
	ti.SetSuggestions(cities)
	return ti
}

// newDistanceInput creates the optional manual distance input.
func newDistanceInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "optional, km"
	ti.CharLimit = distanceInputCharLimit
	ti.Width = distanceInputWidth
	return ti
}

// Init initializes the model.
func (m *CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case calculateDoneMsg:
		return m.handleCalculateDone(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Spinner ticks while calculating.
	if m.state == CalculatorStateCalculating {
		return m, m.loading.Update(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for form navigation.
func (m *CalculatorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.state = CalculatorStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case CalculatorStateCalculating:
		// Submission and edits are disabled until the pending
		// calculation delivers its result.
		return m, nil

	case CalculatorStateResults:
		return m.handleResultsKey(msg)

	case CalculatorStateEditing:
		return m.handleEditingKey(msg)

	case CalculatorStateQuitting:
	}

	return m, nil
}

// handleResultsKey processes keyboard input on the results screen.
//
//nolint:exhaustive // Only handling relevant key types for the results screen.
func (m *CalculatorModel) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.resetForm()

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = CalculatorStateQuitting
			return m, tea.Quit
		case "n":
			return m.resetForm()
		}
	}

	return m, nil
}

// handleEditingKey processes keyboard input while the form is editable.
//
//nolint:exhaustive // Only handling relevant key types for form editing.
func (m *CalculatorModel) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.state = CalculatorStateQuitting
		return m, tea.Quit

	case tea.KeyTab, tea.KeyDown:
		m.setFocus((m.focused + 1) % fieldCount)
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus((m.focused + fieldCount - 1) % fieldCount)
		return m, nil

	case tea.KeyLeft:
		if m.focused == fieldMode && m.modeIdx > 0 {
			m.modeIdx--
		}
		if m.focused == fieldMode {
			return m, nil
		}

	case tea.KeyRight:
		if m.focused == fieldMode && m.modeIdx < len(emissions.Modes())-1 {
			m.modeIdx++
		}
		if m.focused == fieldMode {
			return m, nil
		}

	case tea.KeyEnter:
		return m.submit()
	}

	return m, m.updateFocusedInput(msg)
}

// setFocus moves keyboard focus to the given field index.
func (m *CalculatorModel) setFocus(field int) {
	m.focused = field
	m.origin.Blur()
	m.destination.Blur()
	m.distance.Blur()

	switch field {
	case fieldOrigin:
		m.origin.Focus()
	case fieldDestination:
		m.destination.Focus()
	case fieldDistance:
		m.distance.Focus()
	}
}

// updateFocusedInput forwards a message to whichever text input has focus.
func (m *CalculatorModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focused {
	case fieldOrigin:
		m.origin, cmd = m.origin.Update(msg)
	case fieldDestination:
		m.destination, cmd = m.destination.Update(msg)
	case fieldDistance:
		m.distance, cmd = m.distance.Update(msg)
	}
	return cmd
}

// submit validates the form and starts a calculation.
func (m *CalculatorModel) submit() (tea.Model, tea.Cmd) {
	req, err := m.buildRequest()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.state = CalculatorStateCalculating
	return m, tea.Batch(m.loading.Init(), m.calculateCmd(req))
}

// buildRequest assembles a trip request from the current form values.
func (m *CalculatorModel) buildRequest() (trip.Request, error) {
	req := trip.Request{
		Origin:      strings.TrimSpace(m.origin.Value()),
		Destination: strings.TrimSpace(m.destination.Value()),
		Mode:        emissions.Modes()[m.modeIdx],
	}

	if raw := strings.TrimSpace(m.distance.Value()); raw != "" {
		km, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return trip.Request{}, errors.New("distance must be a number, in kilometers")
		}
		req.DistanceKm = km
	}

	if req.DistanceKm <= 0 && (req.Origin == "" || req.Destination == "") {
		return trip.Request{}, errors.New("enter an origin and destination, or a manual distance")
	}

	return req, nil
}

// calculateCmd creates a command that runs the calculation after the
// processing delay.
func (m *CalculatorModel) calculateCmd(req trip.Request) tea.Cmd {
	// Capture references before the goroutine to avoid accessing model
	// fields concurrently.
	ctx := m.ctx
	calculator := m.calculator

	return func() tea.Msg {
		time.Sleep(processingDelay)
		report, err := calculator.Calculate(ctx, req)
		return calculateDoneMsg{report: report, err: err}
	}
}

// handleCalculateDone processes the result of a trip calculation.
func (m *CalculatorModel) handleCalculateDone(msg calculateDoneMsg) (tea.Model, tea.Cmd) {
	if m.state != CalculatorStateCalculating {
		// A stale result from a form that was already reset.
		return m, nil
	}

	if msg.err != nil {
		m.err = msg.err
		m.state = CalculatorStateEditing
		if errors.Is(msg.err, routes.ErrRouteNotFound) {
			m.setFocus(fieldDistance)
		}
		return m, nil
	}

	m.report = msg.report
	m.state = CalculatorStateResults
	return m, nil
}

// resetForm clears the result and returns to an empty editable form.
func (m *CalculatorModel) resetForm() (tea.Model, tea.Cmd) {
	m.report = nil
	m.err = nil
	m.origin.SetValue("")
	m.destination.SetValue("")
	m.distance.SetValue("")
	m.modeIdx = 0
	m.state = CalculatorStateEditing
	m.setFocus(fieldOrigin)
	return m, textinput.Blink
}

// Mode returns the currently selected transport mode.
func (m *CalculatorModel) Mode() emissions.Mode {
	return emissions.Modes()[m.modeIdx]
}

// Report returns the last completed report, or nil.
func (m *CalculatorModel) Report() *trip.Report {
	return m.report
}
