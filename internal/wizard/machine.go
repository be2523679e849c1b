package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// State is the lifecycle phase of one wizard session.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSubmitted
	StateClosed
)

const (
	defaultTextDebounce   = 500 * time.Millisecond
	defaultSelectDebounce = 300 * time.Millisecond
	defaultCloseDelay     = 3 * time.Second
)

// Submitter delivers a completed draft to the booking backend.
type Submitter interface {
	Submit(ctx context.Context, draft Draft) error
}

// Options tunes a Machine. Zero values fall back to the production timings.
type Options struct {
	// TextDebounce delays validation of free-text fields after each keystroke.
	TextDebounce time.Duration
	// SelectDebounce delays validation of the interests multi-select.
	SelectDebounce time.Duration
	// CloseDelay is how long the success view stays up before the wizard
	// closes itself.
	CloseDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.TextDebounce <= 0 {
		o.TextDebounce = defaultTextDebounce
	}

	if o.SelectDebounce <= 0 {
		o.SelectDebounce = defaultSelectDebounce
	}

	if o.CloseDelay <= 0 {
		o.CloseDelay = defaultCloseDelay
	}

	return o
}

// Machine drives one pass through the four-step demo request form. Field
// edits are accepted immediately; the visible error map catches up after a
// per-field debounce so users are not shouted at mid-keystroke. Step
// advancement and submission always evaluate the rules directly.
//
// All exported methods are safe for concurrent use.
type Machine struct {
	mu sync.Mutex

	opts      Options
	submitter Submitter

	state     State
	step      Step
	draft     Draft
	errors    FieldErrors
	demoTypes []string

	timers     map[Field]*time.Timer
	closeTimer *time.Timer
	submitErr  error
	onClose    func()
}

// NewMachine returns a Machine at step one with an empty draft.
func NewMachine(submitter Submitter, opts Options) *Machine {
	return &Machine{
		opts:      opts.withDefaults(),
		submitter: submitter,
		state:     StateEditing,
		step:      StepContact,
		errors:    FieldErrors{},
		timers:    map[Field]*time.Timer{},
	}
}

// SetDemoTypeOptions restricts the scheduling step to the catalog the config
// endpoints returned. An empty list disables membership checking.
func (m *Machine) SetDemoTypeOptions(names []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.demoTypes = append([]string(nil), names...)
}

// OnClose registers a callback invoked once after the wizard closes, whether
// by the post-submit delay or an explicit Cancel.
func (m *Machine) OnClose(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onClose = fn
}

// SetField records a free-text edit and schedules its validation after the
// text debounce. A new edit to the same field resets the pending timer, so a
// typing burst validates once.
func (m *Machine) SetField(field Field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateEditing {
		return
	}

	m.draft.set(field, value)
	m.scheduleLocked(field, m.opts.TextDebounce)
}

// SetInterests replaces the interest selection and schedules its validation
// after the shorter multi-select debounce.
func (m *Machine) SetInterests(interests []string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateEditing {
		return
	}

	m.draft.Interests = append([]string(nil), interests...)
	m.scheduleLocked(FieldInterests, m.opts.SelectDebounce)
}

// SetDemoType records the demo type choice and validates it immediately.
// Discrete controls have no keystroke noise to absorb.
func (m *Machine) SetDemoType(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateEditing {
		return
	}

	m.draft.DemoType = name
	m.revalidateLocked(FieldDemoType)
}

// SetPreferredDate records the optional preferred demo date.
func (m *Machine) SetPreferredDate(date string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateEditing {
		return
	}

	m.draft.PreferredDate = date
	m.revalidateLocked(FieldPreferredDate)
}

// SetAttendeeCount records the expected audience size.
func (m *Machine) SetAttendeeCount(count string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateEditing {
		return
	}

	m.draft.AttendeeCount = count
	m.revalidateLocked(FieldAttendeeCount)
}

// SetAgreeToTerms toggles the final consent checkbox.
func (m *Machine) SetAgreeToTerms(agreed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateEditing {
		return
	}

	m.draft.AgreeToTerms = agreed
	m.revalidateLocked(FieldAgreeToTerms)
}

// Step reports the current page.
func (m *Machine) Step() Step {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.step
}

// State reports the lifecycle phase.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state
}

// Draft returns a copy of the working draft.
func (m *Machine) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.draft.clone()
}

// Errors returns a copy of the debounced error map.
func (m *Machine) Errors() FieldErrors {
	m.mu.Lock()
	defer m.mu.Unlock()

	errs := FieldErrors{}
	for field, msg := range m.errors {
		errs[field] = msg
	}

	return errs
}

// SubmitErr reports the error from the last failed submission, if any.
func (m *Machine) SubmitErr() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.submitErr
}

// CanAdvance evaluates the current step's rules directly, without waiting for
// pending debounce timers. It backs the Next button.
func (m *Machine) CanAdvance() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state == StateEditing && StepValid(m.step, m.draft, m.demoTypes)
}

// Advance moves to the next step when the current one passes validation. On
// failure the full step error map becomes visible at once.
func (m *Machine) Advance() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateEditing || m.step >= StepSummary {
		return false
	}

	stepErrs := ValidateStep(m.step, m.draft, m.demoTypes)
	m.mergeErrorsLocked(m.step, stepErrs)

	if len(stepErrs) > 0 {
		return false
	}

	m.step++

	return true
}

// Previous steps back without validating. Entered values survive.
func (m *Machine) Previous() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateEditing || m.step <= StepContact {
		return false
	}

	m.step--

	return true
}

// CanSubmit reports whether the summary step's terminal guard is satisfied.
func (m *Machine) CanSubmit() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state == StateEditing && m.step == StepSummary &&
		m.draft.AgreeToTerms && len(ValidateAll(m.draft, m.demoTypes)) == 0
}

// Submit re-validates the whole draft and hands it to the Submitter. Only one
// submission may be in flight; further calls are rejected until the current
// one settles. On success the wizard shows its confirmation and closes itself
// after the configured delay.
func (m *Machine) Submit(ctx context.Context) error {
	m.mu.Lock()

	if m.state != StateEditing {
		m.mu.Unlock()

		return fmt.Errorf("submit rejected: wizard is not editable")
	}

	if m.step != StepSummary || !m.draft.AgreeToTerms {
		m.mu.Unlock()

		return fmt.Errorf("submit rejected: terms have not been accepted")
	}

	if errs := ValidateAll(m.draft, m.demoTypes); len(errs) > 0 {
		m.errors = errs
		m.mu.Unlock()

		return fmt.Errorf("submit rejected: %d fields failed validation", len(errs))
	}

	m.state = StateSubmitting
	m.stopFieldTimersLocked()
	draft := m.draft.clone()
	m.mu.Unlock()

	err := m.submitter.Submit(ctx, draft)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateClosed {
		return err
	}

	if err != nil {
		log.Error().Err(err).Msg("[Submit] demo request submission failed")
		m.state = StateEditing
		m.submitErr = err

		return fmt.Errorf("failed to submit demo request: %w", err)
	}

	m.state = StateSubmitted
	m.submitErr = nil
	m.closeTimer = time.AfterFunc(m.opts.CloseDelay, m.Close)

	return nil
}

// Cancel abandons the session and closes the wizard immediately.
func (m *Machine) Cancel() {
	m.Close()
}

// Close shuts the wizard down, stopping every pending timer. Closing twice is
// a no-op.
func (m *Machine) Close() {
	m.mu.Lock()

	if m.state == StateClosed {
		m.mu.Unlock()

		return
	}

	m.state = StateClosed
	m.stopFieldTimersLocked()

	if m.closeTimer != nil {
		m.closeTimer.Stop()
		m.closeTimer = nil
	}

	fn := m.onClose
	m.onClose = nil
	m.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (m *Machine) scheduleLocked(field Field, delay time.Duration) {
	if timer, ok := m.timers[field]; ok {
		timer.Stop()
	}

	m.timers[field] = time.AfterFunc(delay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if m.state != StateEditing {
			return
		}

		delete(m.timers, field)
		m.revalidateLocked(field)
	})
}

func (m *Machine) revalidateLocked(field Field) {
	if msg := ValidateField(field, m.draft, m.demoTypes); msg != "" {
		m.errors[field] = msg
	} else {
		delete(m.errors, field)
	}
}

// mergeErrorsLocked replaces the entries for one step's fields, leaving the
// rest of the map alone.
func (m *Machine) mergeErrorsLocked(step Step, stepErrs FieldErrors) {
	for _, field := range stepFields[step] {
		if msg, ok := stepErrs[field]; ok {
			m.errors[field] = msg
		} else {
			delete(m.errors, field)
		}
	}
}

func (m *Machine) stopFieldTimersLocked() {
	for field, timer := range m.timers {
		timer.Stop()
		delete(m.timers, field)
	}
}
