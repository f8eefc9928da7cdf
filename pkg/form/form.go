package form

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ariaform/ariaform/pkg/async"
	"github.com/ariaform/ariaform/pkg/field"
	"github.com/ariaform/ariaform/pkg/ids"
	"github.com/ariaform/ariaform/pkg/rules"
)

var (
	// ErrNoAction is returned by New when the action URL is empty.
	ErrNoAction = errors.New("form: action URL is required")
	// ErrNoControllers is returned by New when the form has no fields.
	ErrNoControllers = errors.New("form: at least one field controller is required")
	// ErrNotWizard is returned by ValidateStep on a flat form.
	ErrNotWizard = errors.New("form: not a wizard form")
	// ErrStepOutOfRange is returned by ValidateStep for an unknown step.
	ErrStepOutOfRange = errors.New("form: step index out of range")
	// ErrInvalidForm is returned by Submit when field validation failed and
	// nothing was sent.
	ErrInvalidForm = errors.New("form: validation failed")
	// ErrSubmitInFlight is returned by Submit while an earlier submission
	// has not finished, including the re-enable window after the response.
	ErrSubmitInFlight = errors.New("form: submission already in flight")
	// ErrRejected is returned by Submit when the server answered 400; the
	// server's response body carries the message shown to the user.
	ErrRejected = errors.New("form: submission rejected by server")
	// ErrServer is returned by Submit for any other non-2xx response.
	ErrServer = errors.New("form: server error")
)

const defaultReenableDelay = 300 * time.Millisecond

// Result is the outcome of a submission that reached the server.
type Result struct {
	StatusCode int
	Body       string
}

// Hooks are the form's lifecycle callbacks. All hooks are optional and run
// synchronously on the Submit path.
type Hooks struct {
	// BeforeSubmit runs after validation passed and may mutate the values
	// about to be posted.
	BeforeSubmit func(values url.Values)
	// OnError runs when validation fails, with the invalid controllers.
	OnError func(invalid []*field.Controller)
	// SubmitSuccess runs after a 2xx response.
	SubmitSuccess func(res *Result)
	// SubmitError runs after a non-2xx response or a transport failure, in
	// which case res is nil.
	SubmitError func(res *Result)
	// SubmitAlways runs when the submit control is re-enabled, whatever
	// the outcome.
	SubmitAlways func()
}

// Form aggregates field controllers, validates them as a unit and submits
// their values to the action endpoint.
type Form struct {
	id     string
	action string
	steps  [][]*field.Controller
	wizard bool

	view          View
	client        *http.Client
	hooks         Hooks
	invalidMsg    string
	successMsg    string
	serverErrMsg  string
	reenableDelay time.Duration
	logger        *slog.Logger

	inFlight atomic.Bool
}

// Option configures a Form.
type Option func(*Form)

// WithView sets the form chrome adapter. Defaults to a MemoryView.
func WithView(v View) Option {
	return func(f *Form) { f.view = v }
}

// WithClient sets the HTTP client used for submission.
func WithClient(client *http.Client) Option {
	return func(f *Form) { f.client = client }
}

// WithHooks sets the lifecycle callbacks.
func WithHooks(hooks Hooks) Option {
	return func(f *Form) { f.hooks = hooks }
}

// WithInvalidMessage overrides the message shown when validation fails.
func WithInvalidMessage(msg string) Option {
	return func(f *Form) { f.invalidMsg = msg }
}

// WithSuccessMessage overrides the message shown after a 2xx response.
func WithSuccessMessage(msg string) Option {
	return func(f *Form) { f.successMsg = msg }
}

// WithServerErrorMessage overrides the message shown for transport
// failures and non-400 error responses.
func WithServerErrorMessage(msg string) Option {
	return func(f *Form) { f.serverErrMsg = msg }
}

// WithReenableDelay overrides how long the submit control stays disabled
// after the submission settles.
func WithReenableDelay(d time.Duration) Option {
	return func(f *Form) { f.reenableDelay = d }
}

// WithIDGenerator sets the generator for the form's element id.
func WithIDGenerator(gen ids.Generator) Option {
	return func(f *Form) { f.id = gen.Next() }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Form) { f.logger = logger }
}

// New builds a flat form over the given controllers.
func New(action string, controllers []*field.Controller, opts ...Option) (*Form, error) {
	if len(controllers) == 0 {
		return nil, ErrNoControllers
	}
	return build(action, [][]*field.Controller{controllers}, false, opts)
}

// NewWizard builds a multi-step form. Steps validate independently through
// ValidateStep; Submit still validates and serializes every step.
func NewWizard(action string, steps [][]*field.Controller, opts ...Option) (*Form, error) {
	total := 0
	for _, step := range steps {
		total += len(step)
	}
	if total == 0 {
		return nil, ErrNoControllers
	}
	return build(action, steps, true, opts)
}

func build(action string, steps [][]*field.Controller, wizard bool, opts []Option) (*Form, error) {
	if action == "" {
		return nil, ErrNoAction
	}

	f := &Form{
		action:        action,
		steps:         steps,
		wizard:        wizard,
		view:          NewMemoryView(),
		client:        &http.Client{Timeout: 10 * time.Second},
		invalidMsg:    "Check the form for errors before submitting",
		successMsg:    "Your data was submitted successfully",
		serverErrMsg:  "Something went wrong. Please try again later.",
		reenableDelay: defaultReenableDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}
	if f.id == "" {
		f.id = ids.NewSequence("form-").Next()
	}
	return f, nil
}

// ID returns the form's element identifier.
func (f *Form) ID() string { return f.id }

// StepCount returns the number of wizard steps; 1 for a flat form.
func (f *Form) StepCount() int { return len(f.steps) }

// Controllers returns every field controller across all steps.
func (f *Form) Controllers() []*field.Controller {
	var all []*field.Controller
	for _, step := range f.steps {
		all = append(all, step...)
	}
	return all
}

// Validate runs every field's main behavior synchronously and reports
// whether the whole form is valid. Invalid fields render their own error
// feedback; the OnError hook receives them.
func (f *Form) Validate() bool {
	var invalid []*field.Controller
	for _, c := range f.Controllers() {
		if c.Validate() != field.Valid {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 {
		f.logger.Debug("form validation failed", "form", f.id, "invalid", len(invalid))
		if f.hooks.OnError != nil {
			f.hooks.OnError(invalid)
		}
		return false
	}
	return true
}

// ValidateStep validates only the fields of the given wizard step. It does
// not touch the form-level messages or the other steps.
func (f *Form) ValidateStep(step int) (bool, error) {
	if !f.wizard {
		return false, ErrNotWizard
	}
	if step < 0 || step >= len(f.steps) {
		return false, fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}

	valid := true
	for _, c := range f.steps[step] {
		if c.Validate() != field.Valid {
			valid = false
		}
	}
	return valid, nil
}

// Values serializes the fields the way a browser would: text and select
// values always post (empty included), checkboxes post "on" only when
// checked, radio groups post only when an option is selected.
func (f *Form) Values() url.Values {
	values := url.Values{}
	for _, c := range f.Controllers() {
		v := c.Value()
		switch v.Kind() {
		case rules.Checkbox:
			if v.Truthy() {
				values.Set(c.Name(), "on")
			}
		case rules.RadioGroup:
			if v.Truthy() {
				values.Set(c.Name(), v.String())
			}
		default:
			values.Set(c.Name(), v.String())
		}
	}
	return values
}

// Submit validates the form and posts its values to the action endpoint as
// an application/x-www-form-urlencoded body. The submit control is
// disabled for the duration and re-enabled a short delay after the
// submission settles; until then further Submit calls fail with
// ErrSubmitInFlight.
//
// A 2xx response renders the success message. A 400 response means the
// server rejected the payload: its body is shown in the form's error box
// and ErrRejected is returned alongside the result. Any other error
// status, and any transport failure, renders the generic server error
// message.
func (f *Form) Submit(ctx context.Context) (*Result, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	f.view.SetControlEnabled(false)
	defer f.scheduleReenable()

	if !f.Validate() {
		f.view.SetSuccessMessageVisible(false, "")
		f.view.SetErrorMessageVisible(true, f.invalidMsg)
		return nil, ErrInvalidForm
	}

	values := f.Values()
	if f.hooks.BeforeSubmit != nil {
		f.hooks.BeforeSubmit(values)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.action, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, fmt.Errorf("form: build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Warn("form submission failed", "form", f.id, "error", err)
		f.view.SetSuccessMessageVisible(false, "")
		f.view.SetErrorMessageVisible(true, f.serverErrMsg)
		if f.hooks.SubmitError != nil {
			f.hooks.SubmitError(nil)
		}
		return nil, fmt.Errorf("form: submit request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return nil, fmt.Errorf("form: read submit response: %w", err)
	}
	res := &Result{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		f.view.SetErrorMessageVisible(false, "")
		f.view.SetSuccessMessageVisible(true, f.successMsg)
		if f.hooks.SubmitSuccess != nil {
			f.hooks.SubmitSuccess(res)
		}
		return res, nil

	case resp.StatusCode == http.StatusBadRequest:
		msg := res.Body
		if msg == "" {
			msg = f.invalidMsg
		}
		f.view.SetSuccessMessageVisible(false, "")
		f.view.SetErrorMessageVisible(true, msg)
		if f.hooks.SubmitError != nil {
			f.hooks.SubmitError(res)
		}
		return res, ErrRejected

	default:
		f.logger.Warn("form submission rejected", "form", f.id, "status", resp.StatusCode)
		f.view.SetSuccessMessageVisible(false, "")
		f.view.SetErrorMessageVisible(true, f.serverErrMsg)
		if f.hooks.SubmitError != nil {
			f.hooks.SubmitError(res)
		}
		return res, fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	}
}

// SubmitAsync runs Submit in the background and returns its future result.
func (f *Form) SubmitAsync(ctx context.Context) *async.Future[*Result] {
	return async.Go(ctx, func(ctx context.Context) (*Result, error) {
		return f.Submit(ctx)
	})
}

// ResetMessages hides the form-level message boxes.
func (f *Form) ResetMessages() {
	f.view.SetErrorMessageVisible(false, "")
	f.view.SetSuccessMessageVisible(false, "")
}

// Reset clears the form-level messages and resets every field to its
// unvalidated state.
func (f *Form) Reset() {
	f.ResetMessages()
	for _, c := range f.Controllers() {
		c.Reset()
	}
}

func (f *Form) scheduleReenable() {
	time.AfterFunc(f.reenableDelay, func() {
		f.view.SetControlEnabled(true)
		if f.hooks.SubmitAlways != nil {
			f.hooks.SubmitAlways()
		}
		f.inFlight.Store(false)
	})
}
