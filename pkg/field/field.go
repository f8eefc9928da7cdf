package field

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/ariaform/ariaform/pkg/async"
	"github.com/ariaform/ariaform/pkg/ids"
	"github.com/ariaform/ariaform/pkg/locale"
	"github.com/ariaform/ariaform/pkg/messages"
	"github.com/ariaform/ariaform/pkg/param"
	"github.com/ariaform/ariaform/pkg/rules"
)

// Controller validates and autoformats a single field. It is bound to the
// view's events at construction and unbound by Destroy.
//
// Controller implements param.Source: NormalizedValue returns the last
// cached canonical value, so other fields can reference it through
// param.FieldRef for cross-field rules.
type Controller struct {
	name      string
	id        string
	kind      rules.FieldKind
	view      View
	behaviors []Behavior

	region     locale.Region
	registry   *rules.Registry
	catalog    messages.Catalog
	successMsg string
	classes    Classes
	dirtyEvent string
	namespace  string
	remote     rules.RemoteChecker
	logger     *slog.Logger

	mu          sync.Mutex
	value       rules.Value
	prevLen     int
	isAdding    bool
	dirty       bool
	status      Status
	failCode    rules.Code
	destroyed   bool
	remoteGen   uint64
	boundEvents []string
	observers   []func(Event)
}

// Option configures a Controller.
type Option func(*Controller)

// WithRegion sets the locale settings used by date, time and number rules.
func WithRegion(r locale.Region) Option {
	return func(c *Controller) { c.region = r }
}

// WithRegistry sets the rule registry. Defaults to a registry with the
// built-in rules.
func WithRegistry(r *rules.Registry) Option {
	return func(c *Controller) { c.registry = r }
}

// WithMessages overrides failure messages for this field.
func WithMessages(catalog messages.Catalog) Option {
	return func(c *Controller) { c.catalog = catalog }
}

// WithSuccessMessage overrides the text shown when the main behavior
// passes.
func WithSuccessMessage(msg string) Option {
	return func(c *Controller) { c.successMsg = msg }
}

// WithClasses overrides the feedback class names.
func WithClasses(classes Classes) Option {
	return func(c *Controller) { c.classes = classes }
}

// WithDirtyEvent overrides the event that marks the field dirty. The
// default is "blur" for text controls and "change" for everything else.
func WithDirtyEvent(event string) Option {
	return func(c *Controller) { c.dirtyEvent = event }
}

// WithNamespace sets the suffix appended to bound event names, so Destroy
// can unbind without touching the host's own listeners. Defaults to
// "ariaform".
func WithNamespace(ns string) Option {
	return func(c *Controller) { c.namespace = ns }
}

// WithRemoteChecker sets the checker backing the "ajax" rule. Defaults to
// rules.HTTPChecker.
func WithRemoteChecker(rc rules.RemoteChecker) Option {
	return func(c *Controller) { c.remote = rc }
}

// WithIDGenerator sets the generator for the controller's element id.
func WithIDGenerator(gen ids.Generator) Option {
	return func(c *Controller) { c.id = gen.Next() }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithObserver registers a lifecycle callback before any event can fire,
// so construction-time notifications are not missed. Callbacks run
// synchronously on the event path and must not call back into the
// controller.
func WithObserver(fn func(Event)) Option {
	return func(c *Controller) { c.observers = append(c.observers, fn) }
}

// New builds a controller for one field and binds it to the view's events.
// It fails when the view is missing, the name is empty, no behavior is
// configured, or a behavior references an unknown rule.
func New(name string, kind rules.FieldKind, view View, behaviors []Behavior, opts ...Option) (*Controller, error) {
	c := &Controller{
		name:       name,
		kind:       kind,
		view:       view,
		behaviors:  behaviors,
		region:     locale.DefaultRegion(),
		catalog:    messages.Default(),
		successMsg: messages.DefaultSuccess,
		classes:    DefaultClasses(),
		namespace:  "ariaform",
		remote:     rules.HTTPChecker{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.view == nil {
		return nil, ErrNoView
	}
	if c.name == "" {
		return nil, ErrNoName
	}
	if len(c.behaviors) == 0 {
		return nil, ErrNoBehaviors
	}
	if c.registry == nil {
		c.registry = rules.NewRegistry()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}
	if c.id == "" {
		c.id = ids.NewSequence(name + "-").Next()
	}
	if c.dirtyEvent == "" {
		if kind == rules.Text {
			c.dirtyEvent = "blur"
		} else {
			c.dirtyEvent = "change"
		}
	}

	for _, b := range c.behaviors {
		for _, use := range b.Validate {
			if use.Name == rules.RuleAjax {
				continue
			}
			if _, ok := c.registry.Validator(use.Name); !ok {
				return nil, fmt.Errorf("%w: validator %q", ErrUnknownRule, use.Name)
			}
		}
		for _, use := range b.Autoformat {
			if _, ok := c.registry.Formatter(use.Name); !ok {
				return nil, fmt.Errorf("%w: formatter %q", ErrUnknownRule, use.Name)
			}
		}
	}

	c.value = c.view.ReadValue()
	c.prevLen = c.value.Len()

	c.bind()

	for range c.behaviors {
		c.notify(EventBehaviorAdded)
	}
	c.notify(EventMarkupReady)

	return c, nil
}

func (c *Controller) bind() {
	dirtyEvents := ids.NamespaceEvents(c.dirtyEvent, c.namespace)
	c.view.OnEvent(dirtyEvents, func(string) {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.destroyed {
			c.markDirty()
		}
	})
	c.boundEvents = append(c.boundEvents, dirtyEvents)

	for _, b := range c.behaviors {
		behavior := b
		events := ids.NamespaceEvents(b.Events, c.namespace)
		c.view.OnEvent(events, func(eventType string) {
			c.handleBehavior(behavior, eventType)
		})
		c.boundEvents = append(c.boundEvents, events)
	}
}

// Name returns the field name used during form serialization.
func (c *Controller) Name() string { return c.name }

// ID returns the controller's element identifier.
func (c *Controller) ID() string { return c.id }

// Kind returns the control variant.
func (c *Controller) Kind() rules.FieldKind { return c.kind }

// Status returns the field's validation state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// FailureCode returns the code of the last failure, or rules.CodeOK.
func (c *Controller) FailureCode() rules.Code {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failCode
}

// IsDirty reports whether the user has interacted with the field.
func (c *Controller) IsDirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// NormalizedValue implements param.Source. It returns the last canonical
// value the controller cached, not the live control value.
func (c *Controller) NormalizedValue() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value.String()
}

// Value returns the last cached canonical value. Serialization uses it to
// tell an unchecked checkbox or empty radio group from empty text.
func (c *Controller) Value() rules.Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Observe registers a lifecycle callback. Callbacks run synchronously on
// the event path and must not call back into the controller.
func (c *Controller) Observe(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// UpdateValue refreshes the cached value from the view without validating,
// for hosts that mutate the control programmatically.
func (c *Controller) UpdateValue() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.refreshValue()
}

// SetDirty marks the field dirty, as if the settle event had fired.
func (c *Controller) SetDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.markDirty()
}

// Invalidate forces the field into the Invalid state with the given code,
// e.g. to surface a server-side rejection after submission.
func (c *Controller) Invalidate(code rules.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.invalidate(code)
}

// Validate runs the field's main behavior synchronously, ignoring dirty
// gating, and returns the resulting status. The form aggregator calls this
// on every field before submission. When the main behavior carries an
// "ajax" rule the synchronous verdict is returned and the remote check
// runs in the background; a later rejection flips the field to Invalid.
func (c *Controller) Validate() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return c.status
	}

	c.refreshValue()
	for _, b := range c.behaviors {
		if !b.Main {
			continue
		}
		if c.kind == rules.Text && len(b.Autoformat) > 0 {
			c.autoformat(b.Autoformat, "formValidate")
		}
		c.runValidation(b)
		return c.status
	}
	return c.status
}

// Reset returns the field to Unvalidated, clears the dirty flag and
// removes all visual feedback.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.status = Unvalidated
	c.failCode = rules.CodeOK
	c.dirty = false
	c.resetVisuals()
	c.notify(EventReset)
}

// Destroy unbinds the controller from the view and clears visual feedback.
// Further calls on the controller are no-ops; in-flight remote results are
// discarded.
func (c *Controller) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}
	c.destroyed = true
	for _, events := range c.boundEvents {
		c.view.OffEvent(events)
	}
	c.boundEvents = nil
	c.resetVisuals()
	c.notify(EventUnbound)
}

func (c *Controller) handleBehavior(b Behavior, eventType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.destroyed {
		return
	}

	c.refreshValue()

	if c.kind == rules.Text && len(b.Autoformat) > 0 {
		c.autoformat(b.Autoformat, eventType)
	}

	if len(b.Validate) == 0 {
		return
	}
	switch b.Gate {
	case GateDirtyOnly:
		if !c.dirty {
			return
		}
	case GateCleanOnly:
		if c.dirty {
			return
		}
	}

	c.runValidation(b)
}

// refreshValue re-reads the control and tracks whether the change grew the
// text, which mask formatters use to suppress separator reinsertion while
// the user deletes.
func (c *Controller) refreshValue() {
	v := c.view.ReadValue()
	n := v.Len()
	c.isAdding = n > c.prevLen
	c.prevLen = n
	c.value = v
}

func (c *Controller) autoformat(uses []RuleUse, eventType string) {
	fctx := rules.Context{
		Region:    c.region,
		IsAdding:  c.isAdding,
		Selection: c.view.SelectionRange(),
		EventType: eventType,
	}

	text := c.value.String()
	formatted := text
	for _, use := range uses {
		f, ok := c.registry.Formatter(use.Name)
		if !ok {
			continue
		}
		formatted = f(formatted, use.Param, fctx)
	}

	if formatted != text {
		c.view.WriteValue(formatted)
		c.value = rules.TextValue(formatted)
		c.prevLen = c.value.Len()
	}
}

// runValidation executes the behavior's rules in declared order. The first
// failure wins. An "ajax" rule is deferred past the synchronous rules and
// runs in the background; its result applies only if no newer check
// started in the meantime.
func (c *Controller) runValidation(b Behavior) {
	var (
		hasAjax   bool
		ajaxParam param.Param
	)

	for _, use := range b.Validate {
		if use.Name == rules.RuleAjax {
			hasAjax = true
			ajaxParam = use.Param
			continue
		}
		v, ok := c.registry.Validator(use.Name)
		if !ok {
			continue
		}
		if code := v(c.value, use.Param, c.region); code != rules.CodeOK {
			c.invalidate(code)
			return
		}
	}

	if hasAjax && !c.value.Empty() {
		c.startRemote(ajaxParam, b.Main)
	}

	if b.Main {
		c.markValid()
	} else {
		c.resetVisuals()
		c.notify(EventReset)
	}
}

func (c *Controller) startRemote(p param.Param, main bool) {
	c.remoteGen++
	gen := c.remoteGen
	endpoint := p.StringValue()
	value := c.value.String()

	fut := async.Go(context.Background(), func(ctx context.Context) (bool, error) {
		return c.remote.Check(ctx, endpoint, value)
	})
	go func() {
		ok, err := fut.Await()
		c.applyRemote(gen, main, ok, err)
	}()
}

func (c *Controller) applyRemote(gen uint64, main bool, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.destroyed || gen != c.remoteGen {
		return
	}

	switch {
	case err != nil:
		c.logger.Warn("remote validation failed", "field", c.name, "error", err)
		c.invalidate(rules.CodeAjaxError)
	case !ok:
		c.invalidate(rules.CodeAjax)
	case main:
		c.markValid()
	}
}

func (c *Controller) markDirty() {
	if c.dirty {
		return
	}
	c.dirty = true
	c.notify(EventDirty)
}

func (c *Controller) invalidate(code rules.Code) {
	c.status = Invalid
	c.failCode = code
	c.view.AddClass(c.classes.Error)
	c.view.RemoveClass(c.classes.Valid)
	c.view.SetAriaInvalid(true)
	c.view.SetSuccessMessageVisible(false, "")
	c.view.SetErrorMessageVisible(true, c.catalog.Lookup(code))
	c.logger.Debug("field invalid", "field", c.name, "code", string(code))
	c.notify(EventInvalid)
}

func (c *Controller) markValid() {
	c.status = Valid
	c.failCode = rules.CodeOK
	c.view.AddClass(c.classes.Valid)
	c.view.RemoveClass(c.classes.Error)
	c.view.SetAriaInvalid(false)
	c.view.SetErrorMessageVisible(false, "")
	c.view.SetSuccessMessageVisible(true, c.successMsg)
	c.logger.Debug("field valid", "field", c.name)
	c.notify(EventValid)
}

func (c *Controller) resetVisuals() {
	c.view.RemoveClass(c.classes.Valid)
	c.view.RemoveClass(c.classes.Error)
	c.view.SetAriaInvalid(false)
	c.view.SetErrorMessageVisible(false, "")
	c.view.SetSuccessMessageVisible(false, "")
}

func (c *Controller) notify(e Event) {
	for _, fn := range c.observers {
		fn(e)
	}
}
