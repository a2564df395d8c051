package texttype

import "reflect"

// Host is anything exposing mutable text, e.g. an input field.
type Host interface {
	Text() string
	SetText(string)
}

// TextHost is a minimal Host holding a string.
type TextHost struct {
	text string
}

// NewTextHost returns a TextHost holding text.
func NewTextHost(text string) *TextHost {
	return &TextHost{text: text}
}

func (h *TextHost) Text() string { return h.text }

func (h *TextHost) SetText(text string) { h.text = text }

// Input is what a Handler is invoked with: either a host whose text is read
// and corrected in place, or a plain value.
type Input struct {
	host Host
	text string
}

// HostInput selects host mode. A nil host, or a nil pointer behind the Host
// interface, behaves like ValueInput("").
func HostInput(h Host) Input {
	if isNilHost(h) {
		return Input{}
	}
	return Input{host: h}
}

func isNilHost(h Host) bool {
	if h == nil {
		return true
	}
	v := reflect.ValueOf(h)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// ValueInput selects value mode.
func ValueInput(text string) Input {
	return Input{text: text}
}

// Host returns the host in host mode.
func (in Input) Host() (Host, bool) {
	return in.host, in.host != nil
}

// Text returns the host's current text in host mode, the value otherwise.
func (in Input) Text() string {
	if in.host != nil {
		return in.host.Text()
	}
	return in.text
}

// AfterCheck runs after filtering. subject is the host input in host mode
// and ValueInput(filtered) in value mode; original is the text before
// filtering. Its result replaces the handler's return value.
type AfterCheck func(subject Input, original string) any

// Conforms is an AfterCheck returning true when filtering changed nothing.
func Conforms(subject Input, original string) any {
	return subject.Text() == original
}

// Handler filters text with a registered type, enforcing an optional length.
type Handler struct {
	typeName   string
	maxLength  int
	afterCheck AfterCheck
	registry   *Registry
}

// Option configures a Handler.
type Option func(*Handler)

// WithMaxLength truncates filtered text to n characters. n <= 0 means no
// limit.
func WithMaxLength(n int) Option {
	return func(h *Handler) { h.maxLength = n }
}

// WithAfterCheck installs a callback run after every invocation.
func WithAfterCheck(fn AfterCheck) Option {
	return func(h *Handler) { h.afterCheck = fn }
}

// WithRegistry resolves the type in r instead of Default.
func WithRegistry(r *Registry) Option {
	return func(h *Handler) { h.registry = r }
}

// New returns a Handler for typeName. The name is resolved on every call, not
// here, so it may be registered later.
func New(typeName string, opts ...Option) *Handler {
	h := &Handler{typeName: typeName, registry: Default}
	for _, o := range opts {
		o(h)
	}
	if h.registry == nil {
		h.registry = Default
	}
	return h
}

// Type returns the type name the handler filters with.
func (h *Handler) Type() string { return h.typeName }

// MaxLength returns the length limit, 0 when unlimited.
func (h *Handler) MaxLength() int {
	if h.maxLength < 0 {
		return 0
	}
	return h.maxLength
}

// Handle filters the input. In host mode the host's text is replaced when
// filtering changed it. The result is the AfterCheck result when one is
// installed and the filtered text otherwise. An unregistered type returns an
// error matching ErrUnknownType and leaves the host untouched.
func (h *Handler) Handle(in Input) (any, error) {
	source := in.Text()
	filtered, err := h.apply(source)
	if err != nil {
		return nil, err
	}

	if host, ok := in.Host(); ok {
		if filtered != source {
			host.SetText(filtered)
		}
		if h.afterCheck != nil {
			return h.afterCheck(in, source), nil
		}
		return filtered, nil
	}

	if h.afterCheck != nil {
		return h.afterCheck(ValueInput(filtered), source), nil
	}
	return filtered, nil
}

// Filter returns the filtered, length-limited text without running the
// AfterCheck callback.
func (h *Handler) Filter(text string) (string, error) {
	return h.apply(text)
}

// Check reports whether text already conforms to the type and length limit.
func (h *Handler) Check(text string) (bool, error) {
	filtered, err := h.apply(text)
	if err != nil {
		return false, err
	}
	return filtered == text, nil
}

func (h *Handler) apply(text string) (string, error) {
	filtered, err := h.registry.Filter(h.typeName, text)
	if err != nil {
		return "", err
	}
	return truncate(filtered, h.maxLength), nil
}

// truncate cuts s to n runes when n is positive and s is longer.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
