package texttype

import (
	"slices"
	"sync"
)

// Registry maps type names to rules and remembers registration order.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
	order []string
}

// NewRegistry returns a registry holding the built-in types.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[string]Rule)}
	registerBuiltins(r)
	return r
}

// Register adds or replaces the rule for name, stored under exactly that
// key. A replaced type keeps its position in Types. Nil rules are ignored.
func (r *Registry) Register(name string, rule Rule) {
	if rule == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rules == nil {
		r.rules = make(map[string]Rule)
	}
	if _, ok := r.rules[name]; !ok {
		r.order = append(r.order, name)
	}
	r.rules[name] = rule
}

// Lookup returns the rule registered for name.
func (r *Registry) Lookup(name string) (Rule, error) {
	r.mu.RLock()
	rule, ok := r.rules[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return rule, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Filter applies the rule registered for name to text.
func (r *Registry) Filter(name, text string) (string, error) {
	rule, err := r.Lookup(name)
	if err != nil {
		return "", err
	}
	return rule(text), nil
}

// Types returns the registered names: built-ins first, then custom types in
// the order they were first registered.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Default is the process-wide registry used by New unless WithRegistry is
// given. It starts with the built-in types.
var Default = NewRegistry()

// Register adds or replaces a type in the Default registry.
func Register(name string, rule Rule) {
	Default.Register(name, rule)
}

// Lookup returns the rule for name from the Default registry.
func Lookup(name string) (Rule, error) {
	return Default.Lookup(name)
}

// Filter applies a type from the Default registry to text.
func Filter(name, text string) (string, error) {
	return Default.Filter(name, text)
}

// Types lists the Default registry's type names in registration order.
func Types() []string {
	return Default.Types()
}
