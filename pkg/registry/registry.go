package registry

import (
	"errors"
	"fmt"
	"regexp"
	"sync"

	"reactor/pkg/api"
)

// ErrDuplicate is returned when registering a name that already exists.
// Duplicate registration is a configuration error: the reference
// behavior was unspecified, and rejecting explicitly is the documented
// choice here.
var ErrDuplicate = errors.New("handler already registered")

// ErrInvalidName is returned when a handler name does not match the
// identifier pattern used by the directive syntax.
var ErrInvalidName = errors.New("invalid handler name")

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Registry is a central inventory for the handlers of one family.
// The agent owns two independent instances, one for Tools and one for
// Capabilities. Registries are populated at construction time and are
// read-mostly afterwards; concurrent registration during live operation
// is out of contract.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]api.Handler
	order    []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		handlers: make(map[string]api.Handler),
	}
}

// Register adds a handler under its name. It rejects nil handlers,
// names that do not match the identifier pattern, and names that are
// already registered.
func (r *Registry) Register(h api.Handler) error {
	if h == nil {
		return errors.New("handler cannot be nil")
	}
	name := h.Name()
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.handlers[name] = h
	r.order = append(r.order, name)
	return nil
}

// Unregister removes a handler by name. The name becomes free for
// re-registration; a later Get returns the newly registered handler,
// never a stale one.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; !exists {
		return
	}
	delete(r.handlers, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get retrieves a handler by exact name.
func (r *Registry) Get(name string) (api.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// List returns name and description for every registered handler, in
// registration order.
func (r *Registry) List() []api.HandlerInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]api.HandlerInfo, 0, len(r.order))
	for _, name := range r.order {
		infos = append(infos, api.HandlerInfo{
			Name:        name,
			Description: r.handlers[name].Description(),
		})
	}
	return infos
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}
