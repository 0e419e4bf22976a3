package extension

import (
	"fmt"
	"sort"
	"strings"
)

// RegistryOptions configures a Registry at construction.
type RegistryOptions struct {
	// Extensions maps service identifiers to their extension. Entries may be
	// added or replaced, e.g. with test doubles, before the registry is
	// built.
	Extensions map[string]Extension

	// Default is resolved for services without an entry. Defaults to
	// Default().
	Default Extension
}

// Registry resolves the extension for a service identifier. A Registry is
// immutable once built and safe for concurrent use.
type Registry struct {
	extensions map[string]Extension
	def        Extension
}

// NewRegistry returns a Registry holding entries, after applying optFns.
// Returns an error if an extension is nil, or if two identifiers resolve to
// the same service.
func NewRegistry(entries map[string]Extension, optFns ...func(*RegistryOptions)) (*Registry, error) {
	options := RegistryOptions{
		Extensions: make(map[string]Extension, len(entries)),
	}
	for id, ext := range entries {
		options.Extensions[id] = ext
	}
	for _, fn := range optFns {
		fn(&options)
	}
	if options.Default == nil {
		options.Default = Default()
	}

	r := &Registry{
		extensions: make(map[string]Extension, len(options.Extensions)),
		def:        options.Default,
	}

	ids := make([]string, 0, len(options.Extensions))
	for id := range options.Extensions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		ext := options.Extensions[id]
		if ext == nil {
			return nil, fmt.Errorf("nil extension for service %q", id)
		}
		key := CanonicalServiceID(id)
		if len(key) == 0 {
			return nil, fmt.Errorf("empty service identifier")
		}
		if _, ok := r.extensions[key]; ok {
			return nil, fmt.Errorf("duplicate extension for service %q", id)
		}
		r.extensions[key] = ext
	}

	return r, nil
}

// Resolve returns the extension registered for serviceID, or the registry's
// default extension.
func (r *Registry) Resolve(serviceID string) Extension {
	if ext, ok := r.Lookup(serviceID); ok {
		return ext
	}
	return r.Default()
}

// Lookup returns the extension registered for serviceID, if any.
func (r *Registry) Lookup(serviceID string) (Extension, bool) {
	if r == nil {
		return nil, false
	}
	ext, ok := r.extensions[CanonicalServiceID(serviceID)]
	return ext, ok
}

// Default returns the extension resolved for unregistered services.
func (r *Registry) Default() Extension {
	if r == nil || r.def == nil {
		return Default()
	}
	return r.def
}

// Services returns the canonical identifiers of the registered services in
// sorted order.
func (r *Registry) Services() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.extensions))
	for id := range r.extensions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CanonicalServiceID folds a service identifier for lookup. Case, spaces,
// dashes and underscores are ignored, so "Secrets Manager" and
// "secretsmanager" name the same service.
func CanonicalServiceID(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range strings.ToLower(id) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
