package extension

// Config is the read-only configuration handed to every hook. Each hook
// invocation receives its own copy, so changes made by a hook are not seen by
// other calls.
type Config struct {
	// AttributeAllowList restricts the service specific attributes recorded
	// on spans to the listed keys. A nil list allows all attributes.
	AttributeAllowList []string

	// SuppressRequestHooks skips the pre-span and post-span hooks of all
	// extensions. Calls are classified with DefaultRequestMetadata.
	SuppressRequestHooks bool

	// SuppressResponseHooks skips response hooks of all extensions.
	SuppressResponseHooks bool

	// SuppressedServices lists service identifiers whose extension hooks are
	// not invoked. Spans are still created for their calls.
	SuppressedServices []string
}

// Copy returns a copy of c whose slices are not shared with c.
func (c Config) Copy() Config {
	to := c
	to.AttributeAllowList = copyStrings(c.AttributeAllowList)
	to.SuppressedServices = copyStrings(c.SuppressedServices)
	return to
}

func copyStrings(v []string) []string {
	if v == nil {
		return nil
	}
	return append(make([]string, 0, len(v)), v...)
}

// AttributeAllowed reports if key may be recorded.
func (c Config) AttributeAllowed(key string) bool {
	if c.AttributeAllowList == nil {
		return true
	}
	for _, k := range c.AttributeAllowList {
		if k == key {
			return true
		}
	}
	return false
}

// ServiceSuppressed reports if hooks for serviceID are suppressed.
func (c Config) ServiceSuppressed(serviceID string) bool {
	id := CanonicalServiceID(serviceID)
	for _, s := range c.SuppressedServices {
		if CanonicalServiceID(s) == id {
			return true
		}
	}
	return false
}
