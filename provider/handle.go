package provider

// Handle is a ready-to-use binding of a provider, a model name, and the
// capabilities fixed for that pairing at construction time. Handles are
// plain values; copying one is cheap and safe.
type Handle struct {
	id     ID
	model  string
	caps   Capabilities
	client Client
}

// NewHandle binds a provider, model, and capabilities to a client.
func NewHandle(id ID, model string, caps Capabilities, client Client) Handle {
	return Handle{id: id, model: model, caps: caps, client: client}
}

// ID returns the provider this handle belongs to.
func (h Handle) ID() ID {
	return h.id
}

// Model returns the model or deployment name requests are sent to.
func (h Handle) Model() string {
	return h.model
}

// Capabilities returns the capability flags fixed at construction.
func (h Handle) Capabilities() Capabilities {
	return h.caps
}

// Client returns the completion client bound to this handle.
func (h Handle) Client() Client {
	return h.client
}

// Slot holds a provider's place in the selector: either a configured
// handle or nothing. The zero value is Unconfigured, so a provider whose
// credentials are absent needs no construction at all.
type Slot struct {
	handle     Handle
	configured bool
}

// Configured wraps a handle in a configured slot.
func Configured(h Handle) Slot {
	return Slot{handle: h, configured: true}
}

// Unconfigured returns an empty slot.
func Unconfigured() Slot {
	return Slot{}
}

// Handle returns the slot's handle and whether one is present.
func (s Slot) Handle() (Handle, bool) {
	return s.handle, s.configured
}

// IsConfigured reports whether the slot holds a handle.
func (s Slot) IsConfigured() bool {
	return s.configured
}
