package domain

// Defaulter is implemented by requests whose omitted fields have defaults.
type Defaulter interface {
	ApplyDefaults()
}

// Prefill sets the defaults on a fresh request. It must run before the body
// is decoded into req so an explicit zero in the body overwrites the default
// and is still rejected by validation.
func Prefill(req interface{}) {
	if d, ok := req.(Defaulter); ok {
		d.ApplyDefaults()
	}
}
