// Package hotline provides a static directory of local emergency-contact
// blocks keyed by location.
//
// Lookup is total: unknown locations resolve to a configured fallback (the
// national emergency line) instead of failing, so the broadcast path never
// has to handle a missing-hotline error.
//
//	dir := hotline.New()
//	contacts := dir.Lookup("Cebu City, Cebu")
//
// The built-in table covers the locations served by the registration
// frontend; deployments can extend or override it with WithEntry,
// WithEntries, and WithFallback.
package hotline
