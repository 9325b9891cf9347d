package hotline

// DefaultContact is returned for any location without a configured entry.
// Lookup is a total function; an unknown location is a defined case, not an
// error.
const DefaultContact = "National Emergency: 911"

// DefaultLocation is used when a broadcast trigger omits its location.
const DefaultLocation = "Angeles City, Pampanga"

// defaultEntries is the built-in emergency hotline table, keyed by
// "City, Province" as submitted by the registration frontend.
var defaultEntries = map[string]string{
	"Angeles City, Pampanga":         "• Angeles CDRRMO: (045) 322-7796\n• Pampanga PDRRMO: (045) 961-0414\n• Police: 166",
	"City of San Fernando, Pampanga": "• San Fernando Rescue: (045) 961-1422\n• Pampanga PDRRMO: (045) 961-0414",
	"San Fernando, Pampanga":         "• San Fernando Rescue: (045) 961-1422\n• Pampanga PDRRMO: (045) 961-0414",
	"Mabalacat City, Pampanga":       "• Mabalacat CDRRMO: (045) 331-0000\n• Pampanga PDRRMO: (045) 961-0414",
	"Manila, Metro Manila":           "• Manila DRRMO: (02) 8527-5174\n• MMDA: 136\n• Red Cross: 143",
	"Quezon City, Metro Manila":      "• QC DRRMO: 122\n• National Emergency: 911",
	"Baguio City, Benguet":           "• Baguio CDRRMO: (074) 442-1900\n• Police: 166",
	"Tagaytay City, Cavite":          "• Tagaytay CDRRMO: (046) 483-0000\n• Cavite PDRRMO: (046) 419-1919",
	"Cebu City, Cebu":                "• Cebu CDRRMO: (032) 255-0000\n• ERUF: 161",
	"Davao City, Davao del Sur":      "• Davao Central 911: 911\n• Police: (082) 224-1313",
}

// Directory maps location keys to local emergency-contact blocks.
// The zero value is not usable; construct with New.
type Directory struct {
	entries  map[string]string
	fallback string
}

// Option configures a Directory.
type Option func(*Directory)

// WithEntry adds or replaces a single hotline entry.
func WithEntry(location, contact string) Option {
	return func(d *Directory) {
		if location != "" && contact != "" {
			d.entries[location] = contact
		}
	}
}

// WithEntries merges the provided entries over the built-in table.
func WithEntries(entries map[string]string) Option {
	return func(d *Directory) {
		for location, contact := range entries {
			if location != "" && contact != "" {
				d.entries[location] = contact
			}
		}
	}
}

// WithFallback replaces the default contact returned for unknown locations.
// Empty values are ignored so Lookup stays total.
func WithFallback(contact string) Option {
	return func(d *Directory) {
		if contact != "" {
			d.fallback = contact
		}
	}
}

// New creates a Directory seeded with the built-in hotline table.
func New(opts ...Option) *Directory {
	d := &Directory{
		entries:  make(map[string]string, len(defaultEntries)),
		fallback: DefaultContact,
	}
	for location, contact := range defaultEntries {
		d.entries[location] = contact
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Lookup returns the contact block for the given location, or the fallback
// for unknown locations. It never fails.
func (d *Directory) Lookup(location string) string {
	if contact, ok := d.entries[location]; ok {
		return contact
	}
	return d.fallback
}

// Has reports whether the location has a configured entry of its own.
func (d *Directory) Has(location string) bool {
	_, ok := d.entries[location]
	return ok
}

// Locations returns the configured location keys in no particular order.
func (d *Directory) Locations() []string {
	keys := make([]string, 0, len(d.entries))
	for location := range d.entries {
		keys = append(keys, location)
	}
	return keys
}
