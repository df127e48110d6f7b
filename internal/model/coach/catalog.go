package coach

// Catalog exposes coach profile retrieval for routing and HTTP handlers.
type Catalog interface {
	List() []Profile
	Find(name Name) (Profile, bool)
}

// StaticCatalog implements Catalog with an in-memory slice, defined at
// process start and never mutated afterwards.
type StaticCatalog struct {
	items []Profile
}

// NewCatalog returns a StaticCatalog preloaded with the supplied profiles.
func NewCatalog(items []Profile) *StaticCatalog {
	return &StaticCatalog{items: append([]Profile(nil), items...)}
}

// List returns the defined coach profiles.
func (c *StaticCatalog) List() []Profile {
	return append([]Profile(nil), c.items...)
}

// Find looks up a profile by coach name.
func (c *StaticCatalog) Find(name Name) (Profile, bool) {
	for _, item := range c.items {
		if item.Name == name {
			return item, true
		}
	}
	return Profile{}, false
}
