// registry.go implements the entity descriptor registry.
//
// Separated from entity.go to isolate the registry state and registration
// rules. Each entity type self-registers its descriptor during init(),
// before main() runs, so index construction can iterate every known type
// without hard-coding the union in the search layer.
//
// Design: The registry panics on duplicate registration, following the
// database/sql.Register convention. Registration happens at init time, so a
// duplicate is a programmer error, not a runtime condition. Registration
// order is preserved to keep index and result ordering deterministic.
package entity

// Field is one weighted, named text field extracted from an entity for
// indexing. Weight follows the convention that heavier fields pull match
// scores closer to 0 (more relevant).
type Field struct {
	Name   string
	Text   string
	Weight float64
}

// Descriptor describes how one entity type participates in indexing.
type Descriptor struct {
	// Type is the discriminator this descriptor serves.
	Type Type
	// Fields extracts the weighted index fields from an entity of this type.
	// Empty fields are permitted; the index skips them.
	Fields func(Entity) []Field
}

var (
	descriptors = make(map[Type]Descriptor)
	order       []Type
)

// register adds a descriptor. Called from init() in each per-type file.
func register(d Descriptor) {
	if _, exists := descriptors[d.Type]; exists {
		panic("entity: descriptor already registered: " + string(d.Type))
	}
	descriptors[d.Type] = d
	order = append(order, d.Type)
}

// Describe returns the descriptor for a type.
func Describe(t Type) (Descriptor, bool) {
	d, ok := descriptors[t]
	return d, ok
}

// Types returns all registered entity types in registration order.
func Types() []Type {
	out := make([]Type, len(order))
	copy(out, order)
	return out
}
