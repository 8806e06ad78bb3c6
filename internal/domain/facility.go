package domain

// Facility is a shared bookable amenity (court, pool, hall).
// Owned by the external facility directory; read-only here.
type Facility struct {
	ID   int64
	Name string
}
