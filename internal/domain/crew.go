package domain

// Crew is a crew member assignable to journeys.
type Crew struct {
	ID        int64  `json:"id" db:"id"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
}

// FullName is the derived read-only view used across the API surface.
func (c *Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}
