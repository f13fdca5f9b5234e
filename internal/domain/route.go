package domain

// Route connects two stations. The (source, destination) pair is unique,
// enforced by the storage layer.
type Route struct {
	ID            int64 `json:"id" db:"id"`
	SourceID      int64 `json:"source" db:"source_id"`
	DestinationID int64 `json:"destination" db:"destination_id"`
	Distance      int   `json:"distance" db:"distance"`

	Source      *Station `json:"-" db:"-"`
	Destination *Station `json:"-" db:"-"`
}
