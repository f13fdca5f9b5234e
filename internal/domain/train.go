package domain

// TrainType is a reference-data category (express, night, freight...).
type TrainType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Train carries its booking capacity: cargo_num wagons with places_in_cargo
// seats each. Both may be configured as 0, in which case the train simply
// cannot be booked.
type Train struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	CargoNum      int    `json:"cargo_num" db:"cargo_num"`
	PlacesInCargo int    `json:"places_in_cargo" db:"places_in_cargo"`
	TrainTypeID   int64  `json:"train_type" db:"train_type_id"`

	TrainType *TrainType `json:"-" db:"-"`
}

// Capacity returns the bounds tickets are validated against.
func (t *Train) Capacity() TrainCapacity {
	return TrainCapacity{
		CargoNum:      t.CargoNum,
		PlacesInCargo: t.PlacesInCargo,
	}
}
