package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// TileID is a value object representing a unique tile identifier
// Value objects are immutable and have no identity beyond their value
type TileID struct {
	value string
}

// NewTileID creates a new random TileID
func NewTileID() TileID {
	return TileID{value: uuid.New().String()}
}

// NewTileIDFromString creates a TileID from an existing string
func NewTileIDFromString(id string) (TileID, error) {
	if id == "" {
		return TileID{}, errors.New("tile ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return TileID{}, errors.New("tile ID must be a valid UUID")
	}
	return TileID{value: id}, nil
}

// String returns the string representation of the TileID
func (id TileID) String() string {
	return id.value
}

// Equals checks if two TileIDs are equal
func (id TileID) Equals(other TileID) bool {
	return id.value == other.value
}

// IsZero checks if the TileID is the zero value
func (id TileID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id TileID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *TileID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("TileID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
