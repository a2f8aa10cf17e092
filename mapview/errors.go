package mapview

import "errors"

var (
	// ErrKeyNotFound indicates Get was asked for a key absent from the backing map.
	ErrKeyNotFound = errors.New("mapview: key not found in MapView")
)
