package types

import (
	"errors"

	"github.com/shopspring/decimal"
)

// CerealStorage is a bounded store of cereals. Each cereal lives in its
// own container of ContainerCapacity; all open containers together must
// fit in StorageCapacity.
//
// Implementations are not safe for concurrent use; callers that share a
// storage between goroutines must serialize access themselves.
type CerealStorage interface {
	// ContainerCapacity returns the capacity of a single container.
	ContainerCapacity() decimal.Decimal

	// StorageCapacity returns the total capacity shared by all containers.
	StorageCapacity() decimal.Decimal

	// AddCereal puts amount of cereal into its container, opening the
	// container on first use. Returns the part of amount that did not fit.
	// Returns ErrInvalidArgument for a negative amount and
	// ErrCapacityExceeded when a new container cannot be opened.
	AddCereal(cereal Cereal, amount decimal.Decimal) (decimal.Decimal, error)

	// GetCereal takes up to amount of cereal out of its container and
	// returns what was actually taken. An emptied container stays open.
	// Returns ErrInvalidArgument for a negative amount.
	GetCereal(cereal Cereal, amount decimal.Decimal) (decimal.Decimal, error)

	// RemoveContainer closes the container for cereal if it is empty.
	// Returns false, leaving the storage untouched, if it still holds stock.
	RemoveContainer(cereal Cereal) bool

	// GetAmount returns how much of cereal is stored, zero if none.
	GetAmount(cereal Cereal) decimal.Decimal

	// GetSpace returns how much more of cereal its container can hold.
	GetSpace(cereal Cereal) decimal.Decimal

	// UsedStorage returns the sum of all stored amounts.
	UsedStorage() decimal.Decimal

	// Containers returns the cereals with an open container, in the order
	// the containers were opened.
	Containers() []Cereal

	// String renders the configured capacities followed by one line per
	// open container.
	String() string
}

// Storage errors.
var (
	ErrInvalidConfiguration = errors.New("invalid storage configuration")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrCapacityExceeded     = errors.New("storage capacity exceeded")
	ErrUnknownCereal        = errors.New("unknown cereal")
)
