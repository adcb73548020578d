package types

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config holds the capacities a storage is built with.
type Config struct {
	ContainerCapacity decimal.Decimal `json:"container_capacity" yaml:"container_capacity"`
	StorageCapacity   decimal.Decimal `json:"storage_capacity" yaml:"storage_capacity"`
}

// NewConfig builds a Config from float capacities.
func NewConfig(containerCapacity, storageCapacity float64) Config {
	return Config{
		ContainerCapacity: decimal.NewFromFloat(containerCapacity),
		StorageCapacity:   decimal.NewFromFloat(storageCapacity),
	}
}

// Validate checks that the capacities are usable. It returns an error
// wrapping ErrInvalidConfiguration on failure.
func (c Config) Validate() error {
	if c.ContainerCapacity.IsNegative() {
		return fmt.Errorf("%w: container capacity %s is negative",
			ErrInvalidConfiguration, c.ContainerCapacity)
	}
	if c.StorageCapacity.LessThan(c.ContainerCapacity) {
		return fmt.Errorf("%w: storage capacity %s is less than container capacity %s",
			ErrInvalidConfiguration, c.StorageCapacity, c.ContainerCapacity)
	}
	return nil
}
