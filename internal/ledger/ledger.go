// Package ledger implements the in-memory cereal storage.
//
// A Ledger keeps one container per cereal. Opening a container reserves
// ContainerCapacity units of the shared StorageCapacity no matter how much
// is actually stored in it; the reservation is released only when the empty
// container is removed. Stored amounts therefore never exceed either the
// container or the storage capacity.
package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/cerealstore/pkg/types"
)

// Ledger implements types.CerealStorage. It is not safe for concurrent use.
type Ledger struct {
	id                string
	containerCapacity decimal.Decimal
	storageCapacity   decimal.Decimal

	amounts map[types.Cereal]decimal.Decimal
	order   []types.Cereal // containers in the order they were opened

	log zerolog.Logger
}

var _ types.CerealStorage = (*Ledger)(nil)

// Option configures a Ledger at construction.
type Option func(*Ledger)

// WithLogger sets the logger used for container and rejection events.
// The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Ledger) {
		l.log = log
	}
}

// New creates an empty Ledger with the capacities in cfg.
// Returns an error wrapping ErrInvalidConfiguration if cfg does not validate.
func New(cfg types.Config, opts ...Option) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Ledger{
		id:                generateID(),
		containerCapacity: cfg.ContainerCapacity,
		storageCapacity:   cfg.StorageCapacity,
		amounts:           make(map[types.Cereal]decimal.Decimal),
		log:               zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.With().Str("ledger", l.id).Logger()

	l.log.Debug().
		Str("container_capacity", l.containerCapacity.String()).
		Str("storage_capacity", l.storageCapacity.String()).
		Msg("ledger created")
	return l, nil
}

// generateID returns a UUID v7 identifying the ledger in log output.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// ID returns the identifier attached to this ledger's log events.
func (l *Ledger) ID() string {
	return l.id
}

func (l *Ledger) ContainerCapacity() decimal.Decimal {
	return l.containerCapacity
}

func (l *Ledger) StorageCapacity() decimal.Decimal {
	return l.storageCapacity
}

// AddCereal adds amount of cereal and returns the leftover that did not fit
// into the container.
func (l *Ledger) AddCereal(cereal types.Cereal, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := checkAmount(amount); err != nil {
		return decimal.Zero, err
	}
	if err := checkCereal(cereal); err != nil {
		return decimal.Zero, err
	}

	current, open := l.amounts[cereal]
	if !open && !l.canOpenContainer() {
		l.log.Debug().
			Stringer("cereal", cereal).
			Str("reserved", l.ReservedStorage().String()).
			Msg("no room for a new container")
		return decimal.Zero, fmt.Errorf("%w: no room for a container of %s (reserved %s of %s)",
			types.ErrCapacityExceeded, cereal, l.ReservedStorage(), l.storageCapacity)
	}

	if !open {
		l.order = append(l.order, cereal)
		l.log.Debug().Stringer("cereal", cereal).Msg("container opened")
	}

	space := l.containerCapacity.Sub(current)
	if amount.LessThanOrEqual(space) {
		l.amounts[cereal] = current.Add(amount)
		return decimal.Zero, nil
	}
	l.amounts[cereal] = l.containerCapacity
	return amount.Sub(space), nil
}

// GetCereal withdraws up to amount of cereal and returns what was taken.
func (l *Ledger) GetCereal(cereal types.Cereal, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := checkAmount(amount); err != nil {
		return decimal.Zero, err
	}
	if err := checkCereal(cereal); err != nil {
		return decimal.Zero, err
	}

	current := l.GetAmount(cereal)
	if current.IsZero() {
		return decimal.Zero, nil
	}

	if amount.LessThanOrEqual(current) {
		l.amounts[cereal] = current.Sub(amount)
		return amount, nil
	}
	l.amounts[cereal] = decimal.Zero
	return current, nil
}

// RemoveContainer closes the container of cereal if it is empty.
func (l *Ledger) RemoveContainer(cereal types.Cereal) bool {
	current, open := l.amounts[cereal]
	if current.IsPositive() {
		return false
	}
	if !open {
		return true
	}

	delete(l.amounts, cereal)
	for i, c := range l.order {
		if c == cereal {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	l.log.Debug().Stringer("cereal", cereal).Msg("container removed")
	return true
}

func (l *Ledger) GetAmount(cereal types.Cereal) decimal.Decimal {
	if v, ok := l.amounts[cereal]; ok {
		return v
	}
	return decimal.Zero
}

func (l *Ledger) GetSpace(cereal types.Cereal) decimal.Decimal {
	return l.containerCapacity.Sub(l.GetAmount(cereal))
}

func (l *Ledger) UsedStorage() decimal.Decimal {
	used := decimal.Zero
	for _, v := range l.amounts {
		used = used.Add(v)
	}
	return used
}

// ReservedStorage returns the storage capacity taken by open containers.
func (l *Ledger) ReservedStorage() decimal.Decimal {
	return l.containerCapacity.Mul(decimal.NewFromInt(int64(len(l.order))))
}

func (l *Ledger) Containers() []types.Cereal {
	out := make([]types.Cereal, len(l.order))
	copy(out, l.order)
	return out
}

// canOpenContainer reports whether one more container fits in the storage.
func (l *Ledger) canOpenContainer() bool {
	return l.ReservedStorage().Add(l.containerCapacity).LessThanOrEqual(l.storageCapacity)
}

func checkAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount %s is negative", types.ErrInvalidArgument, amount)
	}
	return nil
}

func checkCereal(cereal types.Cereal) error {
	if !cereal.Valid() {
		return fmt.Errorf("%w: %q", types.ErrUnknownCereal, string(cereal))
	}
	return nil
}
