// Package script runs sequences of storage operations. A plan is a YAML
// document listing steps; the shell uses the same steps written one per
// line ("add buckwheat 3").
package script

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/cerealstore/pkg/types"
)

// Op names a storage operation.
type Op string

// Supported operations.
const (
	OpAdd    Op = "add"
	OpGet    Op = "get"
	OpRemove Op = "remove"
	OpAmount Op = "amount"
	OpSpace  Op = "space"
	OpShow   Op = "show"
)

// Plan errors.
var (
	ErrInvalidStep = errors.New("invalid step")
	ErrEmptyPlan   = errors.New("plan has no steps")
)

// Quantity is a decimal that decodes from any YAML scalar, so both
// "amount: 3" and "amount: '2.5'" are accepted.
type Quantity struct {
	decimal.Decimal
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a number", node.Line)
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: amount %q is not a number", node.Line, node.Value)
	}
	q.Decimal = d
	return nil
}

// Plan is a sequence of steps run against one storage. The optional
// capacities override the configured ones.
type Plan struct {
	ContainerCapacity *Quantity `yaml:"container_capacity,omitempty"`
	StorageCapacity   *Quantity `yaml:"storage_capacity,omitempty"`
	Steps             []Step    `yaml:"steps"`
}

// Step is a single operation. Cereal is required by every op but show;
// Amount only by add and get.
type Step struct {
	Op     Op        `yaml:"op"`
	Cereal string    `yaml:"cereal,omitempty"`
	Amount *Quantity `yaml:"amount,omitempty"`

	cereal types.Cereal
}

// Parse decodes and validates a plan. Unknown fields are rejected.
func Parse(r io.Reader) (*Plan, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Plan
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPlan
		}
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if len(p.Steps) == 0 {
		return nil, ErrEmptyPlan
	}
	for i := range p.Steps {
		if err := p.Steps[i].validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &p, nil
}

// Apply returns cfg with the plan's capacity overrides applied.
func (p *Plan) Apply(cfg types.Config) types.Config {
	if p.ContainerCapacity != nil {
		cfg.ContainerCapacity = p.ContainerCapacity.Decimal
	}
	if p.StorageCapacity != nil {
		cfg.StorageCapacity = p.StorageCapacity.Decimal
	}
	return cfg
}

// ParseLine parses one shell command such as "get rice 1.5" into a Step.
func ParseLine(line string) (Step, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Step{}, fmt.Errorf("%w: empty command", ErrInvalidStep)
	}

	s := Step{Op: Op(strings.ToLower(fields[0]))}
	args := fields[1:]
	switch s.Op {
	case OpAdd, OpGet:
		if len(args) != 2 {
			return Step{}, fmt.Errorf("%w: usage: %s <cereal> <amount>", ErrInvalidStep, s.Op)
		}
		d, err := decimal.NewFromString(args[1])
		if err != nil {
			return Step{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalidStep, args[1])
		}
		s.Cereal = args[0]
		s.Amount = &Quantity{Decimal: d}
	case OpRemove, OpAmount, OpSpace:
		if len(args) != 1 {
			return Step{}, fmt.Errorf("%w: usage: %s <cereal>", ErrInvalidStep, s.Op)
		}
		s.Cereal = args[0]
	case OpShow:
		if len(args) != 0 {
			return Step{}, fmt.Errorf("%w: usage: show", ErrInvalidStep)
		}
	}

	if err := s.validate(); err != nil {
		return Step{}, err
	}
	return s, nil
}

// validate checks the step's fields against its op and resolves the cereal.
func (s *Step) validate() error {
	switch s.Op {
	case OpAdd, OpGet:
		if s.Amount == nil {
			return fmt.Errorf("%w: %s requires an amount", ErrInvalidStep, s.Op)
		}
	case OpRemove, OpAmount, OpSpace:
		if s.Amount != nil {
			return fmt.Errorf("%w: %s takes no amount", ErrInvalidStep, s.Op)
		}
	case OpShow:
		if s.Cereal != "" || s.Amount != nil {
			return fmt.Errorf("%w: show takes no cereal or amount", ErrInvalidStep)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidStep, s.Op)
	}

	c, err := types.ParseCereal(s.Cereal)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStep, err)
	}
	s.cereal = c
	return nil
}

// String renders the step in shell syntax.
func (s Step) String() string {
	switch s.Op {
	case OpShow:
		return string(s.Op)
	case OpAdd, OpGet:
		return fmt.Sprintf("%s %s %s", s.Op, s.cereal, s.Amount.String())
	default:
		return fmt.Sprintf("%s %s", s.Op, s.cereal)
	}
}
