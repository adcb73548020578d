package script

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/cerealstore/internal/ledger"
	"github.com/mesh-intelligence/cerealstore/pkg/types"
)

// Result is the outcome of one executed step.
type Result struct {
	Index   int              `json:"step"`
	Op      Op               `json:"op"`
	Cereal  types.Cereal     `json:"cereal,omitempty"`
	Amount  *decimal.Decimal `json:"amount,omitempty"`
	Value   *decimal.Decimal `json:"value,omitempty"`
	Removed *bool            `json:"removed,omitempty"`
	Text    string           `json:"text,omitempty"`
}

// String renders the result as a single CLI line, or the storage listing
// for show.
func (r Result) String() string {
	switch r.Op {
	case OpShow:
		return strings.TrimSuffix(r.Text, "\n")
	case OpAdd:
		return fmt.Sprintf("add %s %s: leftover %s", r.Cereal.Local(), ledger.FormatAmount(*r.Amount), ledger.FormatAmount(*r.Value))
	case OpGet:
		return fmt.Sprintf("get %s %s: taken %s", r.Cereal.Local(), ledger.FormatAmount(*r.Amount), ledger.FormatAmount(*r.Value))
	case OpRemove:
		if *r.Removed {
			return fmt.Sprintf("remove %s: removed", r.Cereal.Local())
		}
		return fmt.Sprintf("remove %s: not empty, kept", r.Cereal.Local())
	case OpAmount:
		return fmt.Sprintf("amount %s: %s", r.Cereal.Local(), ledger.FormatAmount(*r.Value))
	case OpSpace:
		return fmt.Sprintf("space %s: %s", r.Cereal.Local(), ledger.FormatAmount(*r.Value))
	default:
		return string(r.Op)
	}
}

// Execute runs the plan's steps in order against s. It stops at the first
// step the storage rejects and returns the results gathered so far together
// with the error, which names the failing step.
func Execute(s types.CerealStorage, p *Plan) ([]Result, error) {
	results := make([]Result, 0, len(p.Steps))
	for i, step := range p.Steps {
		r, err := Run(s, step)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		r.Index = i + 1
		results = append(results, r)
	}
	return results, nil
}

// Run executes a single validated step against s.
func Run(s types.CerealStorage, step Step) (Result, error) {
	r := Result{Op: step.Op, Cereal: step.cereal}
	if step.Amount != nil {
		amount := step.Amount.Decimal
		r.Amount = &amount
	}

	switch step.Op {
	case OpAdd:
		left, err := s.AddCereal(step.cereal, step.Amount.Decimal)
		if err != nil {
			return Result{}, err
		}
		r.Value = &left
	case OpGet:
		taken, err := s.GetCereal(step.cereal, step.Amount.Decimal)
		if err != nil {
			return Result{}, err
		}
		r.Value = &taken
	case OpRemove:
		removed := s.RemoveContainer(step.cereal)
		r.Removed = &removed
	case OpAmount:
		v := s.GetAmount(step.cereal)
		r.Value = &v
	case OpSpace:
		v := s.GetSpace(step.cereal)
		r.Value = &v
	case OpShow:
		r.Text = s.String()
	default:
		return Result{}, fmt.Errorf("%w: unknown op %q", ErrInvalidStep, step.Op)
	}
	return r, nil
}
