package upgrade

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/star-defense/stat"
)

// ErrUnknownOp is returned when a modifier carries an undefined operation
var ErrUnknownOp = errors.New("unknown modifier op")

// Op is the arithmetic a Modifier performs on its field
type Op int

const (
	OpAdd    Op = iota // field += value
	OpMul              // field *= value
	OpSet              // field = value
	OpMax              // field = max(field, value)
	OpRefill           // HP = MaxHP, value ignored
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpSet:
		return "set"
	case OpMax:
		return "max"
	case OpRefill:
		return "refill"
	}
	return fmt.Sprintf("op(%d)", int(o))
}

// Modifier is one declarative change to a stat field
type Modifier struct {
	Field stat.Field
	Op    Op
	Value float64
}

// Effect is the ordered list of modifiers an upgrade applies
type Effect []Modifier

// Add, Mul, Set, Max and Refill build modifiers for catalog definitions
func Add(f stat.Field, v float64) Modifier { return Modifier{Field: f, Op: OpAdd, Value: v} }
func Mul(f stat.Field, v float64) Modifier { return Modifier{Field: f, Op: OpMul, Value: v} }
func Set(f stat.Field, v float64) Modifier { return Modifier{Field: f, Op: OpSet, Value: v} }
func Max(f stat.Field, v float64) Modifier { return Modifier{Field: f, Op: OpMax, Value: v} }
func Refill() Modifier                     { return Modifier{Field: stat.FieldHP, Op: OpRefill} }

// Apply computes the effect on a copy of rec and commits only if every modifier succeeds
// On error rec is left unchanged
func (e Effect) Apply(rec *stat.Record) error {
	work := *rec
	for i, m := range e {
		if err := m.apply(&work); err != nil {
			return fmt.Errorf("modifier %d (%s %s): %w", i, m.Op, m.Field, err)
		}
	}
	*rec = work
	return nil
}

// validate checks the effect without a record, used at catalog construction
func (e Effect) validate() error {
	if len(e) == 0 {
		return ErrEmptyEffect
	}
	for i, m := range e {
		if !m.Field.Valid() {
			return fmt.Errorf("modifier %d: %w", i, stat.ErrUnknownField)
		}
		if m.Op < OpAdd || m.Op > OpRefill {
			return fmt.Errorf("modifier %d: %w", i, ErrUnknownOp)
		}
		if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
			return fmt.Errorf("modifier %d: non-finite value", i)
		}
	}
	return nil
}

func (m Modifier) apply(rec *stat.Record) error {
	if m.Op == OpRefill {
		rec.HP = rec.MaxHP
		return nil
	}

	cur, err := rec.Get(m.Field)
	if err != nil {
		return err
	}

	var next float64
	switch m.Op {
	case OpAdd:
		next = cur + m.Value
	case OpMul:
		next = cur * m.Value
	case OpSet:
		next = m.Value
	case OpMax:
		next = math.Max(cur, m.Value)
	default:
		return ErrUnknownOp
	}
	return rec.Set(m.Field, next)
}
