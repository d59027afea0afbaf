package gen

import (
	"errors"
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
)

var (
	ErrNotConstant = errors.New("expression is not a self-contained constant")
	ErrDerivedMiss = errors.New("derived lookup failed")
)

// constEval evaluates a self-contained constant expression using the
// standard constant evaluator. Expressions may only reference literals and
// universe-scope names, the same restriction a constant context imposes
func constEval(expr string) (constant.Value, error) {
	tv, err := types.Eval(token.NewFileSet(), nil, token.NoPos, expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (%s)", ErrNotConstant, expr, err)
	}
	if tv.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotConstant, expr)
	}
	return tv.Value, nil
}

// fold performs the table's lookup at generation time, scanning the entries
// from the first and returning the value expression of the first entry
// whose constant key equals the one provided
func (t *TableDef) fold(key constant.Value) (string, bool, error) {
	for i, e := range t.Entries {
		k, err := constEval(e.Key)
		if err != nil {
			return "", false, fmt.Errorf("entry %d: %w", i, err)
		}
		if constantEqual(k, key) {
			return e.Value, true, nil
		}
	}
	return "", false, nil
}

func (t *TableDef) resolveDerived() ([]*derivedConst, error) {
	res := make([]*derivedConst, len(t.Derived))
	for i, d := range t.Derived {
		key, err := constEval(d.Key)
		if err != nil {
			return nil, err
		}
		v, ok, err := t.fold(key)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrDerivedMiss, d.message())
		}
		res[i] = &derivedConst{
			Name:  d.Name,
			Value: v,
		}
	}
	return res, nil
}

func (d *DerivedDef) message() string {
	if d.Message != "" {
		return d.Message
	}
	return fmt.Sprintf("no entry for key %s", d.Key)
}

// shadowed reports the positions of entries whose constant key repeats an
// earlier constant key. Such entries still occupy table slots but can never
// win a lookup. Keys that cannot be evaluated here are skipped
func (t *TableDef) shadowed() []int {
	var res []int
	seen := make([]constant.Value, 0, len(t.Entries))
	for i, e := range t.Entries {
		k, err := constEval(e.Key)
		if err != nil {
			continue
		}
		for _, p := range seen {
			if constantEqual(p, k) {
				res = append(res, i)
				break
			}
		}
		seen = append(seen, k)
	}
	return res
}

// constantEqual compares two constants, unifying the numeric kinds the way
// untyped constants unify. Mismatched kinds compare unequal rather than
// panicking inside go/constant
func constantEqual(l, r constant.Value) bool {
	if l.Kind() == constant.Unknown || r.Kind() == constant.Unknown {
		return false
	}
	if isNumeric(l) != isNumeric(r) {
		return false
	}
	if !isNumeric(l) && l.Kind() != r.Kind() {
		return false
	}
	return constant.Compare(l, token.EQL, r)
}

func isNumeric(v constant.Value) bool {
	switch v.Kind() {
	case constant.Int, constant.Float, constant.Complex:
		return true
	default:
		return false
	}
}
