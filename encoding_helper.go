package dobutsu

import (
	"github.com/gorgonia/dobutsu/game"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/vecf32"
)

// SymmetryAugmenter creates an Augmenter that adds an example for every symmetry of the game.
// The policy of each symmetry is renormalised to sum to 1.
func SymmetryAugmenter(g game.Game, enc GameEncoder) Augmenter {
	return func(s game.State, ex Example) []Example {
		syms := g.Symmetries(s, ex.Policy)
		retVal := make([]Example, 0, len(syms))
		for _, sym := range syms {
			aug := ex
			aug.Board = enc(sym.State)
			aug.Policy = make([]float32, len(sym.Policy))
			copy(aug.Policy, sym.Policy)
			if sum := vecf32.Sum(aug.Policy); sum > 0 {
				vecf32.ScaleInv(aug.Policy, sum)
			}
			retVal = append(retVal, aug)
		}
		return retVal
	}
}

// Batch packs examples into dense tensors of shape (n, features, height, width), (n, actionSpace) and (n).
func Batch(examples []Example, features, height, width int) (Xs, Policies, Values *tensor.Dense, err error) {
	if len(examples) == 0 {
		return nil, nil, nil, errors.New("no examples to batch")
	}
	boardSize := features * height * width
	actionSpace := len(examples[0].Policy)

	XsBacking := make([]float32, 0, len(examples)*boardSize)
	PoliciesBacking := make([]float32, 0, len(examples)*actionSpace)
	ValuesBacking := make([]float32, 0, len(examples))
	for i, ex := range examples {
		if len(ex.Board) != boardSize {
			return nil, nil, nil, errors.Errorf("example %d has a board of %d values. Expected %d", i, len(ex.Board), boardSize)
		}
		if len(ex.Policy) != actionSpace {
			return nil, nil, nil, errors.Errorf("example %d has a policy of %d values. Expected %d", i, len(ex.Policy), actionSpace)
		}
		XsBacking = append(XsBacking, ex.Board...)
		PoliciesBacking = append(PoliciesBacking, ex.Policy...)
		ValuesBacking = append(ValuesBacking, ex.Value)
	}

	n := len(examples)
	Xs = tensor.New(tensor.WithBacking(XsBacking), tensor.WithShape(n, features, height, width))
	Policies = tensor.New(tensor.WithBacking(PoliciesBacking), tensor.WithShape(n, actionSpace))
	Values = tensor.New(tensor.WithBacking(ValuesBacking), tensor.WithShape(n))
	return Xs, Policies, Values, nil
}
