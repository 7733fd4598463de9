package animalshogi

import (
	"github.com/gorgonia/dobutsu/game"
	"gorgonia.org/vecf32"
)

const (
	piecePlanes   = 2 * (int(maxKind) - 1)
	reservePlanes = 2 * numReserveKinds

	// Features is the number of planes produced by EncodeFeatures.
	Features = piecePlanes + reservePlanes + 1

	// EncodedLen is the length of the slice produced by EncodeFeatures.
	EncodedLen = Features * squares
)

// EncodeFeatures encodes a state as feature planes, seen from the side to move. The first five
// planes mark the mover's Chicks, Elephants, Giraffes, Hens and Lion; the next five the opponent's.
// Then come the number of each reserve kind held by the mover and by the opponent, halved, and
// finally a plane holding the side to move in the orientation of the initial board (1 for First,
// -1 for Second), so canonical states of Second still encode -1.
func EncodeFeatures(s game.State) []float32 {
	st := mustState(s)
	b := st.b
	if st.nextToMove == game.Second {
		b = b.flip()
	}
	retVal := make([]float32, EncodedLen)

	for f := 0; f < Files; f++ {
		for r := 0; r < Ranks; r++ {
			p := b.grid[f][r]
			if p.IsEmpty() {
				continue
			}
			plane := int(p.Kind) - 1
			if p.Owner != game.First {
				plane += int(maxKind) - 1
			}
			retVal[plane*squares+f*Ranks+r] = 1
		}
	}

	reserves := retVal[piecePlanes*squares : (piecePlanes+reservePlanes)*squares]
	for o := range b.reserve {
		for i, n := range b.reserve[o] {
			plane := reserves[(o*numReserveKinds+i)*squares : (o*numReserveKinds+i+1)*squares]
			for j := range plane {
				plane[j] = float32(n)
			}
		}
	}
	vecf32.Scale(reserves, 0.5)

	toMove := retVal[(Features-1)*squares:]
	for j := range toMove {
		toMove[j] = float32(st.absoluteToMove())
	}
	return retVal
}
