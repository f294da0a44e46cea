package libsticks

import (
	"github.com/2x3systems/sticks/sticks"
	"github.com/plan-systems/klog"
)

// CensusResult summarizes every legal next move of a grid.
type CensusResult struct {
	LegalMoves    int         // requests the grid would accept
	Outcomes      int         // distinct grids those requests produce
	Completing    int         // requests that would complete the grid
	MaxEliminated int         // largest eliminated count of any request
	Best          sticks.Move // first request reaching MaxEliminated
}

var bothSigns = [2]sticks.Sign{sticks.Pos, sticks.Neg}

// Census tries every open cell with every allowed sign on a copy of g and tallies the results.
// g itself is not modified.
func Census(g *Grid) (CensusResult, error) {
	var res CensusResult

	set := NewGridSet()
	defer set.Close()

	for r := 0; r < g.dim; r++ {
		for c := 0; c < g.dim; c++ {
			cur := g.Cell(r, c)
			if r == c || !cur.IsOpen() {
				continue
			}
			for _, sign := range bothSigns {
				if cur.IsFixed() && cur.Sign() != sign {
					continue
				}

				trial := g.Clone()
				n, err := trial.Connect(r, c, sign)
				if err != nil {
					return res, err
				}

				res.LegalMoves++
				if n > res.MaxEliminated || res.LegalMoves == 1 {
					res.MaxEliminated = n
					res.Best = sticks.Move{From: r, To: c, Sign: sign}
				}
				if trial.IsComplete() {
					res.Completing++
				}

				added, err := set.TryAdd(trial)
				if err != nil {
					return res, err
				}
				if added {
					res.Outcomes++
				}
			}
		}
	}

	klog.V(2).Infof("census: %d legal moves, %d distinct outcomes, %d completing", res.LegalMoves, res.Outcomes, res.Completing)
	return res, nil
}
