package arena

import (
	"context"
	"math/rand"

	"github.com/ChizhovVadim/VariantGo/pkg/common"
	"github.com/ChizhovVadim/VariantGo/pkg/variants"
)

func loadOpenings(
	ctx context.Context,
	v *variants.Variant,
	config Config,
	gameInfos chan<- gameInfo,
) error {
	var rnd = rand.New(rand.NewSource(config.Seed))
	for i := 0; i < config.Openings; i++ {
		var opening = randomOpening(v, config.OpeningPlies, rnd)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}

// randomOpening plays random legal moves from the start position, stopping
// early if the game ends. Moves are stored in the "e2e4" form.
func randomOpening(v *variants.Variant, plies int, rnd *rand.Rand) []string {
	var b = v.NewGame()
	var result []string
	for len(result) < plies {
		var moves = common.GenerateLegalMoves(b).Moves
		if len(moves) == 0 {
			break
		}
		var m = moves[rnd.Intn(len(moves))]
		b.MakeMove(m)
		if len(common.GenerateLegalMoves(b).Moves) == 0 {
			if err := b.UnmakeMove(); err != nil {
				panic(err)
			}
			break
		}
		result = append(result, v.MoveCode(m))
	}
	return result
}
