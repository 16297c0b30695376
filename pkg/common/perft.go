package common

// Perft counts the leaf positions of the legal move tree to the given depth.
func Perft(b *Board, depth int) int {
	if depth <= 0 {
		return 1
	}
	var moves = GenerateLegalMoves(b).Moves
	if depth == 1 {
		return len(moves)
	}
	var result = 0
	for _, m := range moves {
		b.MakeMove(m)
		result += Perft(b, depth-1)
		b.mustUnmake()
	}
	return result
}
