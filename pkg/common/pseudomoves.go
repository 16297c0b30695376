package common

type VisionKind int

const (
	VisionLeap VisionKind = iota
	VisionSlide
	VisionHopSlide
	VisionHopHurdle
	VisionHopLanding
	visionKinds
)

// Vision records that a piece sees a square. Path and Index locate the square
// on the slide it was reached by. Leaps have no path.
type Vision struct {
	Kind  VisionKind
	Piece Piece
	From  Square
	Path  []Square
	Index int
}

// Attacks reports whether the piece could capture on the seen square.
func (v Vision) Attacks() bool {
	switch v.Kind {
	case VisionLeap, VisionSlide, VisionHopLanding:
		return true
	}
	return false
}

// PseudoMoves holds the pseudo-legal moves and the vision of both teams.
type PseudoMoves struct {
	moves  [2][]Move
	vision [2][][]Vision
}

func NewPseudoMoves(b *Board) *PseudoMoves {
	var num = b.sig.Num()
	var pm = &PseudoMoves{
		vision: [2][][]Vision{make([][]Vision, num), make([][]Vision, num)},
	}
	var w = newWalker(b)
	w.passant = passantTargets(b)
	w.unique = true
	var piece Piece
	w.onVision = func(sq Square, v Vision) {
		pm.vision[piece.Team][sq] = append(pm.vision[piece.Team][sq], v)
	}
	w.onMove = func(m Move) {
		pm.moves[piece.Team] = append(pm.moves[piece.Team], m)
	}
	for i, p := range b.squares {
		if p.IsEmpty() {
			continue
		}
		piece = p
		w.walk(Square(i), p)
	}
	for _, team := range [...]Team{White, Black} {
		pm.moves[team] = append(pm.moves[team], castles(b, team)...)
	}
	return pm
}

func (pm *PseudoMoves) Moves(team Team) []Move {
	return pm.moves[team]
}

func (pm *PseudoMoves) Vision(team Team, sq Square) []Vision {
	return pm.vision[team][sq]
}

// Attacked reports whether a piece of team by attacks sq.
func (pm *PseudoMoves) Attacked(by Team, sq Square) bool {
	for _, v := range pm.vision[by][sq] {
		if v.Attacks() {
			return true
		}
	}
	return false
}

// AttacksSquare walks the geometry of the piece standing on from and reports
// whether it attacks target on the current board.
func AttacksSquare(b *Board, from Square, piece Piece, target Square) bool {
	var found bool
	var w = newWalker(b)
	w.onVision = func(sq Square, v Vision) {
		if sq == target && v.Attacks() {
			found = true
		}
	}
	w.walk(from, piece)
	return found
}

func passantTargets(b *Board) map[Square]Square {
	var result map[Square]Square
	var ply = b.MoveNumber() - 1
	for i, p := range b.squares {
		if p.Kind == Pawn && p.Passant.Active && p.Passant.Ply == ply && p.Team != b.turn {
			if result == nil {
				result = make(map[Square]Square)
			}
			result[p.Passant.Skipped] = Square(i)
		}
	}
	return result
}

type walker struct {
	b        *Board
	sig      *Signature
	passant  map[Square]Square
	onVision func(Square, Vision)
	onMove   func(Move)
	unique   bool

	stamp       int
	visionStamp [visionKinds][]int
	moveStamp   []int
}

func newWalker(b *Board) *walker {
	return &walker{b: b, sig: b.sig}
}

func (w *walker) walk(from Square, p Piece) {
	w.stamp++
	switch p.Kind {
	case Pawn:
		w.walkPawn(from, p)
	case Knight:
		w.walkLeaps(from, p, w.sig.KnightMoves(from))
	case King:
		w.walkLeaps(from, p, w.sig.KingMoves(from))
	case Bishop:
		w.walkSlides(from, p, w.sig.DiagSlides(from))
	case Rook:
		w.walkSlides(from, p, w.sig.FlatSlides(from))
	case Queen:
		w.walkSlides(from, p, w.sig.FlatSlides(from))
		w.walkSlides(from, p, w.sig.DiagSlides(from))
	case Grasshopper:
		w.walkHops(from, p, w.sig.FlatSlides(from))
		w.walkHops(from, p, w.sig.DiagSlides(from))
	}
}

// see records vision. With unique set each piece reports a square once per kind.
func (w *walker) see(sq Square, v Vision) {
	if !w.unique {
		w.onVision(sq, v)
		return
	}
	var stamps = w.visionStamp[v.Kind]
	if stamps == nil {
		stamps = make([]int, w.sig.Num())
		w.visionStamp[v.Kind] = stamps
	}
	if stamps[sq] == w.stamp {
		return
	}
	stamps[sq] = w.stamp
	w.onVision(sq, v)
}

// target reports whether a move to sq is new for the current piece.
func (w *walker) target(sq Square) bool {
	if w.onMove == nil {
		return false
	}
	if w.moveStamp == nil {
		w.moveStamp = make([]int, w.sig.Num())
	}
	if w.moveStamp[sq] == w.stamp {
		return false
	}
	w.moveStamp[sq] = w.stamp
	return true
}

func (w *walker) capturable(p, victim Piece) bool {
	return !victim.IsEmpty() && victim.Team != p.Team && !victim.Kind.IsRoyal()
}

func (w *walker) emit(from, to Square, p, victim Piece) {
	if !w.target(to) {
		return
	}
	var moved = p
	moved.Moved = true
	w.onMove(Move{
		Kind:         MoveStandard,
		Piece:        p,
		ToPiece:      moved,
		From:         from,
		To:           to,
		Victim:       victim,
		VictimSquare: to,
	})
}

func (w *walker) walkLeaps(from Square, p Piece, targets []Square) {
	for _, to := range targets {
		w.see(to, Vision{Kind: VisionLeap, Piece: p, From: from, Index: -1})
		var q = w.b.squares[to]
		if q.IsEmpty() || w.capturable(p, q) {
			w.emit(from, to, p, q)
		}
	}
}

func (w *walker) walkSlides(from Square, p Piece, slides [][]Square) {
	for _, path := range slides {
		for i, to := range path {
			w.see(to, Vision{Kind: VisionSlide, Piece: p, From: from, Path: path, Index: i})
			var q = w.b.squares[to]
			if q.IsEmpty() {
				w.emit(from, to, p, q)
				continue
			}
			if w.capturable(p, q) {
				w.emit(from, to, p, q)
			}
			break
		}
	}
}

func (w *walker) walkHops(from Square, p Piece, slides [][]Square) {
	for _, path := range slides {
		for i, sq := range path {
			if w.b.squares[sq].IsEmpty() {
				w.see(sq, Vision{Kind: VisionHopSlide, Piece: p, From: from, Path: path, Index: i})
				continue
			}
			w.see(sq, Vision{Kind: VisionHopHurdle, Piece: p, From: from, Path: path, Index: i})
			if i+1 < len(path) {
				var to = path[i+1]
				w.see(to, Vision{Kind: VisionHopLanding, Piece: p, From: from, Path: path, Index: i + 1})
				var q = w.b.squares[to]
				if q.IsEmpty() || w.capturable(p, q) {
					w.emit(from, to, p, q)
				}
			}
			break
		}
	}
}

func (w *walker) walkPawn(from Square, p Piece) {
	for _, step := range w.sig.PawnMoves(p.Team, from) {
		if !w.b.squares[step.First].IsEmpty() {
			continue
		}
		w.emitPawn(from, step.First, p, Piece{}, Passant{})
		for _, second := range step.Seconds {
			if w.b.squares[second].IsEmpty() {
				w.emitPawn(from, second, p, Piece{}, Passant{
					Active:  true,
					Ply:     w.b.MoveNumber(),
					Skipped: step.First,
				})
			}
		}
	}
	for _, to := range w.sig.PawnTakes(p.Team, from) {
		w.see(to, Vision{Kind: VisionLeap, Piece: p, From: from, Index: -1})
		var q = w.b.squares[to]
		if w.capturable(p, q) {
			w.emitPawn(from, to, p, q, Passant{})
			continue
		}
		if !q.IsEmpty() {
			continue
		}
		if victimSq, ok := w.passant[to]; ok {
			var victim = w.b.squares[victimSq]
			if victim.Team != p.Team && w.target(to) {
				var moved = p
				moved.Moved = true
				moved.Passant = Passant{}
				w.onMove(Move{
					Kind:         MoveEnPassant,
					Piece:        p,
					ToPiece:      moved,
					From:         from,
					To:           to,
					Victim:       victim,
					VictimSquare: victimSq,
				})
			}
		}
	}
}

func (w *walker) emitPawn(from, to Square, p, victim Piece, passant Passant) {
	if !w.target(to) {
		return
	}
	var base = Move{
		Kind:         MoveStandard,
		Piece:        p,
		From:         from,
		To:           to,
		Victim:       victim,
		VictimSquare: to,
	}
	var promotions = w.sig.Promotions(p.Team, to)
	if len(promotions) == 0 {
		base.ToPiece = Piece{Kind: Pawn, Team: p.Team, Moved: true, Passant: passant}
		w.onMove(base)
		return
	}
	for _, kind := range promotions {
		var m = base
		m.ToPiece = Piece{Kind: kind, Team: p.Team, Moved: true}
		w.onMove(m)
	}
}

func castles(b *Board, team Team) []Move {
	var result []Move
	for _, cs := range b.sig.Castles(team) {
		var king = b.squares[cs.KingFrom]
		var rook = b.squares[cs.RookFrom]
		if king.Kind != King || king.Team != team || king.Moved {
			continue
		}
		if rook.Kind != Rook || rook.Team != team || rook.Moved {
			continue
		}
		var free = func(sq Square) bool {
			return sq == cs.KingFrom || sq == cs.RookFrom || b.squares[sq].IsEmpty()
		}
		var ok = free(cs.KingTo) && free(cs.RookTo)
		for _, sq := range cs.NotChecked {
			ok = ok && free(sq)
		}
		for _, sq := range cs.NotOccupied {
			ok = ok && free(sq)
		}
		if !ok {
			continue
		}
		var movedKing = king
		movedKing.Moved = true
		result = append(result, Move{
			Kind:         MoveCastle,
			Piece:        king,
			ToPiece:      movedKing,
			From:         cs.KingFrom,
			To:           cs.KingTo,
			VictimSquare: SquareNone,
			Rook:         rook,
			RookFrom:     cs.RookFrom,
			RookTo:       cs.RookTo,
			Through:      cs.NotChecked,
		})
	}
	return result
}
