package roomba

// Snapshot is a read-only copy of the game for renderers and tests.
// Trash and Hazards are sorted row-major, so equal states give equal snapshots.
type Snapshot struct {
	Width    int
	Height   int
	Player   Coord
	Trash    []Coord
	Hazards  []Coord
	GameOver bool
	Victory  bool
	Moves    int
	Phase    Phase
	Status   string
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Width:    s.rules.Width,
		Height:   s.rules.Height,
		Player:   s.player,
		Trash:    sortedCoords(s.trash),
		Hazards:  sortedCoords(s.hazards),
		GameOver: s.gameOver,
		Victory:  s.victory,
		Moves:    s.moves,
		Phase:    s.Phase(),
		Status:   s.Status(),
	}
}

// Overlay returns the centered banner for a finished game, or "".
func (s Snapshot) Overlay() string {
	switch {
	case s.GameOver && s.Victory:
		return "ALL CLEAN!"
	case s.GameOver:
		return "GAME OVER"
	default:
		return ""
	}
}
