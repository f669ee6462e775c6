package storage

// BestBackend is implemented by Store and SaveData.
type BestBackend interface {
	BestScore(gameID string) (int, error)
	RecordBest(gameID string, score int) error
}

// BestScores binds a backend to one game so it can serve as that game's
// best-score store.
type BestScores struct {
	backend BestBackend
	gameID  string
}

// BestFor returns the best-score store of gameID in backend.
func BestFor(backend BestBackend, gameID string) *BestScores {
	return &BestScores{backend: backend, gameID: gameID}
}

// ReadBest returns the stored best score.
func (b *BestScores) ReadBest() (int, error) {
	return b.backend.BestScore(b.gameID)
}

// WriteBest stores score if it beats the stored best.
func (b *BestScores) WriteBest(score int) error {
	return b.backend.RecordBest(b.gameID, score)
}
