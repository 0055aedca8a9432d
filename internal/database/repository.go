package database

// Repository provides a unified interface to all data operations.
// The domain repositories are named fields because several of them share
// method names (Create, GetByID).
type Repository struct {
	Boards  *BoardRepo
	Columns *ColumnRepo
	Cards   *CardRepo
	Blocks  *BlockRepo
}

// NewRepository creates a Repository over a connection or a transaction.
func NewRepository(db DBTX) *Repository {
	return &Repository{
		Boards:  &BoardRepo{db: db},
		Columns: &ColumnRepo{db: db},
		Cards:   &CardRepo{db: db},
		Blocks:  &BlockRepo{db: db},
	}
}

// CardStore returns the collaborators the card transitions need.
func (r *Repository) CardStore() CardStore {
	return cardStore{CardRepo: r.Cards, BlockRepo: r.Blocks}
}

type cardStore struct {
	*CardRepo
	*BlockRepo
}
