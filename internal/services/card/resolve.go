package card

import (
	"github.com/thenoetrevino/quadro/internal/models"
)

// currentColumn locates the card's column in the board metadata.
// A miss means the card lives on a different board than the caller thinks.
func currentColumn(card *models.Card, columns models.ColumnSet) (models.ColumnInfo, error) {
	current, ok := columns.Find(card.ColumnID)
	if !ok {
		return models.ColumnInfo{}, wrongBoard(card.ID)
	}
	return current, nil
}

// nextColumn returns the column whose order directly follows current.
// Without one the card has no forward path and is treated as cancelled.
func nextColumn(card *models.Card, current models.ColumnInfo, columns models.ColumnSet) (models.ColumnInfo, error) {
	next, ok := columns.AtOrder(current.Order + 1)
	if !ok {
		return models.ColumnInfo{}, cancelled(card.ID)
	}
	return next, nil
}

// resolveForwardMove runs the checks shared by Advance and Cancel, in order:
// not blocked, on this board, not finished, has a next column.
func resolveForwardMove(card *models.Card, columns models.ColumnSet) (current, next models.ColumnInfo, err error) {
	if card.Blocked {
		return current, next, blockedForMove(card.ID)
	}

	current, err = currentColumn(card, columns)
	if err != nil {
		return current, next, err
	}

	if current.Kind == models.ColumnKindFinal {
		return current, next, alreadyFinished(card.ID)
	}

	next, err = nextColumn(card, current, columns)
	return current, next, err
}
