package board

import (
	"fmt"
	"sort"

	"github.com/thenoetrevino/quadro/internal/models"
)

// ValidateLayout checks the structural rules of a board's columns:
// exactly one INITIAL and one CANCEL column, known kinds, and orders that
// run contiguously from zero.
func ValidateLayout(columns models.ColumnSet) error {
	if len(columns) == 0 {
		return fmt.Errorf("%w: board has no columns", ErrInvalidLayout)
	}

	counts := make(map[models.ColumnKind]int, 4)
	orders := make([]int, 0, len(columns))
	for _, c := range columns {
		if !c.Kind.Valid() {
			return fmt.Errorf("%w: unknown column kind %q", ErrInvalidLayout, c.Kind)
		}
		counts[c.Kind]++
		orders = append(orders, c.Order)
	}

	for _, kind := range []models.ColumnKind{models.ColumnKindInitial, models.ColumnKindCancel} {
		if counts[kind] != 1 {
			return fmt.Errorf("%w: expected exactly one %s column, found %d", ErrInvalidLayout, kind, counts[kind])
		}
	}
	if counts[models.ColumnKindFinal] == 0 {
		return fmt.Errorf("%w: board needs at least one %s column", ErrInvalidLayout, models.ColumnKindFinal)
	}

	sort.Ints(orders)
	for i, order := range orders {
		if order != i {
			return fmt.Errorf("%w: column orders must run 0..%d without gaps or repeats", ErrInvalidLayout, len(orders)-1)
		}
	}

	return nil
}

// columnSpec is a column to be created, before it has an ID
type columnSpec struct {
	name string
	kind models.ColumnKind
}

// buildLayout lays columns out as INITIAL, PENDING..., FINAL, CANCEL
func buildLayout(req CreateBoardRequest) []columnSpec {
	specs := make([]columnSpec, 0, len(req.PendingColumns)+3)
	specs = append(specs, columnSpec{req.InitialColumn, models.ColumnKindInitial})
	for _, name := range req.PendingColumns {
		specs = append(specs, columnSpec{name, models.ColumnKindPending})
	}
	specs = append(specs,
		columnSpec{req.FinalColumn, models.ColumnKindFinal},
		columnSpec{req.CancelColumn, models.ColumnKindCancel},
	)
	return specs
}
