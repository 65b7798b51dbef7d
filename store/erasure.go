package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/uplifthq/uplift/pkg/pg"
)

// userLockQuery pins the user row for the duration of the erasure
// transaction. Concurrent erasures of the same user serialize on this
// lock; the loser resumes after the winner commits, finds no row, and
// reports not-found instead of repeating any deletion.
const userLockQuery = `SELECT id FROM users WHERE id = $1 FOR UPDATE`

// EraseUserData permanently removes every trace of a user: survey answers,
// responses, assignments, self-assessments, suggestions, recognitions,
// notifications, linked external accounts and finally the user record
// itself, as one transaction. Either every step commits or none do.
//
// Returns ErrUserNotFound when the user record does not exist, which is
// also what a repeated call after a successful erasure observes.
func (s *Store) EraseUserData(ctx context.Context, userID uuid.UUID) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return errors.Join(ErrEraseFailed, err)
	}
	// No-op once the transaction has committed.
	defer func() { _ = tx.Rollback(ctx) }()

	var locked uuid.UUID
	err = tx.QueryRow(ctx, userLockQuery, userID).Scan(&locked)
	if pg.IsNotFoundError(err) {
		return ErrUserNotFound
	}
	if err != nil {
		return errors.Join(ErrEraseFailed, err)
	}

	for _, c := range erasurePlan {
		query, args, err := qb.Delete(c.table).Where(c.rows(userID)).ToSql()
		if err != nil {
			return errors.Join(ErrEraseFailed, err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return errors.Join(ErrEraseFailed, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Join(ErrEraseFailed, err)
	}
	return nil
}
