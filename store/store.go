package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/uplifthq/uplift/pkg/pg"
	"github.com/uplifthq/uplift/pkg/tenant"
	"github.com/uplifthq/uplift/pkg/tenantscope"
)

// DBTX is the subset of pgx pool behaviour the store depends on.
// *pgxpool.Pool satisfies it; tests use fakes.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// qb builds queries with PostgreSQL placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// TenantScope returns the predicate fragment that pins a query to one
// tenant. Every read and write against a tenant-owned table must merge it
// into its WHERE clause; store methods taking a Scope do so themselves.
func TenantScope(s tenantscope.Scope) sq.Eq {
	return sq.Eq{"tenant_id": s.TenantID}
}

// Store issues all persistence operations over the shared connection pool.
type Store struct {
	db DBTX
}

// New creates a store over db. The caller retains ownership of the
// underlying pool and closes it at process shutdown.
func New(db DBTX) *Store {
	return &Store{db: db}
}

// User is a tenant-owned user record.
type User struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Email     string
	FullName  string
	Role      string
	CreatedAt time.Time
}

// SurveyResponse is one user's submission to a survey. It is tenant-owned
// both directly and transitively through its parent survey.
type SurveyResponse struct {
	ID          uuid.UUID
	SurveyID    uuid.UUID
	UserID      uuid.UUID
	TenantID    uuid.UUID
	SubmittedAt time.Time
}

// TenantByID loads a tenant record. Implements tenant.Provider for the
// cached tenant directory.
func (s *Store) TenantByID(ctx context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	query, args, err := qb.
		Select("id", "subdomain", "name", "active", "created_at").
		From("tenants").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var t tenant.Tenant
	err = s.db.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.Subdomain, &t.Name, &t.Active, &t.CreatedAt)
	if pg.IsNotFoundError(err) {
		return nil, tenant.ErrTenantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UserByID loads a user visible within scope. A user belonging to another
// tenant is indistinguishable from a missing one.
func (s *Store) UserByID(ctx context.Context, scope tenantscope.Scope, id uuid.UUID) (*User, error) {
	query, args, err := qb.
		Select("id", "tenant_id", "email", "full_name", "role", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		Where(TenantScope(scope)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var u User
	err = s.db.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.TenantID, &u.Email, &u.FullName, &u.Role, &u.CreatedAt)
	if pg.IsNotFoundError(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AnyUserByID loads a user across tenants. Reserved for unscoped
// (super-admin) callers; scoped request paths use UserByID.
func (s *Store) AnyUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query, args, err := qb.
		Select("id", "tenant_id", "email", "full_name", "role", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var u User
	err = s.db.QueryRow(ctx, query, args...).
		Scan(&u.ID, &u.TenantID, &u.Email, &u.FullName, &u.Role, &u.CreatedAt)
	if pg.IsNotFoundError(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateSurveyResponse persists a survey response under the caller's
// scope. The tenant column comes from the scope, never from the payload.
func (s *Store) CreateSurveyResponse(ctx context.Context, scope tenantscope.Scope, r SurveyResponse) error {
	query, args, err := qb.
		Insert("survey_responses").
		Columns("id", "survey_id", "user_id", "tenant_id", "submitted_at").
		Values(r.ID, r.SurveyID, r.UserID, scope.TenantID, r.SubmittedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrDuplicateResponse
		}
		return err
	}
	return nil
}

// UserFootprint counts, per erasure-closure table, the rows still tied to
// userID. After a successful EraseUserData every count is zero. Used by
// admin tooling and tests to verify complete removal.
func (s *Store) UserFootprint(ctx context.Context, userID uuid.UUID) (map[string]int64, error) {
	footprint := make(map[string]int64, len(erasurePlan))
	for _, c := range erasurePlan {
		query, args, err := qb.
			Select("count(*)").
			From(c.table).
			Where(c.rows(userID)).
			ToSql()
		if err != nil {
			return nil, err
		}

		var n int64
		if err := s.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
			return nil, err
		}
		footprint[c.table] = n
	}
	return footprint, nil
}

var _ tenant.Provider = (*Store)(nil)
