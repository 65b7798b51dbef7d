package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplifthq/uplift/pkg/tenant"
	"github.com/uplifthq/uplift/pkg/tenantscope"
)

func TestTenantScope(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	query, args, err := TenantScope(tenantscope.Scope{TenantID: tenantID}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "tenant_id = ?", query)
	assert.Equal(t, []any{tenantID}, args)
}

func TestUserByID(t *testing.T) {
	t.Parallel()

	scope := tenantscope.Scope{TenantID: uuid.New()}
	userID := uuid.New()

	t.Run("query carries the tenant predicate", func(t *testing.T) {
		t.Parallel()

		db := &fakeDB{rowErr: pgx.ErrNoRows}
		_, err := New(db).UserByID(context.Background(), scope, userID)
		require.ErrorIs(t, err, ErrUserNotFound)

		require.Len(t, db.queries, 1)
		assert.Contains(t, db.queries[0].sql, "tenant_id = $2")
		assert.Equal(t, []any{userID, scope.TenantID}, db.queries[0].args)
	})

	t.Run("another tenant's user is indistinguishable from a missing one", func(t *testing.T) {
		t.Parallel()

		// The scoped predicate turns a cross-tenant hit into zero rows.
		db := &fakeDB{rowErr: pgx.ErrNoRows}
		_, err := New(db).UserByID(context.Background(), scope, userID)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestCreateSurveyResponse(t *testing.T) {
	t.Parallel()

	scope := tenantscope.Scope{TenantID: uuid.New()}

	t.Run("tenant column comes from the scope", func(t *testing.T) {
		t.Parallel()

		db := &fakeDB{}
		resp := SurveyResponse{
			ID:       uuid.New(),
			SurveyID: uuid.New(),
			UserID:   uuid.New(),
			// A forged payload tenant never reaches the insert.
			TenantID: uuid.New(),
		}
		require.NoError(t, New(db).CreateSurveyResponse(context.Background(), scope, resp))

		require.Len(t, db.queries, 1)
		assert.Contains(t, db.queries[0].sql, "INSERT INTO survey_responses")
		assert.Contains(t, db.queries[0].args, scope.TenantID)
		assert.NotContains(t, db.queries[0].args, resp.TenantID)
	})
}

func TestTenantByID(t *testing.T) {
	t.Parallel()

	t.Run("missing tenant maps to the directory sentinel", func(t *testing.T) {
		t.Parallel()

		db := &fakeDB{rowErr: pgx.ErrNoRows}
		_, err := New(db).TenantByID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
	})
}

func TestUserFootprint(t *testing.T) {
	t.Parallel()

	db := &fakeDB{scan: func(dest ...any) error {
		if n, ok := dest[0].(*int64); ok {
			*n = 0
		}
		return nil
	}}

	footprint, err := New(db).UserFootprint(context.Background(), uuid.New())
	require.NoError(t, err)

	// One count per closure table, every one covered.
	require.Len(t, footprint, len(erasurePlan))
	for _, c := range erasurePlan {
		n, ok := footprint[c.table]
		assert.True(t, ok, "missing count for %s", c.table)
		assert.Zero(t, n)
	}
}
