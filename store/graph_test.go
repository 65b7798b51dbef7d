package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErasurePlanOrder(t *testing.T) {
	t.Parallel()

	tables := make([]string, 0, len(erasurePlan))
	for _, c := range erasurePlan {
		tables = append(tables, c.table)
	}

	// Children strictly before the tables they reference, users last.
	assert.Equal(t, []string{
		"survey_answers",
		"survey_responses",
		"survey_assignments",
		"self_assessments",
		"suggestions",
		"recognitions",
		"notifications",
		"linked_accounts",
		"users",
	}, tables)
}

func TestMustOrder(t *testing.T) {
	t.Parallel()

	anyRows := func(userID uuid.UUID) sq.Sqlizer { return sq.Eq{"user_id": userID} }

	t.Run("children precede parents regardless of declaration order", func(t *testing.T) {
		t.Parallel()

		ordered := mustOrder([]collection{
			{table: "parents", rows: anyRows},
			{table: "children", refs: []string{"parents"}, rows: anyRows},
		})

		require.Len(t, ordered, 2)
		assert.Equal(t, "children", ordered[0].table)
		assert.Equal(t, "parents", ordered[1].table)
	})

	t.Run("panics on unknown reference", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			mustOrder([]collection{
				{table: "orphans", refs: []string{"missing"}, rows: anyRows},
			})
		})
	})

	t.Run("panics on dependency cycle", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			mustOrder([]collection{
				{table: "a", refs: []string{"b"}, rows: anyRows},
				{table: "b", refs: []string{"a"}, rows: anyRows},
			})
		})
	})
}

func TestCollectionPredicates(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	byTable := make(map[string]collection, len(erasureClosure))
	for _, c := range erasureClosure {
		byTable[c.table] = c
	}

	t.Run("survey answers reach the user through the parent response", func(t *testing.T) {
		t.Parallel()

		query, args, err := byTable["survey_answers"].rows(userID).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "response_id IN (SELECT id FROM survey_responses WHERE user_id = ?)", query)
		assert.Equal(t, []any{userID}, args)
	})

	t.Run("self assessments match employee or assessor", func(t *testing.T) {
		t.Parallel()

		query, args, err := byTable["self_assessments"].rows(userID).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(employee_id = ? OR assessor_id = ?)", query)
		assert.Equal(t, []any{userID, userID}, args)
	})

	t.Run("recognitions match sender or receiver", func(t *testing.T) {
		t.Parallel()

		query, _, err := byTable["recognitions"].rows(userID).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(sender_id = ? OR receiver_id = ?)", query)
	})

	t.Run("user record is matched by primary key", func(t *testing.T) {
		t.Parallel()

		query, args, err := byTable["users"].rows(userID).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "id = ?", query)
		assert.Equal(t, []any{userID}, args)
	})
}
