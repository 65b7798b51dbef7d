package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// collection is one table participating in the user erasure closure.
type collection struct {
	table string

	// refs lists closure tables this one holds foreign keys into. Rows
	// here must be deleted before rows in any referenced table.
	refs []string

	// rows builds the predicate selecting the rows tied to the user being
	// erased.
	rows func(userID uuid.UUID) sq.Sqlizer
}

func byUser(column string) func(uuid.UUID) sq.Sqlizer {
	return func(userID uuid.UUID) sq.Sqlizer {
		return sq.Eq{column: userID}
	}
}

func byEither(a, b string) func(uuid.UUID) sq.Sqlizer {
	return func(userID uuid.UUID) sq.Sqlizer {
		return sq.Or{sq.Eq{a: userID}, sq.Eq{b: userID}}
	}
}

// erasureClosure declares every table that references a user, directly or
// through a parent, together with its foreign-key dependencies. The
// deletion order is computed from the graph; declaration order only
// breaks ties, keeping the plan deterministic.
var erasureClosure = []collection{
	{
		table: "survey_answers",
		refs:  []string{"survey_responses"},
		rows: func(userID uuid.UUID) sq.Sqlizer {
			return sq.Expr("response_id IN (SELECT id FROM survey_responses WHERE user_id = ?)", userID)
		},
	},
	{table: "survey_responses", refs: []string{"users"}, rows: byUser("user_id")},
	{table: "survey_assignments", refs: []string{"users"}, rows: byUser("user_id")},
	{table: "self_assessments", refs: []string{"users"}, rows: byEither("employee_id", "assessor_id")},
	{table: "suggestions", refs: []string{"users"}, rows: byUser("user_id")},
	{table: "recognitions", refs: []string{"users"}, rows: byEither("sender_id", "receiver_id")},
	{table: "notifications", refs: []string{"users"}, rows: byUser("recipient_id")},
	{table: "linked_accounts", refs: []string{"users"}, rows: byUser("user_id")},
	{table: "users", rows: func(userID uuid.UUID) sq.Sqlizer {
		return sq.Eq{"id": userID}
	}},
}

// erasurePlan is the closure in deletion order: every table before any
// table it references, the users table last.
var erasurePlan = mustOrder(erasureClosure)

// mustOrder topologically sorts the closure. A table may only be deleted
// from once nothing remaining references it. Panics on an unknown
// reference or a cycle; both are programming errors that must fail at
// startup, not during an erasure.
func mustOrder(closure []collection) []collection {
	index := make(map[string]int, len(closure))
	for i, c := range closure {
		index[c.table] = i
	}

	// Count, per table, how many closure tables still reference it.
	inbound := make([]int, len(closure))
	for _, c := range closure {
		for _, ref := range c.refs {
			i, ok := index[ref]
			if !ok {
				panic(fmt.Sprintf("store: erasure closure references unknown table %q", ref))
			}
			inbound[i]++
		}
	}

	ordered := make([]collection, 0, len(closure))
	done := make([]bool, len(closure))
	for len(ordered) < len(closure) {
		next := -1
		for i := range closure {
			if !done[i] && inbound[i] == 0 {
				next = i
				break
			}
		}
		if next == -1 {
			panic("store: erasure closure contains a dependency cycle")
		}

		done[next] = true
		ordered = append(ordered, closure[next])
		for _, ref := range closure[next].refs {
			inbound[index[ref]]--
		}
	}

	return ordered
}
