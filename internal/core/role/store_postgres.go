// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package role

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/spectator/internal/platform/database/schema"
	"github.com/taibuivan/spectator/internal/platform/dberr"
	"github.com/taibuivan/spectator/internal/platform/postgres"
)

// orderBy is the SQL rendering of [Compare]; COLLATE "C" gives byte order.
const orderBy = `r.%s ASC, r.%s COLLATE "C" ASC, r.%s ASC`

func selectQuery(table schema.RoleTable, where string) string {
	return fmt.Sprintf(`
		SELECT r.%s, r.%s, r.%s, c.%s, r.%s, r.%s
		FROM %s r
		JOIN %s c ON c.%s = r.%s
		WHERE %s
		ORDER BY r.%s ASC, `+orderBy,
		table.ParentID, table.ID, table.CreatorID, schema.Creator.Name, table.RoleName, table.RoleOrder,
		table.Table,
		schema.Creator.Table, schema.Creator.ID, table.CreatorID,
		where,
		table.ParentID, table.RoleOrder, table.RoleName, table.ID,
	)
}

func scanRoles(rows pgx.Rows) (map[int64][]Role, error) {
	defer rows.Close()

	byParent := make(map[int64][]Role)
	for rows.Next() {
		var (
			parentID int64
			r        Role
		)
		if err := rows.Scan(&parentID, &r.ID, &r.CreatorID, &r.CreatorName, &r.RoleName, &r.RoleOrder); err != nil {
			return nil, err
		}
		byParent[parentID] = append(byParent[parentID], r)
	}

	return byParent, rows.Err()
}

/*
List returns the roles of one parent in display order.

Returns an empty (non-nil) slice when the parent has no roles.
*/
func List(context context.Context, db postgres.DBTX, kind Kind, parentID int64) ([]Role, error) {
	table := kind.Table()
	query := selectQuery(table, fmt.Sprintf("r.%s = $1", table.ParentID))

	rows, err := db.Query(context, query, parentID)
	if err != nil {
		return nil, dberr.Wrap(err, "Role", "list_roles")
	}

	byParent, err := scanRoles(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "Role", "scan_role")
	}

	roles := byParent[parentID]
	if roles == nil {
		roles = []Role{}
	}
	return roles, nil
}

/*
ListForParents loads the roles of a whole page of parents in one query.

Parents without roles are absent from the returned map.
*/
func ListForParents(context context.Context, db postgres.DBTX, kind Kind, parentIDs []int64) (map[int64][]Role, error) {
	if len(parentIDs) == 0 {
		return map[int64][]Role{}, nil
	}

	table := kind.Table()
	query := selectQuery(table, fmt.Sprintf("r.%s = ANY($1)", table.ParentID))

	rows, err := db.Query(context, query, parentIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "Role", "list_roles_for_parents")
	}

	byParent, err := scanRoles(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "Role", "scan_role")
	}
	return byParent, nil
}

/*
Replace swaps the full role list of a parent inside the caller's transaction.

Description: Existing rows are deleted, then the new ones are queued in a
single pgx.Batch. The fresh list is read back so callers get creator names.

Parameters:
  - context: context.Context
  - transaction: pgx.Tx (the parent's write transaction)
  - kind: Kind
  - parentID: int64
  - inputs: []Input (already validated)

Returns:
  - []Role: the stored roles in display order
  - error: validation error if a creator does not exist
*/
func Replace(context context.Context, transaction pgx.Tx, kind Kind, parentID int64, inputs []Input) ([]Role, error) {
	table := kind.Table()

	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table.Table, table.ParentID)
	if _, err := transaction.Exec(context, deleteQuery, parentID); err != nil {
		return nil, dberr.Wrap(err, "Role", "clear_roles")
	}

	if len(inputs) > 0 {
		insertQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
		`,
			table.Table, table.ParentID, table.CreatorID, table.RoleName, table.RoleOrder,
			table.CreatedAt, table.UpdatedAt,
		)

		batch := &pgx.Batch{}
		for _, input := range inputs {
			batch.Queue(insertQuery, parentID, input.CreatorID, input.RoleName, input.Order())
		}

		results := transaction.SendBatch(context, batch)
		for range inputs {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return nil, dberr.Wrap(err, "Role", "insert_role")
			}
		}
		if err := results.Close(); err != nil {
			return nil, dberr.Wrap(err, "Role", "insert_role")
		}
	}

	return List(context, transaction, kind, parentID)
}

// parentTitle is how one kind reaches its parent's title and sort key (alias p).
type parentTitle struct {
	joins string
	title string
}

// parentTitles renders the parent joins of every kind.
//
// Productions without a title show their play's. Untitled concerts and misc
// events come back empty and are named after their creators by [ListByCreator].
func parentTitles() map[Kind]parentTitle {
	return map[Kind]parentTitle{
		KindPublication: {
			joins: fmt.Sprintf(`JOIN %s p ON p.%s = r.%s`,
				schema.Publication.Table, schema.Publication.ID, schema.PublicationRole.ParentID),
			title: "p." + schema.Publication.Title,
		},
		KindConcert: {
			joins: fmt.Sprintf(`JOIN %s p ON p.%s = r.%s`,
				schema.Concert.Table, schema.Concert.EventID, schema.ConcertRole.ParentID),
			title: "btrim(p." + schema.Concert.Title + ")",
		},
		KindMovie: {
			joins: fmt.Sprintf(`JOIN %s p ON p.%s = r.%s`,
				schema.Movie.Table, schema.Movie.ID, schema.MovieRole.ParentID),
			title: "p." + schema.Movie.Title,
		},
		KindPlay: {
			joins: fmt.Sprintf(`JOIN %s p ON p.%s = r.%s`,
				schema.Play.Table, schema.Play.ID, schema.PlayRole.ParentID),
			title: "p." + schema.Play.Title,
		},
		KindProduction: {
			joins: fmt.Sprintf(`JOIN %s p ON p.%s = r.%s JOIN %s pl ON pl.%s = p.%s`,
				schema.PlayProduction.Table, schema.PlayProduction.ID, schema.PlayProductionRole.ParentID,
				schema.Play.Table, schema.Play.ID, schema.PlayProduction.PlayID),
			title: fmt.Sprintf("COALESCE(NULLIF(p.%s, ''), pl.%s)", schema.PlayProduction.Title, schema.Play.Title),
		},
		KindMiscEvent: {
			joins: fmt.Sprintf(`JOIN %s p ON p.%s = r.%s`,
				schema.MiscEvent.Table, schema.MiscEvent.EventID, schema.MiscEventRole.ParentID),
			title: "btrim(p." + schema.MiscEvent.Title + ")",
		},
	}
}

/*
ListByCreator returns everything a creator is credited on, across all six kinds.

Results are grouped by kind (in [Kinds] order), then by the parent's sort key.
Untitled concerts and misc events are titled with their creators' names, the
way event lists show them.
*/
func ListByCreator(context context.Context, db postgres.DBTX, creatorID int64) ([]CreatorRole, error) {
	parents := parentTitles()

	var parts []string
	for position, kind := range Kinds {
		table := kind.Table()
		parts = append(parts, fmt.Sprintf(`
			SELECT %d AS kind_position, '%s' AS kind, r.%s AS parent_id,
			       %s AS parent_title, p.title_sort AS parent_sort,
			       r.%s AS role_name, r.%s AS role_order
			FROM %s r
			%s
			WHERE r.%s = $1`,
			position, kind, table.ParentID,
			parents[kind].title,
			table.RoleName, table.RoleOrder,
			table.Table,
			parents[kind].joins,
			table.CreatorID,
		))
	}

	query := fmt.Sprintf(`
		SELECT kind, parent_id, parent_title, role_name, role_order
		FROM (%s) credited
		ORDER BY kind_position, parent_sort, parent_id, role_order
	`, strings.Join(parts, "\n\t\t\tUNION ALL"))

	rows, err := db.Query(context, query, creatorID)
	if err != nil {
		return nil, dberr.Wrap(err, "Role", "list_roles_by_creator")
	}
	defer rows.Close()

	credits := []CreatorRole{}
	for rows.Next() {
		var credit CreatorRole
		if err := rows.Scan(&credit.Kind, &credit.ParentID, &credit.ParentTitle, &credit.RoleName, &credit.RoleOrder); err != nil {
			return nil, dberr.Wrap(err, "Role", "scan_creator_role")
		}
		credits = append(credits, credit)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Role", "list_roles_by_creator")
	}
	rows.Close()

	if err := nameUntitled(context, db, credits); err != nil {
		return nil, err
	}
	return credits, nil
}

// nameUntitled fills the blank titles of concert and misc event credits with their billed names.
func nameUntitled(context context.Context, db postgres.DBTX, credits []CreatorRole) error {
	untitled := UntitledParents(credits)

	for kind, parentIDs := range untitled {
		byParent, err := ListForParents(context, db, kind, parentIDs)
		if err != nil {
			return err
		}
		NameParents(credits, kind, byParent)
	}
	return nil
}

// UntitledParents collects, per kind, the parents of credits that have no title.
func UntitledParents(credits []CreatorRole) map[Kind][]int64 {
	untitled := map[Kind][]int64{}
	for _, credit := range credits {
		if credit.ParentTitle != "" {
			continue
		}
		if !slices.Contains(untitled[credit.Kind], credit.ParentID) {
			untitled[credit.Kind] = append(untitled[credit.Kind], credit.ParentID)
		}
	}
	return untitled
}

// NameParents titles the untitled credits of one kind with the joined names of its roles.
func NameParents(credits []CreatorRole, kind Kind, byParent map[int64][]Role) {
	for i := range credits {
		if credits[i].Kind == kind && credits[i].ParentTitle == "" {
			credits[i].ParentTitle = JoinNames(byParent[credits[i].ParentID])
		}
	}
}
