// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"fmt"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/dberr"
	"github.com/taibuivan/spectator/internal/platform/postgres"
)

// # Creator-Derived Sort Keys

/*
UntitledCredited returns, per titled kind, the untitled events crediting a creator.

Untitled concerts and misc events sort by their creators' names, so a creator
rename or delete must rewrite those keys with [ResortUntitled]. Call it before
deleting the creator: the cascade removes the role rows it reads.
*/
func UntitledCredited(context context.Context, db postgres.DBTX, creatorID int64) (map[Kind][]int64, error) {
	credited := map[Kind][]int64{}

	for _, kind := range []Kind{KindConcert, KindMisc} {
		roleKind, _ := kind.roleKind()
		roles := roleKind.Table()
		table := titledTable(kind)

		query := fmt.Sprintf(`
			SELECT DISTINCT t.%s
			FROM %s t
			JOIN %s r ON r.%s = t.%s
			WHERE r.%s = $1 AND btrim(t.%s) = ''
			ORDER BY t.%s
		`,
			table.EventID,
			table.Table,
			roles.Table, roles.ParentID, table.EventID,
			roles.CreatorID, table.Title,
			table.EventID,
		)

		rows, err := db.Query(context, query, creatorID)
		if err != nil {
			return nil, dberr.Wrap(err, resource, "list_untitled_credited")
		}

		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return nil, dberr.Wrap(err, resource, "scan_untitled_credited")
			}
			credited[kind] = append(credited[kind], id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, dberr.Wrap(err, resource, "list_untitled_credited")
		}
	}

	return credited, nil
}

// ResortUntitled recomputes the title_sort of untitled events from their current roles.
func ResortUntitled(context context.Context, db postgres.DBTX, ids map[Kind][]int64) error {
	for kind, eventIDs := range ids {
		roleKind, ok := kind.roleKind()
		if !ok || len(eventIDs) == 0 {
			continue
		}

		byEvent, err := role.ListForParents(context, db, roleKind, eventIDs)
		if err != nil {
			return err
		}

		sorts := make([]string, len(eventIDs))
		for i, id := range eventIDs {
			sorts[i] = TitleSort("", byEvent[id])
		}

		table := titledTable(kind)
		query := fmt.Sprintf(`
			UPDATE %s t
			SET %s = v.sort
			FROM unnest($1::bigint[], $2::text[]) AS v(id, sort)
			WHERE t.%s = v.id
		`, table.Table, table.TitleSort, table.EventID)

		if _, err := db.Exec(context, query, eventIDs, sorts); err != nil {
			return dberr.Wrap(err, resource, "resort_untitled")
		}
	}

	return nil
}
