// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/database/schema"
	"github.com/taibuivan/spectator/internal/platform/dberr"
	"github.com/taibuivan/spectator/internal/platform/postgres"
)

// Every publication is read with its series' title, if any.
var (
	publicationColumns = fmt.Sprintf(`p.%s, p.%s, p.%s, p.%s, p.%s, s.%s, p.%s, p.%s, p.%s, p.%s, p.%s, p.%s`,
		schema.Publication.ID, schema.Publication.Title, schema.Publication.TitleSort,
		schema.Publication.Kind, schema.Publication.SeriesID, schema.PublicationSeries.Title,
		schema.Publication.OfficialURL, schema.Publication.ISBNUK, schema.Publication.ISBNUS,
		schema.Publication.NotesURL, schema.Publication.CreatedAt, schema.Publication.UpdatedAt,
	)

	publicationFrom = fmt.Sprintf(`%s p LEFT JOIN %s s ON s.%s = p.%s`,
		schema.Publication.Table, schema.PublicationSeries.Table, schema.PublicationSeries.ID, schema.Publication.SeriesID,
	)

	publicationOrder = fmt.Sprintf(`p.%s ASC, p.%s ASC`, schema.Publication.TitleSort, schema.Publication.ID)
)

func scanPublication(row pgx.Row, extra ...any) (*Publication, error) {
	publication := &Publication{Roles: []role.Role{}}
	targets := append([]any{
		&publication.ID, &publication.Title, &publication.TitleSort,
		&publication.Kind, &publication.SeriesID, &publication.SeriesTitle,
		&publication.OfficialURL, &publication.ISBNUK, &publication.ISBNUS,
		&publication.NotesURL, &publication.CreatedAt, &publication.UpdatedAt,
	}, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return publication, nil
}

// publicationWhere renders the filter as a WHERE clause starting at $1.
func publicationWhere(filter PublicationFilter) (string, []any) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(" WHERE TRUE")

	// Kind Filtering
	if filter.Kind != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND p.%s = $%d", schema.Publication.Kind, argID))
		args = append(args, filter.Kind)
		argID++
	}

	// Started, not ended
	if filter.InProgress {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s r WHERE r.%s = p.%s AND r.%s IS NOT NULL AND r.%s IS NULL)",
			schema.Reading.Table, schema.Reading.PublicationID, schema.Publication.ID,
			schema.Reading.StartDate, schema.Reading.EndDate,
		))
	}

	// Never read
	if filter.Unread {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND NOT EXISTS (SELECT 1 FROM %s r WHERE r.%s = p.%s)",
			schema.Reading.Table, schema.Reading.PublicationID, schema.Publication.ID,
		))
	}

	return queryBuilder.String(), args
}

// collectPublications drains rows into publications and loads their roles in one query.
func collectPublications(context context.Context, db postgres.DBTX, rows pgx.Rows, extra ...any) ([]*Publication, error) {
	defer rows.Close()

	publications := []*Publication{}
	ids := []int64{}
	for rows.Next() {
		publication, err := scanPublication(rows, extra...)
		if err != nil {
			return nil, dberr.Wrap(err, resourcePublication, "scan_publication")
		}
		publications = append(publications, publication)
		ids = append(ids, publication.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourcePublication, "list_publications")
	}

	byParent, err := role.ListForParents(context, db, role.KindPublication, ids)
	if err != nil {
		return nil, err
	}
	for _, publication := range publications {
		if roles, ok := byParent[publication.ID]; ok {
			publication.Roles = roles
		}
	}
	return publications, nil
}

// # Publication Repository Implementation

func (repository *publicationRepository) List(context context.Context, filter PublicationFilter, limit, offset int) ([]*Publication, int, error) {
	clause, args := publicationWhere(filter)
	query := fmt.Sprintf(`SELECT %s, COUNT(*) OVER() AS total_count FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		publicationColumns, publicationFrom, clause, publicationOrder, len(args)+1, len(args)+2,
	)

	rows, err := repository.pool.Query(context, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourcePublication, "list_publications")
	}

	total := 0
	publications, err := collectPublications(context, repository.pool, rows, &total)
	if err != nil {
		return nil, 0, err
	}

	if len(publications) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`SELECT count(*) FROM %s p%s`, schema.Publication.Table, clause)
		if err := repository.pool.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, resourcePublication, "count_publications")
		}
	}

	return publications, total, nil
}

func (repository *publicationRepository) ListBySeries(context context.Context, seriesID int64) ([]*Publication, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE p.%s = $1 ORDER BY %s`,
		publicationColumns, publicationFrom, schema.Publication.SeriesID, publicationOrder,
	)

	rows, err := repository.pool.Query(context, query, seriesID)
	if err != nil {
		return nil, dberr.Wrap(err, resourcePublication, "list_series_publications")
	}
	return collectPublications(context, repository.pool, rows)
}

func (repository *publicationRepository) FindByID(context context.Context, id int64) (*Publication, error) {
	return findPublication(context, repository.pool, id)
}

func findPublication(context context.Context, db postgres.DBTX, id int64) (*Publication, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE p.%s = $1`, publicationColumns, publicationFrom, schema.Publication.ID)

	publication, err := scanPublication(db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourcePublication, "get_publication")
	}

	if publication.Roles, err = role.List(context, db, role.KindPublication, id); err != nil {
		return nil, err
	}
	return publication, nil
}

func (repository *publicationRepository) Create(context context.Context, publication *Publication, roles []role.Input) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
			RETURNING %s
		`,
			schema.Publication.Table,
			schema.Publication.Title, schema.Publication.TitleSort, schema.Publication.Kind,
			schema.Publication.SeriesID, schema.Publication.OfficialURL,
			schema.Publication.ISBNUK, schema.Publication.ISBNUS, schema.Publication.NotesURL,
			schema.Publication.CreatedAt, schema.Publication.UpdatedAt,
			schema.Publication.ID,
		)

		err := transaction.QueryRow(context, query,
			publication.Title, publication.TitleSort, publication.Kind, publication.SeriesID,
			publication.OfficialURL, publication.ISBNUK, publication.ISBNUS, publication.NotesURL,
		).Scan(&publication.ID)
		if err != nil {
			return dberr.Wrap(err, resourcePublication, "create_publication")
		}

		if _, err := role.Replace(context, transaction, role.KindPublication, publication.ID, roles); err != nil {
			return err
		}

		// Re-read for the series title and the hydrated roles
		stored, err := findPublication(context, transaction, publication.ID)
		if err != nil {
			return err
		}
		*publication = *stored
		return nil
	})
}

func (repository *publicationRepository) Update(context context.Context, publication *Publication, roles []role.Input) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = NOW()
			WHERE %s = $1
		`,
			schema.Publication.Table,
			schema.Publication.Title, schema.Publication.TitleSort, schema.Publication.Kind,
			schema.Publication.SeriesID, schema.Publication.OfficialURL,
			schema.Publication.ISBNUK, schema.Publication.ISBNUS, schema.Publication.NotesURL,
			schema.Publication.UpdatedAt,
			schema.Publication.ID,
		)

		tag, err := transaction.Exec(context, query,
			publication.ID, publication.Title, publication.TitleSort, publication.Kind, publication.SeriesID,
			publication.OfficialURL, publication.ISBNUK, publication.ISBNUS, publication.NotesURL,
		)
		if err != nil {
			return dberr.Wrap(err, resourcePublication, "update_publication")
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound(resourcePublication)
		}

		if _, err := role.Replace(context, transaction, role.KindPublication, publication.ID, roles); err != nil {
			return err
		}

		stored, err := findPublication(context, transaction, publication.ID)
		if err != nil {
			return err
		}
		*publication = *stored
		return nil
	})
}

func (repository *publicationRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Publication.Table, schema.Publication.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourcePublication, "delete_publication")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourcePublication)
	}
	return nil
}
