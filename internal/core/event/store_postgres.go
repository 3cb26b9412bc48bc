// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/database/schema"
	"github.com/taibuivan/spectator/internal/platform/dberr"
	"github.com/taibuivan/spectator/internal/platform/postgres"
	"github.com/taibuivan/spectator/pkg/date"
	"github.com/taibuivan/spectator/pkg/pointer"
)

const resource = "Event"

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// # Query Building

// extension describes how one kind's extension table is joined and selected.
type extension struct {
	joins   []string
	columns string
	nulls   string
}

// extensions renders the join and select fragments of every kind.
//
// Aliases: c concert, me/m movie event and movie, pe/pp/p production event,
// production and play, mi misc event.
func extensions() map[Kind]extension {
	return map[Kind]extension{
		KindConcert: {
			joins: []string{
				fmt.Sprintf(`%s c ON c.%s = e.%s`, schema.Concert.Table, schema.Concert.EventID, schema.Event.ID),
			},
			columns: fmt.Sprintf(`c.%s, c.%s`, schema.Concert.Title, schema.Concert.TitleSort),
			nulls:   `NULL::text, NULL::text`,
		},
		KindMovie: {
			joins: []string{
				fmt.Sprintf(`%s me ON me.%s = e.%s`, schema.MovieEvent.Table, schema.MovieEvent.EventID, schema.Event.ID),
				fmt.Sprintf(`%s m ON m.%s = me.%s`, schema.Movie.Table, schema.Movie.ID, schema.MovieEvent.MovieID),
			},
			columns: fmt.Sprintf(`me.%s, m.%s`, schema.MovieEvent.MovieID, schema.Movie.Title),
			nulls:   `NULL::bigint, NULL::text`,
		},
		KindPlay: {
			joins: []string{
				fmt.Sprintf(`%s pe ON pe.%s = e.%s`, schema.PlayProductionEvent.Table, schema.PlayProductionEvent.EventID, schema.Event.ID),
				fmt.Sprintf(`%s pp ON pp.%s = pe.%s`, schema.PlayProduction.Table, schema.PlayProduction.ID, schema.PlayProductionEvent.ProductionID),
				fmt.Sprintf(`%s p ON p.%s = pp.%s`, schema.Play.Table, schema.Play.ID, schema.PlayProduction.PlayID),
			},
			columns: fmt.Sprintf(`pe.%s, pp.%s, pp.%s, p.%s`,
				schema.PlayProductionEvent.ProductionID, schema.PlayProduction.Title,
				schema.PlayProduction.PlayID, schema.Play.Title,
			),
			nulls: `NULL::bigint, NULL::text, NULL::bigint, NULL::text`,
		},
		KindMisc: {
			joins: []string{
				fmt.Sprintf(`%s mi ON mi.%s = e.%s`, schema.MiscEvent.Table, schema.MiscEvent.EventID, schema.Event.ID),
			},
			columns: fmt.Sprintf(`mi.%s, mi.%s`, schema.MiscEvent.Title, schema.MiscEvent.TitleSort),
			nulls:   `NULL::text, NULL::text`,
		},
	}
}

/*
fromClause builds the extension columns and joins for a listing.

With no kind every extension is LEFT JOINed. With a kind only that extension is
joined (inner), and the others are selected as typed NULLs so the scan shape
never changes.
*/
func fromClause(kind Kind) (columns, joins string) {
	var columnList, joinList []string

	all := extensions()
	for _, k := range Kinds {
		ext := all[k]
		switch {
		case kind == "":
			columnList = append(columnList, ext.columns)
			for _, join := range ext.joins {
				joinList = append(joinList, "LEFT JOIN "+join)
			}
		case kind == k:
			columnList = append(columnList, ext.columns)
			for _, join := range ext.joins {
				joinList = append(joinList, "JOIN "+join)
			}
		default:
			columnList = append(columnList, ext.nulls)
		}
	}

	return strings.Join(columnList, ",\n\t\t       "), strings.Join(joinList, "\n\t\t")
}

func selectFrom(kind Kind) string {
	columns, joins := fromClause(kind)

	return fmt.Sprintf(`
		SELECT e.%s, e.%s, e.%s, e.%s, v.%s, e.%s, e.%s,
		       %s,
		       COUNT(*) OVER() AS total_count
		FROM %s e
		JOIN %s v ON v.%s = e.%s
		%s
	`,
		schema.Event.ID, schema.Event.Kind, schema.Event.Date, schema.Event.VenueID,
		schema.Venue.Name, schema.Event.CreatedAt, schema.Event.UpdatedAt,
		columns,
		schema.Event.Table,
		schema.Venue.Table, schema.Venue.ID, schema.Event.VenueID,
		joins,
	)
}

// where renders the filter as a WHERE clause starting at $1.
func where(filter Filter) (string, []any) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(" WHERE TRUE")

	// Venue Filtering
	if filter.VenueID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND e.%s = $%d", schema.Event.VenueID, argID))
		args = append(args, *filter.VenueID)
		argID++
	}

	// Movie Filtering
	if filter.MovieID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND me.%s = $%d", schema.MovieEvent.MovieID, argID))
		args = append(args, *filter.MovieID)
		argID++
	}

	// Production Filtering
	if filter.ProductionID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND pe.%s = $%d", schema.PlayProductionEvent.ProductionID, argID))
		args = append(args, *filter.ProductionID)
	}

	return queryBuilder.String(), args
}

// byDate is the listing order: latest first, undated last.
var byDate = fmt.Sprintf(`e.%s DESC NULLS LAST, e.%s DESC`, schema.Event.Date, schema.Event.ID)

func scanEvent(row pgx.Row) (*Event, int, error) {
	var (
		event = &Event{}
		when  date.Date
		total int

		concertTitle, concertSort  *string
		movieID                    *int64
		movieTitle                 *string
		productionID, playID       *int64
		productionTitle, playTitle *string
		miscTitle, miscSort        *string
	)

	err := row.Scan(
		&event.ID, &event.Kind, &when, &event.VenueID, &event.VenueName, &event.CreatedAt, &event.UpdatedAt,
		&concertTitle, &concertSort,
		&movieID, &movieTitle,
		&productionID, &productionTitle, &playID, &playTitle,
		&miscTitle, &miscSort,
		&total,
	)
	if err != nil {
		return nil, 0, err
	}

	if !when.IsZero() {
		event.Date = &when
	}

	switch event.Kind {
	case KindConcert:
		event.Concert = &Titled{Title: pointer.Val(concertTitle), TitleSort: pointer.Val(concertSort), Roles: []role.Role{}}
	case KindMovie:
		event.Movie = &MovieRef{MovieID: pointer.Val(movieID), MovieTitle: pointer.Val(movieTitle)}
	case KindPlay:
		event.Production = &ProductionRef{
			ProductionID:    pointer.Val(productionID),
			ProductionTitle: pointer.Val(productionTitle),
			PlayID:          pointer.Val(playID),
			PlayTitle:       pointer.Val(playTitle),
		}
	case KindMisc:
		event.Misc = &Titled{Title: pointer.Val(miscTitle), TitleSort: pointer.Val(miscSort), Roles: []role.Role{}}
	}
	event.refreshTitle()

	return event, total, nil
}

// # Reads

/*
query runs a filtered listing.

Parameters:
  - context: context.Context
  - filter: Filter (already normalized)
  - orderBy: string
  - limit: int (0 means no limit)
  - offset: int

Returns:
  - []*Event: events without roles
  - int: total count matching the filter
  - error: database errors
*/
func (repository *PostgresRepository) query(context context.Context, filter Filter, orderBy string, limit, offset int) ([]*Event, int, error) {
	clause, args := where(filter)
	query := selectFrom(filter.Kind) + clause + " ORDER BY " + orderBy

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, limit, offset)
	}

	rows, err := repository.pool.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resource, "list_events")
	}
	defer rows.Close()

	events := []*Event{}
	total := 0
	for rows.Next() {
		event, count, err := scanEvent(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resource, "scan_event")
		}
		events = append(events, event)
		total = count
	}

	return events, total, dberr.Wrap(rows.Err(), resource, "list_events")
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error) {
	events, total, err := repository.query(context, filter.normalized(), byDate, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if len(events) == 0 && offset > 0 {
		total, err = repository.count(context, filter.normalized())
	}
	return events, total, err
}

func (repository *PostgresRepository) ListAll(context context.Context, filter Filter) ([]*Event, error) {
	events, _, err := repository.query(context, filter.normalized(), byDate, 0, 0)
	return events, err
}

func (repository *PostgresRepository) ListTitled(context context.Context, kind Kind, limit, offset int) ([]*Event, int, error) {
	alias := "c"
	if kind == KindMisc {
		alias = "mi"
	}
	orderBy := fmt.Sprintf(`%s.%s ASC, e.%s ASC`, alias, titledTable(kind).TitleSort, schema.Event.ID)

	events, total, err := repository.query(context, Filter{Kind: kind}, orderBy, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if len(events) == 0 && offset > 0 {
		total, err = repository.count(context, Filter{Kind: kind})
	}
	return events, total, err
}

// count is the fallback total for pages past the end, where no row carries the window count.
func (repository *PostgresRepository) count(context context.Context, filter Filter) (int, error) {
	_, joins := fromClause(filter.Kind)
	clause, args := where(filter)

	query := fmt.Sprintf(`SELECT count(*) FROM %s e %s`, schema.Event.Table, joins) + clause

	var total int
	if err := repository.pool.QueryRow(context, query, args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, resource, "count_events")
	}
	return total, nil
}

func (repository *PostgresRepository) CountByKind(context context.Context) (map[Kind]int, error) {
	query := fmt.Sprintf(`SELECT %s, count(*) FROM %s GROUP BY %s`,
		schema.Event.Kind, schema.Event.Table, schema.Event.Kind,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resource, "count_events")
	}
	defer rows.Close()

	byKind := make(map[Kind]int, len(Kinds))
	for rows.Next() {
		var (
			kind Kind
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, dberr.Wrap(err, resource, "scan_event_count")
		}
		byKind[kind] = n
	}

	return byKind, dberr.Wrap(rows.Err(), resource, "count_events")
}

func (repository *PostgresRepository) ListRoles(context context.Context, kind Kind, ids []int64) (map[int64][]role.Role, error) {
	roleKind, ok := kind.roleKind()
	if !ok {
		return map[int64][]role.Role{}, nil
	}
	return role.ListForParents(context, repository.pool, roleKind, ids)
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Event, error) {
	return findByID(context, repository.pool, id)
}

func findByID(context context.Context, db postgres.DBTX, id int64) (*Event, error) {
	query := selectFrom("") + fmt.Sprintf(" WHERE e.%s = $1", schema.Event.ID)

	event, _, err := scanEvent(db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resource, "get_event")
	}

	if roleKind, ok := event.Kind.roleKind(); ok {
		roles, err := role.List(context, db, roleKind, id)
		if err != nil {
			return nil, err
		}
		event.titled().Roles = roles
		event.refreshTitle()
	}

	return event, nil
}

// # Writes

func (repository *PostgresRepository) Create(context context.Context, event *Event, roles []role.Input) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		baseQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, NOW(), NOW())
			RETURNING %s
		`,
			schema.Event.Table,
			schema.Event.Kind, schema.Event.Date, schema.Event.VenueID, schema.Event.CreatedAt, schema.Event.UpdatedAt,
			schema.Event.ID,
		)

		if err := transaction.QueryRow(context, baseQuery, event.Kind, event.Date, event.VenueID).Scan(&event.ID); err != nil {
			return dberr.Wrap(err, resource, "create_event")
		}

		var extensionQuery string
		var args []any

		switch event.Kind {
		case KindConcert, KindMisc:
			table := titledTable(event.Kind)
			extensionQuery = fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
				table.Table, table.EventID, table.Title)
			args = []any{event.ID, event.titled().Title}
		case KindMovie:
			extensionQuery = fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
				schema.MovieEvent.Table, schema.MovieEvent.EventID, schema.MovieEvent.MovieID)
			args = []any{event.ID, event.Movie.MovieID}
		case KindPlay:
			extensionQuery = fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
				schema.PlayProductionEvent.Table, schema.PlayProductionEvent.EventID, schema.PlayProductionEvent.ProductionID)
			args = []any{event.ID, event.Production.ProductionID}
		}

		if _, err := transaction.Exec(context, extensionQuery, args...); err != nil {
			return dberr.Wrap(err, resource, "create_event_extension")
		}

		return replaceRoles(context, transaction, event, roles)
	})
}

func (repository *PostgresRepository) Update(context context.Context, event *Event, roles []role.Input) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		baseQuery := fmt.Sprintf(`
			UPDATE %s
			SET %s = $3, %s = $4, %s = NOW()
			WHERE %s = $1 AND %s = $2
		`,
			schema.Event.Table,
			schema.Event.Date, schema.Event.VenueID, schema.Event.UpdatedAt,
			schema.Event.ID, schema.Event.Kind,
		)

		tag, err := transaction.Exec(context, baseQuery, event.ID, event.Kind, event.Date, event.VenueID)
		if err != nil {
			return dberr.Wrap(err, resource, "update_event")
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound(event.Kind.Resource())
		}

		var extensionQuery string
		var args []any

		switch event.Kind {
		case KindConcert, KindMisc:
			table := titledTable(event.Kind)
			extensionQuery = fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
				table.Table, table.Title, table.EventID)
			args = []any{event.ID, event.titled().Title}
		case KindMovie:
			extensionQuery = fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
				schema.MovieEvent.Table, schema.MovieEvent.MovieID, schema.MovieEvent.EventID)
			args = []any{event.ID, event.Movie.MovieID}
		case KindPlay:
			extensionQuery = fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
				schema.PlayProductionEvent.Table, schema.PlayProductionEvent.ProductionID, schema.PlayProductionEvent.EventID)
			args = []any{event.ID, event.Production.ProductionID}
		}

		if _, err := transaction.Exec(context, extensionQuery, args...); err != nil {
			return dberr.Wrap(err, resource, "update_event_extension")
		}

		return replaceRoles(context, transaction, event, roles)
	})
}

/*
replaceRoles stores the roles of a titled event and derives its title_sort.

The sort key of an untitled event depends on its creators, so it can only be
computed once the new roles are in place.
*/
func replaceRoles(context context.Context, transaction pgx.Tx, event *Event, inputs []role.Input) error {
	roleKind, ok := event.Kind.roleKind()
	if !ok {
		return nil
	}

	roles, err := role.Replace(context, transaction, roleKind, event.ID, inputs)
	if err != nil {
		return err
	}

	titled := event.titled()
	titled.Roles = roles
	titled.TitleSort = TitleSort(titled.Title, roles)

	table := titledTable(event.Kind)
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`, table.Table, table.TitleSort, table.EventID)
	if _, err := transaction.Exec(context, query, event.ID, titled.TitleSort); err != nil {
		return dberr.Wrap(err, resource, "update_event_title_sort")
	}

	return nil
}

func titledTable(kind Kind) schema.TitledEventTable {
	if kind == KindMisc {
		return schema.MiscEvent
	}
	return schema.Concert
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Event.Table, schema.Event.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resource, "delete_event")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}
