// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/pkg/date"
	"github.com/taibuivan/spectator/pkg/pointer"
)

// # Fakes

// page slices a sorted list the way LIMIT/OFFSET would.
func page[T any](all []T, limit, offset int) ([]T, int) {
	total := len(all)
	offset = min(offset, total)
	end := min(offset+limit, total)
	return all[offset:end], total
}

type fakeSeries struct {
	series map[int64]*Series
	nextID int64

	// publications is notified on delete, like ON DELETE SET NULL.
	publications *fakePublications
}

func (repository *fakeSeries) List(_ context.Context, limit, offset int) ([]*Series, int, error) {
	all := make([]*Series, 0, len(repository.series))
	for _, s := range repository.series {
		all = append(all, s)
	}
	slices.SortFunc(all, func(a, b *Series) int {
		return cmp.Or(strings.Compare(a.TitleSort, b.TitleSort), cmp.Compare(a.ID, b.ID))
	})

	items, total := page(all, limit, offset)
	return items, total, nil
}

func (repository *fakeSeries) FindByID(_ context.Context, id int64) (*Series, error) {
	s, ok := repository.series[id]
	if !ok {
		return nil, apperr.NotFound(resourceSeries)
	}
	return s, nil
}

func (repository *fakeSeries) Create(_ context.Context, s *Series) error {
	repository.nextID++
	s.ID = repository.nextID
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	repository.series[s.ID] = s
	return nil
}

func (repository *fakeSeries) Update(_ context.Context, s *Series) error {
	if _, ok := repository.series[s.ID]; !ok {
		return apperr.NotFound(resourceSeries)
	}
	s.UpdatedAt = time.Now()
	repository.series[s.ID] = s
	return nil
}

func (repository *fakeSeries) Delete(_ context.Context, id int64) error {
	if _, ok := repository.series[id]; !ok {
		return apperr.NotFound(resourceSeries)
	}
	delete(repository.series, id)

	for _, p := range repository.publications.publications {
		if p.SeriesID != nil && *p.SeriesID == id {
			p.SeriesID = nil
			p.SeriesTitle = nil
		}
	}
	return nil
}

type fakePublications struct {
	publications map[int64]*Publication
	nextID       int64
	series       *fakeSeries
	readings     *fakeReadings
}

func (repository *fakePublications) sorted(keep func(*Publication) bool) []*Publication {
	all := []*Publication{}
	for _, p := range repository.publications {
		if keep(p) {
			all = append(all, p)
		}
	}
	slices.SortFunc(all, func(a, b *Publication) int {
		return cmp.Or(strings.Compare(a.TitleSort, b.TitleSort), cmp.Compare(a.ID, b.ID))
	})
	return all
}

func (repository *fakePublications) List(_ context.Context, filter PublicationFilter, limit, offset int) ([]*Publication, int, error) {
	all := repository.sorted(func(p *Publication) bool {
		if filter.Kind != "" && p.Kind != filter.Kind {
			return false
		}

		readings := repository.readings.of(p.ID)
		if filter.Unread && len(readings) > 0 {
			return false
		}
		if filter.InProgress && !slices.ContainsFunc(readings, (*Reading).InProgress) {
			return false
		}
		return true
	})

	items, total := page(all, limit, offset)
	return items, total, nil
}

func (repository *fakePublications) ListBySeries(_ context.Context, seriesID int64) ([]*Publication, error) {
	return repository.sorted(func(p *Publication) bool {
		return p.SeriesID != nil && *p.SeriesID == seriesID
	}), nil
}

func (repository *fakePublications) FindByID(_ context.Context, id int64) (*Publication, error) {
	p, ok := repository.publications[id]
	if !ok {
		return nil, apperr.NotFound(resourcePublication)
	}
	return p, nil
}

func (repository *fakePublications) hydrate(p *Publication, inputs []role.Input) error {
	p.SeriesTitle = nil
	if p.SeriesID != nil {
		s, ok := repository.series.series[*p.SeriesID]
		if !ok {
			return apperr.ValidationError("Referenced record does not exist", apperr.FieldError{Field: FieldSeriesID})
		}
		p.SeriesTitle = pointer.To(s.Title)
	}

	p.Roles = []role.Role{}
	for i, input := range inputs {
		p.Roles = append(p.Roles, role.Role{
			ID:          int64(i + 1),
			CreatorID:   input.CreatorID,
			CreatorName: "Creator",
			RoleName:    input.RoleName,
			RoleOrder:   input.Order(),
		})
	}
	role.Sort(p.Roles)
	return nil
}

func (repository *fakePublications) Create(_ context.Context, p *Publication, roles []role.Input) error {
	if err := repository.hydrate(p, roles); err != nil {
		return err
	}

	repository.nextID++
	p.ID = repository.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	repository.publications[p.ID] = p
	return nil
}

func (repository *fakePublications) Update(_ context.Context, p *Publication, roles []role.Input) error {
	if _, ok := repository.publications[p.ID]; !ok {
		return apperr.NotFound(resourcePublication)
	}
	if err := repository.hydrate(p, roles); err != nil {
		return err
	}

	p.UpdatedAt = time.Now()
	repository.publications[p.ID] = p
	return nil
}

func (repository *fakePublications) Delete(_ context.Context, id int64) error {
	if _, ok := repository.publications[id]; !ok {
		return apperr.NotFound(resourcePublication)
	}
	delete(repository.publications, id)

	for readingID, r := range repository.readings.readings {
		if r.PublicationID == id {
			delete(repository.readings.readings, readingID)
		}
	}
	return nil
}

type fakeReadings struct {
	readings     map[int64]*Reading
	nextID       int64
	publications *fakePublications
}

func (repository *fakeReadings) of(publicationID int64) []*Reading {
	found := []*Reading{}
	for _, r := range repository.readings {
		if r.PublicationID == publicationID {
			found = append(found, r)
		}
	}
	return found
}

// compareDates orders dates ascending with missing dates last.
func compareDates(a, b *date.Date) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(b.Time)
}

func (repository *fakeReadings) List(_ context.Context, limit, offset int) ([]*Reading, int, error) {
	all := make([]*Reading, 0, len(repository.readings))
	for _, r := range repository.readings {
		all = append(all, r)
	}

	// Latest end date first, no end date last
	slices.SortFunc(all, func(a, b *Reading) int {
		if a.EndDate == nil || b.EndDate == nil {
			return cmp.Or(compareDates(a.EndDate, b.EndDate), cmp.Compare(b.ID, a.ID))
		}
		return cmp.Or(b.EndDate.Compare(a.EndDate.Time), cmp.Compare(b.ID, a.ID))
	})

	items, total := page(all, limit, offset)
	return items, total, nil
}

func (repository *fakeReadings) ListByPublication(_ context.Context, publicationID int64) ([]*Reading, error) {
	found := repository.of(publicationID)
	slices.SortFunc(found, func(a, b *Reading) int {
		return cmp.Or(compareDates(a.StartDate, b.StartDate), cmp.Compare(a.ID, b.ID))
	})
	return found, nil
}

func (repository *fakeReadings) FindByID(_ context.Context, id int64) (*Reading, error) {
	r, ok := repository.readings[id]
	if !ok {
		return nil, apperr.NotFound(resourceReading)
	}
	return r, nil
}

func (repository *fakeReadings) Create(_ context.Context, r *Reading) error {
	p, ok := repository.publications.publications[r.PublicationID]
	if !ok {
		return apperr.ValidationError("Referenced record does not exist")
	}

	repository.nextID++
	r.ID = repository.nextID
	r.PublicationTitle = p.Title
	r.CreatedAt = time.Now()
	r.UpdatedAt = r.CreatedAt
	repository.readings[r.ID] = r
	return nil
}

func (repository *fakeReadings) Update(_ context.Context, r *Reading) error {
	current, ok := repository.readings[r.ID]
	if !ok {
		return apperr.NotFound(resourceReading)
	}

	r.PublicationID = current.PublicationID
	r.PublicationTitle = current.PublicationTitle
	r.CreatedAt = current.CreatedAt
	r.UpdatedAt = time.Now()
	repository.readings[r.ID] = r
	return nil
}

func (repository *fakeReadings) Delete(_ context.Context, id int64) error {
	if _, ok := repository.readings[id]; !ok {
		return apperr.NotFound(resourceReading)
	}
	delete(repository.readings, id)
	return nil
}

type fixture struct {
	service      *Service
	series       *fakeSeries
	publications *fakePublications
	readings     *fakeReadings
}

func newFixture(tags AmazonTags) *fixture {
	series := &fakeSeries{series: map[int64]*Series{}}
	publications := &fakePublications{publications: map[int64]*Publication{}}
	readings := &fakeReadings{readings: map[int64]*Reading{}}

	series.publications = publications
	publications.series = series
	publications.readings = readings
	readings.publications = publications

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &fixture{
		service:      NewService(series, publications, readings, tags, logger),
		series:       series,
		publications: publications,
		readings:     readings,
	}
}

func (f *fixture) publish(t *testing.T, input PublicationInput) *Publication {
	t.Helper()
	publication, err := f.service.CreatePublication(context.Background(), input)
	require.NoError(t, err)
	return publication
}

func (f *fixture) read(t *testing.T, publicationID int64, input ReadingInput) *Reading {
	t.Helper()
	reading, err := f.service.CreateReading(context.Background(), publicationID, input)
	require.NoError(t, err)
	return reading
}

func day(value string) *date.Date {
	return pointer.To(date.MustParse(value))
}

func titles(publications []*Publication) []string {
	names := make([]string, 0, len(publications))
	for _, p := range publications {
		names = append(names, p.Title)
	}
	return names
}

// # Publications

func TestService_CreatePublicationDefaults(t *testing.T) {
	f := newFixture(AmazonTags{UK: "uk-21"})

	publication := f.publish(t, PublicationInput{Title: " The Dispossessed ", ISBNUK: "0356500489"})

	assert.Equal(t, "The Dispossessed", publication.Title)
	assert.Equal(t, "dispossessed, the", publication.TitleSort)
	assert.Equal(t, KindBook, publication.Kind)
	assert.True(t, publication.HasURLs)
	require.Len(t, publication.AmazonURLs, 1)
	assert.Equal(t, "https://www.amazon.co.uk/gp/product/0356500489/?tag=uk-21", publication.AmazonURLs[0].URL)
}

func TestService_PublicationValidation(t *testing.T) {
	f := newFixture(AmazonTags{})

	tests := []struct {
		name  string
		input PublicationInput
		field string
	}{
		{"missing title", PublicationInput{}, FieldTitle},
		{"unknown kind", PublicationInput{Title: "X", Kind: "comic"}, FieldKind},
		{"bad isbn", PublicationInput{Title: "X", ISBNUK: "035-650-048"}, FieldISBNUK},
		{"bad official url", PublicationInput{Title: "X", OfficialURL: "ftp://example.org"}, FieldOfficialURL},
		{"bad series id", PublicationInput{Title: "X", SeriesID: pointer.To(int64(0))}, FieldSeriesID},
		{"role without creator", PublicationInput{Title: "X", Roles: []role.Input{{RoleName: "Author"}}}, FieldRoles + "[0].creator_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreatePublication(context.Background(), tt.input)

			var appErr *apperr.AppError
			require.ErrorAs(t, err, &appErr)
			require.Len(t, appErr.Details, 1)
			assert.Equal(t, tt.field, appErr.Details[0].Field)
		})
	}
}

func TestService_ListPublicationsByKind(t *testing.T) {
	f := newFixture(AmazonTags{})
	f.publish(t, PublicationInput{Title: "The Wire, Issue 400", Kind: KindPeriodical})
	f.publish(t, PublicationInput{Title: "Aurora"})
	f.publish(t, PublicationInput{Title: "A Book"})

	all, total, err := f.service.ListPublications(context.Background(), PublicationFilter{}, 25, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"Aurora", "A Book", "The Wire, Issue 400"}, titles(all))

	periodicals, total, err := f.service.ListPublications(context.Background(), PublicationFilter{Kind: KindPeriodical}, 25, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, []string{"The Wire, Issue 400"}, titles(periodicals))
}

func TestService_InProgressAndUnread(t *testing.T) {
	f := newFixture(AmazonTags{})
	reading := f.publish(t, PublicationInput{Title: "Reading Now"})
	finished := f.publish(t, PublicationInput{Title: "Finished"})
	f.publish(t, PublicationInput{Title: "Untouched"})
	reread := f.publish(t, PublicationInput{Title: "Reread"})

	f.read(t, reading.ID, ReadingInput{StartDate: day("2024-03-01")})
	f.read(t, finished.ID, ReadingInput{StartDate: day("2024-01-01"), EndDate: day("2024-01-20"), IsFinished: true})
	f.read(t, reread.ID, ReadingInput{StartDate: day("2023-01-01"), EndDate: day("2023-02-01"), IsFinished: true})
	f.read(t, reread.ID, ReadingInput{StartDate: day("2024-04-01")})

	inProgress, _, err := f.service.ListPublications(context.Background(), PublicationFilter{InProgress: true}, 25, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Reading Now", "Reread"}, titles(inProgress))

	unread, _, err := f.service.ListPublications(context.Background(), PublicationFilter{Unread: true}, 25, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Untouched"}, titles(unread))
}

func TestService_GetPublicationWithReadings(t *testing.T) {
	f := newFixture(AmazonTags{})
	publication := f.publish(t, PublicationInput{Title: "Middlemarch"})
	f.read(t, publication.ID, ReadingInput{StartDate: day("2024-05-01")})
	f.read(t, publication.ID, ReadingInput{StartDate: day("2010-05-01"), EndDate: day("2010-09-01"), IsFinished: true})

	detail, err := f.service.GetPublication(context.Background(), publication.ID)
	require.NoError(t, err)

	require.Len(t, detail.Readings, 2)
	assert.Equal(t, StateFinished, detail.Readings[0].State())
	assert.Equal(t, StateInProgress, detail.Readings[1].State())
	assert.False(t, detail.HasURLs)
	assert.Empty(t, detail.AmazonURLs)

	_, err = f.service.GetPublication(context.Background(), 99)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_DeletePublicationRemovesReadings(t *testing.T) {
	f := newFixture(AmazonTags{})
	publication := f.publish(t, PublicationInput{Title: "Gone"})
	reading := f.read(t, publication.ID, ReadingInput{StartDate: day("2024-05-01")})

	require.NoError(t, f.service.DeletePublication(context.Background(), publication.ID))

	_, err := f.service.GetReading(context.Background(), reading.ID)
	assert.True(t, apperr.IsNotFound(err))
}

// # Series

func TestService_SeriesDetail(t *testing.T) {
	f := newFixture(AmazonTags{})
	series, err := f.service.CreateSeries(context.Background(), SeriesInput{Title: "The London Review of Books", URL: "https://www.lrb.co.uk/"})
	require.NoError(t, err)
	assert.Equal(t, "london review of books, the", series.TitleSort)

	f.publish(t, PublicationInput{Title: "Vol. 39 No. 4", Kind: KindPeriodical, SeriesID: &series.ID})
	f.publish(t, PublicationInput{Title: "Vol. 39 No. 3", Kind: KindPeriodical, SeriesID: &series.ID})
	f.publish(t, PublicationInput{Title: "Standalone"})

	detail, err := f.service.GetSeries(context.Background(), series.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vol. 39 No. 3", "Vol. 39 No. 4"}, titles(detail.Publications))
	assert.Equal(t, "The London Review of Books", *detail.Publications[0].SeriesTitle)
}

func TestService_DeleteSeriesDetachesPublications(t *testing.T) {
	f := newFixture(AmazonTags{})
	series, err := f.service.CreateSeries(context.Background(), SeriesInput{Title: "Granta"})
	require.NoError(t, err)
	publication := f.publish(t, PublicationInput{Title: "Granta 1", SeriesID: &series.ID})

	require.NoError(t, f.service.DeleteSeries(context.Background(), series.ID))

	detail, err := f.service.GetPublication(context.Background(), publication.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.SeriesID)
}

func TestService_SeriesValidation(t *testing.T) {
	f := newFixture(AmazonTags{})

	_, err := f.service.CreateSeries(context.Background(), SeriesInput{Title: "", URL: "not a url"})

	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Details, 2)
}

// # Readings

func TestService_ReadingDefaultsAndValidation(t *testing.T) {
	f := newFixture(AmazonTags{})
	publication := f.publish(t, PublicationInput{Title: "Dune"})

	reading := f.read(t, publication.ID, ReadingInput{StartDate: day("2024-01-01"), EndGranularity: GranularityYear})
	assert.Equal(t, GranularityDay, reading.StartGranularity)
	assert.Equal(t, GranularityYear, reading.EndGranularity)
	assert.Equal(t, "Dune", reading.PublicationTitle)

	_, err := f.service.CreateReading(context.Background(), publication.ID, ReadingInput{StartGranularity: 5})
	var appErr *apperr.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, FieldStartGranularity, appErr.Details[0].Field)
}

func TestService_ReadingEndBeforeStartAccepted(t *testing.T) {
	f := newFixture(AmazonTags{})
	publication := f.publish(t, PublicationInput{Title: "Backwards"})

	reading := f.read(t, publication.ID, ReadingInput{StartDate: day("2024-05-01"), EndDate: day("2024-01-01")})
	assert.Equal(t, StateAbandoned, reading.State())
}

func TestService_CreateReadingForMissingPublication(t *testing.T) {
	f := newFixture(AmazonTags{})

	_, err := f.service.CreateReading(context.Background(), 42, ReadingInput{})
	assert.True(t, apperr.IsNotFound(err))
	assert.Empty(t, f.readings.readings)
}

func TestService_ListReadingsByEndDate(t *testing.T) {
	f := newFixture(AmazonTags{})
	publication := f.publish(t, PublicationInput{Title: "Often Read"})

	first := f.read(t, publication.ID, ReadingInput{StartDate: day("2020-01-01"), EndDate: day("2020-02-01")})
	ongoing := f.read(t, publication.ID, ReadingInput{StartDate: day("2024-01-01")})
	latest := f.read(t, publication.ID, ReadingInput{StartDate: day("2022-01-01"), EndDate: day("2022-03-01")})

	readings, total, err := f.service.ListReadings(context.Background(), 25, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	ids := []int64{readings[0].ID, readings[1].ID, readings[2].ID}
	assert.Equal(t, []int64{latest.ID, first.ID, ongoing.ID}, ids)
}

func TestService_UpdateReadingKeepsPublication(t *testing.T) {
	f := newFixture(AmazonTags{})
	publication := f.publish(t, PublicationInput{Title: "Kept"})
	reading := f.read(t, publication.ID, ReadingInput{StartDate: day("2024-01-01")})

	updated, err := f.service.UpdateReading(context.Background(), reading.ID, ReadingInput{
		StartDate:  day("2024-01-01"),
		EndDate:    day("2024-02-01"),
		IsFinished: true,
	})
	require.NoError(t, err)
	assert.Equal(t, publication.ID, updated.PublicationID)
	assert.Equal(t, StateFinished, updated.State())

	require.NoError(t, f.service.DeleteReading(context.Background(), reading.ID))
	assert.True(t, apperr.IsNotFound(f.service.DeleteReading(context.Background(), reading.ID)))
}
