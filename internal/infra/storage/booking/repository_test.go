package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db), db, mock
}

func bookingRow() *sqlmock.Rows {
	now := time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(columns).AddRow(
		int64(1), int64(7), "Tennis court", int64(42), "Ivan",
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC),
		time.Date(0, 1, 1, 10, 30, 0, 0, time.UTC),
		"pending", now, now,
	)
}

func newBooking() *domain.Booking {
	return &domain.Booking{
		FacilityID:   7,
		FacilityName: "Tennis court",
		UserID:       42,
		OwnerName:    ptr.Ptr("Ivan"),
		Date:         time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    "09:30",
		EndTime:      "10:30",
		Status:       domain.StatusPending,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))

	created, err := repo.Create(context.Background(), newBooking())

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExclusionViolation(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23P01", Message: "conflicting key value violates exclusion constraint"})

	_, err := repo.Create(context.Background(), newBooking())

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(bookingRow())

	b, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(7), b.FacilityID)
	assert.Equal(t, "Ivan", *b.OwnerName)
	assert.Equal(t, "09:30", b.StartTime.String())
	assert.Equal(t, "10:30", b.EndTime.String())
	assert.Equal(t, domain.StatusPending, b.Status)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_List_ExcludesRejectedByDefault(t *testing.T) {
	repo, _, mock := newRepo(t)
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE facility_id = \$1 AND booking_date = \$2 AND status IN \(\$3,\$4\) ORDER BY`).
		WithArgs(int64(7), date, domain.StatusPending, domain.StatusApproved).
		WillReturnRows(bookingRow())

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{FacilityID: ptr.Ptr(int64(7)), Date: &date})

	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_IncludeRejected(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM bookings ORDER BY`).
		WillReturnRows(sqlmock.NewRows(columns))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{IncludeRejected: true})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockFacilityDate(t *testing.T) {
	repo, db, mock := newRepo(t)
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	err := repo.LockFacilityDate(context.Background(), 7, date)
	assert.ErrorIs(t, err, ErrTransaction)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1, \$2\)`).
		WithArgs(int32(7), int32(20098)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.LockFacilityDate(dbmetrics.WithTx(context.Background(), tx), 7, date))
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatusFrom(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3 RETURNING`).
		WithArgs(domain.StatusApproved, int64(1), domain.StatusPending).
		WillReturnRows(bookingRow())

	_, err := repo.UpdateStatusFrom(context.Background(), 1, domain.StatusPending, domain.StatusApproved)
	require.NoError(t, err)

	mock.ExpectQuery("UPDATE bookings").WillReturnError(sql.ErrNoRows)

	_, err = repo.UpdateStatusFrom(context.Background(), 1, domain.StatusPending, domain.StatusApproved)
	assert.ErrorIs(t, err, ErrStatusChanged)
}

func TestRepository_Delete(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(`DELETE FROM bookings WHERE id = \$1`).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 1))

	mock.ExpectExec("DELETE FROM bookings").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), ErrBookingNotFound)
}
