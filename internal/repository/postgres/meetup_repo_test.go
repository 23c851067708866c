package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"privatemeetups/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestMeetupRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		meetup  *domain.Meetup
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			meetup: &domain.Meetup{
				Title:      "Rooftop drinks",
				StartTS:    createdAt.Add(time.Hour),
				EndTS:      createdAt.Add(3 * time.Hour),
				Lat:        52.52,
				Lng:        13.405,
				Visibility: domain.VisibilityPrivate,
				CreatedAt:  createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO meetups \(title, description, start_ts, end_ts, lat, lng, visibility, created_at\)`).
					WithArgs("Rooftop drinks", "", createdAt.Add(time.Hour), createdAt.Add(3*time.Hour), 52.52, 13.405, "private", createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("mu-uuid-1"))
			},
			wantID: "mu-uuid-1",
		},
		{
			name: "db error",
			meetup: &domain.Meetup{
				Title:     "Picnic",
				CreatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO meetups`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewMeetupRepository(db)
			err = repo.Create(ctx, tt.meetup)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.meetup.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMeetupRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	endedAt := createdAt.Add(4 * time.Hour)

	cols := []string{"id", "title", "description", "start_ts", "end_ts", "lat", "lng", "visibility", "ended_at", "created_at"}

	tests := []struct {
		name      string
		id        string
		mock      func(mock sqlmock.Sqlmock)
		wantErr   error
		wantEnded bool
	}{
		{
			name: "active meetup",
			id:   "mu-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description, start_ts, end_ts, lat, lng, visibility, ended_at, created_at`).
					WithArgs("mu-1").
					WillReturnRows(sqlmock.NewRows(cols).
						AddRow("mu-1", "Rooftop drinks", nil, createdAt.Add(time.Hour), createdAt.Add(3*time.Hour), 52.52, 13.405, "private", nil, createdAt))
			},
		},
		{
			name: "ended meetup",
			id:   "mu-2",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description`).
					WithArgs("mu-2").
					WillReturnRows(sqlmock.NewRows(cols).
						AddRow("mu-2", "Picnic", "bring snacks", createdAt, createdAt.Add(time.Hour), 0.0, 0.0, "private", endedAt, createdAt))
			},
			wantEnded: true,
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewMeetupRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.id, got.ID)
			require.Equal(t, tt.wantEnded, got.Ended())
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
