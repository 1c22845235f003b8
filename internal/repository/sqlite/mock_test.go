package sqlite

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow   = time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)
	fixedStamp = formatTime(fixedNow)
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = conn.Close()
	})

	return &DB{DB: conn, now: func() time.Time { return fixedNow }}, mock
}
