package mysql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/forum-api/domain"
	mysqlRepo "github.com/Guyuepp/forum-api/internal/repository/mysql"
)

func TestThreadRepository_AddThread(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewThreadRepository(db, fixedID)
	nt := domain.NewThread{Title: faker.Sentence(), Body: faker.Paragraph()}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `threads`").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	added, err := repo.AddThread(context.Background(), "user-123", nt)
	require.NoError(t, err)
	assert.Equal(t, domain.AddedThread{ID: "thread-123", Title: nt.Title, Owner: "user-123"}, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThreadRepository_AddThreadError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewThreadRepository(db, fixedID)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `threads`").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.AddThread(context.Background(), "user-123", domain.NewThread{Title: "t", Body: "b"})
	assert.EqualError(t, err, "boom")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThreadRepository_VerifyThreadExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlRepo.NewThreadRepository(db, fixedID)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `threads` WHERE id = \\?").
			WithArgs("thread-123").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

		assert.NoError(t, repo.VerifyThreadExists(context.Background(), "thread-123"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlRepo.NewThreadRepository(db, fixedID)
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `threads` WHERE id = \\?").
			WithArgs("thread-404").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

		err := repo.VerifyThreadExists(context.Background(), "thread-404")
		var nf *domain.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, domain.ResourceThread, nf.Resource)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestThreadRepository_GetThreadByID(t *testing.T) {
	createdAt := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlRepo.NewThreadRepository(db, fixedID)
		rows := sqlmock.NewRows([]string{"id", "title", "body", "created_at", "owner_id", "username"}).
			AddRow("thread-123", "a title", "a body", createdAt, "user-123", "dicoding")
		mock.ExpectQuery("SELECT threads.\\*, users.username FROM `threads` JOIN users ON users.id = threads.owner_id WHERE threads.id = \\?").
			WillReturnRows(rows)

		thread, err := repo.GetThreadByID(context.Background(), "thread-123")
		require.NoError(t, err)
		assert.Equal(t, domain.Thread{
			ID:            "thread-123",
			Title:         "a title",
			Body:          "a body",
			CreatedAt:     createdAt,
			OwnerID:       "user-123",
			OwnerUsername: "dicoding",
		}, thread)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := mysqlRepo.NewThreadRepository(db, fixedID)
		mock.ExpectQuery("SELECT threads.\\*, users.username FROM `threads`").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetThreadByID(context.Background(), "thread-404")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestThreadRepository_FetchIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := mysqlRepo.NewThreadRepository(db, fixedID)
	mock.ExpectQuery("SELECT `id` FROM `threads` WHERE id > \\? ORDER BY id LIMIT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("thread-1").AddRow("thread-2"))

	ids, err := repo.FetchIDs(context.Background(), "", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"thread-1", "thread-2"}, ids)
}
