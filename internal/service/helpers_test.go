package service

import (
	"database/sql"
	"testing"

	"github.com/saish1609/timetrack/internal/db"
	"github.com/saish1609/timetrack/internal/repository"
	"github.com/saish1609/timetrack/internal/testutil"
)

type testRepos struct {
	database *sql.DB
	entries  *repository.SQLiteEntryRepo
	tasks    *repository.SQLiteTaskRepo
	projects *repository.SQLiteProjectRepo
	uow      db.UnitOfWork
}

func setupRepos(t *testing.T) testRepos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return testRepos{
		database: database,
		entries:  repository.NewSQLiteEntryRepo(database),
		tasks:    repository.NewSQLiteTaskRepo(database),
		projects: repository.NewSQLiteProjectRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}

func strPtr(s string) *string { return &s }
