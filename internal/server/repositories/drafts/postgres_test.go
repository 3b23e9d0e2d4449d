package drafts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ledgerline/taxintake/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestFindCurrent_ReturnsNewestRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "status", "data", "updated_at"}).
		AddRow("d1", "u1", "Draft", []byte(`{"legal_name":"Ada"}`), now)

	mock.ExpectQuery(`SELECT id, user_id, status, data, updated_at FROM drafts WHERE user_id=\$1 ORDER BY updated_at DESC\s+LIMIT 1`).
		WithArgs("u1").
		WillReturnRows(rows)

	d, err := repo.FindCurrent(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID != "d1" || d.Status != "Draft" {
		t.Fatalf("unexpected draft: %+v", d)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindCurrent_NoRowsTranslatedToNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_id, status, data, updated_at FROM drafts`).
		WithArgs("u1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindCurrent(context.Background(), "u1")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestCreate_ReturnsInsertedRow(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "user_id", "status", "data", "updated_at"}).
		AddRow("d-new", "u1", "Draft", []byte(`{}`), time.Now())

	mock.ExpectQuery(`INSERT INTO drafts \(user_id, status, data\)`).
		WithArgs("u1", []byte(`{}`)).
		WillReturnRows(rows)

	d, err := repo.Create(context.Background(), "u1", []byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID != "d-new" {
		t.Fatalf("unexpected id: %s", d.ID)
	}
}

func TestPersist_ScopedToOwner(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := regexp.MustCompile(`UPDATE drafts SET data=\$3, updated_at=now\(\)`)

	mock.ExpectExec(q.String()).
		WithArgs("d1", "u1", []byte(`{"city":"Leeds"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Persist(context.Background(), "d1", "u1", []byte(`{"city":"Leeds"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPersist_ForeignRowNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE drafts SET data=\$3`).
		WithArgs("d1", "intruder", []byte(`{}`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Persist(context.Background(), "d1", "intruder", []byte(`{}`))
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestPersist_DBErrorWrapped(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE drafts SET data=\$3`).
		WithArgs("d1", "u1", []byte(`{}`)).
		WillReturnError(errors.New("db is down"))

	err := repo.Persist(context.Background(), "d1", "u1", []byte(`{}`))
	if err == nil || !regexp.MustCompile(`db error: .*db is down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestSetStatus_Submitted(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE drafts SET status=\$3, updated_at=now\(\)`).
		WithArgs("d1", "u1", "Submitted").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetStatus(context.Background(), "d1", "u1", "Submitted"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
