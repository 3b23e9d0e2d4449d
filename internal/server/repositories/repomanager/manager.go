package repomanager

import (
	"context"
	"database/sql"

	"github.com/ledgerline/taxintake/internal/dbx"
	"github.com/ledgerline/taxintake/internal/server/repositories/drafts"
	"github.com/ledgerline/taxintake/internal/server/repositories/files"
	"github.com/ledgerline/taxintake/internal/server/repositories/signintokens"
	"github.com/ledgerline/taxintake/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	SignInTokens(db dbx.DBTX) signintokens.Repository
	Drafts(db dbx.DBTX) drafts.Repository
	Files(db dbx.DBTX) files.Repository
}
