package store

import (
	"time"

	"github.com/MKhiriev/go-secrets/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns    = []string{"user_id", "email", "password", "created_at"}
	sessionColumns = []string{"token_hash", "email", "expires_at", "created_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("email", "password").
		Values(user.Login, user.PasswordHash).
		Suffix("RETURNING user_id, email, password, created_at").
		ToSql()
}

func buildSelectUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": login}).
		ToSql()
}

func buildInsertSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Insert(session.TableName()).
		Columns(sessionColumns...).
		Values(session.TokenHash, session.Login, session.ExpiresAt.UTC(), session.CreatedAt.UTC()).
		ToSql()
}

func buildSelectSessionQuery(b sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	return b.Select(sessionColumns...).
		From(models.Session{}.TableName()).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, tokenHash string) (string, []any, error) {
	return b.Delete(models.Session{}.TableName()).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Delete(models.Session{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now.UTC()}).
		ToSql()
}
