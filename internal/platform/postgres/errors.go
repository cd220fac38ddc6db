package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mdobak/go-xerrors"
)

// PostgreSQL error codes
const (
	// invalidTextRepresentationCode is raised when a value cannot be parsed
	// as the column type, e.g. 'abc' for an integer id.
	invalidTextRepresentationCode = "22P02"

	// numericValueOutOfRangeCode is raised when a numeric literal does not
	// fit the column type.
	numericValueOutOfRangeCode = "22003"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"
)

// Referenced tables reported by ForeignKeyTable.
const (
	TableArticles = "articles"
	TableUsers    = "users"
	TableTopics   = "topics"
)

// detailTableRegex extracts the referenced table from a foreign key
// violation detail such as: Key (author)=(x) is not present in table "users".
var detailTableRegex = regexp.MustCompile(`is not present in table "?([\w.]+?)"?\.?$`)

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}

// IsInvalidInput reports whether err is PostgreSQL rejecting a caller value
// because of its shape: unparsable text, an out-of-range number or a missing
// required column value.
func IsInvalidInput(err error) bool {
	code, ok := pgCode(err)
	if !ok {
		return false
	}
	switch code {
	case invalidTextRepresentationCode, numericValueOutOfRangeCode, notNullViolationCode:
		return true
	default:
		return false
	}
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign key constraint violation.
// This occurs when an operation would violate referential integrity constraints.
func IsForeignKeyViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == foreignKeyViolationCode
}

// IsUniqueViolation checks if the given error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == uniqueViolationCode
}

// ForeignKeyTable returns the table whose row was missing when err is a
// foreign key violation. The detail message is authoritative; the
// constraint name is used when the server omits the detail.
func ForeignKeyTable(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolationCode {
		return "", false
	}

	if m := detailTableRegex.FindStringSubmatch(strings.TrimSpace(pgErr.Detail)); m != nil {
		table := m[1]
		if i := strings.LastIndex(table, "."); i >= 0 {
			table = table[i+1:]
		}
		return table, true
	}

	constraint := pgErr.ConstraintName
	switch {
	case strings.Contains(constraint, "article_id"):
		return TableArticles, true
	case strings.Contains(constraint, "author"):
		return TableUsers, true
	case strings.Contains(constraint, "topic"):
		return TableTopics, true
	}

	return "", true
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected, it returns notFound. This is used by DELETE
// statements where the absence of affected rows means the target did not exist.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

// wrapQueryError annotates an unexpected query failure with the operation
// name and a stack trace. The original error stays reachable through
// errors.As so SQLSTATE classification still works.
func wrapQueryError(op string, err error) error {
	return xerrors.Newf("%s: %w", op, err)
}

// logQueryFailure records a failed statement. Rejected caller input is an
// expected client mistake and is kept at debug level.
func logQueryFailure(log *slog.Logger, op string, err error, attrs ...slog.Attr) {
	args := make([]any, 0, len(attrs)+1)
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.String("error", err.Error()))

	if IsInvalidInput(err) {
		log.Debug(op+" rejected input", args...)
		return
	}
	log.Error("failed to "+op, args...)
}
