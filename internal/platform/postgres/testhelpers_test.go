package postgres

import "github.com/jackc/pgx/v5/pgconn"

func newInvalidTextError() *pgconn.PgError {
	return &pgconn.PgError{
		Severity: "ERROR",
		Code:     "22P02",
		Message:  `invalid input syntax for type integer: "abc"`,
	}
}

func newForeignKeyViolation(table string) *pgconn.PgError {
	return &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        `insert or update on table "comments" violates foreign key constraint`,
		Detail:         `Key is not present in table "` + table + `".`,
		TableName:      "comments",
		ConstraintName: "comments_fkey",
	}
}
