// Package postgres provides PostgreSQL-specific implementations for the query
// layer interfaces defined in the internal/store package.
//
// Every statement is parameterized. Caller-supplied identifiers are passed
// through unchanged so that PostgreSQL itself rejects malformed ids (SQLSTATE
// 22P02) and unknown references (SQLSTATE 23503); the helpers in errors.go let
// the HTTP layer recognize those failures. The only value interpolated into
// query text is the ORDER BY column, which is drawn from a fixed allow-list.
package postgres
