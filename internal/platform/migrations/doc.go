// Package migrations owns the database schema. The SQL files under sql/ are
// embedded into the binary and applied with goose, so the server can migrate
// its own database without the source tree being present.
package migrations
