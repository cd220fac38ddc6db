// Package testdb prepares a PostgreSQL database for integration tests.
//
// The schema comes from the embedded migrations in platform/migrations and
// the fixture data from seed.sql, so tests need nothing but a reachable
// database:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.Open(t)          // skips when DATABASE_URL is unset
//	    testdb.Reset(t, db)           // schema + seed, freshly applied
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        // changes made through tx are rolled back
//	    })
//	}
//
// Reset drops and re-applies every migration, then reloads the seed data.
// Tests that go through the HTTP pipeline use it instead of WithTx because
// concurrent fan-out queries need more than one connection. Packages that
// call Reset share the database, so integration runs use go test -p 1.
//
// The seed data is fixed: 3 topics (paper has no articles), 4 users
// (lurker has written nothing), 13 articles and 18 comments. Article 1 has
// 100 votes and 11 comments.
package testdb
