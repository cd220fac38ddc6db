// Package store defines the query layer interfaces for topics, articles,
// comments and users. Implementations translate each logical operation into
// parameterized SQL and return plain domain values, reporting "no such row"
// as a domain.KindNotFound error.
package store
