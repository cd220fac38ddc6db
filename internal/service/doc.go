// Package service contains the application use cases that span more than one
// store.
//
// ArticleService validates a parent resource and fetches its children in
// parallel: the existence check and the fetch share a cancellable context and
// the first failure wins. Single-store operations are thin delegations so
// that handlers depend on one collaborator per resource.
//
// The service layer depends on domain values and store interfaces, never on a
// specific database implementation.
package service
