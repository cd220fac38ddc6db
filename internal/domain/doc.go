// Package domain contains the core entities of the news API (topics, articles,
// comments and users) together with the tagged error kinds that flow from the
// query layer to the HTTP error classification pipeline. It is independent of
// any specific infrastructure or delivery mechanism.
package domain
