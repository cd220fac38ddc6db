// Package api handles incoming HTTP requests for topics, articles, comments
// and users. Handlers parse path, query and body input, call the query layer
// or the article service, and shape the JSON response. Failures are never
// answered inline: they go through ClassifyError, which owns the mapping from
// error to status code and client message.
package api
