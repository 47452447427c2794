// Package weread implements the book catalog and annotation source
// ports against the WeRead web API.
//
// The API is the same one the web reader uses: authentication is a
// browser cookie, there is no OAuth surface, and responses embed an
// errCode field instead of failing the HTTP status on expired cookies.
// Requests are proactively throttled because the service bans
// aggressive clients.
package weread
