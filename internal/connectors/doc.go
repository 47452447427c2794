// Package connectors provides implementations of the catalog and
// annotation source ports for remote note-taking services. Each
// connector knows how to authenticate against one service and fetch
// the reader's books, highlights and reviews.
package connectors
