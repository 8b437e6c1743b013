// Package services holds the domain stores and the session manager.
//
// Each store loads its collection once, keeps it in memory as an
// insertion-ordered map keyed by id and writes the whole collection through
// the persistence gateway after every successful mutation. A failed write
// is returned to the caller; the in-memory change stays.
//
// Services perform no authorization. Callers decide who may invoke what
// (see package access).
//
// One process is assumed to be the only writer of the underlying store.
// Two processes sharing a store each keep their own copy and the last full
// write of a collection wins.
package services
