// Package kv implements the keyed persistent store used by the portal.
//
// A Store wraps a durable string-keyed map (Backend) and encodes every value as
// UTF-8 JSON. Reads never fail: a missing or undecodable entry yields the
// caller's default and the stored bytes are left untouched. Writes never fail
// either: backend errors are logged and the in-memory mirror held by a Slot is
// still updated, so the session keeps working with the new value.
//
// Slot is the in-memory mirror of one key, List is an ordered collection of
// records with string ids built on top of a Slot, and Batch groups writes to
// several keys into one transaction when the backend supports it.
package kv
