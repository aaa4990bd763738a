package store

import "errors"

// ErrKeyNotFound is returned by [KeyValueStore.Get] when the key has never
// been written or was deleted.
var ErrKeyNotFound = errors.New("key not found")

// Low-level database errors wrapped by the SQLite store.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)

// Codec errors returned by typed accessors over [KeyValueStore].
var (
	// ErrEncodingValue is returned when a value cannot be JSON-encoded.
	ErrEncodingValue = errors.New("error encoding stored value")

	// ErrDecodingValue is returned when a stored value is not valid JSON
	// for the requested type.
	ErrDecodingValue = errors.New("error decoding stored value")
)
