package tracker

import (
	"encoding/json"
	"net/url"
)

// Client is the RESTful transport the Database speaks through to the remote
// record store. Implementations address `{server}/{table}` for collection
// operations and `{server}/{table}/{id}` for row operations, and surface
// failures as ErrUnreachable (no response) or ErrRejected (non-success
// response).
//
// The Database performs one blocking round trip per call and never retries;
// timeout and cancellation policy belong to the implementation.
type Client interface {
	// Post creates a row in the table and returns the response body,
	// including the envelope with the assigned id.
	Post(table string, body json.RawMessage) (json.RawMessage, error)
	// Put updates the row addressed by id and returns the response body.
	Put(table string, id int64, body json.RawMessage) (json.RawMessage, error)
	// Get returns the row addressed by id.
	Get(table string, id int64) (json.RawMessage, error)
	// Find returns the collection filtered by the given query parameters.
	Find(table string, params url.Values) (json.RawMessage, error)
}
