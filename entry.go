package tracker

import "encoding/json"

// Entry is implemented by every domain object persisted in the remote store.
//
// An entry with no id has never been persisted and is created on save; an
// entry with an id corresponds to an existing remote row and is updated on
// save. The id is assigned by the remote store, never chosen locally.
//
// MarshalJSON encodes the entry's own fields only: the identity envelope
// (id, table routing) is added and stripped at the boundary between the
// Database and the transport.
type Entry interface {
	json.Marshaler
	// Table returns the remote collection this entry is saved to.
	Table() string
	// ID returns the remote row id, or ok=false if the entry was never
	// persisted.
	ID() (int64, bool)

	setID(id int64)
}

// The remote collection each entity type is saved to. Kept next to the
// entity's Table method rather than as process-wide mutable state.
const (
	tableVehicles    = "vehicles"
	tableInvestments = "investments"
	tablePortfolios  = "portfolios"
	tablePastPrices  = "past_prices"
)

// row holds the remote identity shared by every persisted entity.
type row struct {
	id *int64
}

// ID returns the remote row id, or ok=false if the entity was never persisted.
func (r *row) ID() (int64, bool) {
	if r.id == nil {
		return 0, false
	}
	return *r.id, true
}

func (r *row) setID(id int64) { r.id = &id }
