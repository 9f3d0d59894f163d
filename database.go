package tracker

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/invtracker/tracker/timepoint"
)

// Database orchestrates loads, saves and searches against the remote record
// store, translating response bodies back into typed entities. It holds no
// state beyond the client and performs no caching, batching or retries.
type Database struct {
	client Client
}

// NewDatabase returns a database backed by the given REST client.
func NewDatabase(client Client) *Database {
	return &Database{client: client}
}

// Save persists the entry. An entry with no id is created in its table and
// receives the id assigned by the store; an entry with an id updates the
// existing row. Concurrent saves on the same id are not arbitrated locally.
func (db *Database) Save(e Entry) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cannot encode %s entry: %w", e.Table(), err)
	}
	if id, ok := e.ID(); ok {
		_, err := db.client.Put(e.Table(), id, body)
		return err
	}
	resp, err := db.client.Post(e.Table(), body)
	if err != nil {
		return err
	}
	id, err := envelopeID(resp)
	if err != nil {
		return fmt.Errorf("create response for %s entry: %w", e.Table(), err)
	}
	e.setID(id)
	return nil
}

// LoadVehicle loads the vehicle with the given id.
func (db *Database) LoadVehicle(id int64) (*Vehicle, error) {
	body, err := db.client.Get(tableVehicles, id)
	if err != nil {
		return nil, err
	}
	return decodeVehicle(body)
}

// LoadInvestment loads the investment with the given id, rehydrating its
// vehicle if the store returned it as a reference.
func (db *Database) LoadInvestment(id int64) (*Investment, error) {
	body, err := db.client.Get(tableInvestments, id)
	if err != nil {
		return nil, err
	}
	return decodeInvestment(body, db)
}

// LoadPortfolio loads the portfolio with the given id, rehydrating its rate
// vehicle and investments if the store returned them as references.
func (db *Database) LoadPortfolio(id int64) (*Portfolio, error) {
	body, err := db.client.Get(tablePortfolios, id)
	if err != nil {
		return nil, err
	}
	return decodePortfolio(body, db)
}

// FindVehicles searches vehicles matching the query string.
func (db *Database) FindVehicles(query string) ([]*Vehicle, error) {
	body, err := db.client.Find(tableVehicles, url.Values{"q": {query}})
	if err != nil {
		return nil, err
	}
	items, err := envelopeArray(body, "$.vehicles")
	if err != nil {
		return nil, err
	}
	vehicles := make([]*Vehicle, 0, len(items))
	for _, item := range items {
		v, err := decodeVehicle(item)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// FindPastPrices returns the price observations of a vehicle between
// earliest and latest. The granularity instructs the server to omit
// observations that are redundant at a coarser resolution; the result is
// decoded as returned, never filtered client-side.
func (db *Database) FindPastPrices(vehicleID int64, granularity timepoint.Granularity, earliest, latest timepoint.Point) ([]PastPrice, error) {
	earliestJSON, err := json.Marshal(earliest)
	if err != nil {
		return nil, err
	}
	latestJSON, err := json.Marshal(latest)
	if err != nil {
		return nil, err
	}
	params := url.Values{
		"vehicle_id":    {strconv.FormatInt(vehicleID, 10)},
		"granularity":   {granularity.String()},
		"earliest_date": {string(earliestJSON)},
		"latest_date":   {string(latestJSON)},
	}
	body, err := db.client.Find(tablePastPrices, params)
	if err != nil {
		return nil, err
	}
	items, err := envelopeArray(body, "$.past_prices")
	if err != nil {
		return nil, err
	}
	prices := make([]PastPrice, 0, len(items))
	for _, item := range items {
		var jp jpastprice
		if err := json.Unmarshal(item, &jp); err != nil {
			return nil, fmt.Errorf("cannot decode past price from %q: %w", item, err)
		}
		prices = append(prices, jp.pastPrice())
	}
	return prices, nil
}

// envelopeID reads the store-assigned id from a response envelope.
func envelopeID(body json.RawMessage) (int64, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return 0, fmt.Errorf("not a correct json envelope: %w", err)
	}
	jval, err := jsonpath.Get("$.id", jobj)
	if err != nil {
		return 0, fmt.Errorf("envelope has no id: %w", err)
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("envelope id %v is not a number", jval)
	}
	return int64(val), nil
}

// envelopeArray extracts the named collection from a response envelope and
// returns its elements as raw JSON, ready for the typed decoders.
func envelopeArray(body json.RawMessage, path string) ([]json.RawMessage, error) {
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return nil, fmt.Errorf("not a correct json envelope: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("envelope has no %q collection: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("envelope %q is not a collection", path)
	}
	items := make([]json.RawMessage, 0, len(jlist))
	for _, elem := range jlist {
		raw, err := json.Marshal(elem)
		if err != nil {
			return nil, err
		}
		items = append(items, raw)
	}
	return items, nil
}
