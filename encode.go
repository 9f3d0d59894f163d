package tracker

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/invtracker/tracker/timepoint"
	"github.com/shopspring/decimal"
)

// This file maps domain entities to and from their wire shapes.
//
// Encoders marshal an entity's own fields only; the id never appears in the
// body, it travels in the envelope the Database manages. Two encoding
// strategies coexist across the entity graph: nested entities are either
// embedded inline as full objects (a vehicle's past prices) or referenced by
// a bare foreign-key id (an investment's vehicle). Decoders accept both
// forms, rehydrating references through a loader.

// MarshalJSON encodes the vehicle's own fields. Recorded prices are embedded
// inline when present, so an encoded vehicle keeps its observations across a
// round trip.
func (v *Vehicle) MarshalJSON() ([]byte, error) {
	w := new(jsonObjectWriter)
	w.Append("symbol", v.symbol)
	w.Append("name", v.name)
	w.Optional("past_prices", slices.Collect(v.PastPrices()))
	return w.MarshalJSON()
}

// MarshalJSON encodes the investment's own fields. The vehicle is referenced
// by its foreign-key id: an investment cannot be encoded before its vehicle
// has been persisted.
func (inv *Investment) MarshalJSON() ([]byte, error) {
	w := new(jsonObjectWriter)
	w.Append("date_time", inv.when)
	w.Append("principal", inv.principal)
	if vid, ok := inv.vehicle.ID(); ok {
		w.Append("vehicle_id", vid)
	} else {
		w.fail(fmt.Errorf("vehicle %q has no remote id to reference, save it first: %w", inv.vehicle.Symbol(), ErrInvalidArgument))
	}
	return w.MarshalJSON()
}

// MarshalJSON encodes the portfolio's own fields. The exchange-rate vehicle
// is referenced by its foreign-key id.
func (p *Portfolio) MarshalJSON() ([]byte, error) {
	w := new(jsonObjectWriter)
	if rid, ok := p.rate.ID(); ok {
		w.Append("usd_to_base_currency_rate_vehicle_id", rid)
	} else {
		w.fail(fmt.Errorf("rate vehicle %q has no remote id to reference, save it first: %w", p.rate.Symbol(), ErrInvalidArgument))
	}
	return w.MarshalJSON()
}

// loader rehydrates foreign-keyed sub-entities while decoding.
type loader interface {
	LoadVehicle(id int64) (*Vehicle, error)
	LoadInvestment(id int64) (*Investment, error)
}

// jpastprice is the wire shape of a past price. The price is read as a
// decimal so the feed's exact figure survives until the final conversion.
type jpastprice struct {
	DateTime timepoint.Point `json:"date_time"`
	Price    decimal.Decimal `json:"price"`
}

func (j jpastprice) pastPrice() PastPrice {
	return PastPrice{When: j.DateTime, Price: j.Price.InexactFloat64()}
}

// decodeVehicle reconstructs a vehicle from a response body. Past prices are
// optional: a bare `{"symbol","name"}` body is a vehicle with no history.
func decodeVehicle(body []byte) (*Vehicle, error) {
	var jv struct {
		ID         *int64       `json:"id"`
		Symbol     string       `json:"symbol"`
		Name       string       `json:"name"`
		PastPrices []jpastprice `json:"past_prices"`
	}
	if err := json.Unmarshal(body, &jv); err != nil {
		return nil, fmt.Errorf("cannot decode vehicle from %q: %w", body, err)
	}
	v := NewVehicle(jv.Symbol, jv.Name)
	for _, jp := range jv.PastPrices {
		v.AddPastPrice(jp.pastPrice())
	}
	if jv.ID != nil {
		v.setID(*jv.ID)
	}
	return v, nil
}

// decodeInvestment reconstructs an investment from a response body. The
// vehicle is either embedded under "vehicle" or referenced by "vehicle_id",
// in which case it is loaded through ld.
func decodeInvestment(body []byte, ld loader) (*Investment, error) {
	var ji struct {
		ID        *int64          `json:"id"`
		DateTime  timepoint.Point `json:"date_time"`
		Principal decimal.Decimal `json:"principal"`
		Vehicle   json.RawMessage `json:"vehicle"`
		VehicleID *int64          `json:"vehicle_id"`
	}
	if err := json.Unmarshal(body, &ji); err != nil {
		return nil, fmt.Errorf("cannot decode investment from %q: %w", body, err)
	}

	var vehicle *Vehicle
	var err error
	switch {
	case ji.Vehicle != nil:
		vehicle, err = decodeVehicle(ji.Vehicle)
	case ji.VehicleID != nil:
		vehicle, err = ld.LoadVehicle(*ji.VehicleID)
	default:
		err = fmt.Errorf("investment has neither an embedded vehicle nor a vehicle_id: %w", ErrInvalidArgument)
	}
	if err != nil {
		return nil, err
	}

	inv, err := NewInvestment(ji.DateTime, ji.Principal.InexactFloat64(), vehicle)
	if err != nil {
		return nil, err
	}
	if ji.ID != nil {
		inv.setID(*ji.ID)
	}
	return inv, nil
}

// decodePortfolio reconstructs a portfolio from a response body. The
// exchange-rate vehicle and the investments are either embedded inline or
// referenced by id and loaded through ld.
func decodePortfolio(body []byte, ld loader) (*Portfolio, error) {
	var jp struct {
		ID            *int64            `json:"id"`
		Rate          json.RawMessage   `json:"usd_to_base_currency_rate"`
		RateID        *int64            `json:"usd_to_base_currency_rate_vehicle_id"`
		Investments   []json.RawMessage `json:"investments"`
		InvestmentIDs []int64           `json:"investment_ids"`
	}
	if err := json.Unmarshal(body, &jp); err != nil {
		return nil, fmt.Errorf("cannot decode portfolio from %q: %w", body, err)
	}

	var rate *Vehicle
	var err error
	switch {
	case jp.Rate != nil:
		rate, err = decodeVehicle(jp.Rate)
	case jp.RateID != nil:
		rate, err = ld.LoadVehicle(*jp.RateID)
	default:
		err = fmt.Errorf("portfolio has neither an embedded rate vehicle nor a usd_to_base_currency_rate_vehicle_id: %w", ErrInvalidArgument)
	}
	if err != nil {
		return nil, err
	}

	p := NewPortfolio(rate)
	for _, raw := range jp.Investments {
		inv, err := decodeInvestment(raw, ld)
		if err != nil {
			return nil, err
		}
		p.AddInvestment(inv)
	}
	for _, id := range jp.InvestmentIDs {
		inv, err := ld.LoadInvestment(id)
		if err != nil {
			return nil, err
		}
		p.AddInvestment(inv)
	}
	if jp.ID != nil {
		p.setID(*jp.ID)
	}
	return p, nil
}
