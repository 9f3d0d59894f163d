// Package tracker models a portfolio of financial investments whose value
// changes over time, and synchronizes that model with a remote record store
// over a RESTful transport.
//
// The core functionalities include:
//   - Valuation: vehicles hold sparse, time-indexed USD price series;
//     investments project a principal along their vehicle's growth; portfolios
//     aggregate investments into a base currency through a designated
//     exchange-rate vehicle. All three share the PriceTicker capability
//     (price at a point, price difference, rate of return).
//   - Entry identity: every persisted entity carries an optional remote id
//     deciding create-versus-update semantics on save; ids are assigned by
//     the store, never locally.
//   - Serialization: bidirectional JSON mapping per entity, embedding nested
//     entities inline or referencing them by foreign-key id.
//   - Data access: the Database loads, saves and searches entities through an
//     abstract REST client, one blocking round trip per call, with no
//     retries, caching or local arbitration of concurrent saves.
//
// The valuation engine is purely synchronous and in-memory; it has no
// network dependency. This package serves as the foundational logic for the
// `invt` command-line tool.
package tracker
