// Package schema defines the data model shared by the view engine: databases,
// typed properties, views with their filters and sorts, records, and the typed
// Value a record property is projected into.
//
// Everything here is a plain value type. Engine packages receive these as
// immutable snapshots and allocate new values for any derived state.
package schema
