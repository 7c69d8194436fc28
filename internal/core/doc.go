// Package core provides the table model and cleaning primitives for raw
// flight-network CSV files (airports, airlines, routes).
//
// # Tables and the missing marker
//
// A [Table] is an ordered list of columns and rows; each [Row] maps a column
// name to a [Cell]. Cells start as raw text. Coercion is total: [ToNumeric]
// and [ToInteger] never fail, they return a cell whose Valid reports false.
// That invalid cell is the missing marker, and cleaners treat it uniformly:
//
//	t = t.Map("latitude", core.ToNumeric)
//	t = t.DropMissing("latitude")      // required column
//	t = t.Map("airline_id", core.ToInteger) // nullable column: missing survives
//
// # Entity Registry
//
// Entities are registered at init time using [Register]. Each
// [EntityDefinition] carries the expected raw columns and a [CleanFunc]:
//
//	core.Register(core.EntityDefinition{
//	    Info:       core.EntityInfo{Key: "airports", FileName: "airports.csv", Match: "airport"},
//	    FieldSpecs: schema.AirportFieldSpecs,
//	    Clean:      CleanAirports,
//	})
//
// [Match] dispatches a file name to its entity by substring.
//
// # Reading and writing
//
// [ReadFile] decodes a raw file and loads it with a header-then-positional
// strategy. [WriteFile] writes a table as CSV with a header row.
//
// # Error Handling
//
// [Classify] maps pipeline errors to coded issues (FILE001, CSV001, ...)
// used in status lines. No issue aborts a run.
package core
