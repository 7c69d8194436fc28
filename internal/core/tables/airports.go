package tables

import (
	"github.com/JonMunkholm/flightgraph/internal/core"
	"github.com/JonMunkholm/flightgraph/internal/schema"
)

func init() {
	registerAirports()
}

func registerAirports() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:      "airports",
			FileName: "airports.csv",
			Match:    "airport",
			Order:    1,
		},
		FieldSpecs: schema.AirportFieldSpecs,
		Clean:      CleanAirports,
	})
}

// CleanAirports keeps the columns the graph needs to place an airport:
// airport_id, name, iata, icao, latitude, longitude. Rows without a valid id
// or valid coordinates are dropped, and ids are unique in the result.
func CleanAirports(t core.Table) core.Table {
	specs := schema.AirportFieldSpecs
	keep := core.Kept(specs)
	required := normalizeAll(core.Required(specs))

	t = t.Select(keep...)
	t = t.DedupeBy("Airport ID")
	t = t.Rename(core.NormalizeColumnName)

	t = coerceNumeric(t, numericColumns(specs)...)
	t = t.DropMissing(required...)
	t = castIntegers(t, integerColumns(specs)...)

	// "1" and "1.0" only collide after the cast.
	t = t.DedupeBy("airport_id")

	return t.Select(normalizeAll(keep)...)
}
