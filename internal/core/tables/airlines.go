package tables

import (
	"github.com/JonMunkholm/flightgraph/internal/core"
	"github.com/JonMunkholm/flightgraph/internal/schema"
)

func init() {
	registerAirlines()
}

func registerAirlines() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:      "airlines",
			FileName: "airlines.csv",
			Match:    "airline",
			Order:    2,
		},
		FieldSpecs: schema.AirlineFieldSpecs,
		Clean:      CleanAirlines,
	})
}

// CleanAirlines reduces airlines to airline_id and name, dropping rows
// without a valid integer id. Ids are unique in the result.
func CleanAirlines(t core.Table) core.Table {
	specs := schema.AirlineFieldSpecs
	keep := core.Kept(specs)

	t = t.Select(keep...)
	t = t.DedupeBy("Airline ID")
	t = t.Rename(core.NormalizeColumnName)

	t = coerceNumeric(t, numericColumns(specs)...)
	t = t.DropMissing(normalizeAll(core.Required(specs))...)
	t = castIntegers(t, integerColumns(specs)...)
	t = t.DedupeBy("airline_id")

	return t.Select(normalizeAll(keep)...)
}
