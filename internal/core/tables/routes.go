package tables

import (
	"github.com/JonMunkholm/flightgraph/internal/core"
	"github.com/JonMunkholm/flightgraph/internal/schema"
)

func init() {
	registerRoutes()
}

func registerRoutes() {
	core.Register(core.EntityDefinition{
		Info: core.EntityInfo{
			Key:      "routes",
			FileName: "routes.csv",
			Match:    "route",
			Order:    3,
		},
		FieldSpecs: schema.RouteFieldSpecs,
		Clean:      CleanRoutes,
	})
}

// CleanRoutes keeps the fields that become graph edges: airline_id,
// source_airport_id, destination_airport_id and stops.
//
// Source and destination ids are the edge endpoints and must be valid
// integers; rows without them are dropped. airline_id is a nullable integer:
// a route flown by an unknown carrier keeps its row with an empty airline_id.
// Routes are not checked against the cleaned airport or airline tables.
func CleanRoutes(t core.Table) core.Table {
	specs := schema.RouteFieldSpecs
	keep := core.Kept(specs)
	endpoints := core.Required(specs)

	t = t.Select(keep...)
	if len(t.Present(endpoints...)) == len(endpoints) {
		t = t.DropMissing(endpoints...)
	}
	t = t.DedupeBy()
	t = t.Rename(core.NormalizeColumnName)

	t = coerceNumeric(t, numericColumns(specs)...)
	for _, col := range normalizeAll(endpoints) {
		if t.Has(col) {
			t = t.DropMissing(col)
		}
	}
	// airline_id is not required, so its missing values survive the cast.
	t = castIntegers(t, integerColumns(specs)...)

	return t.Select(normalizeAll(keep)...)
}
