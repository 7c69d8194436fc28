// Package schema holds the expected raw column layout of every entity file,
// in the order the open flight datasets publish them.
//
// A header-bearing file is validated against these names; a header-less file
// receives them by position.
package schema

import "github.com/JonMunkholm/flightgraph/internal/core"

// AirportFieldSpecs defines the expected CSV columns for airports.csv.
var AirportFieldSpecs = []core.FieldSpec{
	{Name: "Airport ID", Type: core.FieldInteger, Required: true, Keep: true},
	{Name: "Name", Type: core.FieldText, Keep: true},
	{Name: "City", Type: core.FieldText},
	{Name: "Country", Type: core.FieldText},
	{Name: "IATA", Type: core.FieldText, Keep: true},
	{Name: "ICAO", Type: core.FieldText, Keep: true},
	{Name: "Latitude", Type: core.FieldNumeric, Required: true, Keep: true},
	{Name: "Longitude", Type: core.FieldNumeric, Required: true, Keep: true},
}

// AirlineFieldSpecs defines the expected CSV columns for airlines.csv.
var AirlineFieldSpecs = []core.FieldSpec{
	{Name: "Airline ID", Type: core.FieldInteger, Required: true, Keep: true},
	{Name: "Name", Type: core.FieldText, Keep: true},
	{Name: "Alias", Type: core.FieldText},
	{Name: "IATA", Type: core.FieldText},
	{Name: "ICAO", Type: core.FieldText},
	{Name: "Country", Type: core.FieldText},
	{Name: "Active", Type: core.FieldText},
}

// RouteFieldSpecs defines the expected CSV columns for routes.csv.
// Airline ID is kept but nullable: routes of unknown carriers survive.
var RouteFieldSpecs = []core.FieldSpec{
	{Name: "Airline", Type: core.FieldText},
	{Name: "Airline ID", Type: core.FieldInteger, Keep: true},
	{Name: "Source airport", Type: core.FieldText},
	{Name: "Source airport ID", Type: core.FieldInteger, Required: true, Keep: true},
	{Name: "Destination airport", Type: core.FieldText},
	{Name: "Destination airport ID", Type: core.FieldInteger, Required: true, Keep: true},
	{Name: "Codeshare", Type: core.FieldText},
	{Name: "Stops", Type: core.FieldText, Keep: true},
	{Name: "Equipment", Type: core.FieldText},
}
