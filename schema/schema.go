// Package schema re-exports the record types of packages location and load
// under a single import path.
//
// Deprecated: import vaccine-feed-ingest-schema/location or
// vaccine-feed-ingest-schema/load instead. This package may be removed in a
// future major version.
package schema

import (
	"vaccine-feed-ingest-schema/load"
	"vaccine-feed-ingest-schema/location"
)

type (
	Address            = location.Address
	LatLng             = location.LatLng
	Contact            = location.Contact
	OpenDate           = location.OpenDate
	OpenHour           = location.OpenHour
	Availability       = location.Availability
	Vaccine            = location.Vaccine
	Access             = location.Access
	Organization       = location.Organization
	Link               = location.Link
	Source             = location.Source
	NormalizedLocation = location.NormalizedLocation

	ImportMatchAction    = load.ImportMatchAction
	ImportSourceLocation = load.ImportSourceLocation
)
