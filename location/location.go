// Package location defines the normalized location schema: the records the
// vaccine-feed-ingest pipeline emits for every vaccination site it knows
// about, and the rules each record must satisfy.
//
// Records are plain structs. Optional scalars use their zero value for
// "absent" (booleans use pointers, since false is meaningful). Call Validate
// on a record built in code, or use Parse and its typed variants to decode
// and validate JSON in one step. Both strip surrounding whitespace from
// string fields and canonicalize dates and times before checking them.
package location

import (
	"strings"

	"vaccine-feed-ingest-schema/internal/validate"
)

// Address is a postal address.
type Address struct {
	Street1 string `json:"street1,omitempty" validate:"omitempty,max=256"`
	Street2 string `json:"street2,omitempty" validate:"omitempty,max=256"`
	City    string `json:"city,omitempty" validate:"omitempty,max=256"`
	State   State  `json:"state,omitempty" validate:"omitempty,enum"`
	Zip     string `json:"zip,omitempty" validate:"omitempty,zipcode"`
}

func (a *Address) normalize() {
	a.Street1 = strings.TrimSpace(a.Street1)
	a.Street2 = strings.TrimSpace(a.Street2)
	a.City = strings.TrimSpace(a.City)
	a.State = State(strings.TrimSpace(string(a.State)))
	a.Zip = strings.TrimSpace(a.Zip)
}

// Validate normalizes a and checks its fields.
func (a *Address) Validate() error {
	a.normalize()
	return validate.Struct("Address", a)
}

// LatLng is a WGS84 coordinate. Both fields are required; 0 is a valid
// value for either, hence the pointers.
type LatLng struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// NewLatLng returns the coordinate (lat, lng).
func NewLatLng(lat, lng float64) *LatLng {
	return &LatLng{Latitude: &lat, Longitude: &lng}
}

// Validate checks that ll has both coordinates within bounds.
func (ll *LatLng) Validate() error {
	return validate.Struct("LatLng", ll)
}

// Contact is a single way of reaching a site. Exactly one of Phone, Website,
// Email or Other must be set.
type Contact struct {
	ContactType ContactType `json:"contact_type,omitempty" validate:"omitempty,enum"`
	Phone       string      `json:"phone,omitempty" validate:"omitempty,us_phone"`
	Website     string      `json:"website,omitempty" validate:"omitempty,http_url"`
	Email       string      `json:"email,omitempty" validate:"omitempty,email"`
	Other       string      `json:"other,omitempty" validate:"omitempty,max=2046"`
}

func (c *Contact) normalize() {
	c.ContactType = ContactType(strings.TrimSpace(string(c.ContactType)))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Website = strings.TrimSpace(c.Website)
	c.Email = strings.TrimSpace(c.Email)
	c.Other = strings.TrimSpace(c.Other)
}

// Validate normalizes c and checks its fields.
func (c *Contact) Validate() error {
	c.normalize()
	return validate.Struct("Contact", c)
}

// values lists the names of the populated one-of fields.
func (c Contact) values() []string {
	var set []string
	for _, f := range []struct{ name, value string }{
		{"phone", c.Phone},
		{"website", c.Website},
		{"email", c.Email},
		{"other", c.Other},
	} {
		if f.value != "" {
			set = append(set, f.name)
		}
	}
	return set
}

// OpenDate is a range of dates a site is open. Closes may not precede Opens.
type OpenDate struct {
	Opens  Date `json:"opens,omitempty" validate:"omitempty,iso_date"`
	Closes Date `json:"closes,omitempty" validate:"omitempty,iso_date"`
}

func (od *OpenDate) normalize() {
	od.Opens = od.Opens.normalize()
	od.Closes = od.Closes.normalize()
}

// Validate normalizes od and checks its fields.
func (od *OpenDate) Validate() error {
	od.normalize()
	return validate.Struct("OpenDate", od)
}

// OpenHour is the local opening window for one day. Closes may not precede Opens.
type OpenHour struct {
	Day    DayOfWeek `json:"day" validate:"required,enum"`
	Opens  LocalTime `json:"opens" validate:"required,local_time"`
	Closes LocalTime `json:"closes" validate:"required,local_time"`
}

func (oh *OpenHour) normalize() {
	oh.Day = DayOfWeek(strings.TrimSpace(string(oh.Day)))
	oh.Opens = oh.Opens.normalize()
	oh.Closes = oh.Closes.normalize()
}

// Validate normalizes oh and checks its fields.
func (oh *OpenHour) Validate() error {
	oh.normalize()
	return validate.Struct("OpenHour", oh)
}

// Availability says how appointments are offered.
type Availability struct {
	DropIn       *bool `json:"drop_in,omitempty"`
	Appointments *bool `json:"appointments,omitempty"`
}

// Validate checks a. Availability has no constrained fields.
func (a *Availability) Validate() error {
	return validate.Struct("Availability", a)
}

// Vaccine is one entry of a site's inventory.
type Vaccine struct {
	Vaccine     VaccineType   `json:"vaccine" validate:"required,enum"`
	SupplyLevel VaccineSupply `json:"supply_level,omitempty" validate:"omitempty,enum"`
}

func (v *Vaccine) normalize() {
	v.Vaccine = VaccineType(strings.TrimSpace(string(v.Vaccine)))
	v.SupplyLevel = VaccineSupply(strings.TrimSpace(string(v.SupplyLevel)))
}

// Validate normalizes v and checks its fields.
func (v *Vaccine) Validate() error {
	v.normalize()
	return validate.Struct("Vaccine", v)
}

// Access describes how a site can be reached.
type Access struct {
	Walk       *bool                 `json:"walk,omitempty"`
	Drive      *bool                 `json:"drive,omitempty"`
	Wheelchair WheelchairAccessLevel `json:"wheelchair,omitempty" validate:"omitempty,enum"`
}

func (a *Access) normalize() {
	a.Wheelchair = WheelchairAccessLevel(strings.TrimSpace(string(a.Wheelchair)))
}

// Validate normalizes a and checks its fields.
func (a *Access) Validate() error {
	a.normalize()
	return validate.Struct("Access", a)
}

// Organization is the parent organization of a site. Use a VaccineProvider
// value for ID when one fits, otherwise any lowercase identifier.
type Organization struct {
	ID   string `json:"id,omitempty" validate:"omitempty,max=64,enum_value"`
	Name string `json:"name,omitempty" validate:"omitempty,max=256"`
}

func (o *Organization) normalize() {
	o.ID = strings.TrimSpace(o.ID)
	o.Name = strings.TrimSpace(o.Name)
}

// Validate normalizes o and checks its fields.
func (o *Organization) Validate() error {
	o.normalize()
	return validate.Struct("Organization", o)
}

// Link is an identifier some authority uses for the same site. Use a
// LocationAuthority or VaccineProvider value for Authority when one fits.
type Link struct {
	Authority string `json:"authority,omitempty" validate:"omitempty,max=64,enum_value"`
	ID        string `json:"id,omitempty" validate:"omitempty,max=128,source_id"`
	URI       string `json:"uri,omitempty" validate:"omitempty,url"`
}

func (l *Link) normalize() {
	l.Authority = strings.TrimSpace(l.Authority)
	l.ID = strings.TrimSpace(l.ID)
	l.URI = strings.TrimSpace(l.URI)
}

// Validate normalizes l and checks its fields.
func (l *Link) Validate() error {
	l.normalize()
	return validate.Struct("Link", l)
}

// Source is the provenance of a normalized location: which scraper produced
// it, from where, when, and the parsed source record itself.
type Source struct {
	Source         string         `json:"source" validate:"required,max=64,enum_value"`
	ID             string         `json:"id" validate:"required,max=128,source_id"`
	FetchedFromURI string         `json:"fetched_from_uri,omitempty" validate:"omitempty,url"`
	FetchedAt      Datetime       `json:"fetched_at,omitempty" validate:"omitempty,iso_datetime"`
	PublishedAt    Datetime       `json:"published_at,omitempty" validate:"omitempty,iso_datetime"`
	Data           map[string]any `json:"data" validate:"required"`
}

func (s *Source) normalize() {
	s.Source = strings.TrimSpace(s.Source)
	s.ID = strings.TrimSpace(s.ID)
	s.FetchedFromURI = strings.TrimSpace(s.FetchedFromURI)
	s.FetchedAt = s.FetchedAt.normalize()
	s.PublishedAt = s.PublishedAt.normalize()
}

// Validate normalizes s and checks its fields.
func (s *Source) Validate() error {
	s.normalize()
	return validate.Struct("Source", s)
}

// NormalizedLocation is a vaccination site assembled from one source record.
// ID must be the source name and the source-specific id joined by a colon.
type NormalizedLocation struct {
	ID                 string        `json:"id" validate:"required,max=128,location_id"`
	Name               string        `json:"name,omitempty" validate:"omitempty,max=256"`
	Address            *Address      `json:"address,omitempty"`
	Location           *LatLng       `json:"location,omitempty"`
	Contact            []Contact     `json:"contact,omitempty" validate:"omitempty,dive"`
	Languages          []string      `json:"languages,omitempty"` // ISO 639-1 codes
	OpeningDates       []OpenDate    `json:"opening_dates,omitempty" validate:"omitempty,dive"`
	OpeningHours       []OpenHour    `json:"opening_hours,omitempty" validate:"omitempty,dive"`
	Availability       *Availability `json:"availability,omitempty"`
	Inventory          []Vaccine     `json:"inventory,omitempty" validate:"omitempty,dive"`
	Access             *Access       `json:"access,omitempty"`
	ParentOrganization *Organization `json:"parent_organization,omitempty"`
	Links              []Link        `json:"links,omitempty" validate:"omitempty,dive"`
	Notes              []string      `json:"notes,omitempty"`
	Active             *bool         `json:"active,omitempty"`
	Source             Source        `json:"source"`
}

func (l *NormalizedLocation) normalize() {
	l.ID = strings.TrimSpace(l.ID)
	l.Name = strings.TrimSpace(l.Name)
	if l.Address != nil {
		l.Address.normalize()
	}
	for i := range l.Contact {
		l.Contact[i].normalize()
	}
	trimAll(l.Languages)
	for i := range l.OpeningDates {
		l.OpeningDates[i].normalize()
	}
	for i := range l.OpeningHours {
		l.OpeningHours[i].normalize()
	}
	for i := range l.Inventory {
		l.Inventory[i].normalize()
	}
	if l.Access != nil {
		l.Access.normalize()
	}
	if l.ParentOrganization != nil {
		l.ParentOrganization.normalize()
	}
	for i := range l.Links {
		l.Links[i].normalize()
	}
	trimAll(l.Notes)
	l.Source.normalize()
}

// Normalize strips whitespace from every string field of l and its nested
// records and canonicalizes dates and times. Validate calls it first.
func (l *NormalizedLocation) Normalize() {
	l.normalize()
}

// Validate normalizes l and checks it along with every nested record.
func (l *NormalizedLocation) Validate() error {
	l.normalize()
	return validate.Struct("NormalizedLocation", l)
}

func trimAll(ss []string) {
	for i := range ss {
		ss[i] = strings.TrimSpace(ss[i])
	}
}
