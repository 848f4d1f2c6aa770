package location

import (
	"fmt"
	"regexp"
	"strings"

	"vaccine-feed-ingest-schema/internal/validate"

	"github.com/go-playground/validator/v10"
)

type enumValue interface {
	IsValid() bool
}

func init() {
	validate.RegisterRule("enum", isEnum, func(validator.FieldError) string {
		return "value is not a valid enumeration member"
	})
	validate.RegisterRule("zipcode", matches(ZipcodeRE), regexMessage(ZipcodeRE))
	validate.RegisterRule("us_phone", matches(USPhoneRE), regexMessage(USPhoneRE))
	validate.RegisterRule("enum_value", matches(EnumValueRE), regexMessage(EnumValueRE))
	validate.RegisterRule("location_id", matches(LocationIDRE), regexMessage(LocationIDRE))
	validate.RegisterRule("source_id", matches(SourceIDRE), regexMessage(SourceIDRE))

	validate.RegisterRule("iso_date", func(fl validator.FieldLevel) bool {
		return isCanonicalDate(fl.Field().String())
	}, constMessage("invalid date format"))
	validate.RegisterRule("local_time", func(fl validator.FieldLevel) bool {
		return isCanonicalLocalTime(fl.Field().String())
	}, constMessage("invalid time format"))
	validate.RegisterRule("iso_datetime", func(fl validator.FieldLevel) bool {
		return isCanonicalDatetime(fl.Field().String())
	}, constMessage("invalid datetime format"))

	validate.RegisterStructRule(contactHasOneValue, Contact{})
	validate.RegisterStructRule(openDateOrder, OpenDate{})
	validate.RegisterStructRule(openHourOrder, OpenHour{})
	validate.RegisterStructRule(locationIDMatchesSource, NormalizedLocation{})

	validate.RegisterMessage("contact_single_value", func(fe validator.FieldError) string {
		return fmt.Sprintf("Multiple values specified in %s. Only one value should be specified per Contact entry.", fe.Param())
	})
	validate.RegisterMessage("contact_has_value", constMessage("No values specified for Contact."))
	validate.RegisterMessage("date_order", constMessage("Closes date must be after opens date"))
	validate.RegisterMessage("time_order", constMessage("Closes time must be after opens time"))
	validate.RegisterMessage("source_prefix", constMessage("Location ID must be prefixed with source name"))
}

func isEnum(fl validator.FieldLevel) bool {
	v, ok := fl.Field().Interface().(enumValue)
	return ok && v.IsValid()
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func regexMessage(re *regexp.Regexp) func(validator.FieldError) string {
	return constMessage(fmt.Sprintf("string does not match regex %q", re.String()))
}

func constMessage(msg string) func(validator.FieldError) string {
	return func(validator.FieldError) string { return msg }
}

func contactHasOneValue(sl validator.StructLevel) {
	c := sl.Current().Interface().(Contact)

	switch set := c.values(); {
	case len(set) > 1:
		sl.ReportError(set, validate.RootField, validate.RootField, "contact_single_value", strings.Join(set, ", "))
	case len(set) == 0:
		sl.ReportError(nil, validate.RootField, validate.RootField, "contact_has_value", "")
	}
}

func openDateOrder(sl validator.StructLevel) {
	od := sl.Current().Interface().(OpenDate)
	if !isCanonicalDate(string(od.Opens)) || !isCanonicalDate(string(od.Closes)) {
		return
	}
	// Canonical dates order lexically.
	if od.Closes < od.Opens {
		sl.ReportError(od.Closes, "closes", "Closes", "date_order", string(od.Opens))
	}
}

func openHourOrder(sl validator.StructLevel) {
	oh := sl.Current().Interface().(OpenHour)
	opens, opensZoned, ok := oh.Opens.clock()
	if !ok {
		return
	}
	closes, closesZoned, ok := oh.Closes.clock()
	// Naive and zoned times do not order against each other.
	if !ok || opensZoned != closesZoned {
		return
	}
	if closes.Before(opens) {
		sl.ReportError(oh.Closes, "closes", "Closes", "time_order", string(oh.Opens))
	}
}

func locationIDMatchesSource(sl validator.StructLevel) {
	l := sl.Current().Interface().(NormalizedLocation)
	if l.ID == "" || l.Source.Source == "" {
		return
	}
	if !strings.HasPrefix(l.ID, l.Source.Source+":") {
		sl.ReportError(l.ID, "id", "ID", "source_prefix", l.Source.Source)
	}
}
