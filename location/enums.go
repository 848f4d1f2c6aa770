package location

import "slices"

// State is a US state or territory as its two-letter postal code.
type State string

const (
	StateAlabama            State = "AL"
	StateAlaska             State = "AK"
	StateAmericanSamoa      State = "AS"
	StateArizona            State = "AZ"
	StateArkansas           State = "AR"
	StateCalifornia         State = "CA"
	StateColorado           State = "CO"
	StateConnecticut        State = "CT"
	StateDelaware           State = "DE"
	StateDistrictOfColumbia State = "DC"
	StateFlorida            State = "FL"
	StateGeorgia            State = "GA"
	StateGuam               State = "GU"
	StateHawaii             State = "HI"
	StateIdaho              State = "ID"
	StateIllinois           State = "IL"
	StateIndiana            State = "IN"
	StateIowa               State = "IA"
	StateKansas             State = "KS"
	StateKentucky           State = "KY"
	StateLouisiana          State = "LA"
	StateMaine              State = "ME"
	StateMaryland           State = "MD"
	StateMassachusetts      State = "MA"
	StateMichigan           State = "MI"
	StateMinnesota          State = "MN"
	StateMississippi        State = "MS"
	StateMissouri           State = "MO"
	StateMontana            State = "MT"
	StateNebraska           State = "NE"
	StateNevada             State = "NV"
	StateNewHampshire       State = "NH"
	StateNewJersey          State = "NJ"
	StateNewMexico          State = "NM"
	StateNewYork            State = "NY"
	StateNorthCarolina      State = "NC"
	StateNorthDakota        State = "ND"
	StateNorthernMarianaIs  State = "MP"
	StateOhio               State = "OH"
	StateOklahoma           State = "OK"
	StateOregon             State = "OR"
	StatePennsylvania       State = "PA"
	StatePuertoRico         State = "PR"
	StateRhodeIsland        State = "RI"
	StateSouthCarolina      State = "SC"
	StateSouthDakota        State = "SD"
	StateTennessee          State = "TN"
	StateTexas              State = "TX"
	StateUtah               State = "UT"
	StateVermont            State = "VT"
	StateVirginia           State = "VA"
	StateVirginIslands      State = "VI"
	StateWashington         State = "WA"
	StateWestVirginia       State = "WV"
	StateWisconsin          State = "WI"
	StateWyoming            State = "WY"
)

var stateValues = []State{
	StateAlabama,
	StateAlaska,
	StateAmericanSamoa,
	StateArizona,
	StateArkansas,
	StateCalifornia,
	StateColorado,
	StateConnecticut,
	StateDelaware,
	StateDistrictOfColumbia,
	StateFlorida,
	StateGeorgia,
	StateGuam,
	StateHawaii,
	StateIdaho,
	StateIllinois,
	StateIndiana,
	StateIowa,
	StateKansas,
	StateKentucky,
	StateLouisiana,
	StateMaine,
	StateMaryland,
	StateMassachusetts,
	StateMichigan,
	StateMinnesota,
	StateMississippi,
	StateMissouri,
	StateMontana,
	StateNebraska,
	StateNevada,
	StateNewHampshire,
	StateNewJersey,
	StateNewMexico,
	StateNewYork,
	StateNorthCarolina,
	StateNorthDakota,
	StateNorthernMarianaIs,
	StateOhio,
	StateOklahoma,
	StateOregon,
	StatePennsylvania,
	StatePuertoRico,
	StateRhodeIsland,
	StateSouthCarolina,
	StateSouthDakota,
	StateTennessee,
	StateTexas,
	StateUtah,
	StateVermont,
	StateVirginia,
	StateVirginIslands,
	StateWashington,
	StateWestVirginia,
	StateWisconsin,
	StateWyoming,
}

// IsValid reports whether s is a known State.
func (s State) IsValid() bool { return slices.Contains(stateValues, s) }

// StateValues returns every known State in declaration order.
func StateValues() []State { return slices.Clone(stateValues) }

// ContactType says what a Contact entry is for.
type ContactType string

const (
	ContactTypeGeneral ContactType = "general"
	ContactTypeBooking ContactType = "booking"
)

var contactTypeValues = []ContactType{
	ContactTypeGeneral,
	ContactTypeBooking,
}

// IsValid reports whether s is a known ContactType.
func (s ContactType) IsValid() bool { return slices.Contains(contactTypeValues, s) }

// ContactTypeValues returns every known ContactType in declaration order.
func ContactTypeValues() []ContactType { return slices.Clone(contactTypeValues) }

// DayOfWeek names a day in OpenHour entries.
type DayOfWeek string

const (
	DayMonday         DayOfWeek = "monday"
	DayTuesday        DayOfWeek = "tuesday"
	DayWednesday      DayOfWeek = "wednesday"
	DayThursday       DayOfWeek = "thursday"
	DayFriday         DayOfWeek = "friday"
	DaySaturday       DayOfWeek = "saturday"
	DaySunday         DayOfWeek = "sunday"
	DayPublicHolidays DayOfWeek = "public_holidays"
)

var dayOfWeekValues = []DayOfWeek{
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
	DaySunday,
	DayPublicHolidays,
}

// IsValid reports whether s is a known DayOfWeek.
func (s DayOfWeek) IsValid() bool { return slices.Contains(dayOfWeekValues, s) }

// DayOfWeekValues returns every known DayOfWeek in declaration order.
func DayOfWeekValues() []DayOfWeek { return slices.Clone(dayOfWeekValues) }

// VaccineType identifies a vaccine product.
type VaccineType string

const (
	VaccinePfizerBiontech        VaccineType = "pfizer_biontech"
	VaccineModerna               VaccineType = "moderna"
	VaccineJohnsonJohnsonJanssen VaccineType = "johnson_johnson_janssen"
	VaccineOxfordAstrazeneca     VaccineType = "oxford_astrazeneca"
)

var vaccineTypeValues = []VaccineType{
	VaccinePfizerBiontech,
	VaccineModerna,
	VaccineJohnsonJohnsonJanssen,
	VaccineOxfordAstrazeneca,
}

// IsValid reports whether s is a known VaccineType.
func (s VaccineType) IsValid() bool { return slices.Contains(vaccineTypeValues, s) }

// VaccineTypeValues returns every known VaccineType in declaration order.
func VaccineTypeValues() []VaccineType { return slices.Clone(vaccineTypeValues) }

// VaccineSupply is the supply level of a vaccine.
type VaccineSupply string

const (
	SupplyInStock    VaccineSupply = "in_stock"
	SupplyOutOfStock VaccineSupply = "out_of_stock"
)

var vaccineSupplyValues = []VaccineSupply{
	SupplyInStock,
	SupplyOutOfStock,
}

// IsValid reports whether s is a known VaccineSupply.
func (s VaccineSupply) IsValid() bool { return slices.Contains(vaccineSupplyValues, s) }

// VaccineSupplyValues returns every known VaccineSupply in declaration order.
func VaccineSupplyValues() []VaccineSupply { return slices.Clone(vaccineSupplyValues) }

// WheelchairAccessLevel describes wheelchair access at a site.
type WheelchairAccessLevel string

const (
	WheelchairYes     WheelchairAccessLevel = "yes"
	WheelchairFull    WheelchairAccessLevel = "full"
	WheelchairPartial WheelchairAccessLevel = "partial"
	WheelchairNo      WheelchairAccessLevel = "no"
)

var wheelchairAccessLevelValues = []WheelchairAccessLevel{
	WheelchairYes,
	WheelchairFull,
	WheelchairPartial,
	WheelchairNo,
}

// IsValid reports whether s is a known WheelchairAccessLevel.
func (s WheelchairAccessLevel) IsValid() bool { return slices.Contains(wheelchairAccessLevelValues, s) }

// WheelchairAccessLevelValues returns every known WheelchairAccessLevel in declaration order.
func WheelchairAccessLevelValues() []WheelchairAccessLevel { return slices.Clone(wheelchairAccessLevelValues) }

// VaccineProvider is a brand that administers vaccines. Brands owned by the same
// parent (e.g. Big Y and Brookshire under TOPCO) get separate entries.
//
// Participating US pharmacies are listed at
// https://www.cdc.gov/vaccines/covid-19/retail-pharmacy-program/participating-pharmacies.html
type VaccineProvider string

const (
	ProviderAcme                   VaccineProvider = "acme"
	ProviderAlbertsons             VaccineProvider = "albertson"
	ProviderAlbertsonsMarket       VaccineProvider = "albertsons_market"
	ProviderAlbertsonsMarketStreet VaccineProvider = "albertsons_market_street"
	ProviderAmigos                 VaccineProvider = "amigos"
	ProviderBakers                 VaccineProvider = "bakers"
	ProviderBigY                   VaccineProvider = "big_y"
	ProviderBrookshire             VaccineProvider = "brookshire"
	ProviderCarrs                  VaccineProvider = "carrs"
	ProviderCityMarket             VaccineProvider = "city_market"
	ProviderCostco                 VaccineProvider = "costco"
	ProviderCub                    VaccineProvider = "cub_pharmacy"
	ProviderCVS                    VaccineProvider = "cvs"
	ProviderDillons                VaccineProvider = "dillons"
	ProviderDrugco                 VaccineProvider = "drugco"
	ProviderDuaneReade             VaccineProvider = "duane_reade"
	ProviderFamilyFare             VaccineProvider = "family_fare"
	ProviderFoodCity               VaccineProvider = "food_city"
	ProviderFoodLion               VaccineProvider = "food_lion"
	ProviderFredMeyer              VaccineProvider = "fred_meyer"
	ProviderFrescoYMas             VaccineProvider = "fresco_y_mas"
	ProviderFrys                   VaccineProvider = "frys_food_and_drug"
	ProviderGenoa                  VaccineProvider = "genoa_healthcare"
	ProviderGerbes                 VaccineProvider = "gerbes"
	ProviderGiant                  VaccineProvider = "giant"
	ProviderGiantEagle             VaccineProvider = "giant_eagle"
	ProviderGiantFood              VaccineProvider = "giant_food"
	ProviderHaggen                 VaccineProvider = "haggen"
	ProviderHannaford              VaccineProvider = "hannaford"
	ProviderHarmons                VaccineProvider = "harmons"
	ProviderHarps                  VaccineProvider = "harps"
	ProviderHarrisTeeter           VaccineProvider = "harris_teeter"
	ProviderHart                   VaccineProvider = "hart"
	ProviderHartig                 VaccineProvider = "hartig"
	ProviderHarveys                VaccineProvider = "harveys"
	ProviderHealthMart             VaccineProvider = "health_mart"
	ProviderHEB                    VaccineProvider = "heb"
	ProviderHomeland               VaccineProvider = "homeland"
	ProviderHyVee                  VaccineProvider = "hyvee"
	ProviderIngles                 VaccineProvider = "ingles"
	ProviderJayc                   VaccineProvider = "jayc"
	ProviderJewelOsco              VaccineProvider = "jewel_osco"
	ProviderKaiserHealthPlan       VaccineProvider = "kaiser_health_plan"
	ProviderKaiserPermanente       VaccineProvider = "kaiser_permanente"
	ProviderKingSoopers            VaccineProvider = "king_soopers"
	ProviderKroger                 VaccineProvider = "kroger"
	ProviderKTASuperStores         VaccineProvider = "kta_super_stores"
	ProviderLittleClinic           VaccineProvider = "little_clinic"
	ProviderMarianos               VaccineProvider = "marianos"
	ProviderMarket32               VaccineProvider = "market_32"
	ProviderMarketBistro           VaccineProvider = "market_bistro"
	ProviderMarketStreet           VaccineProvider = "market_street"
	ProviderMedicap                VaccineProvider = "medicap"
	ProviderMeijer                 VaccineProvider = "meijer"
	ProviderMetroMarket            VaccineProvider = "metro_market"
	ProviderOsco                   VaccineProvider = "osco"
	ProviderPakNSave               VaccineProvider = "pak_n_save"
	ProviderPavilions              VaccineProvider = "pavilions"
	ProviderPayLess                VaccineProvider = "pay_less"
	ProviderPharmaca               VaccineProvider = "pharmaca"
	ProviderPickNSave              VaccineProvider = "pick_n_save"
	ProviderPriceChopper           VaccineProvider = "price_chopper"
	ProviderPublix                 VaccineProvider = "publix"
	ProviderQFC                    VaccineProvider = "qfc"
	ProviderRaleys                 VaccineProvider = "raleys"
	ProviderRalphs                 VaccineProvider = "ralphs"
	ProviderRandalls               VaccineProvider = "randalls"
	ProviderRiteAid                VaccineProvider = "rite_aid"
	ProviderSafeway                VaccineProvider = "safeway"
	ProviderSams                   VaccineProvider = "sams"
	ProviderSavOn                  VaccineProvider = "sav_on"
	ProviderShaws                  VaccineProvider = "shaws"
	ProviderShopRite               VaccineProvider = "shop_rite"
	ProviderSmiths                 VaccineProvider = "smiths"
	ProviderSouthEastern           VaccineProvider = "south_eastern"
	ProviderStarMarket             VaccineProvider = "star_market"
	ProviderStopAndShop            VaccineProvider = "stop_and_shop"
	ProviderThrifty                VaccineProvider = "thrifty"
	ProviderThriftyWhite           VaccineProvider = "thrifty_white"
	ProviderTomThumb               VaccineProvider = "tom_thumb"
	ProviderUnitedSupermarket      VaccineProvider = "united_supermarket"
	ProviderVons                   VaccineProvider = "vons"
	ProviderWalgreens              VaccineProvider = "walgreens"
	ProviderWalmart                VaccineProvider = "walmart"
	ProviderWegmans                VaccineProvider = "wegmans"
	ProviderWeis                   VaccineProvider = "weis"
	ProviderWinnDixie              VaccineProvider = "winn_dixie"
)

var vaccineProviderValues = []VaccineProvider{
	ProviderAcme,
	ProviderAlbertsons,
	ProviderAlbertsonsMarket,
	ProviderAlbertsonsMarketStreet,
	ProviderAmigos,
	ProviderBakers,
	ProviderBigY,
	ProviderBrookshire,
	ProviderCarrs,
	ProviderCityMarket,
	ProviderCostco,
	ProviderCub,
	ProviderCVS,
	ProviderDillons,
	ProviderDrugco,
	ProviderDuaneReade,
	ProviderFamilyFare,
	ProviderFoodCity,
	ProviderFoodLion,
	ProviderFredMeyer,
	ProviderFrescoYMas,
	ProviderFrys,
	ProviderGenoa,
	ProviderGerbes,
	ProviderGiant,
	ProviderGiantEagle,
	ProviderGiantFood,
	ProviderHaggen,
	ProviderHannaford,
	ProviderHarmons,
	ProviderHarps,
	ProviderHarrisTeeter,
	ProviderHart,
	ProviderHartig,
	ProviderHarveys,
	ProviderHealthMart,
	ProviderHEB,
	ProviderHomeland,
	ProviderHyVee,
	ProviderIngles,
	ProviderJayc,
	ProviderJewelOsco,
	ProviderKaiserHealthPlan,
	ProviderKaiserPermanente,
	ProviderKingSoopers,
	ProviderKroger,
	ProviderKTASuperStores,
	ProviderLittleClinic,
	ProviderMarianos,
	ProviderMarket32,
	ProviderMarketBistro,
	ProviderMarketStreet,
	ProviderMedicap,
	ProviderMeijer,
	ProviderMetroMarket,
	ProviderOsco,
	ProviderPakNSave,
	ProviderPavilions,
	ProviderPayLess,
	ProviderPharmaca,
	ProviderPickNSave,
	ProviderPriceChopper,
	ProviderPublix,
	ProviderQFC,
	ProviderRaleys,
	ProviderRalphs,
	ProviderRandalls,
	ProviderRiteAid,
	ProviderSafeway,
	ProviderSams,
	ProviderSavOn,
	ProviderShaws,
	ProviderShopRite,
	ProviderSmiths,
	ProviderSouthEastern,
	ProviderStarMarket,
	ProviderStopAndShop,
	ProviderThrifty,
	ProviderThriftyWhite,
	ProviderTomThumb,
	ProviderUnitedSupermarket,
	ProviderVons,
	ProviderWalgreens,
	ProviderWalmart,
	ProviderWegmans,
	ProviderWeis,
	ProviderWinnDixie,
}

// IsValid reports whether s is a known VaccineProvider.
func (s VaccineProvider) IsValid() bool { return slices.Contains(vaccineProviderValues, s) }

// VaccineProviderValues returns every known VaccineProvider in declaration order.
func VaccineProviderValues() []VaccineProvider { return slices.Clone(vaccineProviderValues) }

// LocationAuthority issues identifiers for locations.
type LocationAuthority string

const (
	AuthorityGooglePlaces LocationAuthority = "google_places"
	AuthorityVTrckS       LocationAuthority = "vtrcks"
)

var locationAuthorityValues = []LocationAuthority{
	AuthorityGooglePlaces,
	AuthorityVTrckS,
}

// IsValid reports whether s is a known LocationAuthority.
func (s LocationAuthority) IsValid() bool { return slices.Contains(locationAuthorityValues, s) }

// LocationAuthorityValues returns every known LocationAuthority in declaration order.
func LocationAuthorityValues() []LocationAuthority { return slices.Clone(locationAuthorityValues) }

