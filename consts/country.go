package consts

var MapCountryName map[string]string

func init() {
	MapCountryName = make(map[string]string)

	MapCountryName["US"] = "USA"
	MapCountryName["Congo (Kinshasa)"] = "Democratic Republic of the Congo"
	MapCountryName["Congo (Brazzaville)"] = "Republic of Congo"
	MapCountryName["Korea, North"] = "North Korea"
	MapCountryName["Korea, South"] = "South Korea"
	MapCountryName["Burma"] = "Myanmar"
	MapCountryName["Cote d'Ivoire"] = "Ivory Coast"
	MapCountryName["United Kingdom"] = "UK"
}

// MapCountry - convert a source country name into the boundary
// dataset's naming. Names without an entry pass through unchanged.
func MapCountry(country string) string {
	if mapped, ok := MapCountryName[country]; ok {
		return mapped
	}
	return country
}
