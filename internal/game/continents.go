// internal/game/continents.go
//
// Static country → continent table used for the Country "near" tier.
// Entries (spellings included) match the roster data this game ships with;
// countries missing from the table score as unknown and never match.

package game

import "strings"

// continents maps lowercased country names to continent names.
var continents = map[string]string{
	"afghanistan":                      "Asia",
	"albania":                          "Europe",
	"angola":                           "Africa",
	"argentina":                        "South America",
	"armenia":                          "Asia",
	"australia":                        "Oceania",
	"austria":                          "Europe",
	"azerbaijan":                       "Asia",
	"bahrain":                          "Asia",
	"belguim":                          "Europe",
	"bolivia":                          "South America",
	"brazil":                           "South America",
	"cameroon":                         "Africa",
	"canada":                           "North America",
	"chile":                            "South America",
	"china":                            "Asia",
	"croatia":                          "Europe",
	"czech republic":                   "Europe",
	"democratic republic of the congo": "Africa",
	"denmark":                          "Europe",
	"dominican republic":               "North America",
	"ecuador":                          "South America",
	"egypt":                            "Africa",
	"england":                          "Europe",
	"france":                           "Europe",
	"georgia":                          "Europe",
	"germany":                          "Europe",
	"guam":                             "Oceania",
	"guyana":                           "South America",
	"iceland":                          "Europe",
	"india":                            "Asia",
	"indonesia":                        "Asia",
	"iraq":                             "Asia",
	"isreal":                           "Asia",
	"italy":                            "Europe",
	"jamaica":                          "North America",
	"japan":                            "Asia",
	"kazakhstan":                       "Asia",
	"kyrgyzstan":                       "Asia",
	"lithuania":                        "Europe",
	"mexico":                           "North America",
	"moldova":                          "Europe",
	"mongolia":                         "Asia",
	"morocco":                          "Africa",
	"myanmar":                          "Asia",
	"netherlands":                      "Europe",
	"new zealand":                      "Oceania",
	"nigeria":                          "Africa",
	"norway":                           "Europe",
	"palestine":                        "Asia",
	"panama":                           "North America",
	"peru":                             "South America",
	"poland":                           "Europe",
	"portugal":                         "Europe",
	"republic of ireland":              "Europe",
	"romania":                          "Europe",
	"russia":                           "Europe",
	"scotland":                         "Europe",
	"serbia":                           "Europe",
	"slovakia":                         "Europe",
	"south africa":                     "Africa",
	"south korea":                      "Asia",
	"spain":                            "Europe",
	"switzerland":                      "Europe",
	"tajikistan":                       "Asia",
	"thailand":                         "Asia",
	"turkey":                           "Asia",
	"uganda":                           "Africa",
	"ukraine":                          "Europe",
	"uae":                              "Asia",
	"united states":                    "North America",
	"uzbekistan":                       "Asia",
	"venezuela":                        "South America",
	"vietnam":                          "Asia",
	"wales":                            "Europe",
	"zimbabwe":                         "Africa",
}

// ContinentOf returns the continent for a country, case-insensitively.
// The second return is false for countries missing from the table; two
// unknown continents are never considered equal.
func ContinentOf(country string) (string, bool) {
	c, ok := continents[strings.ToLower(strings.TrimSpace(country))]
	return c, ok
}
