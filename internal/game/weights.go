package game

import "strings"

// weightOrder is the fixed ordering of weight classes, lightest first.
// Adjacency in this list is what makes two classes "near".
var weightOrder = []string{
	"Strawweight",
	"Flyweight",
	"Bantamweight",
	"Featherweight",
	"Lightweight",
	"Welterweight",
	"Middleweight",
	"Light Heavyweight",
	"Heavyweight",
}

// weightIndex returns the position of a weight class in the fixed ordering,
// or -1 for unrecognized class names.
func weightIndex(class string) int {
	for i, w := range weightOrder {
		if strings.EqualFold(w, class) {
			return i
		}
	}
	return -1
}
