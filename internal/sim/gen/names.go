package gen

import "github.com/jdlinklater/touchline/internal/sim/rng"

// Flavor tables for club and person identity. These back the
// PickTown/PickFirstName/PickLastName supplier contracts.

var townsByRegion = map[string][]string{
	"North West": {
		"Ashton", "Burnley Edge", "Clitheroe", "Darwen", "Eccles",
		"Formby", "Garswood", "Heywood", "Kirkby", "Leyland",
		"Maghull", "Nelson", "Ormskirk", "Prescot", "Radcliffe",
	},
	"North East": {
		"Amble", "Blyth", "Consett", "Durham Vale", "Ferryhill",
		"Guisborough", "Hartlepool Moor", "Jarrow", "Morpeth", "Peterlee",
		"Ryhope", "Seaham", "Stanley", "Washington", "Yarm",
	},
	"Midlands": {
		"Bedworth", "Cannock", "Droitwich", "Evesham", "Halesowen",
		"Ilkeston", "Kidderminster", "Leek", "Matlock", "Nuneaton",
		"Oakham", "Rugeley", "Shifnal", "Tamworth", "Uttoxeter",
	},
	"South East": {
		"Aldershot Green", "Bexhill", "Crowborough", "Dartford Heath", "Egham",
		"Faversham", "Godalming", "Haywards Park", "Lewes", "Marlow",
		"Newhaven", "Petersfield", "Reigate", "Sittingbourne", "Thame",
	},
	"South West": {
		"Bodmin", "Chard", "Dawlish", "Frome", "Glastonbury",
		"Helston", "Ivybridge", "Keynsham", "Liskeard", "Melksham",
		"Nailsea", "Okehampton", "Portishead", "Shepton", "Tavistock",
	},
}

// Regions is the ordered enumeration of supported regions.
var Regions = []string{"North West", "North East", "Midlands", "South East", "South West"}

var firstNames = []string{
	"Aaron", "Ben", "Callum", "Dan", "Ethan", "Finn", "George", "Harry",
	"Isaac", "Jack", "Kieran", "Lewis", "Mason", "Nathan", "Ollie",
	"Patrick", "Reece", "Sam", "Tom", "Will", "Adam", "Charlie", "Dylan",
	"Freddie", "Jake", "Josh", "Liam", "Luke", "Marcus", "Ryan",
	"Scott", "Stephen", "Terry", "Vince", "Wayne", "Colin", "Derek",
	"Gordon", "Keith", "Malcolm", "Norman", "Roy", "Stan", "Trevor",
}

var lastNames = []string{
	"Atkinson", "Barnes", "Clarke", "Dawson", "Ellis", "Foster",
	"Griffiths", "Holt", "Ingram", "Jennings", "Kane", "Lawson",
	"Mercer", "Nolan", "O'Brien", "Parkin", "Quinn", "Redfern",
	"Sharples", "Turnbull", "Unsworth", "Vickers", "Whittaker",
	"Yates", "Ashworth", "Bamford", "Cartwright", "Duckworth",
	"Entwistle", "Fairclough", "Greenhalgh", "Haworth", "Kershaw",
	"Longworth", "Mawdsley", "Ogden", "Pemberton", "Rishworth",
	"Sutcliffe", "Tattersall", "Walmsley", "Yardley",
}

var nameSuffixes = []string{
	"Rovers", "Wanderers", "Albion", "Rangers", "Villa", "Dynamos",
	"Harriers", "Celtic", "Swifts", "Vale", "Sports", "Olympic",
}

var nameMiddles = []string{"Old", "Park", "Lane", "Road", "Green", "Moor", "Heath"}

var namePrefixes = []string{"AFC", "FC", "Real", "Inter"}

var standardSuffixes = []string{"Town", "City", "United", "Athletic"}

// colorKeywords fixes the scan order so a name containing two color
// words always resolves to the same nickname.
var colorKeywords = []string{"Red", "Blue", "Green", "White", "Black", "Gold", "Amber", "Claret"}

// colorNicknames maps a color keyword appearing in a club name to its
// traditional nickname.
var colorNicknames = map[string]string{
	"Red":    "The Reds",
	"Blue":   "The Blues",
	"Green":  "The Greens",
	"White":  "The Lilywhites",
	"Black":  "The Blacks",
	"Gold":   "The Golds",
	"Amber":  "The Ambers",
	"Claret": "The Clarets",
}

var genericNicknames = []string{
	"The Villagers", "The Parkers", "The Grounders", "The Locals",
	"The Sunday Boys", "The Clubhouse Crew", "The Tykes", "The Millers",
}

var kitColors = []string{
	"Red", "Blue", "Green", "White", "Black", "Yellow", "Amber",
	"Claret", "Navy", "Sky Blue", "Orange", "Maroon",
}

// PickTown returns a town name for the region, falling back to a random
// region when the key is unknown.
func PickTown(src *rng.Source, region string) string {
	towns, ok := townsByRegion[region]
	if !ok {
		towns = townsByRegion[rng.Pick(src, Regions)]
	}
	return rng.Pick(src, towns)
}

// PickFirstName returns a random given name.
func PickFirstName(src *rng.Source) string {
	return rng.Pick(src, firstNames)
}

// PickLastName returns a random family name.
func PickLastName(src *rng.Source) string {
	return rng.Pick(src, lastNames)
}

// PickKitColors returns two distinct kit colors.
func PickKitColors(src *rng.Source) (string, string) {
	primary := rng.Pick(src, kitColors)
	secondary := rng.Pick(src, kitColors)
	for secondary == primary {
		secondary = rng.Pick(src, kitColors)
	}
	return primary, secondary
}
