package progression

// XP awarded for chat activity. Gateways feed these through AwardXP;
// retractions (deleted messages, removed reactions) send the negation.
const (
	ReactionXP = 5

	messageXPShort  = 5
	messageXPMedium = 10
	messageXPLong   = 15

	shortMessageMaxLen  = 5
	mediumMessageMaxLen = 10

	// Per attachment, per role mention, and for an @everyone mention.
	messageExtraXP = 5
)

// exploreRolls is how many discovery attempts a single explore makes.
// The first successful roll ends the trip.
const exploreRolls = 7

// percentScale converts an item probability into the integer dice range
// used by explore rolls.
const percentScale = 100

type exploreLocation struct {
	name       string
	energyCost int
	pool       []int
}

// exploreLocations maps a location name to its energy cost and the item
// ids that can be found there. The beach yields everything except ale;
// the pond is a smaller fishing pool.
var exploreLocations = map[string]exploreLocation{
	"beach": {
		name:       "beach",
		energyCost: 5,
		pool:       []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
	},
	"pond": {
		name:       "pond",
		energyCost: 1,
		pool:       []int{2, 3, 7, 9, 13},
	},
}
