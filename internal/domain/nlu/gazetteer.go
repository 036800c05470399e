package nlu

// gazetteer lists well-known cities in match order. Names that contain
// another entry (new delhi / delhi) come first so the longer name wins.
var gazetteer = []string{
	"new york", "los angeles", "san francisco", "las vegas", "washington",
	"chicago", "houston", "phoenix", "dallas", "austin", "denver", "seattle",
	"boston", "miami", "atlanta", "detroit", "portland", "toronto",
	"vancouver", "montreal", "mexico city", "havana", "bogota", "santiago",
	"buenos aires", "rio de janeiro", "sao paulo", "london", "manchester",
	"edinburgh", "dublin", "paris", "lyon", "marseille", "berlin", "munich",
	"hamburg", "frankfurt", "amsterdam", "brussels", "zurich", "geneva",
	"vienna", "prague", "warsaw", "budapest", "copenhagen", "stockholm",
	"oslo", "helsinki", "madrid", "barcelona", "lisbon", "rome", "milan",
	"venice", "naples", "athens", "istanbul", "moscow", "kyiv", "cairo",
	"lagos", "nairobi", "cape town", "johannesburg", "casablanca", "dubai",
	"abu dhabi", "doha", "riyadh", "tehran", "karachi", "lahore", "new delhi",
	"delhi", "mumbai", "bangalore", "bengaluru", "chennai", "kolkata",
	"hyderabad", "pune", "jaipur", "jodhpur", "ahmedabad", "kathmandu",
	"dhaka", "colombo", "bangkok", "singapore", "kuala lumpur", "jakarta",
	"manila", "hanoi", "ho chi minh city", "hong kong", "beijing", "shanghai",
	"shenzhen", "seoul", "tokyo", "osaka", "kyoto", "taipei", "sydney",
	"melbourne", "brisbane", "perth", "auckland", "wellington",
}

// Gazetteer returns the known city names in match order.
func Gazetteer() []string {
	out := make([]string, len(gazetteer))
	copy(out, gazetteer)
	return out
}
