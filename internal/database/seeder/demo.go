package seeder

// Demo fixture values. Everything is keyed by a unique column (user email,
// academy name, program name within an academy), so reseeding never
// duplicates rows.
const (
	DemoAthleteEmail    = "demo@athlete.com"
	DemoAthletePassword = "demo1234"
	DemoAthleteName     = "Demo Athlete"
	DemoAthleteSport    = "Soccer"
	DemoAthleteBio      = "High school athlete looking to play at the next level."

	DemoAdminEmail = "admin@academy.com"
	DemoAdminName  = "Academy Admin"

	DemoAcademyName        = "Peak Performance Academy"
	DemoAcademyDescription = "Elite training programs"
	DemoAcademyWebsite     = "https://example.com/peak"
	DemoAcademyLocation    = "Austin, TX"
)

var DemoAthletePositions = []string{"Forward"}
