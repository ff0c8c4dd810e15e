package dataset

import "github.com/alexanderramin/neuroguard/internal/domain"

// DefaultName is the dataset key used when none is configured.
const DefaultName = "neuroguard"

// DefaultYears is the ordered year axis of the built-in roadmap.
func DefaultYears() []string {
	return []string{"2025", "2027", "2030", "2035+"}
}

// Default builds the documented roadmap and collaborator network.
// Every call returns a fresh value; callers may mutate it freely.
func Default() *domain.Dataset {
	return &domain.Dataset{
		Name:  DefaultName,
		Years: DefaultYears(),
		Milestones: []domain.Milestone{
			{
				Year:    "2025",
				Phase:   "Organoid Testing",
				Details: "AI-directed nanobots tested in human cerebral organoids with GBM.",
				Stagger: StaggerHigh,
			},
			{
				Year:    "2027",
				Phase:   "Animal Trials",
				Details: "Full NeuroGuard modules applied in mice & primates with real-time brain monitoring.",
				Stagger: StaggerLow,
			},
			{
				Year:    "2030",
				Phase:   "Human Application",
				Details: "Terminal-stage GBM patients treated under enhanced ethical protocols.",
				Stagger: StaggerHigh,
			},
			{
				Year:    "2035+",
				Phase:   "Mars Deployment",
				Details: "Autonomous neural repair in microgravity during space missions.",
				Stagger: StaggerLow,
			},
		},
		Institutions: []domain.Institution{
			{Name: "Harvard", Latitude: 42.3770, Longitude: -71.1167},
			{Name: "MIT", Latitude: 42.3601, Longitude: -71.0942},
			{Name: "Neuralink", Latitude: 37.4848, Longitude: -122.1477},
			{Name: "Moderna", Latitude: 42.3624, Longitude: -71.0846},
			{Name: "Google AI", Latitude: 37.4220, Longitude: -122.0841},
			{Name: "Caltech", Latitude: 34.1377, Longitude: -118.1253},
			{Name: "Oxford", Latitude: 51.7548, Longitude: -1.2544},
		},
	}
}
