package jobs

type JobType string

const (
	FullTime JobType = "Full-time"
	PartTime JobType = "Part-time"
	Contract JobType = "Contract"
)

type Job struct {
	Id            string   `json:"id"`
	Title         string   `json:"title"`
	Employer      string   `json:"employer"`
	Location      string   `json:"location"`
	Type          JobType  `json:"type"`
	Skills        []string `json:"skills"`
	VisaSponsored bool     `json:"visa_sponsored"`
	URL           string   `json:"url"`
	Premium       bool     `json:"premium,omitempty"`
}

// Listings is the seeded board until the external feeds are merged in.
var Listings = []Job{
	{Id: "1", Title: "Software Engineer", Employer: "GlobalTech", Location: "Toronto, CA", Type: FullTime, Skills: []string{"react", "typescript"}, VisaSponsored: true, URL: "https://example.com/job/1"},
	{Id: "2", Title: "Data Analyst", Employer: "HealthPlus", Location: "Vancouver, CA", Type: Contract, Skills: []string{"sql", "python"}, VisaSponsored: false, URL: "https://example.com/job/2"},
	{Id: "3", Title: "Frontend Developer", Employer: "FinServe", Location: "New York, US", Type: FullTime, Skills: []string{"react", "tailwind"}, VisaSponsored: true, URL: "https://example.com/job/3", Premium: true},
	{Id: "4", Title: "Cloud Engineer", Employer: "SkyOps", Location: "Austin, US", Type: FullTime, Skills: []string{"aws", "terraform"}, VisaSponsored: false, URL: "https://example.com/job/4"},
	{Id: "5", Title: "QA Engineer", Employer: "Medware", Location: "Berlin, DE", Type: PartTime, Skills: []string{"cypress", "testing"}, VisaSponsored: true, URL: "https://example.com/job/5"},
	{Id: "6", Title: "Backend Developer", Employer: "Shoply", Location: "Remote", Type: FullTime, Skills: []string{"node", "postgres"}, VisaSponsored: false, URL: "https://example.com/job/6"},
	{Id: "7", Title: "ML Engineer", Employer: "VisionAI", Location: "London, UK", Type: FullTime, Skills: []string{"python", "pytorch"}, VisaSponsored: true, URL: "https://example.com/job/7", Premium: true},
	{Id: "8", Title: "DevOps Engineer", Employer: "BuildOps", Location: "Dublin, IE", Type: Contract, Skills: []string{"kubernetes", "ci/cd"}, VisaSponsored: false, URL: "https://example.com/job/8"},
}

func FindByID(id string) (Job, bool) {
	for _, j := range Listings {
		if j.Id == id {
			return j, true
		}
	}
	return Job{}, false
}
