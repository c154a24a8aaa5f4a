package visa

type Visa struct {
	Type        string   `json:"type"`
	Eligibility []string `json:"eligibility"`
	Documents   []string `json:"documents"`
	Processing  string   `json:"processing"`
}

type CountryRequirements struct {
	Country string `json:"country"`
	Visas   []Visa `json:"visas"`
}

// Countries lists the destinations with published requirements, in display
// order.
var Countries = []string{"Canada", "United Kingdom", "United States", "Germany"}

var catalog = map[string]CountryRequirements{
	"Canada": {
		Country: "Canada",
		Visas: []Visa{
			{Type: "Work (Express Entry)", Eligibility: []string{"Skilled work experience", "Language test (IELTS/TEF)", "Proof of funds"}, Documents: []string{"Passport", "ECA (education)", "Language results"}, Processing: "6–8 months"},
			{Type: "Study Permit", Eligibility: []string{"Letter of acceptance", "Proof of funds", "Ties to home country"}, Documents: []string{"Passport", "LOA", "Bank statements"}, Processing: "8–12 weeks"},
			{Type: "Visitor Visa", Eligibility: []string{"Travel purpose", "Sufficient funds"}, Documents: []string{"Passport", "Itinerary", "Proof of funds"}, Processing: "3–8 weeks"},
		},
	},
	"United Kingdom": {
		Country: "United Kingdom",
		Visas: []Visa{
			{Type: "Skilled Worker", Eligibility: []string{"Sponsor license employer", "English B1", "Salary threshold"}, Documents: []string{"Passport", "CoS", "English test"}, Processing: "3–8 weeks"},
			{Type: "Student Visa", Eligibility: []string{"CAS from university", "Funds", "English"}, Documents: []string{"Passport", "CAS", "Bank statements"}, Processing: "3–6 weeks"},
			{Type: "Visitor Visa", Eligibility: []string{"Travel purpose", "Funds"}, Documents: []string{"Passport", "Itinerary", "Bank statements"}, Processing: "3–6 weeks"},
		},
	},
	"United States": {
		Country: "United States",
		Visas: []Visa{
			{Type: "H-1B (Specialty Occupation)", Eligibility: []string{"Bachelor's degree", "Employer sponsor"}, Documents: []string{"Passport", "LCA", "I-129"}, Processing: "3–6 months (varies)"},
			{Type: "F-1 (Student)", Eligibility: []string{"I-20 from school", "Funds"}, Documents: []string{"Passport", "I-20", "SEVIS fee"}, Processing: "3–8 weeks"},
			{Type: "B-2 (Tourist)", Eligibility: []string{"Travel purpose", "Funds"}, Documents: []string{"Passport", "Itinerary", "Funds"}, Processing: "2–8 weeks"},
		},
	},
	"Germany": {
		Country: "Germany",
		Visas: []Visa{
			{Type: "Blue Card", Eligibility: []string{"University degree", "Salary threshold"}, Documents: []string{"Passport", "Degree", "Contract"}, Processing: "6–12 weeks"},
			{Type: "Job Seeker", Eligibility: []string{"Recognized degree", "Funds"}, Documents: []string{"Passport", "CV", "Proof of funds"}, Processing: "6–12 weeks"},
			{Type: "Schengen (Tourist)", Eligibility: []string{"Travel purpose", "Funds"}, Documents: []string{"Passport", "Itinerary", "Insurance"}, Processing: "2–6 weeks"},
		},
	},
}

// Requirements looks a destination up by its display name.
func Requirements(country string) (CountryRequirements, bool) {
	r, ok := catalog[country]
	return r, ok
}
