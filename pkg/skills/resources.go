package skills

type Course struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

var Courses = []Course{
	{Id: "c1", Title: "Resume Writing: Get Your Dream Job", Platform: "Coursera", URL: "https://www.coursera.org"},
	{Id: "c2", Title: "Interview Skills Masterclass", Platform: "Udemy", URL: "https://www.udemy.com"},
	{Id: "c3", Title: "English for Career Development", Platform: "Coursera", URL: "https://www.coursera.org/learn/english-for-career-development"},
	{Id: "c4", Title: "LinkedIn Networking Essentials", Platform: "LinkedIn Learning", URL: "https://www.linkedin.com/learning"},
	{Id: "c5", Title: "ATS Keywords & Job Search Strategy", Platform: "Udemy", URL: "https://www.udemy.com"},
}

type InterviewQuestion struct {
	Id     string `json:"id"`
	Prompt string `json:"prompt"`
	Rubric string `json:"rubric"`
}

var InterviewQuestions = []InterviewQuestion{
	{Id: "i1", Prompt: "Tell me about yourself.", Rubric: "Structure your story: background, key achievements, and why this role."},
	{Id: "i2", Prompt: "Describe a challenging project and your impact.", Rubric: "Use STAR: Situation, Task, Action, Result with metrics."},
	{Id: "i3", Prompt: "Why should we sponsor your visa or hire you?", Rubric: "Highlight unique skills, adaptability, and relocation readiness."},
}

// Steps are the readiness journey tabs.
var Steps = []string{"assessment", "courses", "resume", "interview"}
