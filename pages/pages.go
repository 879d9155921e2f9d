// Package pages renders the static content pages of the authenticated area:
// the Home dashboard blurb and the Contact/support details. The copy mirrors
// what the application has always shown; only the delivery changed from
// rendered HTML to JSON the client lays out.
package pages

// HomeContent is the Home page payload.
type HomeContent struct {
	Title       string   `json:"title" example:"Welcome, johndoe!"`
	Heading     string   `json:"heading" example:"AI Resume Scoring Dashboard"`
	Description string   `json:"description"`
	KeyFeatures []string `json:"key_features"`
	Tip         string   `json:"tip"`
}

// ContactContent is the Contact page payload.
type ContactContent struct {
	Title        string `json:"title" example:"Contact & Support"`
	Heading      string `json:"heading" example:"Get in Touch"`
	Intro        string `json:"intro"`
	SupportEmail string `json:"support_email" example:"support@resumescorer.com"`
	SupportPhone string `json:"support_phone" example:"+1 (555) 123-4567"`
	SupportHours string `json:"support_hours" example:"Mon - Fri, 9am - 5pm EST"`
}

// Home builds the Home page content for the given user.
func Home(username string) HomeContent {
	return HomeContent{
		Title:   "Welcome, " + username + "!",
		Heading: "AI Resume Scoring Dashboard",
		Description: "This platform uses advanced AI to analyze, score, and provide actionable feedback on your resume. " +
			"Navigate to the Resume Scorer page to begin your assessment.",
		KeyFeatures: []string{
			"Automated parsing of PDF/DOCX resumes.",
			"Objective scoring based on completeness, keyword relevance, and structure.",
			"Detailed, personalized feedback.",
		},
		Tip: "Use the navigation menu to move between features.",
	}
}

// Contact builds the Contact page content. It is the same for every user.
func Contact() ContactContent {
	return ContactContent{
		Title:        "Contact & Support",
		Heading:      "Get in Touch",
		Intro:        "We are here to help you get the best use out of the AI Resume Scoring Agent.",
		SupportEmail: "support@resumescorer.com",
		SupportPhone: "+1 (555) 123-4567",
		SupportHours: "Mon - Fri, 9am - 5pm EST",
	}
}
