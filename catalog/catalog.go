// Package catalog holds the static fest event catalog. The registration
// sheet stays the source of truth for who signed up; this is just the
// presentation data behind the events endpoints.
package catalog

import (
	"errors"

	"github.com/kineticfest/registration-core/models"
)

var ErrEventNotFound = errors.New("event not found")

var events = []models.Event{
	{
		ID:               "1",
		Slug:             "dehack",
		Title:            "DEHACK",
		Category:         "TECH",
		Rating:           "PG",
		ShortDescription: "Build. Break. Innovate. 5 Days of intense hacking.",
		FullDescription:  "DeHack is the flagship hackathon of Kinetic Premiere. It brings together the brightest minds to solve real-world problems through technology. Over 5 days, participants will form teams, conceptualize ideas, and build functional prototypes.",
		Highlights: []string{
			"5 Days long hackathon",
			"Mentorship from industry experts",
			"Free food and swags",
			"Networking opportunities",
		},
		Registration: models.EventRegistration{
			Type:     "link",
			URL:      "https://forms.gle/example_dehack",
			Deadline: "2026-02-15T23:59:00",
		},
		Prizes: models.EventPrizes{
			Total: "₹1,00,000+",
			Breakdown: []models.PrizeBreakdown{
				{Position: "1st Place", Amount: "₹50,000"},
				{Position: "2nd Place", Amount: "₹30,000"},
				{Position: "3rd Place", Amount: "₹20,000"},
				{Position: "Best UI/UX", Amount: "₹10,000"},
			},
		},
		Rules: []string{
			"Teams must consist of 2-4 members.",
			"All code must be written during the event.",
			"Use of open-source libraries is allowed.",
			"Plagiarism will lead to immediate disqualification.",
		},
		Timeline: []models.EventTimeline{
			{Label: "Registration Closes", Datetime: "2026-02-15 23:59"},
			{Label: "Hackathon Starts", Datetime: "2026-02-20 09:00"},
			{Label: "Mentoring Round 1", Datetime: "2026-02-21 14:00"},
			{Label: "Hackathon Ends", Datetime: "2026-02-25 09:00"},
			{Label: "Winner Announcement", Datetime: "2026-02-25 16:00"},
		},
		Contact: models.EventContact{
			Email: "dehack@kinetic.com",
			Phone: "+91 98765 43210",
		},
	},
	{
		ID:               "2",
		Slug:             "bedrock",
		Title:            "BEDROCK",
		Category:         "INNOVATION",
		Rating:           "G",
		ShortDescription: "The ultimate entrepreneurship challenge. Pitch your startup.",
		FullDescription:  "Bedrock is designed for aspiring entrepreneurs. Pitch your startup idea to a panel of investors and venture capitalists. Validate your business model and secure funding to kickstart your journey.",
		Highlights: []string{
			"Pitch to real investors",
			"Workshop on business modeling",
			"Incubation opportunities",
			"Seed funding for top teams",
		},
		Registration: models.EventRegistration{
			Type: "form",
			Steps: []models.RegistrationStep{
				{Label: "Submit Executive Summary", Description: "Upload a 1-page PDF."},
				{Label: "Pitch Deck Submission", Description: "Max 10 slides."},
				{Label: "Final Presentation"},
			},
			Deadline: "2026-02-18T23:59:00",
		},
		Prizes: models.EventPrizes{
			Total: "₹2,00,000 (Seed Funding)",
		},
		Rules: []string{},
		Contact: models.EventContact{
			Email: "bedrock@kinetic.com",
			Phone: "+91 98765 43211",
		},
	},
	{
		ID:               "3",
		Slug:             "workshop",
		Title:            "WORKSHOP",
		Category:         "TECH",
		Rating:           "PG",
		ShortDescription: "Hands-on sessions with industry experts.",
		FullDescription:  "Learn cutting-edge technologies from experts in the field. Topics range from AI/ML to Blockchain and Cloud Computing.",
		Highlights:       []string{"Expert Trainers", "Certificate of Participation"},
		Registration:     models.EventRegistration{Type: "link", URL: "#"},
		Prizes:           models.EventPrizes{Total: "N/A", Breakdown: []models.PrizeBreakdown{}},
		Rules:            []string{"Bring your own laptop."},
		Timeline:         []models.EventTimeline{},
		Contact:          models.EventContact{Email: "workshop@kinetic.com"},
	},
	{
		ID:               "4",
		Slug:             "ideathon",
		Title:            "IDEATHON",
		Category:         "INNOVATION",
		Rating:           "G",
		ShortDescription: "Rapid ideation competition.",
		FullDescription:  "Solve surprise problem statements in restricted time.",
		Highlights:       []string{"Brainstorming", "Quick Solutions"},
		Registration:     models.EventRegistration{Type: "link", URL: "#"},
		Prizes:           models.EventPrizes{Total: "₹20,000", Breakdown: []models.PrizeBreakdown{}},
		Rules:            []string{},
		Timeline:         []models.EventTimeline{},
		Contact:          models.EventContact{Email: "ideathon@kinetic.com"},
	},
	{
		ID:               "5",
		Slug:             "panel-talk",
		Title:            "PANEL TALK",
		Category:         "INSIGHTS",
		Rating:           "PG",
		ShortDescription: "Leaders share their journey.",
		FullDescription:  "Hear from industry veterans about their experiences and trends in the tech world.",
		Highlights:       []string{"Q&A Session"},
		Registration:     models.EventRegistration{Type: "link", URL: "#"},
		Prizes:           models.EventPrizes{Total: "N/A", Breakdown: []models.PrizeBreakdown{}},
		Rules:            []string{},
		Timeline:         []models.EventTimeline{},
		Contact:          models.EventContact{Email: "talks@kinetic.com"},
	},
	{
		ID:               "6",
		Slug:             "startup-expo",
		Title:            "STARTUP EXPO",
		Category:         "BUSINESS",
		Rating:           "G",
		ShortDescription: "Showcase your venture.",
		FullDescription:  "A platform for startups to exhibit their products and services to a wider audience.",
		Highlights:       []string{"Stalls", "Networking"},
		Registration:     models.EventRegistration{Type: "link", URL: "#"},
		Prizes:           models.EventPrizes{Total: "N/A", Breakdown: []models.PrizeBreakdown{}},
		Rules:            []string{},
		Timeline:         []models.EventTimeline{},
		Contact:          models.EventContact{Email: "expo@kinetic.com"},
	},
}

func Events() []models.Event {
	return events
}

func EventBySlug(slug string) (*models.Event, error) {
	for i := range events {
		if events[i].Slug == slug {
			return &events[i], nil
		}
	}
	return nil, ErrEventNotFound
}
