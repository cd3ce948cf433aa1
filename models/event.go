package models

type EventTimeline struct {
	Label    string `json:"label"`
	Datetime string `json:"datetime"`
}

type PrizeBreakdown struct {
	Position string `json:"position"`
	Amount   string `json:"amount"`
}

type EventPrizes struct {
	Total     string           `json:"total"`
	Breakdown []PrizeBreakdown `json:"breakdown"`
}

type RegistrationStep struct {
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type EventRegistration struct {
	Type     string             `json:"type"` // "link" or "form"
	URL      string             `json:"url,omitempty"`
	Steps    []RegistrationStep `json:"steps,omitempty"`
	Deadline string             `json:"deadline,omitempty"`
}

type EventContact struct {
	Email   string            `json:"email"`
	Phone   string            `json:"phone,omitempty"`
	Socials map[string]string `json:"socials,omitempty"`
}

type Event struct {
	ID               string            `json:"id"`
	Slug             string            `json:"slug"`
	Title            string            `json:"title"`
	Category         string            `json:"category"`
	Rating           string            `json:"rating"`
	ShortDescription string            `json:"shortDescription"`
	FullDescription  string            `json:"fullDescription"`
	Highlights       []string          `json:"highlights"`
	Registration     EventRegistration `json:"registration"`
	Prizes           EventPrizes       `json:"prizes"`
	Rules            []string          `json:"rules"`
	Timeline         []EventTimeline   `json:"timeline"`
	Contact          EventContact      `json:"contact"`
	Image            string            `json:"image,omitempty"`
}
