package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WelcomeMailData struct {
	Name string `json:"name"`
}

type ListingRemovedMailData struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	CompanyName string `json:"companyName"`
}
