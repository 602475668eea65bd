package domain

// DashboardStats carries the admin dashboard KPI numbers.
type DashboardStats struct {
	TotalOffices     int            `json:"totalOffices"`
	PublishedOffices int            `json:"publishedOffices"`
	DraftOffices     int            `json:"draftOffices"`
	OfficesPerArr    map[int]int    `json:"officesPerArr"`
	AvgPriceCents    int            `json:"avgPriceCents"`
	LeadsByStatus    map[string]int `json:"leadsByStatus"`
	LeadsLast30Days  int            `json:"leadsLast30Days"`
}
