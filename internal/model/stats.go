package model

// Stats holds the dashboard aggregate counters. The four counts are computed
// as independent queries, so they are consistent only as of their own query
// time, not across each other.
type Stats struct {
	TotalLeads     int `json:"totalLeads"`
	TotalPosts     int `json:"totalPosts"`
	PublishedPosts int `json:"publishedPosts"`
	LeadsLastWeek  int `json:"leadsLastWeek"`
}

// ChartData is the sparse daily lead series for the dashboard chart. Days
// without leads are omitted, so len(Labels) == len(Values) but neither spans
// every calendar day of the window.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}
