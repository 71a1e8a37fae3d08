package dto

// DashboardStats holds the headline numbers on the dashboard
type DashboardStats struct {
	MentorsCount     int `json:"mentorsCount"`
	CommunitiesCount int `json:"communitiesCount"`
	MessagesCount    int `json:"messagesCount"`
	MeetingsCount    int `json:"meetingsCount"`
}

// DashboardResponse aggregates the user's dashboard view
type DashboardResponse struct {
	Stats              DashboardStats   `json:"stats"`
	RecentPosts        []PostResponse   `json:"recentPosts"`
	RecommendedMentors []MentorResponse `json:"recommendedMentors"`
}
