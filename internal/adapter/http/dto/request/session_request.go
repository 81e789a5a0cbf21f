package request

type StartSessionRequest struct {
	UserID       string `json:"user_id"`
	StaffID      string `json:"staff_id"`
	PostNumber   *int   `json:"post_number"`
	LimitMinutes *int   `json:"limit_minutes"`
}

type CompleteSessionRequest struct {
	Cost     *float64 `json:"cost"`
	Duration *int     `json:"duration"`
}
