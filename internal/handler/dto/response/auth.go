package response

type LoginResponse struct {
	CalendarID string `json:"calendarId"`
	ExpiresIn  int    `json:"expiresIn"` // seconds
}
