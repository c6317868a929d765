package rsvp

import (
	"time"

	"gorm.io/gorm"
)

// Status is the attendance confirmation of a submitted response.
type Status string

const (
	StatusYes   Status = "yes"
	StatusNo    Status = "no"
	StatusMaybe Status = "maybe"
)

func (s Status) Valid() bool {
	return s == StatusYes || s == StatusNo || s == StatusMaybe
}

// Response is a visitor RSVP submission. Rows are created by the public form
// and deleted by the admin; they are never updated.
type Response struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	GuestName           string `gorm:"not null" json:"guest_name"`
	Email               string `gorm:"not null" json:"email"`
	Phone               string `json:"phone,omitempty"`
	NumberOfGuests      int    `gorm:"not null;default:1" json:"number_of_guests"`
	AttendanceStatus    Status `gorm:"type:text;not null" json:"attendance_status"`
	MealPreference      string `json:"meal_preference,omitempty"`
	DietaryRestrictions string `json:"dietary_restrictions,omitempty"`
	SongRequests        string `json:"song_requests,omitempty"`
	Message             string `json:"message,omitempty"`
	PlusOneName         string `json:"plus_one_name,omitempty"`
	IPAddress           string `gorm:"column:ip_address" json:"ip_address,omitempty"`

	SubmittedAt time.Time `gorm:"autoCreateTime;index:idx_rsvp_submitted,sort:desc" json:"submitted_at"`
}

func (Response) TableName() string { return "rsvp_responses" }

// Stats is the aggregate the admin dashboard shows. TotalGuests only counts
// guests from responses whose status is yes.
type Stats struct {
	Total        int64 `json:"total"`
	Attending    int64 `json:"attending"`
	NotAttending int64 `json:"not_attending"`
	Maybe        int64 `json:"maybe"`
	TotalGuests  int64 `json:"total_guests"`
}

func Aggregate(db *gorm.DB) (Stats, error) {
	var s Stats
	err := db.Model(&Response{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN attendance_status = 'yes' THEN 1 ELSE 0 END), 0) AS attending,
			COALESCE(SUM(CASE WHEN attendance_status = 'no' THEN 1 ELSE 0 END), 0) AS not_attending,
			COALESCE(SUM(CASE WHEN attendance_status = 'maybe' THEN 1 ELSE 0 END), 0) AS maybe,
			COALESCE(SUM(CASE WHEN attendance_status = 'yes' THEN number_of_guests ELSE 0 END), 0) AS total_guests`).
		Scan(&s).Error
	return s, err
}
