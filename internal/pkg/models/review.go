package models

// ReviewStatus tracks a review through moderation
type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusPublished ReviewStatus = "published"
	ReviewStatusRejected  ReviewStatus = "rejected"
)

// Review is a passenger/driver rating tied to a completed ride
type Review struct {
	ID        string       `json:"id"`
	RideID    string       `json:"ride_id"`
	AuthorID  string       `json:"author_id"`
	TargetID  string       `json:"target_id"`
	Rating    int          `json:"rating"` // 1-5
	Comment   string       `json:"comment"`
	Status    ReviewStatus `json:"status"`
	CreatedAt int64        `json:"created_at"` // epoch millis
	UpdatedAt int64        `json:"updated_at"` // epoch millis
}
