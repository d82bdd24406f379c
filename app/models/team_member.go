package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleSlot is one entry of a member's weekly schedule.
// The schedule feature was never wired in the admin console, so the slice
// stays empty, but the shape is kept so stored documents round-trip.
type ScheduleSlot struct {
	Day       string `bson:"day" json:"day"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// TeamMember is a bakery staff member shown on the admin team page.
// Create/delete only; no update operation.
type TeamMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Role      string             `bson:"role" json:"role"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Schedule  []ScheduleSlot     `bson:"schedule" json:"schedule"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
