package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExperienceLevel describes how long a user has been training.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// User represents an account in the system. Identity comes from an external
// provider, so ExternalID (not email) is the lookup key and there is no
// credential material stored here.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExternalID    string             `bson:"externalId" json:"userId"` // Provider-issued ID, unique
	Name          string             `bson:"name" json:"name"`
	Avatar        string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Experience    ExperienceLevel    `bson:"experience,omitempty" json:"experience,omitempty"`
	Goal          string             `bson:"goal,omitempty" json:"goal,omitempty"`
	Height        float64            `bson:"height,omitempty" json:"height,omitempty"`
	Weight        float64            `bson:"weight,omitempty" json:"weight,omitempty"`
	PublicProfile bool               `bson:"publicProfile" json:"publicProfile"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProfileUpdate carries the optional fields of a partial profile update.
// Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	Name          *string
	Avatar        *string
	Email         *string
	Experience    *ExperienceLevel
	Goal          *string
	Height        *float64
	Weight        *float64
	PublicProfile *bool
}
