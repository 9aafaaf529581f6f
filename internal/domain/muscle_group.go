package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MuscleGroup is a static catalog entry used by clients to categorize
// exercises. The catalog is seeded out of band; the API only reads it.
type MuscleGroup struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
