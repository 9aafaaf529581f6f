package domain

import (
	"net/url"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is one movement prescription inside a Workout. Exercises are
// embedded in their workout document but carry their own IDs so they can be
// referenced (and deleted) individually.
//
// Series, Repetitions, Weight and RestTime are free-form strings because
// units vary ("10-12", "60kg", "90s"); only Series is constrained to a plain
// integer encoding.
type Exercise struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Series       string             `bson:"series" json:"series"`
	Repetitions  string             `bson:"repetitions" json:"repetitions"`
	Weight       string             `bson:"weight" json:"weight"`
	RestTime     string             `bson:"restTime" json:"restTime"`
	VideoURL     string             `bson:"videoUrl" json:"videoUrl"`
	Instructions string             `bson:"instructions" json:"instructions"`
}

var seriesPattern = regexp.MustCompile(`^\d+$`)

// ValidSeries reports whether s encodes a non-negative integer (digits only,
// no sign, no fraction).
func ValidSeries(s string) bool {
	return seriesPattern.MatchString(s)
}

// ValidVideoURL reports whether s parses as an absolute http(s) URL.
func ValidVideoURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
