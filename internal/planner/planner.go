// Package planner talks to the external AI collaborator that turns a user's
// training profile into a workout plan. The generator's output is treated as
// untrusted input and re-validated by the caller before persistence.
package planner

import (
	"context"
	"errors"
)

// ErrGeneration is returned when the external generator fails or returns an
// unusable plan.
var ErrGeneration = errors.New("plan generation failed")

// Profile is the questionnaire the AI plan is generated from.
type Profile struct {
	Objective              string   `json:"objective"`
	TrainingTime           string   `json:"trainingTime"`
	ExperienceLevel        string   `json:"experienceLevel"`
	Frequency              string   `json:"frequency"`
	Duration               string   `json:"duration"`
	Location               string   `json:"location"`
	Equipments             []string `json:"equipments"`
	HasPhysicalLimitations bool     `json:"hasPhysicalLimitations"`
	LimitationDescription  string   `json:"limitationDescription"`
	PreferredTrainingStyle string   `json:"preferredTrainingStyle"`
	Nutrition              string   `json:"nutrition"`
	SleepQuality           string   `json:"sleepQuality"`
}

// GeneratedExercise mirrors the internal exercise shape so the plan can be
// normalized into an ordinary workout. jsonschema tags drive the structured
// output contract sent to the model.
type GeneratedExercise struct {
	Name         string `json:"name" jsonschema_description:"Exercise name"`
	Series       string `json:"series" jsonschema_description:"Number of sets, digits only, e.g. 4"`
	Repetitions  string `json:"repetitions" jsonschema_description:"Repetitions per set, e.g. 10 or 8-12"`
	Weight       string `json:"weight" jsonschema_description:"Suggested load including unit, e.g. 60kg or bodyweight"`
	RestTime     string `json:"restTime" jsonschema_description:"Rest between sets including unit, e.g. 90s"`
	VideoURL     string `json:"videoUrl" jsonschema_description:"URL of a demonstration video, https"`
	Instructions string `json:"instructions" jsonschema_description:"Execution cues for the exercise"`
}

// GeneratedPlan is the structured output the model must produce.
type GeneratedPlan struct {
	Name      string              `json:"name" jsonschema_description:"Short name for the workout plan"`
	Exercises []GeneratedExercise `json:"exercises" jsonschema_description:"Ordered list of exercises in the plan"`
}

// Generator produces a workout plan from a training profile.
type Generator interface {
	GeneratePlan(ctx context.Context, profile Profile) (*GeneratedPlan, error)
}
