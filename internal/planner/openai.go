package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// GenerateSchema builds a strict JSON schema for T, suitable for the
// structured-output response format.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

var generatedPlanSchema = GenerateSchema[GeneratedPlan]()

const systemPrompt = `You are a certified personal trainer. Build a single workout
plan from the user's training profile. Respect the user's available equipment,
location and physical limitations. Every exercise needs name, series (digits
only), repetitions, weight, restTime, a https videoUrl demonstrating the
movement, and execution instructions. The plan must contain at least one
exercise.`

// openAIGenerator implements Generator against the OpenAI chat completions
// API (or any compatible endpoint via a custom base URL).
type openAIGenerator struct {
	client openai.Client
	model  string
}

// NewOpenAIGenerator creates a plan generator. baseURL may be empty to use
// the default OpenAI endpoint.
func NewOpenAIGenerator(apiKey, baseURL, model string) Generator {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &openAIGenerator{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// GeneratePlan asks the model for a structured workout plan.
func (g *openAIGenerator) GeneratePlan(ctx context.Context, profile Profile) (*GeneratedPlan, error) {
	schemaParam := openai.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:        "workout_plan",
		Description: openai.String("Workout plan generated from the user's training profile"),
		Schema:      generatedPlanSchema,
		Strict:      openai.Bool(true),
	}

	chat, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(profilePrompt(profile)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{JSONSchema: schemaParam},
		},
		Model: g.model,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrGeneration)
	}

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(chat.Choices[0].Message.Content), &plan); err != nil {
		return nil, fmt.Errorf("%w: malformed plan: %v", ErrGeneration, err)
	}
	return &plan, nil
}

func profilePrompt(p Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Objective: %s\n", p.Objective)
	fmt.Fprintf(&b, "Time available per session: %s\n", p.TrainingTime)
	fmt.Fprintf(&b, "Experience level: %s\n", p.ExperienceLevel)
	fmt.Fprintf(&b, "Training frequency: %s\n", p.Frequency)
	fmt.Fprintf(&b, "Program duration: %s\n", p.Duration)
	fmt.Fprintf(&b, "Training location: %s\n", p.Location)
	fmt.Fprintf(&b, "Available equipment: %s\n", strings.Join(p.Equipments, ", "))
	if p.HasPhysicalLimitations {
		fmt.Fprintf(&b, "Physical limitations: %s\n", p.LimitationDescription)
	} else {
		b.WriteString("Physical limitations: none\n")
	}
	fmt.Fprintf(&b, "Preferred training style: %s\n", p.PreferredTrainingStyle)
	fmt.Fprintf(&b, "Nutrition: %s\n", p.Nutrition)
	fmt.Fprintf(&b, "Sleep quality: %s\n", p.SleepQuality)
	return b.String()
}
