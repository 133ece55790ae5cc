package assistant

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"ai-travel-buddy/internal/config"
	"ai-travel-buddy/internal/travel"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	openaiItineraryModel = openai.ChatModel("gpt-5-mini")
	openaiDefaultModel   = openai.ChatModelGPT4oMini
)

// openaiService is the OpenAI implementation of the assistant gateway.
type openaiService struct {
	client openai.Client
}

// NewOpenAIService creates the OpenAI-backed assistant.
func NewOpenAIService(cfg *config.Config) Service {
	return &openaiService{
		client: openai.NewClient(option.WithAPIKey(cfg.OpenAIAPIKey)),
	}
}

// complete runs one chat completion and returns the trimmed message text.
func (s *openaiService) complete(ctx context.Context, model openai.ChatModel, jsonMode bool, messages ...openai.ChatCompletionMessageParamUnion) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: messages,
	}
	if jsonMode {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	completion, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errNoContent
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func (s *openaiService) GenerateItinerary(ctx context.Context, destination string, dates travel.DateRange, prefs travel.UserPreferences) travel.Itinerary {
	prompt, err := buildItineraryPrompt(destination, dates, prefs)
	if err != nil {
		log.Printf("assistant: failed to build itinerary prompt: %v", err)
		return fallbackItinerary(destination, dates)
	}

	text, err := s.complete(ctx, openaiItineraryModel, true,
		openai.SystemMessage("You are an expert travel planner. Always return strictly valid JSON as instructed."),
		openai.UserMessage(prompt),
	)
	if err != nil {
		log.Printf("assistant: itinerary generation failed: %v", err)
		return fallbackItinerary(destination, dates)
	}

	var itinerary travel.Itinerary
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &itinerary); err != nil {
		log.Printf("assistant: failed to parse itinerary JSON: %v", err)
		return fallbackItinerary(destination, dates)
	}

	assignItineraryIDs(&itinerary)
	return itinerary
}

func (s *openaiService) ChatReply(ctx context.Context, history []travel.Message, location *travel.LatLng) travel.Message {
	history, ok := prepareHistory(history)
	if !ok {
		return greetingMessage()
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(chatSystemPrompt),
	}
	for _, msg := range history {
		if msg.Role == travel.RoleAssistant {
			messages = append(messages, openai.AssistantMessage(msg.Content))
		} else {
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}
	if hint := chatLocationHint(location); hint != "" {
		messages = append(messages, openai.UserMessage(hint))
	}

	text, err := s.complete(ctx, openaiDefaultModel, true, messages...)
	if err != nil {
		log.Printf("assistant: chat turn failed: %v", err)
		return fallbackChatMessage()
	}

	payload := parseChatPayload(text)
	return travel.Message{
		ID:       newMessageID(),
		Role:     travel.RoleAssistant,
		Content:  payload.Content,
		RichCard: payload.RichCard,
	}
}

func (s *openaiService) SuggestAlternatives(ctx context.Context, disrupted travel.Activity, location *travel.LatLng) []travel.Activity {
	prompt := buildAlternativesPrompt(disrupted)
	if hint := chatLocationHint(location); hint != "" {
		prompt += " " + hint
	}

	text, err := s.complete(ctx, openaiDefaultModel, true,
		openai.SystemMessage(`Return strictly valid JSON with key "alternatives" as an array of activities.`),
		openai.UserMessage(prompt),
	)
	if err != nil {
		log.Printf("assistant: alternatives lookup failed: %v", err)
		return fallbackAlternatives(disrupted)
	}

	var wrapper struct {
		Alternatives []travel.Activity `json:"alternatives"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &wrapper); err != nil || len(wrapper.Alternatives) == 0 {
		log.Printf("assistant: failed to parse alternatives JSON: %v", err)
		return fallbackAlternatives(disrupted)
	}

	return assignAlternativeIDs(wrapper.Alternatives, disrupted)
}

func (s *openaiService) SafetyInfo(ctx context.Context, destination string) travel.SafetyInfo {
	text, err := s.complete(ctx, openaiDefaultModel, true,
		openai.SystemMessage(`Return strictly valid JSON with keys neighborhood, score, summary, recommendation, emergencyContacts { police, ambulance, fire }.`),
		openai.UserMessage(buildSafetyPrompt(destination)),
	)
	if err != nil {
		log.Printf("assistant: safety lookup failed: %v", err)
		return fallbackSafetyInfo()
	}

	var info travel.SafetyInfo
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &info); err != nil {
		log.Printf("assistant: failed to parse safety JSON: %v", err)
		return fallbackSafetyInfo()
	}
	return info
}

func (s *openaiService) Translate(ctx context.Context, text, destination string) string {
	out, err := s.complete(ctx, openaiDefaultModel, false,
		openai.SystemMessage("Translate the user text into the primary local language spoken at the given destination. Reply with the translation only."),
		openai.UserMessage(buildTranslatePrompt(text, destination)),
	)
	if err != nil || out == "" {
		log.Printf("assistant: translation failed: %v", err)
		return translationUnavailable
	}
	return out
}

func (s *openaiService) CulturalTips(ctx context.Context, destination string) string {
	out, err := s.complete(ctx, openaiDefaultModel, false,
		openai.UserMessage(buildCulturalTipsPrompt(destination)),
	)
	if err != nil || out == "" {
		log.Printf("assistant: cultural tips lookup failed: %v", err)
		return tipsUnavailable
	}
	return out
}

func (s *openaiService) TripInspirations(ctx context.Context) []travel.TripInspiration {
	text, err := s.complete(ctx, openaiDefaultModel, true,
		openai.SystemMessage(`Return strictly valid JSON with key "inspirations" as an array of 4 items with destination, description, imageUrl (royalty-free).`),
		openai.UserMessage(inspirationsPrompt),
	)
	if err != nil {
		log.Printf("assistant: inspirations lookup failed: %v", err)
		return mockInspirations()
	}

	var wrapper struct {
		Inspirations []travel.TripInspiration `json:"inspirations"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &wrapper); err != nil || len(wrapper.Inspirations) == 0 {
		log.Printf("assistant: failed to parse inspirations JSON: %v", err)
		return mockInspirations()
	}
	return wrapper.Inspirations
}
