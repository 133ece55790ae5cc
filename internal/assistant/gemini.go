package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"ai-travel-buddy/internal/config"
	"ai-travel-buddy/internal/travel"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.5-flash"

// geminiService is the Google Gemini implementation of the assistant gateway.
type geminiService struct {
	client *genai.Client
}

// NewGeminiService creates the Gemini-backed assistant.
func NewGeminiService(ctx context.Context, cfg *config.Config) (Service, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiService{client: client}, nil
}

// Close closes the underlying Gemini client.
func (s *geminiService) Close() error {
	return s.client.Close()
}

func (s *geminiService) GenerateItinerary(ctx context.Context, destination string, dates travel.DateRange, prefs travel.UserPreferences) travel.Itinerary {
	prompt, err := buildItineraryPrompt(destination, dates, prefs)
	if err != nil {
		log.Printf("assistant: failed to build itinerary prompt: %v", err)
		return fallbackItinerary(destination, dates)
	}

	model := s.client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = itinerarySchema()

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("assistant: itinerary generation failed: %v", err)
		return fallbackItinerary(destination, dates)
	}

	text, err := responseText(resp)
	if err != nil {
		log.Printf("assistant: itinerary generation returned no text: %v", err)
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

func (s *geminiService) ChatReply(ctx context.Context, history []travel.Message, location *travel.LatLng) travel.Message {
	history, ok := prepareHistory(history)
	if !ok {
		return greetingMessage()
	}

	system := chatSystemPrompt
	if hint := chatLocationHint(location); hint != "" {
		system += "\n" + hint
	}

	model := s.client.GenerativeModel(geminiModel)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	model.Tools = []*genai.Tool{{GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{}}}

	session := model.StartChat()
	session.History = geminiHistory(history[:len(history)-1])

	last := history[len(history)-1]
	resp, err := session.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		log.Printf("assistant: chat turn failed: %v", err)
		return fallbackChatMessage()
	}

	text, err := responseText(resp)
	if err != nil {
		log.Printf("assistant: chat turn returned no text: %v", err)
		return fallbackChatMessage()
	}

	payload := parseChatPayload(text)
	return travel.Message{
		ID:        newMessageID(),
		Role:      travel.RoleAssistant,
		Content:   payload.Content,
		RichCard:  payload.RichCard,
		Grounding: groundingSources(resp),
	}
}

func (s *geminiService) SuggestAlternatives(ctx context.Context, disrupted travel.Activity, location *travel.LatLng) []travel.Activity {
	prompt := buildAlternativesPrompt(disrupted)
	if hint := chatLocationHint(location); hint != "" {
		prompt += " " + hint
	}

	model := s.client.GenerativeModel(geminiModel)
	model.Tools = []*genai.Tool{{GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{}}}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("assistant: alternatives lookup failed: %v", err)
		return fallbackAlternatives(disrupted)
	}

	text, err := responseText(resp)
	if err != nil {
		log.Printf("assistant: alternatives lookup returned no text: %v", err)
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

func (s *geminiService) SafetyInfo(ctx context.Context, destination string) travel.SafetyInfo {
	model := s.client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = safetySchema()

	resp, err := model.GenerateContent(ctx, genai.Text(buildSafetyPrompt(destination)))
	if err != nil {
		log.Printf("assistant: safety lookup failed: %v", err)
		return fallbackSafetyInfo()
	}

	text, err := responseText(resp)
	if err != nil {
		log.Printf("assistant: safety lookup returned no text: %v", err)
		return fallbackSafetyInfo()
	}

	var info travel.SafetyInfo
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &info); err != nil {
		log.Printf("assistant: failed to parse safety JSON: %v", err)
		return fallbackSafetyInfo()
	}
	return info
}

func (s *geminiService) Translate(ctx context.Context, text, destination string) string {
	model := s.client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(buildTranslatePrompt(text, destination)))
	if err != nil {
		log.Printf("assistant: translation failed: %v", err)
		return translationUnavailable
	}
	out, err := responseText(resp)
	if err != nil {
		return translationUnavailable
	}
	return out
}

func (s *geminiService) CulturalTips(ctx context.Context, destination string) string {
	model := s.client.GenerativeModel(geminiModel)
	resp, err := model.GenerateContent(ctx, genai.Text(buildCulturalTipsPrompt(destination)))
	if err != nil {
		log.Printf("assistant: cultural tips lookup failed: %v", err)
		return tipsUnavailable
	}
	out, err := responseText(resp)
	if err != nil {
		return tipsUnavailable
	}
	return out
}

func (s *geminiService) TripInspirations(ctx context.Context) []travel.TripInspiration {
	model := s.client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = inspirationsSchema()

	resp, err := model.GenerateContent(ctx, genai.Text(inspirationsPrompt))
	if err != nil {
		log.Printf("assistant: inspirations lookup failed: %v", err)
		return mockInspirations()
	}

	text, err := responseText(resp)
	if err != nil {
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

// responseText extracts the first text part of a Gemini response.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}
	return string(text), nil
}

// geminiHistory converts the trip chat log into Gemini chat contents.
func geminiHistory(history []travel.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == travel.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

// groundingSources maps Gemini citation metadata onto chat grounding entries.
func groundingSources(resp *genai.GenerateContentResponse) []travel.GroundingSource {
	if len(resp.Candidates) == 0 || resp.Candidates[0].CitationMetadata == nil {
		return nil
	}
	var sources []travel.GroundingSource
	for _, cite := range resp.Candidates[0].CitationMetadata.CitationSources {
		if cite == nil || cite.URI == nil {
			continue
		}
		sources = append(sources, travel.GroundingSource{
			URI:   *cite.URI,
			Title: *cite.URI,
			Type:  "search",
		})
	}
	return sources
}

func itinerarySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"destination": {Type: genai.TypeString},
			"startDate":   {Type: genai.TypeString},
			"endDate":     {Type: genai.TypeString},
			"days": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date":      {Type: genai.TypeString},
						"dayNumber": {Type: genai.TypeInteger},
						"activities": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"title":       {Type: genai.TypeString},
									"description": {Type: genai.TypeString},
									"category":    {Type: genai.TypeString},
									"startTime":   {Type: genai.TypeString},
									"endTime":     {Type: genai.TypeString},
									"location": {
										Type: genai.TypeObject,
										Properties: map[string]*genai.Schema{
											"lat":     {Type: genai.TypeNumber},
											"lng":     {Type: genai.TypeNumber},
											"address": {Type: genai.TypeString},
										},
									},
									"costEstimate": {Type: genai.TypeNumber},
								},
							},
						},
					},
				},
			},
		},
	}
}

func safetySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"neighborhood":   {Type: genai.TypeString},
			"score":          {Type: genai.TypeInteger},
			"summary":        {Type: genai.TypeString},
			"recommendation": {Type: genai.TypeString},
			"emergencyContacts": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"police":    {Type: genai.TypeString},
					"ambulance": {Type: genai.TypeString},
					"fire":      {Type: genai.TypeString},
				},
			},
		},
	}
}

func inspirationsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"inspirations": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"destination": {Type: genai.TypeString},
						"description": {Type: genai.TypeString},
						"imageUrl":    {Type: genai.TypeString},
					},
				},
			},
		},
	}
}
