package telegram

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"ai-travel-buddy/internal/assistant"
	"ai-travel-buddy/internal/config"
	"ai-travel-buddy/internal/travel"
	"ai-travel-buddy/internal/trip"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API around the trip manager and assistant gateway.
type Bot struct {
	api     *tgbotapi.BotAPI
	manager *trip.Manager
	svc     assistant.Service
	cfg     *config.Config
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, manager *trip.Manager, svc assistant.Service) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{api: bot, manager: manager, svc: svc, cfg: cfg}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.CallbackQuery != nil {
		b.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	isAllowed := false
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if update.Message.From.ID == id {
			isAllowed = true
			break
		}
	}
	if !isAllowed {
		log.Printf("Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	b.handleMessage(r.Context(), update.Message)
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	chatID := msg.Chat.ID

	switch {
	case text == "/start" || text == "/help":
		b.send(chatID, helpText)
	case strings.HasPrefix(text, "/plan "):
		b.handlePlan(ctx, chatID, strings.TrimPrefix(text, "/plan "))
	case text == "/trips":
		b.send(chatID, formatTrips(b.manager.Trips()))
	case strings.HasPrefix(text, "/open "):
		b.manager.SetActiveTrip(strings.TrimSpace(strings.TrimPrefix(text, "/open ")))
		b.send(chatID, "Trip opened.")
	case text == "/home":
		b.manager.ClearActiveTrip()
		b.send(chatID, "Back to the home screen.")
	case text == "/itinerary":
		b.handleItinerary(chatID)
	case text == "/alerts":
		b.send(chatID, formatAlerts(b.manager.Alerts()))
	case strings.HasPrefix(text, "/disrupt "):
		b.handleDisrupt(ctx, chatID, strings.TrimSpace(strings.TrimPrefix(text, "/disrupt ")))
	case text == "/safety":
		b.handleSafety(ctx, chatID)
	case text == "/tips":
		b.handleTips(ctx, chatID)
	case strings.HasPrefix(text, "/translate "):
		b.handleTranslate(ctx, chatID, strings.TrimPrefix(text, "/translate "))
	case text == "/inspire":
		b.send(chatID, formatInspirations(b.svc.TripInspirations(ctx)))
	case text == "/add":
		b.handleAddRichCard(chatID)
	case strings.HasPrefix(text, "/"):
		b.send(chatID, "Unknown command. Send /help for the list.")
	default:
		b.handleChat(ctx, chatID, text)
	}
}

const helpText = `✈️ *AI Travel Buddy*
/plan <destination> <from> <to> — generate an itinerary
/trips — list trips, /open <trip-id>, /home
/itinerary — show the active trip's plan
/alerts — disruption alerts, /disrupt <alert-id> for alternatives
/safety — destination safety info
/tips — cultural etiquette tips
/translate <phrase> — translate into the local language
/inspire — destination ideas
/add — add the last recommendation card to the itinerary
Anything else is a chat message to your travel buddy.`

// handlePlan expects "<destination...> <from> <to>" with the dates as the
// final two fields so destinations can contain spaces.
func (b *Bot) handlePlan(ctx context.Context, chatID int64, args string) {
	fields := strings.Fields(args)
	if len(fields) < 3 {
		b.send(chatID, "Usage: /plan <destination> <from YYYY-MM-DD> <to YYYY-MM-DD>")
		return
	}
	dates := travel.DateRange{From: fields[len(fields)-2], To: fields[len(fields)-1]}
	destination := strings.Join(fields[:len(fields)-2], " ")

	b.send(chatID, fmt.Sprintf("Planning your trip to %s…", destination))
	newTrip, err := b.manager.PlanTrip(ctx, destination, dates)
	if err != nil {
		b.send(chatID, "Complete onboarding first: your travel preferences are missing.")
		return
	}
	b.send(chatID, formatItinerary(newTrip.Itinerary))
}

func (b *Bot) handleItinerary(chatID int64) {
	t, ok := b.manager.ActiveTrip()
	if !ok || t.Itinerary == nil {
		b.send(chatID, "No active trip. Use /plan or /open first.")
		return
	}
	b.send(chatID, formatItinerary(t.Itinerary))
}

// handleDisrupt fetches alternatives for an alert and offers them as inline
// buttons; accepting one swaps the affected activity in place.
func (b *Bot) handleDisrupt(ctx context.Context, chatID int64, alertID string) {
	alternatives := b.manager.HandleDisruption(ctx, alertID)
	if len(alternatives) == 0 {
		b.send(chatID, "No alternatives available for that alert.")
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatAlternatives(alternatives))
	msg.ParseMode = tgbotapi.ModeMarkdown

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, alt := range alternatives {
		data := fmt.Sprintf("accept|%s|%d", alertID, i)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("Swap in: %s", alt.Title), data),
		))
	}
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send alternatives: %v", err)
	}
}

func (b *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	parts := strings.Split(query.Data, "|")
	if len(parts) != 3 || parts[0] != "accept" {
		return
	}
	alertID := parts[1]
	index, err := strconv.Atoi(parts[2])
	if err != nil {
		return
	}

	for _, alert := range b.manager.Alerts() {
		if alert.ID != alertID || index >= len(alert.Alternatives) {
			continue
		}
		b.manager.AcceptAlternative(alertID, alert.Alternatives[index])
		b.send(query.Message.Chat.ID, fmt.Sprintf("Swapped in *%s*. Your itinerary is updated.", alert.Alternatives[index].Title))
		break
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "Done")); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

func (b *Bot) handleSafety(ctx context.Context, chatID int64) {
	t, ok := b.manager.ActiveTrip()
	if !ok {
		b.send(chatID, "No active trip. Use /plan or /open first.")
		return
	}
	b.send(chatID, formatSafety(t.Destination, b.svc.SafetyInfo(ctx, t.Destination)))
}

func (b *Bot) handleTips(ctx context.Context, chatID int64) {
	t, ok := b.manager.ActiveTrip()
	if !ok {
		b.send(chatID, "No active trip. Use /plan or /open first.")
		return
	}
	b.send(chatID, b.svc.CulturalTips(ctx, t.Destination))
}

func (b *Bot) handleTranslate(ctx context.Context, chatID int64, text string) {
	t, ok := b.manager.ActiveTrip()
	if !ok {
		b.send(chatID, "No active trip. Use /plan or /open first.")
		return
	}
	b.send(chatID, b.svc.Translate(ctx, text, t.Destination))
}

func (b *Bot) handleChat(ctx context.Context, chatID int64, text string) {
	reply, err := b.manager.SendMessage(ctx, text)
	if err != nil {
		b.send(chatID, "Open a trip first so I know what we're planning. Use /plan or /open.")
		return
	}

	out := reply.Content
	if reply.RichCard != nil {
		out += fmt.Sprintf("\n\n💡 *%s* (%.1f★)\n%s\nSend /add to put it on your itinerary.",
			reply.RichCard.Title, reply.RichCard.Rating, reply.RichCard.Description)
	}
	b.send(chatID, out)
}

func (b *Bot) handleAddRichCard(chatID int64) {
	card, ok := b.manager.LastRichCard()
	if !ok {
		b.send(chatID, "There's no recommendation card in the chat yet.")
		return
	}
	b.manager.AddActivityFromRichCard(card)
	b.send(chatID, fmt.Sprintf("Added *%s* to your itinerary.", card.Title))
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}
