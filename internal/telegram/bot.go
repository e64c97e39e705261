// Package telegram delivers fitness plans over a Telegram webhook bot, the
// second delivery channel next to the web UI.
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"ai-fitness-planner/internal/config"
	"ai-fitness-planner/internal/planner"
	"ai-fitness-planner/internal/profile"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

const helpText = `👋 *AI Fitness Assistant*

Send me your profile, one field per line:

` + "```" + `
name: Ann
age: 30
gender: female
height: 165
weight: 60
goal: weight loss
level: beginner
dietary: vegan
medical: none
stress: low
` + "```" + `

I will reply with a personalized workout and diet plan.`

// Bot wraps the Telegram API and the plan generator.
type Bot struct {
	api     *tgbotapi.BotAPI
	planner *planner.Planner
	cfg     *config.Config
	log     zerolog.Logger
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, p *planner.Planner, log zerolog.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Info().Str("account", bot.Self.UserName).Msg("[Telegram] authorized")

	wh, err := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook for %s: %w", cfg.TelegramWebhookURL, err)
	}
	resp, err := bot.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Info().Str("description", resp.Description).Msg("[Telegram] webhook set")

	return &Bot{api: bot, planner: p, cfg: cfg, log: log}, nil
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
		b.log.Error().Err(err).Msg("[Telegram] error parsing update")
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
		b.log.Warn().
			Int64("user_id", update.Message.From.ID).
			Str("username", update.Message.From.UserName).
			Msg("[Telegram] unauthorized access attempt")
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	if msg.Text == "/start" || msg.Text == "/help" {
		reply := tgbotapi.NewMessage(msg.Chat.ID, helpText)
		reply.ParseMode = "Markdown"
		b.api.Send(reply)
		return
	}

	prof, err := parseProfile(msg.Text)
	if err != nil {
		b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "❌ "+err.Error()+"\n\nSend /help for the expected format."))
		return
	}
	if err := prof.Validate(); err != nil {
		b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, "❌ "+err.Error()))
		return
	}

	statusText := "🏋️ *Thinking...* \n(Generating your workout and diet plan)"
	replyMsg := tgbotapi.NewMessage(msg.Chat.ID, statusText)
	replyMsg.ParseMode = "Markdown"
	sentMsg, err := b.api.Send(replyMsg)
	if err != nil {
		b.log.Error().Err(err).Msg("[Telegram] failed to send initial reply")
		return
	}

	ctx := context.Background()
	out, err := b.planner.GeneratePlan(ctx, prof)

	var finalText string
	if err != nil {
		b.log.Error().Err(err).Msg("[Telegram] error generating plan")
		safeErr := strings.ReplaceAll(err.Error(), "`", "'")
		finalText = fmt.Sprintf("❌ *Error generating plan:*\n```\n%v\n```", safeErr)
	} else {
		finalText = formatOutcomeMarkdown(out)
	}

	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, finalText)
	edit.ParseMode = "Markdown"
	b.api.Send(edit)
}

// parseProfile reads a "key: value" line per field. Field names are case
// insensitive; unknown keys are rejected so typos surface instead of
// silently producing an empty prompt field.
func parseProfile(text string) (profile.UserProfile, error) {
	var prof profile.UserProfile

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return prof, fmt.Errorf("line %q is not in key: value form", line)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "name":
			prof.Name = value
		case "age":
			age, err := strconv.Atoi(value)
			if err != nil {
				return prof, fmt.Errorf("age %q is not a number", value)
			}
			prof.Age = age
		case "gender":
			prof.Gender = profile.Gender(strings.ToLower(value))
		case "height":
			h, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return prof, fmt.Errorf("height %q is not a number", value)
			}
			prof.HeightCM = h
		case "weight":
			w, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return prof, fmt.Errorf("weight %q is not a number", value)
			}
			prof.WeightKG = w
		case "goal":
			prof.Goal = value
		case "level":
			prof.Level = profile.Level(strings.ToLower(value))
		case "dietary":
			prof.Dietary = profile.Dietary(strings.ToLower(value))
		case "medical":
			if !strings.EqualFold(value, "none") {
				prof.Medical = value
			}
		case "stress":
			prof.Stress = profile.Stress(strings.ToLower(value))
		default:
			return prof, fmt.Errorf("unknown field %q", key)
		}
	}

	return prof, nil
}

// formatOutcomeMarkdown renders a plan outcome as a Telegram Markdown
// message. A structured plan gets the full card treatment; raw text falls
// back to the same heading segmentation the web result page uses.
func formatOutcomeMarkdown(out planner.Outcome) string {
	var sb strings.Builder

	if out.Structured() {
		plan := out.Object
		sb.WriteString("💪 *Your Fitness Plan*\n\n")
		if plan.Summary != "" {
			sb.WriteString(plan.Summary + "\n\n")
		}

		if len(plan.WorkoutPlan) > 0 {
			sb.WriteString("🏋️ *Workout Plan*\n")
			for _, day := range plan.WorkoutPlan {
				sb.WriteString(fmt.Sprintf("*%s*\n", day.Day))
				for _, ex := range day.Exercises {
					sb.WriteString("• " + ex.Name)
					if ex.Sets != "" {
						sb.WriteString(fmt.Sprintf(" (%s)", ex.Sets))
					}
					if ex.Notes != "" {
						sb.WriteString(" - " + ex.Notes)
					}
					sb.WriteString("\n")
				}
				if day.Notes != "" {
					sb.WriteString(fmt.Sprintf("_%s_\n", day.Notes))
				}
			}
			sb.WriteString("\n")
		}

		if len(plan.DietPlan) > 0 {
			sb.WriteString("🥗 *Diet Plan*\n")
			for _, day := range plan.DietPlan {
				sb.WriteString(fmt.Sprintf("*%s*\n", day.Day))
				for _, meal := range day.Meals {
					sb.WriteString("• " + meal.Name)
					if meal.Calories != 0 {
						sb.WriteString(fmt.Sprintf(" (%d kcal)", meal.Calories))
					}
					if len(meal.Items) > 0 {
						sb.WriteString(": " + strings.Join(meal.Items, ", "))
					}
					sb.WriteString("\n")
				}
				if day.Notes != "" {
					sb.WriteString(fmt.Sprintf("_%s_\n", day.Notes))
				}
			}
			sb.WriteString("\n")
		}

		if len(plan.Tips) > 0 {
			sb.WriteString("💡 *Tips*\n")
			for _, tip := range plan.Tips {
				sb.WriteString("• " + tip + "\n")
			}
			sb.WriteString("\n")
		}

		if plan.Motivation != "" {
			sb.WriteString("🔥 _" + plan.Motivation + "_\n")
		}
		return sb.String()
	}

	sb.WriteString("💪 *Your Fitness Plan*\n\n")
	for _, sec := range planner.Segment(out.Raw) {
		sb.WriteString(fmt.Sprintf("*%s*\n", sec.Title))
		for _, line := range planner.FormatLines(sec.Content) {
			if line.IsBullet() {
				sb.WriteString("• " + line.Text + "\n")
			} else {
				sb.WriteString(line.Text + "\n")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
