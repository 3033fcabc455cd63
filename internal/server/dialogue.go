// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/jeranaias/intentdesk-tui/internal/model"
	"github.com/jeranaias/intentdesk-tui/internal/store"
	"github.com/jeranaias/intentdesk-tui/internal/util"
)

// Assistant replies with fixed wording the client keys off of.
const (
	// CompletionReply is sent on the turn that posts the intent. The
	// client matches on the "I've posted your request" fragment to know
	// the conversation is done.
	CompletionReply = "Perfect! I've posted your request on your behalf."

	// AlreadyCompletedReply is sent for any message after completion.
	AlreadyCompletedReply = "It looks like we've already finalized your request for this conversation. Start a new chat if you need anything else!"
)

// =============================================================================
// CANNED SCHEMAS
// =============================================================================

// schemaDef pairs an intent schema with its trigger keywords and the
// question asked for each slot.
type schemaDef struct {
	keywords []string
	opening  string
	detail   model.IntentDetail
	prompts  map[string]string
}

// schemas is checked in order; the last entry has no keywords and always
// matches.
var schemas = []schemaDef{
	{
		keywords: []string{"ride", "carpool", "lift", "drive", "pickup"},
		opening:  "Happy to help you arrange a ride!",
		detail: model.IntentDetail{
			IntentName:  "request_ride",
			DisplayName: "Ride Request",
			Description: "Arrange a shared ride with someone nearby.",
			Slots: []model.Slot{
				{Name: "pickupLocation", Type: "string", Required: true},
				{Name: "dropoffLocation", Type: "string", Required: true},
				{Name: "departureTime", Type: "string", Required: true},
				{Name: "seats", Type: "number"},
			},
		},
		prompts: map[string]string{
			"pickupLocation":  "Where should the ride pick you up?",
			"dropoffLocation": "Where are you headed?",
			"departureTime":   "When do you want to leave?",
		},
	},
	{
		keywords: []string{"sell", "selling", "buy", "buying", "marketplace"},
		opening:  "Let's get your listing together.",
		detail: model.IntentDetail{
			IntentName:  "sell_item",
			DisplayName: "Marketplace Listing",
			Description: "Offer an item for sale to the community.",
			Slots: []model.Slot{
				{Name: "itemName", Type: "string", Required: true},
				{Name: "price", Type: "number", Required: true},
				{Name: "condition", Type: "enum", Required: true, Options: []string{"new", "used"}},
			},
		},
		prompts: map[string]string{
			"itemName":  "What are you selling?",
			"price":     "What price are you asking?",
			"condition": "Is it new or used?",
		},
	},
	{
		keywords: []string{"tutor", "tutoring", "lesson", "lessons", "teach", "homework"},
		opening:  "Let's find you the right tutor.",
		detail: model.IntentDetail{
			IntentName:  "find_tutor",
			DisplayName: "Tutoring Request",
			Description: "Find a tutor for a subject.",
			Slots: []model.Slot{
				{Name: "subject", Type: "string", Required: true},
				{Name: "level", Type: "enum", Required: true, Options: []string{"beginner", "intermediate", "advanced"}},
				{Name: "budget", Type: "number", Required: true},
			},
		},
		prompts: map[string]string{
			"subject": "What subject do you need help with?",
			"level":   "What level are you at: beginner, intermediate, or advanced?",
			"budget":  "What's your budget per hour?",
		},
	},
	{
		opening: "I can post that for the community.",
		detail: model.IntentDetail{
			IntentName:  "general_request",
			DisplayName: "Community Request",
			Description: "A free-form request for the community.",
			Slots: []model.Slot{
				{Name: "summary", Type: "string", Required: true},
				{Name: "details", Type: "string", Required: true},
			},
		},
		prompts: map[string]string{
			"summary": "Give me a one-line summary of what you need.",
			"details": "Any details I should include?",
		},
	},
}

func classify(message string) schemaDef {
	lower := strings.ToLower(message)
	for _, def := range schemas {
		for _, kw := range def.keywords {
			if strings.Contains(lower, kw) {
				return def
			}
		}
	}
	return schemas[len(schemas)-1]
}

func schemaFor(intentName string) schemaDef {
	for _, def := range schemas {
		if def.detail.IntentName == intentName {
			return def
		}
	}
	return schemas[len(schemas)-1]
}

// =============================================================================
// DIALOGUE ENGINE
// =============================================================================

// Dialogue advances conversations through the slot-filling state machine,
// persisting thread state between turns.
type Dialogue struct {
	repo  store.Repository
	now   func() time.Time
	newID func() string
}

// NewDialogue creates a dialogue engine on the given repository.
func NewDialogue(repo store.Repository) *Dialogue {
	return &Dialogue{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Advance processes one user message. The returned intent is non-nil only
// on the turn that finalizes and posts the request; the caller owns
// broadcasting it.
func (d *Dialogue) Advance(ctx context.Context, userID, threadID, message string) (string, *model.Intent, error) {
	ts, err := d.repo.GetThread(ctx, threadID)
	if err != nil {
		return "", nil, err
	}
	if ts == nil {
		ts = &store.ThreadState{
			ThreadID:    threadID,
			UserID:      userID,
			Status:      store.StatusGathering,
			FilledSlots: map[string]any{},
		}
	}
	ts.Messages = append(ts.Messages, model.Message{Role: model.RoleUser, Content: message})

	var reply string
	var finalized *model.Intent

	switch ts.Status {
	case store.StatusCompleted:
		reply = AlreadyCompletedReply

	case store.StatusConfirming:
		reply, finalized, err = d.confirm(ctx, ts, message)
		if err != nil {
			return "", nil, err
		}

	default:
		reply = d.gather(ts, message)
	}

	ts.Messages = append(ts.Messages, model.Message{Role: model.RoleModel, Content: reply})
	if err := d.repo.SaveThread(ctx, ts); err != nil {
		return "", nil, err
	}
	return reply, finalized, nil
}

// gather handles the GATHERING state: pick a schema on the first message,
// then fill one required slot per turn.
func (d *Dialogue) gather(ts *store.ThreadState, message string) string {
	if ts.Schema == nil {
		def := classify(message)
		detail := def.detail
		ts.Schema = &detail
		return def.opening + " " + d.prompt(ts)
	}

	slot, ok := nextMissing(ts)
	if !ok {
		// All slots were already filled; re-issue the summary.
		ts.Status = store.StatusConfirming
		return summarize(ts)
	}

	value, retry := parseSlotValue(slot, message)
	if retry != "" {
		return retry
	}
	ts.FilledSlots[slot.Name] = value

	if _, more := nextMissing(ts); more {
		return d.prompt(ts)
	}
	ts.Status = store.StatusConfirming
	return summarize(ts)
}

// confirm handles AWAITING_CONFIRMATION: yes posts the intent, no starts
// the slot values over, anything else re-reads the summary.
func (d *Dialogue) confirm(ctx context.Context, ts *store.ThreadState, message string) (string, *model.Intent, error) {
	switch {
	case isNegative(message):
		ts.FilledSlots = map[string]any{}
		ts.Status = store.StatusGathering
		return "No problem, let's start over. " + d.prompt(ts), nil, nil

	case isAffirmative(message):
		exists, err := d.repo.HasIntentForThread(ctx, ts.ThreadID)
		if err != nil {
			return "", nil, err
		}
		if exists {
			ts.Status = store.StatusCompleted
			return AlreadyCompletedReply, nil, nil
		}

		intent := d.buildIntent(ts)
		if err := d.repo.SaveIntent(ctx, intent); err != nil {
			return "", nil, err
		}
		ts.Status = store.StatusCompleted
		return CompletionReply, &intent, nil

	default:
		return "Sorry, I didn't catch that. " + summarize(ts), nil, nil
	}
}

// buildIntent turns the accumulated thread state into a stored intent.
// String values are normalized to sentence case on the way out.
func (d *Dialogue) buildIntent(ts *store.ThreadState) model.Intent {
	final := make(map[string]any, len(ts.FilledSlots))
	for k, v := range ts.FilledSlots {
		if s, isString := v.(string); isString {
			final[k] = sentenceCase(s)
		} else {
			final[k] = v
		}
	}

	detail := *ts.Schema
	detail.FilledSlots = final
	return model.Intent{
		IntentID:  d.newID(),
		ThreadID:  ts.ThreadID,
		UserID:    ts.UserID,
		CreatedAt: d.now().UTC(),
		Detail:    detail,
	}
}

func (d *Dialogue) prompt(ts *store.ThreadState) string {
	slot, ok := nextMissing(ts)
	if !ok {
		return summarize(ts)
	}
	def := schemaFor(ts.Schema.IntentName)
	if p, found := def.prompts[slot.Name]; found {
		return p
	}
	return fmt.Sprintf("What should I put for %s?", strings.ToLower(util.SlotLabel(slot.Name)))
}

// nextMissing returns the first required slot without a value.
func nextMissing(ts *store.ThreadState) (model.Slot, bool) {
	for _, slot := range ts.Schema.Slots {
		if !slot.Required {
			continue
		}
		if _, filled := ts.FilledSlots[slot.Name]; !filled {
			return slot, true
		}
	}
	return model.Slot{}, false
}

// parseSlotValue extracts a typed value from the user's answer. A non-empty
// retry string means the answer did not fit and should be asked again.
func parseSlotValue(slot model.Slot, message string) (any, string) {
	trimmed := strings.TrimSpace(message)
	switch slot.Type {
	case "number":
		if v, ok := extractNumber(trimmed); ok {
			return v, ""
		}
		return nil, fmt.Sprintf("I need a number for %s. What should I put?",
			strings.ToLower(util.SlotLabel(slot.Name)))

	case "enum":
		lower := strings.ToLower(trimmed)
		for _, opt := range slot.Options {
			if strings.Contains(lower, strings.ToLower(opt)) {
				return opt, ""
			}
		}
		return nil, fmt.Sprintf("For %s I can take one of: %s. Which is it?",
			strings.ToLower(util.SlotLabel(slot.Name)), strings.Join(slot.Options, ", "))

	default:
		if trimmed == "" {
			return nil, fmt.Sprintf("I didn't catch that. What should I put for %s?",
				strings.ToLower(util.SlotLabel(slot.Name)))
		}
		return trimmed, ""
	}
}

// extractNumber finds the first numeric token in free text, tolerating
// currency symbols and trailing punctuation.
func extractNumber(s string) (float64, bool) {
	for _, field := range strings.Fields(s) {
		field = strings.Trim(field, "$€£,!?")
		field = strings.TrimSuffix(field, ".")
		if v, err := strconv.ParseFloat(field, 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// summarize reads the collected values back for confirmation.
func summarize(ts *store.ThreadState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I have for your %s:\n\n", strings.ToLower(ts.Schema.DisplayName))
	for _, slot := range ts.Schema.Slots {
		v, filled := ts.FilledSlots[slot.Name]
		if !filled {
			continue
		}
		fmt.Fprintf(&b, "- **%s:** %s\n", util.SlotLabel(slot.Name), formatValue(v))
	}
	b.WriteString("\nIs that all correct?")
	return b.String()
}

func formatValue(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

// sentenceCase upper-cases the first rune and lower-cases the rest,
// matching how the production backend normalizes stored slot values.
func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

var negativeWords = []string{"no", "nope", "wrong", "incorrect", "change", "start over", "not right"}

var affirmativeWords = []string{"yes", "yep", "yeah", "correct", "right", "sure", "ok", "okay", "confirm", "go ahead", "looks good"}

func isNegative(message string) bool {
	return matchesAny(message, negativeWords)
}

func isAffirmative(message string) bool {
	return matchesAny(message, affirmativeWords)
}

// matchesAny does word-boundary matching so "no" does not fire on "now".
func matchesAny(message string, words []string) bool {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, message)
	joined := " " + strings.Join(strings.Fields(normalized), " ") + " "
	for _, w := range words {
		if strings.Contains(joined, " "+w+" ") {
			return true
		}
	}
	return false
}
