package usecases

import (
	"pneuma_bot/internal/entities"
	"strings"
)

type intentRule struct {
	intent   entities.Intent
	keywords []string
}

// Rules are checked top to bottom and the first hit wins, so a message that
// mentions both deals and transfers is a deals question.
var intentRules = []intentRule{
	{intent: entities.IntentSweetSpotDeals, keywords: []string{"deal", "sweet spot", "sweet-spot"}},
	{intent: entities.IntentTransferBasics, keywords: []string{"transfer", "move points"}},
	{intent: entities.IntentAboutService, keywords: []string{"what is pneuma", "what do you do", "about this service"}},
}

// IntentRouter classifies messages by keyword containment.
type IntentRouter struct {
	rules []intentRule
}

func NewIntentRouter() *IntentRouter {
	return &IntentRouter{rules: intentRules}
}

// Classify lowercases the message and returns the intent of the first rule
// with a keyword anywhere in it, or IntentFallback.
func (r *IntentRouter) Classify(message string) entities.Intent {
	normalized := strings.ToLower(message)
	for _, rule := range r.rules {
		if containsAny(normalized, rule.keywords) {
			return rule.intent
		}
	}
	return entities.IntentFallback
}

func containsAny(content string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(content, k) {
			return true
		}
	}
	return false
}
