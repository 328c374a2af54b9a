package repository

import "pneuma_bot/internal/entities"

// Context blocks keep their source layout: a leading newline, eight-space
// indentation and a trailing indented line. They reach the prompt unchanged.

const sweetSpotDealsContext = `
        Today's Sweet-Spot Deals:
        - Deal 1: Fly Business Class from New York (JFK) to Lisbon (LIS) on TAP Air Portugal for 35,000 Amex points. It's the best way to cross the Atlantic without a trust fund.
        - Deal 2: Fly Economy from Los Angeles (LAX) to Tokyo (HND) on ANA for 55,000 Chase points round-trip. Yes, round-trip.
        - Deal 3: Fly from Chicago (ORD) to a surprise Caribbean destination (e.g., AUA, PUJ) on United for 12,500 MileagePlus miles. We call this one "The Escape Hatch."
        `

const transferBasicsContext = `
        Mileage Transfer Basics: Transferring points means sending them from a flexible rewards program (like Amex, Chase, or Capital One) to a specific airline or hotel partner (like United, British Airways, or Hyatt).

        Why it's useful: It gives you flexibility. You don't have to commit your points to one airline until you find a flight you're ready to book.

        One key rule: Transfers are almost always a one-way street. Once you move your points from the bank to the airline, you can't move them back. So, it's best to confirm your flight is available before you transfer.
        `

const aboutServiceContext = `
        Pneuma is a service that helps you find great flights you can book with your existing credit card points and airline miles. Instead of you spending hours searching, we find the "sweet spot" deals—high-value redemptions where your points go furthest—and show you how to book them. We focus on the data, not the hype.
        `

const fallbackContext = `The user is asking a question that does not match any of the known intents (deals, transfers, about Pneuma).`

// ContextCatalog holds the factual context block for every intent. It is
// filled once in NewContextCatalog and only read afterwards, so a single
// instance is safe to share between requests.
type ContextCatalog struct {
	order  []entities.Intent
	blocks map[entities.Intent]string
}

func NewContextCatalog() *ContextCatalog {
	return &ContextCatalog{
		order: []entities.Intent{
			entities.IntentSweetSpotDeals,
			entities.IntentTransferBasics,
			entities.IntentAboutService,
			entities.IntentFallback,
		},
		blocks: map[entities.Intent]string{
			entities.IntentSweetSpotDeals: sweetSpotDealsContext,
			entities.IntentTransferBasics: transferBasicsContext,
			entities.IntentAboutService:   aboutServiceContext,
			entities.IntentFallback:       fallbackContext,
		},
	}
}

// Lookup returns the context block for intent. Anything outside the known set
// gets the fallback block.
func (c *ContextCatalog) Lookup(intent entities.Intent) string {
	if block, ok := c.blocks[intent]; ok {
		return block
	}
	return c.blocks[entities.IntentFallback]
}

// Intents lists the known intents in routing priority order.
func (c *ContextCatalog) Intents() []entities.Intent {
	out := make([]entities.Intent, len(c.order))
	copy(out, c.order)
	return out
}
