// Package oracle supplies the motivational message shown on the home screen.
// Providers are opaque: they take the current health and energy and return a
// line of text. Fetching is fire-and-forget; a failed or slow provider never
// affects stat or history correctness.
package oracle

import "context"

// Fallback is displayed whenever a provider fails.
const Fallback = "The oracle is silent today..."

type Provider interface {
	Message(ctx context.Context, health, energy int) (string, error)
}

// Static is the built-in offline provider: a canned line picked from stat
// bands. Deterministic for a given pair of values.
type Static struct{}

var staticLines = map[string][]string{
	"critical": {
		"Even the smallest flame can be rekindled.",
		"Rest is not retreat. Recover first.",
	},
	"weary": {
		"One quest at a time. The bar fills itself.",
		"Slow steps still climb the mountain.",
	},
	"steady": {
		"A steady hand wins the long campaign.",
		"Keep the routine. The routine keeps you.",
	},
	"thriving": {
		"You are at full strength. Spend it on something worthy.",
		"The hero at rest is still the hero.",
	},
}

func band(health, energy int) string {
	switch {
	case health < 3 || energy < 2:
		return "critical"
	case health < 6:
		return "weary"
	case health > 8 && energy > 8:
		return "thriving"
	default:
		return "steady"
	}
}

func (Static) Message(_ context.Context, health, energy int) (string, error) {
	lines := staticLines[band(health, energy)]
	return lines[(health+energy)%len(lines)], nil
}

// Fetch asks the provider for a message and substitutes Fallback on any
// failure, including context cancellation.
func Fetch(ctx context.Context, p Provider, health, energy int) string {
	if p == nil {
		return Fallback
	}
	msg, err := p.Message(ctx, health, energy)
	if err != nil || msg == "" {
		return Fallback
	}
	return msg
}
