package oracle

import (
	"context"
	"errors"
	"testing"
)

type failing struct{}

func (failing) Message(context.Context, int, int) (string, error) {
	return "", errors.New("oracle unreachable")
}

func TestStaticDeterministic(t *testing.T) {
	ctx := context.Background()
	p := Static{}

	a, err := p.Message(ctx, 7, 7)
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	b, err := p.Message(ctx, 7, 7)
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if a == "" || a != b {
		t.Fatalf("expected stable non-empty message, got %q / %q", a, b)
	}
}

func TestStaticCoversAllBands(t *testing.T) {
	ctx := context.Background()
	p := Static{}
	for health := 0; health <= 10; health++ {
		for energy := 0; energy <= 10; energy++ {
			msg, err := p.Message(ctx, health, energy)
			if err != nil || msg == "" {
				t.Fatalf("Message(%d,%d)=%q, %v", health, energy, msg, err)
			}
		}
	}
}

func TestFetchFallback(t *testing.T) {
	ctx := context.Background()

	if got := Fetch(ctx, failing{}, 5, 5); got != Fallback {
		t.Fatalf("got %q, want fallback", got)
	}
	if got := Fetch(ctx, nil, 5, 5); got != Fallback {
		t.Fatalf("got %q, want fallback", got)
	}
	if got := Fetch(ctx, Static{}, 5, 5); got == Fallback || got == "" {
		t.Fatalf("unexpected fallback from working provider: %q", got)
	}
}
