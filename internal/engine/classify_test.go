package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name             string
		hp, xp, energy   int
		want             string
	}{
		{"all steady", 5, 5, 5, "stable"},
		{"high hp and xp", 9, 8, 5, "energetic, leaps & bounds"},
		{"everything low", 2, 1, 1, "exhausted, meditation, hungry"},
		{"only hungry", 5, 5, 1, "hungry"},
		{"exhausted only", 2, 5, 5, "exhausted"},
		{"energetic only", 9, 5, 5, "energetic"},
		{"meditation only", 5, 2, 5, "meditation"},
		{"leaps only", 5, 8, 5, "leaps & bounds"},
		{"boundaries do not trigger", 8, 7, 2, "stable"},
		{"low boundaries do not trigger", 3, 3, 2, "stable"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, Classify(c.hp, c.xp, c.energy))
		})
	}
}

// Fragments always appear in health, experience, energy order.
func TestClassifyFragmentOrder(t *testing.T) {
	got := Classify(1, 9, 0)
	require.Equal(t, []string{StatusExhausted, StatusLeaps, StatusHungry}, strings.Split(got, ", "))
}

func TestClassifyTotal(t *testing.T) {
	for hp := 0; hp <= MaxStat; hp++ {
		for xp := 0; xp <= MaxStat; xp++ {
			for energy := 0; energy <= MaxStat; energy++ {
				require.NotEmpty(t, Classify(hp, xp, energy))
			}
		}
	}
}
