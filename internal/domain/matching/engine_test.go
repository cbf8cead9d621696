package matching

import "testing"

func intp(v int) *int { return &v }

func TestScore_EmptyProfilesIsBase(t *testing.T) {
	got := Score(Profile{}, Profile{})
	if got != 50 {
		t.Fatalf("expected base score 50, got %d", got)
	}
}

func TestScore_HeightTerm(t *testing.T) {
	cases := []struct {
		name string
		a, b *int
		want int
	}{
		{"both missing", nil, nil, 50},
		{"one missing", intp(170), nil, 50},
		{"diff zero", intp(170), intp(170), 60},
		{"diff exactly 10", intp(170), intp(180), 60},
		{"diff 11", intp(170), intp(181), 55},
		{"diff exactly 20", intp(170), intp(190), 55},
		{"diff 21", intp(170), intp(191), 50},
		{"negative diff", intp(190), intp(175), 55},
	}

	for _, tc := range cases {
		got := Score(Profile{Height: tc.a}, Profile{Height: tc.b})
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestScore_WeightTermSameRule(t *testing.T) {
	got := Score(Profile{Weight: intp(70)}, Profile{Weight: intp(85)})
	if got != 55 {
		t.Fatalf("expected 55, got %d", got)
	}
}

func TestScore_GoalSubstring(t *testing.T) {
	got := Score(Profile{Goal: "lose weight"}, Profile{Goal: "Lose Weight fast"})
	if got != 80 {
		t.Fatalf("expected 80 for containing goal, got %d", got)
	}
}

func TestScore_GoalSharedToken(t *testing.T) {
	got := Score(Profile{Goal: "lose weight"}, Profile{Goal: "weight loss program"})
	if got != 65 {
		t.Fatalf("expected 65 for shared token, got %d", got)
	}
}

func TestScore_GoalNoOverlap(t *testing.T) {
	got := Score(Profile{Goal: "cardio"}, Profile{Goal: "hypertrophy"})
	if got != 50 {
		t.Fatalf("expected 50 for unrelated goals, got %d", got)
	}
}

func TestScore_GoalMissingEitherSide(t *testing.T) {
	if got := Score(Profile{Goal: "cardio"}, Profile{}); got != 50 {
		t.Fatalf("expected 50 when one goal empty, got %d", got)
	}
	if got := Score(Profile{Goal: "   "}, Profile{Goal: "cardio"}); got != 50 {
		t.Fatalf("expected 50 when goal is whitespace, got %d", got)
	}
}

func TestScore_TokenTermIsDirectional(t *testing.T) {
	a := Profile{Goal: "weightloss"}
	b := Profile{Goal: "cut weight"}

	// "weightloss" has no token of b, but b's token "weight" appears in a.
	if got := Score(b, a); got != 65 {
		t.Fatalf("expected 65, got %d", got)
	}
	if got := Score(a, b); got != 50 {
		t.Fatalf("expected 50 in reverse direction, got %d", got)
	}
}

func TestScore_CappedAt100(t *testing.T) {
	a := Profile{Height: intp(170), Weight: intp(70), Goal: "build muscle"}
	b := Profile{Height: intp(172), Weight: intp(68), Goal: "build muscle and more"}

	got := Score(a, b)
	if got != 100 {
		t.Fatalf("expected cap at 100, got %d", got)
	}
}

func TestScore_FullScenario(t *testing.T) {
	// 50 base + 10 height + 10 weight + 15 shared "weight" token.
	x := Profile{Height: intp(170), Weight: intp(70), Goal: "lose weight"}
	y := Profile{Height: intp(172), Weight: intp(68), Goal: "weight loss"}

	got := Score(x, y)
	if got != 85 {
		t.Fatalf("expected 85, got %d", got)
	}
}

func TestScore_AlwaysInRange(t *testing.T) {
	profiles := []Profile{
		{},
		{Height: intp(0), Weight: intp(0)},
		{Height: intp(250), Weight: intp(200), Goal: "a b c d e f"},
		{Height: intp(-5), Goal: ""},
	}
	for i, a := range profiles {
		for j, b := range profiles {
			got := Score(a, b)
			if got < 0 || got > 100 {
				t.Fatalf("score out of range for pair (%d,%d): %d", i, j, got)
			}
		}
	}
}
