package imperative

import "testing"

func TestMood(t *testing.T) {
	tests := []struct {
		word string
		want Verdict
	}{
		{word: "return", want: Imperative},
		{word: "returns", want: NotImperative},
		{word: "returned", want: NotImperative},
		{word: "creates", want: NotImperative},
		{word: "create", want: Imperative},
		{word: "this", want: NotImperative},
		{word: "constructor", want: NotImperative},
		{word: "xyzzy", want: Unknown},
		{word: "", want: Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Mood(tt.word); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("Don't,"); got != "don't" {
		t.Fatalf("expected %q, got %q", "don't", got)
	}
	if got := Normalize("`Returns`"); got != "returns" {
		t.Fatalf("expected %q, got %q", "returns", got)
	}
}
