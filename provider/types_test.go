package provider

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ID
	}{
		{"openai", "openai", OpenAI},
		{"google", "google", Google},
		{"azure", "azure", Azure},
		{"mistral", "mistral", Mistral},
		{"uppercase", "AZURE", Azure},
		{"mixed case", "MiStRaL", Mistral},
		{"surrounding space", "  google  ", Google},
		{"unknown falls back to default", "anthropic", OpenAI},
		{"empty falls back to default", "", OpenAI},
		{"garbage falls back to default", "not-a-provider", OpenAI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseID(tt.input); got != tt.want {
				t.Errorf("ParseID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIDValid(t *testing.T) {
	for _, id := range IDs() {
		if !id.Valid() {
			t.Errorf("%q.Valid() = false, want true", id)
		}
	}
	if ID("anthropic").Valid() {
		t.Error(`ID("anthropic").Valid() = true, want false`)
	}
	if ID("").Valid() {
		t.Error(`ID("").Valid() = true, want false`)
	}
}

func TestUsageAdd(t *testing.T) {
	u := Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}
	u.Add(Usage{PromptTokens: 3, CompletionTokens: 2, TotalTokens: 5})

	want := Usage{PromptTokens: 13, CompletionTokens: 7, TotalTokens: 20}
	if u != want {
		t.Errorf("Add() = %+v, want %+v", u, want)
	}
}

func TestSlotZeroValue(t *testing.T) {
	var s Slot
	if s.IsConfigured() {
		t.Error("zero Slot reports configured")
	}
	if _, ok := s.Handle(); ok {
		t.Error("zero Slot yields a handle")
	}
}

func TestConfiguredSlot(t *testing.T) {
	h := NewHandle(Mistral, "mistral-large-latest", Capabilities{ContextWindow: 128_000}, nil)
	s := Configured(h)

	if !s.IsConfigured() {
		t.Fatal("Configured slot reports unconfigured")
	}
	got, ok := s.Handle()
	if !ok {
		t.Fatal("Handle() ok = false, want true")
	}
	if got.ID() != Mistral {
		t.Errorf("ID() = %q, want %q", got.ID(), Mistral)
	}
	if got.Model() != "mistral-large-latest" {
		t.Errorf("Model() = %q, want %q", got.Model(), "mistral-large-latest")
	}
	if got.Capabilities().ContextWindow != 128_000 {
		t.Errorf("ContextWindow = %d, want 128000", got.Capabilities().ContextWindow)
	}
}
