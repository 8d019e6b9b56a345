package provider

import (
	"context"
	"testing"

	"github.com/inquira/promptkit/config"
)

func nopBuilder(_ context.Context, _ config.Settings) (Slot, error) {
	return Unconfigured(), nil
}

func TestRegisterAndIsRegistered(t *testing.T) {
	if IsRegistered(Mistral) {
		t.Fatal("mistral registered before test began")
	}

	Register(Mistral, nopBuilder)
	t.Cleanup(func() { Unregister(Mistral) })

	if !IsRegistered(Mistral) {
		t.Error("IsRegistered(Mistral) = false after Register")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(Azure, nopBuilder)
	t.Cleanup(func() { Unregister(Azure) })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(Azure, nopBuilder)
}

func TestRegisteredOrder(t *testing.T) {
	Register(Mistral, nopBuilder)
	Register(OpenAI, nopBuilder)
	Register(Google, nopBuilder)
	t.Cleanup(func() {
		Unregister(Mistral)
		Unregister(OpenAI)
		Unregister(Google)
	})

	got := Registered()
	want := []ID{OpenAI, Google, Mistral}
	if len(got) != len(want) {
		t.Fatalf("Registered() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Registered()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUnregister(t *testing.T) {
	Register(Google, nopBuilder)
	Unregister(Google)

	if IsRegistered(Google) {
		t.Error("IsRegistered(Google) = true after Unregister")
	}
}
