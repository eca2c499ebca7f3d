package session

import (
	"context"
	"testing"
)

func TestFollowUpContextStaysFixed(t *testing.T) {
	f := newFixture(
		"what is this sensory object", // triggers object recognition
		"what color is it",            // follow-up turn 1
		"how much does it cost",       // follow-up turn 2
		"exit",                        // ends follow-up only
		"exit",                        // ends the session
	)
	f.objects.answers = map[string]string{
		"what color is it":      "It is red.",
		"how much does it cost": "Around one dollar.",
	}

	if err := f.session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(f.objects.contexts) != 2 {
		t.Fatalf("answered %d follow-ups, want 2", len(f.objects.contexts))
	}
	for i, got := range f.objects.contexts {
		if got != "A red apple." {
			t.Errorf("turn %d recognition context = %q, want the original recognition", i, got)
		}
	}
	f.saidExactly(t, "It is red.")
	f.saidExactly(t, "Around one dollar.")
}

func TestFollowUpExitDoesNotEndSession(t *testing.T) {
	f := newFixture(
		"what am i holding",
		"exit",               // leaves follow-up
		"describe the scene", // the outer session is still live
		"exit",
	)

	if err := f.session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	f.saidExactly(t, "Exiting follow-up session.")
	if f.scene.calls != 1 {
		t.Errorf("scene called %d times after follow-up, want 1", f.scene.calls)
	}
	f.saidExactly(t, "Exiting now.")
}

func TestFollowUpEmptyInputPrompt(t *testing.T) {
	f := newFixture(
		"what am i holding",
		"",
		"exit",
		"exit",
	)

	if err := f.session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	f.saidExactly(t, "No valid input detected. Please try again or say 'exit' to end.")
}

func TestFollowUpExitCaseInsensitive(t *testing.T) {
	f := newFixture(
		"what am i holding",
		"EXIT please",
		"exit",
	)

	if err := f.session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	f.saidExactly(t, "Exiting follow-up session.")
	if len(f.objects.contexts) != 0 {
		t.Errorf("no follow-up answers expected, got %d", len(f.objects.contexts))
	}
}

func TestFollowUpSkippedWhenRecognitionFails(t *testing.T) {
	f := newFixture("what am i holding", "exit")
	f.objects.recognErr = context.DeadlineExceeded
	f.objects.recognition = ""

	if err := f.session.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	f.saidExactly(t, "Failed to recognize object")
	if len(f.objects.contexts) != 0 {
		t.Errorf("follow-up ran despite failed recognition")
	}
}
