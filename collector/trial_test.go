package collector

import "testing"

// scriptRoller replays a fixed roll sequence.
type scriptRoller struct {
	rolls []int
	pos   int
}

func (s *scriptRoller) Roll(faces int) int {
	r := s.rolls[s.pos%len(s.rolls)]
	s.pos++
	return r
}

func TestNewTrial(t *testing.T) {
	tr := NewTrial(Params{Faces: 20, Retries: 3})

	if tr.Collected() != 0 {
		t.Errorf("Expected empty collection, got %d", tr.Collected())
	}
	if tr.RetriesLeft != 3 {
		t.Errorf("Expected full retry budget, got %d", tr.RetriesLeft)
	}
	if tr.State() != StateCollecting {
		t.Errorf("Expected collecting state, got %s", tr.State())
	}
}

func TestStepNewFace(t *testing.T) {
	tr := NewTrial(Params{Faces: 20, Retries: 3})
	tr.Step(7)

	if tr.Collected() != 1 {
		t.Errorf("Expected 1 collected, got %d", tr.Collected())
	}
	if !tr.Has(7) {
		t.Error("Expected face 7 to be collected")
	}
	if tr.Purchases != 1 {
		t.Errorf("Expected 1 purchase, got %d", tr.Purchases)
	}
	if tr.RetriesLeft != 3 {
		t.Errorf("Expected retry budget reset to 3, got %d", tr.RetriesLeft)
	}
}

func TestStepRepeatBurnsRetries(t *testing.T) {
	tr := NewTrial(Params{Faces: 20, Retries: 3})
	tr.Step(7) // purchase 1: new face

	tr.Step(7) // free re-roll
	if tr.Purchases != 1 {
		t.Errorf("Free re-roll should not charge, got %d purchases", tr.Purchases)
	}
	if tr.RetriesLeft != 2 {
		t.Errorf("Expected 2 retries left, got %d", tr.RetriesLeft)
	}

	tr.Step(7) // free re-roll
	if tr.RetriesLeft != 1 {
		t.Errorf("Expected 1 retry left, got %d", tr.RetriesLeft)
	}

	tr.Step(7) // third consecutive repeat: forced purchase
	if tr.Purchases != 2 {
		t.Errorf("Forced roll should charge, got %d purchases", tr.Purchases)
	}
	if tr.ForcedPurchases != 1 {
		t.Errorf("Expected 1 forced purchase, got %d", tr.ForcedPurchases)
	}
	if tr.Collected() != 1 {
		t.Errorf("Forced duplicate must not advance collection, got %d", tr.Collected())
	}
	if tr.RetriesLeft != 3 {
		t.Errorf("Expected retry budget reset after forced purchase, got %d", tr.RetriesLeft)
	}
}

func TestTrialTerminates(t *testing.T) {
	// Roll 1..5 in order: five purchases, no repeats.
	tr := NewTrial(Params{Faces: 5, Retries: 3})
	out := tr.Run(&scriptRoller{rolls: []int{1, 2, 3, 4, 5}})

	if !tr.Done() {
		t.Error("Expected trial to be done")
	}
	if tr.State() != StateDone {
		t.Errorf("Expected done state, got %s", tr.State())
	}
	if out.Purchases != 5 {
		t.Errorf("Expected 5 purchases, got %d", out.Purchases)
	}
	if out.Rolls != 5 {
		t.Errorf("Expected 5 rolls, got %d", out.Rolls)
	}
	if out.ForcedPurchases != 0 {
		t.Errorf("Expected no forced purchases, got %d", out.ForcedPurchases)
	}
}

func TestTrialWithForcedPurchase(t *testing.T) {
	// 1, then three repeats of 1 (forcing a duplicate purchase), then 2.
	tr := NewTrial(Params{Faces: 2, Retries: 3})
	out := tr.Run(&scriptRoller{rolls: []int{1, 1, 1, 1, 2}})

	if out.Purchases != 3 {
		t.Errorf("Expected 3 purchases (2 faces + 1 forced), got %d", out.Purchases)
	}
	if out.ForcedPurchases != 1 {
		t.Errorf("Expected 1 forced purchase, got %d", out.ForcedPurchases)
	}
	if out.Rolls != 5 {
		t.Errorf("Expected 5 rolls, got %d", out.Rolls)
	}
}

func TestStepAfterDoneIsNoop(t *testing.T) {
	tr := NewTrial(Params{Faces: 1, Retries: 3})
	tr.Step(1)

	if !tr.Done() {
		t.Fatal("Expected trial done after collecting the only face")
	}

	tr.Step(1)
	if tr.Purchases != 1 || tr.Rolls != 1 {
		t.Errorf("Step after done must not mutate, got %d purchases %d rolls", tr.Purchases, tr.Rolls)
	}
}

func TestOutcomeAtLeastFaces(t *testing.T) {
	roller := NewRoller(7)
	for i := 0; i < 200; i++ {
		tr := NewTrial(Params{Faces: 6, Retries: 3})
		out := tr.Run(roller)
		if out.Purchases < 6 {
			t.Fatalf("Trial %d finished in %d purchases, below face count", i, out.Purchases)
		}
		if out.Rolls < out.Purchases {
			t.Fatalf("Trial %d has fewer rolls than purchases", i)
		}
	}
}
