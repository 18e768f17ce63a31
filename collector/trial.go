package collector

// State identifies where a trial is in its lifecycle.
type State string

const (
	StateCollecting State = "collecting"
	StateDone       State = "done"
)

// Outcome summarizes one completed trial.
type Outcome struct {
	Purchases       int `json:"purchases"`       // drinks bought, new faces plus forced duplicates
	ForcedPurchases int `json:"forcedPurchases"` // purchases charged after the re-roll budget ran out
	Rolls           int `json:"rolls"`           // total die rolls, including free re-rolls
}

// Trial is the per-customer state machine. Collected faces only ever grow;
// RetriesLeft stays within [1, Retries]; the trial is done exactly when all
// faces have been collected.
type Trial struct {
	Params Params

	collected []bool
	count     int

	RetriesLeft     int
	Purchases       int
	ForcedPurchases int
	Rolls           int
}

// NewTrial starts a trial with an empty collection and a full re-roll budget.
func NewTrial(p Params) *Trial {
	return &Trial{
		Params:      p,
		collected:   make([]bool, p.Faces+1),
		RetriesLeft: p.Retries,
	}
}

// Collected reports how many distinct faces the trial has obtained.
func (t *Trial) Collected() int { return t.count }

// Has reports whether face has already been collected.
func (t *Trial) Has(face int) bool {
	return face >= 1 && face <= t.Params.Faces && t.collected[face]
}

// State returns the current lifecycle state.
func (t *Trial) State() State {
	if t.count == t.Params.Faces {
		return StateDone
	}
	return StateCollecting
}

// Done reports whether every face has been collected.
func (t *Trial) Done() bool { return t.count == t.Params.Faces }

// Step applies one die roll. A new face is always a purchase and resets the
// re-roll budget. A repeat burns a free re-roll while any remain; on the
// last allowed roll it becomes a forced purchase of a duplicate drink, which
// charges the customer but does not advance the collection.
func (t *Trial) Step(face int) {
	if t.Done() {
		return
	}
	t.Rolls++

	if !t.collected[face] {
		t.collected[face] = true
		t.count++
		t.Purchases++
		t.RetriesLeft = t.Params.Retries
		return
	}

	if t.RetriesLeft > 1 {
		t.RetriesLeft--
		return
	}

	// Out of re-rolls: the duplicate is bought anyway.
	t.Purchases++
	t.ForcedPurchases++
	t.RetriesLeft = t.Params.Retries
}

// Run drives the trial to completion with rolls drawn from roller and
// returns the outcome. Termination is almost sure: every roll has positive
// probability of revealing a missing face.
func (t *Trial) Run(roller Roller) Outcome {
	for !t.Done() {
		t.Step(roller.Roll(t.Params.Faces))
	}
	return Outcome{
		Purchases:       t.Purchases,
		ForcedPurchases: t.ForcedPurchases,
		Rolls:           t.Rolls,
	}
}
