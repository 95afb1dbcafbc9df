package generic

import (
	"go.uber.org/zap"
)

// =============================================================================
// ENGINE - Owns the total, the granularity and the participant list
// =============================================================================

// Engine splits a total among participants so that the resulting amounts
// always add up to the total.
//
// Every mutation (SetTotal, SetParticipants, ReplaceParticipant) recomputes
// all amounts before returning, so readers never see amounts computed
// against a stale total or a stale list. Observers attached to the signals
// are notified synchronously after the change is committed.
//
// An Engine is not safe for concurrent use; confine it to one goroutine or
// serialize access.
type Engine struct {
	total        float64
	participants []Participant
	residue      float64
	opts         options

	// TotalChanged fires after SetTotal commits.
	TotalChanged Signal[float64]
	// ParticipantsChanged fires after the participant list is replaced.
	ParticipantsChanged Signal[[]Participant]
	// AmountChanged fires once per participant whose amount changed.
	AmountChanged Signal[AmountChange]
}

// New creates an engine with a zero total and no participants.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// =============================================================================
// INBOUND
// =============================================================================

// SetTotal assigns the total, truncated to cents, and recomputes.
// Non-finite totals are replaced with 0.
func (e *Engine) SetTotal(total float64) {
	if !isFinite(total) {
		e.opts.logger.Warn("non-finite total replaced with zero", zap.Float64("total", total))
		total = 0
	}
	e.total = Truncate(total, CentPlaces)

	changes := e.recompute()
	e.TotalChanged.Emit(e.total)
	e.emitAmounts(changes)
}

// SetParticipants replaces the participant list and recomputes.
// The slice is copied; later changes to ps do not affect the engine.
func (e *Engine) SetParticipants(ps []Participant) {
	e.participants = append([]Participant(nil), ps...)

	changes := e.recompute()
	e.ParticipantsChanged.Emit(e.Participants())
	e.emitAmounts(changes)
}

// ReplaceParticipant swaps the record in slot i and recomputes.
func (e *Engine) ReplaceParticipant(i int, p Participant) error {
	if i < 0 || i >= len(e.participants) {
		return &IndexError{Index: i, Len: len(e.participants)}
	}
	e.participants[i] = p

	changes := e.recompute()
	e.ParticipantsChanged.Emit(e.Participants())
	e.emitAmounts(changes)
	return nil
}

// Recompute re-runs the allocation against the current state. Use it when a
// Computed rule's captured state changed.
func (e *Engine) Recompute() {
	e.emitAmounts(e.recompute())
}

// =============================================================================
// OUTBOUND
// =============================================================================

// Total returns the current total.
func (e *Engine) Total() float64 { return e.total }

// Granularity returns the rounding unit (0 means no rounding).
func (e *Engine) Granularity() float64 { return e.opts.granularity }

// IDMatching returns the id comparison mode.
func (e *Engine) IDMatching() IDMatching { return e.opts.matching }

// Len returns the number of participants.
func (e *Engine) Len() int { return len(e.participants) }

// Residue returns the correction the last recomputation added to the first
// participant.
func (e *Engine) Residue() float64 { return e.residue }

// Participants returns a copy of the participant records.
func (e *Engine) Participants() []Participant {
	return append([]Participant(nil), e.participants...)
}

// Amounts returns the resulting amounts, index-aligned with Participants.
func (e *Engine) Amounts() []float64 {
	amounts := make([]float64, len(e.participants))
	for i, p := range e.participants {
		amounts[i] = p.Amount()
	}
	return amounts
}

// Allocated returns the sum of the resulting amounts.
func (e *Engine) Allocated() float64 {
	return Sum(e.Amounts()...)
}

// Status compares the allocated sum with the total. Both sides are summed
// in decimal and rounded to 4 decimal places before comparing, so float
// noise below 0.0001 reads as even.
func (e *Engine) Status() Status {
	allocated := Money(0)
	for _, a := range e.Amounts() {
		allocated = allocated.Add(Money(a))
	}
	switch allocated.Round(statusPlaces).Cmp(Money(e.total).Round(statusPlaces)) {
	case 1:
		return StatusOver
	case -1:
		return StatusUnder
	default:
		return StatusEven
	}
}

// Participant returns the first participant whose id matches.
func (e *Engine) Participant(id string) (Participant, bool) {
	return e.find(id, e.opts.matching)
}

// AmountFor returns the resulting amount of the first participant whose id
// matches.
func (e *Engine) AmountFor(id string) (float64, bool) {
	p, ok := e.Participant(id)
	if !ok {
		return 0, false
	}
	return p.Amount(), true
}

func (e *Engine) find(id string, matching IDMatching) (Participant, bool) {
	if e == nil {
		return Participant{}, false
	}
	id = normalizeID(id)
	for _, p := range e.participants {
		if matching.matches(p.id, id) {
			return p, true
		}
	}
	return Participant{}, false
}

// =============================================================================
// RECOMPUTATION
// =============================================================================

// recompute rebinds every participant and reports which amounts changed.
func (e *Engine) recompute() []AmountChange {
	if len(e.participants) == 0 && e.total == 0 {
		e.residue = 0
		return nil
	}

	before := e.Amounts()
	alloc := e.allocate()

	for i := range e.participants {
		e.participants[i] = e.participants[i].bind(alloc.funcs[i])
	}
	e.residue = alloc.residue

	var changes []AmountChange
	for i, p := range e.participants {
		if after := p.Amount(); after != before[i] {
			changes = append(changes, AmountChange{Index: i, ID: p.id, Old: before[i], New: after})
		}
	}

	e.opts.logger.Debug("allocation recomputed",
		zap.Float64("total", e.total),
		zap.Int("participants", len(e.participants)),
		zap.Float64("residue", e.residue),
		zap.Int("changed", len(changes)),
	)
	return changes
}

func (e *Engine) emitAmounts(changes []AmountChange) {
	for _, c := range changes {
		e.AmountChanged.Emit(c)
	}
}
