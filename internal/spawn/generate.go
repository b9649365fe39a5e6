package spawn

import (
	"fmt"
	"strings"
)

// Separator joins tokens in the marker text.
const Separator = ", "

// GenerateSchedule renders the spawn schedule for enemy as marker text.
// stages and waves are paired by index; entries past the shorter of the two
// are ignored. If any stage's waves do not sum to its declared count the call
// fails with a *WaveSumMismatchError and no text.
func GenerateSchedule(enemy string, stages []int, waves [][]int, waveGap, enemyDelay, firstWave float64) (string, error) {
	events, err := Events(Plan{
		Enemy:         enemy,
		Stages:        stages,
		Waves:         waves,
		WaveGap:       waveGap,
		EnemyDelay:    enemyDelay,
		FirstWaveTime: firstWave,
	})
	if err != nil {
		return "", err
	}
	return Format(events), nil
}

// Events expands p into its spawn events in generation order:
// stage, then wave, then position within the wave.
func Events(p Plan) ([]Event, error) {
	n := pairedStages(p)

	total := 0
	for i := 0; i < n; i++ {
		sum := 0
		for _, size := range p.Waves[i] {
			sum += size
		}
		if sum != p.Stages[i] {
			return nil, &WaveSumMismatchError{Stage: i, Declared: p.Stages[i], Sum: sum}
		}
		total += sum
	}

	events := make([]Event, 0, total)
	for stage := 0; stage < n; stage++ {
		start := p.FirstWaveTime
		for wave, size := range p.Waves[stage] {
			for pos := 0; pos < size; pos++ {
				events = append(events, Event{
					Enemy:    p.Enemy,
					Stage:    stage,
					Wave:     wave,
					Position: pos,
					Time:     start + float64(pos)*p.EnemyDelay,
				})
			}
			start += p.WaveGap
		}
	}
	return events, nil
}

// Format renders events as marker text.
func Format(events []Event) string {
	var b strings.Builder
	for i, ev := range events {
		if i > 0 {
			b.WriteString(Separator)
		}
		b.WriteString(ev.Label())
	}
	return b.String()
}

// Label returns the marker token for the event, e.g. "kudzu0-5.00".
func (e Event) Label() string {
	return fmt.Sprintf("%s%d-%.2f", e.Enemy, e.Stage, e.Time)
}

// Validate checks the plan without generating it. Unlike Events it also
// reports a stage/wave count mismatch, which generation tolerates.
func (p Plan) Validate() error {
	if len(p.Stages) != len(p.Waves) {
		return fmt.Errorf("%w: %d stages, %d wave distributions", ErrStageCountMismatch, len(p.Stages), len(p.Waves))
	}
	_, err := Events(p)
	return err
}

func pairedStages(p Plan) int {
	if len(p.Waves) < len(p.Stages) {
		return len(p.Waves)
	}
	return len(p.Stages)
}
