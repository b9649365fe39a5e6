package schedules

import (
	"errors"
	"fmt"
	"log/slog"

	"spawn-scheduler/internal/spawn"

	"github.com/zeebo/xxh3"
)

// Service generates schedules from plans and delegates storage to Repository.
type Service struct {
	repo Repository
}

// NewService returns a Service that keeps generated schedules in repo.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Generate expands p, stores the result under name and returns it.
// A wave-sum mismatch is returned unchanged (errors.Is ErrWaveSumMismatch) and
// nothing is stored.
func (s *Service) Generate(name string, p spawn.Plan) (*Record, error) {
	p.Name = name
	events, err := spawn.Events(p)
	if err != nil {
		return nil, err
	}

	text := spawn.Format(events)
	rec := &Record{
		Name:     name,
		Plan:     p,
		Events:   events,
		Text:     text,
		Checksum: xxh3.HashString(text),
	}
	if err := s.repo.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Schedule returns the stored schedule for name.
func (s *Service) Schedule(name string) (*Record, bool) {
	return s.repo.Get(name)
}

// Stages returns the per-stage summary of the stored schedule for name.
func (s *Service) Stages(name string) ([]spawn.StageSummary, bool) {
	rec, ok := s.repo.Get(name)
	if !ok {
		return nil, false
	}
	return spawn.Summarize(rec.Events), true
}

// Remaining returns how many events of the stored schedule for name spawn
// strictly after t.
func (s *Service) Remaining(name string, t float64) (int, bool) {
	rec, ok := s.repo.Get(name)
	if !ok {
		return 0, false
	}
	return spawn.RemainingAfter(rec.Events, t), true
}

// Names returns the names of all stored schedules.
func (s *Service) Names() []string {
	return s.repo.Names()
}

// Delete removes the stored schedule for name.
func (s *Service) Delete(name string) error {
	return s.repo.Delete(name)
}

// ParseMarkers decodes marker text into spawn events.
func (s *Service) ParseMarkers(text string) ([]spawn.Event, error) {
	return spawn.ParseSchedule(text)
}

// Preload generates every plan in pf. Plans that fail are skipped and their
// errors are joined into the returned error. Plans whose stage and wave
// counts differ are generated truncated and logged at warn level.
func (s *Service) Preload(pf *spawn.PlanFile, log *slog.Logger) (loaded int, err error) {
	var errs []error
	for _, p := range pf.Plans {
		if vErr := p.Validate(); errors.Is(vErr, spawn.ErrStageCountMismatch) {
			log.Warn("plan stage counts differ, unpaired stages ignored",
				slog.String("name", p.Name),
				slog.Int("stages", len(p.Stages)),
				slog.Int("wave_distributions", len(p.Waves)))
		}
		if _, genErr := s.Generate(p.Name, p); genErr != nil {
			errs = append(errs, fmt.Errorf("plan %q: %w", p.Name, genErr))
			continue
		}
		loaded++
	}
	return loaded, errors.Join(errs...)
}
