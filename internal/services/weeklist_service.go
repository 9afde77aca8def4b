package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-weeklist/internal/models"
	"github.com/adanyl0v/go-weeklist/internal/repository"
	"github.com/adanyl0v/go-weeklist/internal/weeklist"
)

const activeWeeklistLimit = 2

type weeklistServiceImpl struct {
	logger    zerolog.Logger
	weeklists repository.Weeklists
	now       Clock
}

func NewWeeklistService(
	logger zerolog.Logger,
	weeklists repository.Weeklists,
	now Clock,
) WeeklistService {
	if now == nil {
		now = time.Now
	}
	return &weeklistServiceImpl{
		logger:    logger,
		weeklists: weeklists,
		now:       now,
	}
}

func (s *weeklistServiceImpl) Create(ctx context.Context, owner Principal, name string) (*models.Weeklist, error) {
	now := s.now()

	count, err := s.weeklists.CountActiveByUserID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	if count >= activeWeeklistLimit {
		s.logger.Warn().
			Str("user_id", owner.ID).
			Int("active", count).
			Msg("active weeklist limit reached")
		return nil, ErrActiveWeeklistLimit
	}

	id, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate weeklist id")
		return nil, err
	}

	wl := &models.Weeklist{
		ID:        id.String(),
		UserID:    owner.ID,
		Name:      name,
		Tasks:     []models.Task{},
		EndTime:   weeklist.ComputeWeekEnd(now),
		State:     models.StateActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = weeklist.Validate(wl)
	if err != nil {
		return nil, err
	}

	err = s.weeklists.Insert(ctx, wl)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("weeklist_id", wl.ID).
		Str("user_id", owner.ID).
		Time("end_time", wl.EndTime).
		Msg("created weeklist")
	return wl, nil
}

func (s *weeklistServiceImpl) GetByID(ctx context.Context, owner Principal, id string) (*models.Weeklist, error) {
	wl, err := s.find(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	// Lazy expiry: reads flip stale weeklists too. If the flip fails
	// to persist, the read still proceeds with the in-memory state.
	if weeklist.Expire(wl, s.now()) {
		s.persistExpiry(ctx, wl)
	}
	return wl, nil
}

func (s *weeklistServiceImpl) Update(ctx context.Context, owner Principal, id string, patch WeeklistPatch) (*models.Weeklist, error) {
	now := s.now()

	wl, err := s.find(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	err = weeklist.GuardEditWindow(wl, now)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		wl.Name = *patch.Name
	}
	wl.EndTime = weeklist.ComputeWeekEnd(now)
	wl.UpdatedAt = now

	err = weeklist.Validate(wl)
	if err != nil {
		return nil, err
	}

	err = s.update(ctx, wl)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("weeklist_id", wl.ID).
		Msg("updated weeklist")
	return wl, nil
}

func (s *weeklistServiceImpl) Delete(ctx context.Context, owner Principal, id string) error {
	now := s.now()

	wl, err := s.find(ctx, owner, id)
	if err != nil {
		return err
	}

	err = weeklist.GuardEditWindow(wl, now)
	if err != nil {
		return err
	}

	err = s.weeklists.Delete(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWeeklistNotFound
		}
		return err
	}

	s.logger.Info().
		Str("weeklist_id", id).
		Msg("deleted weeklist")
	return nil
}

func (s *weeklistServiceImpl) ClearTasks(ctx context.Context, owner Principal, id string) (*models.Weeklist, error) {
	now := s.now()

	wl, err := s.find(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	err = weeklist.GuardEditWindow(wl, now)
	if err != nil {
		return nil, err
	}

	weeklist.ClearTasks(wl, now)
	wl.UpdatedAt = now

	err = weeklist.Validate(wl)
	if err != nil {
		return nil, err
	}

	err = s.update(ctx, wl)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("weeklist_id", wl.ID).
		Msg("cleared weeklist tasks")
	return wl, nil
}

func (s *weeklistServiceImpl) AddTask(ctx context.Context, owner Principal, id, text string) (*models.Weeklist, error) {
	now := s.now()

	wl, err := s.find(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	err = s.guardActiveTaskOp(ctx, wl, now, true)
	if err != nil {
		return nil, err
	}

	task, err := weeklist.AddTask(wl, text)
	if err != nil {
		return nil, err
	}

	wl.EndTime = weeklist.ComputeWeekEnd(now)
	wl.UpdatedAt = now

	err = weeklist.Validate(wl)
	if err != nil {
		return nil, err
	}

	err = s.update(ctx, wl)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("weeklist_id", wl.ID).
		Str("task_id", task.ID).
		Msg("created task")
	return wl, nil
}

func (s *weeklistServiceImpl) MarkTask(ctx context.Context, owner Principal, id, taskID string, isCompleted bool) (*models.Weeklist, error) {
	now := s.now()

	wl, err := s.find(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	// Marking stays allowed after the 24-hour creation window:
	// checking items off is the point of the list.
	err = s.guardActiveTaskOp(ctx, wl, now, false)
	if err != nil {
		return nil, err
	}

	err = weeklist.MarkTask(wl, taskID, isCompleted, now)
	if err != nil {
		return nil, err
	}

	if weeklist.RefreshCompletion(wl) {
		s.logger.Info().
			Str("weeklist_id", wl.ID).
			Msg("weeklist completed")
	}

	wl.EndTime = weeklist.ComputeWeekEnd(now)
	wl.UpdatedAt = now

	err = weeklist.Validate(wl)
	if err != nil {
		return nil, err
	}

	err = s.update(ctx, wl)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("weeklist_id", wl.ID).
		Str("task_id", taskID).
		Bool("is_completed", isCompleted).
		Msg("marked task")
	return wl, nil
}

func (s *weeklistServiceImpl) EditTask(ctx context.Context, owner Principal, id, taskID, text string) (*models.Weeklist, error) {
	now := s.now()

	wl, err := s.find(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	err = s.guardActiveTaskOp(ctx, wl, now, true)
	if err != nil {
		return nil, err
	}

	err = weeklist.EditTask(wl, taskID, text)
	if err != nil {
		return nil, err
	}

	wl.EndTime = weeklist.ComputeWeekEnd(now)
	wl.UpdatedAt = now

	err = weeklist.Validate(wl)
	if err != nil {
		return nil, err
	}

	err = s.update(ctx, wl)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("weeklist_id", wl.ID).
		Str("task_id", taskID).
		Msg("edited task")
	return wl, nil
}

func (s *weeklistServiceImpl) DeleteTask(ctx context.Context, owner Principal, id, taskID string) (*models.Weeklist, error) {
	now := s.now()

	wl, err := s.find(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	err = s.guardActiveTaskOp(ctx, wl, now, true)
	if err != nil {
		return nil, err
	}

	err = weeklist.RemoveTask(wl, taskID)
	if err != nil {
		return nil, err
	}

	// Removing a task doesn't restart the window.
	wl.UpdatedAt = now

	err = weeklist.Validate(wl)
	if err != nil {
		return nil, err
	}

	err = s.update(ctx, wl)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("weeklist_id", wl.ID).
		Str("task_id", taskID).
		Msg("deleted task")
	return wl, nil
}

func (s *weeklistServiceImpl) ListActive(ctx context.Context, owner Principal) ([]ActiveWeeklist, error) {
	now := s.now()

	weeklists, err := s.weeklists.FindActiveByUserID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	active := make([]ActiveWeeklist, 0, len(weeklists))
	for _, wl := range weeklists {
		if weeklist.Expire(wl, now) {
			s.persistExpiry(ctx, wl)
			continue
		}
		active = append(active, ActiveWeeklist{
			Weeklist: wl,
			TimeLeft: weeklist.Remaining(wl.EndTime, now),
		})
	}

	if len(active) == 0 {
		return nil, ErrNoActiveWeeklists
	}

	s.logger.Debug().
		Str("user_id", owner.ID).
		Int("count", len(active)).
		Msg("listed active weeklists")
	return active, nil
}

func (s *weeklistServiceImpl) find(ctx context.Context, owner Principal, id string) (*models.Weeklist, error) {
	wl, err := s.weeklists.FindByID(ctx, id, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn().
				Str("weeklist_id", id).
				Str("user_id", owner.ID).
				Msg("weeklist not found")
			return nil, ErrWeeklistNotFound
		}
		return nil, err
	}
	return wl, nil
}

// guardActiveTaskOp runs the shared guard chain of every task
// operation: the weeklist must still be active, a stale one is
// flipped to inactive and persisted before the rejection, and
// structural task changes must happen within the creation window.
func (s *weeklistServiceImpl) guardActiveTaskOp(ctx context.Context, wl *models.Weeklist, now time.Time, checkWindow bool) error {
	err := weeklist.GuardActive(wl)
	if err != nil {
		return err
	}

	if weeklist.Expire(wl, now) {
		s.persistExpiry(ctx, wl)
		return weeklist.ErrNotActive
	}

	if checkWindow {
		err = weeklist.GuardEditWindow(wl, now)
		if err != nil {
			return err
		}
	}
	return nil
}

// persistExpiry saves a lazily observed expiry flip. The flip is
// best-effort: a failed save is logged and the in-memory state wins
// for the rest of the request.
func (s *weeklistServiceImpl) persistExpiry(ctx context.Context, wl *models.Weeklist) {
	wl.UpdatedAt = s.now()

	err := s.weeklists.Update(ctx, wl)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("weeklist_id", wl.ID).
			Msg("failed to persist expired weeklist")
		return
	}
	s.logger.Info().
		Str("weeklist_id", wl.ID).
		Msg("weeklist expired")
}

func (s *weeklistServiceImpl) update(ctx context.Context, wl *models.Weeklist) error {
	err := s.weeklists.Update(ctx, wl)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWeeklistNotFound
		}
		return err
	}
	return nil
}
