package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mooddiary-backend/internal/domain"
)

// UpsertEntry writes the owner's entry for input.DateYmd, replacing the
// content of an existing entry on that day. Entries of anonymous owners are
// stored as temporary. Badge evaluation runs afterwards; its failure is
// logged and does not fail the write.
func (s *Service) UpsertEntry(ctx context.Context, input EntryInput) (*domain.Entry, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	saved, err := s.entries.Upsert(ctx, &domain.Entry{
		OwnerID:     owner,
		DateYmd:     input.DateYmd,
		Title:       input.Title,
		Content:     input.Content,
		Mood:        input.Mood,
		Tags:        input.Tags,
		IsTemporary: owner.IsAnonymous(),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("journal.UpsertEntry: %w", err)
	}

	s.log.InfoContext(ctx, "entry saved",
		slog.String("owner_id", owner.String()),
		slog.Int64("entry_id", saved.ID),
		slog.String("date", saved.DateYmd),
	)

	granted, err := s.badges.EvaluateAndGrant(ctx, owner)
	if err != nil {
		s.log.WarnContext(ctx, "badge evaluation failed",
			slog.String("owner_id", owner.String()),
			slog.String("error", err.Error()),
		)
	} else if len(granted) > 0 {
		s.log.InfoContext(ctx, "badges granted",
			slog.String("owner_id", owner.String()),
			slog.Any("badge_ids", granted),
		)
	}

	return saved, nil
}

// DeleteEntry removes one of the owner's entries together with its analysis.
func (s *Service) DeleteEntry(ctx context.Context, id int64) error {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return err
	}

	if err := s.entries.Delete(ctx, owner, id); err != nil {
		return fmt.Errorf("journal.DeleteEntry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("owner_id", owner.String()),
		slog.Int64("entry_id", id),
	)
	return nil
}

// Entry returns one of the owner's entries.
func (s *Service) Entry(ctx context.Context, id int64) (*domain.Entry, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}

	e, err := s.entries.GetByID(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("journal.Entry: %w", err)
	}
	return e, nil
}

// EntryByDate returns the owner's entry on ymd. Temporary entries are included.
func (s *Service) EntryByDate(ctx context.Context, ymd string) (*domain.Entry, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := domain.ParseDate(ymd); err != nil {
		return nil, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}

	e, err := s.entries.GetByDate(ctx, owner, ymd)
	if err != nil {
		return nil, fmt.Errorf("journal.EntryByDate: %w", err)
	}
	return e, nil
}

// EntriesInRange lists the owner's non-temporary entries dated within
// [startYmd, endYmd], oldest first.
func (s *Service) EntriesInRange(ctx context.Context, startYmd, endYmd string) ([]domain.Entry, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateRange(startYmd, endYmd); err != nil {
		return nil, err
	}

	list, err := s.entries.List(ctx, owner, domain.EntryFilter{From: startYmd, To: endYmd})
	if err != nil {
		return nil, fmt.Errorf("journal.EntriesInRange: %w", err)
	}
	return list, nil
}

// EntriesByMonth lists the owner's non-temporary entries of ym (YYYY-MM).
func (s *Service) EntriesByMonth(ctx context.Context, ym string) ([]domain.Entry, error) {
	owner, err := ownerFrom(ctx)
	if err != nil {
		return nil, err
	}
	from, to, err := monthBounds(ym)
	if err != nil {
		return nil, err
	}

	list, err := s.entries.List(ctx, owner, domain.EntryFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("journal.EntriesByMonth: %w", err)
	}
	return list, nil
}

func validateRange(from, to string) error {
	var errs []domain.FieldError
	if _, err := domain.ParseDate(from); err != nil {
		errs = append(errs, domain.FieldError{Field: "from", Message: "must be YYYY-MM-DD"})
	}
	if _, err := domain.ParseDate(to); err != nil {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) == 0 && from > to {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func monthBounds(ym string) (string, string, error) {
	from, to, err := domain.MonthBounds(ym)
	if err != nil {
		return "", "", domain.NewValidationError("month", "must be YYYY-MM")
	}
	return from, to, nil
}
