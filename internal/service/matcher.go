package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/domain"
	"github.com/wamique00786/wesalvator/internal/metrics"
)

// Matcher picks who handles a new report: the nearest volunteer within the
// radius, else the first admin or organization, else nobody.
type Matcher struct {
	positions  PositionRepository
	users      UserRepository
	reports    ReportRepository
	notifier   *Notifier
	radiusKm   float64
	activeOnly bool
	logger     *slog.Logger
}

func NewMatcher(
	positions PositionRepository,
	users UserRepository,
	reports ReportRepository,
	notifier *Notifier,
	cfg config.MatcherConfig,
	logger *slog.Logger,
) *Matcher {
	radius := cfg.RadiusKM
	if radius <= 0 {
		radius = 10
	}
	return &Matcher{
		positions:  positions,
		users:      users,
		reports:    reports,
		notifier:   notifier,
		radiusKm:   radius,
		activeOnly: cfg.RestrictToActive,
		logger:     logger,
	}
}

// Match never fails: lookup errors fall through to the next tier.
func (m *Matcher) Match(ctx context.Context, pt domain.Point) domain.MatchOutcome {
	l := m.logger.With(slog.Float64("lat", pt.Lat), slog.Float64("lng", pt.Lng))

	if err := pt.Validate(); err != nil {
		l.Warn("match skipped, bad coordinates", slog.Any("error", err))
		return domain.MatchOutcome{Kind: domain.MatchUnassigned}
	}

	v, err := m.positions.NearestVolunteer(ctx, pt, m.radiusKm, m.activeOnly)
	switch {
	case err != nil:
		l.Warn("volunteer lookup failed, falling back to admin", slog.Any("error", err))
	case v != nil:
		l.Debug("volunteer matched", slog.String("volunteer_id", v.UserID.String()), slog.Float64("distance_km", v.DistanceKM))
		return domain.MatchOutcome{Kind: domain.MatchVolunteer, Assignee: v}
	default:
		l.Info("no volunteer in range",
			slog.Float64("radius_km", m.radiusKm),
			slog.Bool("active_only", m.activeOnly),
		)
	}

	a, err := m.users.FirstFallbackAdmin(ctx)
	switch {
	case err != nil:
		l.Warn("admin lookup failed, report stays unassigned", slog.Any("error", err))
	case a == nil || !a.Role.CanFallback():
		l.Info("no admin available, report stays unassigned")
	default:
		return domain.MatchOutcome{Kind: domain.MatchAdmin, Assignee: a}
	}
	return domain.MatchOutcome{Kind: domain.MatchUnassigned}
}

// Assign matches the report and persists the outcome. Only a volunteer match
// creates a task. Notification failures are logged and ignored.
func (m *Matcher) Assign(ctx context.Context, r *domain.Report, reporter *domain.User) (domain.MatchOutcome, *domain.Task, error) {
	outcome := m.Match(ctx, r.Point)
	l := m.logger.With(slog.String("report_id", r.ID.String()), slog.String("outcome", string(outcome.Kind)))

	var task *domain.Task
	switch outcome.Kind {
	case domain.MatchVolunteer:
		task = &domain.Task{
			Title:       fmt.Sprintf("Rescue: %s priority report", r.Priority),
			Description: r.Description,
		}
		if err := m.reports.AssignToVolunteer(ctx, r.ID, outcome.Assignee.UserID, task); err != nil {
			l.Error("assign to volunteer failed", slog.Any("error", err))
			return domain.MatchOutcome{Kind: domain.MatchUnassigned}, nil, err
		}
	case domain.MatchAdmin:
		if err := m.reports.AssignToAdmin(ctx, r.ID, outcome.Assignee.UserID); err != nil {
			l.Error("assign to admin failed", slog.Any("error", err))
			return domain.MatchOutcome{Kind: domain.MatchUnassigned}, nil, err
		}
	default:
		metrics.MatchOutcomes.WithLabelValues(string(outcome.Kind)).Inc()
		l.Info("report left unassigned")
		return outcome, nil, nil
	}

	metrics.MatchOutcomes.WithLabelValues(string(outcome.Kind)).Inc()
	id := outcome.Assignee.UserID
	r.Status = outcome.Status()
	r.AssigneeID = &id

	kind := domain.NotifyVolunteerAssigned
	if outcome.Kind == domain.MatchAdmin {
		kind = domain.NotifyAdminReview
	}
	if m.notifier != nil {
		_ = m.notifier.Notify(ctx, kind, outcome.Assignee, r, reporter)
	}

	l.Info("report assigned", slog.String("assignee_id", id.String()))
	return outcome, task, nil
}
