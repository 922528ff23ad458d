package user

import (
	"context"
	"errors"
	"time"

	"academiasport/internal/audit"
	"academiasport/internal/auth"
	"academiasport/internal/logger"
	"academiasport/internal/metrics"
	"academiasport/internal/plan"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidPlan        = errors.New("unknown plan")
)

const dateLayout = "2006-01-02"

// Notifier delivers member-facing messages. Failures never fail the caller.
type Notifier interface {
	SendWelcome(ctx context.Context, email, name, planName string) error
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest, userAgent, ip string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*User, error)
	IsAdmin(ctx context.Context, id string) (bool, error)
	EnsureAdmin(ctx context.Context, email, password string) (*User, error)
}

type service struct {
	repo     Repository
	plans    plan.Service
	audit    audit.Service
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, plans plan.Service, audit audit.Service, notifier Notifier) Service {
	return &service{
		repo:     repo,
		plans:    plans,
		audit:    audit,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	planID := req.PlanID
	if planID == "" {
		planID = plan.DefaultPlanID
	}

	p, err := s.lookupPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, User{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  hash,
		Phone:         req.Phone,
		BirthDate:     req.BirthDate,
		MemberSince:   s.now().Format(dateLayout),
		CurrentWeight: req.CurrentWeight,
		TargetWeight:  req.TargetWeight,
		PrimaryGoal:   req.PrimaryGoal,
		PlanID:        planID,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordRegistration(planID)
	if s.notifier != nil {
		if err := s.notifier.SendWelcome(ctx, u.Email, u.Name, p.Name); err != nil {
			logger.WithError(err).Warn("welcome email not queued", "user_id", u.ID)
		}
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest, userAgent, ip string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	success := u != nil && auth.CheckPassword(u.PasswordHash, req.Password)

	if _, err := s.audit.RecordLogin(ctx, req.Email, success, userAgent, ip); err != nil {
		logger.WithError(err).Error("record login attempt", "email", req.Email)
	}
	metrics.RecordLoginAttempt(success)

	if !success {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*User, error) {
	if req.PlanID != nil {
		if _, err := s.lookupPlan(ctx, *req.PlanID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, req)
}

func (s *service) IsAdmin(ctx context.Context, id string) (bool, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return u.IsAdmin, nil
}

// EnsureAdmin creates the administrator account, or promotes the user that
// already holds the email. An existing password is left unchanged.
func (s *service) EnsureAdmin(ctx context.Context, email, password string) (*User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		if existing.IsAdmin {
			return existing, nil
		}
		logger.Warn("promoting existing user to administrator", "user_id", existing.ID, "email", email)
		return s.repo.Promote(ctx, existing.ID)
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		MemberSince:  s.now().Format(dateLayout),
		PlanID:       "vip",
		IsAdmin:      true,
	})
}

func (s *service) lookupPlan(ctx context.Context, id string) (*plan.Plan, error) {
	p, err := s.plans.Get(ctx, id)
	if errors.Is(err, plan.ErrPlanNotFound) {
		return nil, ErrInvalidPlan
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
