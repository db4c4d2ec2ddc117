package member

import (
	"context"
	"fmt"
	"time"

	"yogastudio/internal/domain"
	"yogastudio/internal/pkg/dateutil"
)

var validStatuses = map[domain.MemberStatus]bool{
	domain.MemberActive:   true,
	domain.MemberInactive: true,
	domain.MemberTrial:    true,
	domain.MemberExpired:  true,
	domain.MemberPending:  true,
}

type Service struct {
	members MemberRepository
	now     func() time.Time
}

func NewService(members MemberRepository) *Service {
	return &Service{members: members, now: time.Now}
}

func (s *Service) Create(ctx context.Context, req CreateMemberRequest) (*domain.Member, error) {
	existing, err := s.members.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneExists
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		d, err := dateutil.ParseDate(req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		dob = &d
	}

	now := s.now()
	m := &domain.Member{
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Address:           req.Address,
		DateOfBirth:       dob,
		Gender:            req.Gender,
		Status:            domain.MemberPending,
		MedicalConditions: req.MedicalConditions,
		ConsentSigned:     req.ConsentSigned,
		JoinDate:          dateutil.Truncate(now.UTC()),
		Notes:             req.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	m, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMemberNotFound
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateMemberRequest) (*domain.Member, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" && req.Phone != m.Phone {
		existing, err := s.members.GetByPhone(ctx, req.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != m.ID {
			return nil, ErrPhoneExists
		}
		m.Phone = req.Phone
	}
	if req.Name != "" {
		m.Name = req.Name
	}
	if req.Email != "" {
		m.Email = req.Email
	}
	if req.Address != "" {
		m.Address = req.Address
	}
	if req.DateOfBirth != "" {
		d, err := dateutil.ParseDate(req.DateOfBirth)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		m.DateOfBirth = &d
	}
	if req.Gender != "" {
		m.Gender = req.Gender
	}
	if req.MedicalConditions != "" {
		m.MedicalConditions = req.MedicalConditions
	}
	if req.ConsentSigned != nil {
		m.ConsentSigned = *req.ConsentSigned
	}
	if req.Notes != "" {
		m.Notes = req.Notes
	}
	m.UpdatedAt = s.now()

	if err := s.members.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context, status *domain.MemberStatus, limit, offset int) ([]*domain.Member, int64, error) {
	return s.members.List(ctx, status, limit, offset)
}

// SetStatus drives the member lifecycle; members are never deleted.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.MemberStatus) (*domain.Member, error) {
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.members.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	m.Status = status
	return m, nil
}

// Deactivate is the soft-delete used by the DELETE endpoint.
func (s *Service) Deactivate(ctx context.Context, id string) (*domain.Member, error) {
	return s.SetStatus(ctx, id, domain.MemberInactive)
}
