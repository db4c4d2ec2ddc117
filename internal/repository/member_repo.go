package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// WithTx returns a clone bound to the given transaction handle.
func (r *MemberRepository) WithTx(tx *gorm.DB) *MemberRepository {
	return &MemberRepository{db: tx}
}

type memberModel struct {
	ID                string     `gorm:"column:id;primaryKey"`
	Name              string     `gorm:"column:name"`
	Phone             string     `gorm:"column:phone;index"`
	Email             *string    `gorm:"column:email"`
	Address           *string    `gorm:"column:address"`
	DateOfBirth       *time.Time `gorm:"column:date_of_birth"`
	Gender            *string    `gorm:"column:gender"`
	Status            string     `gorm:"column:status;index"`
	AssignedSlotID    *string    `gorm:"column:assigned_slot_id;index"`
	MedicalConditions *string    `gorm:"column:medical_conditions;type:text"`
	ConsentSigned     bool       `gorm:"column:consent_signed"`
	JoinDate          time.Time  `gorm:"column:join_date"`
	Notes             *string    `gorm:"column:notes;type:text"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (memberModel) TableName() string { return "members" }

func strOrEmpty(s *string) string {
	if s != nil {
		return *s
	}
	return ""
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toDomainMember(m memberModel) *domain.Member {
	return &domain.Member{
		ID:                m.ID,
		Name:              m.Name,
		Phone:             m.Phone,
		Email:             strOrEmpty(m.Email),
		Address:           strOrEmpty(m.Address),
		DateOfBirth:       m.DateOfBirth,
		Gender:            strOrEmpty(m.Gender),
		Status:            domain.MemberStatus(m.Status),
		AssignedSlotID:    strOrEmpty(m.AssignedSlotID),
		MedicalConditions: strOrEmpty(m.MedicalConditions),
		ConsentSigned:     m.ConsentSigned,
		JoinDate:          m.JoinDate,
		Notes:             strOrEmpty(m.Notes),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toMemberModel(d *domain.Member) memberModel {
	return memberModel{
		ID:                d.ID,
		Name:              d.Name,
		Phone:             d.Phone,
		Email:             strOrNil(d.Email),
		Address:           strOrNil(d.Address),
		DateOfBirth:       d.DateOfBirth,
		Gender:            strOrNil(d.Gender),
		Status:            string(d.Status),
		AssignedSlotID:    strOrNil(d.AssignedSlotID),
		MedicalConditions: strOrNil(d.MedicalConditions),
		ConsentSigned:     d.ConsentSigned,
		JoinDate:          d.JoinDate,
		Notes:             strOrNil(d.Notes),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *MemberRepository) Create(ctx context.Context, m *domain.Member) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	row := toMemberModel(m)
	tx := r.db.WithContext(ctx).Create(&row)
	if tx.Error != nil {
		return tx.Error
	}
	*m = *toDomainMember(row)
	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	var row memberModel
	tx := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainMember(row), nil
}

func (r *MemberRepository) GetByPhone(ctx context.Context, phone string) (*domain.Member, error) {
	var row memberModel
	tx := r.db.WithContext(ctx).First(&row, "phone = ?", phone)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainMember(row), nil
}

func (r *MemberRepository) Update(ctx context.Context, m *domain.Member) error {
	row := toMemberModel(m)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *MemberRepository) List(ctx context.Context, status *domain.MemberStatus, limit, offset int) ([]*domain.Member, int64, error) {
	q := r.db.WithContext(ctx).Model(&memberModel{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []memberModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*domain.Member, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainMember(row))
	}
	return out, total, nil
}

func (r *MemberRepository) UpdateStatus(ctx context.Context, id string, status domain.MemberStatus) error {
	return r.db.WithContext(ctx).Model(&memberModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()}).Error
}

func (r *MemberRepository) UpdateAssignedSlot(ctx context.Context, id string, slotID string) error {
	return r.db.WithContext(ctx).Model(&memberModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"assigned_slot_id": strOrNil(slotID), "updated_at": time.Now()}).Error
}
