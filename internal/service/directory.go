package service

import (
	"context"
	"fmt"

	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"go.uber.org/zap"
)

// DirectoryRepositoryInterface defines the read access the directory needs
type DirectoryRepositoryInterface interface {
	User(id int) (model.User, bool)
	Doctors() []model.Doctor
	Doctor(id int) (model.Doctor, bool)
	Patients() []model.Patient
	Patient(id int) (model.Patient, bool)
	Departments() []model.Department
	Department(id int) (model.Department, bool)
}

// DirectoryService serves users, doctors, patients and departments
type DirectoryService struct {
	repo          DirectoryRepositoryInterface
	currentUserID int
	logger        *zap.Logger
}

// NewDirectoryService creates a new DirectoryService. currentUserID names the
// user reported as signed in.
func NewDirectoryService(repo DirectoryRepositoryInterface, currentUserID int, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{
		repo:          repo,
		currentUserID: currentUserID,
		logger:        logger,
	}
}

// CurrentUser returns the signed-in user without its password
func (s *DirectoryService) CurrentUser(ctx context.Context) (model.User, error) {
	user, ok := s.repo.User(s.currentUserID)
	if !ok {
		s.logger.Warn("current user not found", zap.Int("user_id", s.currentUserID))
		return model.User{}, fmt.Errorf("%w: user %d", ErrNotFound, s.currentUserID)
	}
	return user.Public(), nil
}

func (s *DirectoryService) ListDoctors(ctx context.Context) []model.Doctor {
	return s.repo.Doctors()
}

func (s *DirectoryService) GetDoctor(ctx context.Context, id int) (model.Doctor, error) {
	doctor, ok := s.repo.Doctor(id)
	if !ok {
		return model.Doctor{}, fmt.Errorf("%w: doctor %d", ErrNotFound, id)
	}
	return doctor, nil
}

func (s *DirectoryService) ListPatients(ctx context.Context) []model.Patient {
	return s.repo.Patients()
}

func (s *DirectoryService) GetPatient(ctx context.Context, id int) (model.Patient, error) {
	patient, ok := s.repo.Patient(id)
	if !ok {
		return model.Patient{}, fmt.Errorf("%w: patient %d", ErrNotFound, id)
	}
	return patient, nil
}

func (s *DirectoryService) ListDepartments(ctx context.Context) []model.Department {
	return s.repo.Departments()
}

func (s *DirectoryService) GetDepartment(ctx context.Context, id int) (model.Department, error) {
	department, ok := s.repo.Department(id)
	if !ok {
		return model.Department{}, fmt.Errorf("%w: department %d", ErrNotFound, id)
	}
	return department, nil
}
