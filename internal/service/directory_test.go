package service

import (
	"context"
	"errors"
	"testing"

	"github.com/AbdelwaliNour/Hospital/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDirectoryService_CurrentUser_StripsPassword(t *testing.T) {
	mockRepo := new(MockDirectoryRepository)
	service := NewDirectoryService(mockRepo, 1, zap.NewNop())

	mockRepo.On("User", 1).Return(model.User{
		ID:       1,
		Username: "admin",
		Password: "$2a$10$hash",
		Name:     "Dr. Zack Williams",
		Role:     "admin",
	}, true)

	user, err := service.CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Empty(t, user.Password)
	mockRepo.AssertExpectations(t)
}

func TestDirectoryService_CurrentUser_Missing(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	mockRepo := new(MockDirectoryRepository)
	service := NewDirectoryService(mockRepo, 7, zap.New(core))

	mockRepo.On("User", 7).Return(model.User{}, false)

	_, err := service.CurrentUser(context.Background())

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, 1, logs.FilterMessage("current user not found").Len())
}

func TestDirectoryService_Lookups(t *testing.T) {
	mockRepo := new(MockDirectoryRepository)
	service := NewDirectoryService(mockRepo, 1, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Doctor", 1).Return(model.Doctor{ID: 1, Name: "Dr. Wade Warren"}, true)
	mockRepo.On("Doctor", 9).Return(model.Doctor{}, false)
	mockRepo.On("Patient", 2).Return(model.Patient{ID: 2, Name: "Jane Cooper"}, true)
	mockRepo.On("Patient", 9).Return(model.Patient{}, false)
	mockRepo.On("Department", 3).Return(model.Department{ID: 3, Name: "Neurology"}, true)
	mockRepo.On("Department", 9).Return(model.Department{}, false)

	doctor, err := service.GetDoctor(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Wade Warren", doctor.Name)
	_, err = service.GetDoctor(ctx, 9)
	assert.ErrorIs(t, err, ErrNotFound)

	patient, err := service.GetPatient(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Jane Cooper", patient.Name)
	_, err = service.GetPatient(ctx, 9)
	assert.ErrorIs(t, err, ErrNotFound)

	department, err := service.GetDepartment(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Neurology", department.Name)
	_, err = service.GetDepartment(ctx, 9)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestDirectoryService_Lists(t *testing.T) {
	mockRepo := new(MockDirectoryRepository)
	service := NewDirectoryService(mockRepo, 1, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Doctors").Return([]model.Doctor{{ID: 1}, {ID: 2}})
	mockRepo.On("Patients").Return([]model.Patient{{ID: 1}})
	mockRepo.On("Departments").Return([]model.Department{})

	assert.Len(t, service.ListDoctors(ctx), 2)
	assert.Len(t, service.ListPatients(ctx), 1)
	assert.Empty(t, service.ListDepartments(ctx))
	mockRepo.AssertExpectations(t)
}
