package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

type mockJobStore struct {
	mock.Mock
}

func (m *mockJobStore) ListAll(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *mockJobStore) ListAvailable(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *mockJobStore) ListByOwner(ctx context.Context, email string) ([]models.Job, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *mockJobStore) GetByID(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *mockJobStore) Create(ctx context.Context, req *dtos.JobCreationRequest) (*dtos.InsertResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dtos.InsertResult), args.Error(1)
}

func (m *mockJobStore) Upsert(ctx context.Context, id string, req *dtos.JobUpdateRequest) (*dtos.UpdateResult, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dtos.UpdateResult), args.Error(1)
}

func (m *mockJobStore) IncrementApplicants(ctx context.Context, id string) (*dtos.UpdateResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dtos.UpdateResult), args.Error(1)
}

func (m *mockJobStore) Delete(ctx context.Context, id string) (*dtos.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dtos.DeleteResult), args.Error(1)
}

type mockApplicationStore struct {
	mock.Mock
}

func (m *mockApplicationStore) ListByCandidate(ctx context.Context, email string) ([]models.Application, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *mockApplicationStore) ListForJob(ctx context.Context, jobID, ownerEmail string) ([]models.Application, error) {
	args := m.Called(ctx, jobID, ownerEmail)
	return args.Get(0).([]models.Application), args.Error(1)
}

func (m *mockApplicationStore) Submit(ctx context.Context, req *dtos.ApplicationRequest) (*dtos.InsertResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dtos.InsertResult), args.Error(1)
}

func (m *mockApplicationStore) UpdateStatus(ctx context.Context, id, status string) (*dtos.UpdateResult, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dtos.UpdateResult), args.Error(1)
}

func (m *mockApplicationStore) Delete(ctx context.Context, id string) (*dtos.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dtos.DeleteResult), args.Error(1)
}
