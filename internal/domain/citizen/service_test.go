package citizen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecitoyen/internal/utils/logger"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Citizen, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Citizen), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int64) (Citizen, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Citizen), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, req CreateRequest) (Citizen, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(Citizen), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, c Citizen) (Citizen, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(Citizen), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       CreateRequest
		setupMock func(*MockRepository)
		wantErr   error
	}{
		{
			name: "successful creation",
			req:  CreateRequest{Name: " Jean Kabila ", Email: "jean@example.cd"},
			setupMock: func(m *MockRepository) {
				m.On("Create", mock.Anything, CreateRequest{Name: "Jean Kabila", Email: "jean@example.cd"}).
					Return(Citizen{ID: 1, Name: "Jean Kabila", Email: "jean@example.cd"}, nil)
			},
		},
		{
			name:      "empty name",
			req:       CreateRequest{Name: "  ", Email: "jean@example.cd"},
			setupMock: func(m *MockRepository) {},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "bad email",
			req:       CreateRequest{Name: "Jean", Email: "jean"},
			setupMock: func(m *MockRepository) {},
			wantErr:   ErrInvalidInput,
		},
		{
			name: "duplicate email",
			req:  CreateRequest{Name: "Jean", Email: "jean@example.cd"},
			setupMock: func(m *MockRepository) {
				m.On("Create", mock.Anything, mock.Anything).Return(Citizen{}, ErrEmailTaken)
			},
			wantErr: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setupMock(repo)
			svc := NewService(repo, logger.Discard())

			c, err := svc.Create(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), c.ID)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Update(t *testing.T) {
	repo := new(MockRepository)
	current := Citizen{ID: 7, Name: "Marie", Email: "marie@example.cd", Phone: "+243 1"}
	phone := "+243 2"
	repo.On("Get", mock.Anything, int64(7)).Return(current, nil)
	repo.On("Update", mock.Anything, Citizen{ID: 7, Name: "Marie", Email: "marie@example.cd", Phone: phone}).
		Return(Citizen{ID: 7, Name: "Marie", Email: "marie@example.cd", Phone: phone}, nil)

	svc := NewService(repo, logger.Discard())
	got, err := svc.Update(context.Background(), 7, UpdateRequest{Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, phone, got.Phone)
	repo.AssertExpectations(t)
}

func TestService_UpdateNotFound(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Get", mock.Anything, int64(9)).Return(Citizen{}, ErrNotFound)

	svc := NewService(repo, logger.Discard())
	_, err := svc.Update(context.Background(), 9, UpdateRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
