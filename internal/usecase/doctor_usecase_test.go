package usecase

import (
	"context"
	"testing"

	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestDoctorUsecase_CreateDoctor(t *testing.T) {
	adminCtx := contextWithIdentity(uuid.New(), entity.RoleAdmin)

	tests := []struct {
		name          string
		req           *dto.CreateDoctorRequest
		setupMocks    func(*MockDoctorProfileRepository)
		expectedError error
	}{
		{
			name: "successful creation",
			req: &dto.CreateDoctorRequest{
				FullName:  "Dr. Smith",
				Email:     "smith@example.com",
				Password:  "password123",
				Specialty: "Cardiology",
			},
			setupMocks: func(doctorRepo *MockDoctorProfileRepository) {
				doctorRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
					if p.User.Role != entity.RoleDoctor || p.User.Email != "smith@example.com" {
						return false
					}
					// Stored credential must never hold the plaintext password
					return bcrypt.CompareHashAndPassword([]byte(p.User.Password), []byte("password123")) == nil
				})).Run(func(args mock.Arguments) {
					profile := args.Get(1).(*entity.DoctorProfile)
					profile.ID = 7
					profile.User.ID = uuid.New()
				}).Return(nil)
			},
		},
		{
			name: "duplicate email",
			req: &dto.CreateDoctorRequest{
				FullName: "Dr. Smith",
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMocks: func(doctorRepo *MockDoctorProfileRepository) {
				doctorRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.DoctorProfile")).
					Return(duplicateEmailError())
			},
			expectedError: ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctorRepo := new(MockDoctorProfileRepository)
			auditService := new(MockAuditService)
			auditService.allowAll()
			tt.setupMocks(doctorRepo)

			uc := NewDoctorUsecase(newTestLogger(), doctorRepo, auditService)
			result, err := uc.CreateDoctor(adminCtx, tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, 7, result.ID)
				assert.Equal(t, "smith@example.com", result.Email)
			}

			doctorRepo.AssertExpectations(t)
		})
	}
}

func TestDoctorUsecase_GetDoctor(t *testing.T) {
	doctorRepo := new(MockDoctorProfileRepository)
	auditService := new(MockAuditService)
	auditService.allowAll()

	doctorRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	uc := NewDoctorUsecase(newTestLogger(), doctorRepo, auditService)
	result, err := uc.GetDoctor(context.Background(), 99)

	assert.ErrorIs(t, err, ErrDoctorNotFound)
	assert.Nil(t, result)
	doctorRepo.AssertExpectations(t)
}

func TestDoctorUsecase_ListDoctors(t *testing.T) {
	doctorRepo := new(MockDoctorProfileRepository)
	auditService := new(MockAuditService)
	auditService.allowAll()

	filter := &entity.DoctorFilter{Specialty: "cardio"}
	doctorRepo.On("FindAll", mock.Anything, filter).Return([]entity.DoctorProfile{
		{ID: 7, Specialty: "Cardiology", User: entity.User{FullName: "Dr. Smith", Email: "smith@example.com"}},
	}, nil)

	uc := NewDoctorUsecase(newTestLogger(), doctorRepo, auditService)
	result, err := uc.ListDoctors(context.Background(), filter)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "Cardiology", result.Doctors[0].Specialty)
	doctorRepo.AssertExpectations(t)
}

func TestDoctorUsecase_UpdateDoctor(t *testing.T) {
	adminCtx := contextWithIdentity(uuid.New(), entity.RoleAdmin)

	existing := func() *entity.DoctorProfile {
		return &entity.DoctorProfile{
			ID:        7,
			Specialty: "Cardiology",
			User:      entity.User{ID: uuid.New(), FullName: "Dr. Smith", Email: "smith@example.com", Role: entity.RoleDoctor},
		}
	}

	t.Run("profile and credential updated together", func(t *testing.T) {
		age := 45
		doctorRepo := new(MockDoctorProfileRepository)
		auditService := new(MockAuditService)
		auditService.allowAll()

		doctorRepo.On("FindByID", mock.Anything, 7).Return(existing(), nil)
		doctorRepo.On("UpdateWithUser", mock.Anything, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
			return p.Specialty == "Neurology" && p.Age != nil && *p.Age == 45 && p.User.FullName == "Dr. J. Smith"
		})).Return(nil)

		uc := NewDoctorUsecase(newTestLogger(), doctorRepo, auditService)
		result, err := uc.UpdateDoctor(adminCtx, 7, &dto.UpdateDoctorRequest{
			FullName:  "Dr. J. Smith",
			Specialty: "Neurology",
			Age:       &age,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Neurology", result.Specialty)
		assert.Equal(t, "Dr. J. Smith", result.FullName)
		doctorRepo.AssertExpectations(t)
		doctorRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("profile-only update skips the credential", func(t *testing.T) {
		doctorRepo := new(MockDoctorProfileRepository)
		auditService := new(MockAuditService)
		auditService.allowAll()

		doctorRepo.On("FindByID", mock.Anything, 7).Return(existing(), nil)
		doctorRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
			return p.Bio == "Consults Mondays only"
		})).Return(nil)

		uc := NewDoctorUsecase(newTestLogger(), doctorRepo, auditService)
		_, err := uc.UpdateDoctor(adminCtx, 7, &dto.UpdateDoctorRequest{Bio: "Consults Mondays only"})

		assert.NoError(t, err)
		doctorRepo.AssertExpectations(t)
		doctorRepo.AssertNotCalled(t, "UpdateWithUser", mock.Anything, mock.Anything)
	})

	t.Run("email conflict leaves no partial write", func(t *testing.T) {
		doctorRepo := new(MockDoctorProfileRepository)
		auditService := new(MockAuditService)
		auditService.allowAll()

		doctorRepo.On("FindByID", mock.Anything, 7).Return(existing(), nil)
		doctorRepo.On("UpdateWithUser", mock.Anything, mock.AnythingOfType("*entity.DoctorProfile")).
			Return(duplicateEmailError())

		uc := NewDoctorUsecase(newTestLogger(), doctorRepo, auditService)
		result, err := uc.UpdateDoctor(adminCtx, 7, &dto.UpdateDoctorRequest{
			Email:     "taken@example.com",
			Specialty: "Neurology",
		})

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.Nil(t, result)
		// The profile change rides the same rejected call, never a
		// separate successful one.
		doctorRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDoctorUsecase_DeleteDoctor(t *testing.T) {
	adminCtx := contextWithIdentity(uuid.New(), entity.RoleAdmin)

	t.Run("cascade delete", func(t *testing.T) {
		doctorRepo := new(MockDoctorProfileRepository)
		auditService := new(MockAuditService)
		auditService.allowAll()

		profile := &entity.DoctorProfile{ID: 7, User: entity.User{ID: uuid.New()}}
		doctorRepo.On("FindByID", mock.Anything, 7).Return(profile, nil)
		doctorRepo.On("DeleteCascade", mock.Anything, profile).Return(nil)

		uc := NewDoctorUsecase(newTestLogger(), doctorRepo, auditService)
		assert.NoError(t, uc.DeleteDoctor(adminCtx, 7))
		doctorRepo.AssertExpectations(t)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		doctorRepo := new(MockDoctorProfileRepository)
		auditService := new(MockAuditService)
		auditService.allowAll()

		doctorRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

		uc := NewDoctorUsecase(newTestLogger(), doctorRepo, auditService)
		assert.ErrorIs(t, uc.DeleteDoctor(adminCtx, 99), ErrDoctorNotFound)
		doctorRepo.AssertExpectations(t)
	})
}
