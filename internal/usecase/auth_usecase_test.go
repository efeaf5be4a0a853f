package usecase

import (
	"context"
	"testing"
	"time"

	"hospital-management-system/config"
	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
	"hospital-management-system/pkg/token"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newTestTokenService() *token.Service {
	return token.NewService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: time.Hour,
	})
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func duplicateEmailError() error {
	return &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "users_email_key",
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	tests := []struct {
		name          string
		req           *dto.RegisterRequest
		setupMocks    func(*MockUserRepository, *MockDoctorProfileRepository, *MockPatientProfileRepository)
		expectedRole  string
		expectedError error
	}{
		{
			name: "default role is patient",
			req: &dto.RegisterRequest{
				FullName: "Jane Doe",
				Email:    "jane@example.com",
				Password: "password123",
			},
			setupMocks: func(userRepo *MockUserRepository, doctorRepo *MockDoctorProfileRepository, patientRepo *MockPatientProfileRepository) {
				patientRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PatientProfile")).
					Run(func(args mock.Arguments) {
						profile := args.Get(1).(*entity.PatientProfile)
						profile.ID = 1
						profile.User.ID = uuid.New()
					}).Return(nil)
			},
			expectedRole: entity.RolePatient,
		},
		{
			name: "doctor registration creates doctor profile",
			req: &dto.RegisterRequest{
				FullName:  "Dr. Smith",
				Email:     "smith@example.com",
				Password:  "password123",
				Role:      entity.RoleDoctor,
				Specialty: "Cardiology",
			},
			setupMocks: func(userRepo *MockUserRepository, doctorRepo *MockDoctorProfileRepository, patientRepo *MockPatientProfileRepository) {
				doctorRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.DoctorProfile")).
					Run(func(args mock.Arguments) {
						profile := args.Get(1).(*entity.DoctorProfile)
						profile.ID = 7
						profile.User.ID = uuid.New()
					}).Return(nil)
			},
			expectedRole: entity.RoleDoctor,
		},
		{
			name: "admin registration creates credential only",
			req: &dto.RegisterRequest{
				FullName: "Admin",
				Email:    "admin@example.com",
				Password: "password123",
				Role:     entity.RoleAdmin,
			},
			setupMocks: func(userRepo *MockUserRepository, doctorRepo *MockDoctorProfileRepository, patientRepo *MockPatientProfileRepository) {
				userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
					Run(func(args mock.Arguments) {
						user := args.Get(1).(*entity.User)
						user.ID = uuid.New()
					}).Return(nil)
			},
			expectedRole: entity.RoleAdmin,
		},
		{
			name: "duplicate email",
			req: &dto.RegisterRequest{
				FullName: "Jane Doe",
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMocks: func(userRepo *MockUserRepository, doctorRepo *MockDoctorProfileRepository, patientRepo *MockPatientProfileRepository) {
				patientRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PatientProfile")).
					Return(duplicateEmailError())
			},
			expectedError: ErrEmailAlreadyExists,
		},
		{
			name: "unknown role",
			req: &dto.RegisterRequest{
				FullName: "Jane Doe",
				Email:    "jane@example.com",
				Password: "password123",
				Role:     "superuser",
			},
			setupMocks:    func(*MockUserRepository, *MockDoctorProfileRepository, *MockPatientProfileRepository) {},
			expectedError: ErrInvalidRole,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			doctorRepo := new(MockDoctorProfileRepository)
			patientRepo := new(MockPatientProfileRepository)
			auditService := new(MockAuditService)
			auditService.allowAll()
			tokenService := newTestTokenService()
			tt.setupMocks(userRepo, doctorRepo, patientRepo)

			uc := NewAuthUsecase(newTestLogger(), userRepo, doctorRepo, patientRepo, tokenService, auditService)
			result, err := uc.Register(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.expectedRole, result.Role)
				assert.NotEqual(t, uuid.Nil, result.UserID)

				// The role claim in the token must match the stored role
				claims, err := tokenService.Verify(result.Token)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRole, claims.Role)
				assert.Equal(t, result.UserID, claims.UserID)
			}

			userRepo.AssertExpectations(t)
			doctorRepo.AssertExpectations(t)
			patientRepo.AssertExpectations(t)
		})
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userID := uuid.New()
	storedUser := &entity.User{
		ID:       userID,
		Email:    "jane@example.com",
		Password: string(hashedPassword),
		FullName: "Jane Doe",
		Role:     entity.RolePatient,
	}

	tests := []struct {
		name          string
		req           *dto.LoginRequest
		setupMocks    func(*MockUserRepository)
		expectedError error
	}{
		{
			name: "successful login",
			req:  &dto.LoginRequest{Email: "jane@example.com", Password: "password123"},
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(storedUser, nil)
			},
		},
		{
			name: "unknown email",
			req:  &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"},
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			req:  &dto.LoginRequest{Email: "jane@example.com", Password: "wrong-password"},
			setupMocks: func(userRepo *MockUserRepository) {
				userRepo.On("FindByEmail", mock.Anything, "jane@example.com").Return(storedUser, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			auditService := new(MockAuditService)
			auditService.allowAll()
			tokenService := newTestTokenService()
			tt.setupMocks(userRepo)

			uc := NewAuthUsecase(newTestLogger(), userRepo, new(MockDoctorProfileRepository), new(MockPatientProfileRepository), tokenService, auditService)
			result, err := uc.Login(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, userID, result.UserID)
				assert.Equal(t, entity.RolePatient, result.Role)

				claims, err := tokenService.Verify(result.Token)
				assert.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, entity.RolePatient, claims.Role)
			}

			userRepo.AssertExpectations(t)
		})
	}
}
