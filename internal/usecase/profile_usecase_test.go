package usecase

import (
	"testing"

	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileUsecase_GetOwnProfile(t *testing.T) {
	doctorUserID := uuid.New()
	patientUserID := uuid.New()
	adminUserID := uuid.New()

	tests := []struct {
		name          string
		userID        uuid.UUID
		role          string
		setupMocks    func(*MockDoctorProfileRepository, *MockPatientProfileRepository)
		verify        func(*testing.T, *dto.ProfileResponse)
		expectedError error
	}{
		{
			name:   "doctor sees doctor profile",
			userID: doctorUserID,
			role:   entity.RoleDoctor,
			setupMocks: func(doctorRepo *MockDoctorProfileRepository, patientRepo *MockPatientProfileRepository) {
				doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(&entity.DoctorProfile{
					ID: 7, UserID: doctorUserID, Specialty: "Cardiology",
				}, nil)
			},
			verify: func(t *testing.T, resp *dto.ProfileResponse) {
				assert.Equal(t, entity.RoleDoctor, resp.Role)
				assert.NotNil(t, resp.Doctor)
				assert.Nil(t, resp.Patient)
				assert.Equal(t, "Cardiology", resp.Doctor.Specialty)
			},
		},
		{
			name:   "patient sees patient profile",
			userID: patientUserID,
			role:   entity.RolePatient,
			setupMocks: func(doctorRepo *MockDoctorProfileRepository, patientRepo *MockPatientProfileRepository) {
				patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(&entity.PatientProfile{
					ID: 3, UserID: patientUserID, BloodGroup: "A+",
				}, nil)
			},
			verify: func(t *testing.T, resp *dto.ProfileResponse) {
				assert.Equal(t, entity.RolePatient, resp.Role)
				assert.NotNil(t, resp.Patient)
				assert.Nil(t, resp.Doctor)
			},
		},
		{
			name:       "admin gets bare role",
			userID:     adminUserID,
			role:       entity.RoleAdmin,
			setupMocks: func(*MockDoctorProfileRepository, *MockPatientProfileRepository) {},
			verify: func(t *testing.T, resp *dto.ProfileResponse) {
				assert.Equal(t, entity.RoleAdmin, resp.Role)
				assert.Nil(t, resp.Doctor)
				assert.Nil(t, resp.Patient)
			},
		},
		{
			name:   "doctor credential without profile row",
			userID: doctorUserID,
			role:   entity.RoleDoctor,
			setupMocks: func(doctorRepo *MockDoctorProfileRepository, patientRepo *MockPatientProfileRepository) {
				doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(nil, nil)
			},
			expectedError: ErrDoctorProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doctorRepo := new(MockDoctorProfileRepository)
			patientRepo := new(MockPatientProfileRepository)
			auditService := new(MockAuditService)
			auditService.allowAll()
			tt.setupMocks(doctorRepo, patientRepo)

			uc := NewProfileUsecase(newTestLogger(), doctorRepo, patientRepo, auditService)
			result, err := uc.GetOwnProfile(contextWithIdentity(tt.userID, tt.role))

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				tt.verify(t, result)
			}

			doctorRepo.AssertExpectations(t)
			patientRepo.AssertExpectations(t)
		})
	}
}

func TestProfileUsecase_UpdateOwnProfile(t *testing.T) {
	t.Run("doctor updates own fields only", func(t *testing.T) {
		doctorUserID := uuid.New()
		doctorRepo := new(MockDoctorProfileRepository)
		auditService := new(MockAuditService)
		auditService.allowAll()

		doctorRepo.On("FindByUserID", mock.Anything, doctorUserID).Return(&entity.DoctorProfile{
			ID: 7, UserID: doctorUserID, Specialty: "Cardiology",
		}, nil)
		doctorRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.DoctorProfile) bool {
			return p.Specialty == "Neurology" && p.Bio == "20 years of practice"
		})).Return(nil)

		uc := NewProfileUsecase(newTestLogger(), doctorRepo, new(MockPatientProfileRepository), auditService)
		result, err := uc.UpdateOwnProfile(contextWithIdentity(doctorUserID, entity.RoleDoctor), &dto.UpdateOwnProfileRequest{
			Specialty: "Neurology",
			Bio:       "20 years of practice",
			// Patient fields in the payload are ignored for doctors
			BloodGroup: "O-",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Neurology", result.Doctor.Specialty)
		doctorRepo.AssertExpectations(t)
	})

	t.Run("patient updates own fields only", func(t *testing.T) {
		patientUserID := uuid.New()
		patientRepo := new(MockPatientProfileRepository)
		auditService := new(MockAuditService)
		auditService.allowAll()

		patientRepo.On("FindByUserID", mock.Anything, patientUserID).Return(&entity.PatientProfile{
			ID: 3, UserID: patientUserID, BloodGroup: "A+",
		}, nil)
		patientRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.PatientProfile) bool {
			return p.BloodGroup == "O-" && p.Address == "12 Main St"
		})).Return(nil)

		uc := NewProfileUsecase(newTestLogger(), new(MockDoctorProfileRepository), patientRepo, auditService)
		result, err := uc.UpdateOwnProfile(contextWithIdentity(patientUserID, entity.RolePatient), &dto.UpdateOwnProfileRequest{
			BloodGroup: "O-",
			Address:    "12 Main St",
		})

		assert.NoError(t, err)
		assert.Equal(t, "O-", result.Patient.BloodGroup)
		patientRepo.AssertExpectations(t)
	})

	t.Run("admin is rejected", func(t *testing.T) {
		auditService := new(MockAuditService)
		auditService.allowAll()

		uc := NewProfileUsecase(newTestLogger(), new(MockDoctorProfileRepository), new(MockPatientProfileRepository), auditService)
		result, err := uc.UpdateOwnProfile(contextWithIdentity(uuid.New(), entity.RoleAdmin), &dto.UpdateOwnProfileRequest{
			Address: "12 Main St",
		})

		assert.ErrorIs(t, err, ErrAdminHasNoProfile)
		assert.Nil(t, result)
	})
}
