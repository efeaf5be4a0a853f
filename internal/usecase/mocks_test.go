package usecase

import (
	"context"

	"hospital-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockDoctorProfileRepository is a mock implementation of
// repository.DoctorProfileRepository.
type MockDoctorProfileRepository struct {
	mock.Mock
}

func (m *MockDoctorProfileRepository) Create(ctx context.Context, profile *entity.DoctorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) FindByID(ctx context.Context, id int) (*entity.DoctorProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.DoctorProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) Update(ctx context.Context, profile *entity.DoctorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) UpdateWithUser(ctx context.Context, profile *entity.DoctorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) DeleteCascade(ctx context.Context, profile *entity.DoctorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockPatientProfileRepository is a mock implementation of
// repository.PatientProfileRepository.
type MockPatientProfileRepository struct {
	mock.Mock
}

func (m *MockPatientProfileRepository) Create(ctx context.Context, profile *entity.PatientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockPatientProfileRepository) FindByID(ctx context.Context, id int) (*entity.PatientProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) FindAll(ctx context.Context) ([]entity.PatientProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) FindByDoctorID(ctx context.Context, doctorID int) ([]entity.PatientProfile, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) Update(ctx context.Context, profile *entity.PatientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockPatientProfileRepository) UpdateWithUser(ctx context.Context, profile *entity.PatientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockPatientProfileRepository) DeleteCascade(ctx context.Context, profile *entity.PatientProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// MockAppointmentRepository is a mock implementation of
// repository.AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id int) (*entity.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID int) ([]entity.Appointment, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID int) ([]entity.Appointment, error) {
	args := m.Called(ctx, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id int, status entity.AppointmentStatus, version int) (int64, error) {
	args := m.Called(ctx, id, status, version)
	return args.Get(0).(int64), args.Error(1)
}

// MockBillRepository is a mock implementation of repository.BillRepository.
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindByPatientID(ctx context.Context, patientID int) ([]entity.Bill, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Bill), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of
// repository.AuditLogRepository.
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]entity.AuditLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuditLog), args.Error(1)
}

// MockAuditService is a mock implementation of service.AuditService. Tests
// that do not assert on audit behavior register permissive expectations via
// allowAll.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	args := m.Called(ctx, userID, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(ctx, userID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	args := m.Called(ctx, userID, action, entityName, entityID, oldValue)
	return args.Error(0)
}

func (m *MockAuditService) LogEvent(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) error {
	args := m.Called(ctx, userID, action, metadata)
	return args.Error(0)
}

func (m *MockAuditService) allowAll() {
	m.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("LogDelete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}
