package usecase

import (
	"context"
	"errors"
	"strings"

	"hospital-management-system/internal/delivery/dto"
	"hospital-management-system/internal/domain/entity"
	"hospital-management-system/internal/domain/repository"
	"hospital-management-system/internal/service"
	"hospital-management-system/pkg/token"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authUsecase struct {
	log                *logrus.Logger
	userRepo           repository.UserRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	tokenService       *token.Service
	auditService       service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	tokenService *token.Service,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:                log,
		userRepo:           userRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		tokenService:       tokenService,
		auditService:       auditService,
	}
}

// Register creates a credential and, for doctors and patients, the matching
// role profile. Credential and profile share one insert (the repository wraps
// the association in a transaction), so a failed profile insert cannot leave
// an orphaned credential behind. Admins have no profile.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = entity.RolePatient
	}
	if !entity.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := entity.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		FullName: req.FullName,
		Role:     role,
	}

	switch role {
	case entity.RoleDoctor:
		profile := &entity.DoctorProfile{
			Specialty:     req.Specialty,
			Age:           req.Age,
			Gender:        req.Gender,
			ContactNumber: req.ContactNumber,
			Bio:           req.Bio,
			User:          user,
		}
		if err := u.doctorProfileRepo.Create(ctx, profile); err != nil {
			if isDuplicateKeyError(err, "email") {
				return nil, ErrEmailAlreadyExists
			}
			u.log.Warnf("Failed to register doctor: %+v", err)
			return nil, err
		}
		user = profile.User
	case entity.RolePatient:
		profile := &entity.PatientProfile{
			BloodGroup:    req.BloodGroup,
			Address:       req.Address,
			ContactNumber: req.ContactNumber,
			User:          user,
		}
		if err := u.patientProfileRepo.Create(ctx, profile); err != nil {
			if isDuplicateKeyError(err, "email") {
				return nil, ErrEmailAlreadyExists
			}
			u.log.Warnf("Failed to register patient: %+v", err)
			return nil, err
		}
		user = profile.User
	default: // admin
		if err := u.userRepo.Create(ctx, &user); err != nil {
			if isDuplicateKeyError(err, "email") {
				return nil, ErrEmailAlreadyExists
			}
			u.log.Warnf("Failed to register admin: %+v", err)
			return nil, err
		}
	}

	signed, err := u.tokenService.Issue(user.ID, user.Email, role)
	if err != nil {
		u.log.Warnf("Failed to issue session token: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, &user.ID, entity.AuditActionUserRegister, entity.JSON{
		"email": user.Email,
		"role":  role,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.AuthResponse{
		Token:  signed,
		UserID: user.ID,
		Role:   role,
	}, nil
}

// Login verifies the credential and issues a session token. A missing email
// and a wrong password produce the same error, so callers cannot enumerate
// registered accounts.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	signed, err := u.tokenService.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		u.log.Warnf("Failed to issue session token: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, &user.ID, entity.AuditActionUserLogin, entity.JSON{
		"email": user.Email,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.AuthResponse{
		Token:  signed,
		UserID: user.ID,
		Role:   user.Role,
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
