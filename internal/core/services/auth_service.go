package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/apperrors"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	portsrepo "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/repositories"
	portssvc "github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/ports/services"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/dto"
	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/utils"
)

const tokenIssuer = "rmb-backend"

type authService struct {
	BaseService
	operatorRepo portsrepo.OperatorRepositoryFacade
	jwtSecret    string
	jwtExpiry    time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(operatorRepo portsrepo.OperatorRepositoryFacade, jwtSecret string, jwtExpiry time.Duration) portssvc.AuthSvcFacade {
	return &authService{operatorRepo: operatorRepo, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the operator's credentials and issues a signed bearer
// token. Unknown usernames and wrong passwords return the same error so
// the response does not leak which usernames exist.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	operator, err := s.operatorRepo.FindOperatorByUsername(ctx, req.Username)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, operator.PasswordHash) {
		s.LogWarn(ctx, "Login failed", slog.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrForbidden)
	}

	token, err := utils.GenerateJWT(operator.OperatorID, s.jwtSecret, s.jwtExpiry, tokenIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return nil, fmt.Errorf("%w: failed to sign token", apperrors.ErrInternal)
	}

	s.LogInfo(ctx, "Operator logged in", slog.String("operator_id", operator.OperatorID))
	return &dto.LoginResponse{Token: token, OperatorID: operator.OperatorID, Name: operator.Name}, nil
}

// CreateOperator registers a new back-office operator.
func (s *authService) CreateOperator(ctx context.Context, req dto.CreateOperatorRequest, creatorID string) (*domain.Operator, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password", apperrors.ErrInternal)
	}

	now := s.clock()
	operator := domain.Operator{
		OperatorID:   uuid.NewString(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}
	if err := s.operatorRepo.SaveOperator(ctx, operator); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Operator created", slog.String("operator_id", operator.OperatorID))
	return &operator, nil
}
