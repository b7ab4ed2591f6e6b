package rbac

import (
	"sync"

	"github.com/BMarcano/dispatcher/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsForRole(role string) ([]domain.PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	rows     []RolePermissionRow
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService builds the service and loads the policy once.
func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	s := &service{repo: repo, enforcer: enforcer, logger: l}
	if err := s.LoadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.repo.GetRolePermissions()
	if err != nil {
		return err
	}

	s.enforcer.ClearPolicy()
	for _, rp := range rows {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.rows = rows
	s.logger.Info("rbac policy loaded", zap.Int("role_permissions", len(rows)))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsForRole(role string) ([]domain.PermissionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	perms := make([]domain.PermissionResponse, 0)
	for _, rp := range s.rows {
		if rp.Role == role {
			perms = append(perms, domain.PermissionResponse{Resource: rp.Resource, Action: rp.Action})
		}
	}
	return perms, nil
}
