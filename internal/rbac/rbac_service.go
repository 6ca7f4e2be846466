package rbac

import (
	"sync"

	"go-hrms/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadDefaultPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsFor(role domain.Role) ([]Permission, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadDefaultPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	for _, pair := range roleInheritance {
		if _, err := s.enforcer.AddGroupingPolicy(string(pair[0]), string(pair[1])); err != nil {
			return err
		}
	}

	count := 0
	for role, perms := range defaultPolicy {
		for _, p := range perms {
			if _, err := s.enforcer.AddPolicy(string(role), p.Resource, p.Action); err != nil {
				return err
			}
			count++
		}
	}
	s.logger.Info("rbac default policy loaded", zap.Int("policies", count))
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	role := string(domain.ParseRole(req.Role))
	allowed, err := s.enforcer.Enforce(role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) PermissionsFor(role domain.Role) ([]Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.enforcer.GetImplicitPermissionsForUser(string(role))
	if err != nil {
		return nil, err
	}
	perms := make([]Permission, 0, len(rows))
	seen := make(map[Permission]struct{}, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		p := Permission{Resource: row[1], Action: row[2]}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		perms = append(perms, p)
	}
	return perms, nil
}
