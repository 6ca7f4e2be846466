package tenant

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go-hrms/internal/shared/apperror"
	tenanterrors "go-hrms/internal/tenant/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type memRegistry struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*Tenant
	createErr error
}

func newMemRegistry() *memRegistry {
	return &memRegistry{rows: make(map[uuid.UUID]*Tenant)}
}

func (m *memRegistry) WithTx(*gorm.DB) Repository { return m }

func (m *memRegistry) Create(_ context.Context, t *Tenant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	cp := *t
	m.rows[t.ID] = &cp
	return nil
}

func (m *memRegistry) FindByIdentifier(_ context.Context, identifier string) (*Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.rows {
		if t.ID.String() == identifier || t.Code == identifier {
			cp := *t
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memRegistry) FindAll(_ context.Context, status Status) ([]Tenant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Tenant
	for _, t := range m.rows {
		if status == "" || t.Status == status {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memRegistry) UpdateStatus(_ context.Context, id string, status Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.rows {
		if t.ID.String() == id {
			t.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memRegistry) UpdateSettings(_ context.Context, id string, settings datatypes.JSONMap, features []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.rows {
		if t.ID.String() == id {
			if settings != nil {
				t.Settings = settings
			}
			if features != nil {
				t.Features = features
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memRegistry) status(id string) Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[uuid.MustParse(id)].Status
}

type fakeProvisioner struct {
	created []string
	err     error
}

func (p *fakeProvisioner) CreateDatabase(_ context.Context, dbName string) error {
	p.created = append(p.created, dbName)
	return p.err
}

type tenantHarness struct {
	svc         Service
	registry    *memRegistry
	store       *fakeStore
	router      *Router
	provisioner *fakeProvisioner
}

func newTenantHarness(t *testing.T) *tenantHarness {
	registry := newMemRegistry()
	store := newFakeStore()
	router := NewRouter(registry, store.open(t), nil, RouterConfig{Prefix: "hrms", Strict: true})
	provisioner := &fakeProvisioner{}
	return &tenantHarness{
		svc:         NewService(registry, router, provisioner),
		registry:    registry,
		store:       store,
		router:      router,
		provisioner: provisioner,
	}
}

func TestTenantService_Create(t *testing.T) {
	t.Run("provisions database and activates", func(t *testing.T) {
		h := newTenantHarness(t)

		resp, err := h.svc.Create(context.Background(), CreateTenantRequest{
			Code:     "  Acme ",
			Name:     "Acme Corp",
			Features: []string{"attendance", "leave"},
		})

		require.NoError(t, err)
		assert.Equal(t, "acme", resp.Code)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, h.router.DBName(resp.ID), resp.Database)
		assert.Equal(t, []string{resp.Database}, h.provisioner.created)
		assert.Equal(t, 1, h.store.openCount())
		assert.True(t, h.router.Cached(resp.ID))
		assert.Equal(t, StatusActive, h.registry.status(resp.ID))
		assert.Equal(t, map[string]any{}, resp.Settings)
	})

	t.Run("rejects invalid code", func(t *testing.T) {
		h := newTenantHarness(t)

		_, err := h.svc.Create(context.Background(), CreateTenantRequest{Code: "a b", Name: "Bad"})

		assert.ErrorIs(t, err, tenanterrors.ErrInvalidTenantCode)
		assert.Empty(t, h.provisioner.created)
	})

	t.Run("duplicate code maps to conflict", func(t *testing.T) {
		h := newTenantHarness(t)
		h.registry.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_tenant_code"}

		_, err := h.svc.Create(context.Background(), CreateTenantRequest{Code: "acme", Name: "Acme"})

		assert.ErrorIs(t, err, tenanterrors.ErrTenantCodeTaken)
	})

	t.Run("database failure leaves tenant pending", func(t *testing.T) {
		h := newTenantHarness(t)
		h.provisioner.err = errors.New("permission denied to create database")

		_, err := h.svc.Create(context.Background(), CreateTenantRequest{Code: "acme", Name: "Acme"})

		require.Error(t, err)
		rows, _ := h.registry.FindAll(context.Background(), StatusPending)
		assert.Len(t, rows, 1)
		assert.Equal(t, 0, h.store.openCount())
	})
}

func TestTenantService_UpdateStatus(t *testing.T) {
	t.Run("suspending evicts the cached handle", func(t *testing.T) {
		h := newTenantHarness(t)
		created, err := h.svc.Create(context.Background(), CreateTenantRequest{Code: "acme", Name: "Acme"})
		require.NoError(t, err)

		resp, err := h.svc.UpdateStatus(context.Background(), "acme", UpdateStatusRequest{Status: "Suspended"})

		require.NoError(t, err)
		assert.Equal(t, "suspended", resp.Status)
		assert.False(t, h.router.Cached(created.ID))
		assert.NoError(t, h.store.mocks[created.Database].ExpectationsWereMet())

		_, err = h.router.Resolve(context.Background(), "acme")
		assert.True(t, apperror.HasCode(err, apperror.CodeForbidden))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		h := newTenantHarness(t)

		_, err := h.svc.UpdateStatus(context.Background(), "acme", UpdateStatusRequest{Status: "archived"})

		assert.ErrorIs(t, err, tenanterrors.ErrInvalidTenantStatus)
	})

	t.Run("unknown tenant", func(t *testing.T) {
		h := newTenantHarness(t)

		_, err := h.svc.UpdateStatus(context.Background(), "ghost", UpdateStatusRequest{Status: "active"})

		assert.ErrorIs(t, err, tenanterrors.ErrTenantNotFound)
	})
}

func TestTenantService_UpdateSettingsAndList(t *testing.T) {
	h := newTenantHarness(t)
	acme, err := h.svc.Create(context.Background(), CreateTenantRequest{Code: "acme", Name: "Acme"})
	require.NoError(t, err)
	_, err = h.svc.Create(context.Background(), CreateTenantRequest{Code: "globex", Name: "Globex"})
	require.NoError(t, err)
	_, err = h.svc.UpdateStatus(context.Background(), "globex", UpdateStatusRequest{Status: "suspended"})
	require.NoError(t, err)

	resp, err := h.svc.UpdateSettings(context.Background(), acme.ID, UpdateSettingsRequest{
		Settings: map[string]any{"locale": "id-ID"},
		Features: []string{"payroll"},
	})
	require.NoError(t, err)
	assert.Equal(t, "id-ID", resp.Settings["locale"])
	assert.Equal(t, []string{"payroll"}, resp.Features)

	ids, err := h.svc.ListActiveIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{acme.ID}, ids)

	all, err := h.svc.GetAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = h.svc.GetAll(context.Background(), "bogus")
	assert.ErrorIs(t, err, tenanterrors.ErrInvalidTenantStatus)
}
