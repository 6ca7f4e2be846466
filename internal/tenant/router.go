package tenant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go-hrms/internal/shared/apperror"
	tenanterrors "go-hrms/internal/tenant/errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const DefaultCacheSize = 50

// Resolver is what feature services depend on to reach tenant data.
type Resolver interface {
	DB(ctx context.Context, tenantID string) (*gorm.DB, error)
}

// Lookup finds a registry record by id or code.
type Lookup interface {
	FindByIdentifier(ctx context.Context, identifier string) (*Tenant, error)
}

// Opener connects to one physical tenant database.
type Opener func(ctx context.Context, dbName string) (*gorm.DB, error)

// Registrar binds every tenant model to a freshly opened handle.
type Registrar func(ctx context.Context, db *gorm.DB) error

// MigrateModels returns a Registrar that auto-migrates models.
func MigrateModels(models ...any) Registrar {
	return func(ctx context.Context, db *gorm.DB) error {
		return db.WithContext(ctx).AutoMigrate(models...)
	}
}

type Handle struct {
	TenantID string
	DBName   string
	DB       *gorm.DB
}

type RouterConfig struct {
	Prefix    string
	CacheSize int
	// Strict rejects identifiers missing from the registry. When false the
	// raw identifier is used as the tenant id and a warning is logged.
	Strict bool
	// EvictGrace delays closing an evicted pool so requests still holding
	// its handle can finish. Zero closes it immediately. ClearCache always
	// closes immediately.
	EvictGrace time.Duration
	Now        func() time.Time
}

type cacheEntry struct {
	handle     *Handle
	lastAccess time.Time
}

// Router caches one handle per tenant database. Concurrent misses on the
// same tenant share one open call.
type Router struct {
	lookup   Lookup
	open     Opener
	register Registrar
	cfg      RouterConfig

	mu         sync.Mutex
	entries    map[string]*cacheEntry
	aliases    map[string]string
	registered map[string]struct{}
	sf         singleflight.Group

	logger *zap.Logger
}

func NewRouter(lookup Lookup, open Opener, register Registrar, cfg RouterConfig, logger ...*zap.Logger) *Router {
	l := zap.L().Named("tenant.router")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("tenant.router")
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "hrms"
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if register == nil {
		register = func(context.Context, *gorm.DB) error { return nil }
	}
	return &Router{
		lookup:     lookup,
		open:       open,
		register:   register,
		cfg:        cfg,
		entries:    make(map[string]*cacheEntry),
		aliases:    make(map[string]string),
		registered: make(map[string]struct{}),
		logger:     l,
	}
}

// DBName is the physical database selector for a tenant id.
func (r *Router) DBName(tenantID string) string {
	var b strings.Builder
	b.Grow(len(r.cfg.Prefix) + 1 + len(tenantID))
	b.WriteString(r.cfg.Prefix)
	b.WriteByte('_')
	for _, ch := range strings.ToLower(tenantID) {
		if (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func (r *Router) DB(ctx context.Context, tenantID string) (*gorm.DB, error) {
	h, err := r.Resolve(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return h.DB, nil
}

func (r *Router) Resolve(ctx context.Context, identifier string) (*Handle, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, tenanterrors.ErrTenantRequired
	}

	tenantID, known, err := r.canonicalID(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if h := r.touch(tenantID); h != nil {
		if err := r.ensureRegistered(ctx, h); err != nil {
			return nil, err
		}
		if known {
			r.remember(identifier, tenantID)
		}
		return h, nil
	}

	v, err, shared := r.sf.Do(tenantID, func() (any, error) {
		if h := r.touch(tenantID); h != nil {
			return h, nil
		}
		return r.create(ctx, tenantID)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		r.logger.Debug("tenant handle shared with in-flight resolve", zap.String("tenant_id", tenantID))
	}
	if known {
		r.remember(identifier, tenantID)
	}
	return v.(*Handle), nil
}

// Evict drops one tenant's handle and aliases and closes its pool. Used
// when a tenant is suspended or its registry record changes.
func (r *Router) Evict(tenantID string) {
	r.mu.Lock()
	e, ok := r.entries[tenantID]
	r.removeLocked(tenantID)
	r.mu.Unlock()

	if ok {
		r.closeHandle(e.handle, r.cfg.EvictGrace)
	}
}

// ClearCache drops every handle and registration marker.
func (r *Router) ClearCache() {
	r.mu.Lock()
	old := r.entries
	r.entries = make(map[string]*cacheEntry)
	r.aliases = make(map[string]string)
	r.registered = make(map[string]struct{})
	r.mu.Unlock()

	for _, e := range old {
		r.closeHandle(e.handle, 0)
	}
}

func (r *Router) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Cached reports whether tenantID currently holds a handle.
func (r *Router) Cached(tenantID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[tenantID]
	return ok
}

// canonicalID maps identifier to a tenant id. known is false when the id was
// not confirmed by the registry.
func (r *Router) canonicalID(ctx context.Context, identifier string) (id string, known bool, err error) {
	r.mu.Lock()
	id, ok := r.aliases[identifier]
	r.mu.Unlock()
	if ok {
		return id, true, nil
	}

	if r.lookup == nil {
		return identifier, false, nil
	}

	t, err := r.lookup.FindByIdentifier(ctx, identifier)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Error("tenant registry lookup failed", zap.String("identifier", identifier), zap.Error(err))
			return "", false, err
		}
		if r.cfg.Strict {
			r.logger.Warn("tenant not found", zap.String("identifier", identifier))
			return "", false, tenanterrors.ErrTenantNotFound.WithDetails(map[string]string{"tenant": identifier})
		}
		r.logger.Warn("tenant not found in registry, using raw identifier",
			zap.String("identifier", identifier),
		)
		return identifier, false, nil
	}

	if !t.Status.Serving() {
		r.logger.Warn("tenant not serving",
			zap.String("tenant_id", t.ID.String()),
			zap.String("status", string(t.Status)),
		)
		return "", false, tenanterrors.ErrTenantInactive.WithDetails(map[string]string{"status": string(t.Status)})
	}

	return t.ID.String(), true, nil
}

// remember maps identifier to tenantID while a handle for it is cached, so
// a failed open never leaves an alias that skips the registry status check.
func (r *Router) remember(identifier, tenantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[tenantID]; !ok {
		return
	}
	r.aliases[identifier] = tenantID
	r.aliases[tenantID] = tenantID
}

func (r *Router) touch(tenantID string) *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[tenantID]
	if !ok {
		return nil
	}
	e.lastAccess = r.cfg.Now()
	return e.handle
}

func (r *Router) create(ctx context.Context, tenantID string) (*Handle, error) {
	dbName := r.DBName(tenantID)
	r.logger.Debug("opening tenant database", zap.String("tenant_id", tenantID), zap.String("db", dbName))

	db, err := r.open(ctx, dbName)
	if err != nil {
		r.logger.Error("open tenant database failed",
			zap.String("tenant_id", tenantID),
			zap.String("db", dbName),
			zap.Error(err),
		)
		return nil, apperror.Wrap(err, tenanterrors.ErrTenantUnavailable.Code,
			tenanterrors.ErrTenantUnavailable.Message, tenanterrors.ErrTenantUnavailable.HTTPStatus)
	}

	h := &Handle{TenantID: tenantID, DBName: dbName, DB: db}
	if err := r.registerOnce(ctx, h); err != nil {
		r.closeHandle(h, 0)
		return nil, err
	}

	var evicted *Handle
	r.mu.Lock()
	if len(r.entries) >= r.cfg.CacheSize {
		evicted = r.evictOldestLocked()
	}
	r.entries[tenantID] = &cacheEntry{handle: h, lastAccess: r.cfg.Now()}
	r.mu.Unlock()

	if evicted != nil {
		r.logger.Info("tenant handle evicted", zap.String("tenant_id", evicted.TenantID))
		r.closeHandle(evicted, r.cfg.EvictGrace)
	}

	r.logger.Info("tenant handle created", zap.String("tenant_id", tenantID), zap.String("db", dbName))
	return h, nil
}

func (r *Router) ensureRegistered(ctx context.Context, h *Handle) error {
	r.mu.Lock()
	_, ok := r.registered[h.TenantID]
	r.mu.Unlock()
	if ok {
		return nil
	}
	_, err, _ := r.sf.Do("register:"+h.TenantID, func() (any, error) {
		return nil, r.registerOnce(ctx, h)
	})
	return err
}

func (r *Router) registerOnce(ctx context.Context, h *Handle) error {
	r.mu.Lock()
	_, ok := r.registered[h.TenantID]
	r.mu.Unlock()
	if ok {
		return nil
	}

	if err := r.register(ctx, h.DB); err != nil {
		r.logger.Error("register tenant models failed", zap.String("tenant_id", h.TenantID), zap.Error(err))
		return err
	}

	r.mu.Lock()
	r.registered[h.TenantID] = struct{}{}
	r.mu.Unlock()
	return nil
}

// evictOldestLocked scans all entries for the minimum access time.
func (r *Router) evictOldestLocked() *Handle {
	var (
		oldestID string
		oldest   *cacheEntry
	)
	for id, e := range r.entries {
		if oldest == nil || e.lastAccess.Before(oldest.lastAccess) {
			oldestID, oldest = id, e
		}
	}
	if oldest == nil {
		return nil
	}
	r.removeLocked(oldestID)
	return oldest.handle
}

func (r *Router) removeLocked(tenantID string) {
	delete(r.entries, tenantID)
	delete(r.registered, tenantID)
	for alias, id := range r.aliases {
		if id == tenantID {
			delete(r.aliases, alias)
		}
	}
}

func (r *Router) closeHandle(h *Handle, grace time.Duration) {
	if h == nil || h.DB == nil {
		return
	}
	sqlDB, err := h.DB.DB()
	if err != nil {
		return
	}
	closeFn := func() {
		if err := sqlDB.Close(); err != nil {
			r.logger.Warn("close tenant pool failed", zap.String("tenant_id", h.TenantID), zap.Error(err))
		}
	}
	if grace > 0 {
		time.AfterFunc(grace, closeFn)
		return
	}
	closeFn()
}
