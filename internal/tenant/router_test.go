package tenant

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-hrms/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeLookup struct {
	mu      sync.Mutex
	tenants map[string]*Tenant
	calls   int
}

func newFakeLookup(tenants ...*Tenant) *fakeLookup {
	l := &fakeLookup{tenants: make(map[string]*Tenant)}
	for _, t := range tenants {
		l.tenants[t.ID.String()] = t
		l.tenants[t.Code] = t
	}
	return l
}

func (l *fakeLookup) FindByIdentifier(_ context.Context, identifier string) (*Tenant, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	t, ok := l.tenants[identifier]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

type fakeStore struct {
	mu     sync.Mutex
	opened []string
	mocks  map[string]sqlmock.Sqlmock
	err    error
	gate   chan struct{}
}

func newFakeStore() *fakeStore {
	return &fakeStore{mocks: make(map[string]sqlmock.Sqlmock)}
}

func (s *fakeStore) open(t *testing.T) Opener {
	return func(_ context.Context, dbName string) (*gorm.DB, error) {
		if s.gate != nil {
			<-s.gate
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		s.opened = append(s.opened, dbName)
		if s.err != nil {
			return nil, s.err
		}

		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		mock.ExpectClose()
		db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err)
		s.mocks[dbName] = mock
		return db, nil
	}
}

func (s *fakeStore) openCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.opened)
}

type countingRegistrar struct {
	calls atomic.Int32
	err   error
}

func (r *countingRegistrar) register(_ context.Context, _ *gorm.DB) error {
	r.calls.Add(1)
	return r.err
}

// tickClock advances one second on every read.
func tickClock() func() time.Time {
	var mu sync.Mutex
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func TestRouter_DBName(t *testing.T) {
	r := NewRouter(nil, nil, nil, RouterConfig{Prefix: "hrms"})

	assert.Equal(t, "hrms_acme_01", r.DBName("Acme-01"))
	assert.Equal(t, "hrms_3f2a_9c", r.DBName("3f2a-9c"))
}

func TestRouter_Resolve(t *testing.T) {
	acme := &Tenant{ID: uuid.New(), Code: "acme", Status: StatusActive}

	t.Run("code resolves to canonical id and registers once", func(t *testing.T) {
		lookup := newFakeLookup(acme)
		store := newFakeStore()
		reg := &countingRegistrar{}
		r := NewRouter(lookup, store.open(t), reg.register, RouterConfig{Strict: true})

		h1, err := r.Resolve(context.Background(), "acme")
		require.NoError(t, err)
		h2, err := r.Resolve(context.Background(), acme.ID.String())
		require.NoError(t, err)
		h3, err := r.Resolve(context.Background(), "acme")
		require.NoError(t, err)

		assert.Equal(t, acme.ID.String(), h1.TenantID)
		assert.Equal(t, r.DBName(acme.ID.String()), h1.DBName)
		assert.Same(t, h1, h2)
		assert.Same(t, h1, h3)
		assert.Equal(t, 1, store.openCount())
		assert.Equal(t, int32(1), reg.calls.Load())
		assert.Equal(t, 1, lookup.calls, "aliases skip the registry after the first lookup")
	})

	t.Run("strict mode rejects unknown tenant", func(t *testing.T) {
		store := newFakeStore()
		r := NewRouter(newFakeLookup(acme), store.open(t), nil, RouterConfig{Strict: true})

		_, err := r.Resolve(context.Background(), "ghost")

		assert.True(t, apperror.HasCode(err, apperror.CodeTenantNotFound))
		assert.Equal(t, 0, store.openCount())
	})

	t.Run("lenient mode falls back to raw identifier", func(t *testing.T) {
		store := newFakeStore()
		r := NewRouter(newFakeLookup(acme), store.open(t), nil, RouterConfig{Strict: false})

		h, err := r.Resolve(context.Background(), "ghost")

		require.NoError(t, err)
		assert.Equal(t, "ghost", h.TenantID)
		assert.Equal(t, "hrms_ghost", h.DBName)
	})

	t.Run("suspended tenant is forbidden", func(t *testing.T) {
		suspended := &Tenant{ID: uuid.New(), Code: "frozen", Status: StatusSuspended}
		store := newFakeStore()
		r := NewRouter(newFakeLookup(suspended), store.open(t), nil, RouterConfig{Strict: true})

		_, err := r.Resolve(context.Background(), "frozen")

		assert.True(t, apperror.HasCode(err, apperror.CodeForbidden))
		assert.Equal(t, 0, store.openCount())
	})

	t.Run("empty identifier", func(t *testing.T) {
		r := NewRouter(nil, newFakeStore().open(t), nil, RouterConfig{})

		_, err := r.Resolve(context.Background(), "  ")

		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})

	t.Run("store error propagates and nothing is cached", func(t *testing.T) {
		store := newFakeStore()
		store.err = errors.New("dial tcp: connection refused")
		r := NewRouter(nil, store.open(t), nil, RouterConfig{})

		_, err := r.Resolve(context.Background(), "t1")

		assert.True(t, apperror.HasCode(err, apperror.CodeServiceUnavailable))
		assert.True(t, errors.Is(err, store.err))
		assert.Equal(t, 0, r.Len())
	})

	t.Run("registration failure closes the pool", func(t *testing.T) {
		store := newFakeStore()
		reg := &countingRegistrar{err: errors.New("migrate failed")}
		r := NewRouter(nil, store.open(t), reg.register, RouterConfig{})

		_, err := r.Resolve(context.Background(), "t1")

		assert.EqualError(t, err, "migrate failed")
		assert.False(t, r.Cached("t1"))
		assert.NoError(t, store.mocks["hrms_t1"].ExpectationsWereMet())
	})
}

func TestRouter_EvictsLeastRecentlyAccessed(t *testing.T) {
	store := newFakeStore()
	r := NewRouter(nil, store.open(t), nil, RouterConfig{CacheSize: 2, Now: tickClock()})
	ctx := context.Background()

	_, err := r.Resolve(ctx, "a")
	require.NoError(t, err)
	_, err = r.Resolve(ctx, "b")
	require.NoError(t, err)
	// touch a so b becomes the oldest
	_, err = r.Resolve(ctx, "a")
	require.NoError(t, err)

	_, err = r.Resolve(ctx, "c")
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
	assert.True(t, r.Cached("a"))
	assert.False(t, r.Cached("b"))
	assert.True(t, r.Cached("c"))
	assert.NoError(t, store.mocks["hrms_b"].ExpectationsWereMet(), "evicted pool is closed")

	for _, id := range []string{"d", "e", "f", "g"} {
		_, err := r.Resolve(ctx, id)
		require.NoError(t, err)
		assert.LessOrEqual(t, r.Len(), 2)
	}
}

func TestRouter_ConcurrentMissesShareOneOpen(t *testing.T) {
	store := newFakeStore()
	store.gate = make(chan struct{})
	reg := &countingRegistrar{}
	r := NewRouter(nil, store.open(t), reg.register, RouterConfig{})

	const callers = 16
	handles := make([]*Handle, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			h, err := r.Resolve(context.Background(), "busy")
			assert.NoError(t, err)
			handles[i] = h
		}(i)
	}

	// let the callers pile up on the in-flight open
	time.Sleep(50 * time.Millisecond)
	close(store.gate)
	wg.Wait()

	assert.Equal(t, 1, store.openCount())
	assert.Equal(t, int32(1), reg.calls.Load())
	for _, h := range handles {
		assert.Same(t, handles[0], h)
	}
}

func TestRouter_ClearCache(t *testing.T) {
	store := newFakeStore()
	reg := &countingRegistrar{}
	r := NewRouter(nil, store.open(t), reg.register, RouterConfig{})
	ctx := context.Background()

	_, err := r.Resolve(ctx, "t1")
	require.NoError(t, err)

	r.ClearCache()
	assert.Equal(t, 0, r.Len())

	_, err = r.Resolve(ctx, "t1")
	require.NoError(t, err)

	assert.Equal(t, 2, store.openCount())
	assert.Equal(t, int32(2), reg.calls.Load())
}

func TestRouter_EvictDropsAlias(t *testing.T) {
	acme := &Tenant{ID: uuid.New(), Code: "acme", Status: StatusActive}
	lookup := newFakeLookup(acme)
	r := NewRouter(lookup, newFakeStore().open(t), nil, RouterConfig{Strict: true})
	ctx := context.Background()

	_, err := r.Resolve(ctx, "acme")
	require.NoError(t, err)

	lookup.tenants["acme"].Status = StatusSuspended
	r.Evict(acme.ID.String())

	_, err = r.Resolve(ctx, "acme")
	assert.True(t, apperror.HasCode(err, apperror.CodeForbidden))
	assert.Equal(t, 2, lookup.calls)
}

func TestRouter_EvictedPoolStaysOpenDuringGrace(t *testing.T) {
	store := newFakeStore()
	r := NewRouter(nil, store.open(t), nil, RouterConfig{
		CacheSize:  1,
		EvictGrace: 50 * time.Millisecond,
		Now:        tickClock(),
	})
	ctx := context.Background()

	hA, err := r.Resolve(ctx, "a")
	require.NoError(t, err)
	sqlDB, err := hA.DB.DB()
	require.NoError(t, err)

	_, err = r.Resolve(ctx, "b")
	require.NoError(t, err)
	require.False(t, r.Cached("a"))

	// a request that resolved a before eviction can still use its pool
	assert.NoError(t, sqlDB.Ping())

	assert.Eventually(t, func() bool {
		return sqlDB.Ping() != nil
	}, time.Second, 10*time.Millisecond)
	assert.NoError(t, store.mocks["hrms_a"].ExpectationsWereMet())
}

func TestRouter_FailedOpenDoesNotCacheAlias(t *testing.T) {
	acme := &Tenant{ID: uuid.New(), Code: "acme", Status: StatusActive}
	lookup := newFakeLookup(acme)
	store := newFakeStore()
	store.err = errors.New("dial tcp: connection refused")
	r := NewRouter(lookup, store.open(t), nil, RouterConfig{Strict: true})
	ctx := context.Background()

	_, err := r.Resolve(ctx, "acme")
	assert.True(t, apperror.HasCode(err, apperror.CodeServiceUnavailable))

	lookup.mu.Lock()
	lookup.tenants["acme"].Status = StatusSuspended
	lookup.mu.Unlock()
	r.Evict(acme.ID.String())

	_, err = r.Resolve(ctx, "acme")
	assert.True(t, apperror.HasCode(err, apperror.CodeForbidden))
	assert.Equal(t, 2, lookup.calls)
	assert.Equal(t, 1, store.openCount())
}

func TestRouter_LenientRawIdentifierIsNotAliased(t *testing.T) {
	lookup := newFakeLookup()
	r := NewRouter(lookup, newFakeStore().open(t), nil, RouterConfig{Strict: false})
	ctx := context.Background()

	_, err := r.Resolve(ctx, "ghost")
	require.NoError(t, err)
	_, err = r.Resolve(ctx, "ghost")
	require.NoError(t, err)

	assert.Equal(t, 2, lookup.calls)
}
