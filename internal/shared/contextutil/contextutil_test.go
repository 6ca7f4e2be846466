package contextutil_test

import (
	"context"
	"testing"

	"go-hrms/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	ctx := context.Background()
	ctx = contextutil.WithRequestID(ctx, "rid-1")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithEmployeeID(ctx, "emp-1")
	ctx = contextutil.WithTenantID(ctx, "tenant-1")

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, "user-1", md.UserID)
	assert.Equal(t, "emp-1", md.EmployeeID)
	assert.Equal(t, "tenant-1", md.TenantID)
}

func TestExtractMetadata_Empty(t *testing.T) {
	assert.Equal(t, contextutil.Metadata{}, contextutil.ExtractMetadata(context.Background()))
}

func TestGetLogger_Fallback(t *testing.T) {
	fallback := zap.NewNop().Named("fallback")

	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewNop().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
}
