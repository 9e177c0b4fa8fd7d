package classifier

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecorewards/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func startHealthServer(t *testing.T) (*health.Server, *GRPCProbe) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	probe, err := NewGRPCProbe("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = probe.Close() })

	return hs, probe
}

func TestGRPCProbe_Serving(t *testing.T) {
	hs, probe := startHealthServer(t)
	hs.SetServingStatus(common.HealthServiceName, healthpb.HealthCheckResponse_SERVING)

	ok, err := probe.ModelLoaded(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGRPCProbe_NotServing(t *testing.T) {
	hs, probe := startHealthServer(t)
	hs.SetServingStatus(common.HealthServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	ok, err := probe.ModelLoaded(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGRPCProbe_UnknownService(t *testing.T) {
	_, probe := startHealthServer(t)

	ok, err := probe.ModelLoaded(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGRPCProbe_Unreachable(t *testing.T) {
	probe, err := NewGRPCProbe("passthrough:///unreachable",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return nil, net.ErrClosed
		}))
	require.NoError(t, err)
	defer probe.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	ok, err := probe.ModelLoaded(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnavailable)
}
