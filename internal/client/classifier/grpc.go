package classifier

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ecorewards/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// GRPCProbe checks the classifier over the gRPC health protocol.
type GRPCProbe struct {
	conn    *grpc.ClientConn
	client  healthpb.HealthClient
	service string
}

// NewGRPCProbe prepares a probe for addr. The connection is established
// lazily by the first check. Extra dial options are appended to the
// insecure transport credentials.
func NewGRPCProbe(addr string, opts ...grpc.DialOption) (*GRPCProbe, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("grpc probe %s: %w", addr, err)
	}
	return &GRPCProbe{
		conn:    conn,
		client:  healthpb.NewHealthClient(conn),
		service: common.HealthServiceName,
	}, nil
}

// ModelLoaded is true while the service reports SERVING. A server that does
// not know the service answers false without error.
func (p *GRPCProbe) ModelLoaded(ctx context.Context) (bool, error) {
	resp, err := p.client.Check(ctx, &healthpb.HealthCheckRequest{Service: p.service})
	if err != nil {
		return false, mapError(err)
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}

func (p *GRPCProbe) Close() error {
	return p.conn.Close()
}

func mapError(err error) error {
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.NotFound:
		return nil
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
}
