// Package grpc exposes the dev server's liveness over the standard gRPC
// health protocol.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/ecorewards/internal/common"
	"github.com/dmitrijs2005/ecorewards/internal/logging"
)

// HealthServer reports SERVING for the classifier service while the model
// is loaded and NOT_SERVING otherwise. The overall server status ("") is
// always SERVING.
type HealthServer struct {
	address     string
	modelLoaded func() bool
	logger      logging.Logger
	health      *health.Server
}

func NewHealthServer(a string, modelLoaded func() bool, l logging.Logger) *HealthServer {
	return &HealthServer{
		address:     a,
		modelLoaded: modelLoaded,
		logger:      l.With("module", "grpc_server"),
		health:      health.NewServer(),
	}
}

// Register attaches the health service to srv and publishes the current
// model status.
func (s *HealthServer) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, s.health)
	s.Refresh()
}

// Refresh republishes the classifier status.
func (s *HealthServer) Refresh() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if s.modelLoaded() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus(common.HealthServiceName, status)
}

func (s *HealthServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer()

	// registers service
	s.Register(srv)

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
