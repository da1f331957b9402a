// Package grpc runs the gRPC side of the server: the standard health service
// and server reflection.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dmitrijs2005/plantpal/internal/logging"
)

// ServiceName is the health-check service name reported for the API.
const ServiceName = "plantpal"

type GRPCServer struct {
	address string
	logger  logging.Logger
	health  *health.Server
	ping    func(ctx context.Context) error
}

// NewGRPCServer creates a server listening on address. ping reports whether
// storage is usable; the health status follows it.
func NewGRPCServer(address string, l logging.Logger, ping func(ctx context.Context) error) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		health:  health.NewServer(),
		ping:    ping,
	}
}

// Run serves until ctx is cancelled, then marks every service as not
// serving and stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	healthpb.RegisterHealthServer(srv, s.health)
	reflection.Register(srv)

	s.updateStatus(ctx)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	return srv.Serve(listen)
}

// updateStatus sets the health of the overall server and of ServiceName
// from the storage ping.
func (s *GRPCServer) updateStatus(ctx context.Context) {
	st := healthpb.HealthCheckResponse_SERVING
	if s.ping != nil {
		if err := s.ping(ctx); err != nil {
			s.logger.Warn(ctx, "storage not ready", "error", err)
			st = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(ServiceName, st)
}
