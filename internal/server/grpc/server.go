package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/northlink/selfcare/internal/logging"
	pb "github.com/northlink/selfcare/internal/proto"
	"github.com/northlink/selfcare/internal/server/models"
	"github.com/northlink/selfcare/internal/server/services"
)

// userService is the slice of UserService the transport needs.
type userService interface {
	Login(ctx context.Context, in services.LoginInput) (*models.User, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

type invoiceService interface {
	List(ctx context.Context, userID string) ([]*models.Invoice, error)
	GetDownloadURL(ctx context.Context, userID, invoiceID string) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedSelfcarePortalServiceServer
	address   string
	users     userService
	invoices  invoiceService
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(addr string, l logging.Logger, us userService, is invoiceService, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   addr,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		invoices:  is,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterSelfcarePortalServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
