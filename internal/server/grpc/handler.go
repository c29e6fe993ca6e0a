package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/northlink/selfcare/internal/common"
	pb "github.com/northlink/selfcare/internal/proto"
	"github.com/northlink/selfcare/internal/server/models"
	"github.com/northlink/selfcare/internal/server/services"
)

func userToProto(u *models.User) *pb.User {
	return &pb.User{
		Id:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		AccountNumber: u.AccountNumber,
		PortalType:    u.PortalType,
	}
}

func invoiceToProto(inv *models.Invoice) *pb.Invoice {
	return &pb.Invoice{
		Id:          inv.ID,
		Number:      inv.Number,
		AmountCents: inv.AmountCents,
		Currency:    inv.Currency,
		IssuedAt:    inv.IssuedAt.Format(time.RFC3339),
		DueAt:       inv.DueAt.Format(time.RFC3339),
		Paid:        inv.Paid,
	}
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	user, pair, err := s.users.Login(ctx, services.LoginInput{
		Identifier:     req.Identifier,
		Password:       []byte(req.Password),
		PortalType:     req.PortalType,
		MFACode:        req.MfaCode,
		RememberDevice: req.RememberDevice,
	})

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "invalid identifier or password")
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "login", "user", user.ID)
	return &pb.LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(pair.ExpiresIn.Seconds()),
		User:         userToProto(user),
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	pair, err := s.users.RefreshToken(ctx, req.RefreshToken)

	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpired) || errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		s.logger.Error(ctx, "refresh failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RefreshTokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(pair.ExpiresIn.Seconds()),
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		s.logger.Error(ctx, "logout failed", "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) GetCurrentUser(ctx context.Context, req *pb.GetCurrentUserRequest) (*pb.GetCurrentUserResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetCurrentUserResponse{User: userToProto(user)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) ListInvoices(ctx context.Context, req *pb.ListInvoicesRequest) (*pb.ListInvoicesResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	list, err := s.invoices.List(ctx, userID)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	result := make([]*pb.Invoice, 0, len(list))
	for _, inv := range list {
		result = append(result, invoiceToProto(inv))
	}

	return &pb.ListInvoicesResponse{Invoices: result}, nil
}

func (s *GRPCServer) GetInvoiceDownloadUrl(ctx context.Context, req *pb.GetInvoiceDownloadUrlRequest) (*pb.GetInvoiceDownloadUrlResponse, error) {

	userID, ok := userIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	url, err := s.invoices.GetDownloadURL(ctx, userID, req.InvoiceId)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return nil, status.Error(codes.NotFound, "invoice not found")
		case errors.Is(err, common.ErrorUnauthorized):
			return nil, status.Error(codes.PermissionDenied, "not your invoice")
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &pb.GetInvoiceDownloadUrlResponse{Url: url}, nil
}
