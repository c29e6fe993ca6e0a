package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/northlink/selfcare/internal/common"
	"github.com/northlink/selfcare/internal/server/auth"
)

type ctxKey string

const (
	userIDKey     ctxKey = "userID"
	portalTypeKey ctxKey = "portalType"
)

// Methods that require a valid access token in metadata.
var guardedMethods = map[string]bool{
	"/selfcare.portal.SelfcarePortalService/GetCurrentUser":        true,
	"/selfcare.portal.SelfcarePortalService/ListInvoices":          true,
	"/selfcare.portal.SelfcarePortalService/GetInvoiceDownloadUrl": true,
}

// accessTokenInterceptor validates the access token on guarded methods and
// stashes the authenticated identity in the context. Expired tokens get a
// distinguishable status message so clients can refresh and retry.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if guardedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := auth.ParseToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, portalTypeKey, claims.PortalType)

	}

	return handler(ctx, req)
}

// userIDFromContext returns the identity placed there by the interceptor.
func userIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}
