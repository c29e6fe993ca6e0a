package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/northlink/selfcare/internal/client/models"
	"github.com/northlink/selfcare/internal/common"
	pb "github.com/northlink/selfcare/internal/proto"
)

// TokenKeeper persists the refresh token of a remembered session across
// restarts. Implementations must tolerate Clear on an empty store.
type TokenKeeper interface {
	SaveRefreshToken(ctx context.Context, token string) error
	LoadRefreshToken(ctx context.Context) (string, error)
	ClearRefreshToken(ctx context.Context) error
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.SelfcarePortalServiceClient
	keeper      TokenKeeper

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	expiresIn    time.Duration
	remembered   bool
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current access token to every call.
// When the server answers "token expired", the pair is refreshed and the
// call retried exactly once.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	s.mu.Lock()
	token := s.accessToken
	s.mu.Unlock()

	ctx = withAccessToken(ctx, token)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if refreshErr := s.refresh(ctx); refreshErr != nil {
			return err
		}

		s.mu.Lock()
		token = s.accessToken
		s.mu.Unlock()

		ctx = withAccessToken(ctx, token)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

// NewSelfcareClient dials the portal endpoint and, when a keeper is given,
// resumes any remembered session from it.
func NewSelfcareClient(ctx context.Context, endpointURL string, keeper TokenKeeper) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, keeper: keeper}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}

	if keeper != nil {
		token, err := keeper.LoadRefreshToken(ctx)
		if err == nil && token != "" {
			c.refreshToken = token
			c.remembered = true
		}
	}

	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewSelfcarePortalServiceClient(conn)
	return nil
}

// Login exchanges credentials for a token pair. On Unauthenticated the
// server's message is returned verbatim so the login form can show it.
func (s *GRPCClient) Login(ctx context.Context, in LoginInput) (*models.User, error) {

	req := &pb.LoginRequest{
		Identifier:     in.Identifier,
		Password:       in.Password,
		PortalType:     in.PortalType,
		MfaCode:        in.MFACode,
		RememberDevice: in.RememberDevice,
	}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapLoginError(err)
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.expiresIn = time.Duration(resp.ExpiresIn) * time.Second
	s.remembered = in.RememberDevice
	s.mu.Unlock()

	if in.RememberDevice && s.keeper != nil {
		_ = s.keeper.SaveRefreshToken(ctx, resp.RefreshToken)
	}

	return userFromProto(resp.User), nil
}

// Logout revokes the refresh token server-side and always drops the local
// session state, even when the revocation call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {

	s.mu.Lock()
	refresh := s.refreshToken
	s.mu.Unlock()

	var rpcErr error
	if refresh != "" {
		_, rpcErr = s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refresh})
	}

	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.expiresIn = 0
	s.remembered = false
	s.mu.Unlock()

	if s.keeper != nil {
		_ = s.keeper.ClearRefreshToken(ctx)
	}

	if rpcErr != nil {
		return s.mapError(rpcErr)
	}
	return nil
}

// GetCurrentUser returns the profile for the held session. With no tokens
// at all it returns ErrNoSession without calling the server. With only a
// remembered refresh token it refreshes first.
func (s *GRPCClient) GetCurrentUser(ctx context.Context) (*models.User, error) {

	s.mu.Lock()
	access, refresh := s.accessToken, s.refreshToken
	s.mu.Unlock()

	if access == "" && refresh == "" {
		return nil, ErrNoSession
	}
	if access == "" {
		if err := s.refresh(ctx); err != nil {
			return nil, err
		}
	}

	resp, err := s.client.GetCurrentUser(ctx, &pb.GetCurrentUserRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return userFromProto(resp.User), nil
}

// RefreshSession rotates the token pair ahead of access-token expiry.
func (s *GRPCClient) RefreshSession(ctx context.Context) error {
	return s.refresh(ctx)
}

func (s *GRPCClient) refresh(ctx context.Context) error {

	s.mu.Lock()
	refresh := s.refreshToken
	s.mu.Unlock()

	if refresh == "" {
		return ErrNoSession
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		return s.mapError(err)
	}

	s.mu.Lock()
	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.expiresIn = time.Duration(resp.ExpiresIn) * time.Second
	remembered := s.remembered
	s.mu.Unlock()

	if remembered && s.keeper != nil {
		_ = s.keeper.SaveRefreshToken(ctx, resp.RefreshToken)
	}

	return nil
}

// AccessTokenLifetime reports the lifetime the server attached to the most
// recent token pair, or zero when none was issued yet.
func (s *GRPCClient) AccessTokenLifetime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expiresIn
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {

	resp, err := s.client.ListInvoices(ctx, &pb.ListInvoicesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]*models.Invoice, 0, len(resp.Invoices))
	for _, inv := range resp.Invoices {
		result = append(result, invoiceFromProto(inv))
	}
	return result, nil
}

func (s *GRPCClient) GetInvoiceDownloadURL(ctx context.Context, invoiceID string) (string, error) {

	resp, err := s.client.GetInvoiceDownloadUrl(ctx, &pb.GetInvoiceDownloadUrlRequest{InvoiceId: invoiceID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Url, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// mapLoginError keeps the server's Unauthenticated message intact; the
// login form shows it to the customer word for word.
func (s *GRPCClient) mapLoginError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%s", st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func userFromProto(u *pb.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:            u.Id,
		Name:          u.Name,
		Email:         u.Email,
		AccountNumber: u.AccountNumber,
		PortalType:    u.PortalType,
	}
}

func invoiceFromProto(inv *pb.Invoice) *models.Invoice {
	issued, _ := time.Parse(time.RFC3339, inv.IssuedAt)
	due, _ := time.Parse(time.RFC3339, inv.DueAt)
	return &models.Invoice{
		ID:          inv.Id,
		Number:      inv.Number,
		AmountCents: inv.AmountCents,
		Currency:    inv.Currency,
		IssuedAt:    issued,
		DueAt:       due,
		Paid:        inv.Paid,
	}
}
