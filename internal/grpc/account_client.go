package igrpc

import (
	"context"
	"fmt"

	"friendship-service/internal/engine"
	"friendship-service/internal/models"
	accountpb "friendship-service/proto/account"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// AccountClient talks to the account directory over gRPC and satisfies
// engine.Directory.
type AccountClient struct {
	conn   *grpc.ClientConn
	client accountpb.AccountDirectoryClient
}

var _ engine.Directory = (*AccountClient)(nil)

func NewAccountClient(addr string) (*AccountClient, error) {
	if addr == "" {
		return nil, fmt.Errorf("account gRPC address is required")
	}

	conn, err := grpc.Dial(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to dial account gRPC: %w", err)
	}

	return &AccountClient{
		conn:   conn,
		client: accountpb.NewAccountDirectoryClient(conn),
	}, nil
}

func (c *AccountClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *AccountClient) FindByID(ctx context.Context, id int64) (*models.UserSummary, error) {
	resp, err := c.client.GetUser(ctx, &accountpb.GetUserRequest{UserId: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, engine.ErrNotFound
		}
		return nil, fmt.Errorf("account directory GetUser: %w", err)
	}
	user := summaryFromProto(resp)
	return &user, nil
}

func (c *AccountClient) SearchByText(ctx context.Context, term string, excludeID int64, limit int) ([]models.UserSummary, error) {
	resp, err := c.client.SearchUsers(ctx, &accountpb.SearchUsersRequest{
		Term:      term,
		ExcludeId: excludeID,
		Limit:     int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("account directory SearchUsers: %w", err)
	}

	users := make([]models.UserSummary, 0, len(resp.GetUsers()))
	for _, u := range resp.GetUsers() {
		users = append(users, summaryFromProto(u))
	}
	return users, nil
}

func summaryFromProto(u *accountpb.UserSummary) models.UserSummary {
	return models.UserSummary{
		ID:        u.GetId(),
		FirstName: u.GetFirstName(),
		LastName:  u.GetLastName(),
		Handle:    u.GetHandle(),
		Email:     u.GetEmail(),
	}
}
