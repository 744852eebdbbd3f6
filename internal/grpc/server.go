package igrpc

import (
	"context"
	"errors"
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"friendship-service/internal/engine"
	"friendship-service/internal/models"
	friendpb "friendship-service/proto/friendship"
)

// FriendshipGRPCServer exposes relationship lookups to sibling services.
// Mutations stay HTTP-only.
type FriendshipGRPCServer struct {
	friendpb.UnimplementedFriendshipServiceServer
	engine *engine.Engine
}

func NewFriendshipGRPCServer(eng *engine.Engine) *FriendshipGRPCServer {
	return &FriendshipGRPCServer{engine: eng}
}

func StartGRPCServer(ctx context.Context, addr string, eng *engine.Engine) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := grpc.NewServer()
	friendpb.RegisterFriendshipServiceServer(srv, NewFriendshipGRPCServer(eng))

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	return srv, nil
}

func (s *FriendshipGRPCServer) GetStatus(ctx context.Context, req *friendpb.GetStatusRequest) (*friendpb.GetStatusResponse, error) {
	view, err := s.engine.StatusBetween(ctx, req.GetViewerId(), req.GetOtherId())
	if err != nil {
		if errors.Is(err, engine.ErrInvalidPair) {
			return nil, status.Errorf(codes.InvalidArgument, "invalid user pair")
		}
		return nil, status.Errorf(codes.Internal, "failed to resolve status: %v", err)
	}
	return &friendpb.GetStatusResponse{Status: string(view)}, nil
}

func (s *FriendshipGRPCServer) AreFriends(ctx context.Context, req *friendpb.AreFriendsRequest) (*friendpb.AreFriendsResponse, error) {
	view, err := s.engine.StatusBetween(ctx, req.GetUserId(), req.GetOtherId())
	if err != nil {
		if errors.Is(err, engine.ErrInvalidPair) {
			return nil, status.Errorf(codes.InvalidArgument, "invalid user pair")
		}
		return nil, status.Errorf(codes.Internal, "failed to check friendship: %v", err)
	}
	return &friendpb.AreFriendsResponse{AreFriends: view == models.ViewFriends}, nil
}

func (s *FriendshipGRPCServer) ListFriends(ctx context.Context, req *friendpb.ListFriendsRequest) (*friendpb.ListFriendsResponse, error) {
	ids, err := s.engine.ListFriends(ctx, req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to list friends: %v", err)
	}
	return &friendpb.ListFriendsResponse{FriendIds: ids}, nil
}
