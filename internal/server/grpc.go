// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"sync"

	"google.golang.org/grpc"

	myGRPC "github.com/MKhiriev/go-pod-mirror/internal/handler/grpc"
	"github.com/MKhiriev/go-pod-mirror/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	mu              sync.Mutex
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: address,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) name() string {
	return "grpc"
}

func (g *grpcServer) listen() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}

	g.mu.Lock()
	g.gRPCNetListener = lis
	g.mu.Unlock()
	return nil
}

func (g *grpcServer) release() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gRPCNetListener != nil {
		g.gRPCNetListener.Close()
	}
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.addr()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown reports NOT_SERVING, then stops gracefully; connections still
// open when ctx ends are closed.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
		return fmt.Errorf("gRPC server Shutdown: %w", ctx.Err())
	}
}

func (g *grpcServer) addr() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.gRPCNetListener == nil {
		return g.address
	}
	return g.gRPCNetListener.Addr().String()
}
