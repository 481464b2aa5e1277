package interceptors

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLoggingUnary_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	interceptor := LoggingUnary(zap.New(core), map[string]bool{"/skip.S/M": true})
	info := &grpc.UnaryServerInfo{FullMethod: "/account.v1.AccountService/GetUserInfo"}

	ctx := WithIdentity(context.Background(), "user-1", "")
	if _, err := interceptor(ctx, "req", info, okHandler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	_, _ = interceptor(ctx, "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.Internal, "db down")
	})
	_, _ = interceptor(ctx, "req", &grpc.UnaryServerInfo{FullMethod: "/skip.S/M"}, okHandler)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("log entries = %d, want 2", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel {
		t.Errorf("first level = %v, want info", entries[0].Level)
	}
	if entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("second level = %v, want error", entries[1].Level)
	}
	fields := entries[0].ContextMap()
	if fields["method"] != info.FullMethod || fields["code"] != "OK" || fields["user_id"] != "user-1" {
		t.Errorf("fields = %v", fields)
	}
}

func TestLoggingUnary_NilLogger(t *testing.T) {
	interceptor := LoggingUnary(nil, nil)
	if _, err := interceptor(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/x.Y/Z"}, okHandler); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
}
