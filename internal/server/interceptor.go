package server

import (
	"context"
	"errors"
	"time"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/emrgen/glossary/internal/service"
	"github.com/google/uuid"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "x-request-id"

func UnaryGrpcRequestTimeInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		reqTime := time.Since(start)
		logrus.Debugf("request time: %v: %v", info.FullMethod, reqTime)
		return resp, err
	}
}

func UnaryRequestTimeInterceptor() grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req interface{},
		reply interface{},
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		reqTime := time.Since(start)
		logrus.Debugf("request time: %v: %v", method, reqTime)
		return err
	}
}

// UnaryRequestIDInterceptor tags the call with the caller's x-request-id, or a fresh one.
func UnaryRequestIDInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		requestID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(requestIDHeader); len(values) > 0 {
				requestID = values[0]
			}
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}

		grpc_ctxtags.Extract(ctx).Set("request_id", requestID)
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, requestID))

		return handler(ctx, req)
	}
}

// UnaryConcurrencyLimitInterceptor lets at most workers handlers run at once.
// Calls wait for a free slot until their context is done.
func UnaryConcurrencyLimitInterceptor(workers int) grpc.UnaryServerInterceptor {
	if workers <= 0 {
		workers = 1
	}
	slots := semaphore.NewWeighted(int64(workers))

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if err := slots.Acquire(ctx, 1); err != nil {
			return nil, status.FromContextError(err).Err()
		}
		defer slots.Release(1)

		inflightGrpc.Inc()
		defer inflightGrpc.Dec()

		return handler(ctx, req)
	}
}

func UnaryMetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		requestDuration.WithLabelValues(transportGrpc, info.FullMethod).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(transportGrpc, info.FullMethod, status.Code(err).String()).Inc()

		return resp, err
	}
}

type validator interface {
	Validate() error
}

// UnaryValidationInterceptor rejects invalid requests before they reach the
// handler. Field violations travel as a google.rpc.BadRequest detail.
func UnaryValidationInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if v, ok := req.(validator); ok {
			if err := validationStatus(v.Validate()); err != nil {
				return nil, err
			}
		}

		return handler(ctx, req)
	}
}

func validationStatus(err error) error {
	if err == nil {
		return nil
	}

	var invalid *v1.ValidationError
	if errors.As(err, &invalid) {
		return service.ValidationStatus(invalid)
	}
	return status.Error(codes.InvalidArgument, err.Error())
}

// recoverPanic turns a handler panic into an INTERNAL status.
func recoverPanic(p interface{}) error {
	logrus.Errorf("panic while handling request: %v", p)
	return status.Error(codes.Internal, "internal error")
}
