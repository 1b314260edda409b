package service

import (
	"errors"

	v1 "github.com/emrgen/glossary/apis/v1"
	"github.com/emrgen/glossary/internal/store"
	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusError converts a store error into the gRPC status both facades report.
func statusError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, store.ErrTermNotFound), errors.Is(err, store.ErrRelationNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, store.ErrTermExists), errors.Is(err, store.ErrRelationExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, store.ErrSelfRelation):
		return badRequest(err.Error(), v1.FieldViolation{Field: "target_keyword", Description: "must differ from source_keyword"})
	}

	var invalid *v1.ValidationError
	if errors.As(err, &invalid) {
		return ValidationStatus(invalid)
	}

	if st, ok := status.FromError(err); ok {
		return st.Err()
	}

	logrus.Errorf("glossary: %v", err)
	return status.Error(codes.Internal, "internal error")
}

// ValidationStatus reports rejected request fields as INVALID_ARGUMENT with
// a google.rpc.BadRequest detail.
func ValidationStatus(err *v1.ValidationError) error {
	return badRequest(err.Error(), err.Violations...)
}

func badRequest(message string, violations ...v1.FieldViolation) error {
	st := status.New(codes.InvalidArgument, message)

	detail := &errdetails.BadRequest{}
	for _, v := range violations {
		detail.FieldViolations = append(detail.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: v.Description,
		})
	}

	withDetails, err := st.WithDetails(detail)
	if err != nil {
		return st.Err()
	}

	return withDetails.Err()
}
