package errors_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "item not found",
			expected: "NOT_FOUND: item not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "item record cannot be nil",
			expected: "INVALID_ARGUMENT: item record cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("item not found").
		WithMeta("item_id", 1234).
		WithMeta("lang", "en")

	s.Assert().Equal(1234, err.Meta["item_id"])
	s.Assert().Equal("en", err.Meta["lang"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to fetch item")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to fetch item", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	baseErr := errors.NotFound("no such item")
	wrapped := errors.Wrap(baseErr, "item lookup failed")

	s.Assert().Equal(errors.CodeNotFound, wrapped.Code)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := fmt.Errorf("dial timeout")
	wrapped := errors.WrapWithCode(baseErr, errors.CodeUnavailable, "api unavailable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("api unavailable", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.InvalidArgument("a")
	err2 := errors.InvalidArgumentf("item %d", 2)
	err3 := errors.NotFound("a")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeDeadlineExceeded, errors.GetCode(fmt.Errorf("get: %w", context.DeadlineExceeded)))
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(context.Canceled))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("item not found")
	wrapped := errors.Wrap(err, "wrapped message")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("item not found", errors.GetMessage(err))
	s.Assert().Equal("wrapped message", errors.GetMessage(wrapped))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
	s.Assert().Nil(errors.GetMeta(stdErr))
}

func (s *ErrorsTestSuite) TestHTTPStatus() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, http.StatusOK},
		{errors.CodeNotFound, http.StatusNotFound},
		{errors.CodeInvalidArgument, http.StatusBadRequest},
		{errors.CodeResourceExhausted, http.StatusTooManyRequests},
		{errors.CodeInternal, http.StatusInternalServerError},
		{errors.CodeDataLoss, http.StatusInternalServerError},
		{errors.CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.HTTPStatus())
		})
	}
}

func (s *ErrorsTestSuite) TestFromHTTPStatus() {
	testCases := []struct {
		status   int
		expected errors.Code
	}{
		{http.StatusOK, errors.CodeOK},
		{http.StatusBadRequest, errors.CodeNotFound},
		{http.StatusNotFound, errors.CodeNotFound},
		{http.StatusUnauthorized, errors.CodeUnauthenticated},
		{http.StatusTooManyRequests, errors.CodeResourceExhausted},
		{http.StatusBadGateway, errors.CodeUnavailable},
		{http.StatusServiceUnavailable, errors.CodeUnavailable},
		{http.StatusGatewayTimeout, errors.CodeDeadlineExceeded},
		{http.StatusTeapot, errors.CodeInternal},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			s.Assert().Equal(tc.expected, errors.FromHTTPStatus(tc.status))
		})
	}
}
