package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedError(t *testing.T) {
	tests := []struct {
		name           string
		feed           string
		underlyingErr  error
		wantContains   []string
		wantUnwrapable bool
		wantRetryable  bool
	}{
		{
			name:           "error message includes feed and underlying error",
			feed:           "backend",
			underlyingErr:  errors.New("connection failed"),
			wantContains:   []string{"backend", "connection failed"},
			wantUnwrapable: true,
			wantRetryable:  false, // Default is non-retryable
		},
		{
			name:           "error message with different feed",
			feed:           "replay",
			underlyingErr:  errors.New("timeout"),
			wantContains:   []string{"replay", "timeout"},
			wantUnwrapable: true,
			wantRetryable:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFeedError(tt.feed, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}

			if tt.wantUnwrapable {
				assert.True(t, errors.Is(err, tt.underlyingErr))
			}

			assert.Equal(t, tt.wantRetryable, err.Retryable)
		})
	}
}

func TestNewRetryableFeedError(t *testing.T) {
	underlying := errors.New("temporary network failure")
	err := NewRetryableFeedError("backend", underlying)

	assert.Contains(t, err.Error(), "backend")
	assert.True(t, errors.Is(err, underlying))
	assert.True(t, err.Retryable)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewRetryableFeedError("backend", errors.New("x"))))
	assert.False(t, IsRetryable(NewFeedError("backend", errors.New("x"))))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(nil))
}

func TestErrFeedCompleteIsSentinel(t *testing.T) {
	wrapped := NewFeedError("backend", ErrFeedComplete)
	assert.True(t, errors.Is(wrapped, ErrFeedComplete))
}
