package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyStatus_SubmittedAtStampedOnce(t *testing.T) {
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var r FormResponse

	r.ApplyStatus(SubmissionSubmitted, 1, first)
	require.NotNil(t, r.SubmittedAt)

	r.ApplyStatus(SubmissionDraft, 1, first.Add(time.Hour))
	r.ApplyStatus(SubmissionSubmitted, 1, first.Add(2*time.Hour))
	assert.True(t, r.SubmittedAt.Equal(first))
	assert.Nil(t, r.ReviewedAt)
}

func TestApplyStatus_Review(t *testing.T) {
	now := time.Now()
	var r FormResponse
	r.ApplyStatus(SubmissionApproved, 42, now)
	require.NotNil(t, r.ReviewedBy)
	assert.Equal(t, uint(42), *r.ReviewedBy)
	assert.Equal(t, now, *r.ReviewedAt)
	assert.True(t, r.SubmissionStatus.IsCompleted())
	assert.False(t, SubmissionRejected.IsCompleted())
}
