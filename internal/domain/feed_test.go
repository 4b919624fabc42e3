package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProposalFeedMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	batch := &Batch{
		Proposals:   []Proposal{{ID: "p1", Legs: []Leg{{AirlineCode: "SU"}}}},
		IsNewSearch: true,
	}

	feed := NewMockProposalFeed(ctrl)
	feed.EXPECT().Name().Return("backend").AnyTimes()
	gomock.InOrder(
		feed.EXPECT().Fetch(gomock.Any()).Return(batch, nil),
		feed.EXPECT().Fetch(gomock.Any()).Return(nil, ErrFeedComplete),
	)

	assert.Equal(t, "backend", feed.Name())

	got, err := feed.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, got.Proposals, 1)
	assert.True(t, got.IsNewSearch)

	_, err = feed.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrFeedComplete)
}
