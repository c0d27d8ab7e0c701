package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitIncrementsViews(t *testing.T) {
	setupVideoDB(t)
	ctx := context.Background()
	seedCreator(t, 1)
	seedVideo(t, 101, 1, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := NewVideoVisitService(ctx)

	views, err := svc.Visit(101, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), views)

	views, err = svc.Visit(101, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), views)
}

func TestVisitUnknownVideo(t *testing.T) {
	setupVideoDB(t)

	_, err := NewVideoVisitService(context.Background()).Visit(999, 10)
	assert.Error(t, err)
}
