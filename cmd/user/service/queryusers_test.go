package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"TagHub.com/cmd/model"
	userdb "TagHub.com/cmd/user/dal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUserAt(t *testing.T, id int64, role string, createdAt time.Time) {
	err := userdb.CreateUser(context.Background(), &model.User{
		UserId: id, Name: fmt.Sprintf("user%d", id),
		Email: fmt.Sprintf("u%d@test.com", id), Role: role,
		CreatedAt: createdAt,
	})
	require.NoError(t, err)
}

func TestRegistrationsGraphBucketsByDay(t *testing.T) {
	setupUserDB(t)
	ctx := context.Background()
	day1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 3, 18, 30, 0, 0, time.UTC)

	// 同一天不同时刻归入同日 缺口日期不补零
	seedUserAt(t, 1, "creator", day1)
	seedUserAt(t, 2, "brand", day1.Add(5*time.Hour))
	seedUserAt(t, 3, "creator", day2)

	points, err := NewQueryUsersService(ctx).RegistrationsGraph()
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "2026-03-01", points[0].Day)
	assert.Equal(t, int64(2), points[0].Count)
	assert.Equal(t, "2026-03-03", points[1].Day)
	assert.Equal(t, int64(1), points[1].Count)
}

func TestRegistrationsGraphEmpty(t *testing.T) {
	setupUserDB(t)

	points, err := NewQueryUsersService(context.Background()).RegistrationsGraph()
	require.NoError(t, err)
	assert.Empty(t, points)
}
