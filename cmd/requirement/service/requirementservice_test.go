package service

import (
	"context"
	"testing"

	"TagHub.com/cmd/model"
	requirementdb "TagHub.com/cmd/requirement/dal/db"
	userdb "TagHub.com/cmd/user/dal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRequirementDB(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&model.Requirement{}, &model.User{}))
	requirementdb.DB = gdb
	userdb.DB = gdb
}

func TestPostRequirementBrandOnly(t *testing.T) {
	setupRequirementDB(t)
	ctx := context.Background()
	svc := NewRequirementService(ctx)

	_, err := svc.Post(1, "creator", &model.Requirement{Title: "campaign", Category: "tech"})
	assert.Error(t, err)

	posted, err := svc.Post(1, "brand", &model.Requirement{Title: "campaign", Category: "tech", Budget: 500})
	require.NoError(t, err)
	assert.NotZero(t, posted.RequirementId)
	assert.Equal(t, int64(1), posted.BrandId)
}

func TestListRequirementsByCategory(t *testing.T) {
	setupRequirementDB(t)
	ctx := context.Background()
	svc := NewRequirementService(ctx)

	_, err := svc.Post(1, "brand", &model.Requirement{Title: "a", Category: "Tech"})
	require.NoError(t, err)
	_, err = svc.Post(2, "brand", &model.Requirement{Title: "b", Category: "food"})
	require.NoError(t, err)

	list, err := svc.List("tech", 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].Title)

	list, err = svc.List("", 2)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].Title)
}

func TestDeleteRequirementAuthorization(t *testing.T) {
	setupRequirementDB(t)
	ctx := context.Background()
	svc := NewRequirementService(ctx)

	posted, err := svc.Post(1, "brand", &model.Requirement{Title: "a", Category: "tech"})
	require.NoError(t, err)

	assert.Error(t, svc.Delete(posted.RequirementId, 2, "brand"))
	require.NoError(t, svc.Delete(posted.RequirementId, 2, "admin"))
	assert.Error(t, svc.Delete(posted.RequirementId, 1, "brand"))
}
