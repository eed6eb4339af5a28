package blog_test

import (
	"errors"
	"testing"

	"portfolio-cms/internal/dbtest"
	"portfolio-cms/internal/domain/blog"
	"portfolio-cms/internal/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_Singleton(t *testing.T) {
	db := dbtest.Open(t)

	first := blog.DefaultSettings()
	require.NoError(t, db.Create(&first).Error)

	second := blog.DefaultSettings()
	err := db.Create(&second).Error
	assert.True(t, errors.Is(err, core.ErrSingletonExists), "got %v", err)

	var n int64
	require.NoError(t, db.Model(&blog.Settings{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestSettings_Undeletable(t *testing.T) {
	db := dbtest.Open(t)

	s := blog.DefaultSettings()
	require.NoError(t, db.Create(&s).Error)

	err := db.Delete(&s).Error
	assert.True(t, errors.Is(err, core.ErrSingletonUndeletable), "got %v", err)

	var n int64
	require.NoError(t, db.Model(&blog.Settings{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestDefaultSettings(t *testing.T) {
	s := blog.DefaultSettings()
	assert.Equal(t, "慧繡雅集", s.SiteName)
	assert.Equal(t, 10, s.PostsPerPage)
	assert.False(t, s.AllowComments)
}
