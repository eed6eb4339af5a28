package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-cms/internal/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unguarded has no delete hook, so the statement itself succeeds.
type unguarded struct {
	ID string `gorm:"primaryKey"`
}

func TestRefuseDelete_WithoutHookError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := dbtest.Open(t)
	require.NoError(t, db.AutoMigrate(&unguarded{}))
	require.NoError(t, db.Create(&unguarded{ID: "only"}).Error)

	h := NewHandler(db, Account{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)

	h.refuseDelete(c, &unguarded{})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"detail":"This instance cannot be deleted."}`, w.Body.String())
}
