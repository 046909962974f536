package subscription

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"gamepay/app/http/middlewares"
	subscriptionmodel "gamepay/app/models/subscription"
	"gamepay/app/repositories"
	btsConfig "gamepay/config"
	"gamepay/pkg/config"
	"gamepay/pkg/database"
	"gamepay/pkg/database/migrations"
	"gamepay/pkg/jwt"
	"gamepay/pkg/logger"
)

var setupOnce sync.Once

func setupTest(t *testing.T) {
	t.Helper()
	setupOnce.Do(func() {
		btsConfig.Initialize()
		config.InitConfig("testing")
		config.Set("app.env", "testing")
		config.Set("jwt.secret", "test-secret-key")

		logDir, _ := os.MkdirTemp("", "gamepay-test")
		logger.InitLogger(filepath.Join(logDir, "logs.log"), 1, 1, 1, false, "single", "debug")

		gin.SetMode(gin.TestMode)

		database.Connect(sqlite.Open("file::memory:?cache=shared"), logger.NewGormLogger())
		require.NoError(t, database.AutoMigrate(migrations.RegisterTables()))
	})
}

func newRouter() *gin.Engine {
	sc := NewSubscriptionController(repositories.NewSubscriptionRepositoryWithDB(database.DB))
	router := gin.New()
	router.GET("/api/subscriptions/:userId", middlewares.AuthJWT(), sc.Index)
	return router
}

func doGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func seedSubscriptions(t *testing.T, userID string, n int) {
	t.Helper()
	base := time.Now().Add(-time.Duration(n) * time.Hour)
	for i := 0; i < n; i++ {
		sub := &subscriptionmodel.Subscription{
			ID:        uuid.New().String(),
			UserID:    userID,
			Plan:      "monthly",
			Status:    subscriptionmodel.StatusActive,
			StartDate: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, database.DB.Create(sub).Error)
		// 错开 created_at 以便校验排序
		require.NoError(t, database.DB.Model(sub).
			Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error)
	}
}

func TestSubscriptionIndex_NoToken(t *testing.T) {
	setupTest(t)
	router := newRouter()

	w := doGet(router, "/api/subscriptions/"+uuid.New().String(), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubscriptionIndex_InvalidToken(t *testing.T) {
	setupTest(t)
	router := newRouter()

	w := doGet(router, "/api/subscriptions/"+uuid.New().String(), "not-a-real-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubscriptionIndex_OtherUserForbidden(t *testing.T) {
	setupTest(t)
	router := newRouter()

	token, err := jwt.IssueToken(uuid.New().String(), false)
	require.NoError(t, err)

	w := doGet(router, "/api/subscriptions/"+uuid.New().String(), token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSubscriptionIndex_Self(t *testing.T) {
	setupTest(t)
	router := newRouter()

	userID := uuid.New().String()
	seedSubscriptions(t, userID, 3)

	token, err := jwt.IssueToken(userID, false)
	require.NoError(t, err)

	w := doGet(router, "/api/subscriptions/"+userID, token)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                            `json:"success"`
		Data    []subscriptionmodel.Subscription `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 3)

	// 按创建时间降序
	for i := 1; i < len(resp.Data); i++ {
		assert.False(t, resp.Data[i].CreatedAt.After(resp.Data[i-1].CreatedAt))
	}
}

func TestSubscriptionIndex_AdminCanReadAnyUser(t *testing.T) {
	setupTest(t)
	router := newRouter()

	userID := uuid.New().String()
	seedSubscriptions(t, userID, 1)

	token, err := jwt.IssueToken(uuid.New().String(), true)
	require.NoError(t, err)

	w := doGet(router, "/api/subscriptions/"+userID, token)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                            `json:"success"`
		Data    []subscriptionmodel.Subscription `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, userID, resp.Data[0].UserID)
}

func TestSubscriptionIndex_EmptyResult(t *testing.T) {
	setupTest(t)
	router := newRouter()

	userID := uuid.New().String()
	token, err := jwt.IssueToken(userID, false)
	require.NoError(t, err)

	w := doGet(router, "/api/subscriptions/"+userID, token)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                            `json:"success"`
		Data    []subscriptionmodel.Subscription `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Data)
}
