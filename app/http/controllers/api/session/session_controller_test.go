package session

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

	sessionmodel "gamepay/app/models/session"
	"gamepay/app/repositories"
	btsConfig "gamepay/config"
	"gamepay/pkg/config"
	"gamepay/pkg/database"
	"gamepay/pkg/database/migrations"
	"gamepay/pkg/logger"
)

var setupOnce sync.Once

func setupTest(t *testing.T) {
	t.Helper()
	setupOnce.Do(func() {
		btsConfig.Initialize()
		config.InitConfig("testing")
		config.Set("app.env", "testing")

		logDir, _ := os.MkdirTemp("", "gamepay-test")
		logger.InitLogger(filepath.Join(logDir, "logs.log"), 1, 1, 1, false, "single", "debug")

		gin.SetMode(gin.TestMode)

		database.Connect(sqlite.Open("file::memory:?cache=shared"), logger.NewGormLogger())
		require.NoError(t, database.AutoMigrate(migrations.RegisterTables()))
	})
}

func newRouter() *gin.Engine {
	sc := NewSessionController(repositories.NewSessionRepositoryWithDB(database.DB))
	router := gin.New()
	router.GET("/api/sessions", sc.Index)
	return router
}

func TestSessionIndex_OrderedByStartTime(t *testing.T) {
	setupTest(t)
	router := newRouter()

	// 乱序写入，接口应按开始时间升序返回
	now := time.Now()
	starts := []time.Duration{3 * time.Hour, time.Hour, 2 * time.Hour}
	for _, offset := range starts {
		s := &sessionmodel.GamingSession{
			ID:        uuid.New().String(),
			UserID:    uuid.New().String(),
			Status:    sessionmodel.StatusPending,
			StartTime: now.Add(offset),
		}
		require.NoError(t, database.DB.Create(s).Error)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/sessions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                         `json:"success"`
		Data    []sessionmodel.GamingSession `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.GreaterOrEqual(t, len(resp.Data), 3)

	for i := 1; i < len(resp.Data); i++ {
		assert.False(t, resp.Data[i].StartTime.Before(resp.Data[i-1].StartTime))
	}
}
