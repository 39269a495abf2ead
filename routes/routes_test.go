package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jculp24/thrsty/configs"
	"github.com/jculp24/thrsty/entity"
	"github.com/jculp24/thrsty/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	hub := ws.NewNotificationHub()
	go hub.Run()

	r := gin.New()
	RegisterRoutes(r, db, cfg, hub)
	return r, db
}

type envelope struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func signupAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w, _ := do(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": email, "password": "secret1", "firstName": "Test", "lastName": "User",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func seedCatalog(t *testing.T, db *gorm.DB) (entity.Vendor, entity.Drink) {
	t.Helper()
	v := entity.Vendor{Name: "Brew Haven", Location: "Union"}
	require.NoError(t, db.Create(&v).Error)
	d := entity.Drink{Name: "Cold Brew", Price: 300, VendorID: v.ID}
	require.NoError(t, db.Create(&d).Error)
	return v, d
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	vendor, drink := seedCatalog(t, db)

	token := signupAndLogin(t, r, "u1@example.com")

	// place order: 2 x 3.00 -> 6.51 with tax
	w, env := do(t, r, http.MethodPost, "/api/orders", token, gin.H{
		"vendorId": vendor.ID,
		"items":    []gin.H{{"drinkId": drink.ID, "qty": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var placed struct {
		OrderID uint   `json:"orderId"`
		Status  string `json:"status"`
		Total   int64  `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &placed))
	assert.Equal(t, "Pending", placed.Status)
	assert.Equal(t, int64(651), placed.Total)

	// order history
	w, env = do(t, r, http.MethodGet, "/api/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Count)

	// detail
	w, env = do(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", placed.OrderID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Items []entity.OrderItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	require.Len(t, detail.Items, 1)
	assert.Equal(t, 2, detail.Items[0].Qty)
}

func TestOrdersRequireBearerToken(t *testing.T) {
	r, _ := newTestServer(t)

	w, env := do(t, r, http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)

	w, _ = do(t, r, http.MethodPost, "/api/orders", "not-a-token", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStatusUpdateOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	vendor, drink := seedCatalog(t, db)

	userToken := signupAndLogin(t, r, "u1@example.com")
	adminToken := signupAndLogin(t, r, "admin@example.com")

	var admin entity.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	require.NoError(t, db.Create(&entity.VendorAdmin{UserID: admin.ID, VendorID: vendor.ID}).Error)

	w, env := do(t, r, http.MethodPost, "/api/orders", userToken, gin.H{
		"vendorId": vendor.ID,
		"items":    []gin.H{{"drinkId": drink.ID, "qty": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var placed struct {
		OrderID uint `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &placed))
	statusPath := fmt.Sprintf("/api/orders/%d/status", placed.OrderID)

	// not a vendor admin
	w, _ = do(t, r, http.MethodPut, statusPath, userToken, gin.H{"status": "Confirmed"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// unknown status
	w, env = do(t, r, http.MethodPut, statusPath, adminToken, gin.H{"status": "Shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)

	// valid transition
	w, _ = do(t, r, http.MethodPut, statusPath, adminToken, gin.H{"status": "Confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)

	// purchaser got a status_update notification
	w, env = do(t, r, http.MethodGet, "/api/notifications", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Count)
}

func TestVendorNotificationFeedOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	vendor, drink := seedCatalog(t, db)

	userToken := signupAndLogin(t, r, "u1@example.com")
	adminToken := signupAndLogin(t, r, "admin@example.com")

	var admin entity.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	require.NoError(t, db.Create(&entity.VendorAdmin{UserID: admin.ID, VendorID: vendor.ID}).Error)

	w, _ := do(t, r, http.MethodPost, "/api/orders", userToken, gin.H{
		"vendorId": vendor.ID,
		"items":    []gin.H{{"drinkId": drink.ID, "qty": 1}},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	feedPath := fmt.Sprintf("/api/vendors/%d/notifications", vendor.ID)

	// not a vendor admin
	w, _ = do(t, r, http.MethodGet, feedPath, userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, env := do(t, r, http.MethodGet, feedPath, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, env.Count)
	var feed []entity.Notification
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	assert.Equal(t, entity.NotificationNewOrder, feed[0].Type)
	assert.False(t, feed[0].IsRead)

	readPath := fmt.Sprintf("%s/%d/read", feedPath, feed[0].ID)
	w, _ = do(t, r, http.MethodPut, readPath, userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, r, http.MethodPut, readPath, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodGet, feedPath, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &feed))
	require.Len(t, feed, 1)
	assert.True(t, feed[0].IsRead)
}

func TestVendorEndpointsOverHTTP(t *testing.T) {
	r, db := newTestServer(t)
	vendor, _ := seedCatalog(t, db)

	w, env := do(t, r, http.MethodGet, "/api/vendors", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.Count)

	w, env = do(t, r, http.MethodGet, fmt.Sprintf("/api/vendors/%d/menu", vendor.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var menu struct {
		Vendor entity.Vendor  `json:"vendor"`
		Menu   []entity.Drink `json:"menu"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &menu))
	assert.Equal(t, vendor.ID, menu.Vendor.ID)
	require.Len(t, menu.Menu, 1)

	w, env = do(t, r, http.MethodGet, "/api/vendors/9999/menu", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestLogoutRevokesTokenOverHTTP(t *testing.T) {
	r, _ := newTestServer(t)

	token := signupAndLogin(t, r, "u1@example.com")

	w, _ := do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "session revoked", env.Message)
}
