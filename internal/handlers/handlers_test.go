package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/novaet12/teamsync/internal/auth"
	"github.com/novaet12/teamsync/internal/config"
	"github.com/novaet12/teamsync/internal/models"
	"github.com/novaet12/teamsync/internal/router"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestRouter wires the real router against an in-memory SQLite database.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, auth.InitJWTSecret())

	gin.SetMode(gin.TestMode)

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Task{},
		&models.Message{},
		&models.PrivateMessage{},
	))

	cfg := &config.Config{
		UploadDir:          t.TempDir(),
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}

	return router.New(database, cfg), database
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doRawJSON sends a verbatim JSON payload, for malformed-body cases the typed
// helper cannot produce.
func doRawJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// signup registers a user through the multipart endpoint and returns the
// issued token and user ID.
func signup(t *testing.T, r *gin.Engine, email, username string) (string, uint) {
	t.Helper()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("email", email))
	require.NoError(t, form.WriteField("password", "password123"))
	require.NoError(t, form.WriteField("username", username))
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/signup", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, "signup failed: %s", w.Body.String())

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	userID, _ := body["userId"].(float64)
	require.NotZero(t, userID)

	return token, uint(userID)
}

// makeManager signs a user up and assigns the manager role, returning the
// token, the minted referral code and the user ID.
func makeManager(t *testing.T, r *gin.Engine, email, username string) (string, string, uint) {
	t.Helper()

	token, id := signup(t, r, email, username)

	w := doJSON(t, r, http.MethodPost, "/api/set-role", token, gin.H{"role": "manager"})
	require.Equal(t, http.StatusOK, w.Code, "set-role failed: %s", w.Body.String())

	code, _ := decodeBody(t, w)["referralCode"].(string)
	require.NotEmpty(t, code)

	return token, code, id
}

// makeMember signs a user up and attaches them to the manager owning the
// given referral code.
func makeMember(t *testing.T, r *gin.Engine, email, username, referralCode string) (string, uint) {
	t.Helper()

	token, id := signup(t, r, email, username)

	w := doJSON(t, r, http.MethodPost, "/api/set-role", token,
		gin.H{"role": "member", "referralCode": referralCode})
	require.Equal(t, http.StatusOK, w.Code, "set-role failed: %s", w.Body.String())

	return token, id
}
