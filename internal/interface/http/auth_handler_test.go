package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(r *gin.Engine, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type sessionBody struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func TestRegister_Success(t *testing.T) {
	r, jwt := newTestRouter(nil)

	w := postJSON(r, "/api/auth/register", gin.H{"email": "a@x.com", "password": "pw1"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var body sessionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	assert.Equal(t, "a@x.com", body.User.Email)
	assert.NotEmpty(t, body.User.ID)

	// Token asserts the registered identity.
	claims, err := jwt.Parse(body.Token)
	require.NoError(t, err)
	assert.Equal(t, body.User.ID, claims.UserID)

	// The password hash never appears in the response.
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_MissingFields(t *testing.T) {
	r, _ := newTestRouter(nil)

	tests := []gin.H{
		{},
		{"email": "a@x.com"},
		{"password": "pw1"},
		{"email": "not-an-email", "password": "pw1"},
	}
	for _, body := range tests {
		w := postJSON(r, "/api/auth/register", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := postJSON(r, "/api/auth/register", gin.H{"email": "a@x.com", "password": "pw1"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Same email, different password and case.
	w = postJSON(r, "/api/auth/register", gin.H{"email": "A@X.com", "password": "other"}, map[string]string{"Accept-Language": "en"})
	require.Equal(t, http.StatusConflict, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Email is already registered", body["message"])
}

func TestLogin_Flow(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := postJSON(r, "/api/auth/register", gin.H{"email": "a@x.com", "password": "pw1"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var registered sessionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))

	// Correct credentials return the same user id.
	w = postJSON(r, "/api/auth/login", gin.H{"email": "a@x.com", "password": "pw1"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logged sessionBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	assert.Equal(t, registered.User.ID, logged.User.ID)

	// Wrong password is a 401.
	w = postJSON(r, "/api/auth/login", gin.H{"email": "a@x.com", "password": "wrong"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown email is the same 401 with the same message.
	w2 := postJSON(r, "/api/auth/login", gin.H{"email": "nobody@x.com", "password": "pw1"}, nil)
	require.Equal(t, http.StatusUnauthorized, w2.Code)
	assert.Equal(t, w.Body.String(), w2.Body.String())
}

func TestLogin_MissingFields_Localized(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := postJSON(r, "/api/auth/login", gin.H{}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Email i lozinka su obavezni", body["message"])

	w = postJSON(r, "/api/auth/login", gin.H{}, map[string]string{"Accept-Language": "en-US,en;q=0.9"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Email and password are required", body["message"])
}
