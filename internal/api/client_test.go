package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newBackend serves a minimal slice of the real API for client tests.
func newBackend(t *testing.T) (*gin.Engine, *Client, *int) {
	t.Helper()

	router := gin.New()
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	unauthorized := 0
	client := New(Config{
		BaseURL:        srv.URL,
		OnUnauthorized: func() { unauthorized++ },
	})
	return router, client, &unauthorized
}

func TestBearerHeaderAttached(t *testing.T) {
	router, client, _ := newBackend(t)

	var gotAuth string
	router.GET("/api/v1/auth/me", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   gin.H{"user": gin.H{"id": "1", "name": "Ann", "role": "teacher"}},
		})
	})

	client.SetAuthToken("t1")
	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer t1", gotAuth)
	assert.Equal(t, "Ann", user.Name)
}

func TestNoStaleTokenAfterClear(t *testing.T) {
	router, client, _ := newBackend(t)

	var gotAuth *string
	router.GET("/api/v1/auth/me", func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		gotAuth = &h
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   gin.H{"user": gin.H{"id": "1"}},
		})
	})

	client.SetAuthToken("t1")
	client.SetAuthToken("")

	_, err := client.Me(context.Background())
	require.NoError(t, err)
	require.NotNil(t, gotAuth)
	assert.Empty(t, *gotAuth, "request after SetAuthToken(\"\") must carry no credential")
}

func TestUnauthorizedFiresHookAndReturnsMessage(t *testing.T) {
	router, client, unauthorized := newBackend(t)

	router.GET("/api/v1/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
	})

	client.SetAuthToken("expired")
	_, err := client.Me(context.Background())

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "invalid credentials", Message(err))
	assert.Equal(t, 1, *unauthorized, "401 must invoke the hook exactly once")
}

func TestServerErrorDoesNotFireHook(t *testing.T) {
	router, client, unauthorized := newBackend(t)

	router.GET("/api/v1/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "boom"})
	})

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, 0, *unauthorized)
}

func TestTransportErrorPropagates(t *testing.T) {
	client := New(Config{BaseURL: "http://127.0.0.1:1"})

	_, err := client.Me(context.Background())
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
}

func TestLoginParsesTokenAndUser(t *testing.T) {
	router, client, _ := newBackend(t)

	router.POST("/api/v1/auth/login", func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		assert.NoError(t, c.ShouldBindJSON(&req))
		assert.Equal(t, "a@x.com", req.Email)

		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"token":  "t1",
			"data":   gin.H{"user": gin.H{"id": "1", "name": "Ann", "role": "teacher"}},
		})
	})

	res, err := client.Login(context.Background(), "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "t1", res.Token)
	require.NotNil(t, res.User)
	assert.Equal(t, "teacher", res.User.Role)
}

func TestLoginWithoutTokenIsMalformed(t *testing.T) {
	router, client, _ := newBackend(t)

	router.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})

	_, err := client.Login(context.Background(), "a@x.com", "secret123")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestLoginWithoutEmbeddedUser(t *testing.T) {
	router, client, _ := newBackend(t)

	router.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "token": "t1"})
	})

	res, err := client.Login(context.Background(), "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "t1", res.Token)
	assert.Nil(t, res.User)
}

func TestUserAcceptsMongoID(t *testing.T) {
	router, client, _ := newBackend(t)

	router.GET("/api/v1/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data":   gin.H{"user": gin.H{"_id": "abc123", "name": "Ann"}},
		})
	})

	user, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", user.ID)
}

func TestListQuestionPapers(t *testing.T) {
	router, client, _ := newBackend(t)

	router.GET("/api/v1/question-papers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "success",
			"data": gin.H{"questionPapers": []gin.H{
				{"_id": "p1", "title": "Algebra Basics", "subject": "Math", "totalMarks": 50},
			}},
		})
	})

	papers, err := client.ListQuestionPapers(context.Background())
	require.NoError(t, err)
	require.Len(t, papers, 1)
	assert.Equal(t, "p1", papers[0].ID)
	assert.Equal(t, "Algebra Basics", papers[0].Title)
}

func TestExportURL(t *testing.T) {
	client := New(Config{BaseURL: "https://example.test/"})
	assert.Equal(t,
		"https://example.test/api/v1/question-papers/p1/export",
		client.ExportURL("p1"))
}
