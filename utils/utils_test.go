package utils

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Issue("u1", "admin", "Asha")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "Asha", claims.FirstName)
}

func TestTokenRejected(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, err := m.Issue("u1", "user", "Asha")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenManager("other", time.Hour).Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		old := NewTokenManager("secret", time.Hour)
		old.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		stale, err := old.Issue("u1", "user", "Asha")
		require.NoError(t, err)
		_, err = m.Parse(stale)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter22", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, VerifyPassword(hash, "hunter22"))
	assert.False(t, VerifyPassword(hash, "hunter23"))
}

func fileHeader(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestImageStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := ImageStore{Dir: dir, URLPrefix: "/uploads", MaxBytes: 16}

	url, err := store.Save(fileHeader(t, "bat.PNG", "image/png", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/image-"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestImageStoreRejects(t *testing.T) {
	store := ImageStore{Dir: t.TempDir(), URLPrefix: "/uploads", MaxBytes: 4}

	_, err := store.Save(fileHeader(t, "notes.txt", "text/plain", []byte("hi")))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = store.Save(fileHeader(t, "fake.jpg", "text/html", []byte("hi")))
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = store.Save(fileHeader(t, "big.gif", "image/gif", []byte("too many bytes")))
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestImageStoreRemove(t *testing.T) {
	dir := t.TempDir()
	store := ImageStore{Dir: dir, URLPrefix: "/uploads", MaxBytes: 16}
	url, err := store.Save(fileHeader(t, "ball.gif", "image/gif", []byte("gif")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(url)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Remove(url))
	assert.NoError(t, store.Remove("https://cdn.example.com/ball.gif"))
}
