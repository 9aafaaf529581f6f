package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUploadURLEndpoint(t *testing.T) {
	ts := newTestServices()
	ts.storage.uploadURL = "https://bucket.s3.test/signed-put"
	token := signTestToken(t, primitive.NewObjectID().Hex(), "u1")

	body := map[string]string{"fileName": "squat.mp4", "contentType": "video/mp4"}
	rec := ts.do(t, http.MethodPost, "/media/video-upload-url", body, bearer(token))

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "https://bucket.s3.test/signed-put", resp["uploadUrl"])

	key, ok := resp["objectKey"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(key, "exercise-videos/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))
	assert.Equal(t, "video/mp4", ts.storage.lastContentType)
}

func TestNewUploadURLRejectsNonVideo(t *testing.T) {
	ts := newTestServices()
	token := signTestToken(t, primitive.NewObjectID().Hex(), "u1")

	body := map[string]string{"fileName": "doc.pdf", "contentType": "application/pdf"}
	rec := ts.do(t, http.MethodPost, "/media/video-upload-url", body, bearer(token))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errs := fieldErrorsOf(t, rec)
	assert.Equal(t, "must be a video content type", errs["contentType"])
}

func TestUploadURLRequiresAuth(t *testing.T) {
	ts := newTestServices()

	body := map[string]string{"fileName": "squat.mp4", "contentType": "video/mp4"}
	rec := ts.do(t, http.MethodPost, "/media/video-upload-url", body, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDownloadURLEndpoint(t *testing.T) {
	ts := newTestServices()
	ts.storage.downloadURL = "https://bucket.s3.test/signed-get"
	token := signTestToken(t, primitive.NewObjectID().Hex(), "u1")

	rec := ts.do(t, http.MethodGet, "/media/video-url?key=exercise-videos/abc.mp4", nil, bearer(token))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://bucket.s3.test/signed-get", decodeBody(t, rec)["downloadUrl"])
	assert.Equal(t, "exercise-videos/abc.mp4", ts.storage.lastObjectKey)
}

func TestDownloadURLRequiresKey(t *testing.T) {
	ts := newTestServices()
	token := signTestToken(t, primitive.NewObjectID().Hex(), "u1")

	rec := ts.do(t, http.MethodGet, "/media/video-url", nil, bearer(token))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
