package uploads_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hirestack/go-interview-server/uploads"
)

func testFiles() []uploads.File {
	return []uploads.File{
		{Filename: "jane_doe_cv.pdf", Content: strings.NewReader("pdf bytes")},
		{Filename: "john_smith_cv.pdf", Content: strings.NewReader("more pdf bytes")},
	}
}

func TestClient_SubmitEmptyFilesFailsBeforeNetwork(t *testing.T) {
	var requests atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer ts.Close()

	client := uploads.NewClient(ts.URL)

	_, err := client.Submit(context.Background(), nil, "")
	var validationErr *uploads.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, int32(0), requests.Load())
}

func TestClient_Submit(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/candidates/uploads", r.URL.Path)
		require.Equal(t, "Bearer hr-token-1", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "42", r.FormValue("jobId"))
		require.Len(t, r.MultipartForm.File["files"], 2)
		require.Equal(t, "jane_doe_cv.pdf", r.MultipartForm.File["files"][0].Filename)

		w.WriteHeader(http.StatusAccepted)
		_ = json.NewEncoder(w).Encode(uploads.Batch{
			UploadID: "upload-1",
			Status:   uploads.StatusPending,
			Items: []uploads.Item{
				{ID: "item-1", Filename: "jane_doe_cv.pdf", Status: uploads.StatusPending},
				{ID: "item-2", Filename: "john_smith_cv.pdf", Status: uploads.StatusPending},
			},
		})
	}))
	defer ts.Close()

	client := uploads.NewClient(ts.URL, uploads.WithTokenSource(func() string { return "hr-token-1" }))

	batch, err := client.Submit(context.Background(), testFiles(), "42")
	require.NoError(t, err)
	require.Equal(t, "upload-1", batch.UploadID)
	require.Equal(t, uploads.StatusPending, batch.Status)
	require.Len(t, batch.Items, 2)
}

func TestClient_SubmitWithoutTokenOmitsAuthorization(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(uploads.Batch{UploadID: "upload-1", Status: uploads.StatusPending})
	}))
	defer ts.Close()

	client := uploads.NewClient(ts.URL)

	_, err := client.Submit(context.Background(), testFiles(), "")
	require.NoError(t, err)
}

func TestClient_SubmitNonSuccessCarriesBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded for this job", http.StatusUnprocessableEntity)
	}))
	defer ts.Close()

	client := uploads.NewClient(ts.URL)

	_, err := client.Submit(context.Background(), testFiles(), "")
	var uploadErr *uploads.UploadError
	require.ErrorAs(t, err, &uploadErr)
	require.Equal(t, http.StatusUnprocessableEntity, uploadErr.StatusCode)
	require.Equal(t, "quota exceeded for this job", uploadErr.Message)
	require.Equal(t, "quota exceeded for this job", uploadErr.Error())
}

func TestClient_FetchStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/candidates/uploads/upload-7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(uploads.Batch{
			UploadID: "upload-7",
			Status:   uploads.StatusProcessing,
		})
	}))
	defer ts.Close()

	client := uploads.NewClient(ts.URL)

	batch, err := client.FetchStatus(context.Background(), "upload-7")
	require.NoError(t, err)
	require.Equal(t, uploads.StatusProcessing, batch.Status)
	require.False(t, batch.Status.Terminal())
}

func TestClient_FetchStatusNonSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upload not found", http.StatusNotFound)
	}))
	defer ts.Close()

	client := uploads.NewClient(ts.URL)

	_, err := client.FetchStatus(context.Background(), "missing")
	var statusErr *uploads.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	require.Equal(t, "upload not found", statusErr.Message)
}

func TestStatus_Terminal(t *testing.T) {
	require.False(t, uploads.StatusPending.Terminal())
	require.False(t, uploads.StatusProcessing.Terminal())
	require.True(t, uploads.StatusCompleted.Terminal())
	require.True(t, uploads.StatusCompletedWithErrors.Terminal())
	require.True(t, uploads.StatusFailed.Terminal())
}
