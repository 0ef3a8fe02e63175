package nmtapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"release-management-service/internal/config"
	"release-management-service/internal/core/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	return newTestClientWithTimeout(t, 5*time.Second, handler)
}

func newTestClientWithTimeout(t *testing.T, timeout time.Duration, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&config.BackendConfig{URL: srv.URL + "/api/", Timeout: timeout})
}

// trickle writes n chunks of size bytes with gap between them.
func trickle(w http.ResponseWriter, n, size int, gap time.Duration) {
	chunk := strings.Repeat("x", size)
	flusher, _ := w.(http.Flusher)
	for i := 0; i < n; i++ {
		_, _ = w.Write([]byte(chunk))
		if flusher != nil {
			flusher.Flush()
		}
		time.Sleep(gap)
	}
}

func TestClient_UsesContextToken(t *testing.T) {
	var auth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "/api/language-pairs", r.URL.Path)
		_, _ = w.Write([]byte(`[{"lang_pair_id":1,"source_language_code":"en","target_language_code":"vi"}]`))
	})
	c.token = "static"

	ctx := domain.WithAccessToken(context.Background(), "session-token")
	pairs, err := c.ListLanguagePairs(ctx)

	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Equal(t, "en", pairs[0].SourceLanguageCode)
	assert.Equal(t, "Bearer session-token", auth)

	_, err = c.ListLanguagePairs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer static", auth)
}

func TestClient_ForwardsRequestID(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.ListLanguagePairs(domain.WithRequestID(context.Background(), "req-42"))
	require.NoError(t, err)
	assert.Equal(t, "req-42", got)

	_, err = c.ListLanguagePairs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		target error
		detail string
	}{
		{"not found detail", http.StatusNotFound, `{"detail":"Model version not found"}`, domain.ErrNotFound, "Model version not found"},
		{"validation list", http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","testset_id"],"msg":"field required"}]}`, domain.ErrInvalidRequest, "testset_id: field required"},
		{"message field", http.StatusConflict, `{"message":"already exists"}`, domain.ErrConflict, "already exists"},
		{"error field", http.StatusForbidden, `{"error":"nope"}`, domain.ErrUnauthorized, "nope"},
		{"html body", http.StatusBadGateway, `<html>bad gateway</html>`, domain.ErrBackendUnavailable, "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.GetModelVersion(context.Background(), 9)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, tt.detail, err.Error())

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	c := NewClient(&config.BackendConfig{URL: "http://127.0.0.1:1", Timeout: time.Second})

	_, err := c.GetDashboardStats(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

func TestClient_SlowDownloadIsNotCutOff(t *testing.T) {
	c := newTestClientWithTimeout(t, 250*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		trickle(w, 5, 1024, 100*time.Millisecond)
	})

	dl, err := c.DownloadEvaluationOutput(context.Background(), 17, domain.OutputTypeFinetuned)
	require.NoError(t, err)
	defer dl.Body.Close()

	n, err := io.Copy(io.Discard, dl.Body)
	require.NoError(t, err)
	assert.Equal(t, int64(5*1024), n)
}

func TestClient_DownloadHeadersTimeout(t *testing.T) {
	c := newTestClientWithTimeout(t, 100*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := c.DownloadEvaluationOutput(context.Background(), 17, domain.OutputTypeFinetuned)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_JSONCallTimeout(t *testing.T) {
	c := newTestClientWithTimeout(t, 100*time.Millisecond, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	_, err := c.GetDashboardStats(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_BulkDeleteSendsAllIDsInOneRequest(t *testing.T) {
	var calls int32
	var got bulkDeleteRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/evaluations/bulk-delete", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"deleted_count":3}`))
	})

	n, err := c.BulkDeleteEvaluations(context.Background(), []int64{4, 8, 15})

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, []int64{4, 8, 15}, got.JobIDs)
}

func TestClient_DeleteEvaluationsByDate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-01-31", r.URL.Query().Get("end_date"))
		_, _ = w.Write([]byte(`{"deleted_count":12}`))
	})

	n, err := c.DeleteEvaluationsByDate(context.Background(), domain.DateRange{
		Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestClient_ListEvaluationsQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "0", q.Get("skip"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.Equal(t, "5", q.Get("version_id"))
		assert.Equal(t, "FAILED", q.Get("status"))
		_, _ = w.Write([]byte(`{"items":[{"job_id":1,"status":"FAILED"}],"total":41}`))
	})

	page, err := c.ListEvaluations(context.Background(), domain.EvaluationFilter{
		VersionID: 5,
		Status:    domain.EvaluationStatusFailed,
	})
	require.NoError(t, err)
	assert.Equal(t, 41, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, domain.EvaluationStatusFailed, page.Items[0].Status)
}

func TestClient_CreateModelVersionMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "3", r.FormValue("lang_pair_id"))
		assert.Equal(t, "v2.1", r.FormValue("version"))
		assert.Equal(t, "2026-10-01", r.FormValue("release_date"))

		f, hdr, err := r.FormFile("model_file")
		require.NoError(t, err)
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, "model.bin", hdr.Filename)
		assert.Equal(t, "weights", string(body))

		_, _, err = r.FormFile("hparams_file")
		assert.Error(t, err)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"version_id":11,"lang_pair_id":3,"version":"v2.1","model_file_name":"model.bin"}`))
	})

	release := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	mv, err := c.CreateModelVersion(context.Background(), domain.ModelVersionInput{
		LangPairID:  3,
		Version:     "v2.1",
		ReleaseDate: &release,
		Files: []domain.FileUpload{
			{Field: domain.FileTypeModel.FormField(), FileName: "model.bin", Content: strings.NewReader("weights")},
			{Field: domain.FileTypeHparams.FormField(), FileName: "hparams.yaml"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), mv.ID)
	assert.True(t, mv.HasFile(domain.FileTypeModel))
}

func TestClient_DownloadFileName(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/model-versions/") {
			w.Header().Set("Content-Disposition", `attachment; filename="en-vi.v2.bin"`)
		}
		_, _ = w.Write([]byte("payload"))
	})

	dl, err := c.DownloadModelFile(context.Background(), 2, domain.FileTypeModel)
	require.NoError(t, err)
	defer dl.Body.Close()
	assert.Equal(t, "en-vi.v2.bin", dl.FileName)

	dl2, err := c.DownloadEvaluationOutput(context.Background(), 17, domain.OutputTypeFinetuned)
	require.NoError(t, err)
	defer dl2.Body.Close()
	assert.Equal(t, "evaluation_17_finetuned.txt", dl2.FileName)
	body, _ := io.ReadAll(dl2.Body)
	assert.Equal(t, "payload", string(body))
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Incorrect username or password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"jwt","token_type":"bearer"}`))
	})
	c.token = "static"

	tok, err := c.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", tok)

	_, err = c.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Incorrect username or password", err.Error())
}

func TestClient_GetEvaluationContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/evaluations/5/content", r.URL.Path)
		assert.Equal(t, "reference", r.URL.Query().Get("output_type"))
		_, _ = w.Write([]byte(`{"content":"line one\nline two"}`))
	})

	content, err := c.GetEvaluationContent(context.Background(), 5, domain.OutputTypeReference)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", content)
}

func TestClient_DeleteNoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.DeleteSQEResult(context.Background(), 3))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "fallback", fileName("", "fallback"))
	assert.Equal(t, "fallback", fileName("attachment", "fallback"))
	assert.Equal(t, "fallback", fileName("%%%", "fallback"))
	assert.Equal(t, "a.txt", fileName(`attachment; filename=a.txt`, "fallback"))
}
