package backend

import (
	"Meal-Planner-Backend/domain"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		assert.NoError(t, NewClient(srv.URL).Health(context.Background()))
	})

	t.Run("unhealthy status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		var upstream *domain.UpstreamError
		err := NewClient(srv.URL).Health(context.Background())
		require.True(t, errors.As(err, &upstream))
		assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		err := NewClient(url).Health(context.Background())
		assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	})
}

func TestChatForwardsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hi", body["message"])

		_, _ = w.Write([]byte(`{"response":"hello"}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL + "/").Chat(context.Background(), map[string]any{"message": "hi"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"response":"hello"}`, string(res))
}

func TestChatUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Chat(context.Background(), map[string]any{})
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.StatusCode)
	assert.Equal(t, "slow down", upstream.Body)
}

func TestSaveMacrosReturnsRawBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/save-macros", r.URL.Path)
		_, _ = w.Write([]byte("saved"))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).SaveMacros(context.Background(), map[string]any{"username": "alice"})
	require.NoError(t, err)
	assert.Equal(t, "saved", string(res))
}

func TestMacroQueries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/get-user-macros/alice":
			assert.Equal(t, "2024-03-09", r.URL.Query().Get("date"))
		case "/get-user-weekly-macros/alice":
			assert.Equal(t, "2024-03-03", r.URL.Query().Get("start_date"))
			assert.Equal(t, "2024-03-09", r.URL.Query().Get("end_date"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GetUserMacros(context.Background(), "alice", "2024-03-09")
	require.NoError(t, err)
	_, err = c.GetUserWeeklyMacros(context.Background(), "alice", "2024-03-03", "2024-03-09")
	require.NoError(t, err)
}

func TestMultipartUploads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		data, err := io.ReadAll(file)
		require.NoError(t, err)

		assert.Equal(t, "plate.jpg", header.Filename)
		assert.Equal(t, "image/jpeg", header.Header.Get("Content-Type"))
		assert.Equal(t, []byte("jpeg-bytes"), data)

		if r.URL.Path == "/analyze-food-macros" {
			assert.Equal(t, "salad", r.FormValue("food_name"))
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	file := File{FileName: "plate.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")}

	_, err := c.IdentifyIngredients(context.Background(), file)
	require.NoError(t, err)

	file.FieldName = "file"
	_, err = c.AnalyzeFoodMacros(context.Background(), Form{
		Fields: map[string]string{"food_name": "salad"},
		Files:  []File{file},
	})
	require.NoError(t, err)
}

func TestInvalidJSONIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetUserMacros(context.Background(), "alice", "")
	assert.Error(t, err)
}

func TestTimeoutOption(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, WithTimeout(20*time.Millisecond)).Chat(context.Background(), map[string]any{})
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}
