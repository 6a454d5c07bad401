package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFakeBackend spins up an in-process listing backend with a fixed
// catalog: plot 42 (price 50) and plot 7. Token "tok1" is the only
// accepted bearer credential; "admintok" the only admin one.
func newFakeBackend(t *testing.T) (*httptest.Server, *backendState) {
	t.Helper()

	state := &backendState{}

	r := chi.NewRouter()

	r.Get("/plots", func(w http.ResponseWriter, r *http.Request) {
		state.listCalls++
		writeJSON(w, http.StatusOK, map[string]any{
			"plots": []map[string]any{
				{"id": 42, "name": "Lakeview", "location": "Mysore Road", "address": "Near ring road", "squareFeet": 1200, "price": 50, "image": "a.jpg"},
				{"id": 7, "name": "Sunrise Meadows", "location": "Kanakapura", "address": "Plot 7", "squareFeet": 2400, "price": 80, "image": "b.jpg"},
			},
		})
	})

	r.Get("/plots/{id}", func(w http.ResponseWriter, r *http.Request) {
		state.detailCalls++
		if r.Header.Get("Authorization") != "Bearer tok1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if id != 42 {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"plot": map[string]any{
				"id": 42, "name": "Lakeview", "location": "Mysore Road",
				"address": "Near ring road", "squareFeet": 1200, "price": 50,
				"image": "a.jpg", "images": []string{"a.jpg"},
				"facing": "East", "boundary": "Fenced",
				"description": "Corner plot", "amenities": []string{"water"},
			},
		})
	})

	r.Post("/plots/{id}/interest", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok1" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		var body struct {
			Reference string `json:"reference"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		state.lastReference = body.Reference
		w.WriteHeader(http.StatusCreated)
	})

	r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name, Email, Password string
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email == "taken@b.com" {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "duplicate"})
			return
		}
		if body.Email == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email required"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"user":  map[string]string{"id": "u2", "name": body.Name, "email": body.Email},
			"token": "tok2",
		})
	})

	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email, Password string
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email != "a@b.com" || body.Password != "x" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"user":  map[string]string{"id": "u1", "name": "Alice", "email": "a@b.com"},
			"token": "tok1",
		})
	})

	r.Post("/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email, Password string
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Email != "root@b.com" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": "admintok"})
	})

	r.Get("/admin/interests", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer admintok" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"interests": []map[string]any{
				{"reference": "ref-1", "plotId": 42, "userEmail": "a@b.com", "createdAt": "2026-08-01T10:00:00Z"},
			},
		})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, state
}

type backendState struct {
	listCalls     int
	detailCalls   int
	lastReference string
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func newClient(t *testing.T, baseURL string) *HTTPClient {
	t.Helper()
	c := NewHTTPClient(baseURL, 5*time.Second)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestListPlots_IdempotentRead(t *testing.T) {
	srv, _ := newFakeBackend(t)
	c := newClient(t, srv.URL)

	first, err := c.ListPlots(context.Background())
	require.NoError(t, err)
	second, err := c.ListPlots(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.Equal(t, first, second, "unchanged catalog must yield equal sequences")
}

func TestListPlots_MalformedPayloadRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"plots": []map[string]any{{"id": 0, "name": ""}},
		})
	}))
	t.Cleanup(srv.Close)
	c := newClient(t, srv.URL)

	_, err := c.ListPlots(context.Background())
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestGetPlot_SuccessWithToken(t *testing.T) {
	srv, _ := newFakeBackend(t)
	c := newClient(t, srv.URL)

	plot, err := c.GetPlot(context.Background(), 42, "tok1")
	require.NoError(t, err)
	assert.Equal(t, float64(50), plot.Price)
	assert.Equal(t, "East", plot.Facing)
}

func TestGetPlot_RejectedToken(t *testing.T) {
	srv, _ := newFakeBackend(t)
	c := newClient(t, srv.URL)

	_, err := c.GetPlot(context.Background(), 42, "expired")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetPlot_UnknownID(t *testing.T) {
	srv, _ := newFakeBackend(t)
	c := newClient(t, srv.URL)

	_, err := c.GetPlot(context.Background(), 99, "tok1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogin_ReturnsBackendToken(t *testing.T) {
	srv, _ := newFakeBackend(t)
	c := newClient(t, srv.URL)

	user, token, err := c.Login(context.Background(), "a@b.com", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "tok1", token)
	assert.Equal(t, "a@b.com", user.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv, _ := newFakeBackend(t)
	c := newClient(t, srv.URL)

	_, _, err := c.Login(context.Background(), "a@b.com", []byte("wrong"))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_DuplicateAndValidation(t *testing.T) {
	srv, _ := newFakeBackend(t)
	c := newClient(t, srv.URL)

	_, _, err := c.Register(context.Background(), "Bob", "taken@b.com", []byte("p"))
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	_, _, err = c.Register(context.Background(), "Bob", "", []byte("p"))
	assert.ErrorIs(t, err, ErrValidation)

	user, token, err := c.Register(context.Background(), "Bob", "bob@b.com", []byte("p"))
	require.NoError(t, err)
	assert.Equal(t, "tok2", token)
	assert.Equal(t, "bob@b.com", user.Email)
}

func TestExpressInterest_CarriesReference(t *testing.T) {
	srv, state := newFakeBackend(t)
	c := newClient(t, srv.URL)

	err := c.ExpressInterest(context.Background(), 42, "tok1", "ref-abc")
	require.NoError(t, err)
	assert.Equal(t, "ref-abc", state.lastReference)

	err = c.ExpressInterest(context.Background(), 42, "", "ref-abc")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAdminLoginAndInterests(t *testing.T) {
	srv, _ := newFakeBackend(t)
	c := newClient(t, srv.URL)

	token, err := c.AdminLogin(context.Background(), "root@b.com", []byte("p"))
	require.NoError(t, err)
	require.Equal(t, "admintok", token)

	interests, err := c.ListInterests(context.Background(), token)
	require.NoError(t, err)
	require.Len(t, interests, 1)
	assert.Equal(t, int64(42), interests[0].PlotID)

	_, err = c.ListInterests(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestNetworkFailure_MapsToUnavailable(t *testing.T) {
	srv, _ := newFakeBackend(t)
	url := srv.URL
	srv.Close()
	c := newClient(t, url)

	_, err := c.ListPlots(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestPing_AnyResponseMeansReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := newClient(t, srv.URL)

	assert.NoError(t, c.Ping(context.Background()))
}
