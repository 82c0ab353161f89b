package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/you/go-tickets-report/internal/config"
	"github.com/you/go-tickets-report/internal/timezone"
)

func testConfig() *config.Config {
	return &config.Config{
		CityFrom:    timezone.Vladivostok,
		CityTo:      timezone.TelAviv,
		HTTPTimeout: 5 * time.Second,
		JWTSecret:   "test-secret",
		JWTUser:     "demo",
		JWTPassword: "demo123",
	}
}

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, err := http.Post(srv.URL+"/auth/login", "application/json",
		strings.NewReader(`{"username":"demo","password":"demo123"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func postReport(t *testing.T, srv *httptest.Server, token, query string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/reports"+query, bytes.NewReader(body))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func ticketsDoc(t *testing.T) []byte {
	t.Helper()
	raw, err := os.ReadFile("../sources/testdata/tickets.json")
	require.NoError(t, err)
	return raw
}

type reportBody struct {
	Matched  int `json:"matched"`
	Carriers []struct {
		Carrier       string `json:"carrier"`
		MinFlightTime string `json:"min_flight_time"`
	} `json:"carriers"`
	Prices struct {
		Mean   float64 `json:"mean"`
		Median float64 `json:"median"`
		OK     bool    `json:"ok"`
	} `json:"prices"`
}

func TestReport_RequiresToken(t *testing.T) {
	srv := httptest.NewServer(Routes(testConfig(), nil))
	defer srv.Close()

	resp := postReport(t, srv, "", "", ticketsDoc(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp2 := postReport(t, srv, "not-a-token", "", ticketsDoc(t))
	defer resp2.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestReport_JSON(t *testing.T) {
	srv := httptest.NewServer(Routes(testConfig(), nil))
	defer srv.Close()
	tok := login(t, srv)

	resp := postReport(t, srv, tok, "", ticketsDoc(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got reportBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Equal(t, 2, got.Matched)
	require.Len(t, got.Carriers, 2)
	require.Equal(t, "S7", got.Carriers[0].Carrier)
	require.Equal(t, "13:30", got.Carriers[0].MinFlightTime)
	require.Equal(t, "TK", got.Carriers[1].Carrier)
	require.Equal(t, "12:50", got.Carriers[1].MinFlightTime)
	require.Equal(t, 12750.0, got.Prices.Mean)
	require.True(t, got.Prices.OK)
}

func TestReport_Text(t *testing.T) {
	srv := httptest.NewServer(Routes(testConfig(), nil))
	defer srv.Close()

	resp := postReport(t, srv, login(t, srv), "?format=text", ticketsDoc(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), "TK:   12:50")
	require.Contains(t, string(raw), "Difference between mean price and median: 0.00")
}

func TestReport_BadJSON(t *testing.T) {
	srv := httptest.NewServer(Routes(testConfig(), nil))
	defer srv.Close()

	resp := postReport(t, srv, login(t, srv), "", []byte("{oops"))
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestReport_MethodNotAllowed(t *testing.T) {
	srv := httptest.NewServer(Routes(testConfig(), nil))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/reports", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login(t, srv))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthz_Public(t *testing.T) {
	srv := httptest.NewServer(Routes(testConfig(), nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReportWS(t *testing.T) {
	srv := httptest.NewServer(Routes(testConfig(), nil))
	defer srv.Close()
	tok := login(t, srv)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/reports?token=" + tok
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, ticketsDoc(t)))
	var got reportBody
	require.NoError(t, conn.ReadJSON(&got))
	require.Equal(t, 2, got.Matched)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	var failure map[string]string
	require.NoError(t, conn.ReadJSON(&failure))
	require.Contains(t, failure["error"], "malformed tickets document")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"tickets":[]}`)))
	var empty reportBody
	require.NoError(t, conn.ReadJSON(&empty))
	require.Zero(t, empty.Matched)
	require.False(t, empty.Prices.OK)
}

func TestReportWS_RequiresToken(t *testing.T) {
	srv := httptest.NewServer(Routes(testConfig(), nil))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/reports"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
