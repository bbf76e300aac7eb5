package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vadiminshakov/coinreport/config"
	"github.com/vadiminshakov/coinreport/internal/clients"
	"github.com/vadiminshakov/coinreport/internal/services/pricer"
)

const testWallet = `{
	"coin": "btc",
	"transactions": [
		{"txid": "t1", "blockTime": 1706746200, "type": "recv", "amount": "1.0", "fee": "0.001"},
		{"txid": "t2", "blockTime": 1706832600, "type": "sent", "amount": "0.4", "fee": "0.002"},
		{"txid": "t3", "blockTime": 1706919000, "type": "recv", "amount": "0.5", "fee": "0.003"}
	]
}`

// stubProvider mimics the two provider endpoints with fixed prices.
func stubProvider(t *testing.T) *httptest.Server {
	t.Helper()
	pricesByDate := map[string]string{
		"01-02-2024": "100",
		"02-02-2024": "120",
		"03-02-2024": "90",
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/simple/price":
			w.Write([]byte(`{"bitcoin":{"usd":110}}`))
		case strings.HasPrefix(r.URL.Path, "/coins/bitcoin/history"):
			price, ok := pricesByDate[r.URL.Query().Get("date")]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write([]byte(`{"market_data":{"current_price":{"usd":` + price + `}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func testConfig(t *testing.T, providerURL, walletJSON string) config.Config {
	t.Helper()
	dir := t.TempDir()
	file := filepath.Join(dir, "wallet.json")
	require.NoError(t, os.WriteFile(file, []byte(walletJSON), 0o644))
	return config.Config{
		File:             file,
		Currency:         "usd",
		Out:              dir,
		ProviderURL:      providerURL,
		Retries:          3,
		RetryCooldown:    1 * time.Millisecond,
		ThrottleEvery:    5,
		ThrottleCooldown: 1 * time.Millisecond,
	}
}

func TestAnalyzer_Run(t *testing.T) {
	srv := stubProvider(t)
	defer srv.Close()

	cfg := testConfig(t, srv.URL, testWallet)
	require.NoError(t, NewAnalyzer(cfg, zap.NewNop()).Run(context.Background()))

	summaryPath := filepath.Join(cfg.Out, "btc_data", "btc_summary_output.json")
	raw, err := os.ReadFile(summaryPath)
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal(raw, &summary))
	require.Equal(t, "btc", summary["coin"])
	require.Equal(t, "1.1", summary["balance"])
	require.Equal(t, "145", summary["total_cost"])
	require.Equal(t, "121", summary["current_value"])

	plot, err := os.ReadFile(filepath.Join(cfg.Out, "btc_data", "btc_all_in_one_plot.png"))
	require.NoError(t, err)
	require.NotEmpty(t, plot)
}

func TestAnalyzer_IdenticalRunsProduceIdenticalSummaries(t *testing.T) {
	srv := stubProvider(t)
	defer srv.Close()

	cfgA := testConfig(t, srv.URL, testWallet)
	require.NoError(t, NewAnalyzer(cfgA, zap.NewNop()).Run(context.Background()))
	cfgB := testConfig(t, srv.URL, testWallet)
	require.NoError(t, NewAnalyzer(cfgB, zap.NewNop()).Run(context.Background()))

	a, err := os.ReadFile(filepath.Join(cfgA.Out, "btc_data", "btc_summary_output.json"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(cfgB.Out, "btc_data", "btc_summary_output.json"))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestAnalyzer_MalformedInputWritesNothing(t *testing.T) {
	srv := stubProvider(t)
	defer srv.Close()

	cfg := testConfig(t, srv.URL, `{"coin": "btc"}`)
	err := NewAnalyzer(cfg, zap.NewNop()).Run(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(cfg.Out, "btc_data"))
	require.True(t, os.IsNotExist(statErr), "no output directory may be created on failure")
}

func TestAnalyzer_SpotPriceFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL, testWallet)
	err := NewAnalyzer(cfg, zap.NewNop()).Run(context.Background())
	require.ErrorIs(t, err, clients.ErrUnavailable)

	_, statErr := os.Stat(filepath.Join(cfg.Out, "btc_data"))
	require.True(t, os.IsNotExist(statErr))
}

func TestAnalyzer_RateLimitExhaustionAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/simple/price" {
			w.Write([]byte(`{"bitcoin":{"usd":110}}`))
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cfg := testConfig(t, srv.URL, testWallet)
	err := NewAnalyzer(cfg, zap.NewNop()).Run(context.Background())
	require.ErrorIs(t, err, pricer.ErrRateLimitExceeded)

	_, statErr := os.Stat(filepath.Join(cfg.Out, "btc_data"))
	require.True(t, os.IsNotExist(statErr))
}
