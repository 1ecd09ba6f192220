package runner_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/selimozcann/ReflectHunter/internal/httpclient"
	"github.com/selimozcann/ReflectHunter/internal/model"
	"github.com/selimozcann/ReflectHunter/internal/runner"
	"github.com/selimozcann/ReflectHunter/internal/scanner"
)

func newRunner(t *testing.T, cfg runner.Config) *runner.Runner {
	t.Helper()
	client := httpclient.New(httpclient.Config{Timeout: 5 * time.Second})
	return runner.New(cfg, scanner.New(client, zerolog.Nop()), zerolog.Nop())
}

func TestRunPairsOutcomesByIndex(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, r.URL.Query().Get("x"))
	})
	mux.HandleFunc("/static", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "static page")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	targets := []string{
		srv.URL + "/echo?x=%3Cb%3Ehit%3C%2Fb%3E",
		srv.URL + "/static?x=%3Cb%3Ehit%3C%2Fb%3E",
		"://not-a-url",
		srv.URL + "/static",
		"http://127.0.0.1:1/unreachable",
		srv.URL + "/echo?x=%3Ci%3Etwo%3C%2Fi%3E",
	}
	wantKinds := []model.Kind{
		model.KindReflected,
		model.KindNotReflected,
		model.KindFailed,
		model.KindNotReflected,
		model.KindFailed,
		model.KindReflected,
	}

	for _, threads := range []int{1, 3, 10} {
		threads := threads
		t.Run(fmt.Sprintf("threads=%d", threads), func(t *testing.T) {
			r := newRunner(t, runner.Config{Threads: threads})
			out := r.Run(context.Background(), targets)

			if len(out) != len(targets) {
				t.Fatalf("expected %d outcomes, got %d", len(targets), len(out))
			}
			for i, o := range out {
				if o.Target != targets[i] {
					t.Errorf("outcome %d paired with %q, want %q", i, o.Target, targets[i])
				}
				if o.Kind != wantKinds[i] {
					t.Errorf("outcome %d kind = %d, want %d (err %v)", i, o.Kind, wantKinds[i], o.Err)
				}
			}
			if out[0].Tag != "<b>hit</b>" {
				t.Errorf("outcome 0 tag = %q", out[0].Tag)
			}
			if out[5].Tag != "<i>two</i>" {
				t.Errorf("outcome 5 tag = %q", out[5].Tag)
			}
		})
	}
}

func TestRunBoundsConcurrency(t *testing.T) {
	var mu sync.Mutex
	inFlight, maxInFlight := 0, 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()

		time.Sleep(25 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	for _, k := range []int{1, 3} {
		k := k
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			mu.Lock()
			inFlight, maxInFlight = 0, 0
			mu.Unlock()

			targets := make([]string, 12)
			for i := range targets {
				targets[i] = fmt.Sprintf("%s/p%d", srv.URL, i)
			}

			r := newRunner(t, runner.Config{Threads: k})
			out := r.Run(context.Background(), targets)
			if len(out) != len(targets) {
				t.Fatalf("expected %d outcomes, got %d", len(targets), len(out))
			}

			mu.Lock()
			observed := maxInFlight
			mu.Unlock()
			if observed > k {
				t.Fatalf("observed %d requests in flight, limit was %d", observed, k)
			}
		})
	}
}

func TestRunEmptyInput(t *testing.T) {
	r := newRunner(t, runner.Config{Threads: 5})
	out := r.Run(context.Background(), nil)
	if len(out) != 0 {
		t.Fatalf("expected no outcomes, got %d", len(out))
	}
}

func TestRunWithRateLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer srv.Close()

	targets := []string{srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"}
	r := newRunner(t, runner.Config{Threads: 3, RateLimit: 1000})
	out := r.Run(context.Background(), targets)

	if len(out) != len(targets) {
		t.Fatalf("expected %d outcomes, got %d", len(targets), len(out))
	}
	for i, o := range out {
		if o.Kind != model.KindNotReflected {
			t.Errorf("outcome %d kind = %d, want not reflected", i, o.Kind)
		}
	}
}
