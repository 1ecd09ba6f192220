package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/selimozcann/ReflectHunter/internal/banner"
	"github.com/selimozcann/ReflectHunter/internal/httpclient"
	"github.com/selimozcann/ReflectHunter/internal/logging"
	"github.com/selimozcann/ReflectHunter/internal/model"
	"github.com/selimozcann/ReflectHunter/internal/output"
	"github.com/selimozcann/ReflectHunter/internal/runner"
	"github.com/selimozcann/ReflectHunter/internal/scanner"
	"github.com/selimozcann/ReflectHunter/internal/statuscolor"
)

type headerList []string

type options struct {
	headers   headerList
	urlList   string
	threads   int
	timeout   time.Duration
	rateLimit int
	proxy     string
	insecure  bool
	verbose   bool
	silent    bool
}

func main() {
	opts := parseFlags()
	if !opts.silent {
		banner.PrintBanner()
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "[-] Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.Var(&opts.headers, "H", "Custom HTTP header \"Name: Value\" (repeatable)")
	flag.StringVar(&opts.urlList, "l", "", "File containing URLs (one per line); stdin when omitted")
	flag.IntVar(&opts.threads, "t", 5, "Number of concurrent scans")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-request timeout")
	flag.IntVar(&opts.rateLimit, "rl", 0, "Global rate limit (requests per second)")
	flag.StringVar(&opts.proxy, "proxy", "", "HTTP(S) proxy URL")
	flag.BoolVar(&opts.insecure, "insecure", false, "Skip TLS verification")
	flag.BoolVar(&opts.verbose, "v", false, "Enable verbose diagnostics")
	flag.BoolVar(&opts.silent, "silent", false, "Suppress banner and progress output")
	flag.Parse()
	return opts
}

func run(opts options) error {
	if opts.threads <= 0 {
		return fmt.Errorf("-t must be greater than zero (got %d)", opts.threads)
	}
	if opts.rateLimit < 0 {
		return fmt.Errorf("-rl must be >= 0 (got %d)", opts.rateLimit)
	}
	if opts.timeout <= 0 {
		return fmt.Errorf("-timeout must be > 0 (got %s)", opts.timeout)
	}

	log := logging.New(opts.verbose)

	urls, err := loadTargets(opts.urlList)
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		fmt.Println("No URLs provided. Please either pipe URLs to the program or use the -l option to specify a file.")
		return nil
	}

	headers := toHeader(opts.headers, log)

	var proxyFunc func(*http.Request) (*url.URL, error)
	if opts.proxy != "" {
		proxyURL, perr := url.Parse(opts.proxy)
		if perr != nil {
			return fmt.Errorf("invalid proxy URL: %w", perr)
		}
		proxyFunc = http.ProxyURL(proxyURL)
	}

	client := httpclient.New(httpclient.Config{
		Timeout:  opts.timeout,
		Proxy:    proxyFunc,
		Headers:  headers,
		Insecure: opts.insecure,
	})

	sc := scanner.New(client, log)
	runr := runner.New(runner.Config{Threads: opts.threads, RateLimit: opts.rateLimit}, sc, log)

	log.Debug().Int("urls", len(urls)).Int("threads", opts.threads).Dur("timeout", opts.timeout).Int("headers", len(headers)).Msg("config")

	if !opts.silent {
		fmt.Printf("Starting scan with %d threads for %d URLs\n", opts.threads, len(urls))
	}

	results := runr.Run(context.Background(), urls)
	printResults(results)
	return nil
}

// loadTargets reads the URL list from path, or from stdin when path is
// empty. Lines are trimmed and blank lines skipped.
func loadTargets(path string) ([]string, error) {
	if path == "" {
		return readTargets(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open URL list %q: %w", path, err)
	}
	defer file.Close()
	return readTargets(file)
}

func readTargets(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	var urls []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("URL list read error: %w", err)
	}
	return urls, nil
}

// toHeader converts "Name: Value" strings into the shared header set.
// Entries without a colon are dropped, never fatal: the scan still runs
// with whatever parsed.
func toHeader(headers headerList, log zerolog.Logger) http.Header {
	hdr := make(http.Header)
	for _, h := range headers {
		parts := strings.SplitN(h, ":", 2)
		if len(parts) != 2 {
			log.Debug().Str("header", h).Msg("dropping malformed header")
			continue
		}
		hdr.Add(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}
	return hdr
}

func printResults(results []model.Outcome) {
	for _, res := range results {
		_, _ = statuscolor.ForOutcome(res).Println(output.Line(res))
	}
}

func (h *headerList) String() string {
	return strings.Join(*h, "; ")
}

func (h *headerList) Set(value string) error {
	*h = append(*h, value)
	return nil
}
