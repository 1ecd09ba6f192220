// Package scanner runs the per-URL pipeline: fetch, decode, extract, check.
package scanner

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/selimozcann/ReflectHunter/internal/decode"
	"github.com/selimozcann/ReflectHunter/internal/extract"
	"github.com/selimozcann/ReflectHunter/internal/model"
)

// Scanner checks single targets for reflected query values. The client is
// shared across all concurrent scans and never mutated by them.
type Scanner struct {
	client *http.Client
	log    zerolog.Logger
}

// New creates a new Scanner around a shared client.
func New(client *http.Client, log zerolog.Logger) *Scanner {
	return &Scanner{client: client, log: log}
}

// Scan fetches target, decodes its query values, and reports whether any
// extracted candidate reappears literally in the response body. It always
// returns exactly one Outcome and never aborts the batch: every failure is
// folded into a KindFailed Outcome for this target alone.
func (s *Scanner) Scan(ctx context.Context, target string) model.Outcome {
	status, code, body, serr := s.fetch(ctx, target)
	if serr != nil {
		s.log.Debug().Str("url", target).Err(serr).Msg("scan failed")
		return model.Outcome{Target: target, Kind: model.KindFailed, Err: serr}
	}

	// The request goes out before the URL is decomposed, matching the
	// fetch -> decode -> extract -> check order: a URL with an
	// undecodable value still costs one request.
	params, serr := decode.Params(target)
	if serr != nil {
		s.log.Debug().Str("url", target).Err(serr).Msg("scan failed")
		return model.Outcome{Target: target, Kind: model.KindFailed, Status: status, StatusCode: code, Err: serr}
	}

	for _, p := range params {
		for _, tag := range extract.Tags(p.Value) {
			if strings.Contains(body, tag) {
				s.log.Debug().Str("url", target).Str("tag", tag).Str("param", p.Key).Msg("reflection found")
				return model.Outcome{Target: target, Kind: model.KindReflected, Tag: tag, Status: status, StatusCode: code}
			}
		}
	}

	s.log.Debug().Str("url", target).Str("status", status).Msg("no reflection")
	return model.Outcome{Target: target, Kind: model.KindNotReflected, Status: status, StatusCode: code}
}

// fetch issues the single GET for a target and reads the whole body. The
// shared client already injects custom headers and follows redirects, so
// the status and body belong to the final response.
func (s *Scanner) fetch(ctx context.Context, target string) (status string, code int, body string, serr *model.ScanError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", 0, "", &model.ScanError{Kind: classifyRequestErr(err), Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", 0, "", &model.ScanError{Kind: model.ErrFetch, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, "", &model.ScanError{Kind: model.ErrFetch, Err: err}
	}
	return resp.Status, resp.StatusCode, string(b), nil
}

// classifyRequestErr separates a malformed target URL from other request
// construction failures.
func classifyRequestErr(err error) model.ErrKind {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Op == "parse" {
		return model.ErrURLParse
	}
	return model.ErrFetch
}
