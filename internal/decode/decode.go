// Package decode turns a target URL into its ordered query parameters.
package decode

import (
	"net/url"
	"strings"

	"github.com/selimozcann/ReflectHunter/internal/model"
)

// Params parses target and returns its query parameters in appearance
// order, each value percent-decoded exactly once. Keys are never decoded.
// The stdlib url.Values is no use here: it hands back a map, which drops
// the appearance order and the raw value form both required downstream.
func Params(target string) ([]model.Param, *model.ScanError) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, &model.ScanError{Kind: model.ErrURLParse, Err: err}
	}
	if u.RawQuery == "" {
		return nil, nil
	}

	segments := strings.Split(u.RawQuery, "&")
	params := make([]model.Param, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		key, raw, _ := strings.Cut(seg, "=")
		value, err := url.QueryUnescape(raw)
		if err != nil {
			return nil, &model.ScanError{Kind: model.ErrDecoding, Err: err}
		}
		params = append(params, model.Param{Key: key, Raw: raw, Value: value})
	}
	return params, nil
}
