package playground

import (
	"encoding/json"
	"math/big"
	"strings"
)

// Request is a ready-to-send descriptor for one submission.
type Request struct {
	Endpoint Endpoint
	Method   string
	Path     string
	Body     map[string]any // nil for GET endpoints
}

// Build assembles the request for name from raw form values.
// Body keys are exactly the endpoint's fields: missing values become empty
// strings, integer fields that do not parse become null. Values are not
// validated here; see Validate.
func Build(name string, values map[string]string) (Request, error) {
	d, err := Lookup(name)
	if err != nil {
		return Request{}, err
	}

	req := Request{Endpoint: d.Endpoint, Method: d.Method, Path: d.Path}
	if len(d.Fields) == 0 {
		return req, nil
	}

	req.Body = make(map[string]any, len(d.Fields))
	for _, f := range d.Fields {
		raw := values[f.Name]
		if f.Kind == KindInteger {
			if n, ok := parseInt(raw); ok {
				req.Body[f.Name] = n
			} else {
				req.Body[f.Name] = nil
			}
			continue
		}
		req.Body[f.Name] = raw
	}
	return req, nil
}

// Validate checks every field of name against values and returns the first
// failure in form order.
func Validate(name string, values map[string]string) error {
	d, err := Lookup(name)
	if err != nil {
		return err
	}
	for _, f := range d.Fields {
		if err := f.Validate(values[f.Name]); err != nil {
			return err
		}
	}
	return nil
}

// JSON encodes the request body. GET requests have no body.
func (r Request) JSON() ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	return json.Marshal(r.Body)
}

// parseInt reads a leading integer the way browsers parse numeric inputs:
// surrounding whitespace is skipped, a sign and a 0x prefix are honored, and
// trailing garbage after the digits is ignored.
func parseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, ok := new(big.Int).SetString(s[:end], base)
	if !ok || !n.IsInt64() {
		return 0, false
	}
	v := n.Int64()
	if neg {
		v = -v
	}
	return v, true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f', base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
