package vapi

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
)

// Param is a single request parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of request parameters. Order is preserved into
// the query string and the JSON body so request construction stays
// deterministic. Duplicate keys are passed through verbatim; the provider
// decides what they mean.
type Params struct {
	pairs []Param
}

// NewParams creates an empty parameter list.
func NewParams() *Params {
	return &Params{}
}

// Set appends a key/value pair. It never deduplicates.
func (p *Params) Set(key, value string) *Params {
	p.pairs = append(p.pairs, Param{Key: key, Value: value})

	return p
}

// WithLimit appends the provider's "limit" pagination parameter.
func (p *Params) WithLimit(limit int) *Params {
	return p.Set("limit", strconv.Itoa(limit))
}

// WithOffset appends the provider's "offset" pagination parameter.
func (p *Params) WithOffset(offset int) *Params {
	return p.Set("offset", strconv.Itoa(offset))
}

// Len returns the number of pairs.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}

	return len(p.pairs)
}

// Pairs returns the pairs in insertion order.
func (p *Params) Pairs() []Param {
	if p == nil {
		return nil
	}

	return p.pairs
}

// Encode serializes the list as a query string, preserving insertion order.
// Keys and values are percent-escaped individually, exactly once; the
// joined string is never re-escaped. An empty list encodes to "".
func (p *Params) Encode() string {
	if p.Len() == 0 {
		return ""
	}

	var buf bytes.Buffer

	for i, pair := range p.pairs {
		if i > 0 {
			buf.WriteByte('&')
		}

		buf.WriteString(url.QueryEscape(pair.Key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(pair.Value))
	}

	return buf.String()
}

// MarshalJSON serializes the list as a JSON object with keys in insertion
// order. All values are JSON strings, matching the provider's form-style
// API contract.
func (p *Params) MarshalJSON() ([]byte, error) {
	if p.Len() == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, pair := range p.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(pair.Key)
		if err != nil {
			return nil, err
		}

		value, err := json.Marshal(pair.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
