package recognizer

import (
	"encoding/json"
	"strings"
)

// ExtractText pulls the value of the top-level "text" key out of an engine
// payload. The first occurrence is authoritative. Malformed payloads,
// missing keys and non-string values all yield the empty string; no other
// key is ever consulted.
func ExtractText(payload string) string {
	dec := json.NewDecoder(strings.NewReader(payload))

	tok, err := dec.Token()
	if err != nil {
		return ""
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ""
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return ""
		}
		key, ok := keyTok.(string)
		if !ok {
			return ""
		}
		if key == "text" {
			valTok, err := dec.Token()
			if err != nil {
				return ""
			}
			s, ok := valTok.(string)
			if !ok {
				return ""
			}
			return s
		}
		if err := skipValue(dec); err != nil {
			return ""
		}
	}
	return ""
}

// skipValue consumes one JSON value, descending into containers.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || (d != '{' && d != '[') {
		return nil
	}
	for dec.More() {
		if err := skipValue(dec); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

// NormalizePartial re-keys an engine's {"partial": ...} payload to the
// uniform {"text": ...} shape every payload consumer expects. Payloads
// without a partial key pass through untouched.
func NormalizePartial(payload string) string {
	var p struct {
		Partial *string `json:"partial"`
	}
	if err := json.Unmarshal([]byte(payload), &p); err != nil || p.Partial == nil {
		return payload
	}
	b, err := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: *p.Partial})
	if err != nil {
		return ""
	}
	return string(b)
}
