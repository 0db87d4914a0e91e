package api

import (
	"encoding/json"
	"net/http"
)

// Outcome is the classified result of one remote call. HTTP-level failures
// are data, not errors: only a missing response (network down, malformed
// reply) populates Err.
type Outcome struct {
	Status int
	Body   []byte
	Err    error
}

func (o Outcome) IsSuccess() bool {
	return o.Err == nil && o.Status >= 200 && o.Status < 300
}

func (o Outcome) IsTransportFailure() bool {
	return o.Err != nil
}

func (o Outcome) IsAuthRejected() bool {
	return o.Err == nil && o.Status == http.StatusUnauthorized
}

// Decode unmarshals a success body into v. An empty body decodes to the zero
// value; some endpoints (deletes, updates) reply with no content.
func (o Outcome) Decode(v any) error {
	if len(o.Body) == 0 {
		return nil
	}
	return json.Unmarshal(o.Body, v)
}
