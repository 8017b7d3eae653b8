package outcome

import "encoding/json"

// Serialize encodes the link as a flat JSON record suitable for an external
// key-value store.
func (l Link) Serialize() ([]byte, error) {
	return json.Marshal(l)
}

// Deserialize decodes a serialized link. A record that is not valid JSON or
// carries no session ID returns (nil, false) rather than a partially
// populated link; all other absent fields keep their zero defaults.
func Deserialize(data []byte) (*Link, bool) {
	var l Link
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, false
	}
	if l.SessionID == "" {
		return nil, false
	}
	return &l, true
}
