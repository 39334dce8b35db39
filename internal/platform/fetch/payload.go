package fetch

import (
	sonic "github.com/bytedance/sonic"
	"github.com/tidwall/gjson"
)

// Payload is an upstream JSON body kept byte-for-byte. It marshals unmodified,
// so handlers can pass it straight through to the page layer.
type Payload []byte

func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

func (p Payload) Decode(target any) error {
	return sonic.Unmarshal(p, target)
}

func (p Payload) Get(path string) gjson.Result {
	return gjson.GetBytes(p, path)
}

// ErrorMessage returns the message of an error-object payload, if p is one.
func (p Payload) ErrorMessage() (string, bool) {
	if len(p) == 0 {
		return "", false
	}
	root := gjson.ParseBytes(p)
	if !root.IsObject() {
		return "", false
	}
	msg := root.Get("error")
	if msg.Type != gjson.String {
		return "", false
	}
	return msg.String(), true
}

// ErrorObject builds the {"error": message} fallback payload.
func ErrorObject(message string) Payload {
	raw, err := sonic.Marshal(map[string]string{"error": message})
	if err != nil {
		return Payload(`{"error":"upstream request failed"}`)
	}
	return Payload(raw)
}
