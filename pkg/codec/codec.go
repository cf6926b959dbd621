package codec

import (
	"errors"

	"github.com/bytedance/sonic"
)

// Blobs are encoded with the std-compatible sonic config so that they stay readable by encoding/json.
var api = sonic.ConfigStd

func Encode(v any) ([]byte, error) {
	data, err := api.Marshal(v)
	if err != nil {
		return nil, errors.New("encoding blob error: " + err.Error())
	}
	return data, nil
}

func Decode(data []byte, v any) error {
	if len(data) == 0 {
		return errors.New("decoding blob error: empty payload")
	}
	if err := api.Unmarshal(data, v); err != nil {
		return errors.New("decoding blob error: " + err.Error())
	}
	return nil
}
