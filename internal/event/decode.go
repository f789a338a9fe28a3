package event

import "encoding/json"

// DecodePayload returns the payload as T. MemoryBus delivers the original
// struct, so the type assertion normally succeeds; payloads that went
// through JSON (maps) are converted with a marshal round-trip.
func DecodePayload[T any](input any) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if p, ok := input.(*T); ok && p != nil {
		return *p, nil
	}

	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
