package snapshot

import (
	"math"
	"testing"
	"time"

	"google.golang.org/genproto/googleapis/type/latlng"
)

func TestEncodeValueTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 15, 12, 30, 0, 500000000, time.UTC)
	got, ok := EncodeValue(ts).(float64)
	if !ok {
		t.Fatalf("expected float64 for timestamp, got %T", EncodeValue(ts))
	}

	want := float64(ts.UnixNano()) / 1e9
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected epoch %v, got %v", want, got)
	}
	// Sub-second precision must survive.
	if got == math.Trunc(got) {
		t.Errorf("expected fractional seconds preserved, got %v", got)
	}
}

func TestEncodeValueGeoPoint(t *testing.T) {
	point := &latlng.LatLng{Latitude: 41.0082, Longitude: 28.9784}
	got, ok := EncodeValue(point).(map[string]interface{})
	if !ok {
		t.Fatalf("expected map for geopoint, got %T", EncodeValue(point))
	}
	if got["latitude"] != 41.0082 || got["longitude"] != 28.9784 {
		t.Errorf("unexpected geopoint encoding: %v", got)
	}
}

func TestEncodeValueBytes(t *testing.T) {
	got := EncodeValue([]byte("hello"))
	if got != "aGVsbG8=" {
		t.Errorf("expected base64 'aGVsbG8=', got %v", got)
	}
}

func TestEncodeValueNested(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	data := map[string]interface{}{
		"name":    "alice",
		"balance": 42.5,
		"history": []interface{}{
			map[string]interface{}{"at": ts},
		},
	}

	encoded := EncodeData(data)

	if encoded["name"] != "alice" || encoded["balance"] != 42.5 {
		t.Errorf("scalar fields should pass through, got %v", encoded)
	}
	history := encoded["history"].([]interface{})
	entry := history[0].(map[string]interface{})
	if _, ok := entry["at"].(float64); !ok {
		t.Errorf("expected nested timestamp encoded to float64, got %T", entry["at"])
	}
}

func TestEncodeValueScalarsPassThrough(t *testing.T) {
	for _, v := range []interface{}{"text", int64(7), 3.14, true, nil} {
		if got := EncodeValue(v); got != v {
			t.Errorf("expected %v unchanged, got %v", v, got)
		}
	}
}

func TestDecodeValueRecursion(t *testing.T) {
	data := map[string]interface{}{
		"ref":  "ref:abc123",
		"tags": []interface{}{"a", "b"},
		"nested": map[string]interface{}{
			"n": 1.0,
		},
	}

	decoded := DecodeData(data)

	// "ref:" strings stay strings on import.
	if decoded["ref"] != "ref:abc123" {
		t.Errorf("expected ref string preserved, got %v", decoded["ref"])
	}
	tags := decoded["tags"].([]interface{})
	if len(tags) != 2 || tags[0] != "a" {
		t.Errorf("unexpected slice decoding: %v", tags)
	}
	nested := decoded["nested"].(map[string]interface{})
	if nested["n"] != 1.0 {
		t.Errorf("unexpected nested decoding: %v", nested)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ts := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	data := map[string]interface{}{
		"created_at": ts,
		"amount":     100.0,
		"active":     true,
	}

	decoded := DecodeData(EncodeData(data))

	if decoded["amount"] != 100.0 || decoded["active"] != true {
		t.Errorf("scalars should round-trip, got %v", decoded)
	}
	epoch := decoded["created_at"].(float64)
	if int64(epoch) != ts.Unix() {
		t.Errorf("expected timestamp round-trip to epoch %d, got %v", ts.Unix(), epoch)
	}
}

func TestEncodeDataNil(t *testing.T) {
	if EncodeData(nil) != nil {
		t.Errorf("expected nil for nil data")
	}
	if DecodeData(nil) != nil {
		t.Errorf("expected nil for nil data")
	}
}
