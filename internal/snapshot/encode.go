package snapshot

import (
	"encoding/base64"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"
)

// EncodeValue converts a Firestore field value to a JSON-representable
// form. Timestamps become epoch seconds, document references become
// "ref:<id>" strings, geopoints become latitude/longitude objects, and
// byte blobs become base64 strings. Maps and slices are recursed.
func EncodeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = EncodeValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = EncodeValue(item)
		}
		return out
	case time.Time:
		return float64(val.UnixNano()) / float64(time.Second)
	case *firestore.DocumentRef:
		if val == nil {
			return nil
		}
		return "ref:" + val.ID
	case *latlng.LatLng:
		if val == nil {
			return nil
		}
		return map[string]interface{}{
			"latitude":  val.Latitude,
			"longitude": val.Longitude,
		}
	case []byte:
		return base64.StdEncoding.EncodeToString(val)
	default:
		return v
	}
}

// EncodeData encodes a full document field map.
func EncodeData(data map[string]interface{}) map[string]interface{} {
	if data == nil {
		return nil
	}
	encoded := EncodeValue(data)
	return encoded.(map[string]interface{})
}

// DecodeValue converts an imported JSON value back to a
// Firestore-compatible form. Maps and slices are recursed; "ref:"
// strings are kept as plain strings, since recreating live document
// references would point into the target project where the referenced
// document may not exist.
func DecodeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = DecodeValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = DecodeValue(item)
		}
		return out
	default:
		return v
	}
}

// DecodeData decodes a full document field map.
func DecodeData(data map[string]interface{}) map[string]interface{} {
	if data == nil {
		return nil
	}
	decoded := DecodeValue(data)
	return decoded.(map[string]interface{})
}
