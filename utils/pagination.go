package utils

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const pageTokenPrefix = "o:"

// EncodePageToken wraps a list offset in an opaque token.
func EncodePageToken(offset int) string {
	return base64.URLEncoding.EncodeToString([]byte(pageTokenPrefix + strconv.Itoa(offset)))
}

// DecodePageToken recovers the offset from a token produced by
// EncodePageToken. Anything else is rejected.
func DecodePageToken(token string) (int, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("malformed page token")
	}
	value, ok := strings.CutPrefix(string(raw), pageTokenPrefix)
	if !ok {
		return 0, fmt.Errorf("malformed page token")
	}
	offset, err := strconv.Atoi(value)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("malformed page token")
	}
	return offset, nil
}
