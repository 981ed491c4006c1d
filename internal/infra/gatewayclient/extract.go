package gatewayclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// ExtractID reads the framework identifier at expr from a JSON body.
// Numbers are formatted without exponent; a single-element array is unwrapped.
func ExtractID(body []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", errors.New("empty jsonpath expression")
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("response body is not valid JSON: %w", err)
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", fmt.Errorf("jsonpath %s: %w", expr, err)
	}
	return toID(val)
}

func toID(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", errors.New("no value found")
	case string:
		if strings.TrimSpace(t) == "" {
			return "", errors.New("no value found")
		}
		return t, nil
	case float64:
		return fmt.Sprintf("%.0f", t), nil
	case []any:
		if len(t) == 1 {
			return toID(t[0])
		}
		return "", fmt.Errorf("expected a single value, got %d", len(t))
	default:
		return "", fmt.Errorf("unsupported id value %T", v)
	}
}
