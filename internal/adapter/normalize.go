package adapter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aicubetechnology/qube-admin-cli-bmg/models"
	"github.com/tidwall/gjson"
)

// Envelope fields under which list endpoints have been seen to return their
// items, in lookup order.
var (
	userListFields   = []string{"users", "items", "data", "results"}
	workerListFields = []string{"agents", "workers", "items", "data", "results"}
)

func normalizeUsers(p Payload, endpoint string) ([]models.User, error) {
	return decodeList[models.User](p, endpoint, userListFields)
}

func normalizeWorkers(p Payload, endpoint string) ([]models.Worker, error) {
	return decodeList[models.Worker](p, endpoint, workerListFields)
}

func decodeList[T any](p Payload, endpoint string, fields []string) ([]T, error) {
	switch p.Kind {
	case PayloadEmpty:
		return []T{}, nil
	case PayloadText:
		return nil, malformed(endpoint, "expected a JSON list, got text", nil)
	}

	list, ok := findList(p.JSON(), fields)
	if !ok {
		return nil, malformed(endpoint,
			fmt.Sprintf("no list in response (expected an array or one of: %s)", strings.Join(fields, ", ")), nil)
	}

	items := make([]T, 0, len(list))
	for i, raw := range list {
		var item T
		if err := json.Unmarshal([]byte(raw.Raw), &item); err != nil {
			return nil, malformed(endpoint, fmt.Sprintf("cannot decode item %d", i+1), err)
		}
		items = append(items, item)
	}

	return items, nil
}

func findList(root gjson.Result, fields []string) ([]gjson.Result, bool) {
	if root.IsArray() {
		return root.Array(), true
	}
	if !root.IsObject() {
		return nil, false
	}

	for _, field := range fields {
		if value := root.Get(field); value.IsArray() {
			return value.Array(), true
		}
	}
	return nil, false
}
