package service

import (
	"encoding/json"
	"math/big"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-membership/library/internal/errs"
	"github.com/Astemirdum/library-membership/library/internal/model"
)

var patchJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// applyPatch applies RFC 6902 operations to the JSON form of doc. Paths are limited
// to the top-level members doc serializes to.
func applyPatch[T any](doc T, ops []model.PatchOperation) (T, error) {
	var zero T
	raw, err := patchJSON.Marshal(doc)
	if err != nil {
		return zero, errors.Wrap(err, "marshal patch document")
	}
	fields := make(map[string]interface{})
	if err := patchJSON.Unmarshal(raw, &fields); err != nil {
		return zero, errors.Wrap(err, "unmarshal patch document")
	}
	allowed := make(map[string]struct{}, len(fields))
	for k := range fields {
		allowed[k] = struct{}{}
	}

	for i, op := range ops {
		if err := applyOp(fields, allowed, op); err != nil {
			return zero, errs.InvalidArgument("patch operation %d (%s %s): %v", i, op.Op, op.Path, err)
		}
	}

	if raw, err = patchJSON.Marshal(fields); err != nil {
		return zero, errors.Wrap(err, "marshal patched document")
	}
	var out T
	if err := patchJSON.Unmarshal(raw, &out); err != nil {
		return zero, errs.InvalidArgument("patched document is invalid: %v", err)
	}
	return out, nil
}

func applyOp(doc map[string]interface{}, allowed map[string]struct{}, op model.PatchOperation) error {
	key, err := pointerKey(allowed, op.Path)
	if err != nil {
		return err
	}
	switch op.Op {
	case model.PatchAdd, model.PatchReplace:
		if _, ok := doc[key]; !ok && op.Op == model.PatchReplace {
			return errors.New("path does not exist")
		}
		v, err := decodeValue(op.Value)
		if err != nil {
			return err
		}
		doc[key] = v
	case model.PatchRemove:
		if _, ok := doc[key]; !ok {
			return errors.New("path does not exist")
		}
		delete(doc, key)
	case model.PatchMove, model.PatchCopy:
		from, err := pointerKey(allowed, op.From)
		if err != nil {
			return errors.Wrap(err, "from")
		}
		v, ok := doc[from]
		if !ok {
			return errors.New("from path does not exist")
		}
		if op.Op == model.PatchMove {
			delete(doc, from)
		}
		doc[key] = v
	case model.PatchTest:
		v, err := decodeValue(op.Value)
		if err != nil {
			return err
		}
		if !jsonEqual(doc[key], v) {
			return errors.New("test failed")
		}
	default:
		return errors.Errorf("unsupported operation %q", op.Op)
	}
	return nil
}

// pointerKey resolves a JSON pointer to a top-level key of the document.
func pointerKey(allowed map[string]struct{}, path string) (string, error) {
	if !strings.HasPrefix(path, "/") {
		return "", errors.Errorf("invalid path %q", path)
	}
	key := path[1:]
	if strings.Contains(key, "/") {
		return "", errors.Errorf("nested path %q is not supported", path)
	}
	key = pointerUnescaper.Replace(key)
	if _, ok := allowed[key]; !ok {
		return "", errors.Errorf("unknown field %q", key)
	}
	return key, nil
}

func decodeValue(raw jsoniter.RawMessage) (interface{}, error) {
	if len(raw) == 0 {
		return nil, errors.New("value is required")
	}
	var v interface{}
	if err := patchJSON.Unmarshal(raw, &v); err != nil {
		return nil, errors.Wrap(err, "value")
	}
	return v, nil
}

// jsonEqual compares decoded JSON values, numbers by value.
func jsonEqual(a, b interface{}) bool {
	switch x := a.(type) {
	case json.Number:
		y, ok := b.(json.Number)
		if !ok {
			return false
		}
		rx, okx := new(big.Rat).SetString(x.String())
		ry, oky := new(big.Rat).SetString(y.String())
		if !okx || !oky {
			return x == y
		}
		return rx.Cmp(ry) == 0
	case map[string]interface{}:
		y, ok := b.(map[string]interface{})
		if !ok || len(x) != len(y) {
			return false
		}
		for k, v := range x {
			w, ok := y[k]
			if !ok || !jsonEqual(v, w) {
				return false
			}
		}
		return true
	case []interface{}:
		y, ok := b.([]interface{})
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !jsonEqual(x[i], y[i]) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

func touches(ops []model.PatchOperation, path string) bool {
	for _, op := range ops {
		if op.Path == path || op.From == path {
			return true
		}
	}
	return false
}
