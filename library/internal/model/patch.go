package model

import jsoniter "github.com/json-iterator/go"

var patchJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type PatchOp string

const (
	PatchAdd     PatchOp = "add"
	PatchRemove  PatchOp = "remove"
	PatchReplace PatchOp = "replace"
	PatchMove    PatchOp = "move"
	PatchCopy    PatchOp = "copy"
	PatchTest    PatchOp = "test"
)

// PatchOperation is one RFC 6902 operation. A present "value": null is kept as
// the literal null; Value is empty only when the member is absent.
type PatchOperation struct {
	Op    PatchOp             `json:"op" validate:"required,oneof=add remove replace move copy test"`
	Path  string              `json:"path" validate:"required"`
	From  string              `json:"from,omitempty"`
	Value jsoniter.RawMessage `json:"value,omitempty"`
}

func (o *PatchOperation) UnmarshalJSON(data []byte) error {
	type operation PatchOperation
	var op operation
	if err := patchJSON.Unmarshal(data, &op); err != nil {
		return err
	}
	var members map[string]jsoniter.RawMessage
	if err := patchJSON.Unmarshal(data, &members); err != nil {
		return err
	}
	if _, ok := members["value"]; ok && len(op.Value) == 0 {
		op.Value = jsoniter.RawMessage("null")
	}
	*o = PatchOperation(op)
	return nil
}
