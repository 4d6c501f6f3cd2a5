package request

import (
	"bytes"
	"encoding/json"

	"github.com/ONLYOFFICE/DocSpace-server-sub006/internal/domain/valueobject"
)

// Optional は「未指定」「null」「値」を区別するJSONフィールドです
type Optional[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// UnmarshalJSON はjson.Unmarshalerを実装します
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// Patch は部分更新フィールドに変換します
func (o Optional[T]) Patch() valueobject.Patch[T] {
	switch {
	case !o.Present:
		return valueobject.Unset[T]()
	case o.Null:
		return valueobject.Clear[T]()
	default:
		return valueobject.Set(o.Value)
	}
}
