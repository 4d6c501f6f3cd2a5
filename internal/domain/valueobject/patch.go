package valueobject

// PatchOp は部分更新フィールドの操作を表す型
type PatchOp int

const (
	// PatchUnset は変更なし
	PatchUnset PatchOp = iota
	// PatchClear は値を消去
	PatchClear
	// PatchSet は値を設定
	PatchSet
)

// Patch は「未指定」「消去」「値の設定」を区別する部分更新フィールド
// ゼロ値は未指定です
type Patch[T any] struct {
	op    PatchOp
	value T
}

// Set は値を設定するPatchを生成します
func Set[T any](v T) Patch[T] {
	return Patch[T]{op: PatchSet, value: v}
}

// Clear は値を消去するPatchを生成します
func Clear[T any]() Patch[T] {
	return Patch[T]{op: PatchClear}
}

// Unset は変更なしのPatchを生成します
func Unset[T any]() Patch[T] {
	return Patch[T]{}
}

// FromPtr はポインタからPatchを生成します（nil は未指定）
func FromPtr[T any](p *T) Patch[T] {
	if p == nil {
		return Patch[T]{}
	}
	return Set(*p)
}

// Op は操作を返します
func (p Patch[T]) Op() PatchOp {
	return p.op
}

// IsUnset は未指定かを判定します
func (p Patch[T]) IsUnset() bool {
	return p.op == PatchUnset
}

// IsClear は消去かを判定します
func (p Patch[T]) IsClear() bool {
	return p.op == PatchClear
}

// IsSet は値の設定かを判定します
func (p Patch[T]) IsSet() bool {
	return p.op == PatchSet
}

// Value は設定値を返します
func (p Patch[T]) Value() (T, bool) {
	return p.value, p.op == PatchSet
}

// ApplyTo は現在値にPatchを適用した結果を返します
func (p Patch[T]) ApplyTo(current *T) *T {
	switch p.op {
	case PatchClear:
		return nil
	case PatchSet:
		v := p.value
		return &v
	default:
		return current
	}
}
