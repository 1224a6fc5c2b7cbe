package index

import (
	"slices"

	"github.com/google/btree"

	"relstore/pkg/primitives"
	"relstore/pkg/types"
)

const btreeDegree = 32

// keyBucket is one B-tree item: a key and the ordered row ids holding it.
type keyBucket struct {
	key  types.Field
	rows []primitives.RowID
}

// Less implements btree.Item using the value domain's total order.
func (b *keyBucket) Less(than btree.Item) bool {
	return types.Less(b.key, than.(*keyBucket).key)
}

// BTreeIndex is the ordered index: the same bucket discipline as HashIndex,
// but keys are kept in ascending value order. The executor only uses it for
// point lookups; the ordering is reserved for range work.
type BTreeIndex struct {
	tree *btree.BTree
}

// NewBTreeIndex creates an empty ordered index.
func NewBTreeIndex() *BTreeIndex {
	return &BTreeIndex{tree: btree.New(btreeDegree)}
}

func (bi *BTreeIndex) Add(key types.Field, rid primitives.RowID) {
	if item := bi.tree.Get(&keyBucket{key: key}); item != nil {
		bucket := item.(*keyBucket)
		bucket.rows = append(bucket.rows, rid)
		return
	}
	bi.tree.ReplaceOrInsert(&keyBucket{key: key, rows: []primitives.RowID{rid}})
}

func (bi *BTreeIndex) Remove(key types.Field, rid primitives.RowID) {
	item := bi.tree.Get(&keyBucket{key: key})
	if item == nil {
		return
	}

	bucket := item.(*keyBucket)
	if i := slices.Index(bucket.rows, rid); i >= 0 {
		bucket.rows = slices.Delete(bucket.rows, i, i+1)
	}

	if len(bucket.rows) == 0 {
		bi.tree.Delete(bucket)
	}
}

func (bi *BTreeIndex) LookupEq(key types.Field) []primitives.RowID {
	item := bi.tree.Get(&keyBucket{key: key})
	if item == nil {
		return nil
	}
	return slices.Clone(item.(*keyBucket).rows)
}

func (bi *BTreeIndex) Keys() []types.Field {
	keys := make([]types.Field, 0, bi.tree.Len())
	bi.tree.Ascend(func(item btree.Item) bool {
		keys = append(keys, item.(*keyBucket).key)
		return true
	})
	return keys
}

func (bi *BTreeIndex) Len() int {
	return bi.tree.Len()
}

func (bi *BTreeIndex) Kind() Kind {
	return KindBTree
}
