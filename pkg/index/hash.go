package index

import (
	"encoding/binary"
	"slices"

	"github.com/bits-and-blooms/bloom/v3"

	"relstore/pkg/primitives"
	"relstore/pkg/types"
)

// Bloom filter sizing, tuned for the expected key cardinality of a single
// indexed column.
const (
	bloomEstimatedKeys  = 100000
	bloomFalsePositives = 0.01
)

// HashIndex is the equality index: an unordered map from key to an ordered
// bucket of row ids. A bloom filter over key hashes answers most negative
// lookups without touching the map.
//
// The filter only ever over-approximates the key set (removals leave it
// stale), so a hit still probes the map; a miss is authoritative.
type HashIndex struct {
	buckets map[types.Key][]primitives.RowID
	keys    map[types.Key]types.Field
	filter  *bloom.BloomFilter
}

// NewHashIndex creates an empty equality index.
func NewHashIndex() *HashIndex {
	return &HashIndex{
		buckets: make(map[types.Key][]primitives.RowID),
		keys:    make(map[types.Key]types.Field),
		filter:  bloom.NewWithEstimates(bloomEstimatedKeys, bloomFalsePositives),
	}
}

func (hi *HashIndex) Add(key types.Field, rid primitives.RowID) {
	k := key.Key()
	hi.buckets[k] = append(hi.buckets[k], rid)
	if _, seen := hi.keys[k]; !seen {
		hi.keys[k] = key
		hi.filter.Add(hashBytes(key))
	}
}

func (hi *HashIndex) Remove(key types.Field, rid primitives.RowID) {
	k := key.Key()
	bucket, ok := hi.buckets[k]
	if !ok {
		return
	}

	if i := slices.Index(bucket, rid); i >= 0 {
		bucket = slices.Delete(bucket, i, i+1)
	}

	if len(bucket) == 0 {
		delete(hi.buckets, k)
		delete(hi.keys, k)
		return
	}
	hi.buckets[k] = bucket
}

func (hi *HashIndex) LookupEq(key types.Field) []primitives.RowID {
	if !hi.filter.Test(hashBytes(key)) {
		return nil
	}

	bucket, ok := hi.buckets[key.Key()]
	if !ok {
		return nil
	}
	return slices.Clone(bucket)
}

func (hi *HashIndex) Keys() []types.Field {
	keys := make([]types.Field, 0, len(hi.keys))
	for _, f := range hi.keys {
		keys = append(keys, f)
	}
	return keys
}

func (hi *HashIndex) Len() int {
	return len(hi.buckets)
}

func (hi *HashIndex) Kind() Kind {
	return KindHash
}

// hashBytes renders a field's hash as the byte key fed to the bloom filter.
func hashBytes(f types.Field) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(f.Hash()))
	return b
}
