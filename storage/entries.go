package storage

import (
	"github.com/poiesic/lexicon/core"
)

// PutAdjective validates adj and stores it in f under its content ID.
func PutAdjective(f RecordFile, adj *core.AdjectiveEntry) error {
	if err := core.ValidateWord(&adj.Word); err != nil {
		return err
	}
	return f.Put(MarshalID(adj.ID()), MarshalAdjective(adj))
}

// GetAdjective loads the adjective entry with the given ID from f and
// attaches it to dict. Returns ErrNotFound if absent.
func GetAdjective(f RecordFile, dict core.DictionaryRef, id core.ID) (*core.AdjectiveEntry, error) {
	data, err := f.Get(MarshalID(id))
	if err != nil {
		return nil, err
	}
	return UnmarshalAdjective(dict, data)
}
