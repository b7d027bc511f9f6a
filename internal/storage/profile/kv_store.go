package profile

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/carson-networks/finpro-ledger/internal/storage/kv"
)

var _ IProfileStore = (*KVStore)(nil)

// KVStore keeps the profile under its own key, independent of where transactions live.
type KVStore struct {
	kv *kv.Store
}

func NewKVStore(store *kv.Store) *KVStore {
	return &KVStore{kv: store}
}

func (s *KVStore) Load() (*Profile, bool, error) {
	data, ok, err := s.kv.Get(kv.KeyProfile)
	if err != nil || !ok {
		return nil, false, err
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false, fmt.Errorf("profile: decode: %w", err)
	}
	return &p, true, nil
}

func (s *KVStore) Save(p *Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("profile: encode: %w", err)
	}
	return s.kv.Put(kv.KeyProfile, data)
}
