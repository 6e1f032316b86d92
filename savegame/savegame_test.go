package savegame

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/pigking/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items map[string][]byte
	err   error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	if len(data) == 0 {
		delete(s.items, key)
		return nil
	}
	s.items[key] = data
	return nil
}

func testState() State {
	return State{
		LevelIndex: 2,
		Checkpoint: "cp1",
		Player:     core.CharacterSnapshot{Species: "king", X: 10, Y: 20, Health: 75, Facing: -1},
		PlayTime:   93.5,
	}
}

func TestCreateAndLoad(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, 5, 1)

	save, err := m.CreateSave(1, testState())
	require.NoError(t, err)
	assert.NotEmpty(t, save.ID)

	got, err := m.LoadSave(1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testState(), *got)

	assert.NotContains(t, string(store.items["save_1"]), "cp1", "payload is compressed")
}

func TestLoadEmptySlot(t *testing.T) {
	m := NewManager(newMemStore(), 5, 1)
	got, err := m.LoadSave(3)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestInvalidSlot(t *testing.T) {
	m := NewManager(newMemStore(), 5, 1)
	for _, slot := range []int{-1, 5} {
		_, err := m.CreateSave(slot, testState())
		assert.True(t, errors.Is(err, ErrInvalidSlot))
		_, err = m.LoadSave(slot)
		assert.True(t, errors.Is(err, ErrInvalidSlot))
	}
	assert.Equal(t, 4, m.AutosaveSlot())
}

func TestSlotsIndex(t *testing.T) {
	m := NewManager(newMemStore(), 5, 1)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	m.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Minute)
	}

	_, err := m.CreateSave(m.AutosaveSlot(), testState())
	require.NoError(t, err)
	_, err = m.CreateSave(0, State{LevelIndex: 1})
	require.NoError(t, err)

	infos, err := m.Slots()
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, 0, infos[0].Slot)
	assert.True(t, infos[1].Autosave)
	assert.Equal(t, 2, infos[1].LevelIndex)

	latest, ok, err := m.Latest()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, latest.Slot)

	require.NoError(t, m.Delete(0))
	infos, err = m.Slots()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	got, err := m.LoadSave(0)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestCorruptPayload(t *testing.T) {
	store := newMemStore()
	store.items["save_2"] = []byte("not gzip")
	m := NewManager(store, 5, 1)

	_, err := m.LoadSave(2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slot 2")
}

func TestNewerVersionRejected(t *testing.T) {
	store := newMemStore()
	_, err := NewManager(store, 5, 2).CreateSave(0, testState())
	require.NoError(t, err)

	_, err = NewManager(store, 5, 1).LoadSave(0)
	assert.True(t, errors.Is(err, ErrVersion))
}

func TestStoreErrors(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("disk full")
	m := NewManager(store, 5, 1)

	_, err := m.CreateSave(0, testState())
	require.Error(t, err)
	assert.True(t, errors.Is(err, store.err))
}
