// Package savegame stores game progress in numbered slots on top of a
// key-value store. Payloads are JSON envelopes compressed with gzip.
package savegame

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/automoto/pigking/core"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
)

// ErrInvalidSlot is returned for slot numbers outside [0, slots).
var ErrInvalidSlot = errors.New("savegame: invalid slot")

// ErrVersion is returned when a save was written by a newer format.
var ErrVersion = errors.New("savegame: unsupported version")

const metadataKey = "saves_metadata"

// Store is an opaque key-value store. A missing key loads as empty data and
// saving empty data deletes the item. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// State is the game progress kept in a save.
type State struct {
	LevelIndex int                    `json:"levelIndex"`
	Checkpoint string                 `json:"checkpoint,omitempty"`
	Player     core.CharacterSnapshot `json:"player"`
	PlayTime   float64                `json:"playTime"`
}

// Save is one stored slot.
type Save struct {
	ID      string    `json:"id"`
	Slot    int       `json:"slot"`
	Version int       `json:"version"`
	SavedAt time.Time `json:"savedAt"`
	State   State     `json:"state"`
}

// SlotInfo summarizes a slot for menus without decoding its payload.
type SlotInfo struct {
	Slot       int       `json:"slot"`
	ID         string    `json:"id"`
	SavedAt    time.Time `json:"savedAt"`
	LevelIndex int       `json:"levelIndex"`
	PlayTime   float64   `json:"playTime"`
	Autosave   bool      `json:"autosave"`
}

// Manager reads and writes save slots. The last slot is reserved for
// autosaves.
type Manager struct {
	store   Store
	slots   int
	version int
	now     func() time.Time
}

func NewManager(store Store, slots, version int) *Manager {
	return &Manager{store: store, slots: slots, version: version, now: time.Now}
}

func (m *Manager) SlotCount() int { return m.slots }

// AutosaveSlot is the slot periodic and checkpoint saves go to.
func (m *Manager) AutosaveSlot() int { return m.slots - 1 }

func (m *Manager) checkSlot(slot int) error {
	if slot < 0 || slot >= m.slots {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	return nil
}

func slotKey(slot int) string {
	return fmt.Sprintf("save_%d", slot)
}

// CreateSave writes state to slot, replacing what was there.
func (m *Manager) CreateSave(slot int, state State) (*Save, error) {
	if err := m.checkSlot(slot); err != nil {
		return nil, err
	}

	save := &Save{
		ID:      uuid.NewString(),
		Slot:    slot,
		Version: m.version,
		SavedAt: m.now().UTC(),
		State:   state,
	}
	payload, err := encode(save)
	if err != nil {
		return nil, fmt.Errorf("savegame: slot %d: %w", slot, err)
	}
	if err := m.store.SaveItem(slotKey(slot), payload); err != nil {
		return nil, fmt.Errorf("savegame: slot %d: write: %w", slot, err)
	}
	if err := m.updateIndex(func(index map[int]SlotInfo) {
		index[slot] = SlotInfo{
			Slot:       slot,
			ID:         save.ID,
			SavedAt:    save.SavedAt,
			LevelIndex: state.LevelIndex,
			PlayTime:   state.PlayTime,
			Autosave:   slot == m.AutosaveSlot(),
		}
	}); err != nil {
		return nil, err
	}
	return save, nil
}

// LoadSave returns the state in slot, or nil when the slot is empty.
func (m *Manager) LoadSave(slot int) (*State, error) {
	save, err := m.Load(slot)
	if err != nil || save == nil {
		return nil, err
	}
	return &save.State, nil
}

// Load returns the full save in slot, or nil when the slot is empty.
func (m *Manager) Load(slot int) (*Save, error) {
	if err := m.checkSlot(slot); err != nil {
		return nil, err
	}
	data, err := m.store.LoadItem(slotKey(slot))
	if err != nil {
		return nil, fmt.Errorf("savegame: slot %d: read: %w", slot, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	save, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("savegame: slot %d: %w", slot, err)
	}
	if save.Version > m.version {
		return nil, fmt.Errorf("%w: slot %d has version %d", ErrVersion, slot, save.Version)
	}
	return save, nil
}

// Delete empties a slot.
func (m *Manager) Delete(slot int) error {
	if err := m.checkSlot(slot); err != nil {
		return err
	}
	if err := m.store.SaveItem(slotKey(slot), nil); err != nil {
		return fmt.Errorf("savegame: slot %d: delete: %w", slot, err)
	}
	return m.updateIndex(func(index map[int]SlotInfo) {
		delete(index, slot)
	})
}

// Slots lists the occupied slots in slot order.
func (m *Manager) Slots() ([]SlotInfo, error) {
	index, err := m.loadIndex()
	if err != nil {
		return nil, err
	}
	out := make([]SlotInfo, 0, len(index))
	for _, info := range index {
		if info.Slot >= 0 && info.Slot < m.slots {
			out = append(out, info)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out, nil
}

// Latest returns the most recently written slot.
func (m *Manager) Latest() (SlotInfo, bool, error) {
	infos, err := m.Slots()
	if err != nil || len(infos) == 0 {
		return SlotInfo{}, false, err
	}
	latest := infos[0]
	for _, info := range infos[1:] {
		if info.SavedAt.After(latest.SavedAt) {
			latest = info
		}
	}
	return latest, true, nil
}

func (m *Manager) loadIndex() (map[int]SlotInfo, error) {
	index := make(map[int]SlotInfo)
	data, err := m.store.LoadItem(metadataKey)
	if err != nil {
		return nil, fmt.Errorf("savegame: read index: %w", err)
	}
	if len(data) == 0 {
		return index, nil
	}
	var infos []SlotInfo
	if err := json.Unmarshal(data, &infos); err != nil {
		return nil, fmt.Errorf("savegame: parse index: %w", err)
	}
	for _, info := range infos {
		index[info.Slot] = info
	}
	return index, nil
}

func (m *Manager) updateIndex(fn func(map[int]SlotInfo)) error {
	index, err := m.loadIndex()
	if err != nil {
		return err
	}
	fn(index)

	infos := make([]SlotInfo, 0, len(index))
	for _, info := range index {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Slot < infos[j].Slot })

	data, err := json.Marshal(infos)
	if err != nil {
		return fmt.Errorf("savegame: encode index: %w", err)
	}
	if err := m.store.SaveItem(metadataKey, data); err != nil {
		return fmt.Errorf("savegame: write index: %w", err)
	}
	return nil
}

func encode(save *Save) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if err := json.NewEncoder(zw).Encode(save); err != nil {
		_ = zw.Close()
		return nil, fmt.Errorf("encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(data []byte) (*Save, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	var save Save
	if err := json.Unmarshal(raw, &save); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &save, nil
}
