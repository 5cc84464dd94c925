package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Raw serialized form of a content state, compatible with editors that load
// documents as {"blocks": [...], "entityMap": {"0": {...}}}. The entity map is
// keyed by decimal strings on the wire and by ints in memory.

type rawContentState struct {
	Blocks    []Block           `json:"blocks"`
	EntityMap map[string]Entity `json:"entityMap"`
}

// MarshalJSON renders the content state in its raw wire form.
func (cs *ContentState) MarshalJSON() ([]byte, error) {
	raw := rawContentState{
		Blocks:    cs.Blocks,
		EntityMap: make(map[string]Entity, len(cs.Entities)),
	}
	if raw.Blocks == nil {
		raw.Blocks = []Block{}
	}
	for k, e := range cs.Entities {
		raw.EntityMap[strconv.Itoa(k)] = e
	}
	return json.Marshal(raw)
}

// UnmarshalJSON reads the raw wire form back.
func (cs *ContentState) UnmarshalJSON(data []byte) error {
	var raw rawContentState
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unable to decode content state: %w", err)
	}
	cs.Blocks = raw.Blocks
	cs.Entities = make(map[int]Entity, len(raw.EntityMap))
	for k, e := range raw.EntityMap {
		n, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("invalid entity key %q: %w", k, err)
		}
		cs.Entities[n] = e
	}
	return nil
}
