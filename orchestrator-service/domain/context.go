package domain

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ContextValue decodes a context entry into out through a JSON round-trip.
// Context values rehydrated from storage arrive as generic maps; the
// round-trip normalizes both freshly stored structs and persisted values
// into the caller's type.
func (t *Transaction) ContextValue(key string, out interface{}) error {
	v, ok := t.Context[key]
	if !ok {
		return errors.Errorf("context key %q not found", key)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal context key %q", key)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode context key %q", key)
	}

	return nil
}
