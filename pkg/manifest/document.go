package manifest

import (
	"encoding/json"

	"github.com/arthur-debert/modsync/pkg/errors"
	"github.com/arthur-debert/modsync/pkg/types"
)

// Document is the JSON payload served by the manifest endpoint
type Document struct {
	Mods []types.ModName `json:"mods"`
}

// ParseDocument decodes a manifest payload. The "mods" list is required;
// `{"mods": []}` is the only empty manifest.
func ParseDocument(data []byte) (*Document, error) {
	var raw struct {
		Mods *[]types.ModName `json:"mods"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestInvalid, "manifest is not valid JSON")
	}
	if raw.Mods == nil {
		return nil, errors.New(errors.ErrManifestInvalid, `manifest has no "mods" list`)
	}

	doc := &Document{Mods: *raw.Mods}
	if doc.Mods == nil {
		doc.Mods = []types.ModName{}
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate rejects entries that cannot be written inside the mods directory
func (d *Document) Validate() error {
	for i, name := range d.Mods {
		if !name.Valid() {
			return errors.Newf(errors.ErrManifestInvalid, "manifest entry %d is not a plain file name: %q", i, name).
				WithDetail(errors.DetailMod, string(name))
		}
	}
	return nil
}
