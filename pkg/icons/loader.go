package icons

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tidwall/gjson"

	"github.com/icona/iconserve/internal/utils"
)

// LoadManifest reads an icon corpus from a JSON manifest file.
//
// The manifest is either a top-level array of icon objects or an object
// with an "icons" array. Each entry needs a "name"; "component",
// "category" and "metadata" are optional. A missing component is derived
// from the name, and partial metadata objects are ignored field-by-field
// rather than merged: an icon either carries the metadata it declares or
// gets a full synthesized set later.
func LoadManifest(path string) ([]IconData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}

// ParseManifest parses manifest bytes into a corpus. Entries without a
// name are skipped with a warning instead of failing the whole load.
func ParseManifest(data []byte) ([]IconData, error) {
	root := gjson.ParseBytes(data)
	list := root
	if root.IsObject() {
		list = root.Get("icons")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("manifest has no icon array")
	}

	var corpus []IconData
	list.ForEach(func(_, entry gjson.Result) bool {
		name := entry.Get("name").String()
		if name == "" {
			log.Warnf("Skipping manifest entry without a name: %s", entry.Raw)
			return true
		}

		icon := IconData{
			Name:      name,
			Component: entry.Get("component").String(),
			Category:  entry.Get("category").String(),
		}
		if icon.Component == "" {
			icon.Component = utils.ToPascalCase(name)
		}
		if meta := entry.Get("metadata"); meta.Exists() {
			icon.Metadata = parseMetadata(meta)
		}
		corpus = append(corpus, icon)
		return true
	})

	log.Debugf("Loaded %d icons from manifest", len(corpus))
	return corpus, nil
}

func parseMetadata(meta gjson.Result) *IconMetadata {
	m := &IconMetadata{
		Description: meta.Get("description").String(),
		Keywords:    stringList(meta.Get("keywords")),
		Tags:        stringList(meta.Get("tags")),
		Aliases:     stringList(meta.Get("aliases")),
		Popularity:  int(meta.Get("popularity").Int()),
	}
	return m
}

func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return nil
	}
	var out []string
	r.ForEach(func(_, v gjson.Result) bool {
		if s := v.String(); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}
