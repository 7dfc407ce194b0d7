// Package snapshot defines the JSON interchange format shared by the
// export and import pipelines.
package snapshot

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/elliotchance/orderedmap/v2"
)

// AggregateFileName is the aggregate structure file written alongside
// per-collection files. It is metadata, never a collection payload;
// import discovery excludes it.
const AggregateFileName = "complete_database_structure.json"

// Document is a single exported document: its identifier and a
// JSON-encodable field map.
type Document struct {
	ID   string                 `json:"id"`
	Data map[string]interface{} `json:"data"`
}

// Collection is the per-collection snapshot written to <name>.json.
type Collection struct {
	Name                   string     `json:"collection_name"`
	EstimatedDocumentCount string     `json:"estimated_document_count"`
	SampleDocuments        []Document `json:"sample_documents"`
	SampleCount            int        `json:"sample_count"`
	ExportedAt             time.Time  `json:"exported_at"`
}

// CollectionEntry is one entry in the aggregate structure: either a
// successful collection snapshot or the error that replaced it.
type CollectionEntry struct {
	Collection *Collection
	Error      string
	ExportedAt time.Time
}

// MarshalJSON writes the snapshot when present, otherwise the error form.
func (e CollectionEntry) MarshalJSON() ([]byte, error) {
	if e.Collection != nil {
		return json.Marshal(e.Collection)
	}
	return json.Marshal(struct {
		Error      string    `json:"error"`
		ExportedAt time.Time `json:"exported_at"`
	}{e.Error, e.ExportedAt})
}

// DatabaseStructure is the aggregate export artifact. Collections keep
// export (enumeration) order, so repeated exports of the same database
// diff cleanly.
type DatabaseStructure struct {
	ProjectID   string
	ExportedAt  time.Time
	Collections *orderedmap.OrderedMap[string, CollectionEntry]
}

// NewDatabaseStructure creates an empty aggregate for a project.
func NewDatabaseStructure(projectID string) *DatabaseStructure {
	return &DatabaseStructure{
		ProjectID:   projectID,
		ExportedAt:  time.Now(),
		Collections: orderedmap.NewOrderedMap[string, CollectionEntry](),
	}
}

// AddCollection records a successfully exported collection.
func (d *DatabaseStructure) AddCollection(c *Collection) {
	d.Collections.Set(c.Name, CollectionEntry{Collection: c})
}

// AddError records a collection that failed to export.
func (d *DatabaseStructure) AddError(name string, err error) {
	d.Collections.Set(name, CollectionEntry{Error: err.Error(), ExportedAt: time.Now()})
}

// TotalCollections returns the number of collections in the aggregate,
// counting failed ones.
func (d *DatabaseStructure) TotalCollections() int {
	return d.Collections.Len()
}

// MarshalJSON emits the aggregate with collections as a JSON object in
// insertion order. encoding/json would sort map keys; the ordered map
// preserves enumeration order instead.
func (d *DatabaseStructure) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(key string, v interface{}) error {
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		val, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		return nil
	}

	if err := writeField("project_id", d.ProjectID); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeField("exported_at", d.ExportedAt); err != nil {
		return nil, err
	}
	buf.WriteByte(',')
	if err := writeField("total_collections", d.TotalCollections()); err != nil {
		return nil, err
	}

	buf.WriteString(`,"collections":{`)
	for el := d.Collections.Front(); el != nil; el = el.Next() {
		if el != d.Collections.Front() {
			buf.WriteByte(',')
		}
		if err := writeField(el.Key, el.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteString("}}")

	return buf.Bytes(), nil
}
