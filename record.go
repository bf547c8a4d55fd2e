package projreport

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// Conventional field names produced by the status spreadsheet header row.
const (
	FieldURL              = "url"
	FieldTitle            = "title"
	FieldProjectManager   = "project_manager"
	FieldOverallStatus    = "overall_status"
	FieldTimeStatus       = "time_status"
	FieldScopeStatus      = "scope_status"
	FieldRiskStatus       = "risk_status"
	FieldPriority         = "priority"
	FieldSponsor          = "sponsor"
	FieldTargetCompletion = "target_completion"
	FieldTimeRequired     = "time_required"
	FieldObjectives       = "objectives"
	FieldUpdates          = "updates"
	FieldDateUpdated      = "date_updated"
	FieldIgnoreInReports  = "ignore_in_reports"
)

// KeyValue is a single field of a [Record].
type KeyValue struct {
	Key   string
	Value string
}

// Record is one project row: an ordered mapping from normalized field name
// to cell content. A Record is never modified after it is built.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord builds a Record from pairs in order. A repeated key keeps its
// first position and takes the last value.
func NewRecord(pairs ...KeyValue) Record {
	r := Record{
		keys:   make([]string, 0, len(pairs)),
		values: make(map[string]string, len(pairs)),
	}
	for _, kv := range pairs {
		if _, ok := r.values[kv.Key]; !ok {
			r.keys = append(r.keys, kv.Key)
		}
		r.values[kv.Key] = kv.Value
	}
	return r
}

// Get returns the value stored under key and whether the key is present.
func (r Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Lookup returns the value stored under key, or def when the key is absent.
// A present but empty value is returned as is.
func (r Record) Lookup(key, def string) string {
	if v, ok := r.values[key]; ok {
		return v
	}
	return def
}

// Keys returns the field names in header order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.keys) }

// Pairs returns the fields in header order.
func (r Record) Pairs() []KeyValue {
	out := make([]KeyValue, len(r.keys))
	for i, k := range r.keys {
		out[i] = KeyValue{Key: k, Value: r.values[k]}
	}
	return out
}

// Map returns a copy of the fields as a plain map.
func (r Record) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Row returns the values for keys in the given order. Missing keys yield "".
func (r Record) Row(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = r.values[k]
	}
	return out
}

// String renders the record as "key=value" pairs for log output.
func (r Record) String() string {
	var sb strings.Builder
	for i, kv := range r.Pairs() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(kv.Key)
		sb.WriteByte('=')
		sb.WriteString(kv.Value)
	}
	return sb.String()
}

// MarshalJSON encodes the record as an object with keys in header order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kv := range r.Pairs() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(kv.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(kv.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a mapping with keys in header order.
func (r Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, kv := range r.Pairs() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Value},
		)
	}
	return node, nil
}
