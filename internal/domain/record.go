package domain

import (
	"strings"

	"github.com/groblad/groblad/internal/diag"
)

// rowSeparator joins the values of a repeatable field into one column of
// a positional sink.
const rowSeparator = "; "

// Record accumulates the fields of one observation. Feed it with Append
// and Continue, then call Dump once the block has ended. A Record is
// reusable after Reset.
type Record struct {
	vocab  *Vocabulary
	values map[Field][]string

	// last is the field a continuation line extends; FieldNone if there
	// is none. swallow is set after a tolerated field, whose continuation
	// lines are dropped without comment.
	last    Field
	swallow bool
}

// NewRecord creates an empty record canonicalised against v.
func NewRecord(v *Vocabulary) *Record {
	return &Record{vocab: v, values: make(map[Field][]string)}
}

// Reset empties the record for the next block.
func (r *Record) Reset() {
	clear(r.values)
	r.last = FieldNone
	r.swallow = false
}

// Empty reports whether no field has been accepted.
func (r *Record) Empty() bool {
	return len(r.values) == 0
}

// Has reports whether f holds a value.
func (r *Record) Has(f Field) bool {
	return len(r.values[f]) > 0
}

// Get returns the (first) value of f, or "".
func (r *Record) Get(f Field) string {
	if vs := r.values[f]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Values returns a copy of all values of f.
func (r *Record) Values(f Field) []string {
	return append([]string(nil), r.values[f]...)
}

// Fields returns a copy of the record's contents keyed by field name.
func (r *Record) Fields() map[string][]string {
	out := make(map[string][]string, len(r.values))
	for f, vs := range r.values {
		out[f.String()] = append([]string(nil), vs...)
	}
	return out
}

func (r *Record) set(f Field, v string) {
	r.values[f] = []string{v}
}

func (r *Record) del(f Field) {
	delete(r.values, f)
}

// Append adds one "name: value" line. Unknown names, tolerated names and
// second occurrences of non-repeatable fields are reported and dropped.
// An empty value is dropped silently.
func (r *Record) Append(name, value string) []diag.Problem {
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	r.last = FieldNone
	r.swallow = false

	f, ok := r.vocab.Field(name)
	if !ok {
		return []diag.Problem{diag.Warnf("unknown field %q", name)}
	}
	if f.Category() == Tolerated {
		r.swallow = true
		return []diag.Problem{diag.Warnf("field %q is not supported; ignored", f)}
	}
	if value == "" {
		return nil
	}

	if f.Repeatable() {
		r.values[f] = append(r.values[f], value)
		r.last = f
		return nil
	}
	if r.Has(f) {
		return []diag.Problem{diag.Warnf("duplicate field %q; ignored", f)}
	}
	r.set(f, value)
	r.last = f
	return nil
}

// Continue extends the most recently appended field with value, joined by
// a single space.
func (r *Record) Continue(value string) []diag.Problem {
	value = strings.TrimSpace(value)
	if r.swallow {
		return nil
	}
	if r.last == FieldNone {
		return []diag.Problem{diag.Warnf("continuation line without a field")}
	}
	if value == "" {
		return nil
	}
	vs := r.values[r.last]
	vs[len(vs)-1] += " " + value
	return nil
}

// Dump canonicalises the record and writes it to s. An empty record
// writes nothing at all. The returned error comes from the sink only;
// record problems are returned as values.
func (r *Record) Dump(s Sink) ([]diag.Problem, error) {
	if r.Empty() {
		return nil, nil
	}

	problems := r.Canonize()
	if r.Has(Duplicate) {
		problems = append(problems, diag.Warnf("record is marked as a duplicate (%s)", r.Get(Duplicate)))
	}

	if s.ByField() {
		for _, f := range officialFields {
			for _, v := range r.values[f] {
				if v == "" {
					continue
				}
				if err := s.WriteField(f, v); err != nil {
					return problems, err
				}
			}
		}
		return problems, s.EndRecord()
	}

	row := make([]string, len(officialFields))
	for i, f := range officialFields {
		row[i] = strings.Join(r.values[f], rowSeparator)
	}
	return problems, s.WriteRow(row)
}
