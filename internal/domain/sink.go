package domain

// Sink serialises finished records. A sink is either field-oriented
// (ByField reports true; it receives WriteField calls followed by
// EndRecord) or positional (it receives one WriteRow per record with a
// value for every official field, in schema order). Record.Dump asks
// ByField once per record and only uses the matching methods.
type Sink interface {
	ByField() bool
	WriteField(f Field, value string) error
	EndRecord() error
	WriteRow(values []string) error
}
