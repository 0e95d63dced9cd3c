package domain

// Field identifies a recognised record field. Input names are mapped to a
// Field through [Vocabulary.Field]; anything that does not map is
// rejected before it reaches a Record.
type Field int

// Category says what happens to a field after parsing.
type Category int

const (
	// Official fields are part of the output schema.
	Official Category = iota
	// Extension fields are input-only and collapse into official fields
	// during canonicalisation.
	Extension
	// Tolerated fields are recognised, warned about and dropped.
	Tolerated
)

// Official fields, in output order.
const (
	FieldNone Field = iota
	SpeciesName
	PlaceName
	North
	East
	Precision
	StartDate
	EndDate
	StartTime
	EndTime
	Count
	Unit
	Stage
	Substrate
	SubstrateText
	Biotope
	BiotopeText
	Tree
	TreeText
	Collection
	Comment
	Observers
	Uncertain
	NotRefound
	Protected

	// Extension fields.
	Coordinate
	SubstrateAny
	BiotopeAny
	TreeAny
	Duplicate

	// Tolerated fields.
	Age
	Sex
	Picture

	fieldCount
)

type fieldInfo struct {
	name       string
	category   Category
	repeatable bool
	flag       bool
}

var fieldTable = [fieldCount]fieldInfo{
	FieldNone:     {name: ""},
	SpeciesName:   {name: "artnamn"},
	PlaceName:     {name: "lokalnamn"},
	North:         {name: "nordkoordinat"},
	East:          {name: "ostkoordinat"},
	Precision:     {name: "noggrannhet"},
	StartDate:     {name: "startdatum"},
	EndDate:       {name: "slutdatum"},
	StartTime:     {name: "starttid"},
	EndTime:       {name: "sluttid"},
	Count:         {name: "antal"},
	Unit:          {name: "enhet"},
	Stage:         {name: "stadium"},
	Substrate:     {name: "substrat"},
	SubstrateText: {name: "substratbeskrivning"},
	Biotope:       {name: "biotop"},
	BiotopeText:   {name: "biotopbeskrivning"},
	Tree:          {name: "trädslag"},
	TreeText:      {name: "trädslagsbeskrivning"},
	Collection:    {name: "samling"},
	Comment:       {name: "kommentar", repeatable: true},
	Observers:     {name: "medobservatörer", repeatable: true},
	Uncertain:     {name: "osäker bestämning", flag: true},
	NotRefound:    {name: "ej återfunnen", flag: true},
	Protected:     {name: "skyddad lokal", flag: true},

	Coordinate:   {name: "koordinat", category: Extension},
	SubstrateAny: {name: "underlag", category: Extension},
	BiotopeAny:   {name: "miljö", category: Extension},
	TreeAny:      {name: "träd", category: Extension},
	Duplicate:    {name: "dubblett", category: Extension},

	Age:     {name: "ålder", category: Tolerated},
	Sex:     {name: "kön", category: Tolerated},
	Picture: {name: "bild", category: Tolerated},
}

var (
	officialFields []Field
	flagFields     []Field
	fieldsByName   = make(map[string]Field)
)

func init() {
	for f := FieldNone + 1; f < fieldCount; f++ {
		info := fieldTable[f]
		fieldsByName[foldKey(info.name)] = f
		if info.category == Official {
			officialFields = append(officialFields, f)
		}
		if info.flag {
			flagFields = append(flagFields, f)
		}
	}
}

// OfficialFields returns the output schema in order.
func OfficialFields() []Field {
	return append([]Field(nil), officialFields...)
}

// OfficialNames returns the names of the output schema in order, as used
// for a table header.
func OfficialNames() []string {
	names := make([]string, len(officialFields))
	for i, f := range officialFields {
		names[i] = f.String()
	}
	return names
}

// LookupField maps a canonical field name to its Field. Aliases are not
// known here; see [Vocabulary.Field].
func LookupField(name string) (Field, bool) {
	f, ok := fieldsByName[foldKey(name)]
	return f, ok
}

func (f Field) valid() bool {
	return f > FieldNone && f < fieldCount
}

func (f Field) String() string {
	if !f.valid() {
		return "invalid"
	}
	return fieldTable[f].name
}

// Category of the field. Invalid fields report Tolerated.
func (f Field) Category() Category {
	if !f.valid() {
		return Tolerated
	}
	return fieldTable[f].category
}

// Repeatable fields may occur several times in a record; their values
// are kept in order.
func (f Field) Repeatable() bool {
	return f.valid() && fieldTable[f].repeatable
}

// Flag fields are yes/no markers.
func (f Field) Flag() bool {
	return f.valid() && fieldTable[f].flag
}
