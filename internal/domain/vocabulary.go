package domain

// Vocabulary holds the synonym tables used to canonicalise records. Build
// it once with NewVocabulary and share it between records; it is not
// modified after construction.
type Vocabulary struct {
	FieldNames  *Synonyms
	Units       *Synonyms
	Stages      *Synonyms
	Precisions  *Synonyms
	Collections *Synonyms
	Substrates  *Synonyms
	Biotopes    *Synonyms
	Trees       *Synonyms

	// Taxa, when set, is used to check and normalise species names.
	Taxa Taxa
}

// NewVocabulary returns the standard tables.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		FieldNames: NewSynonyms(
			[]string{"artnamn", "art", "species", "taxon"},
			[]string{"lokalnamn", "lokal", "plats", "place"},
			[]string{"startdatum", "datum", "date"},
			[]string{"slutdatum", "till datum"},
			[]string{"starttid", "tid", "time"},
			[]string{"koordinat", "rt90", "coordinate", "koord"},
			[]string{"nordkoordinat", "nord", "north"},
			[]string{"ostkoordinat", "ost", "east"},
			[]string{"noggrannhet", "precision", "accuracy"},
			[]string{"antal", "count"},
			[]string{"kommentar", "kommentarer", "anteckning", "comments", "comment"},
			[]string{"medobservatörer", "medobservatör", "observatörer", "observers"},
			[]string{"osäker bestämning", "osäker", "osäker artbestämning"},
			[]string{"ej återfunnen", "ej återfunnet", "ej funnen"},
			[]string{"skyddad lokal", "skyddad", "sekretess"},
			[]string{"samling", "herbarium", "belägg"},
		),
		Units: NewSynonyms(
			[]string{"plantor", "planta", "plant", "pl", "plantor/tuvor"},
			[]string{"tuvor", "tuva"},
			[]string{"stänglar", "stängel", "strån", "strå"},
			[]string{"skott"},
			[]string{"bladrosetter", "bladrosett", "rosetter", "rosett"},
			[]string{"exemplar", "ex", "individer", "individ", "st"},
			[]string{"fruktkroppar", "fruktkropp"},
			[]string{"kolonier", "koloni"},
			[]string{"kvadratmeter", "m2", "m²", "kvm"},
			[]string{"kvadratdecimeter", "dm2", "dm²"},
		),
		Stages: NewSynonyms(
			[]string{"groddplanta", "grodd", "groddplantor"},
			[]string{"vegetativ", "steril", "veg"},
			[]string{"knopp", "knoppar", "i knopp"},
			[]string{"blomning", "blommande", "i blom", "blom"},
			[]string{"överblommad", "utblommad"},
			[]string{"frukt", "fruktsättning", "med frukt", "fertil"},
			[]string{"vissnad", "vissen", "död"},
		),
		Precisions: NewSynonyms(
			[]string{"5 m", "5m", "5", "1 m", "1m"},
			[]string{"10 m", "10m", "10"},
			[]string{"25 m", "25m", "25"},
			[]string{"50 m", "50m", "50"},
			[]string{"100 m", "100m", "100"},
			[]string{"250 m", "250m", "250"},
			[]string{"500 m", "500m", "500"},
			[]string{"1000 m", "1000m", "1000", "1 km", "1km"},
			[]string{"2500 m", "2500m", "2500", "2,5 km"},
			[]string{"5000 m", "5000m", "5000", "5 km"},
			[]string{"10000 m", "10000m", "10000", "10 km"},
		),
		Collections: NewSynonyms(
			[]string{"UPS", "Uppsala"},
			[]string{"S", "NRM", "Riksmuseet", "Naturhistoriska riksmuseet"},
			[]string{"LD", "Lund"},
			[]string{"GB", "Göteborg"},
			[]string{"UME", "Umeå"},
			[]string{"OHN", "Oskarshamn"},
			[]string{"Eget herbarium", "eget", "privat", "herb."},
		),
		Substrates: NewSynonyms(
			[]string{"död ved", "ved", "trä", "lågor", "låga"},
			[]string{"bark"},
			[]string{"jord", "mark"},
			[]string{"sand", "grus"},
			[]string{"sten", "berg", "klippa", "häll"},
			[]string{"mossa", "mossor"},
			[]string{"förna", "löv", "barr"},
			[]string{"spillning", "gödsel"},
		),
		Biotopes: NewSynonyms(
			[]string{"barrskog", "tallskog", "granskog"},
			[]string{"lövskog", "ädellövskog"},
			[]string{"blandskog"},
			[]string{"äng", "ängsmark"},
			[]string{"betesmark", "hage", "hagmark"},
			[]string{"åkerkant", "åker"},
			[]string{"vägkant", "vägren", "dike"},
			[]string{"ruderatmark", "ruderat", "bangård"},
			[]string{"strand", "strandäng"},
			[]string{"myr", "mosse", "kärr"},
			[]string{"trädgård", "park"},
		),
		Trees: NewSynonyms(
			[]string{"tall", "Pinus sylvestris"},
			[]string{"gran", "Picea abies"},
			[]string{"björk", "Betula"},
			[]string{"ek", "Quercus robur"},
			[]string{"bok", "Fagus sylvatica"},
			[]string{"asp", "Populus tremula"},
			[]string{"al", "Alnus"},
			[]string{"ask", "Fraxinus excelsior"},
			[]string{"lönn", "Acer platanoides"},
			[]string{"lind", "Tilia cordata"},
			[]string{"sälg", "Salix caprea"},
			[]string{"rönn", "Sorbus aucuparia"},
			[]string{"alm", "Ulmus glabra"},
		),
	}
}

// Field maps an input field name, or any alias of it, to a Field.
func (v *Vocabulary) Field(name string) (Field, bool) {
	return LookupField(v.FieldNames.Resolve(name, name))
}
