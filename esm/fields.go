package esm

import "sort"

// TranslatableSubRecords maps a record tag to the subrecord tags that
// carry human-readable text for it. The lists are sorted so extraction
// order is reproducible run to run. This table is hand-curated domain
// data for the TES3 format; record tags absent from it are passed over
// entirely.
var TranslatableSubRecords = map[string][]string{
	"ACTI": {"FNAM"},
	"ALCH": {"FNAM"},
	"APPA": {"FNAM"},
	"ARMO": {"FNAM"},
	"BODY": {"FNAM"},
	"BOOK": {"FNAM", "TEXT"},
	"BSGN": {"DESC", "FNAM"},
	"CLAS": {"DESC", "FNAM"},
	"CLOT": {"FNAM"},
	"CONT": {"FNAM"},
	"CREA": {"FNAM"},
	"DIAL": {"NAME"},
	"DOOR": {"FNAM"},
	"ENCH": {"FNAM"},
	"FACT": {"FNAM"},
	"GLOB": {"FNAM"},
	"GMST": {"STRV"},
	"INFO": {"NAME"},
	"INGR": {"FNAM"},
	"LEVC": {"NNAM"},
	"LEVI": {"NNAM"},
	"LIGH": {"FNAM"},
	"LOCK": {"FNAM"},
	"MGEF": {"DESC"},
	"MISC": {"FNAM"},
	"NPC_": {"FNAM"},
	"PGRD": {"NAME"},
	"PROB": {"FNAM"},
	"RACE": {"DESC", "FNAM"},
	"REGN": {"FNAM"},
	"REPA": {"FNAM"},
	"SKIL": {"DESC"},
	"SNDG": {"FNAM"},
	"SOUN": {"FNAM"},
	"SPEL": {"FNAM"},
	"SSCR": {"NAME"},
	"STAT": {"FNAM"},
	"WEAP": {"FNAM"},
}

// idCandidates lists subrecord tags tried in priority order to derive a
// record's human-meaningful object identifier.
var idCandidates = []string{"NAME", "INAM", "CNAM", "BNAM", "ANAM", "NNAM"}

// UnknownObjectID is the identifier used when no candidate subrecord is
// present in a record.
const UnknownObjectID = "UNKNOWN_ID"

// ObjectID derives the object identifier for a record from its parsed
// subrecords: the decoded text of the first candidate tag present, in
// candidate priority order and file order within a tag.
func ObjectID(subs []SubRecord) string {
	for _, tag := range idCandidates {
		for i := range subs {
			if subs[i].Tag == tag {
				return DecodeText(subs[i].Data)
			}
		}
	}
	return UnknownObjectID
}

// RecordTypes returns the sorted list of record tags that can carry
// translatable text.
func RecordTypes() []string {
	types := make([]string, 0, len(TranslatableSubRecords))
	for tag := range TranslatableSubRecords {
		types = append(types, tag)
	}
	sort.Strings(types)
	return types
}
