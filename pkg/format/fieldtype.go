package format

// FieldType enumerates the column kinds a YXDB schema can declare.
type FieldType uint8

const (
	Bool FieldType = iota
	Byte
	Int16
	Int32
	Int64
	FixedDecimal
	Float
	Double
	String
	WString
	VString
	VWString
	Date
	Time
	DateTime
	Blob
	SpatialObj
	Unknown
)

// fieldTypeNames is the closed bidirectional registry between field kinds
// and the canonical spellings used in metadata XML. Every variant is
// present; the reverse map is derived once at init.
var fieldTypeNames = map[FieldType]string{
	Bool:         "Bool",
	Byte:         "Byte",
	Int16:        "Int16",
	Int32:        "Int32",
	Int64:        "Int64",
	FixedDecimal: "FixedDecimal",
	Float:        "Float",
	Double:       "Double",
	String:       "String",
	WString:      "WString",
	VString:      "V_String",
	VWString:     "V_WString",
	Date:         "Date",
	Time:         "Time",
	DateTime:     "DateTime",
	Blob:         "Blob",
	SpatialObj:   "SpatialObj",
	Unknown:      "Unknown",
}

var fieldTypesByName = func() map[string]FieldType {
	m := make(map[string]FieldType, len(fieldTypeNames))
	for t, name := range fieldTypeNames {
		m[name] = t
	}
	return m
}()

// String returns the canonical metadata spelling of the field type.
func (t FieldType) String() string {
	if name, ok := fieldTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// FieldTypeByName maps a metadata type string back to its kind. Spellings
// outside the registry map to Unknown; files written by newer tools keep
// decoding.
func FieldTypeByName(name string) FieldType {
	if t, ok := fieldTypesByName[name]; ok {
		return t
	}
	return Unknown
}
