package format

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// Field describes one column of a record schema. Size and Scale are
// optional in the XML; zero means the attribute was absent.
type Field struct {
	Name  string
	Type  FieldType
	Size  int
	Scale int
}

// RecordInfo is one record schema: an ordered list of fields.
type RecordInfo struct {
	Fields []Field
}

// Metadata holds every record schema declared by a file, in input order.
type Metadata struct {
	Records []RecordInfo
}

// utf16le transcodes between UTF-8 and the BOM-less UTF-16LE the metadata
// section is stored in.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeMetadata renders the schemas as a compact MetaInfo XML document,
// appends the newline and NUL sentinels, and encodes the whole text as
// UTF-16LE. The byte length is always even; the header's metaInfoLength
// must be set to half of it.
func EncodeMetadata(m *Metadata) ([]byte, error) {
	var sb strings.Builder
	if len(m.Records) == 0 {
		sb.WriteString("<MetaInfo/>")
	} else {
		sb.WriteString("<MetaInfo>")
		for _, ri := range m.Records {
			if len(ri.Fields) == 0 {
				sb.WriteString("<RecordInfo/>")
				continue
			}
			sb.WriteString("<RecordInfo>")
			for _, f := range ri.Fields {
				writeFieldElement(&sb, f)
			}
			sb.WriteString("</RecordInfo>")
		}
		sb.WriteString("</MetaInfo>")
	}
	sb.WriteString("\n\x00")

	encoded, err := utf16le.NewEncoder().Bytes([]byte(sb.String()))
	if err != nil {
		return nil, err
	}
	return encoded, nil
}

func writeFieldElement(sb *strings.Builder, f Field) {
	sb.WriteString(`<Field name="`)
	xml.EscapeText(sb, []byte(f.Name))
	sb.WriteString(`" type="`)
	sb.WriteString(f.Type.String())
	sb.WriteString(`"`)
	if f.Size != 0 {
		sb.WriteString(` size="`)
		sb.WriteString(strconv.Itoa(f.Size))
		sb.WriteString(`"`)
	}
	if f.Scale != 0 {
		sb.WriteString(` scale="`)
		sb.WriteString(strconv.Itoa(f.Scale))
		sb.WriteString(`"`)
	}
	sb.WriteString(" />")
}

// DecodeMetadata decodes a metadata window of 2*metaInfoLength bytes:
// UTF-16LE text ending in a newline and a NUL, holding a MetaInfo XML
// document. Unknown field type strings decode as Unknown; attributes the
// registry does not know are ignored.
func DecodeMetadata(b []byte) (*Metadata, error) {
	if len(b) < 4 || len(b)%2 != 0 {
		return nil, &MetadataTruncatedError{Length: len(b)}
	}

	decoded, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return nil, &XMLMalformedError{Err: err}
	}
	text := string(decoded)
	if !strings.HasSuffix(text, "\n\x00") {
		return nil, &MetadataTruncatedError{Length: len(b)}
	}
	text = text[:len(text)-2]

	return parseMetaInfo(text)
}

// parseMetaInfo walks the token stream instead of unmarshalling into a
// fixed shape: every RecordInfo descendant counts, wherever it nests, and
// every Field descendant within it.
func parseMetaInfo(text string) (*Metadata, error) {
	m := &Metadata{}
	dec := xml.NewDecoder(strings.NewReader(text))
	recordDepth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &XMLMalformedError{Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "RecordInfo":
				recordDepth++
				if recordDepth == 1 {
					m.Records = append(m.Records, RecordInfo{})
				}
			case "Field":
				if recordDepth == 0 {
					continue
				}
				f, err := parseField(t)
				if err != nil {
					return nil, err
				}
				ri := &m.Records[len(m.Records)-1]
				ri.Fields = append(ri.Fields, f)
			}
		case xml.EndElement:
			if t.Name.Local == "RecordInfo" && recordDepth > 0 {
				recordDepth--
			}
		}
	}
	return m, nil
}

func parseField(el xml.StartElement) (Field, error) {
	var f Field
	f.Type = Unknown
	for _, attr := range el.Attr {
		switch attr.Name.Local {
		case "name":
			f.Name = attr.Value
		case "type":
			f.Type = FieldTypeByName(attr.Value)
		case "size":
			n, err := strconv.Atoi(attr.Value)
			if err != nil {
				return Field{}, &BadFieldAttributeError{Field: f.Name, Attr: "size", Value: attr.Value}
			}
			f.Size = n
		case "scale":
			n, err := strconv.Atoi(attr.Value)
			if err != nil {
				return Field{}, &BadFieldAttributeError{Field: f.Name, Attr: "scale", Value: attr.Value}
			}
			f.Scale = n
		}
	}
	return f, nil
}
