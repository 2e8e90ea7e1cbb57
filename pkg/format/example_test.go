package format_test

import (
	"fmt"
	"log"

	"github.com/ssargent/yxdb/pkg/codec"
	"github.com/ssargent/yxdb/pkg/format"
)

// ExampleEncodeFile demonstrates building a one-column file and reading
// it back.
func ExampleEncodeFile() {
	f := &format.File{
		Metadata: format.Metadata{Records: []format.RecordInfo{
			{Fields: []format.Field{{Name: "x", Type: format.Double}}},
		}},
		BlockIndex: []int64{0},
	}

	w := codec.NewWriter()
	for _, x := range []float64{3.14, 2.71} {
		if err := format.EncodeValue(w, format.DoubleValue(x)); err != nil {
			log.Fatal(err)
		}
	}
	f.Payload = w.Bytes()

	if err := f.Finalize(); err != nil {
		log.Fatal(err)
	}
	encoded, err := format.EncodeFile(f)
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := format.DecodeFile(encoded)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("records: %d\n", decoded.Header.NumRecords)
	fmt.Printf("field: %s %s\n", decoded.Metadata.Records[0].Fields[0].Name, decoded.Metadata.Records[0].Fields[0].Type)

	r := codec.NewReader(decoded.Payload)
	for r.Remaining() > 0 {
		v, err := format.DecodeValue(r, format.Double)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("value: %g\n", v.Double)
	}

	// Output:
	// records: 2
	// field: x Double
	// value: 3.14
	// value: 2.71
}
