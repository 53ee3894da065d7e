package constants

import (
	"fmt"
	"strings"
	"testing"
)

func TestListJoinDelimiterIsNotCsvDelimiter(t *testing.T) {
	if strings.ContainsRune(ListJoinDelimiter, CsvDelimiter) {
		t.Fatal("the list join delimiter must not contain the CSV delimiter")
	}
}

func TestNameFormats(t *testing.T) {
	cases := []struct {
		got      string
		expected string
	}{
		{fmt.Sprintf(SourceTableFormat, "dev", "rooms"), "dev-hotel-rooms"},
		{fmt.Sprintf(OutputFileFormat, "dev", "rooms"), "dev-rooms.csv"},
		{fmt.Sprintf(GlueDatabaseFormat, "dev"), "dev-glue-database"},
		{fmt.Sprintf(GlueTableFormat, "dev", "rooms"), "dev-rooms-table"},
		{fmt.Sprintf(S3LocationFormat, "my-bucket", "rooms"), "s3://my-bucket/rooms/"},
	}
	for _, c := range cases {
		if c.got != c.expected {
			t.Fatalf("expected %q; got %q", c.expected, c.got)
		}
	}
}
