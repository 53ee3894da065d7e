package glue

import (
	"github.com/Luis23345432/Ingesta-Hotel2/constants"
	"github.com/Luis23345432/Ingesta-Hotel2/helper"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/glue"
	om "github.com/cevaris/ordered_map"
)

// NewCsvTableInput declares an external table over the comma-delimited files found at location.
// The column order of columns is kept.
func NewCsvTableInput(name string, location string, columns *om.OrderedMap) *glue.TableInput {
	cols := make([]*glue.Column, 0, columns.Len())
	iter := columns.IterFunc()
	for kv, ok := iter(); ok; kv, ok = iter() {
		typ, _ := helper.GetStringFromInterface(kv.Value)
		cols = append(cols, &glue.Column{
			Name: aws.String(kv.Key.(string)),
			Type: aws.String(typ),
		})
	}
	return &glue.TableInput{
		Name:      aws.String(name),
		TableType: aws.String(constants.GlueTableTypeExternal),
		Parameters: aws.StringMap(map[string]string{
			constants.GlueClassificationKey: constants.GlueClassificationCsv,
		}),
		StorageDescriptor: &glue.StorageDescriptor{
			Columns:      cols,
			Location:     aws.String(location),
			Compressed:   aws.Bool(false),
			InputFormat:  aws.String(constants.GlueInputFormat),
			OutputFormat: aws.String(constants.GlueOutputFormat),
			SerdeInfo: &glue.SerDeInfo{
				SerializationLibrary: aws.String(constants.GlueSerializationLib),
				Parameters: aws.StringMap(map[string]string{
					constants.GlueFieldDelimParameter: string(constants.CsvDelimiter),
				}),
			},
		},
	}
}
