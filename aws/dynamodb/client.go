package dynamodb

import (
	"context"

	"github.com/Luis23345432/Ingesta-Hotel2/stream"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"
)

// Cursor is the opaque continuation key of a scan. A nil Cursor starts at the beginning
// of the table when passed in, and means the table is exhausted when returned.
type Cursor map[string]*dynamodb.AttributeValue

// Page is one response of a paginated table scan.
type Page struct {
	Records []stream.Record
	Cursor  Cursor
}

// PageScanner fetches one page of a full table scan.
type PageScanner interface {
	ScanPage(ctx context.Context, table string, cursor Cursor, limit int64) (Page, error)
}

// Client scans DynamoDB tables.
type Client struct {
	api     dynamodbiface.DynamoDBAPI
	decoder *dynamodbattribute.Decoder
}

func NewClient(region string) (*Client, error) {
	sess, err := session.NewSession(aws.NewConfig().WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "error creating AWS session for DynamoDB")
	}
	return NewClientWithAPI(dynamodb.New(sess)), nil
}

func NewClientWithAPI(api dynamodbiface.DynamoDBAPI) *Client {
	return &Client{
		api: api,
		decoder: dynamodbattribute.NewDecoder(func(d *dynamodbattribute.Decoder) {
			d.UseNumber = true // keep numbers as their decimal text, e.g. 12.50
		}),
	}
}

// ScanPage reads the page that starts at cursor. Use limit 0 to let DynamoDB size the page.
func (c *Client) ScanPage(ctx context.Context, table string, cursor Cursor, limit int64) (Page, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(table)}
	if len(cursor) > 0 {
		input.ExclusiveStartKey = cursor
	}
	if limit > 0 {
		input.Limit = aws.Int64(limit)
	}
	out, err := c.api.ScanWithContext(ctx, input)
	if err != nil {
		return Page{}, errors.Wrapf(err, "error scanning table %v", table)
	}
	p := Page{Records: make([]stream.Record, 0, len(out.Items))}
	for _, item := range out.Items {
		rec, err := c.decode(item)
		if err != nil {
			return Page{}, errors.Wrapf(err, "error decoding item from table %v", table)
		}
		p.Records = append(p.Records, rec)
	}
	if len(out.LastEvaluatedKey) > 0 {
		p.Cursor = out.LastEvaluatedKey
	}
	return p, nil
}

func (c *Client) decode(item map[string]*dynamodb.AttributeValue) (stream.Record, error) {
	m := make(map[string]interface{}, len(item))
	if err := c.decoder.Decode(&dynamodb.AttributeValue{M: item}, &m); err != nil {
		return stream.NewNilRecord(), err
	}
	for k, v := range m {
		m[k] = normaliseSet(v)
	}
	return stream.NewRecordFromMap(m), nil
}

// normaliseSet converts number and binary sets to string lists so they behave like string sets.
func normaliseSet(v interface{}) interface{} {
	switch s := v.(type) {
	case []dynamodbattribute.Number:
		retval := make([]string, 0, len(s))
		for _, n := range s {
			retval = append(retval, n.String())
		}
		return retval
	case [][]byte:
		retval := make([]string, 0, len(s))
		for _, b := range s {
			retval = append(retval, string(b))
		}
		return retval
	default:
		return v
	}
}
