package glue

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/glue"
	"github.com/aws/aws-sdk-go/service/glue/glueiface"
	"github.com/pkg/errors"
)

// Catalog is the subset of Glue Data Catalog operations used to register exported files.
type Catalog interface {
	// DatabaseExists returns false without error if the database is not found.
	DatabaseExists(ctx context.Context, name string) (bool, error)
	// CreateDatabase returns an error satisfying IsAlreadyExists if the database already exists.
	CreateDatabase(ctx context.Context, name string, description string) error
	// CreateTable returns an error satisfying IsAlreadyExists if the table already exists.
	CreateTable(ctx context.Context, database string, table *glue.TableInput) error
	UpdateTable(ctx context.Context, database string, table *glue.TableInput) error
}

// Client implements Catalog on top of the AWS SDK.
type Client struct {
	api glueiface.GlueAPI
}

func NewClient(region string) (*Client, error) {
	sess, err := session.NewSession(aws.NewConfig().WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "error creating AWS session for Glue")
	}
	return NewClientWithAPI(glue.New(sess)), nil
}

func NewClientWithAPI(api glueiface.GlueAPI) *Client {
	return &Client{api: api}
}

func (c *Client) DatabaseExists(ctx context.Context, name string) (bool, error) {
	_, err := c.api.GetDatabaseWithContext(ctx, &glue.GetDatabaseInput{Name: aws.String(name)})
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "error reading Glue database %v", name)
	}
	return true, nil
}

func (c *Client) CreateDatabase(ctx context.Context, name string, description string) error {
	_, err := c.api.CreateDatabaseWithContext(ctx, &glue.CreateDatabaseInput{
		DatabaseInput: &glue.DatabaseInput{
			Name:        aws.String(name),
			Description: aws.String(description),
		},
	})
	return errors.Wrapf(err, "error creating Glue database %v", name) // nil if err is nil
}

func (c *Client) CreateTable(ctx context.Context, database string, table *glue.TableInput) error {
	_, err := c.api.CreateTableWithContext(ctx, &glue.CreateTableInput{
		DatabaseName: aws.String(database),
		TableInput:   table,
	})
	return errors.Wrapf(err, "error creating Glue table %v.%v", database, aws.StringValue(table.Name))
}

func (c *Client) UpdateTable(ctx context.Context, database string, table *glue.TableInput) error {
	_, err := c.api.UpdateTableWithContext(ctx, &glue.UpdateTableInput{
		DatabaseName: aws.String(database),
		TableInput:   table,
	})
	return errors.Wrapf(err, "error updating Glue table %v.%v", database, aws.StringValue(table.Name))
}

// IsAlreadyExists reports whether err, or the error it wraps, is a Glue AlreadyExistsException.
func IsAlreadyExists(err error) bool {
	return hasCode(err, glue.ErrCodeAlreadyExistsException)
}

// IsNotFound reports whether err, or the error it wraps, is a Glue EntityNotFoundException.
func IsNotFound(err error) bool {
	return hasCode(err, glue.ErrCodeEntityNotFoundException)
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	if aerr, ok := errors.Cause(err).(awserr.Error); ok {
		return aerr.Code() == code
	}
	return false
}
