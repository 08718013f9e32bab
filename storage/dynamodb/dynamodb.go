package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/example/todo/storage"
	"github.com/example/todo/todo"
)

func init() {
	storage.Register(&driver{})
}

type driver struct {
}

func (driver *driver) Name() string {
	return "dynamodb"
}

func (driver *driver) Open(ctx context.Context, options storage.Options) (storage.Repository, error) {
	if options.TableName == "" {
		return nil, fmt.Errorf("dynamodb driver requires a table name")
	}

	var loadOptions []func(*awsconfig.LoadOptions) error

	if options.Region != "" {
		loadOptions = append(loadOptions, awsconfig.WithRegion(options.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)

	if err != nil {
		return nil, fmt.Errorf("could not load aws configuration: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if options.Endpoint != "" {
			o.BaseEndpoint = aws.String(options.Endpoint)
		}
	})

	return New(client, options.TableName), nil
}

// Client is the slice of the DynamoDB API this store uses
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ storage.Repository = (*Store)(nil)

// Store is the durable repository: a single remote table with the
// todo id as partition key and no secondary indexes. Provider
// failures surface as storage.ErrUnavailable; retry behavior is
// whatever the SDK does by default.
type Store struct {
	client    Client
	tableName string
}

// New builds a store over an existing client and table
func New(client Client, tableName string) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
	}
}

type record struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description"`
	Completed   bool   `dynamodbav:"completed"`
}

// FindAll performs a full table scan. Unbounded, which is acceptable
// only because the dataset is assumed small.
func (store *Store) FindAll(ctx context.Context) ([]todo.Todo, error) {
	todos := []todo.Todo{}

	var startKey map[string]types.AttributeValue

	for {
		out, err := store.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(store.tableName),
			ExclusiveStartKey: startKey,
		})

		if err != nil {
			return nil, fmt.Errorf("%w: could not scan table %s: %s", storage.ErrUnavailable, store.tableName, err)
		}

		var records []record

		if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
			return nil, fmt.Errorf("could not decode scan result: %w", err)
		}

		for _, r := range records {
			todos = append(todos, todo.Todo(r))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}

		startKey = out.LastEvaluatedKey
	}

	return todos, nil
}

func (store *Store) FindByID(ctx context.Context, id string) (*todo.Todo, error) {
	out, err := store.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(store.tableName),
		Key:       idKey(id),
	})

	if err != nil {
		return nil, fmt.Errorf("%w: could not get todo %s: %s", storage.ErrUnavailable, id, err)
	}

	if out.Item == nil {
		return nil, nil
	}

	var r record

	if err := attributevalue.UnmarshalMap(out.Item, &r); err != nil {
		return nil, fmt.Errorf("could not decode todo %s: %w", id, err)
	}

	t := todo.Todo(r)

	return &t, nil
}

func (store *Store) Save(ctx context.Context, t todo.Todo) (todo.Todo, error) {
	item, err := attributevalue.MarshalMap(record(t))

	if err != nil {
		return todo.Todo{}, fmt.Errorf("could not encode todo %s: %w", t.ID, err)
	}

	_, err = store.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(store.tableName),
		Item:      item,
	})

	if err != nil {
		return todo.Todo{}, fmt.Errorf("%w: could not save todo %s: %s", storage.ErrUnavailable, t.ID, err)
	}

	return t, nil
}

func (store *Store) DeleteByID(ctx context.Context, id string) error {
	_, err := store.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(store.tableName),
		Key:       idKey(id),
	})

	if err != nil {
		return fmt.Errorf("%w: could not delete todo %s: %s", storage.ErrUnavailable, id, err)
	}

	return nil
}

func (store *Store) Close() error {
	return nil
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
