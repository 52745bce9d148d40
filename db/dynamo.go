package db

import (
	"context"

	"github.com/abhishekvash/bare-minimum-theory/model"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"
)

// DynamoStore keeps one item per progression, keyed by PK.
type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

// NewDynamoStore connects to DynamoDB. An empty endpoint uses the AWS default
// for region; set it to e.g. http://localhost:8000 for DynamoDB Local.
func NewDynamoStore(endpoint, region, table string) (*DynamoStore, error) {
	cfg := &aws.Config{Region: aws.String(region)}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "creating DynamoDB session")
	}
	return NewDynamoStoreWithClient(dynamodb.New(sess), table), nil
}

func NewDynamoStoreWithClient(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func key(id string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String(id)},
	}
}

func (s *DynamoStore) Save(ctx context.Context, p model.Progression) (model.Progression, error) {
	p = ensureID(p)
	item, err := dynamodbattribute.MarshalMap(toRecord(p))
	if err != nil {
		return p, errors.Wrap(err, "encoding progression")
	}
	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	return p, errors.Wrap(err, "putting progression")
}

func (s *DynamoStore) Get(ctx context.Context, id string) (model.Progression, error) {
	out, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key:       key(id),
	})
	if err != nil {
		return model.Progression{}, errors.Wrap(err, "getting progression")
	}
	if len(out.Item) == 0 {
		return model.Progression{}, ErrNotFound
	}
	var r record
	if err := dynamodbattribute.UnmarshalMap(out.Item, &r); err != nil {
		return model.Progression{}, errors.Wrap(err, "decoding progression")
	}
	return fromRecord(r), nil
}

func (s *DynamoStore) List(ctx context.Context) ([]model.ProgressionSummary, error) {
	res := make([]model.ProgressionSummary, 0)
	var decodeErr error
	err := s.client.ScanPagesWithContext(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.table),
	}, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		var records []record
		if decodeErr = dynamodbattribute.UnmarshalListOfMaps(page.Items, &records); decodeErr != nil {
			return false
		}
		for _, r := range records {
			res = append(res, summarize(r))
		}
		return true
	})
	if err != nil {
		return nil, errors.Wrap(err, "scanning progressions")
	}
	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "decoding progressions")
	}
	return res, nil
}

func (s *DynamoStore) Delete(ctx context.Context, id string) error {
	out, err := s.client.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(s.table),
		Key:          key(id),
		ReturnValues: aws.String(dynamodb.ReturnValueAllOld),
	})
	if err != nil {
		return errors.Wrap(err, "deleting progression")
	}
	if len(out.Attributes) == 0 {
		return ErrNotFound
	}
	return nil
}
