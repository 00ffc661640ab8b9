package repository

import (
	"context"
	"errors"
	"strings"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTenantConfigTableName = "tenant_gateway_configs"

var ErrMissingTenantID = errors.New("tenant id is required")

type tenantConfigItem struct {
	TenantID          string `dynamodbav:"tenant_id"`
	APIKey            string `dynamodbav:"api_key"`
	MerchantAccount   string `dynamodbav:"merchant_account"`
	Username          string `dynamodbav:"username"`
	Password          string `dynamodbav:"password"`
	Environment       string `dynamodbav:"environment"`
	ReturnURL         string `dynamodbav:"return_url"`
	Region            string `dynamodbav:"region"`
	CaptureDelayHours int    `dynamodbav:"capture_delay_hours"`
	Processor         string `dynamodbav:"processor"`
	LiveURLPrefix     string `dynamodbav:"live_url_prefix,omitempty"`
}

// TenantConfigDynamoRepository reads per-tenant gateway configuration.
//
// Table requirements:
//   - PK: tenant_id (string)
//
// Every Resolve is a consistent read; configuration is never cached here.
type TenantConfigDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ITenantConfigRepository = (*TenantConfigDynamoRepository)(nil)

func NewTenantConfigDynamoRepository(ddb dynamoAPI, tableName string) *TenantConfigDynamoRepository {
	return &TenantConfigDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultTenantConfigTableName),
	}
}

func (r *TenantConfigDynamoRepository) Resolve(ctx context.Context, tenantID string) (entities.TenantGatewayConfig, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.TenantGatewayConfig{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"tenant_id": &types.AttributeValueMemberS{Value: tenantID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TenantGatewayConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.TenantGatewayConfig{}, nil
	}

	var it tenantConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TenantGatewayConfig{}, err
	}
	return fromTenantConfigItem(it), nil
}

// Save upserts a tenant configuration. Used by operator tooling.
func (r *TenantConfigDynamoRepository) Save(ctx context.Context, cfg entities.TenantGatewayConfig) error {
	if strings.TrimSpace(cfg.TenantID) == "" {
		return ErrMissingTenantID
	}
	av, err := attributevalue.MarshalMap(toTenantConfigItem(cfg))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toTenantConfigItem(c entities.TenantGatewayConfig) tenantConfigItem {
	return tenantConfigItem{
		TenantID:          strings.TrimSpace(c.TenantID),
		APIKey:            c.APIKey,
		MerchantAccount:   c.MerchantAccount,
		Username:          c.Username,
		Password:          c.Password,
		Environment:       string(c.Environment),
		ReturnURL:         c.ReturnURL,
		Region:            c.Region,
		CaptureDelayHours: c.CaptureDelayHours,
		Processor:         string(c.Processor),
		LiveURLPrefix:     c.LiveURLPrefix,
	}
}

func fromTenantConfigItem(it tenantConfigItem) entities.TenantGatewayConfig {
	return entities.TenantGatewayConfig{
		TenantID:          it.TenantID,
		APIKey:            it.APIKey,
		MerchantAccount:   it.MerchantAccount,
		Username:          it.Username,
		Password:          it.Password,
		Environment:       entities.GatewayEnvironment(strings.ToUpper(it.Environment)),
		ReturnURL:         it.ReturnURL,
		Region:            it.Region,
		CaptureDelayHours: it.CaptureDelayHours,
		Processor:         entities.Processor(it.Processor),
		LiveURLPrefix:     it.LiveURLPrefix,
	}
}
