package repository

import (
	"context"
	"sort"
	"strings"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName    = "gateway_notifications"
	defaultNotificationsSessionIndex = "checkout_session_id-index"
)

type notificationItem struct {
	ID                     string `dynamodbav:"id"`
	KbAccountID            string `dynamodbav:"kb_account_id"`
	KbPaymentID            string `dynamodbav:"kb_payment_id"`
	KbPaymentTransactionID string `dynamodbav:"kb_payment_transaction_id"`
	TenantID               string `dynamodbav:"tenant_id"`
	CheckoutSessionID      string `dynamodbav:"checkout_session_id"`
	TransactionType        string `dynamodbav:"transaction_type"`
	Amount                 string `dynamodbav:"amount"`
	Currency               string `dynamodbav:"currency"`
	TransactionStatus      string `dynamodbav:"transaction_status"`
	PspReference           string `dynamodbav:"psp_reference"`
	CreatedDate            string `dynamodbav:"created_date"`
	AdditionalData         string `dynamodbav:"additional_data,omitempty"`
}

// NotificationDynamoRepository reads recorded processor notifications.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: checkout_session_id-index (PK: checkout_session_id)
type NotificationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	indexName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb dynamoAPI, tableName, indexName string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultNotificationsTableName),
		indexName: tableOrDefault(indexName, defaultNotificationsSessionIndex),
	}
}

// ListByCheckoutSessionID returns the notifications of a session that belong to
// the account. The tenant filter applies only when tenantID is set. Results are
// ordered by created_date.
func (r *NotificationDynamoRepository) ListByCheckoutSessionID(ctx context.Context, kbAccountID, sessionID, tenantID string) ([]entities.Notification, error) {
	filter := "#acc = :acc"
	names := map[string]string{"#acc": "kb_account_id"}
	values := map[string]types.AttributeValue{
		":sid": &types.AttributeValueMemberS{Value: sessionID},
		":acc": &types.AttributeValueMemberS{Value: kbAccountID},
	}
	if tenantID = strings.TrimSpace(tenantID); tenantID != "" {
		filter += " AND #tid = :tid"
		names["#tid"] = "tenant_id"
		values[":tid"] = &types.AttributeValueMemberS{Value: tenantID}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(r.indexName),
		KeyConditionExpression:    aws.String("#sid = :sid"),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#sid": "checkout_session_id"}),
		ExpressionAttributeValues: values,
	}

	items := make([]entities.Notification, 0)
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it notificationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromNotificationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedDate < items[j].CreatedDate
	})
	return items, nil
}

func fromNotificationItem(it notificationItem) entities.Notification {
	return entities.Notification{
		ID:                     it.ID,
		KbAccountID:            it.KbAccountID,
		KbPaymentID:            it.KbPaymentID,
		KbPaymentTransactionID: it.KbPaymentTransactionID,
		TenantID:               it.TenantID,
		CheckoutSessionID:      it.CheckoutSessionID,
		TransactionType:        it.TransactionType,
		Amount:                 it.Amount,
		Currency:               it.Currency,
		TransactionStatus:      it.TransactionStatus,
		PspReference:           it.PspReference,
		CreatedDate:            it.CreatedDate,
		AdditionalData:         it.AdditionalData,
	}
}
