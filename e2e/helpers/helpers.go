package helpers

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MichalMitros/marketplace-tracker/internal/decoder"
	"github.com/MichalMitros/marketplace-tracker/internal/decoder/testdata"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/models"
	pgmodels "github.com/MichalMitros/marketplace-tracker/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/marketplace-tracker/internal/platform/storage/storagetesting"
	"github.com/MichalMitros/marketplace-tracker/pkg/v1/notification"
	"github.com/go-faker/faker/v4"
	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
	waitTimeout = 30 * time.Second
)

// WaitForParsingToBeFinished is blocking helper function, returns latest parsing of provided type
// after n parsings of this type are finished.
func WaitForParsingToBeFinished(t *testing.T, queryable qrm.Queryable, parsingType models.ParsingType, n int) *models.Parsing {
	t.Helper()

	deadline := time.After(waitTimeout)
	for {
		select {
		case <-deadline:
			require.FailNow(t, "parsing wasn't finished in time", parsingType)
		case <-time.After(time.Millisecond * 250):
		}

		finished := lo.CountBy(storagetesting.GetParsings(t, queryable), func(p pgmodels.Parsing) bool {
			return p.Type == string(parsingType) && p.FinishedAt != nil
		})
		if finished >= n {
			return storagetesting.GetLatestParsing(t, queryable, parsingType)
		}
	}
}

// PrepareMockedMarketplace is helper function for mocking marketplace endpoints.
// Product-detail endpoint returns products of currently set response, from 0 to len(responses) exclusive.
// Every basket path of first shard returns product card.
func PrepareMockedMarketplace(t *testing.T, responses [][]decoder.Product) (*httptest.Server, func(int)) {
	t.Helper()

	bodies := lo.Map(responses, func(products []decoder.Product, _ int) []byte {
		return DetailResponse(t, products)
	})
	current := atomic.Int32{}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.Header().Add(contentType, "application/json")

		switch {
		case req.URL.Path == "/cards/detail":
			wrt.WriteHeader(http.StatusOK)
			_, _ = wrt.Write(bodies[current.Load()])
		case strings.HasPrefix(req.URL.Path, "/basket-01/"):
			wrt.WriteHeader(http.StatusOK)
			_, _ = wrt.Write([]byte(testdata.CardResponse))
		default:
			wrt.WriteHeader(http.StatusNotFound)
		}
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, func(i int) { current.Store(int32(i)) }
}

// DetailResponse is helper function which wraps products into product-detail response.
func DetailResponse(t *testing.T, products []decoder.Product) []byte {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"state": 0,
		"data":  map[string]any{"products": products},
	})
	if err != nil {
		require.FailNow(t, "can't encode product-detail response", err)
	}

	return body
}

// GenerateProducts generates n in stock products with vendor codes in [100001;100000+n].
func GenerateProducts(t *testing.T, n int) []decoder.Product {
	t.Helper()

	return lo.Times(n, func(ix int) decoder.Product {
		salePrice := (rand.Intn(5000) + 100) * 100

		return decoder.Product{
			ID:         100001 + ix,
			Name:       faker.Word(),
			PriceU:     lo.ToPtr(salePrice * 2),
			SalePriceU: lo.ToPtr(salePrice),
			Feedbacks:  rand.Intn(1000),
			Sizes: []decoder.Size{
				{Name: "M", Stocks: []decoder.Stock{{Warehouse: 507, Qty: rand.Intn(10) + 1}}},
			},
		}
	})
}

// ToImportedItems is helper function converting products into imported items.
func ToImportedItems(t *testing.T, products []decoder.Product) []models.ImportedItem {
	t.Helper()

	return lo.Map(products, func(product decoder.Product, _ int) models.ImportedItem {
		return models.ImportedItem{
			VendorCode: product.ID,
			Name:       product.Name,
			Keywords:   []string{},
		}
	})
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// ReceiveNotifications is blocking helper function, returns n price changed messages from queue.
func ReceiveNotifications(t *testing.T, channel *amqp.Channel, queueName string, n int) []notification.PriceChanged {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()

	deliveries, err := channel.ConsumeWithContext(ctx, queueName, "", true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't consume notifications", queueName, err)
	}

	results := make([]notification.PriceChanged, 0, n)
	for len(results) < n {
		select {
		case <-ctx.Done():
			require.FailNow(t, "notifications weren't received in time", "received %d of %d", len(results), n)
		case delivery, ok := <-deliveries:
			if !ok {
				require.FailNow(t, "notifications consumer closed", queueName)
			}
			changed, err := notification.Decode(delivery.Body)
			if err != nil {
				require.FailNow(t, "can't decode notification", err)
			}
			results = append(results, changed)
		}
	}

	return results
}
