package mongo

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	globalTestClient     *mongo.Client
	globalTestClientOnce sync.Once
)

// getGlobalTestClient connects once per package run. Tests skip when
// VIDLIST_TEST_MONGO_URI is not set.
func getGlobalTestClient(t *testing.T) *mongo.Client {
	uri := os.Getenv("VIDLIST_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("VIDLIST_TEST_MONGO_URI not set")
	}

	globalTestClientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		require.NoError(t, err)
		require.NoError(t, client.Ping(ctx, nil))
		globalTestClient = client
	})
	require.NotNil(t, globalTestClient)
	return globalTestClient
}

func setupTestDB(t *testing.T) *mongo.Database {
	client := getGlobalTestClient(t)

	safeName := strings.NewReplacer("/", "_", "\\", "_").Replace(t.Name())
	if len(safeName) > 20 {
		safeName = safeName[len(safeName)-20:]
	}
	dbName := fmt.Sprintf("test_vidlist_%s_%d", safeName, time.Now().UnixNano()%100000)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Database(dbName).Drop(ctx)
	})

	return client.Database(dbName)
}
