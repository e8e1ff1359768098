package store

import (
	"context"
	"os"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// TestMongoDBStore_BasicOperations tests basic operations
// Note: This test requires a running MongoDB instance
// Set MONGODB_URI environment variable to override default connection string
func TestMongoDBStore_BasicOperations(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	mongoStore, err := NewMongoDBStore(MongoDBStoreConfig{
		URI:        uri,
		Database:   "adminshell_test",
		Collection: "preferences_test",
	})
	if err != nil {
		t.Skipf("Skipping test: MongoDB not available: %v", err)
	}
	defer mongoStore.Close()

	ctx := context.Background()
	mongoStore.collection.DeleteMany(ctx, bson.M{})

	var store PreferenceStore = mongoStore

	if _, ok, err := store.Get(ctx, "admin_sidebar_folded"); err != nil || ok {
		t.Fatalf("Expected missing key, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "admin_sidebar_folded", "true"); err != nil {
		t.Fatalf("Failed to set preference: %v", err)
	}
	if err := store.Set(ctx, "admin_sidebar_folded", "false"); err != nil {
		t.Fatalf("Failed to upsert preference: %v", err)
	}

	v, ok, err := store.Get(ctx, "admin_sidebar_folded")
	if err != nil || !ok {
		t.Fatalf("Failed to get preference: ok=%v err=%v", ok, err)
	}
	if v != "false" {
		t.Errorf("Value mismatch: got %s, want false", v)
	}

	if err := store.Delete(ctx, "admin_sidebar_folded"); err != nil {
		t.Fatalf("Failed to delete preference: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "admin_sidebar_folded"); ok {
		t.Errorf("Expected key to be deleted")
	}
}
