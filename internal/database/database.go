// Package database provides the Firestore connection layer for firesnap.
package database

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/dbsmedya/firesnap/internal/config"
)

// Document is a raw document read from the backend: its identifier and
// field map with native Firestore value types.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Backend is the minimal capability surface the pipelines need. The
// export and import logic must not assume anything beyond these
// operations.
type Backend interface {
	// ListCollections returns the names of all root collections, sorted.
	ListCollections(ctx context.Context) ([]string, error)

	// SampleDocuments reads up to limit documents from a collection in
	// the backend's default enumeration order.
	SampleDocuments(ctx context.Context, collection string, limit int) ([]Document, error)

	// EstimateCount counts documents in a collection up to cap.
	// capped is true when the collection holds at least cap documents.
	EstimateCount(ctx context.Context, collection string, cap int) (count int, capped bool, err error)

	// WriteDocument upserts a document under its original identifier.
	WriteDocument(ctx context.Context, collection, id string, data map[string]interface{}) error

	// Close releases the underlying connection.
	Close() error
}

// Client implements Backend over the Cloud Firestore SDK.
type Client struct {
	fs        *firestore.Client
	projectID string
}

// Connect opens a Firestore client for the configured project and
// database instance, authenticating with the service account file.
func Connect(ctx context.Context, cfg *config.Config, projectID string) (*Client, error) {
	opts := []option.ClientOption{
		option.WithCredentialsFile(cfg.ServiceAccountPath),
	}

	var fs *firestore.Client
	var err error
	if cfg.UsesDefaultDatabase() {
		fs, err = firestore.NewClient(ctx, projectID, opts...)
	} else {
		fs, err = firestore.NewClientWithDatabase(ctx, projectID, cfg.DatabaseName, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Firestore project %s: %w", projectID, err)
	}

	return &Client{fs: fs, projectID: projectID}, nil
}

// ProjectID returns the connected project.
func (c *Client) ProjectID() string {
	return c.projectID
}

// ListCollections returns all root collection names, sorted.
func (c *Client) ListCollections(ctx context.Context) ([]string, error) {
	var names []string

	it := c.fs.Collections(ctx)
	for {
		col, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list collections: %w", err)
		}
		names = append(names, col.ID)
	}

	sort.Strings(names)
	return names, nil
}

// SampleDocuments reads up to limit documents from a collection.
func (c *Client) SampleDocuments(ctx context.Context, collection string, limit int) ([]Document, error) {
	var docs []Document

	it := c.fs.Collection(collection).Limit(limit).Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read documents from %s: %w", collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Data: snap.Data()})
	}

	return docs, nil
}

// EstimateCount streams up to cap document references to approximate
// the collection size without a full scan.
func (c *Client) EstimateCount(ctx context.Context, collection string, cap int) (int, bool, error) {
	count := 0

	it := c.fs.Collection(collection).Limit(cap).Select().Documents(ctx)
	defer it.Stop()
	for {
		_, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, false, fmt.Errorf("failed to count documents in %s: %w", collection, err)
		}
		count++
	}

	return count, count == cap, nil
}

// WriteDocument upserts a document by its original identifier. Writing
// the same document twice leaves the same final state.
func (c *Client) WriteDocument(ctx context.Context, collection, id string, data map[string]interface{}) error {
	if _, err := c.fs.Collection(collection).Doc(id).Set(ctx, data); err != nil {
		return fmt.Errorf("failed to write document %s/%s: %w", collection, id, err)
	}
	return nil
}

// Close releases the Firestore client.
func (c *Client) Close() error {
	return c.fs.Close()
}
