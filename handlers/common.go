package handlers

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"communityapp/database"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Handler carries the store handle every route reads. DB may be nil when the
// connection could not be established at startup; read routes then serve
// empty results and write routes fail with errDBUnavailable.
type Handler struct {
	DB *database.DB
}

func New(db *database.DB) *Handler {
	return &Handler{DB: db}
}

const dbTimeout = 10 * time.Second

var errDBUnavailable = gin.H{"error": "Database unavailable"}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// apiDoc shapes a raw document for clients: `_id` becomes a string `id` and
// BSON datetimes become UTC time values so they serialize as RFC 3339.
func apiDoc(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	out := bson.M{}
	for k, v := range doc {
		if dt, ok := v.(primitive.DateTime); ok {
			v = dt.Time().UTC()
		}
		out[k] = v
	}
	if raw, ok := out["_id"]; ok {
		delete(out, "_id")
		switch id := raw.(type) {
		case primitive.ObjectID:
			out["id"] = id.Hex()
		case string:
			out["id"] = id
		default:
			out["id"] = fmt.Sprint(id)
		}
	}
	return out
}

// idFilter matches `_id` whether it was stored as an ObjectID or as a plain
// string. Seeded communities use string ids; documents this service creates
// use ObjectIDs.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}

// findDocs runs a find and shapes the results for the API. Read routes
// degrade rather than fail, so any cursor error yields an empty list.
func findDocs(ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, limit int64) []bson.M {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		log.Printf("[findDocs] %s query failed: %v", coll.Name(), err)
		return []bson.M{}
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("[findDocs] %s decode failed: %v", coll.Name(), err)
		return []bson.M{}
	}

	items := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		items = append(items, apiDoc(d))
	}
	return items
}

func parseLimit(c *gin.Context, fallback int64) int64 {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// parseBoolQuery returns the fallback when the parameter is absent and an
// error when it is present but not a bool; callers reject the request then.
func parseBoolQuery(c *gin.Context, key string, fallback bool) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s value %q", key, raw)
	}
	return v, nil
}
