package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const databaseName = "community"

// DB bundles the Mongo client with the collections the API touches.
// Handlers hold it explicitly; a nil *DB means the store never came up and
// every route serves its degraded response instead of crashing.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database

	Users         *mongo.Collection
	Communities   *mongo.Collection
	Memberships   *mongo.Collection
	Events        *mongo.Collection
	Announcements *mongo.Collection
	CheckIns      *mongo.Collection
}

func Connect(uri string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	mdb := client.Database(databaseName)
	db := &DB{
		Client:        client,
		Database:      mdb,
		Users:         mdb.Collection("authuser"),
		Communities:   mdb.Collection("community"),
		Memberships:   mdb.Collection("membership"),
		Events:        mdb.Collection("event"),
		Announcements: mdb.Collection("announcement"),
		CheckIns:      mdb.Collection("checkin"),
	}

	if err := db.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	log.Println("Connected to MongoDB successfully")
	return db, nil
}

// ensureIndexes backs the write paths that rely on uniqueness instead of
// read-then-insert: register (email) and join (user_id, community_id).
func (db *DB) ensureIndexes(ctx context.Context) error {
	_, err := db.Users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Memberships.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "community_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Name returns the database name for the diagnostics route.
func (db *DB) Name() string {
	return db.Database.Name()
}

// CollectionNames lists the collections present in the database.
func (db *DB) CollectionNames(ctx context.Context) ([]string, error) {
	return db.Database.ListCollectionNames(ctx, bson.M{})
}

func (db *DB) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
