package models

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

const (
	AdminUsersTable      = "admin_users"
	ServicesTable        = "services"
	SlotsTable           = "availability_slots"
	SessionBookingsTable = "session_bookings"
	SystemConfigTable    = "system_config"
)

type SupabaseRepo struct {
	supabaseClient *supabase.Client
	url            string
	key            string
	proofBucket    string
}

func SupabaseNewRepo(supabaseClient *supabase.Client, url, key, proofBucket string) *SupabaseRepo {
	return &SupabaseRepo{
		supabaseClient: supabaseClient,
		url:            url,
		key:            key,
		proofBucket:    proofBucket,
	}
}

// GetAuthenticatedClient returns a Supabase client scoped to the given access token,
// so row-level security applies to the calling admin rather than the anon role.
func (su *SupabaseRepo) GetAuthenticatedClient(accessToken string) (*supabase.Client, error) {
	if su.url == "" || su.key == "" {
		return su.supabaseClient, nil
	}

	options := &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + accessToken,
		},
	}

	return supabase.NewClient(su.url, su.key, options)
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	col := mdb.mongodbClient.Database(dbName).Collection(colName)
	return col, nil
}
