package database

import (
	"context"
	"log"

	"nutribook/config"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// FirestoreClient is the global Firestore client instance.
var FirestoreClient *firestore.Client

// InitDB initializes the Firestore connection.
func InitDB() {
	ctx := context.Background()

	opt := option.WithCredentialsFile(config.AppConfig.FirebaseServiceAccountKeyPath)
	client, err := firestore.NewClient(ctx, config.AppConfig.FirebaseProjectID, opt)
	if err != nil {
		log.Fatalf("failed to connect to Firestore: %v", err)
	}
	FirestoreClient = client
	log.Println("Connected to Firestore successfully!")
}
