// utils/firebase.go
package utils

import (
	"context"
	"log"

	"pagecraft/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var FirestoreClient *firestore.Client

// FirebaseInit initializes the Firebase App and the Firestore client. Only
// called when DATABASE_DRIVER is "firestore".
func FirebaseInit() {
	ctx := context.Background()

	var opts []option.ClientOption
	if config.AppConfig.FirebaseCredFile != "" {
		opts = append(opts, option.WithCredentialsFile(config.AppConfig.FirebaseCredFile))
	}

	conf := &firebase.Config{ProjectID: config.AppConfig.FirebaseProjectID}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Firestore client: %v", err)
	}

	FirestoreClient = client
}

// GetFirestoreClient returns the Firestore client.
func GetFirestoreClient() *firestore.Client {
	if FirestoreClient == nil {
		FirebaseInit()
	}
	return FirestoreClient
}
